package entity

import "time"

// Provider representa un profesional de la clínica (médico, odontólogo, etc.).
type Provider struct {
	ID             string
	OrganizationID string
	FullName       string
	Specialty      string
	LicenseNumber  string // registro profesional, opcional
	Phone          string
	Email          string
	Active         bool
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
