package dto

import "time"

// CreateProviderRequest body para POST /api/providers.
type CreateProviderRequest struct {
	FullName      string `json:"full_name"`
	Specialty     string `json:"specialty,omitempty"`
	LicenseNumber string `json:"license_number,omitempty"`
	Phone         string `json:"phone,omitempty"`
	Email         string `json:"email,omitempty"`
}

// UpdateProviderRequest body para PUT /api/providers/:id. Campos nil no se tocan.
type UpdateProviderRequest struct {
	FullName      *string `json:"full_name,omitempty"`
	Specialty     *string `json:"specialty,omitempty"`
	LicenseNumber *string `json:"license_number,omitempty"`
	Phone         *string `json:"phone,omitempty"`
	Email         *string `json:"email,omitempty"`
	Active        *bool   `json:"active,omitempty"`
}

// ProviderResponse profesional en respuestas.
type ProviderResponse struct {
	ID             string    `json:"id"`
	OrganizationID string    `json:"organization_id"`
	FullName       string    `json:"full_name"`
	Specialty      string    `json:"specialty,omitempty"`
	LicenseNumber  string    `json:"license_number,omitempty"`
	Phone          string    `json:"phone,omitempty"`
	Email          string    `json:"email,omitempty"`
	Active         bool      `json:"active"`
	CreatedAt      time.Time `json:"created_at"`
}
