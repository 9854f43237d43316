package dto

import "time"

// CreatePatientRequest body para POST /api/patients.
type CreatePatientRequest struct {
	FullName string `json:"full_name"`
	Phone    string `json:"phone,omitempty"`
	Whatsapp string `json:"whatsapp,omitempty"`
	Email    string `json:"email,omitempty"`
	Notes    string `json:"notes,omitempty"`
	// Force omite el chequeo previo de duplicados por número de contacto.
	Force bool `json:"force,omitempty"`
}

// UpdatePatientRequest body para PUT /api/patients/:id. Campos nil no se tocan.
type UpdatePatientRequest struct {
	FullName *string `json:"full_name,omitempty"`
	Phone    *string `json:"phone,omitempty"`
	Whatsapp *string `json:"whatsapp,omitempty"`
	Email    *string `json:"email,omitempty"`
	Notes    *string `json:"notes,omitempty"`
	Active   *bool   `json:"active,omitempty"`
}

// PatientResponse paciente en respuestas.
type PatientResponse struct {
	ID             string    `json:"id"`
	OrganizationID string    `json:"organization_id"`
	Code           string    `json:"code"`
	FullName       string    `json:"full_name"`
	Phone          string    `json:"phone,omitempty"`
	Whatsapp       string    `json:"whatsapp,omitempty"`
	Email          string    `json:"email,omitempty"`
	Notes          string    `json:"notes,omitempty"`
	Active         bool      `json:"active"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// DuplicatePatientDTO un posible duplicado del reporte GET /api/patients/duplicates.
type DuplicatePatientDTO struct {
	ID               string `json:"id"`
	PatientCode      string `json:"patientCode"`
	FullName         string `json:"fullName"`
	Phone            string `json:"phone"`
	Whatsapp         string `json:"whatsapp"`
	AppointmentCount int    `json:"appointmentCount"`
	DuplicateOf      string `json:"duplicateOf"`
}
