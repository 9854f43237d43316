package dto

import "time"

// CreateAppointmentRequest body para POST /api/appointments.
type CreateAppointmentRequest struct {
	PatientID   string    `json:"patient_id"`
	ProviderID  string    `json:"provider_id"`
	StartsAt    time.Time `json:"starts_at"`
	DurationMin int       `json:"duration_min"`
	Reason      string    `json:"reason,omitempty"`
	Notes       string    `json:"notes,omitempty"`
}

// UpdateAppointmentStatusRequest body para PATCH /api/appointments/:id/status.
type UpdateAppointmentStatusRequest struct {
	Status string `json:"status"`
	Notes  string `json:"notes,omitempty"`
}

// AppointmentResponse cita en respuestas.
type AppointmentResponse struct {
	ID          string    `json:"id"`
	PatientID   string    `json:"patient_id"`
	ProviderID  string    `json:"provider_id"`
	StartsAt    time.Time `json:"starts_at"`
	DurationMin int       `json:"duration_min"`
	Reason      string    `json:"reason,omitempty"`
	Status      string    `json:"status"`
	Notes       string    `json:"notes,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}
