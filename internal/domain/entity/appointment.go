package entity

import "time"

// Estados válidos para Appointment.
const (
	AppointmentProgramada = "programada"
	AppointmentConfirmada = "confirmada"
	AppointmentCompletada = "completada"
	AppointmentCancelada  = "cancelada"
)

// Appointment representa una cita de un paciente con un profesional.
type Appointment struct {
	ID             string
	OrganizationID string
	PatientID      string
	ProviderID     string
	StartsAt       time.Time
	DurationMin    int
	Reason         string
	Status         string // ver constantes Appointment*
	Notes          string
	CreatedBy      string // usuario que agendó
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// CanTransition indica si el cambio de estado es válido.
// completada y cancelada son terminales; confirmada solo desde programada.
func CanTransition(from, to string) bool {
	switch from {
	case AppointmentProgramada:
		return to == AppointmentConfirmada || to == AppointmentCompletada || to == AppointmentCancelada
	case AppointmentConfirmada:
		return to == AppointmentCompletada || to == AppointmentCancelada
	default:
		return false
	}
}
