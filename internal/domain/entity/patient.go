package entity

import (
	"fmt"
	"time"
)

// Patient representa un paciente de la clínica.
// Code es el consecutivo legible por organización (MDA-0001, MDA-0002, ...).
// Los pacientes nunca se eliminan físicamente: DeletedAt marca la baja lógica.
type Patient struct {
	ID             string
	OrganizationID string
	Code           string
	FullName       string
	Phone          string
	Whatsapp       string
	Email          string
	Notes          string
	Active         bool
	CreatedAt      time.Time
	UpdatedAt      time.Time
	DeletedAt      *time.Time // nil = vigente
}

// PatientCode formatea el consecutivo de paciente: MDA-NNNN con relleno de ceros a 4 dígitos.
// El ancho fijo hace que el orden lexicográfico coincida con el numérico.
func PatientCode(seq int64) string {
	return fmt.Sprintf("MDA-%04d", seq)
}
