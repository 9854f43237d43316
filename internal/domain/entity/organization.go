package entity

import "time"

// Organization representa una clínica/tenant del sistema (multi-tenant).
// PatientSeq y SaleSeq son contadores monotónicos por organización; se incrementan
// dentro de la transacción que crea el paciente o la venta.
type Organization struct {
	ID         string
	Name       string
	NIT        string // NIT colombiano (con o sin dígito de verificación)
	Address    string
	Phone      string
	Email      string
	Status     string // active, suspended, inactive
	PatientSeq int64  // último consecutivo de paciente asignado (código MDA-NNNN)
	SaleSeq    int64  // último consecutivo de venta asignado
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
