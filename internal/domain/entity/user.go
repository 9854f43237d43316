package entity

import "time"

// Roles válidos para User.
const (
	RoleAdmin     = "admin"
	RoleDoctor    = "doctor"
	RoleRecepcion = "recepcion"
)

// User representa un usuario del sistema (pertenece a una Organization).
type User struct {
	ID             string
	OrganizationID string
	Email          string
	PasswordHash   string // bcrypt hash, nunca plano en dominio después de persistir
	Name           string
	Role           string // admin, doctor, recepcion
	Status         string // active, inactive, suspended
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
