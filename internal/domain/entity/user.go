package entity

import "time"

// Roles válidos para User.
const (
	RolAdmin    = "admin"
	RolAnalista = "analista"
)

// User representa un usuario del backoffice.
type User struct {
	ID           string
	Username     string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	Email        string
	Rol          string // admin, analista
	FirstName    string
	LastName     string
	Telefono     string
	IsActive     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
