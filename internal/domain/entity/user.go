package entity

import "time"

// Roles válidos para User.
const (
	RoleAdmin       = "admin"
	RoleSupervisor  = "supervisor"
	RoleAlmacenista = "almacenista"
)

// User representa un usuario del portal de operaciones.
type User struct {
	ID           string
	Email        string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	Name         string
	Role         string // admin, supervisor, almacenista
	Status       string // active, inactive, suspended
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
