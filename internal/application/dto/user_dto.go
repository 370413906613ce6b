package dto

import "time"

// CreateUserRequest alta de usuario (solo admin).
type CreateUserRequest struct {
	Username  string `json:"username"`
	Password  string `json:"password"`
	Email     string `json:"email,omitempty"`
	Rol       string `json:"rol"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name,omitempty"`
	Telefono  string `json:"telefono,omitempty"`
}

// UpdateUserRequest actualización parcial; punteros nil = campo sin tocar.
type UpdateUserRequest struct {
	Password  *string `json:"password,omitempty"`
	Email     *string `json:"email,omitempty"`
	Rol       *string `json:"rol,omitempty"`
	FirstName *string `json:"first_name,omitempty"`
	LastName  *string `json:"last_name,omitempty"`
	Telefono  *string `json:"telefono,omitempty"`
	IsActive  *bool   `json:"is_active,omitempty"`
}

// UserResponse usuario sin credenciales.
type UserResponse struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email,omitempty"`
	Rol       string    `json:"rol"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name,omitempty"`
	Telefono  string    `json:"telefono,omitempty"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
