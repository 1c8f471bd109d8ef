package entity

import "time"

// Operator cuenta del back-office (quien inicia sesión en este servicio).
type Operator struct {
	ID           string
	UserName     string
	Email        string
	PasswordHash string // bcrypt
	Role         StaffRole
	IsActive     bool
	LastLoginAt  *time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// AuthUser registro de sesión del operador autenticado.
type AuthUser struct {
	ID       string    `json:"id"`
	UserName string    `json:"userName"`
	Email    string    `json:"email"`
	Role     StaffRole `json:"role"`
}

// AuthUser proyecta el operador al registro de sesión.
func (o *Operator) AuthUser() AuthUser {
	return AuthUser{ID: o.ID, UserName: o.UserName, Email: o.Email, Role: o.Role}
}
