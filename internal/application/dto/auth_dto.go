package dto

import (
	"time"

	"github.com/ptc-travel/backoffice/internal/domain/entity"
)

// LoginRequest credenciales del operador.
type LoginRequest struct {
	Email    Value `json:"email"`
	Password Value `json:"password"`
}

// credentials forma validada de LoginRequest.
type credentials struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// Validate devuelve email y contraseña normalizados.
func (r LoginRequest) Validate() (string, string, error) {
	c := newChecker()
	in := credentials{Email: r.Email.trimmed(), Password: r.Password.trimmed()}
	c.checkRules(in)
	return in.Email, in.Password, c.err()
}

// LoginResponse token de sesión y datos del operador.
type LoginResponse struct {
	Token     string          `json:"token"`
	ExpiresAt time.Time       `json:"expiresAt"`
	User      entity.AuthUser `json:"user"`
}
