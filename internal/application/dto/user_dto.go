package dto

import "github.com/ptc-travel/backoffice/internal/domain/entity"

// UserForm formulario de alta de usuario.
type UserForm struct {
	Email    Value `json:"email"`
	Password Value `json:"password"`
	UserName Value `json:"userName"`
}

// Validate convierte el formulario en un borrador válido o devuelve *domain.ValidationError.
func (f UserForm) Validate() (entity.UserDraft, error) {
	c := newChecker()
	draft := f.draft()
	c.checkRules(draft)
	return draft, c.err()
}

func (f UserForm) draft() entity.UserDraft {
	return entity.UserDraft{
		Email:    f.Email.trimmed(),
		Password: f.Password.trimmed(),
		UserName: f.UserName.trimmed(),
	}
}
