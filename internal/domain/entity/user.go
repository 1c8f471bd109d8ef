package entity

// User cuenta de usuario del backend de la agencia.
type User struct {
	ID          int64    `json:"id"`
	UserName    string   `json:"userName"`
	Email       string   `json:"email"`
	IsActive    bool     `json:"isActive"`
	CreatedDate DateTime `json:"createdDate"`
	UpdatedDate DateTime `json:"updatedDate"`
}

// UserDraft datos validados para crear un usuario.
type UserDraft struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	UserName string `json:"userName" validate:"required"`
}
