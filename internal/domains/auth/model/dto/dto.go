package dto

import (
	"rentacar/infras/jwt"
	"rentacar/internal/domains/auth/model"
)

type RegisterRequest struct {
	Nombre   string `json:"nombre"   validate:"required,max=80"`
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

type LoginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

type UserResponse struct {
	ID     string `json:"id"`
	Email  string `json:"email"`
	Nombre string `json:"nombre"`
	Rol    string `json:"rol"`
}

func (r *UserResponse) FromModel(user model.User) {
	r.ID = user.ID
	r.Email = user.Email
	r.Nombre = user.Nombre
	r.Rol = user.Rol
}

type SessionResponse struct {
	User   UserResponse   `json:"user"`
	Tokens *jwt.TokenPair `json:"tokens"`
}
