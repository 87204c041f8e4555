package dto

import "strings"

// RegisterRequest entrada para registro.
// PasswordHash se acepta como alias de Password (los clientes antiguos envían la clave en ese campo).
type RegisterRequest struct {
	Name         string `json:"name" validate:"required,min=1,max=200"`
	Email        string `json:"email" validate:"required,email"`
	Password     string `json:"password" validate:"required,min=1,max=72"`
	PasswordHash string `json:"password_hash,omitempty" validate:"-"`
	Role         string `json:"role" validate:"omitempty,oneof=technician office"`
	Phone        string `json:"phone,omitempty" validate:"omitempty,max=50"`
	IsActive     *bool  `json:"is_active,omitempty"`
}

// Normalize aplica el alias password_hash -> password y recorta name/email.
func (r *RegisterRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.Email = strings.ToLower(strings.TrimSpace(r.Email))
	if r.Password == "" && r.PasswordHash != "" {
		r.Password = r.PasswordHash
	}
	r.PasswordHash = ""
}

// UserPublic salida pública de un usuario (sin hash).
type UserPublic struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// LoginRequest credenciales; form OAuth2 (username/password) o JSON.
type LoginRequest struct {
	Username string `json:"username" form:"username" validate:"required"`
	Password string `json:"password" form:"password" validate:"required"`
}

// TokenResponse salida del login.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}
