package dto

import "registro-api/internal/app/models"

// RegisterRequest represents a public registration request. The password tag
// enforces the default acceptance policy (min 8, one lowercase, one digit).
type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Username string `json:"username" binding:"required,max=50"`
	Password string `json:"password" binding:"required,password"`
}

// UsuarioSummary is the only shape user records take on the wire;
// the hash has no representation here at all.
type UsuarioSummary struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// UsuarioListResponse wraps the user listing
type UsuarioListResponse struct {
	Success  bool             `json:"success"`
	Usuarios []UsuarioSummary `json:"usuarios"`
}

// NewUsuarioSummary projects a Usuario onto its wire shape
func NewUsuarioSummary(u *models.Usuario) UsuarioSummary {
	return UsuarioSummary{
		ID:       u.ID,
		Username: u.Username,
		Email:    u.Email,
	}
}
