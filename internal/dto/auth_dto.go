package dto

import "github.com/willinthon-tech/maquinas/internal/apierror"

// ─── Request DTOs ────────────────────────────────────────────────────────────

type LoginRequest struct {
	Usuario string `json:"usuario" validate:"required,max=150"`
	Clave   string `json:"clave"   validate:"required"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

// UsuarioResponse is a user as returned to clients: the secret is never part
// of it.
type UsuarioResponse struct {
	ID      uint    `json:"id"`
	Usuario string  `json:"usuario"`
	Nombre  *string `json:"nombre"`
	Rol     string  `json:"rol"`
}

type LoginResponse struct {
	Success   bool            `json:"success"`
	User      UsuarioResponse `json:"user"`
	Token     string          `json:"token,omitempty"`
	ExpiresIn int             `json:"expires_in,omitempty"` // seconds
}

// LoginFallido is the 401 body of /api/login. It keeps the success flag the
// web client checks next to the usual error envelope.
type LoginFallido struct {
	Success bool `json:"success"`
	*apierror.APIError
}
