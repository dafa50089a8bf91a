package dto

// ── Request DTOs ──────────────────────────────────────────────────────────────

// AsignarSucursalesRequest replaces the whole set of branches a user may see.
// An empty or missing list revokes every grant.
type AsignarSucursalesRequest struct {
	UsuarioID  uint   `json:"usuario_id" validate:"required,gt=0"`
	Sucursales []uint `json:"sucursales" validate:"omitempty,dive,gt=0"`
}

// ── Response DTOs ─────────────────────────────────────────────────────────────

type MensajeResponse struct {
	Message string `json:"message"`
}
