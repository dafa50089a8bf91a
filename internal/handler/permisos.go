package handler

import (
	"net/http"

	"github.com/willinthon-tech/maquinas/internal/dto"
	"github.com/willinthon-tech/maquinas/internal/service"

	"github.com/gin-gonic/gin"
)

type PermisosHandler struct{ svc service.PermisoService }

func NewPermisosHandler(svc service.PermisoService) *PermisosHandler {
	return &PermisosHandler{svc: svc}
}

// Obtener GET /api/permisos_sucursal/:id
func (h *PermisosHandler) Obtener(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	ids, err := h.svc.Obtener(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, ids)
}

// Asignar godoc
// @Summary Reemplaza las sucursales asignadas a un usuario
// @Tags permisos
// @Accept json
// @Produce json
// @Param body body dto.AsignarSucursalesRequest true "Usuario y sucursales"
// @Success 200 {object} dto.MensajeResponse
// @Failure 422 {object} apierror.ValidationError
// @Router /api/asignar_sucursales [post]
func (h *PermisosHandler) Asignar(c *gin.Context) {
	var req dto.AsignarSucursalesRequest
	if !bindAndValidate(c, &req) {
		return
	}
	if err := h.svc.Reemplazar(c.Request.Context(), req.UsuarioID, req.Sucursales); err != nil {
		respondError(c, err)
		return
	}
	msg := "Guardado"
	if len(req.Sucursales) == 0 {
		msg = "Permisos eliminados."
	}
	c.JSON(http.StatusOK, dto.MensajeResponse{Message: msg})
}
