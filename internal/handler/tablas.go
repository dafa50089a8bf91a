package handler

import (
	"net/http"

	"github.com/willinthon-tech/maquinas/internal/dto"
	"github.com/willinthon-tech/maquinas/internal/service"

	"github.com/gin-gonic/gin"
)

// TablasHandler serves the generic /api/:tabla routes.
type TablasHandler struct{ svc service.TablaService }

func NewTablasHandler(svc service.TablaService) *TablasHandler {
	return &TablasHandler{svc: svc}
}

// Listar godoc
// @Summary Lista los registros de una tabla
// @Description maquina y sucursal se restringen a las sucursales del usuario cuando se envia userId.
// @Tags tablas
// @Produce json
// @Param tabla path string true "Tabla"
// @Param userId query int false "Usuario para filtrar por permisos"
// @Success 200 {array} object
// @Failure 400 {object} apierror.APIError
// @Failure 404 {object} apierror.APIError
// @Router /api/{tabla} [get]
func (h *TablasHandler) Listar(c *gin.Context) {
	t, ok := parseTabla(c)
	if !ok {
		return
	}
	usuarioID, ok := parseIDOpcional(c, "userId")
	if !ok {
		return
	}
	rows, err := h.svc.Listar(c.Request.Context(), t, usuarioID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}

// ObtenerPorID GET /api/:tabla/:id. JSON null when the row does not exist.
func (h *TablasHandler) ObtenerPorID(c *gin.Context) {
	t, ok := parseTabla(c)
	if !ok {
		return
	}
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	row, err := h.svc.ObtenerPorID(c.Request.Context(), t, id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, row)
}

// Crear godoc
// @Summary Inserta un registro
// @Tags tablas
// @Accept json
// @Produce json
// @Param tabla path string true "Tabla"
// @Success 200 {object} object "payload normalizado con id"
// @Failure 400 {object} apierror.APIError
// @Failure 409 {object} apierror.APIError
// @Router /api/{tabla} [post]
func (h *TablasHandler) Crear(c *gin.Context) {
	t, ok := parseTabla(c)
	if !ok {
		return
	}
	datos, ok := bindPayload(c)
	if !ok {
		return
	}
	resp, err := h.svc.Crear(c.Request.Context(), t, datos)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Actualizar PUT /api/:tabla/:id
func (h *TablasHandler) Actualizar(c *gin.Context) {
	t, ok := parseTabla(c)
	if !ok {
		return
	}
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	datos, ok := bindPayload(c)
	if !ok {
		return
	}
	if err := h.svc.Actualizar(c.Request.Context(), t, id, datos); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.SuccessResponse{Success: true})
}

// Eliminar godoc
// @Summary Borra un registro
// @Tags tablas
// @Produce json
// @Param tabla path string true "Tabla"
// @Param id path int true "ID"
// @Success 200 {object} dto.SuccessResponse
// @Failure 409 {object} apierror.APIError "registro referenciado"
// @Router /api/{tabla}/{id} [delete]
func (h *TablasHandler) Eliminar(c *gin.Context) {
	t, ok := parseTabla(c)
	if !ok {
		return
	}
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := h.svc.Eliminar(c.Request.Context(), t, id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.SuccessResponse{Success: true})
}

// Opciones GET /api/options/:tabla. Never filtered by permissions; userId
// is accepted and ignored.
func (h *TablasHandler) Opciones(c *gin.Context) {
	t, ok := parseTabla(c)
	if !ok {
		return
	}
	rows, err := h.svc.Opciones(c.Request.Context(), t)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}

// Validar godoc
// @Summary Verifica si un valor ya existe en una columna
// @Tags tablas
// @Produce json
// @Param tabla path string true "Tabla"
// @Param campo path string true "Columna"
// @Param valor path string true "Valor"
// @Param excludeId query int false "ID a excluir (edicion)"
// @Success 200 {object} dto.ValidarResponse
// @Failure 400 {object} apierror.APIError
// @Router /api/validar/{tabla}/{campo}/{valor} [get]
func (h *TablasHandler) Validar(c *gin.Context) {
	t, ok := parseTabla(c)
	if !ok {
		return
	}
	excluir, ok := parseIDOpcional(c, "excludeId")
	if !ok {
		return
	}
	existe, err := h.svc.Validar(c.Request.Context(), t, c.Param("campo"), c.Param("valor"), excluir)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ValidarResponse{Existe: existe})
}
