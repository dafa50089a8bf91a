package handler

import (
	"fmt"
	"net/http"

	"github.com/willinthon-tech/maquinas/internal/service"

	"github.com/gin-gonic/gin"
)

type ExportarHandler struct{ svc service.ExportService }

func NewExportarHandler(svc service.ExportService) *ExportarHandler {
	return &ExportarHandler{svc: svc}
}

// Inventario godoc
// @Summary Descarga el inventario de maquinas
// @Tags exportar
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Produce application/pdf
// @Param userId query int false "Usuario para filtrar por permisos"
// @Param formato query string false "xlsx (defecto) | pdf"
// @Success 200 {file} file
// @Failure 400 {object} apierror.APIError
// @Router /api/exportar/maquina [get]
func (h *ExportarHandler) Inventario(c *gin.Context) {
	usuarioID, ok := parseIDOpcional(c, "userId")
	if !ok {
		return
	}
	formato, err := service.ParseFormato(c.Query("formato"))
	if err != nil {
		respondError(c, err)
		return
	}
	archivo, err := h.svc.Inventario(c.Request.Context(), usuarioID, formato)
	if err != nil {
		respondError(c, err)
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", archivo.Nombre))
	c.Data(http.StatusOK, archivo.ContentType, archivo.Datos)
}
