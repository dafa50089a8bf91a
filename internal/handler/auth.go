package handler

import (
	"errors"
	"net/http"

	"github.com/willinthon-tech/maquinas/internal/apierror"
	"github.com/willinthon-tech/maquinas/internal/dto"
	"github.com/willinthon-tech/maquinas/internal/service"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct{ svc service.AuthService }

func NewAuthHandler(svc service.AuthService) *AuthHandler { return &AuthHandler{svc: svc} }

// Login godoc
// @Summary Login de usuario
// @Tags auth
// @Accept json
// @Produce json
// @Param body body dto.LoginRequest true "Credenciales"
// @Success 200 {object} dto.LoginResponse
// @Failure 401 {object} dto.LoginFallido
// @Router /api/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if !bindAndValidate(c, &req) {
		return
	}

	resp, err := h.svc.Login(c.Request.Context(), req)
	if errors.Is(err, service.ErrCredenciales) {
		c.JSON(http.StatusUnauthorized, dto.LoginFallido{
			Success:  false,
			APIError: apierror.Unauthorized("Usuario o clave incorrectos"),
		})
		return
	}
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
