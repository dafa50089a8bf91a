package handler

import (
	"errors"
	"net/http"
	"reflect"
	"strconv"
	"strings"

	"github.com/willinthon-tech/maquinas/internal/apierror"
	"github.com/willinthon-tech/maquinas/internal/catalogo"
	"github.com/willinthon-tech/maquinas/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

func init() {
	// Report JSON names in validation errors.
	validate.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return f.Name
		}
		return name
	})
}

// bindAndValidate binds JSON body and runs go-playground/validator tags.
// Returns false and writes the error response if validation fails;
// the caller should return immediately without writing another response.
func bindAndValidate(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		c.JSON(http.StatusBadRequest, apierror.BadRequest("JSON invalido: "+err.Error()))
		return false
	}
	if err := validate.Struct(req); err != nil {
		var ves validator.ValidationErrors
		if !errors.As(err, &ves) {
			c.JSON(http.StatusBadRequest, apierror.BadRequest(err.Error()))
			return false
		}
		fields := make(map[string]string, len(ves))
		for _, fe := range ves {
			fields[fe.Field()] = fe.Tag()
		}
		c.JSON(http.StatusUnprocessableEntity, apierror.NewValidation(fields))
		return false
	}
	return true
}

// bindPayload reads a free-form JSON object for the generic table routes.
func bindPayload(c *gin.Context) (map[string]any, bool) {
	var datos map[string]any
	if err := c.ShouldBindJSON(&datos); err != nil {
		c.JSON(http.StatusBadRequest, apierror.BadRequest("JSON invalido: se esperaba un objeto"))
		return nil, false
	}
	if datos == nil {
		datos = map[string]any{}
	}
	return datos, true
}

func parseTabla(c *gin.Context) (catalogo.Tabla, bool) {
	t, err := catalogo.Parse(c.Param("tabla"))
	if err != nil {
		c.JSON(http.StatusNotFound, apierror.NotFound("Tabla desconocida: "+c.Param("tabla")))
		return "", false
	}
	return t, true
}

func parseID(c *gin.Context, param string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(param), 10, 32)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, apierror.BadRequest("ID invalido"))
		return 0, false
	}
	return uint(id), true
}

// parseIDOpcional reads an optional numeric query parameter. Empty,
// "undefined" and "null" (what browsers send for unset JS values) mean absent.
func parseIDOpcional(c *gin.Context, query string) (*uint, bool) {
	raw := strings.TrimSpace(c.Query(query))
	switch raw {
	case "", "undefined", "null":
		return nil, true
	}
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.BadRequest(query+" invalido"))
		return nil, false
	}
	v := uint(id)
	return &v, true
}

// respondError writes the envelope for known service errors. Anything else is
// attached to the context and rendered as a 500 by middleware.ErrorHandler.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrNoEncontrado):
		c.JSON(http.StatusNotFound, apierror.NotFound(err.Error()))
	case errors.Is(err, service.ErrConflicto):
		c.JSON(http.StatusConflict, apierror.Conflict("Registro asociado, no se puede borrar."))
	case errors.Is(err, service.ErrDuplicado):
		c.JSON(http.StatusConflict, apierror.Conflict(err.Error()))
	case errors.Is(err, service.ErrCredenciales):
		c.JSON(http.StatusUnauthorized, apierror.Unauthorized(err.Error()))
	case errors.Is(err, service.ErrEntradaInvalida), errors.Is(err, service.ErrOperacionNoSoportada):
		c.JSON(http.StatusBadRequest, apierror.BadRequest(err.Error()))
	default:
		_ = c.Error(err)
	}
}
