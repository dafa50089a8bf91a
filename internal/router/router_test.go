package router

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/willinthon-tech/maquinas/internal/config"
	"github.com/willinthon-tech/maquinas/internal/testutil"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func testConfig(authRequired bool) *config.Config {
	return &config.Config{
		Env:                "test",
		JWTSecret:          "test-secret",
		JWTExpirationHours: 8,
		AuthRequired:       authRequired,
		AuthWriteRoles:     "admin",
		ExportTitulo:       "Inventario",
	}
}

func newEngine(t *testing.T, authRequired bool) *gin.Engine {
	t.Helper()
	db := testutil.NewDB(t)
	testutil.Fixture(t, db)
	return New(testConfig(authRequired), db, nil, nil)
}

func do(r http.Handler, method, path string, body any, token string) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func login(t *testing.T, r http.Handler, usuario, clave string) string {
	t.Helper()
	w := do(r, http.MethodPost, "/api/login", map[string]string{"usuario": usuario, "clave": clave}, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var resp struct {
		Success bool           `json:"success"`
		User    map[string]any `json:"user"`
		Token   string         `json:"token"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.True(t, resp.Success)
	assert.NotContains(t, resp.User, "clave")
	return resp.Token
}

func TestHealth(t *testing.T) {
	r := newEngine(t, true)

	w := do(r, http.MethodGet, "/health", nil, "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"ok":true,"db":"connected","redis":"disabled"}`, w.Body.String())
}

func TestLogin_Fallido(t *testing.T) {
	r := newEngine(t, true)

	w := do(r, http.MethodPost, "/api/login", map[string]string{"usuario": "admin", "clave": "mal"}, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "unauthorized", body["kind"])
	assert.NotContains(t, body, "user")

	w = do(r, http.MethodPost, "/api/login", map[string]string{"usuario": "admin"}, "")
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Contains(t, w.Body.String(), `"clave":"required"`)
}

func TestRutasProtegidas(t *testing.T) {
	r := newEngine(t, true)

	assert.Equal(t, http.StatusUnauthorized, do(r, http.MethodGet, "/api/grupo", nil, "").Code)

	operador := login(t, r, "operador", "clave1")
	assert.Equal(t, http.StatusOK, do(r, http.MethodGet, "/api/grupo", nil, operador).Code)
	w := do(r, http.MethodPost, "/api/grupo", map[string]any{"nombre": "Este"}, operador)
	assert.Equal(t, http.StatusForbidden, w.Code)

	admin := login(t, r, "admin", "secreto")
	w = do(r, http.MethodPost, "/api/grupo", map[string]any{"nombre": "Este"}, admin)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.JSONEq(t, `{"id":3,"nombre":"Este"}`, w.Body.String())
}

func TestSinAutenticacion(t *testing.T) {
	r := newEngine(t, false)

	w := do(r, http.MethodPost, "/api/marca", map[string]any{"nombre": "IGT"}, "")
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestTablaDesconocida(t *testing.T) {
	r := newEngine(t, false)

	w := do(r, http.MethodGet, "/api/clientes", nil, "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), `"kind":"not_found"`)
}

func TestListarConPermisos(t *testing.T) {
	r := newEngine(t, false)

	var maquinas []map[string]any
	w := do(r, http.MethodGet, "/api/maquina?userId=2", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &maquinas))
	require.Len(t, maquinas, 1)
	assert.Equal(t, "Centro", maquinas[0]["sala_nom"])
	assert.Equal(t, "Norte", maquinas[0]["grupo_nom"])

	w = do(r, http.MethodGet, "/api/maquina?userId=undefined", nil, "")
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &maquinas))
	assert.Len(t, maquinas, 3)

	w = do(r, http.MethodGet, "/api/maquina?userId=abc", nil, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestOpcionesIgnoranPermisos(t *testing.T) {
	r := newEngine(t, false)

	w := do(r, http.MethodGet, "/api/sucursal?userId=3", nil, "")
	assert.JSONEq(t, `[]`, w.Body.String())

	var opciones []map[string]any
	w = do(r, http.MethodGet, "/api/options/sucursal?userId=3", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &opciones))
	assert.Len(t, opciones, 3)
}

func TestObtenerPorID(t *testing.T) {
	r := newEngine(t, false)

	w := do(r, http.MethodGet, "/api/grupo/1", nil, "")
	assert.JSONEq(t, `{"id":1,"nombre":"Norte"}`, w.Body.String())

	w = do(r, http.MethodGet, "/api/grupo/99", nil, "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "null", w.Body.String())

	w = do(r, http.MethodGet, "/api/usuario/1", nil, "")
	assert.NotContains(t, w.Body.String(), "clave")

	assert.Equal(t, http.StatusBadRequest, do(r, http.MethodGet, "/api/grupo/x", nil, "").Code)
}

func TestPianas(t *testing.T) {
	r := newEngine(t, false)

	w := do(r, http.MethodPut, "/api/pianas/2", map[string]any{"pianas": 18}, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.JSONEq(t, `{"success":true}`, w.Body.String())

	w = do(r, http.MethodGet, "/api/sucursal/2", nil, "")
	var s map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &s))
	assert.Equal(t, float64(18), s["pianas"])
	assert.Equal(t, "Costa", s["nombre"])

	var pianas []map[string]any
	w = do(r, http.MethodGet, "/api/pianas", nil, "")
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &pianas))
	require.Len(t, pianas, 3)
	assert.Equal(t, "Costa", pianas[2]["nombre"])
	assert.Equal(t, float64(18), pianas[2]["pianas"])

	assert.Equal(t, http.StatusBadRequest, do(r, http.MethodPost, "/api/pianas", map[string]any{"pianas": 1}, "").Code)
}

func TestCrearMaquina(t *testing.T) {
	r := newEngine(t, false)

	w := do(r, http.MethodPost, "/api/maquina", map[string]any{
		"serial": "", "puestos": "5", "tipo_id": 1, "sucursal_id": 2,
	}, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var m map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &m))
	assert.Equal(t, float64(4), m["id"])
	assert.Equal(t, "N/A", m["serial"])
	assert.Equal(t, float64(1), m["puestos"])
}

func TestEliminarReferenciado(t *testing.T) {
	r := newEngine(t, false)

	w := do(r, http.MethodDelete, "/api/grupo/1", nil, "")
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.JSONEq(t, `{"kind":"conflict","message":"Registro asociado, no se puede borrar."}`, w.Body.String())

	w = do(r, http.MethodGet, "/api/grupo/1", nil, "")
	assert.JSONEq(t, `{"id":1,"nombre":"Norte"}`, w.Body.String())

	w = do(r, http.MethodDelete, "/api/maquina/3", nil, "")
	assert.JSONEq(t, `{"success":true}`, w.Body.String())
}

func TestPermisos(t *testing.T) {
	r := newEngine(t, false)

	for i := 0; i < 2; i++ {
		w := do(r, http.MethodPost, "/api/asignar_sucursales", map[string]any{"usuario_id": 3, "sucursales": []uint{1, 2, 2}}, "")
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		assert.JSONEq(t, `{"message":"Guardado"}`, w.Body.String())
	}
	w := do(r, http.MethodGet, "/api/permisos_sucursal/3", nil, "")
	assert.JSONEq(t, `[1,2]`, w.Body.String())

	w = do(r, http.MethodPost, "/api/asignar_sucursales", map[string]any{"usuario_id": 3, "sucursales": []uint{}}, "")
	assert.JSONEq(t, `{"message":"Permisos eliminados."}`, w.Body.String())
	w = do(r, http.MethodGet, "/api/permisos_sucursal/3", nil, "")
	assert.JSONEq(t, `[]`, w.Body.String())

	w = do(r, http.MethodPost, "/api/asignar_sucursales", map[string]any{"sucursales": []uint{1}}, "")
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Contains(t, w.Body.String(), `"usuario_id":"required"`)
}

func TestValidar(t *testing.T) {
	r := newEngine(t, false)

	w := do(r, http.MethodGet, "/api/validar/maquina/serial/SN-2", nil, "")
	assert.JSONEq(t, `{"existe":true}`, w.Body.String())

	w = do(r, http.MethodGet, "/api/validar/maquina/serial/SN-2?excludeId=2", nil, "")
	assert.JSONEq(t, `{"existe":false}`, w.Body.String())

	w = do(r, http.MethodGet, "/api/validar/maquina/serial/SN-2?excludeId=null", nil, "")
	assert.JSONEq(t, `{"existe":true}`, w.Body.String())

	w = do(r, http.MethodGet, "/api/validar/maquina/color/rojo", nil, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestExportar(t *testing.T) {
	r := newEngine(t, false)

	w := do(r, http.MethodGet, "/api/exportar/maquina?formato=pdf&userId=2", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/pdf", w.Header().Get("Content-Type"))
	assert.Contains(t, w.Header().Get("Content-Disposition"), ".pdf")

	w = do(r, http.MethodGet, "/api/exportar/maquina?formato=csv", nil, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
