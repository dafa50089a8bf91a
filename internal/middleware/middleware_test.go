package middleware

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func init() {
	gin.SetMode(gin.TestMode)
}

func firmar(t *testing.T, secret string, claims JWTClaims) string {
	t.Helper()
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return tok
}

func claimsValidos(rol string) JWTClaims {
	return JWTClaims{
		UserID:  1,
		Usuario: "admin",
		Rol:     rol,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
}

func protegido() *gin.Engine {
	r := gin.New()
	r.GET("/leer", JWTAuth(testSecret), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"usuario": GetClaims(c).Usuario})
	})
	r.POST("/escribir", JWTAuth(testSecret), RequireRole("admin"), func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})
	return r
}

func hacer(r http.Handler, method, path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func kind(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	k, _ := body["kind"].(string)
	return k
}

func TestJWTAuth(t *testing.T) {
	r := protegido()

	w := hacer(r, http.MethodGet, "/leer", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "unauthorized", kind(t, w))

	w = hacer(r, http.MethodGet, "/leer", firmar(t, "otro-secreto", claimsValidos("admin")))
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	vencido := claimsValidos("admin")
	vencido.ExpiresAt = jwt.NewNumericDate(time.Now().Add(-time.Minute))
	w = hacer(r, http.MethodGet, "/leer", firmar(t, testSecret, vencido))
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = hacer(r, http.MethodGet, "/leer", firmar(t, testSecret, claimsValidos("operador")))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"usuario":"admin"}`, w.Body.String())
}

func TestRequireRole(t *testing.T) {
	r := protegido()

	w := hacer(r, http.MethodPost, "/escribir", firmar(t, testSecret, claimsValidos("operador")))
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, "forbidden", kind(t, w))

	w = hacer(r, http.MethodPost, "/escribir", firmar(t, testSecret, claimsValidos("admin")))
	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestRequireRole_SinJWT(t *testing.T) {
	r := gin.New()
	r.GET("/", RequireRole("admin"), func(c *gin.Context) { c.Status(http.StatusOK) })

	assert.Equal(t, http.StatusForbidden, hacer(r, http.MethodGet, "/", "").Code)
}

func TestRequestID(t *testing.T) {
	r := gin.New()
	r.Use(RequestID())
	r.GET("/", func(c *gin.Context) { c.String(http.StatusOK, c.GetString(RequestIDKey)) })

	w := hacer(r, http.MethodGet, "/", "")
	_, err := uuid.Parse(w.Header().Get(RequestIDHeader))
	assert.NoError(t, err)
	assert.Equal(t, w.Header().Get(RequestIDHeader), w.Body.String())

	propio := uuid.NewString()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, propio)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, propio, w.Header().Get(RequestIDHeader))

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, "<script>")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.NotEqual(t, "<script>", w.Header().Get(RequestIDHeader))
}

func TestErrorHandler_OcultaDetalles(t *testing.T) {
	r := gin.New()
	r.Use(RequestID(), ErrorHandler())
	r.GET("/", func(c *gin.Context) {
		_ = c.Error(errors.New("Error 1146: Table 'sistema.maquina' doesn't exist"))
	})

	w := hacer(r, http.MethodGet, "/", "")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"kind":"internal","message":"Error interno del servidor"}`, w.Body.String())
}

func TestRecovery(t *testing.T) {
	r := gin.New()
	r.Use(Recovery())
	r.GET("/", func(*gin.Context) { panic("boom") })

	w := hacer(r, http.MethodGet, "/", "")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "internal", kind(t, w))
}

func TestRateLimiter(t *testing.T) {
	r := gin.New()
	r.GET("/", RateLimiter(2, time.Minute), func(c *gin.Context) { c.Status(http.StatusOK) })

	assert.Equal(t, http.StatusOK, hacer(r, http.MethodGet, "/", "").Code)
	assert.Equal(t, http.StatusOK, hacer(r, http.MethodGet, "/", "").Code)
	w := hacer(r, http.MethodGet, "/", "")
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Equal(t, "too_many_requests", kind(t, w))
	assert.NotEmpty(t, w.Header().Get("Retry-After"))
}

func TestLoginRateLimiter_Desactivado(t *testing.T) {
	r := gin.New()
	r.POST("/login", LoginRateLimiter(0), func(c *gin.Context) { c.Status(http.StatusOK) })

	for i := 0; i < 50; i++ {
		require.Equal(t, http.StatusOK, hacer(r, http.MethodPost, "/login", "").Code)
	}
}

func TestLimiterPurge(t *testing.T) {
	l := newLimiter("test", 1, time.Minute, "x")
	l.entries["10.0.0.1"] = &ipEntry{count: 3, windowEnd: time.Now().Add(-time.Second)}
	l.entries["10.0.0.2"] = &ipEntry{count: 1, windowEnd: time.Now().Add(time.Minute)}

	purged, remaining := l.purge(time.Now())
	assert.Equal(t, 1, purged)
	assert.Equal(t, 1, remaining)
}

func TestCORS(t *testing.T) {
	r := gin.New()
	r.Use(CORS("https://app.example"))
	r.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodOptions, "/", nil)
	req.Header.Set("Origin", "https://app.example")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "https://app.example", w.Header().Get("Access-Control-Allow-Origin"))

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Origin", "https://otro.example")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
}
