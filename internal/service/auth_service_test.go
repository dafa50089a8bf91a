package service

import (
	"context"
	"testing"
	"time"

	"github.com/willinthon-tech/maquinas/internal/config"
	"github.com/willinthon-tech/maquinas/internal/dto"
	"github.com/willinthon-tech/maquinas/internal/model"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// ── In-memory Repository Stub ─────────────────────────────────────────────────

type stubUsuarioRepo struct {
	users map[string]*model.Usuario
}

func newStubUsuarioRepo(users ...model.Usuario) *stubUsuarioRepo {
	r := &stubUsuarioRepo{users: map[string]*model.Usuario{}}
	for i := range users {
		u := users[i]
		r.users[u.Usuario] = &u
	}
	return r
}

func (r *stubUsuarioRepo) FindByUsuario(_ context.Context, usuario string) (*model.Usuario, error) {
	u, ok := r.users[usuario]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copia := *u
	return &copia, nil
}

func (r *stubUsuarioRepo) Guardar(_ context.Context, u *model.Usuario) error {
	r.users[u.Usuario] = u
	return nil
}

func testConfig() *config.Config {
	return &config.Config{JWTSecret: "test-secret", JWTExpirationHours: 8}
}

func TestLogin_Success(t *testing.T) {
	hash, _ := bcrypt.GenerateFromPassword([]byte("secreto"), bcrypt.MinCost)
	nombre := "Admin"
	repo := newStubUsuarioRepo(model.Usuario{Base: model.Base{ID: 1}, Usuario: "admin", Clave: string(hash), Nombre: &nombre, Rol: "admin"})
	svc := NewAuthService(repo, testConfig())

	resp, err := svc.Login(context.Background(), dto.LoginRequest{Usuario: "admin", Clave: "secreto"})

	require.NoError(t, err)
	assert.True(t, resp.Success)
	assert.Equal(t, uint(1), resp.User.ID)
	assert.Equal(t, "admin", resp.User.Rol)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, 8*3600, resp.ExpiresIn)

	claims := jwt.MapClaims{}
	_, err = jwt.ParseWithClaims(resp.Token, claims, func(*jwt.Token) (interface{}, error) {
		return []byte("test-secret"), nil
	})
	require.NoError(t, err)
	assert.Equal(t, float64(1), claims["user_id"])
	assert.Equal(t, "admin", claims["rol"])
}

func TestLogin_ClavePlanaHeredada(t *testing.T) {
	repo := newStubUsuarioRepo(model.Usuario{Base: model.Base{ID: 2}, Usuario: "operador", Clave: "clave1", Rol: "operador"})
	svc := NewAuthService(repo, testConfig())

	resp, err := svc.Login(context.Background(), dto.LoginRequest{Usuario: "operador", Clave: "clave1"})
	require.NoError(t, err)
	assert.Equal(t, "operador", resp.User.Usuario)

	_, err = svc.Login(context.Background(), dto.LoginRequest{Usuario: "operador", Clave: "CLAVE1"})
	assert.ErrorIs(t, err, ErrCredenciales)
}

func TestLogin_WrongPassword(t *testing.T) {
	hash, _ := bcrypt.GenerateFromPassword([]byte("secreto"), bcrypt.MinCost)
	repo := newStubUsuarioRepo(model.Usuario{Base: model.Base{ID: 1}, Usuario: "admin", Clave: string(hash), Rol: "admin"})
	svc := NewAuthService(repo, testConfig())

	resp, err := svc.Login(context.Background(), dto.LoginRequest{Usuario: "admin", Clave: "otra"})

	assert.ErrorIs(t, err, ErrCredenciales)
	assert.Nil(t, resp)
}

func TestLogin_UserNotFound(t *testing.T) {
	svc := NewAuthService(newStubUsuarioRepo(), testConfig())

	_, err := svc.Login(context.Background(), dto.LoginRequest{Usuario: "nadie", Clave: "x"})
	assert.ErrorIs(t, err, ErrCredenciales)
}

func TestLogin_SinSecretoNoEmiteToken(t *testing.T) {
	repo := newStubUsuarioRepo(model.Usuario{Base: model.Base{ID: 2}, Usuario: "operador", Clave: "clave1", Rol: "operador"})
	svc := NewAuthService(repo, &config.Config{JWTExpirationHours: 8})

	resp, err := svc.Login(context.Background(), dto.LoginRequest{Usuario: "operador", Clave: "clave1"})
	require.NoError(t, err)
	assert.Empty(t, resp.Token)
}

func TestLogin_TokenExpira(t *testing.T) {
	repo := newStubUsuarioRepo(model.Usuario{Base: model.Base{ID: 2}, Usuario: "operador", Clave: "clave1", Rol: "operador"})
	svc := NewAuthService(repo, testConfig()).(*authService)
	svc.now = func() time.Time { return time.Now().Add(-9 * time.Hour) }

	resp, err := svc.Login(context.Background(), dto.LoginRequest{Usuario: "operador", Clave: "clave1"})
	require.NoError(t, err)

	_, err = jwt.Parse(resp.Token, func(*jwt.Token) (interface{}, error) { return []byte("test-secret"), nil })
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)
}
