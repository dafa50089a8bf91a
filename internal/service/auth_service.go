package service

import (
	"context"
	"crypto/subtle"
	"errors"
	"strings"
	"time"

	"github.com/willinthon-tech/maquinas/internal/config"
	"github.com/willinthon-tech/maquinas/internal/dto"
	"github.com/willinthon-tech/maquinas/internal/model"
	"github.com/willinthon-tech/maquinas/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type AuthService interface {
	Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error)
}

type authService struct {
	repo repository.UsuarioRepository
	cfg  *config.Config
	now  func() time.Time
}

func NewAuthService(repo repository.UsuarioRepository, cfg *config.Config) AuthService {
	return &authService{repo: repo, cfg: cfg, now: time.Now}
}

// Login checks the username and secret. Without a JWT secret configured the
// response carries no token (auth disabled deployments).
func (s *authService) Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := s.repo.FindByUsuario(ctx, req.Usuario)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrCredenciales
	}
	if err != nil {
		return nil, err
	}
	if !claveValida(user.Clave, req.Clave) {
		return nil, ErrCredenciales
	}

	resp := &dto.LoginResponse{Success: true, User: MapUsuario(*user)}
	if s.cfg.JWTSecret == "" {
		return resp, nil
	}
	ttl := time.Duration(s.cfg.JWTExpirationHours) * time.Hour
	token, err := s.generateToken(user, ttl)
	if err != nil {
		return nil, err
	}
	resp.Token = token
	resp.ExpiresIn = int(ttl.Seconds())
	return resp, nil
}

func MapUsuario(u model.Usuario) dto.UsuarioResponse {
	return dto.UsuarioResponse{ID: u.ID, Usuario: u.Usuario, Nombre: u.Nombre, Rol: u.Rol}
}

// claveValida accepts bcrypt hashes and, for rows stored before hashing, the
// plain secret.
func claveValida(guardada, enviada string) bool {
	if strings.HasPrefix(guardada, "$2") {
		return bcrypt.CompareHashAndPassword([]byte(guardada), []byte(enviada)) == nil
	}
	return subtle.ConstantTimeCompare([]byte(guardada), []byte(enviada)) == 1
}

func (s *authService) generateToken(user *model.Usuario, duration time.Duration) (string, error) {
	now := s.now()
	claims := jwt.MapClaims{
		"user_id": user.ID,
		"usuario": user.Usuario,
		"rol":     user.Rol,
		"exp":     now.Add(duration).Unix(),
		"iat":     now.Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.cfg.JWTSecret))
}
