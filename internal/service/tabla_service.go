package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/willinthon-tech/maquinas/internal/catalogo"
	"github.com/willinthon-tech/maquinas/internal/model"
	"github.com/willinthon-tech/maquinas/internal/repository"

	"github.com/go-viper/mapstructure/v2"
	"github.com/goccy/go-json"
	"golang.org/x/crypto/bcrypt"
)

const bcryptCost = 12

// TablaService is the generic CRUD dispatcher behind /api/:tabla.
type TablaService interface {
	Listar(ctx context.Context, t catalogo.Tabla, usuarioID *uint) (any, error)
	Opciones(ctx context.Context, t catalogo.Tabla) (any, error)
	// ObtenerPorID returns nil without error when the row does not exist.
	ObtenerPorID(ctx context.Context, t catalogo.Tabla, id uint) (any, error)
	Crear(ctx context.Context, t catalogo.Tabla, datos map[string]any) (map[string]any, error)
	Actualizar(ctx context.Context, t catalogo.Tabla, id uint, datos map[string]any) error
	Eliminar(ctx context.Context, t catalogo.Tabla, id uint) error
	Validar(ctx context.Context, t catalogo.Tabla, campo, valor string, excluirID *uint) (bool, error)
}

type tablaService struct {
	repo  repository.TablaRepository
	cache OpcionesCache
}

func NewTablaService(repo repository.TablaRepository, cache OpcionesCache) TablaService {
	if cache == nil {
		cache = SinCache()
	}
	return &tablaService{repo: repo, cache: cache}
}

func (s *tablaService) Listar(ctx context.Context, t catalogo.Tabla, usuarioID *uint) (any, error) {
	return s.repo.Listar(ctx, t, usuarioID)
}

func (s *tablaService) Opciones(ctx context.Context, t catalogo.Tabla) (any, error) {
	if b, ok := s.cache.Get(ctx, t.String()); ok {
		return json.RawMessage(b), nil
	}
	rows, err := s.repo.Opciones(ctx, t)
	if err != nil {
		return nil, err
	}
	if b, err := json.Marshal(rows); err == nil {
		s.cache.Set(ctx, t.String(), b)
	}
	return rows, nil
}

func (s *tablaService) ObtenerPorID(ctx context.Context, t catalogo.Tabla, id uint) (any, error) {
	row, ok, err := s.repo.ObtenerPorID(ctx, t, id)
	if err != nil || !ok {
		return nil, err
	}
	return row, nil
}

func (s *tablaService) Crear(ctx context.Context, t catalogo.Tabla, datos map[string]any) (map[string]any, error) {
	if t.EsVirtual() {
		return nil, ErrOperacionNoSoportada
	}
	limpio, err := s.preparar(ctx, t, datos)
	if err != nil {
		return nil, err
	}

	e := t.Nuevo()
	if err := decodificar(limpio, e); err != nil {
		return nil, err
	}
	if u, ok := e.(*model.Usuario); ok {
		if strings.TrimSpace(u.Clave) == "" {
			return nil, fmt.Errorf("%w: la clave es obligatoria", ErrEntradaInvalida)
		}
		if err := prepararUsuario(u); err != nil {
			return nil, err
		}
	}

	if err := s.repo.Crear(ctx, t, e); err != nil {
		return nil, traducir(err)
	}
	s.cache.Invalidar(ctx)

	limpio["id"] = e.Identificador()
	delete(limpio, "clave")
	return limpio, nil
}

// Actualizar replaces every column of the row with the payload. On the
// virtual pianas table only the capacity of the branch is written.
func (s *tablaService) Actualizar(ctx context.Context, t catalogo.Tabla, id uint, datos map[string]any) error {
	if t == catalogo.Pianas {
		return s.actualizarPianas(ctx, id, datos)
	}
	limpio, err := s.preparar(ctx, t, datos)
	if err != nil {
		return err
	}

	e := t.Nuevo()
	if err := decodificar(limpio, e); err != nil {
		return err
	}
	var omitir []string
	if u, ok := e.(*model.Usuario); ok {
		// a blank secret keeps the stored one
		if strings.TrimSpace(u.Clave) == "" {
			omitir = append(omitir, "clave")
		}
		if err := prepararUsuario(u); err != nil {
			return err
		}
	}

	if err := s.repo.Reemplazar(ctx, t, id, e, omitir...); err != nil {
		return traducir(err)
	}
	s.cache.Invalidar(ctx)
	return nil
}

func (s *tablaService) actualizarPianas(ctx context.Context, id uint, datos map[string]any) error {
	var p struct {
		Pianas *int `mapstructure:"pianas"`
	}
	if err := mapstructure.WeakDecode(datos, &p); err != nil {
		return fmt.Errorf("%w: %v", ErrEntradaInvalida, err)
	}
	if p.Pianas == nil {
		return fmt.Errorf("%w: pianas es obligatorio", ErrEntradaInvalida)
	}
	if *p.Pianas < 0 {
		return fmt.Errorf("%w: pianas no puede ser negativo", ErrEntradaInvalida)
	}
	if err := s.repo.ActualizarPianas(ctx, id, *p.Pianas); err != nil {
		return err
	}
	s.cache.Invalidar(ctx)
	return nil
}

func (s *tablaService) Eliminar(ctx context.Context, t catalogo.Tabla, id uint) error {
	if t.EsVirtual() {
		return ErrOperacionNoSoportada
	}
	if err := s.repo.Eliminar(ctx, t, id); err != nil {
		return traducir(err)
	}
	s.cache.Invalidar(ctx)
	return nil
}

func (s *tablaService) Validar(ctx context.Context, t catalogo.Tabla, campo, valor string, excluirID *uint) (bool, error) {
	existe, err := s.repo.Existe(ctx, t, campo, valor, excluirID)
	if errors.Is(err, repository.ErrColumnaDesconocida) {
		return false, fmt.Errorf("%w: columna %q desconocida", ErrEntradaInvalida, campo)
	}
	return existe, err
}

// preparar copies the payload dropping the id and the read-only joined
// names, turns empty foreign keys into NULL and normalizes machines.
func (s *tablaService) preparar(ctx context.Context, t catalogo.Tabla, datos map[string]any) (map[string]any, error) {
	limpio := make(map[string]any, len(datos))
	for k, v := range datos {
		switch {
		case k == "id", strings.HasSuffix(k, "_nom"):
			continue
		case strings.HasSuffix(k, "_id"):
			if str, ok := v.(string); ok && strings.TrimSpace(str) == "" {
				v = nil
			}
		}
		limpio[k] = v
	}

	if t != catalogo.Maquina {
		return limpio, nil
	}
	tipo, err := s.nombreTipo(ctx, limpio["tipo_id"])
	if err != nil {
		return nil, err
	}
	return NormalizarMaquina(limpio, tipo), nil
}

// nombreTipo resolves tipo_id to the type's display name; "" when the id is
// missing, malformed or dangling.
func (s *tablaService) nombreTipo(ctx context.Context, tipoID any) (string, error) {
	n, ok := enteroInicial(tipoID)
	if !ok || n <= 0 {
		return "", nil
	}
	nombre, _, err := s.repo.NombreTipo(ctx, uint(n))
	return nombre, err
}

func prepararUsuario(u *model.Usuario) error {
	if strings.TrimSpace(u.Usuario) == "" {
		return fmt.Errorf("%w: el usuario es obligatorio", ErrEntradaInvalida)
	}
	if strings.TrimSpace(u.Rol) == "" {
		u.Rol = "operador"
	}
	if strings.TrimSpace(u.Clave) == "" {
		return nil
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(u.Clave), bcryptCost)
	if err != nil {
		return err
	}
	u.Clave = string(hash)
	return nil
}

// decodificar fills a typed row from a JSON payload. Numbers may arrive as
// strings; keys that are not columns of the table are rejected.
func decodificar(datos map[string]any, destino model.Entidad) error {
	var md mapstructure.Metadata
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           destino,
		Metadata:         &md,
		WeaklyTypedInput: true,
		Squash:           true,
	})
	if err != nil {
		return err
	}
	if err := dec.Decode(datos); err != nil {
		return fmt.Errorf("%w: %v", ErrEntradaInvalida, err)
	}
	if len(md.Unused) > 0 {
		sort.Strings(md.Unused)
		return fmt.Errorf("%w: columnas desconocidas: %s", ErrEntradaInvalida, strings.Join(md.Unused, ", "))
	}
	return nil
}

func traducir(err error) error {
	switch {
	case errors.Is(err, repository.ErrRegistroAsociado):
		return ErrConflicto
	case errors.Is(err, repository.ErrDuplicado):
		return ErrDuplicado
	case errors.Is(err, repository.ErrReferenciaInvalida):
		return fmt.Errorf("%w: referencia a un registro inexistente", ErrEntradaInvalida)
	default:
		return err
	}
}
