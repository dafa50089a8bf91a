package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/willinthon-tech/maquinas/internal/catalogo"
	"github.com/willinthon-tech/maquinas/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ErrColumnaDesconocida is returned when a column name does not belong to the
// table (or is hidden).
var ErrColumnaDesconocida = errors.New("columna desconocida")

// TablaRepository is the generic accessor behind /api/:tabla. Each method is a
// single statement.
type TablaRepository interface {
	Listar(ctx context.Context, t catalogo.Tabla, usuarioID *uint) (any, error)
	Opciones(ctx context.Context, t catalogo.Tabla) (any, error)
	Maquinas(ctx context.Context, usuarioID *uint) ([]model.MaquinaDetalle, error)
	ObtenerPorID(ctx context.Context, t catalogo.Tabla, id uint) (any, bool, error)
	Crear(ctx context.Context, t catalogo.Tabla, e model.Entidad) error
	Reemplazar(ctx context.Context, t catalogo.Tabla, id uint, e model.Entidad, omitir ...string) error
	ActualizarPianas(ctx context.Context, sucursalID uint, pianas int) error
	Eliminar(ctx context.Context, t catalogo.Tabla, id uint) error
	Existe(ctx context.Context, t catalogo.Tabla, campo, valor string, excluirID *uint) (bool, error)
	NombreTipo(ctx context.Context, tipoID uint) (string, bool, error)
}

type tablaRepo struct {
	db       *gorm.DB
	resolver *Resolver
}

func NewTablaRepository(db *gorm.DB) TablaRepository {
	return &tablaRepo{db: db, resolver: NewResolver(db)}
}

func (r *tablaRepo) Listar(ctx context.Context, t catalogo.Tabla, usuarioID *uint) (any, error) {
	return r.resolver.Listar(ctx, t, usuarioID)
}

func (r *tablaRepo) Opciones(ctx context.Context, t catalogo.Tabla) (any, error) {
	return r.resolver.Opciones(ctx, t)
}

func (r *tablaRepo) Maquinas(ctx context.Context, usuarioID *uint) ([]model.MaquinaDetalle, error) {
	rows := []model.MaquinaDetalle{}
	err := r.resolver.QueryMaquinas(ctx, usuarioID).Scan(&rows).Error
	return rows, err
}

func (r *tablaRepo) ObtenerPorID(ctx context.Context, t catalogo.Tabla, id uint) (any, bool, error) {
	return r.resolver.ObtenerPorID(ctx, t, id)
}

func (r *tablaRepo) Crear(ctx context.Context, t catalogo.Tabla, e model.Entidad) error {
	return traducirEscritura(r.db.WithContext(ctx).Table(t.Real().String()).Create(e).Error)
}

// Reemplazar overwrites every non-id column of the row (replace, not patch).
// Columns listed in omitir keep their stored value.
func (r *tablaRepo) Reemplazar(ctx context.Context, t catalogo.Tabla, id uint, e model.Entidad, omitir ...string) error {
	e.AsignarID(id)
	err := r.db.WithContext(ctx).
		Table(t.Real().String()).
		Model(e).
		Select("*").
		Omit(append([]string{"id"}, omitir...)...).
		Updates(e).Error
	return traducirEscritura(err)
}

func (r *tablaRepo) ActualizarPianas(ctx context.Context, sucursalID uint, pianas int) error {
	return r.db.WithContext(ctx).
		Model(&model.Sucursal{}).
		Where("id = ?", sucursalID).
		Update("pianas", pianas).Error
}

func (r *tablaRepo) Eliminar(ctx context.Context, t catalogo.Tabla, id uint) error {
	err := r.db.WithContext(ctx).Table(t.Real().String()).Delete(t.Nuevo(), id).Error
	if esViolacionFK(err) {
		return ErrRegistroAsociado
	}
	return err
}

// Existe reports whether any row of t other than excluirID has campo = valor.
// campo must name a visible column of the table's model.
func (r *tablaRepo) Existe(ctx context.Context, t catalogo.Tabla, campo, valor string, excluirID *uint) (bool, error) {
	columna, err := r.columna(t, campo)
	if err != nil {
		return false, err
	}

	q := r.db.WithContext(ctx).
		Table(t.Real().String()).
		Where(clause.Eq{Column: clause.Column{Name: columna}, Value: valor})
	if excluirID != nil {
		q = q.Where("id <> ?", *excluirID)
	}
	var ids []uint
	if err := q.Limit(1).Pluck("id", &ids).Error; err != nil {
		return false, err
	}
	return len(ids) > 0, nil
}

// columna maps a client supplied field name to the real column name using
// gorm's parsed schema of the table model.
func (r *tablaRepo) columna(t catalogo.Tabla, campo string) (string, error) {
	stmt := &gorm.Statement{DB: r.db}
	if err := stmt.Parse(t.Nuevo()); err != nil {
		return "", fmt.Errorf("parse schema %s: %w", t, err)
	}
	f := stmt.Schema.LookUpField(campo)
	if f == nil || f.DBName == "" || t.EsOculta(f.DBName) {
		return "", ErrColumnaDesconocida
	}
	return f.DBName, nil
}

func (r *tablaRepo) NombreTipo(ctx context.Context, tipoID uint) (string, bool, error) {
	var nombres []string
	err := r.db.WithContext(ctx).
		Model(&model.Tipo{}).
		Where("id = ?", tipoID).
		Limit(1).
		Pluck("nombre", &nombres).Error
	if err != nil || len(nombres) == 0 {
		return "", false, err
	}
	return nombres[0], true, nil
}
