package repository

import (
	"context"

	"github.com/willinthon-tech/maquinas/internal/catalogo"
	"github.com/willinthon-tech/maquinas/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Resolver turns a table name plus an optional user scope into the read query
// for that table: plain, enriched with joined display names, or restricted to
// the branches the user was granted.
//
// A nil usuarioID means "no permission filter".
type Resolver struct{ db *gorm.DB }

func NewResolver(db *gorm.DB) *Resolver { return &Resolver{db: db} }

const selectMaquina = `m.*,
	g.nombre AS grupo_nom, s.nombre AS sala_nom,
	ma.nombre AS marca_nom, mo.nombre AS modelo_nom,
	j.nombre AS juego_nom, e.nombre AS estado_nom,
	so.nombre AS sociedad_nom, v.nombre AS valor_nom,
	t.nombre AS tipo_nom, md.nombre AS modo_nom,
	l.nombre AS legal_nom`

// QueryMaquinas is the enriched machine read. Every join is a LEFT JOIN so a
// machine with a null or dangling foreign key is still returned.
func (r *Resolver) QueryMaquinas(ctx context.Context, usuarioID *uint) *gorm.DB {
	q := r.db.WithContext(ctx).
		Table("maquina AS m").
		Select(selectMaquina).
		Joins("LEFT JOIN sucursal s ON m.sucursal_id = s.id").
		Joins("LEFT JOIN grupo g ON s.grupo_id = g.id").
		Joins("LEFT JOIN modelo mo ON m.modelo_id = mo.id").
		Joins("LEFT JOIN marca ma ON mo.marca_id = ma.id").
		Joins("LEFT JOIN juego j ON m.juego_id = j.id").
		Joins("LEFT JOIN estado e ON m.estado_id = e.id").
		Joins("LEFT JOIN sociedad so ON m.sociedad_id = so.id").
		Joins("LEFT JOIN valor v ON m.valor_id = v.id").
		Joins("LEFT JOIN tipo t ON m.tipo_id = t.id").
		Joins("LEFT JOIN modo md ON m.modo_id = md.id").
		Joins("LEFT JOIN legal l ON m.legal_id = l.id")
	if usuarioID != nil {
		q = q.Joins("INNER JOIN usuario_sucursal us ON m.sucursal_id = us.sucursal_id").
			Where("us.usuario_id = ?", *usuarioID)
	}
	return q.Order("m.id")
}

// QuerySucursales is the branch read enriched with the group name.
func (r *Resolver) QuerySucursales(ctx context.Context, usuarioID *uint) *gorm.DB {
	q := r.db.WithContext(ctx).
		Table("sucursal AS s").
		Select("s.*, g.nombre AS grupo_nom").
		Joins("LEFT JOIN grupo g ON s.grupo_id = g.id")
	if usuarioID != nil {
		q = q.Joins("INNER JOIN usuario_sucursal us ON s.id = us.sucursal_id").
			Where("us.usuario_id = ?", *usuarioID)
	}
	return q.Order("s.id")
}

// QueryModelos is the model read enriched with the brand name.
func (r *Resolver) QueryModelos(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Table("modelo AS m").
		Select("m.*, ma.nombre AS marca_nom").
		Joins("LEFT JOIN marca ma ON m.marca_id = ma.id").
		Order("m.id")
}

// QueryPianas projects branches for the virtual "pianas" table.
func (r *Resolver) QueryPianas(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Table("sucursal AS s").
		Select("s.id, s.nombre, s.grupo_id, s.pianas, g.nombre AS grupo_nom").
		Joins("LEFT JOIN grupo g ON s.grupo_id = g.id").
		Order("s.nombre")
}

// QueryTabla is the plain read of a concrete table, hidden columns omitted.
func (r *Resolver) QueryTabla(ctx context.Context, t catalogo.Tabla) *gorm.DB {
	q := r.db.WithContext(ctx).Table(t.String())
	if ocultas := t.Ocultas(); len(ocultas) > 0 {
		q = q.Omit(ocultas...)
	}
	return q.Order("id")
}

// Listar runs the read query for t and returns a pointer to the row slice.
func (r *Resolver) Listar(ctx context.Context, t catalogo.Tabla, usuarioID *uint) (any, error) {
	switch t {
	case catalogo.Maquina:
		rows := []model.MaquinaDetalle{}
		return &rows, r.QueryMaquinas(ctx, usuarioID).Scan(&rows).Error
	case catalogo.Sucursal:
		rows := []model.SucursalDetalle{}
		return &rows, r.QuerySucursales(ctx, usuarioID).Scan(&rows).Error
	case catalogo.Modelo:
		rows := []model.ModeloDetalle{}
		return &rows, r.QueryModelos(ctx).Scan(&rows).Error
	case catalogo.Pianas:
		rows := []model.Piana{}
		return &rows, r.QueryPianas(ctx).Scan(&rows).Error
	default:
		rows := t.NuevaLista()
		return rows, r.QueryTabla(ctx, t).Find(rows).Error
	}
}

// Opciones returns the selection list for t. It is never permission
// filtered: an administrator must see branches nobody was granted yet.
func (r *Resolver) Opciones(ctx context.Context, t catalogo.Tabla) (any, error) {
	switch t {
	case catalogo.Sucursal:
		rows := []model.Opcion{}
		err := r.db.WithContext(ctx).
			Table("sucursal AS s").
			Select("s.id, s.nombre, g.nombre AS parent_nom").
			Joins("LEFT JOIN grupo g ON s.grupo_id = g.id").
			Order("g.nombre").Order("s.nombre").
			Scan(&rows).Error
		return &rows, err
	case catalogo.Modelo:
		rows := []model.Opcion{}
		err := r.db.WithContext(ctx).
			Table("modelo AS m").
			Select("m.id, m.nombre, ma.nombre AS parent_nom").
			Joins("LEFT JOIN marca ma ON m.marca_id = ma.id").
			Order("ma.nombre").Order("m.nombre").
			Scan(&rows).Error
		return &rows, err
	case catalogo.Pianas:
		rows := []model.Piana{}
		return &rows, r.QueryPianas(ctx).Scan(&rows).Error
	default:
		rows := t.NuevaLista()
		q := r.db.WithContext(ctx).Table(t.String())
		if ocultas := t.Ocultas(); len(ocultas) > 0 {
			q = q.Omit(ocultas...)
		}
		err := q.Order(clause.OrderByColumn{Column: clause.Column{Name: t.ColumnaVisible()}}).
			Find(rows).Error
		return rows, err
	}
}

// ObtenerPorID reads a single row; ok is false when no row has that id.
func (r *Resolver) ObtenerPorID(ctx context.Context, t catalogo.Tabla, id uint) (row any, ok bool, err error) {
	if t == catalogo.Pianas {
		var p model.Piana
		res := r.QueryPianas(ctx).Where("s.id = ?", id).Limit(1).Scan(&p)
		return &p, res.RowsAffected > 0, res.Error
	}
	e := t.Nuevo()
	q := r.db.WithContext(ctx).Table(t.String())
	if ocultas := t.Ocultas(); len(ocultas) > 0 {
		q = q.Omit(ocultas...)
	}
	res := q.Where("id = ?", id).Limit(1).Find(e)
	return e, res.RowsAffected > 0, res.Error
}
