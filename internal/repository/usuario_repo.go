package repository

import (
	"context"

	"github.com/willinthon-tech/maquinas/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type UsuarioRepository interface {
	FindByUsuario(ctx context.Context, usuario string) (*model.Usuario, error)
	// Guardar inserts the user or, when the username exists, overwrites its
	// secret, name and role.
	Guardar(ctx context.Context, u *model.Usuario) error
}

type usuarioRepo struct{ db *gorm.DB }

func NewUsuarioRepository(db *gorm.DB) UsuarioRepository { return &usuarioRepo{db: db} }

// FindByUsuario is an exact match on the username (collation rules apply).
func (r *usuarioRepo) FindByUsuario(ctx context.Context, usuario string) (*model.Usuario, error) {
	var u model.Usuario
	err := r.db.WithContext(ctx).Where("usuario = ?", usuario).First(&u).Error
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *usuarioRepo) Guardar(ctx context.Context, u *model.Usuario) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "usuario"}},
		DoUpdates: clause.AssignmentColumns([]string{"clave", "nombre", "rol"}),
	}).Create(u).Error
}
