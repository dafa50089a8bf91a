package repository

import (
	"context"

	"github.com/willinthon-tech/maquinas/internal/model"

	"gorm.io/gorm"
)

// PermisoRepository manages the usuario_sucursal grants.
type PermisoRepository interface {
	SucursalesDeUsuario(ctx context.Context, usuarioID uint) ([]uint, error)
	// Reemplazar swaps the whole grant set of a user atomically.
	Reemplazar(ctx context.Context, usuarioID uint, sucursales []uint) error
}

type permisoRepo struct{ db *gorm.DB }

func NewPermisoRepository(db *gorm.DB) PermisoRepository { return &permisoRepo{db: db} }

func (r *permisoRepo) SucursalesDeUsuario(ctx context.Context, usuarioID uint) ([]uint, error) {
	ids := []uint{}
	err := r.db.WithContext(ctx).
		Model(&model.UsuarioSucursal{}).
		Where("usuario_id = ?", usuarioID).
		Order("sucursal_id").
		Pluck("sucursal_id", &ids).Error
	return ids, err
}

func (r *permisoRepo) Reemplazar(ctx context.Context, usuarioID uint, sucursales []uint) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("usuario_id = ?", usuarioID).Delete(&model.UsuarioSucursal{}).Error; err != nil {
			return err
		}
		if len(sucursales) == 0 {
			return nil
		}
		filas := make([]model.UsuarioSucursal, 0, len(sucursales))
		for _, sid := range sucursales {
			filas = append(filas, model.UsuarioSucursal{UsuarioID: usuarioID, SucursalID: sid})
		}
		return tx.Create(&filas).Error
	})
	return traducirEscritura(err)
}
