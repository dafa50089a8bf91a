package service

import (
	"context"

	"github.com/willinthon-tech/maquinas/internal/repository"
)

type PermisoService interface {
	// Obtener lists the branch ids granted to the user, ascending.
	Obtener(ctx context.Context, usuarioID uint) ([]uint, error)
	// Reemplazar swaps the user's grants for the given set. Duplicates are
	// ignored; an empty set revokes everything.
	Reemplazar(ctx context.Context, usuarioID uint, sucursales []uint) error
}

type permisoService struct {
	repo repository.PermisoRepository
}

func NewPermisoService(repo repository.PermisoRepository) PermisoService {
	return &permisoService{repo: repo}
}

func (s *permisoService) Obtener(ctx context.Context, usuarioID uint) ([]uint, error) {
	return s.repo.SucursalesDeUsuario(ctx, usuarioID)
}

func (s *permisoService) Reemplazar(ctx context.Context, usuarioID uint, sucursales []uint) error {
	vistos := make(map[uint]struct{}, len(sucursales))
	unicos := make([]uint, 0, len(sucursales))
	for _, id := range sucursales {
		if _, ok := vistos[id]; ok {
			continue
		}
		vistos[id] = struct{}{}
		unicos = append(unicos, id)
	}
	return traducir(s.repo.Reemplazar(ctx, usuarioID, unicos))
}
