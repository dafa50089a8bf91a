package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/willinthon-tech/maquinas/internal/infra"
	"github.com/willinthon-tech/maquinas/internal/repository"
)

// Formato of an inventory export.
type Formato string

const (
	FormatoXLSX Formato = "xlsx"
	FormatoPDF  Formato = "pdf"
)

// ParseFormato accepts "xlsx" (the default when empty) or "pdf".
func ParseFormato(s string) (Formato, error) {
	switch Formato(strings.ToLower(strings.TrimSpace(s))) {
	case "", FormatoXLSX:
		return FormatoXLSX, nil
	case FormatoPDF:
		return FormatoPDF, nil
	default:
		return "", fmt.Errorf("%w: formato %q no soportado (xlsx | pdf)", ErrEntradaInvalida, s)
	}
}

func (f Formato) ContentType() string {
	if f == FormatoPDF {
		return "application/pdf"
	}
	return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
}

// Archivo is a generated export ready to be sent.
type Archivo struct {
	Nombre      string
	ContentType string
	Datos       []byte
}

type ExportService interface {
	// Inventario renders the enriched machine list, restricted to the user's
	// branches when usuarioID is set.
	Inventario(ctx context.Context, usuarioID *uint, formato Formato) (*Archivo, error)
}

type exportService struct {
	repo   repository.TablaRepository
	titulo string
	now    func() time.Time
}

func NewExportService(repo repository.TablaRepository, titulo string) ExportService {
	return &exportService{repo: repo, titulo: titulo, now: time.Now}
}

func (s *exportService) Inventario(ctx context.Context, usuarioID *uint, formato Formato) (*Archivo, error) {
	filas, err := s.repo.Maquinas(ctx, usuarioID)
	if err != nil {
		return nil, err
	}

	generado := s.now()
	var datos []byte
	switch formato {
	case FormatoPDF:
		datos, err = infra.GenerarInventarioPDF(s.titulo, filas, generado)
	default:
		formato = FormatoXLSX
		datos, err = infra.GenerarInventarioXLSX(filas)
	}
	if err != nil {
		return nil, fmt.Errorf("generar inventario %s: %w", formato, err)
	}

	return &Archivo{
		Nombre:      fmt.Sprintf("inventario_%s.%s", generado.Format("20060102_1504"), formato),
		ContentType: formato.ContentType(),
		Datos:       datos,
	}, nil
}
