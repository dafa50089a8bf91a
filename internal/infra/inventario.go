package infra

import (
	"strconv"

	"github.com/willinthon-tech/maquinas/internal/model"
)

// InventarioHeader is the column order shared by every inventory export.
var InventarioHeader = []string{
	"ID",
	"Serial",
	"Puestos",
	"Grupo",
	"Sala",
	"Marca",
	"Modelo",
	"Juego",
	"Estado",
	"Sociedad",
	"Valor",
	"Tipo",
	"Modo",
	"Legal",
}

// inventarioFila renders one machine in InventarioHeader order.
func inventarioFila(m model.MaquinaDetalle) []string {
	return []string{
		strconv.FormatUint(uint64(m.ID), 10),
		m.Serial,
		strconv.Itoa(m.Puestos),
		texto(m.GrupoNom),
		texto(m.SalaNom),
		texto(m.MarcaNom),
		texto(m.ModeloNom),
		texto(m.JuegoNom),
		texto(m.EstadoNom),
		texto(m.SociedadNom),
		texto(m.ValorNom),
		texto(m.TipoNom),
		texto(m.ModoNom),
		texto(m.LegalNom),
	}
}

func texto(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
