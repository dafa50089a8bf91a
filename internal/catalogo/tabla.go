// Package catalogo is the closed set of table names the API accepts in its
// :tabla path segment. Every SQL identifier the service emits comes from here,
// never from request input.
package catalogo

import (
	"errors"
	"strings"

	"github.com/willinthon-tech/maquinas/internal/model"
)

// Tabla is an allow-listed table name.
type Tabla string

const (
	Usuario  Tabla = "usuario"
	Grupo    Tabla = "grupo"
	Sucursal Tabla = "sucursal"
	Marca    Tabla = "marca"
	Modelo   Tabla = "modelo"
	Maquina  Tabla = "maquina"
	Juego    Tabla = "juego"
	Estado   Tabla = "estado"
	Sociedad Tabla = "sociedad"
	Valor    Tabla = "valor"
	Tipo     Tabla = "tipo"
	Modo     Tabla = "modo"
	Legal    Tabla = "legal"

	// Pianas is virtual: it reads and writes the capacity column of Sucursal.
	Pianas Tabla = "pianas"
)

// ErrTablaDesconocida is returned by Parse for names outside the catalog.
var ErrTablaDesconocida = errors.New("tabla desconocida")

type descriptor struct {
	nuevo          func() model.Entidad
	lista          func() any
	columnaVisible string
	ocultas        []string
}

func desc[T any, PT interface {
	*T
	model.Entidad
}](columnaVisible string, ocultas ...string) descriptor {
	return descriptor{
		nuevo:          func() model.Entidad { return PT(new(T)) },
		lista:          func() any { return &[]T{} },
		columnaVisible: columnaVisible,
		ocultas:        ocultas,
	}
}

var descriptores = map[Tabla]descriptor{
	Usuario:  desc[model.Usuario]("usuario", "clave"),
	Grupo:    desc[model.Grupo]("nombre"),
	Sucursal: desc[model.Sucursal]("nombre"),
	Marca:    desc[model.Marca]("nombre"),
	Modelo:   desc[model.Modelo]("nombre"),
	Maquina:  desc[model.Maquina]("serial"),
	Juego:    desc[model.Juego]("nombre"),
	Estado:   desc[model.Estado]("nombre"),
	Sociedad: desc[model.Sociedad]("nombre"),
	Valor:    desc[model.Valor]("nombre"),
	Tipo:     desc[model.Tipo]("nombre"),
	Modo:     desc[model.Modo]("nombre"),
	Legal:    desc[model.Legal]("nombre"),
}

// Parse resolves a path segment into a Tabla. Matching is exact after
// trimming surrounding spaces; table names are lower case.
func Parse(s string) (Tabla, error) {
	t := Tabla(strings.TrimSpace(s))
	if t == Pianas {
		return t, nil
	}
	if _, ok := descriptores[t]; !ok {
		return "", ErrTablaDesconocida
	}
	return t, nil
}

// Todas lists every concrete table in a stable order.
func Todas() []Tabla {
	return []Tabla{Usuario, Grupo, Sucursal, Marca, Modelo, Maquina, Juego, Estado, Sociedad, Valor, Tipo, Modo, Legal}
}

func (t Tabla) String() string { return string(t) }

// EsVirtual reports whether t is an alias over another table.
func (t Tabla) EsVirtual() bool { return t == Pianas }

// Real returns the physical table behind t.
func (t Tabla) Real() Tabla {
	if t == Pianas {
		return Sucursal
	}
	return t
}

// Nuevo returns a zero row of the physical table, ready to be filled.
func (t Tabla) Nuevo() model.Entidad { return descriptores[t.Real()].nuevo() }

// NuevaLista returns a pointer to an empty slice of the table's row type.
func (t Tabla) NuevaLista() any { return descriptores[t.Real()].lista() }

// ColumnaVisible is the column used to label and sort rows in option lists.
func (t Tabla) ColumnaVisible() string { return descriptores[t.Real()].columnaVisible }

// EsOculta reports whether a column must never be returned nor probed.
func (t Tabla) EsOculta(columna string) bool {
	for _, c := range descriptores[t.Real()].ocultas {
		if c == columna {
			return true
		}
	}
	return false
}

// Ocultas lists the hidden columns of t.
func (t Tabla) Ocultas() []string { return descriptores[t.Real()].ocultas }
