package service

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode"
)

const (
	serialVacio = "N/A"

	tipoNormal      = "NORMAL"
	tipoMultipuesto = "MULTIPUESTO"
)

// NormalizarMaquina cleans a machine payload before it is written. tipoNombre
// is the display name of the machine's type, or "" when it has none. The input
// map is not modified.
//
//   - serial: trimmed; missing, blank or "N/A" in any case becomes "N/A".
//   - puestos: NORMAL is always 1; MULTIPUESTO at least 2 (2 when missing);
//     any other type at least 1 (1 when missing).
func NormalizarMaquina(datos map[string]any, tipoNombre string) map[string]any {
	limpio := make(map[string]any, len(datos)+2)
	for k, v := range datos {
		limpio[k] = v
	}

	limpio["serial"] = normalizarSerial(datos["serial"])

	parsed, ok := enteroInicial(datos["puestos"])
	switch strings.ToUpper(strings.TrimSpace(tipoNombre)) {
	case tipoNormal:
		limpio["puestos"] = 1
	case tipoMultipuesto:
		limpio["puestos"] = minimo(parsed, ok, 2)
	default:
		limpio["puestos"] = minimo(parsed, ok, 1)
	}
	return limpio
}

func normalizarSerial(v any) string {
	if v == nil {
		return serialVacio
	}
	s, ok := v.(string)
	if !ok {
		s = fmt.Sprint(v)
	}
	s = strings.TrimSpace(s)
	if s == "" || strings.EqualFold(s, serialVacio) {
		return serialVacio
	}
	return s
}

// minimo applies "parsed, or def when missing or zero, never below def".
func minimo(parsed int, ok bool, def int) int {
	if !ok || parsed == 0 || parsed < def {
		return def
	}
	return parsed
}

// enteroInicial reads the leading base-10 integer of v's text form: leading
// spaces and a sign are accepted and anything after the digits is ignored, so
// "3 puestos" is 3 and 2.9 is 2. ok is false when there are no digits.
func enteroInicial(v any) (n int, ok bool) {
	if v == nil {
		return 0, false
	}
	var s string
	switch x := v.(type) {
	case string:
		s = x
	case fmt.Stringer:
		s = x.String()
	default:
		s = fmt.Sprint(x)
	}

	s = strings.TrimLeftFunc(s, unicode.IsSpace)
	signo := ""
	if s != "" && (s[0] == '-' || s[0] == '+') {
		signo, s = s[:1], s[1:]
	}
	fin := 0
	for fin < len(s) && s[fin] >= '0' && s[fin] <= '9' {
		fin++
	}
	if fin == 0 {
		return 0, false
	}

	n64, err := strconv.ParseInt(signo+s[:fin], 10, 64)
	if err != nil {
		// out of range
		if signo == "-" {
			return math.MinInt32, true
		}
		return math.MaxInt32, true
	}
	if n64 > math.MaxInt32 {
		n64 = math.MaxInt32
	} else if n64 < math.MinInt32 {
		n64 = math.MinInt32
	}
	return int(n64), true
}
