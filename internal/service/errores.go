package service

import "errors"

// Sentinel errors matched by the handlers with errors.Is to pick the status.
var (
	ErrNoEncontrado         = errors.New("registro no encontrado")
	ErrConflicto            = errors.New("registro asociado, no se puede borrar")
	ErrDuplicado            = errors.New("ya existe un registro con ese valor")
	ErrCredenciales         = errors.New("credenciales invalidas")
	ErrEntradaInvalida      = errors.New("datos invalidos")
	ErrOperacionNoSoportada = errors.New("operacion no soportada para esta tabla")
)
