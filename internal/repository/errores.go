package repository

import (
	"errors"
	"strings"

	"github.com/go-sql-driver/mysql"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

var (
	// ErrRegistroAsociado is returned when a delete is blocked by rows that
	// still reference the target through a foreign key.
	ErrRegistroAsociado = errors.New("registro asociado")
	// ErrReferenciaInvalida is returned when a write points a foreign key at
	// a row that does not exist.
	ErrReferenciaInvalida = errors.New("referencia inexistente")
	// ErrDuplicado is returned when a write breaks a unique index.
	ErrDuplicado = errors.New("valor duplicado")
)

const (
	mysqlErrDupEntry        = 1062 // ER_DUP_ENTRY
	mysqlErrRowIsReferenced = 1451 // ER_ROW_IS_REFERENCED_2
	mysqlErrNoReferencedRow = 1452 // ER_NO_REFERENCED_ROW_2
	pgUniqueViolation       = "23505"
	pgForeignKeyViolation   = "23503"
)

// esViolacionFK recognises a foreign key violation from any supported driver,
// whether or not gorm's error translation already ran.
func esViolacionFK(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return true
	}
	var myErr *mysql.MySQLError
	if errors.As(err, &myErr) {
		return myErr.Number == mysqlErrRowIsReferenced || myErr.Number == mysqlErrNoReferencedRow
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgForeignKeyViolation
	}
	// sqlite (tests)
	return strings.Contains(err.Error(), "FOREIGN KEY constraint failed")
}

func esDuplicado(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var myErr *mysql.MySQLError
	if errors.As(err, &myErr) {
		return myErr.Number == mysqlErrDupEntry
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgUniqueViolation
	}
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}

// traducirEscritura maps constraint failures of an insert or update.
func traducirEscritura(err error) error {
	switch {
	case err == nil:
		return nil
	case esDuplicado(err):
		return ErrDuplicado
	case esViolacionFK(err):
		return ErrReferenciaInvalida
	default:
		return err
	}
}
