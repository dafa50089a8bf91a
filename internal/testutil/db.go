// Package testutil builds throw-away databases for package tests.
package testutil

import (
	"fmt"
	"strings"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// schema mirrors the production tables with SQLite types. Foreign keys use
// the default RESTRICT/NO ACTION behaviour, like the MySQL schema.
var schema = []string{
	`CREATE TABLE usuario (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		usuario TEXT NOT NULL UNIQUE,
		clave TEXT NOT NULL,
		nombre TEXT,
		rol TEXT NOT NULL DEFAULT 'operador'
	)`,
	`CREATE TABLE grupo (id INTEGER PRIMARY KEY AUTOINCREMENT, nombre TEXT NOT NULL)`,
	`CREATE TABLE sucursal (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		nombre TEXT NOT NULL,
		grupo_id INTEGER REFERENCES grupo(id),
		pianas INTEGER NOT NULL DEFAULT 0
	)`,
	`CREATE TABLE marca (id INTEGER PRIMARY KEY AUTOINCREMENT, nombre TEXT NOT NULL)`,
	`CREATE TABLE modelo (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		nombre TEXT NOT NULL,
		marca_id INTEGER REFERENCES marca(id)
	)`,
	`CREATE TABLE juego (id INTEGER PRIMARY KEY AUTOINCREMENT, nombre TEXT NOT NULL)`,
	`CREATE TABLE estado (id INTEGER PRIMARY KEY AUTOINCREMENT, nombre TEXT NOT NULL)`,
	`CREATE TABLE sociedad (id INTEGER PRIMARY KEY AUTOINCREMENT, nombre TEXT NOT NULL)`,
	`CREATE TABLE valor (id INTEGER PRIMARY KEY AUTOINCREMENT, nombre TEXT NOT NULL)`,
	`CREATE TABLE tipo (id INTEGER PRIMARY KEY AUTOINCREMENT, nombre TEXT NOT NULL)`,
	`CREATE TABLE modo (id INTEGER PRIMARY KEY AUTOINCREMENT, nombre TEXT NOT NULL)`,
	`CREATE TABLE legal (id INTEGER PRIMARY KEY AUTOINCREMENT, nombre TEXT NOT NULL)`,
	`CREATE TABLE maquina (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		serial TEXT NOT NULL DEFAULT 'N/A',
		puestos INTEGER NOT NULL DEFAULT 1,
		sucursal_id INTEGER REFERENCES sucursal(id),
		modelo_id INTEGER REFERENCES modelo(id),
		juego_id INTEGER REFERENCES juego(id),
		estado_id INTEGER REFERENCES estado(id),
		sociedad_id INTEGER REFERENCES sociedad(id),
		valor_id INTEGER REFERENCES valor(id),
		tipo_id INTEGER REFERENCES tipo(id),
		modo_id INTEGER REFERENCES modo(id),
		legal_id INTEGER REFERENCES legal(id)
	)`,
	`CREATE TABLE usuario_sucursal (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		usuario_id INTEGER NOT NULL REFERENCES usuario(id),
		sucursal_id INTEGER NOT NULL REFERENCES sucursal(id)
	)`,
}

// NewDB opens a private in-memory SQLite database with foreign keys enforced
// and the full schema created. The pool is pinned to one connection because
// every SQLite memory connection is its own database.
func NewDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_foreign_keys=on",
		strings.NewReplacer("/", "_", " ", "_").Replace(t.Name()))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("sqlite pool: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	for _, stmt := range schema {
		if err := db.Exec(stmt).Error; err != nil {
			t.Fatalf("create schema: %v", err)
		}
	}
	return db
}

// Exec runs raw seed statements, failing the test on the first error.
func Exec(t *testing.T, db *gorm.DB, stmts ...string) {
	t.Helper()
	for _, s := range stmts {
		if err := db.Exec(s).Error; err != nil {
			t.Fatalf("seed %q: %v", s, err)
		}
	}
}

// Fixture is the shared data set used by repository, service and handler
// tests:
//
//	grupo 1 Norte, 2 Sur
//	sucursal 1 Centro (Norte, 30 pianas), 2 Costa (Sur, 12), 3 Andes (no group)
//	marca 1 Aristocrat; modelo 1 Helix (Aristocrat), 2 Suelto (no brand)
//	tipo 1 NORMAL, 2 MULTIPUESTO, 3 RULETA
//	maquina 1 SN-1 @Centro NORMAL, 2 SN-2 @Costa MULTIPUESTO x4, 3 N/A no FKs
//	usuario 1 admin/secreto (admin), 2 operador/clave1 (operador, Centro only),
//	        3 nuevo/clave2 (operador, no branches)
func Fixture(t *testing.T, db *gorm.DB) {
	t.Helper()
	Exec(t, db,
		`INSERT INTO grupo (id, nombre) VALUES (1, 'Norte'), (2, 'Sur')`,
		`INSERT INTO sucursal (id, nombre, grupo_id, pianas) VALUES (1, 'Centro', 1, 30), (2, 'Costa', 2, 12), (3, 'Andes', NULL, 0)`,
		`INSERT INTO marca (id, nombre) VALUES (1, 'Aristocrat')`,
		`INSERT INTO modelo (id, nombre, marca_id) VALUES (1, 'Helix', 1), (2, 'Suelto', NULL)`,
		`INSERT INTO tipo (id, nombre) VALUES (1, 'NORMAL'), (2, 'MULTIPUESTO'), (3, 'RULETA')`,
		`INSERT INTO estado (id, nombre) VALUES (1, 'Operativa')`,
		`INSERT INTO maquina (id, serial, puestos, sucursal_id, modelo_id, tipo_id, estado_id) VALUES (1, 'SN-1', 1, 1, 1, 1, 1)`,
		`INSERT INTO maquina (id, serial, puestos, sucursal_id, modelo_id, tipo_id) VALUES (2, 'SN-2', 4, 2, 2, 2)`,
		`INSERT INTO maquina (id, serial, puestos) VALUES (3, 'N/A', 1)`,
		`INSERT INTO usuario (id, usuario, clave, nombre, rol) VALUES (1, 'admin', 'secreto', 'Administrador', 'admin')`,
		`INSERT INTO usuario (id, usuario, clave, nombre, rol) VALUES (2, 'operador', 'clave1', 'Operador Centro', 'operador')`,
		`INSERT INTO usuario (id, usuario, clave, nombre, rol) VALUES (3, 'nuevo', 'clave2', NULL, 'operador')`,
		`INSERT INTO usuario_sucursal (usuario_id, sucursal_id) VALUES (2, 1)`,
	)
}
