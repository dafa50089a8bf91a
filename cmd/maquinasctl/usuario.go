package main

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/willinthon-tech/maquinas/internal/config"
	"github.com/willinthon-tech/maquinas/internal/infra"
	"github.com/willinthon-tech/maquinas/internal/model"
	"github.com/willinthon-tech/maquinas/internal/repository"

	"github.com/go-extras/cobraflags"
	"github.com/spf13/cobra"
	"golang.org/x/crypto/bcrypt"
)

const (
	usuarioFlag = "usuario"
	nombreFlag  = "nombre"
	rolFlag     = "rol"
)

var seedFlags = map[string]cobraflags.Flag{
	usuarioFlag: &cobraflags.StringFlag{
		Name:  usuarioFlag,
		Value: "admin",
		Usage: "Nombre de login",
	},
	claveFlag: &cobraflags.StringFlag{
		Name:  claveFlag,
		Value: "",
		Usage: "Clave en texto plano (requerida); se guarda como hash bcrypt",
	},
	nombreFlag: &cobraflags.StringFlag{
		Name:  nombreFlag,
		Value: "",
		Usage: "Nombre visible",
	},
	rolFlag: &cobraflags.StringFlag{
		Name:  rolFlag,
		Value: "admin",
		Usage: "Rol (admin | operador)",
	},
}

func newSeedUsuarioCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "seed-usuario",
		Short: "Crea o actualiza un usuario de login",
		Long: `Crea el usuario indicado o, si ya existe, reemplaza su clave, nombre y rol.
La conexion se toma de DB_DRIVER y DATABASE_URL (o del archivo .env).

Ejemplo:
  maquinasctl seed-usuario --usuario admin --clave secreto --rol admin`,
		RunE: seedUsuarioCommand,
	}
	cobraflags.RegisterMap(cmd, seedFlags)
	return cmd
}

func seedUsuarioCommand(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	db, err := infra.NewDatabase(cfg)
	if err != nil {
		return err
	}
	if sqlDB, err := db.DB(); err == nil {
		defer sqlDB.Close()
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
	defer cancel()

	u, err := seedUsuario(ctx, repository.NewUsuarioRepository(db),
		seedFlags[usuarioFlag].GetString(),
		seedFlags[claveFlag].GetString(),
		seedFlags[nombreFlag].GetString(),
		seedFlags[rolFlag].GetString(),
	)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "usuario %q guardado (id %d, rol %s)\n", u.Usuario, u.ID, u.Rol)
	return nil
}

func seedUsuario(ctx context.Context, repo repository.UsuarioRepository, usuario, clave, nombre, rol string) (*model.Usuario, error) {
	usuario = strings.TrimSpace(usuario)
	if usuario == "" {
		return nil, errors.New("--usuario es requerido")
	}
	if clave == "" {
		return nil, errors.New("--clave es requerida")
	}
	if rol = strings.TrimSpace(rol); rol == "" {
		rol = "operador"
	}

	h, err := bcrypt.GenerateFromPassword([]byte(clave), bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("bcrypt: %w", err)
	}
	u := &model.Usuario{Usuario: usuario, Clave: string(h), Rol: rol}
	if nombre = strings.TrimSpace(nombre); nombre != "" {
		u.Nombre = &nombre
	}
	if err := repo.Guardar(ctx, u); err != nil {
		return nil, fmt.Errorf("guardar usuario: %w", err)
	}
	return u, nil
}
