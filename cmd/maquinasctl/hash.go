package main

import (
	"errors"
	"fmt"

	"github.com/go-extras/cobraflags"
	"github.com/spf13/cobra"
	"golang.org/x/crypto/bcrypt"
)

const (
	claveFlag = "clave"
)

const bcryptCost = 12

var hashFlags = map[string]cobraflags.Flag{
	claveFlag: &cobraflags.StringFlag{
		Name:  claveFlag,
		Value: "",
		Usage: "Clave en texto plano a hashear (requerida)",
	},
}

func newHashCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "hash",
		Short: "Imprime el hash bcrypt de una clave",
		Long: `Imprime el hash bcrypt (cost 12) de una clave, listo para guardarse en
la columna usuario.clave.

Ejemplo:
  maquinasctl hash --clave secreto`,
		RunE: hashCommand,
	}
	cobraflags.RegisterMap(cmd, hashFlags)
	return cmd
}

func hashCommand(cmd *cobra.Command, _ []string) error {
	clave := hashFlags[claveFlag].GetString()
	if clave == "" {
		return errors.New("--clave es requerida")
	}
	h, err := bcrypt.GenerateFromPassword([]byte(clave), bcryptCost)
	if err != nil {
		return fmt.Errorf("bcrypt: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(h))
	return nil
}
