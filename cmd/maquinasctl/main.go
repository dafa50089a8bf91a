// maquinasctl holds the operator tasks that do not belong in the API:
// hashing a secret and seeding login accounts.
package main

import (
	"os"

	"github.com/spf13/cobra"
)

func newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "maquinasctl",
		Short:         "Herramientas de administracion del inventario de maquinas",
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	root.AddCommand(newHashCommand())
	root.AddCommand(newSeedUsuarioCommand())
	return root
}

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
