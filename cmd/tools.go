package cmd

import (
	"github.com/spf13/cobra"

	"github.com/Sena-ops/lintreport/internal/adapters"
)

var toolsCmd = &cobra.Command{
	Use:   "tools",
	Short: "Lista as ferramentas reconhecidas pelo nome do arquivo de relatório",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		printTools(cmd.OutOrStdout(), adapters.Specs())
	},
}

func init() {
	rootCmd.AddCommand(toolsCmd)
}
