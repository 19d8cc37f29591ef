package cmd

import (
	"github.com/spf13/cobra"
)

var (
	cfgFile   string
	debugMode bool
	logFile   string
)

var rootCmd = &cobra.Command{
	Use:   "lintreport",
	Short: "lintreport - Relatório HTML unificado de análise estática",
	Long: `lintreport lê as saídas de cppcheck, clang-tidy, flake8, pylint, checkstyle,
staticcheck, golangci-lint, checkmake, mustache, semgrep, trivy e kics de um
diretório e gera um único relatório (HTML, JSON, Markdown ou SARIF), com uma
tabela por ferramenta.`,
	SilenceUsage: true,
}

func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Arquivo de configuração (padrão: ./.lintreport.yaml)")
	rootCmd.PersistentFlags().BoolVar(&debugMode, "debug", false, "Habilita logs em nível debug")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "Grava os logs também neste arquivo, com rotação")
}
