package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Sena-ops/lintreport/internal/config"
	"github.com/Sena-ops/lintreport/internal/logging"
	"github.com/Sena-ops/lintreport/internal/report"
)

var reportCmd = &cobra.Command{
	Use:   "report [diretório]",
	Short: "Gera o relatório unificado a partir dos arquivos das ferramentas",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(cfgFile, cmd.Flags())
		if err != nil {
			return err
		}
		if len(args) == 1 {
			cfg.ReportDir = args[0]
		}

		if err := logging.InitLogger(logging.Options{
			Debug:      cfg.Log.Debug,
			File:       cfg.Log.File,
			MaxSizeMB:  cfg.Log.MaxSizeMB,
			MaxBackups: cfg.Log.MaxBackups,
			MaxAgeDays: cfg.Log.MaxAgeDays,
			Compress:   cfg.Log.Compress,
		}); err != nil {
			return fmt.Errorf("erro ao iniciar logger: %w", err)
		}
		defer logging.Sync()
		logger := logging.Logger

		layout := report.DefaultLayout()
		if cfg.Layout != "" {
			layout, err = report.LoadLayout(cfg.Layout)
			if err != nil {
				return err
			}
			logger.Debugf("Layout carregado: %s (%d categorias)", cfg.Layout, len(layout.Groups))
		}

		logger.Infof("Lendo relatórios em: %s", cfg.ReportDir)
		doc := report.NewBuilder(layout, report.Options{
			Dir:                 cfg.ReportDir,
			Title:               cfg.Title,
			SkipMissing:         cfg.SkipMissing,
			IncludeUnregistered: cfg.Unregistered,
			Exclude:             []string{cfg.Output},
		}).Build()

		if err := report.WriteFile(cfg.Output, cfg.ReportFormat(), doc); err != nil {
			logger.Errorw("Erro ao salvar relatório", "arquivo", cfg.Output, "erro", err)
			return err
		}
		logger.Infow("Relatório salvo com sucesso", "arquivo", cfg.Output, "formato", cfg.ReportFormat(), "achados", doc.Findings())

		printSummary(cmd.OutOrStdout(), doc, cfg.Output)
		return nil
	},
}

func init() {
	reportCmd.Flags().StringP("output", "o", "reports/static_report.html", "Arquivo de saída")
	reportCmd.Flags().StringP("format", "f", "html", "Formato da saída (html, json, markdown, sarif)")
	reportCmd.Flags().String("layout", "", "Arquivo YAML com a ordem das categorias e ferramentas")
	reportCmd.Flags().String("title", "", "Título do relatório")
	reportCmd.Flags().Bool("skip-missing", false, "Omite ferramentas sem arquivo de relatório")
	reportCmd.Flags().Bool("unregistered", true, "Inclui arquivos .txt/.xml/.log sem ferramenta registrada")
	rootCmd.AddCommand(reportCmd)
}
