package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/Sena-ops/lintreport/internal/report"
)

const (
	EnvPrefix         = "LINTREPORT"
	DefaultConfigName = ".lintreport"
)

type Config struct {
	ReportDir    string    `mapstructure:"report_dir"`
	Output       string    `mapstructure:"output"`
	Format       string    `mapstructure:"format"`
	Layout       string    `mapstructure:"layout"`
	Title        string    `mapstructure:"title"`
	SkipMissing  bool      `mapstructure:"skip_missing"`
	Unregistered bool      `mapstructure:"unregistered"`
	Log          LogConfig `mapstructure:"log"`
}

type LogConfig struct {
	Debug      bool   `mapstructure:"debug"`
	File       string `mapstructure:"file"`
	MaxSizeMB  int    `mapstructure:"max_size"`
	MaxBackups int    `mapstructure:"max_backups"`
	MaxAgeDays int    `mapstructure:"max_age"`
	Compress   bool   `mapstructure:"compress"`
}

// flagKeys liga as flags da CLI às chaves de configuração.
var flagKeys = map[string]string{
	"output":       "output",
	"format":       "format",
	"layout":       "layout",
	"title":        "title",
	"skip-missing": "skip_missing",
	"unregistered": "unregistered",
	"debug":        "log.debug",
	"log-file":     "log.file",
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("report_dir", "reports")
	v.SetDefault("output", "reports/static_report.html")
	v.SetDefault("format", string(report.FormatHTML))
	v.SetDefault("layout", "")
	v.SetDefault("title", "")
	v.SetDefault("skip_missing", false)
	v.SetDefault("unregistered", true)
	v.SetDefault("log.debug", false)
	v.SetDefault("log.file", "")
	v.SetDefault("log.max_size", 10)
	v.SetDefault("log.max_backups", 3)
	v.SetDefault("log.max_age", 28)
	v.SetDefault("log.compress", false)
}

// Load aplica, em ordem de precedência crescente: padrões, arquivo de
// configuração (cfgFile ou ./.lintreport.yaml), variáveis LINTREPORT_* e
// flags alteradas na linha de comando.
func Load(cfgFile string, flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if err := readConfigFile(v, cfgFile); err != nil {
		return nil, err
	}

	if flags != nil {
		for name, key := range flagKeys {
			if f := flags.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, fmt.Errorf("bind da flag %s: %w", name, err)
				}
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("erro ao ler configuração: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuração inválida: %w", err)
	}
	return &cfg, nil
}

func readConfigFile(v *viper.Viper, cfgFile string) error {
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("erro ao carregar arquivo de configuração: %w", err)
		}
		return nil
	}

	v.SetConfigName(DefaultConfigName)
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return fmt.Errorf("erro ao carregar arquivo de configuração: %w", err)
		}
	}
	return nil
}

func (c *Config) Validate() error {
	if strings.TrimSpace(c.ReportDir) == "" {
		return fmt.Errorf("report_dir vazio")
	}
	if strings.TrimSpace(c.Output) == "" {
		return fmt.Errorf("output vazio")
	}
	if _, err := report.ParseFormat(c.Format); err != nil {
		return err
	}
	return nil
}

// ReportFormat devolve o formato já validado.
func (c *Config) ReportFormat() report.Format {
	f, _ := report.ParseFormat(c.Format)
	return f
}
