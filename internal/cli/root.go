package cli

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/zentry/appicon/config"
	"github.com/zentry/appicon/logging"
)

// RootConfig carries the persistent flags down to every subcommand.
type RootConfig struct {
	ConfigPath string
	LogLevel   string
	LogFormat  string
}

// Load returns the file config (or the defaults) with the log flags applied.
func (rc *RootConfig) Load() (*config.Config, error) {
	cfg := config.Default()
	if rc.ConfigPath != "" {
		var err error
		cfg, err = config.LoadFromFile(rc.ConfigPath)
		if err != nil {
			return nil, err
		}
	}
	if rc.LogLevel != "" {
		cfg.Log.Level = rc.LogLevel
	}
	if rc.LogFormat != "" {
		cfg.Log.Format = rc.LogFormat
	}
	return cfg, nil
}

// validate checks the log flags before any subcommand runs, including the
// ones that never build a logger.
func (rc *RootConfig) validate() error {
	if rc.LogLevel != "" {
		if _, err := logrus.ParseLevel(rc.LogLevel); err != nil {
			return fmt.Errorf("--log-level: %w", err)
		}
	}
	switch rc.LogFormat {
	case "", "text", "json":
	default:
		return fmt.Errorf("--log-format must be 'text' or 'json' (got %q)", rc.LogFormat)
	}
	return nil
}

func (rc *RootConfig) logger(cmd *cobra.Command, cfg *config.Config) (*logrus.Logger, error) {
	return logging.New(cfg.Log, cmd.ErrOrStderr())
}

func NewRootCmd() *cobra.Command {
	rc := &RootConfig{}
	gen := &generateOptions{}

	cmd := &cobra.Command{
		Use:   "appicon",
		Short: "Render the candlestick app icon",
		Long: `appicon draws the application icon: a navy background, a gold badge and
a green-red-green candlestick uptrend, written as a PNG.

Run without arguments to write assets/icon.png.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return rc.validate()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd, rc, gen)
		},
	}

	cmd.PersistentFlags().StringVar(&rc.ConfigPath, "config", "", "Path to config file (optional)")
	cmd.PersistentFlags().StringVar(&rc.LogLevel, "log-level", "", "Log level: debug|info|warn|error")
	cmd.PersistentFlags().StringVar(&rc.LogFormat, "log-format", "", "Log format: text|json")

	cmd.AddCommand(
		newGenerateCmd(rc),
		newConfigCmd(rc),
		newInspectCmd(rc),
		newHistoryCmd(rc),
		newVersionCmd(),
	)

	return cmd
}

func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
