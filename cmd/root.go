package cmd

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ryan-rushton/textkit/internal/app"
	"github.com/ryan-rushton/textkit/internal/config"
	"github.com/ryan-rushton/textkit/internal/logging"
	"github.com/ryan-rushton/textkit/internal/session"
	"github.com/ryan-rushton/textkit/internal/tools"
	"github.com/ryan-rushton/textkit/internal/tools/calc"
	"github.com/ryan-rushton/textkit/internal/updater"
)

// version is set from main via SetVersion.
var version = "dev"

var (
	cfgFile  string
	logLevel string
	logFile  string

	cfg    config.Config
	logger = zap.NewNop()
)

var rootCmd = &cobra.Command{
	Use:   "textkit",
	Short: "Small text tools in your terminal",
	Long: "textkit - a palette of small text utilities: calculator, text stats, case conversion,\n" +
		"JSON formatting, Base64/URL encoding, reversal and hashing",
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		loaded, err := config.Load(cfgFile)
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("log-level") {
			loaded.LogLevel = logLevel
		}
		if cmd.Flags().Changed("log-file") {
			loaded.LogFile = logFile
		}
		if err := loaded.Validate(); err != nil {
			return fmt.Errorf("validate flags: %w", err)
		}
		cfg = loaded

		l, err := logging.New(cfg)
		if err != nil {
			return err
		}
		logger = l
		logger.Debug("config loaded",
			zap.String("environment", cfg.Environment),
			zap.Int("history_limit", cfg.HistoryLimit),
		)
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		sess, err := newSession()
		if err != nil {
			return err
		}
		m := app.New(sess, version,
			app.WithLogger(logger.Named("app")),
			app.WithUpdateCheck(updater.New(logger).LatestRelease),
		)
		final, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
		if err != nil {
			return err
		}
		if fm, ok := final.(app.Model); ok && fm.Err() != nil {
			return fm.Err()
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default $XDG_CONFIG_HOME/textkit/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "write logs to this file")
}

// newSession wires the default palette into a fresh session using the
// loaded configuration.
func newSession() (*session.Session, error) {
	reg, err := tools.NewRegistry(
		calc.WithMaxLength(cfg.Calculator.MaxLength),
		calc.WithMaxDepth(cfg.Calculator.MaxDepth),
	)
	if err != nil {
		return nil, fmt.Errorf("building tool registry: %w", err)
	}
	return session.New(reg,
		session.WithHistoryLimit(cfg.HistoryLimit),
		session.WithLogger(logger.Named("session")),
	), nil
}

// SetVersion sets the version string shown by --version.
func SetVersion(v string) {
	version = v
	rootCmd.Version = v
}

func Execute() {
	if err := runRoot(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// runRoot executes the command tree and flushes the logger on every path;
// cobra skips post-run hooks when a command fails.
func runRoot() error {
	defer func() { logging.Sync(logger) }()
	if err := rootCmd.Execute(); err != nil {
		logger.Error("command failed", zap.Error(err))
		return err
	}
	return nil
}
