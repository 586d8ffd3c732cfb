package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/okravets/dayline/internal/config"
	"github.com/okravets/dayline/internal/prefs"
	"github.com/okravets/dayline/internal/store"
	"github.com/okravets/dayline/internal/tui"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var (
	configPath string
	seedDemo   bool
)

var rootCmd = &cobra.Command{
	Use:   "dayline",
	Short: "A single-session day planner for the terminal",
	Long: `dayline is a terminal day planner. Add tasks with a category and an
optional time slot, tick them off, and flip between a flat list and an
hourly timeline. Tasks live for the session; only the light/dark theme
preference is saved between runs.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(configPath)
		if err != nil {
			return err
		}

		logger, closeLog, err := newLogger(cfg)
		if err != nil {
			return err
		}
		defer closeLog()

		var themeStore store.ThemeStore
		if themes := openPrefs(logger); themes != nil {
			defer themes.Close()
			themeStore = themes
		}

		st := store.New(themeStore, logger)
		if seedDemo || cfg.SeedDemo {
			st.Seed(store.DemoTasks())
		}

		return tui.Run(st, cfg.Slots(), logger)
	},
}

// newLogger builds the file logger, or a discarding one when no log
// file is configured. The TUI owns stdout.
func newLogger(cfg *config.Config) (*log.Logger, func(), error) {
	if cfg.LogFile == "" {
		return log.New(io.Discard), func() {}, nil
	}

	f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open log file: %w", err)
	}

	logger := log.New(f)
	logger.SetLevel(log.DebugLevel)
	return logger, func() { _ = f.Close() }, nil
}

// openPrefs opens the preference store. A failure is not fatal: the
// session runs with the default theme and no persistence.
func openPrefs(logger *log.Logger) *prefs.Store {
	path, err := prefs.DefaultPath()
	if err != nil {
		logger.Warn("could not resolve preferences path", "err", err)
		return nil
	}
	themes, err := prefs.Open(path)
	if err != nil {
		logger.Warn("could not open preferences, theme will not persist", "err", err)
		return nil
	}
	return themes
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("dayline %s (commit %s, built %s)\n", version, commit, date)
	},
}

// SetVersion sets the version information
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.Flags().StringVar(&configPath, "config", "", "Path to config file")
	rootCmd.Flags().BoolVar(&seedDemo, "seed", false, "Start with the demo task set")

	rootCmd.AddCommand(themeCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(versionCmd)
}
