package main

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/alexisbeaulieu97/gallery/internal/config"
	"github.com/alexisbeaulieu97/gallery/internal/logger"
	"github.com/alexisbeaulieu97/gallery/internal/prefs"
	"github.com/alexisbeaulieu97/gallery/internal/theme"
)

// AppContext bundles long-lived services created at startup.
type AppContext struct {
	Config *config.Config
	Logger *logger.Logger
	Prefs  *prefs.FileStore // nil when preferences are ephemeral
	Store  *theme.Store
}

func newAppContext(cmd *cobra.Command, flags *rootFlags) (*AppContext, error) {
	cfg, err := loadConfig(flags)
	if err != nil {
		return nil, newCommandError("load configuration", configLabel(flags), err, "Fix the reported field or remove the config file to use defaults.")
	}

	level := cfg.Log.Level
	if flags.verbose {
		level = "debug"
	}
	log, err := logger.New(logger.Options{Level: level, HumanReadable: cfg.Log.HumanReadable, Writer: cmd.ErrOrStderr()})
	if err != nil {
		return nil, newCommandError("create logger", "log level "+level, err, "Use one of trace, debug, info, warn, error or disabled.")
	}

	app := &AppContext{Config: cfg, Logger: log}

	var storage theme.Storage
	if cfg.Preferences.Ephemeral {
		log.Debug("preferences are ephemeral")
		storage = theme.NewMemoryStorage()
	} else {
		path, err := preferencesPath(cfg, flags)
		if err != nil {
			return nil, newCommandError("locate preferences", "resolving preferences path", err, "Ensure your HOME directory is set correctly or pass --prefs.")
		}
		store, err := prefs.NewFileStore(path, log.With("component", "prefs"))
		if err != nil {
			return nil, newCommandError("open preferences", path, err, "Check the preferences file permissions and try again.")
		}
		app.Prefs = store
		storage = store
	}

	app.Store = theme.NewStore(storage,
		theme.WithStorageKey(cfg.Theme.StorageKey),
		theme.WithDefault(defaultTheme(cfg, cmd)),
		theme.WithLogger(log.With("component", "theme")),
	)
	return app, nil
}

func loadConfig(flags *rootFlags) (*config.Config, error) {
	if flags.configPath != "" {
		return config.Load(flags.configPath, true)
	}
	path, err := config.DefaultPath()
	if err != nil {
		return config.Load("", false)
	}
	return config.Load(path, false)
}

func configLabel(flags *rootFlags) string {
	if flags.configPath != "" {
		return flags.configPath
	}
	return "default config"
}

func preferencesPath(cfg *config.Config, flags *rootFlags) (string, error) {
	if flags.prefsPath != "" {
		return flags.prefsPath, nil
	}
	path, err := cfg.Preferences.ResolvedPath()
	if err != nil || path != "" {
		return path, err
	}
	return prefs.DefaultPath()
}

// defaultTheme is the configured fallback, or the terminal's own background
// when detection is enabled and stdout is a terminal.
func defaultTheme(cfg *config.Config, cmd *cobra.Command) theme.Theme {
	if cfg.Theme.DetectTerminal && isTerminal(cmd.OutOrStdout()) {
		if lipgloss.HasDarkBackground() {
			return theme.Dark
		}
		return theme.Light
	}
	return cfg.Theme.DefaultTheme()
}

func isTerminal(writer any) bool {
	if file, ok := writer.(*os.File); ok {
		return term.IsTerminal(int(file.Fd()))
	}
	return false
}
