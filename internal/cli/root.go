// Package cli wires configuration, storage and the output adapters into the
// sessionnote command tree.
package cli

import (
	"context"
	"errors"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/csheth/sessionnote/internal/clipboard"
	"github.com/csheth/sessionnote/internal/config"
	"github.com/csheth/sessionnote/internal/logging"
	"github.com/csheth/sessionnote/internal/printer"
	"github.com/csheth/sessionnote/internal/store"
	"github.com/csheth/sessionnote/internal/tui"
)

// ErrNoTerminal is returned when the interactive form is started without a
// terminal attached.
var ErrNoTerminal = errors.New("sessionnote needs an interactive terminal; use `sessionnote render` in scripts")

// App holds the state shared by every command of one invocation.
type App struct {
	ConfigFile  string
	NoAltScreen bool

	Viper  *viper.Viper
	Config config.Config
	Logger *zap.Logger

	// Clipboard and Printer default to the system adapters when nil.
	Clipboard clipboard.Writer
	Printer   printer.Printer

	// DotEnv lists the .env files loaded before configuration is read.
	DotEnv []string

	isTerminal func() bool
	runTUI     func(tui.Config, bool) error

	store  *store.Store
	closer io.Closer
}

// NewRootCmd builds the command tree with the system adapters.
func NewRootCmd() *cobra.Command {
	return newRootCmd(&App{})
}

func newRootCmd(app *App) *cobra.Command {
	if app.Viper == nil {
		app.Viper = config.New()
	}
	if app.DotEnv == nil {
		app.DotEnv = []string{".env"}
	}
	if app.isTerminal == nil {
		app.isTerminal = stdioIsTerminal
	}
	if app.runTUI == nil {
		app.runTUI = tui.Run
	}

	cmd := &cobra.Command{
		Use:           "sessionnote",
		Short:         "Compose clinical session notes from a form and phrase pickers",
		SilenceUsage:  true,
		SilenceErrors: true,
		Example: strings.TrimSpace(`
  # Fill in the note interactively
  sessionnote

  # Render a saved form for scripts
  sessionnote render --from note.yaml --target text

  # Add a custom intervention phrase
  sessionnote options add interventions "Narrative reframing" --group General
`),
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return app.runInteractive(cmd.Context())
		},
	}

	cmd.PersistentPreRunE = func(cmd *cobra.Command, _ []string) error {
		return app.setup(cmd)
	}
	cmd.PersistentPostRunE = func(*cobra.Command, []string) error {
		return app.Close()
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&app.ConfigFile, "config", "", "config file (default searches ./.sessionnote.yaml and the user config dir)")
	flags.String("store", "", "directory of the custom option store")
	flags.String("backend", "", "custom option storage backend (diskv|file|sqlite|memory)")
	flags.Bool("debug", false, "write debug entries to the log file")
	flags.BoolVar(&app.NoAltScreen, "no-alt-screen", false, "disable the alternate screen buffer")
	_ = app.Viper.BindPFlag(config.KeyStorePath, flags.Lookup("store"))
	_ = app.Viper.BindPFlag(config.KeyBackend, flags.Lookup("backend"))
	_ = app.Viper.BindPFlag(config.KeyLogDebug, flags.Lookup("debug"))

	cmd.AddCommand(newOptionsCmd(app))
	cmd.AddCommand(newRenderCmd(app))
	cmd.AddCommand(newCopyCmd(app))
	cmd.AddCommand(newPrintCmd(app))
	addVersion(cmd)

	return cmd
}

func (app *App) setup(cmd *cobra.Command) error {
	if err := config.LoadDotEnv(app.DotEnv...); err != nil {
		return err
	}
	if err := config.Read(app.Viper, app.ConfigFile); err != nil {
		return err
	}
	cfg, err := config.Decode(app.Viper)
	if err != nil {
		return err
	}
	if app.NoAltScreen {
		cfg.AltScreen = false
	}
	app.Config = cfg

	if app.Logger == nil {
		logger, err := logging.New(cfg.Log)
		if err != nil {
			return err
		}
		app.Logger = logger
	}
	app.Logger.Debug("configuration loaded",
		zap.String("command", cmd.CommandPath()),
		zap.String("config", app.Viper.ConfigFileUsed()),
		zap.String("backend", cfg.Storage.Backend),
		zap.String("store", cfg.Storage.Path))
	return nil
}

// Store opens the configured custom option store on first use.
func (app *App) Store(ctx context.Context) (*store.Store, error) {
	if app.store != nil {
		return app.store, nil
	}
	if ctx == nil {
		ctx = context.Background()
	}
	kv, closer, err := store.Open(ctx, app.Config.Storage)
	if err != nil {
		return nil, err
	}
	app.store = store.New(kv, app.logger())
	app.closer = closer
	return app.store, nil
}

// Close releases the store and flushes the logger.
func (app *App) Close() error {
	var err error
	if app.closer != nil {
		err = app.closer.Close()
		app.closer = nil
	}
	if app.Logger != nil {
		_ = app.Logger.Sync()
	}
	return err
}

func (app *App) logger() *zap.Logger {
	if app.Logger == nil {
		return logging.Nop()
	}
	return app.Logger
}

func (app *App) clipboard() clipboard.Writer {
	if app.Clipboard == nil {
		app.Clipboard = clipboard.NewSystem(app.logger())
	}
	return app.Clipboard
}

func (app *App) printer() printer.Printer {
	if app.Printer == nil {
		app.Printer = printer.NewBrowser("", app.logger())
	}
	return app.Printer
}

func (app *App) runInteractive(ctx context.Context) error {
	if !app.isTerminal() {
		return ErrNoTerminal
	}
	st, err := app.Store(ctx)
	if err != nil {
		return err
	}
	return app.runTUI(tui.Config{
		Store:     st,
		Defaults:  app.Config.Defaults,
		Clipboard: app.clipboard(),
		Printer:   app.printer(),
		Logger:    app.logger(),
	}, app.Config.AltScreen)
}

func stdioIsTerminal() bool {
	return isTerminal(os.Stdin.Fd()) && isTerminal(os.Stdout.Fd())
}

func isTerminal(fd uintptr) bool {
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
