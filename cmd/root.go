package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"

	"github.com/quocvuong92/tassist/internal/browser"
	"github.com/quocvuong92/tassist/internal/config"
	"github.com/quocvuong92/tassist/internal/display"
	"github.com/quocvuong92/tassist/internal/githubapi"
	"github.com/quocvuong92/tassist/internal/history"
	"github.com/quocvuong92/tassist/internal/logging"
	"github.com/quocvuong92/tassist/internal/logic"
	"github.com/quocvuong92/tassist/internal/model"
	"github.com/quocvuong92/tassist/internal/storage"
)

// Version is the release version (set via -ldflags)
var Version = "dev"

// App holds the application state
type App struct {
	cfg   *config.Config
	flags flagValues
	out   *display.Printer

	store     storage.Store
	model     *model.Manager
	logic     *logic.Logic
	history   *history.History
	logCloser io.Closer

	// collaborators, replaced in tests
	launcher logic.Launcher
	verifier logic.Verifier
}

// flagValues holds raw flag values; only flags the user changed override the config
type flagValues struct {
	dataFile     string
	storage      string
	logFormat    string
	verbose      bool
	render       bool
	verifyGithub bool
	noHistory    bool
}

// NewApp creates a new App instance with default configuration
func NewApp() *App {
	return &App{
		cfg: config.NewConfig(),
		out: display.Default,
	}
}

// Execute runs the root command
func Execute() {
	app := NewApp()
	defer app.Close()

	if err := fang.Execute(
		context.Background(),
		app.newRootCmd(),
		fang.WithVersion(Version),
		fang.WithNotifySignal(os.Interrupt),
	); err != nil {
		os.Exit(1)
	}
}

func (app *App) newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "tassist [command line]",
		Short: "Manage the students of your tutorial classes",
		Long: `TAssist keeps a roster of students for teaching assistants: contact details,
tutorial class, GitHub profile, project repository and progress.

Run without arguments for an interactive session, or pass one command line
to run it and exit.

Examples:
  tassist
  tassist list
  tassist add n/John Doe p/98765432 e/johnd@example.com s/A1234567X c/T01
  tassist github 2 g/https://github.com/johndoe
  tassist open A1234567X
  tassist --storage sqlite -d data/tassist.db`,
		Args:              cobra.ArbitraryArgs,
		SilenceUsage:      true,
		PersistentPreRunE: app.setup,
		RunE:              app.run,
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVarP(&app.flags.dataFile, "data-file", "d", "", "Roster file (default: "+config.DefaultDataFile+")")
	pf.StringVar(&app.flags.storage, "storage", "", "Storage backend: json or sqlite")
	pf.StringVar(&app.flags.logFormat, "log-format", "", "Log format: text or json")
	pf.BoolVarP(&app.flags.verbose, "verbose", "v", false, "Enable debug logging")
	pf.BoolVarP(&app.flags.render, "render", "r", false, "Render help as markdown")
	pf.BoolVar(&app.flags.verifyGithub, "verify-github", false, "Check that GitHub accounts exist before saving them")
	pf.BoolVar(&app.flags.noHistory, "no-history", false, "Do not record command history")

	// everything after the first argument belongs to the command line
	rootCmd.Flags().SetInterspersed(false)

	rootCmd.AddCommand(app.newStatusCmd())
	rootCmd.AddCommand(app.newConfigCmd())
	rootCmd.AddCommand(app.newHistoryCmd())
	rootCmd.AddCommand(app.newLoginCmd())
	rootCmd.AddCommand(app.newLogoutCmd())

	return rootCmd
}

// setup loads the configuration and applies the flags the user set
func (app *App) setup(cmd *cobra.Command, _ []string) error {
	if err := app.cfg.Load(); err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("data-file") {
		app.cfg.DataFile = app.flags.dataFile
	}
	if flags.Changed("storage") {
		app.cfg.Storage = app.flags.storage
	}
	if flags.Changed("log-format") {
		app.cfg.LogFormat = app.flags.logFormat
	}
	if flags.Changed("verbose") {
		app.cfg.Verbose = app.flags.verbose
	}
	if flags.Changed("render") {
		app.cfg.Render = app.flags.render
	}
	if flags.Changed("verify-github") {
		app.cfg.VerifyGithub = app.flags.verifyGithub
	}
	if flags.Changed("no-history") {
		app.cfg.HistoryEnabled = !app.flags.noHistory
	}

	if err := app.cfg.Validate(); err != nil {
		return err
	}

	closer, err := logging.Setup(app.cfg.Level(), app.cfg.Format(), app.cfg.LogFile)
	if err != nil {
		return err
	}
	app.logCloser = closer

	if app.cfg.Render {
		if err := app.out.InitRenderer("", 100); err != nil {
			logging.Warn("Markdown rendering disabled", logging.Fields{"error": err.Error()})
		}
	}
	return nil
}

// open loads the roster and wires the command pipeline
func (app *App) open() error {
	if app.logic != nil {
		return nil
	}

	store, err := storage.Open(app.cfg.Storage, app.cfg.DataFile)
	if err != nil {
		return err
	}
	ab, err := store.Load()
	if err != nil {
		store.Close()
		return fmt.Errorf("failed to load %s: %w", app.cfg.DataFile, err)
	}
	logging.Info("Roster loaded", logging.Fields{
		"path":     store.Path(),
		"storage":  app.cfg.Storage,
		"students": ab.Len(),
	})

	app.store = store
	app.model = model.NewManager(ab)

	l, err := logic.New(app.model, logic.Options{
		Store:    store,
		Launcher: app.browserLauncher(),
		Verifier: app.githubVerifier(),
		Logger:   logging.DefaultLogger,
	})
	if err != nil {
		return err
	}
	app.logic = l
	return nil
}

func (app *App) browserLauncher() logic.Launcher {
	if app.launcher != nil {
		return app.launcher
	}
	return spinningLauncher{browser.NewSystemLauncher()}
}

// githubVerifier returns nil when verification is off
func (app *App) githubVerifier() logic.Verifier {
	if app.verifier != nil {
		return app.verifier
	}
	if !app.cfg.VerifyGithub {
		return nil
	}

	token := app.cfg.GithubToken
	if token == "" {
		if saved, err := githubapi.LoadToken(); err == nil {
			token = saved
		}
	}

	opts := githubapi.Options{BaseURL: app.cfg.GithubAPIURL, Token: token}
	if app.cfg.Level() == logging.LevelDebug {
		opts.Logger = logging.DefaultLogger
	}
	return spinningVerifier{githubapi.NewClient(opts)}
}

// openHistory returns nil when history is disabled or cannot be located
func (app *App) openHistory() *history.History {
	if app.history != nil || !app.cfg.HistoryEnabled {
		return app.history
	}
	path, err := history.DefaultPath()
	if err != nil {
		logging.Warn("Command history disabled", logging.Fields{"error": err.Error()})
		return nil
	}
	h := history.New(path, app.cfg.HistoryLimit)
	if err := h.Load(); err != nil {
		app.out.ShowWarning(fmt.Sprintf("Note: Could not load history: %v", err))
	}
	app.history = h
	return h
}

func (app *App) run(cmd *cobra.Command, args []string) error {
	if err := app.open(); err != nil {
		return err
	}

	if len(args) > 0 {
		return app.runOnce(cmd.Context(), strings.Join(args, " "))
	}
	if !stdinIsTerminal() {
		return app.runLines(cmd.Context(), os.Stdin)
	}
	app.runInteractive(cmd.Context())
	return nil
}

// runOnce executes a single command line and reports its error to the caller
func (app *App) runOnce(ctx context.Context, line string) error {
	if h := app.openHistory(); h != nil {
		h.Add(line)
		app.saveHistory()
	}
	_, err := app.execute(ctx, line)
	return err
}

// Close releases the store and the log file
func (app *App) Close() {
	if app.store != nil {
		if err := app.store.Close(); err != nil {
			logging.Warn("Failed to close store", logging.Fields{"error": err.Error()})
		}
		app.store = nil
	}
	if app.logCloser != nil {
		app.logCloser.Close()
		app.logCloser = nil
	}
}
