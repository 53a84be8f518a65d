// Command plaindeck shows a plain-text presentation in the terminal.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"plaindeck/internal/config"
	"plaindeck/internal/slide"
	"plaindeck/internal/tui"
	"plaindeck/internal/viewer"
)

var (
	// Version is set during build
	Version = "dev"

	// BuildDate is set during build
	BuildDate = "unknown"
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "plaindeck <file>",
		Short: "Step through a plain-text presentation",
		Long: `plaindeck turns a plain-text file into slides and shows them one at a time.

Slides are separated by a blank line. A slide starting with '!' shows the
image at the path that follows it. Use h/l or the arrow keys to move, ? for
help and q to quit.`,
		Version: Version,
		Args:    exactArgs(1),
		RunE:    runView,
		// Usage goes to stderr from run, and only for argument errors.
		SilenceUsage: true,
	}

	cmd.SetVersionTemplate(`{{with .Name}}{{printf "%s " .}}{{end}}{{printf "version %s" .Version}}
Build Date: ` + BuildDate + `
`)

	cmd.PersistentFlags().StringP("config", "c", "", "Config file (default: ~/.config/plaindeck/config.toml, then ./plaindeck.toml)")
	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable debug logging and show layout details")
	cmd.PersistentFlags().String("log-file", "", "Write logs to this file (overrides config)")

	cmd.AddCommand(newExportCmd(), newInitConfigCmd())
	return cmd
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes the command line and returns the process exit code.
func run(args []string, stdout, stderr io.Writer) int {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	failed, err := cmd.ExecuteContextC(ctx)
	if err == nil {
		return 0
	}
	var argErr *argCountError
	if errors.As(err, &argErr) {
		fmt.Fprint(stderr, failed.UsageString())
	}
	return 1
}

// argCountError marks a wrong number of positional arguments, the only error
// that is followed by the usage text.
type argCountError struct {
	err error
}

func (e *argCountError) Error() string { return e.err.Error() }

func (e *argCountError) Unwrap() error { return e.err }

func exactArgs(n int) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := cobra.ExactArgs(n)(cmd, args); err != nil {
			return &argCountError{err: err}
		}
		return nil
	}
}

func runView(cmd *cobra.Command, args []string) error {
	path := args[0]
	cfg, err := loadConfig(cmd, path)
	if err != nil {
		return err
	}

	logger, closeLog, err := newViewLogger(cmd, cfg)
	if err != nil {
		return err
	}
	defer closeLog()

	ctrl, err := loadPresentation(path, cfg, logger)
	if err != nil {
		return err
	}

	title := cfg.Display.Title
	if title == "" {
		title = filepath.Base(path)
	}

	err = tui.Run(cmd.Context(), ctrl, tui.Options{
		Title:   title,
		Keys:    cfg.Keys,
		Display: cfg.Display,
		Verbose: verbose(cmd),
		Logger:  logger,
	})
	if errors.Is(err, tea.ErrProgramKilled) && cmd.Context().Err() != nil {
		return nil
	}
	return err
}

// loadPresentation parses the document and builds the controller. Any error
// here aborts before the viewer starts.
func loadPresentation(path string, cfg *config.Config, logger *slog.Logger) (*viewer.Controller, error) {
	slides, err := slide.ParseFile(path)
	if err != nil {
		return nil, err
	}

	ctrl, err := viewer.New(slides, viewer.KeyMap{Previous: cfg.Keys.Previous, Next: cfg.Keys.Next})
	if err != nil {
		return nil, err
	}

	logger.Info("presentation loaded", slog.String("path", path), slog.Int("slides", ctrl.Total()))
	return ctrl, nil
}

func loadConfig(cmd *cobra.Command, presentationPath string) (*config.Config, error) {
	explicit, _ := cmd.Flags().GetString("config")

	cfg, err := config.NewLoader().Load(presentationPath, explicit)
	if err != nil {
		return nil, fmt.Errorf("loading configuration: %w", err)
	}

	if logFile, _ := cmd.Flags().GetString("log-file"); logFile != "" {
		cfg.Logging.File = logFile
	}
	if verbose(cmd) {
		cfg.Logging.Level = "debug"
	}
	return cfg, nil
}

func verbose(cmd *cobra.Command) bool {
	v, _ := cmd.Flags().GetBool("verbose")
	return v
}

// newViewLogger returns a logger for the terminal viewer. The viewer owns the
// screen, so logs only go to a file, or nowhere.
func newViewLogger(cmd *cobra.Command, cfg *config.Config) (*slog.Logger, func(), error) {
	level, err := cfg.Logging.SlogLevel()
	if err != nil {
		return nil, nil, err
	}

	if cfg.Logging.File == "" {
		return slog.New(slog.NewTextHandler(io.Discard, nil)), func() {}, nil
	}

	f, err := tea.LogToFile(cfg.Logging.File, "plaindeck")
	if err != nil {
		return nil, nil, fmt.Errorf("opening log file: %w", err)
	}
	logger := slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: level}))
	logger.Debug("logging started", slog.String("command", cmd.CommandPath()), slog.String("version", Version))
	return logger, func() { _ = f.Close() }, nil
}

// newStderrLogger returns a logger for commands that do not take over the
// terminal.
func newStderrLogger(cmd *cobra.Command, cfg *config.Config) (*slog.Logger, error) {
	level, err := cfg.Logging.SlogLevel()
	if err != nil {
		return nil, err
	}
	return slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level})), nil
}
