package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/idilsaglam/packlist/internal/config"
	"github.com/idilsaglam/packlist/internal/engine"
	"github.com/idilsaglam/packlist/internal/logging"
	"github.com/idilsaglam/packlist/internal/tui"
	"github.com/idilsaglam/packlist/internal/ui"
)

// Version is set at build time via -ldflags
var Version = "dev"

// Exit codes
const (
	ExitOK    = 0
	ExitError = 1
	ExitUsage = 2
)

type usageError struct{ err error }

func (e usageError) Error() string { return e.err.Error() }
func (e usageError) Unwrap() error { return e.err }

// exitCodeError carries a non-zero exit code without a message.
type exitCodeError int

func (e exitCodeError) Error() string { return fmt.Sprintf("exit status %d", int(e)) }

type flags struct {
	configPath string
	theme      string
	sort       string
	logLevel   string
}

// app is built once per invocation by the root PersistentPreRunE.
type app struct {
	log      zerolog.Logger
	engine   *engine.Engine
	closeLog func() error
}

func (a *app) setup(f *flags) error {
	cfg, err := config.Load(f.configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if f.theme != "" {
		cfg.UI.Theme = f.theme
	}
	if f.sort != "" {
		cfg.UI.DefaultSort = f.sort
	}
	if f.logLevel != "" {
		cfg.Logging.Level = f.logLevel
	}
	mode, err := cfg.SortMode()
	if err != nil {
		return usageError{fmt.Errorf("--sort: %w", err)}
	}
	ui.SetTheme(cfg.UI.Theme)

	logger, closeLog, err := logging.Setup(cfg.Logging)
	if err != nil {
		// Fall back to a null logger if file logging fails
		logger = zerolog.Nop()
	}
	logger.Info().Str("version", Version).Str("theme", cfg.UI.Theme).Stringer("sort", mode).Msg("starting packlist")

	a.log = logger
	a.closeLog = closeLog
	a.engine = engine.New(engine.WithLogger(logger), engine.WithSortMode(mode))
	return nil
}

// newRootCmd builds the command tree around a, which the root
// PersistentPreRunE fills in. stdin/stdout/stderr come from the cobra
// command's In/Out/Err.
func newRootCmd(a *app) *cobra.Command {
	f := &flags{}

	root := &cobra.Command{
		Use:   "packlist",
		Short: "An in-memory packing list for your next trip",
		Long: `packlist keeps a packing list for the current session: add items with a
quantity, tick them off as they go in the bag, and sort by input order,
description, or packed status. Nothing is saved when you quit.

Without a subcommand it opens the interactive list. When stdin or stdout is
not a terminal it falls back to the line-oriented shell.`,
		Args:          usageArgs(cobra.NoArgs),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(f)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if !isTerminal(cmd.InOrStdin()) || !isTerminal(cmd.OutOrStdout()) {
				return runShell(cmd, a)
			}
			return tui.Run(a.engine, tea.WithInput(cmd.InOrStdin()), tea.WithOutput(cmd.OutOrStdout()))
		},
	}

	root.PersistentFlags().StringVar(&f.configPath, "config", "", "config file (default "+config.DefaultConfigDir()+"/config.yaml)")
	root.PersistentFlags().StringVar(&f.theme, "theme", "", "color theme: classic, neon or mono")
	root.PersistentFlags().StringVar(&f.sort, "sort", "", "initial sort: input, description or packed")
	root.PersistentFlags().StringVar(&f.logLevel, "log-level", "", "log level: debug, info, warn or error")
	root.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return usageError{err}
	})

	root.AddCommand(
		&cobra.Command{
			Use:   "shell",
			Short: "Read list commands line by line from stdin",
			Long:  "Read list commands line by line from stdin.\n\n" + shellHelpText(),
			Args:  usageArgs(cobra.NoArgs),
			RunE: func(cmd *cobra.Command, args []string) error {
				return runShell(cmd, a)
			},
		},
		&cobra.Command{
			Use:   "version",
			Short: "Print the version",
			Args:  usageArgs(cobra.NoArgs),
			// no config or logging needed
			PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
				return nil
			},
			Run: func(cmd *cobra.Command, args []string) {
				fmt.Fprintf(cmd.OutOrStdout(), "packlist %s\n", Version)
			},
		},
	)
	return root
}

func shellHelpText() string {
	var b strings.Builder
	PrintShellHelp(&b)
	return b.String()
}

// usageArgs marks argument validation failures as usage errors.
func usageArgs(v cobra.PositionalArgs) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := v(cmd, args); err != nil {
			return usageError{err}
		}
		return nil
	}
}

func runShell(cmd *cobra.Command, a *app) error {
	sh := NewShell(a.engine, cmd.InOrStdin(), cmd.OutOrStdout(), cmd.ErrOrStderr(), a.log)
	if isTerminal(cmd.InOrStdin()) {
		sh.Prompt = "> "
	}
	if code := sh.Run(); code != ExitOK {
		return exitCodeError(code)
	}
	return nil
}

func isTerminal(v any) bool {
	f, ok := v.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// Execute runs the command tree against args and returns an exit code
// (0 ok, 1 error, 2 usage).
func Execute(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	a := &app{closeLog: func() error { return nil }}
	defer func() { _ = a.closeLog() }()

	root := newRootCmd(a)
	root.SetArgs(args)
	root.SetIn(stdin)
	root.SetOut(stdout)
	root.SetErr(stderr)

	err := root.Execute()
	if err == nil {
		return ExitOK
	}

	var code exitCodeError
	if errors.As(err, &code) {
		return int(code)
	}
	ui.Fail(stderr, err.Error())
	var usage usageError
	if errors.As(err, &usage) {
		return ExitUsage
	}
	return ExitError
}
