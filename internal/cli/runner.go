package cli

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/idilsaglam/fieldlist/internal/config"
	"github.com/idilsaglam/fieldlist/internal/field"
	"github.com/idilsaglam/fieldlist/internal/model"
	"github.com/idilsaglam/fieldlist/internal/store/filestore"
	"github.com/idilsaglam/fieldlist/internal/store/sqlitestore"
	"github.com/idilsaglam/fieldlist/internal/ui"
)

// usageError marks bad input from the command line (exit code 2).
type usageError struct {
	err  error
	hint string
}

func (e *usageError) Error() string { return e.err.Error() }
func (e *usageError) Unwrap() error { return e.err }

func usagef(format string, args ...any) error {
	return &usageError{err: fmt.Errorf(format, args...)}
}

// Run executes the command line and returns an exit code (0 ok, 1 error, 2 usage).
func Run(args []string, stdout, stderr io.Writer) int {
	a := &app{out: stdout, errOut: stderr}
	root := a.rootCmd()
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	err := root.Execute()
	a.closeLog()
	if err == nil {
		return 0
	}

	p := ui.NewPrinter(stderr, a.cfg.UI.Theme, a.colorMode())
	p.Fail(err.Error())
	var ue *usageError
	if errors.As(err, &ue) {
		if ue.hint != "" {
			p.Println(p.C(p.Theme().Muted, "Hint: "+ue.hint))
		}
		return 2
	}
	return 1
}

type app struct {
	out, errOut io.Writer

	configPath string
	backend    string
	path       string
	entry      string
	fieldID    string
	theme      string
	color      string
	logFile    string
	verbose    bool

	cfg     config.Config
	log     *slog.Logger
	logSink io.Closer
}

func (a *app) colorMode() ui.ColorMode {
	switch a.color {
	case "always":
		return ui.ColorAlways
	case "never":
		return ui.ColorNever
	}
	return ui.ColorAuto
}

func (a *app) printer() *ui.Printer {
	return ui.NewPrinter(a.out, a.cfg.UI.Theme, a.colorMode())
}

// setup loads config, applies flag overrides and configures logging.
// Interactive commands log nowhere unless --log-file is set, so log lines
// never land on the editor's screen.
func (a *app) setup(cmd *cobra.Command, interactive bool) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	flags := cmd.Flags()
	if flags.Changed("backend") {
		cfg.Store.SwitchBackend(a.backend)
	}
	if flags.Changed("path") {
		cfg.Store.Path = a.path
	}
	if flags.Changed("entry") {
		cfg.Store.Entry = a.entry
	}
	if flags.Changed("field") {
		cfg.Store.Field = a.fieldID
	}
	if flags.Changed("theme") {
		cfg.UI.Theme = a.theme
	}
	switch cfg.Store.Backend {
	case config.BackendFile, config.BackendSQLite:
	default:
		return usagef("unknown backend %q (want file or sqlite)", cfg.Store.Backend)
	}
	switch a.color {
	case "auto", "always", "never":
	default:
		return usagef("unknown --color %q (want auto, always or never)", a.color)
	}
	a.cfg = cfg

	level := slog.LevelInfo
	if a.verbose {
		level = slog.LevelDebug
	}
	var sink io.Writer = a.errOut
	switch {
	case a.logFile != "":
		f, err := os.OpenFile(a.logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		a.logSink = f
		sink = f
	case interactive:
		sink = io.Discard
	}
	a.log = slog.New(slog.NewTextHandler(sink, &slog.HandlerOptions{Level: level}))
	return nil
}

func (a *app) closeLog() {
	if a.logSink != nil {
		_ = a.logSink.Close()
		a.logSink = nil
	}
}

// session is an open store plus an initialized controller over it.
type session struct {
	ctrl   *field.Controller
	sqlite *sqlitestore.Store
	label  string
	close  func() error
}

func (a *app) open() (*session, error) {
	s := &session{close: func() error { return nil }}
	var store field.Store
	switch a.cfg.Store.Backend {
	case config.BackendSQLite:
		st, err := sqlitestore.Open(a.cfg.Store.Path, a.cfg.Store.Entry, a.cfg.Store.Field)
		if err != nil {
			return nil, err
		}
		store, s.sqlite, s.close = st, st, st.Close
		s.label = fmt.Sprintf("%s · %s/%s", a.cfg.Store.Path, a.cfg.Store.Entry, a.cfg.Store.Field)
	default:
		st, err := filestore.New(a.cfg.Store.Path)
		if err != nil {
			return nil, err
		}
		store = st
		s.label = st.Path
	}
	a.log.Debug("store opened", "backend", a.cfg.Store.Backend, "location", s.label)

	s.ctrl = field.New(store, field.WithLogger(a.log))
	if err := s.ctrl.Initialize(); err != nil {
		_ = s.close()
		return nil, err
	}
	return s, nil
}

// withSession opens the field, runs fn and closes the store.
func (a *app) withSession(fn func(s *session) error) error {
	s, err := a.open()
	if err != nil {
		return err
	}
	defer func() {
		if cerr := s.close(); cerr != nil {
			a.log.Warn("close store", "err", cerr)
		}
	}()
	return fn(s)
}

// parseIndex turns a 1-based command-line index into a list position.
func parseIndex(arg string, n int) (int, error) {
	i, err := strconv.Atoi(arg)
	if err != nil {
		return 0, usagef("not a number: %s", arg)
	}
	if i < 1 || i > n {
		return 0, &usageError{
			err:  fmt.Errorf("%w: have %d, got %d", model.ErrIndexOutOfRange, n, i),
			hint: "run `fieldlist ls` to see valid indexes",
		}
	}
	return i - 1, nil
}

func parseBool(arg string) (bool, error) {
	b, err := strconv.ParseBool(arg)
	if err != nil {
		return false, usagef("not a boolean: %s", arg)
	}
	return b, nil
}

func parseField(arg string) (model.Field, error) {
	switch f := model.Field(arg); f {
	case model.FieldTitle, model.FieldContent:
		return f, nil
	}
	return "", usagef("unknown field %q (want title or content)", arg)
}

func exactArgs(n int, usage string) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if len(args) != n {
			return usagef("usage: fieldlist %s", usage)
		}
		return nil
	}
}

func rangeArgs(lo, hi int, usage string) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if len(args) < lo || (hi >= 0 && len(args) > hi) {
			return usagef("usage: fieldlist %s", usage)
		}
		return nil
	}
}
