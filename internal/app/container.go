package app

import (
	"context"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"

	"github.com/doeshing/webdiag/internal/application/checks"
	"github.com/doeshing/webdiag/internal/application/diagnose"
	"github.com/doeshing/webdiag/internal/infrastructure/config"
	"github.com/doeshing/webdiag/internal/infrastructure/history"
	"github.com/doeshing/webdiag/internal/infrastructure/python"
	"github.com/doeshing/webdiag/internal/infrastructure/report"
	"github.com/doeshing/webdiag/internal/infrastructure/sqlite"
	"github.com/doeshing/webdiag/internal/pkg/filesystem"
	"github.com/doeshing/webdiag/internal/pkg/logger"
	"github.com/doeshing/webdiag/internal/ports"
)

// Options controls how the container is assembled. Out receives the console
// summary (stdout when nil) and LogOut the operator logs (stderr when nil).
type Options struct {
	ConfigPath string
	Verbose    bool
	Out        io.Writer
	LogOut     io.Writer
}

// Container wires up application services with infrastructure adapters.
type Container struct {
	ConfigProvider  ports.ConfigProvider
	ConfigLoader    *config.FileLoader
	Logger          ports.Logger
	HistoryStore    ports.RunHistoryRepository
	DiagnoseService *diagnose.Service
	Out             io.Writer
}

// BuildContainer constructs the dependency graph.
func BuildContainer(ctx context.Context, opts Options) (*Container, error) {
	out := opts.Out
	if out == nil {
		out = os.Stdout
	}
	logOut := opts.LogOut
	if logOut == nil {
		logOut = os.Stderr
	}

	cfgLoader := config.NewFileLoader(opts.ConfigPath)
	cfg, err := cfgLoader.Load(ctx)
	if err != nil {
		return nil, err
	}

	log := logger.NewWithWriter(logOut, opts.Verbose)

	checkList := []ports.Check{
		checks.NewFileStructure(),
		checks.NewAppConfig(python.NewIntrospector(cfg.Python.Executable, cfg.Python.IntrospectTimeout)),
		checks.NewDependencies(python.NewPipLister(cfg.Python.Executable, cfg.Python.PackageQueryTimeout)),
		checks.NewDatabase(sqlite.NewInspector()),
		checks.NewTemplates(),
		checks.NewStatic(),
		checks.NewServer(),
		checks.NewPermissions(),
	}

	sinks := []ports.ReportSink{
		report.NewConsoleRenderer(out),
		report.NewBaseJSONWriter(cfg.Report.FileName, out),
	}

	var historyStore ports.RunHistoryRepository
	if cfg.History.Enabled {
		historyStore = history.NewSQLiteStore(filesystem.ExpandPath(cfg.History.Path))
		sinks = append(sinks, history.NewSink(historyStore))
	}

	diagnoseService := &diagnose.Service{
		ConfigProvider: cfgLoader,
		Checks:         checkList,
		Sinks:          sinks,
		Logger:         log,
		Progress:       report.NewConsoleProgress(out, isTerminal(out)),
	}

	return &Container{
		ConfigProvider:  cfgLoader,
		ConfigLoader:    cfgLoader,
		Logger:          log,
		HistoryStore:    historyStore,
		DiagnoseService: diagnoseService,
		Out:             out,
	}, nil
}

// isTerminal reports whether out is an interactive terminal with colors
// enabled; only then is progress animated.
func isTerminal(out io.Writer) bool {
	f, ok := out.(*os.File)
	if !ok || color.NoColor {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
