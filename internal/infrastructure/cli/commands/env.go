package commands

import (
	"context"
	"io"
	"sync"

	"github.com/doeshing/webdiag/internal/app"
	"github.com/doeshing/webdiag/internal/infrastructure/config"
)

// Env carries the persistent flags shared by every command and builds the
// container on first use, after flags are parsed.
type Env struct {
	ConfigPath string
	Verbose    bool
	NoColor    bool
	Out        io.Writer
	LogOut     io.Writer

	once      sync.Once
	container *app.Container
	err       error
}

// Container returns the lazily built dependency graph.
func (e *Env) Container(ctx context.Context) (*app.Container, error) {
	e.once.Do(func() {
		e.container, e.err = app.BuildContainer(ctx, app.Options{
			ConfigPath: e.ConfigPath,
			Verbose:    e.Verbose,
			Out:        e.Out,
			LogOut:     e.LogOut,
		})
	})
	return e.container, e.err
}

// ConfigLoader returns a loader that does not require a valid config file,
// so config subcommands keep working when the file is broken.
func (e *Env) ConfigLoader() *config.FileLoader {
	return config.NewFileLoader(e.ConfigPath)
}
