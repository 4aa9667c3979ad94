// Package app implements the application layer for bindle.
package app

import (
	"context"
	"fmt"

	"go.trai.ch/bindle/internal/core/domain"
	"go.trai.ch/bindle/internal/core/ports"
	"go.trai.ch/bindle/internal/engine/resolver"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	paths        ports.PathResolver
	reader       ports.SourceReader
	collector    ports.DependencyCollector
	packages     ports.PackageEnumerator
	hasher       ports.Hasher
	logger       ports.Logger
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	paths ports.PathResolver,
	reader ports.SourceReader,
	collector ports.DependencyCollector,
	packages ports.PackageEnumerator,
	hasher ports.Hasher,
	log ports.Logger,
) *App {
	return &App{
		configLoader: loader,
		paths:        paths,
		reader:       reader,
		collector:    collector,
		packages:     packages,
		hasher:       hasher,
		logger:       log,
	}
}

// RunOptions configuration for the Run method.
type RunOptions struct {
	// ManifestPath, when set, is where the resolved-bundle manifest is written.
	ManifestPath string
}

// Run resolves the dependency graph for the given entry modules.
// Entries passed on the command line take precedence over the configured
// ones. A resolution failure aborts the run; nothing partial is written.
func (a *App) Run(ctx context.Context, entries []string, opts RunOptions) error {
	cfg, err := a.configLoader.Load(".")
	if err != nil {
		return zerr.Wrap(err, "failed to load configuration")
	}

	if len(entries) == 0 {
		entries = cfg.Entries
	}
	if len(entries) == 0 {
		return domain.ErrNoEntriesSpecified
	}

	res, err := resolver.New(cfg, a.paths, a.reader, a.collector, a.packages, a.logger)
	if err != nil {
		return err
	}
	res.Initialize(ctx)

	buffer := domain.NewBuffer()
	g, gctx := errgroup.WithContext(ctx)
	for _, entry := range entries {
		item := domain.NewBundleItem(entry)
		g.Go(func() error {
			return res.Resolve(gctx, "", item, buffer)
		})
	}
	if err := g.Wait(); err != nil {
		return zerr.Wrap(err, domain.ErrBundleFailed.Error())
	}

	a.logger.Info(fmt.Sprintf("resolved %d files from %d entries", buffer.Len(), len(entries)))

	if opts.ManifestPath != "" {
		return a.writeManifest(opts.ManifestPath, buffer)
	}
	return nil
}
