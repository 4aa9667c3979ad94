// Package resolver implements the dependency-resolution engine of the bundler.
package resolver

import (
	"context"
	"path/filepath"
	"regexp"
	"slices"

	"go.trai.ch/bindle/internal/core/domain"
	"go.trai.ch/bindle/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// scriptExt marks files that can be walked for require references.
const scriptExt = ".js"

// Resolver resolves module references to absolute filenames and walks
// their dependencies into a flat set of bundle entries. A Resolver is
// constructed per bundling run and owns that run's caches.
type Resolver struct {
	cfg       *domain.Config
	paths     ports.PathResolver
	reader    ports.SourceReader
	collector ports.DependencyCollector
	packages  ports.PackageEnumerator
	logger    ports.Logger

	aliasPatterns []aliasPattern
	session       *session
}

type aliasPattern struct {
	re     *regexp.Regexp
	target string
}

// New creates a Resolver for one bundling run. Alias names double as
// regular expressions for deep-path rewriting, so a name that does not
// compile is a configuration error.
func New(
	cfg *domain.Config,
	paths ports.PathResolver,
	reader ports.SourceReader,
	collector ports.DependencyCollector,
	packages ports.PackageEnumerator,
	logger ports.Logger,
) (*Resolver, error) {
	patterns := make([]aliasPattern, 0, len(cfg.Aliases))
	for _, a := range cfg.Aliases {
		re, err := regexp.Compile(a.Name)
		if err != nil {
			return nil, zerr.With(zerr.Wrap(err, domain.ErrInvalidAliasPattern.Error()), "alias", a.Name)
		}
		patterns = append(patterns, aliasPattern{re: re, target: a.Target})
	}

	return &Resolver{
		cfg:           cfg,
		paths:         paths,
		reader:        reader,
		collector:     collector,
		packages:      packages,
		logger:        logger,
		aliasPatterns: patterns,
		session:       newSession(),
	}, nil
}

// Initialize prepares the run: it loads the shim table when shimming is
// enabled and builds the package map from the installed components.
// Enumeration failure is best-effort by design and never surfaces as an
// error; the map stays empty and later resolutions fall through to the
// next strategy.
func (r *Resolver) Initialize(ctx context.Context) {
	if r.cfg.Shim {
		r.session.setShims(builtinShims(r.cfg.ShimDir))
	}

	pkgs, err := r.packages.List(ctx, r.cfg.Components)
	if err != nil {
		r.logger.Warn("component enumeration failed, continuing without package map: " + err.Error())
		return
	}

	entries := make(map[string]string, len(pkgs))
	for _, p := range pkgs {
		entries[p.Name] = p.Entry
	}
	r.session.setPackages(entries)
}

// Resolve resolves item to a filename and, for newly discovered script
// files, recursively resolves their require references, appending every
// fully walked entry to buffer. It returns only after all transitively
// spawned child resolutions have joined.
//
// requiringModule is the file that referenced the item; the entry driver
// passes "" and the project root serves as the requiring directory.
// An item that returns with no filename was excluded and must be omitted
// from the caller's dependency list.
func (r *Resolver) Resolve(
	ctx context.Context,
	requiringModule string,
	item *domain.BundleItem,
	buffer *domain.Buffer,
) error {
	item.LookupName = r.lookupName(requiringModule, item)

	if filename, ok := r.session.cachedFilename(item.LookupName); ok {
		item.Filename = filename
		r.classify(item)
		return nil
	}

	if r.cfg.Excluded(item.ModuleName) {
		// Acknowledged but contributes nothing: no filename, no buffer entry.
		return nil
	}

	filename, err := r.resolveFilename(requiringModule, item)
	if err != nil {
		return err
	}
	item.Filename = filename
	r.classify(item)
	r.session.cacheLookup(item.LookupName, filename)

	if item.TypedSource {
		// Filename-resolved only; dependency extraction happens downstream.
		r.session.visit(filename)
		return nil
	}
	if !r.session.visit(filename) {
		// Cycle or shared dependency: resolves again, is read and walked once.
		return nil
	}

	if err := r.reader.Read(ctx, item); err != nil {
		return err
	}
	if err := r.walk(ctx, item, buffer); err != nil {
		return err
	}

	buffer.Append(item)
	return nil
}

// walk resolves the require references of a freshly read script item.
// Children are dispatched concurrently and joined before the parent
// completes. Resolved children are recorded in declaration order;
// excluded children are dropped.
func (r *Resolver) walk(ctx context.Context, item *domain.BundleItem, buffer *domain.Buffer) error {
	if !item.Script || !r.collector.HasRequire(item.Source) {
		return nil
	}

	names, err := r.collector.Collect(ctx, item)
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrDependencyScanFailed.Error()), "filename", item.Filename)
	}

	children := make([]*domain.BundleItem, len(names))
	g, ctx := errgroup.WithContext(ctx)
	for i, name := range names {
		child := domain.NewBundleItem(name)
		children[i] = child
		g.Go(func() error {
			return r.Resolve(ctx, item.Filename, child, buffer)
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	for _, child := range children {
		if child.Resolved() {
			item.Dependencies = append(item.Dependencies, child)
		}
	}
	return nil
}

// lookupName computes the canonical cache key for the reference: the
// module name itself for package-style references, or the requiring
// directory joined with the module name otherwise. Joining normalizes
// the path, so distinct relative requires of the same file collapse to
// one key.
func (r *Resolver) lookupName(requiringModule string, item *domain.BundleItem) string {
	if item.Package {
		return item.ModuleName
	}
	return filepath.Join(r.requiringDir(requiringModule), item.ModuleName)
}

func (r *Resolver) requiringDir(requiringModule string) string {
	if requiringModule == "" {
		return r.cfg.Root
	}
	return filepath.Dir(requiringModule)
}

// classify derives the capability flags from the resolved filename.
func (r *Resolver) classify(item *domain.BundleItem) {
	ext := filepath.Ext(item.Filename)
	item.Script = ext == scriptExt
	item.TypedSource = slices.Contains(r.cfg.TypedExtensions, ext)
}
