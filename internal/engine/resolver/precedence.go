package resolver

import (
	"path/filepath"
	"strings"

	"go.trai.ch/bindle/internal/core/domain"
	"go.trai.ch/zerr"
)

// resolveFilename runs the precedence chain for a module reference:
// package map, alias map, then generic resolution. The first strategy
// that produces a filename wins.
func (r *Resolver) resolveFilename(requiringModule string, item *domain.BundleItem) (string, error) {
	if entry, ok := r.session.packageEntry(item.ModuleName); ok {
		return entry, nil
	}

	if alias, ok := r.cfg.Alias(item.ModuleName); ok {
		return r.rebase(alias.Target), nil
	}

	return r.resolveGeneric(requiringModule, item)
}

// rebase normalizes an alias target onto the project root regardless of
// how the target was originally expressed, by computing the path
// relative to the root and joining it back on.
func (r *Resolver) rebase(target string) string {
	abs := target
	if !filepath.IsAbs(abs) {
		abs = filepath.Join(r.cfg.Root, abs)
	}
	rel, err := filepath.Rel(r.cfg.Root, abs)
	if err != nil {
		// Different volume; the cleaned absolute target is the best we can do.
		return filepath.Clean(abs)
	}
	return filepath.Join(r.cfg.Root, rel)
}

// resolveGeneric hands the reference to the Node-style resolution
// algorithm. The requiring file is passed only for non-package
// references, so package lookups start from the configured search roots.
// A failure here is fatal for the run and carries the full resolution
// context.
func (r *Resolver) resolveGeneric(requiringModule string, item *domain.BundleItem) (string, error) {
	opts := domain.ResolveOptions{
		Extensions:  r.cfg.Extensions,
		Directories: r.cfg.Directories,
		Shims:       r.session.shimTable(),
		PathFilter:  r.pathFilter,
	}
	if !item.Package {
		opts.Filename = r.requiringFile(requiringModule)
	}

	filename, err := r.paths.Resolve(item.ModuleName, opts)
	if err != nil {
		err = zerr.With(err, "module", item.ModuleName)
		err = zerr.With(err, "required_by", requiringModule)
		err = zerr.With(err, "extensions", strings.Join(opts.Extensions, ","))
		err = zerr.With(err, "directories", strings.Join(opts.Directories, ","))
		return "", err
	}
	return filename, nil
}

// requiringFile returns the file relative references are resolved
// against. Entry modules have no requiring file; the config file in the
// project root stands in so resolution starts from the root directory.
func (r *Resolver) requiringFile(requiringModule string) string {
	if requiringModule == "" {
		return filepath.Join(r.cfg.Root, domain.ConfigFileName)
	}
	return requiringModule
}

// pathFilter redirects deep paths resolved through generic search: the
// first configured alias whose name matches the candidate path, treated
// as a regular expression, rewrites the candidate by joining it with the
// alias target. Candidates no alias matches pass through unmodified.
func (r *Resolver) pathFilter(path string) string {
	for _, p := range r.aliasPatterns {
		if p.re.MatchString(path) {
			return filepath.Join(path, p.target)
		}
	}
	return path
}
