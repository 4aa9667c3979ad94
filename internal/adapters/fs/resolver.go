package fs

import (
	"encoding/json"
	"os"
	"path/filepath"

	"go.trai.ch/bindle/internal/core/domain"
	"go.trai.ch/bindle/internal/core/ports"
)

var _ ports.PathResolver = (*NodeResolver)(nil)

// NodeResolver implements ports.PathResolver with a Node-style module
// resolution algorithm: shim table, then file probing with the
// configured extensions, then directory probing via package metadata and
// index files. Package-style names are searched in the configured
// directories; everything else resolves against the requiring file.
type NodeResolver struct{}

// NewNodeResolver creates a new NodeResolver.
func NewNodeResolver() *NodeResolver {
	return &NodeResolver{}
}

// metaFiles are the package metadata files consulted when a reference
// resolves to a directory, in precedence order.
var metaFiles = []string{"package.json", "bower.json"}

// Resolve resolves a module name to an absolute filename.
func (r *NodeResolver) Resolve(name string, opts domain.ResolveOptions) (string, error) {
	if shim, ok := opts.Shims[name]; ok {
		// Shim paths are trusted as-is; the shim modules ship with the project.
		return shim, nil
	}

	if !domain.IsPackageReference(name) {
		path := name
		if !filepath.IsAbs(path) {
			path = filepath.Join(filepath.Dir(opts.Filename), name)
		}
		if found, ok := r.loadTarget(path, opts); ok {
			return found, nil
		}
		return "", domain.ErrModuleNotFound
	}

	for _, dir := range opts.Directories {
		if found, ok := r.loadTarget(filepath.Join(dir, name), opts); ok {
			return found, nil
		}
	}
	return "", domain.ErrModuleNotFound
}

// loadTarget probes path as a file first, then as a directory.
func (r *NodeResolver) loadTarget(path string, opts domain.ResolveOptions) (string, bool) {
	if found, ok := r.loadFile(path, opts); ok {
		return found, true
	}
	return r.loadDir(path, opts)
}

// loadFile tries the path as given, then with each configured extension.
// Every candidate passes through the path filter before it is probed, so
// alias configuration can redirect deep paths.
func (r *NodeResolver) loadFile(path string, opts domain.ResolveOptions) (string, bool) {
	for _, ext := range append([]string{""}, opts.Extensions...) {
		candidate := path + ext
		if opts.PathFilter != nil {
			candidate = opts.PathFilter(candidate)
		}
		if isFile(candidate) {
			return candidate, true
		}
	}
	return "", false
}

// loadDir resolves a directory reference through its package metadata
// main entry, falling back to an index file.
func (r *NodeResolver) loadDir(dir string, opts domain.ResolveOptions) (string, bool) {
	if !isDir(dir) {
		return "", false
	}

	for _, meta := range metaFiles {
		main := readMain(filepath.Join(dir, meta))
		if main == "" {
			continue
		}
		if found, ok := r.loadFile(filepath.Join(dir, main), opts); ok {
			return found, true
		}
	}

	return r.loadFile(filepath.Join(dir, "index"), opts)
}

// readMain extracts the first main entry from a package metadata file.
// Unreadable or malformed metadata yields no entry.
func readMain(path string) string {
	// #nosec G304 -- metadata path is derived from resolution candidates
	data, err := os.ReadFile(path)
	if err != nil {
		return ""
	}

	var meta struct {
		Main any `json:"main"`
	}
	if err := json.Unmarshal(data, &meta); err != nil {
		return ""
	}

	switch main := meta.Main.(type) {
	case string:
		return main
	case []any:
		for _, entry := range main {
			if s, ok := entry.(string); ok {
				return s
			}
		}
	}
	return ""
}

func isFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
