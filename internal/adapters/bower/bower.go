// Package bower enumerates installed bower components from disk.
package bower

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"

	"go.trai.ch/bindle/internal/core/domain"
	"go.trai.ch/bindle/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.PackageEnumerator = (*Enumerator)(nil)

// Enumerator implements ports.PackageEnumerator by scanning a bower
// components tree. Enumeration is best-effort: packages without readable
// metadata or an existing entry candidate are skipped.
type Enumerator struct{}

// NewEnumerator creates a new Enumerator.
func NewEnumerator() *Enumerator {
	return &Enumerator{}
}

// bowerMeta is the subset of bower package metadata we consume.
type bowerMeta struct {
	Name string `json:"name"`
	Main any    `json:"main"`
}

// List enumerates the packages installed under dir with their best-guess
// entry files. A missing or unreadable tree is an error the caller
// treats as "no packages available".
func (e *Enumerator) List(ctx context.Context, dir string) ([]domain.Package, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrComponentsUnavailable.Error()), "dir", dir)
	}

	var pkgs []domain.Package
	for _, entry := range entries {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if !entry.IsDir() {
			continue
		}
		if pkg, ok := describe(entry.Name(), filepath.Join(dir, entry.Name())); ok {
			pkgs = append(pkgs, pkg)
		}
	}
	return pkgs, nil
}

// describe reads the package metadata and probes the entry candidates in
// order: declared main files, <name>.js, index.js. The first candidate
// that exists as a regular file wins; a package with none is skipped.
func describe(name, dir string) (domain.Package, bool) {
	meta := readMeta(dir)
	if meta.Name != "" {
		name = meta.Name
	}

	for _, candidate := range entryCandidates(name, meta.Main) {
		path := filepath.Join(dir, candidate)
		if info, err := os.Stat(path); err == nil && info.Mode().IsRegular() {
			return domain.Package{Name: name, Dir: dir, Entry: path}, true
		}
	}
	return domain.Package{}, false
}

// readMeta loads the package metadata, preferring the installer-written
// .bower.json over the published bower.json. Unreadable or malformed
// metadata yields an empty result.
func readMeta(dir string) bowerMeta {
	var meta bowerMeta
	for _, name := range []string{".bower.json", "bower.json"} {
		// #nosec G304 -- path is inside the enumerated components tree
		data, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			continue
		}
		if err := json.Unmarshal(data, &meta); err != nil {
			continue
		}
		return meta
	}
	return bowerMeta{}
}

func entryCandidates(name string, main any) []string {
	var candidates []string
	switch main := main.(type) {
	case string:
		candidates = append(candidates, main)
	case []any:
		for _, entry := range main {
			if s, ok := entry.(string); ok {
				candidates = append(candidates, s)
			}
		}
	}
	return append(candidates, name+".js", "index.js")
}
