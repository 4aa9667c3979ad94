package app

import (
	"os"
	"slices"
	"strings"

	"go.trai.ch/bindle/internal/core/domain"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// ManifestEntry describes one resolved bundle entry.
type ManifestEntry struct {
	Module       string   `yaml:"module"`
	Filename     string   `yaml:"filename"`
	Digest       string   `yaml:"digest"`
	Dependencies []string `yaml:"dependencies,omitempty"`
}

// writeManifest renders the buffered entries to a YAML manifest. Entries
// are sorted by filename because the buffer reflects completion order,
// which varies between runs.
func (a *App) writeManifest(path string, buffer *domain.Buffer) error {
	items := buffer.Items()
	entries := make([]ManifestEntry, 0, len(items))

	for _, item := range items {
		deps := make([]string, 0, len(item.Dependencies))
		for _, dep := range item.Dependencies {
			deps = append(deps, dep.ModuleName)
		}
		entries = append(entries, ManifestEntry{
			Module:       item.ModuleName,
			Filename:     item.Filename,
			Digest:       a.hasher.Sum([]byte(item.Source)),
			Dependencies: deps,
		})
	}

	slices.SortFunc(entries, func(x, y ManifestEntry) int {
		return strings.Compare(x.Filename, y.Filename)
	})

	data, err := yaml.Marshal(entries)
	if err != nil {
		return zerr.Wrap(err, domain.ErrManifestWriteFailed.Error())
	}
	if err := os.WriteFile(path, data, domain.FilePerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrManifestWriteFailed.Error()), "path", path)
	}
	return nil
}
