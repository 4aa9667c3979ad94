// Package deps extracts require-style references from module source.
package deps

import (
	"context"
	"regexp"
	"strings"

	"go.trai.ch/bindle/internal/core/domain"
	"go.trai.ch/bindle/internal/core/ports"
)

var _ ports.DependencyCollector = (*Walker)(nil)

// requirePattern matches require('name') and require("name") calls.
// Dynamic requires with non-literal arguments are deliberately ignored.
var requirePattern = regexp.MustCompile(`require\s*\(\s*['"]([^'"]+)['"]\s*\)`)

// Walker implements ports.DependencyCollector with a lexical scan of the
// module source.
type Walker struct{}

// NewWalker creates a new Walker.
func NewWalker() *Walker {
	return &Walker{}
}

// HasRequire reports whether the source contains at least one
// require-style reference. The substring check short-circuits the regex
// for the common case of sources without requires.
func (w *Walker) HasRequire(source string) bool {
	return strings.Contains(source, "require") && requirePattern.MatchString(source)
}

// Collect returns the referenced module names in declaration order,
// deduplicated on first occurrence.
func (w *Walker) Collect(ctx context.Context, item *domain.BundleItem) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	matches := requirePattern.FindAllStringSubmatch(item.Source, -1)
	seen := make(map[string]struct{}, len(matches))
	names := make([]string, 0, len(matches))
	for _, m := range matches {
		name := m[1]
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		names = append(names, name)
	}
	return names, nil
}
