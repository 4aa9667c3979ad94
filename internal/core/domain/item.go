// Package domain contains the core domain models for the bundle dependency graph.
package domain

import (
	"path/filepath"
	"strings"
)

// BundleItem is one node in the dependency graph being bundled.
// It is created by its requirer, mutated only by the resolver while it
// passes through the resolution stages, and is immutable once the
// resolver returns it.
type BundleItem struct {
	// ModuleName is the raw reference as written by the requiring file,
	// either a bare package name or a relative path.
	ModuleName string

	// LookupName is the canonical cache key: the module name itself for
	// package-style references, or the requiring file's directory joined
	// with the module name for relative references.
	LookupName string

	// Filename is the resolved absolute path. It stays empty until
	// resolution completes, and remains empty for excluded modules.
	Filename string

	// Source is the file content, populated only for newly visited items
	// that are not typed-source files.
	Source string

	// Dependencies holds the successfully resolved children in declaration
	// order. Excluded children are omitted entirely.
	Dependencies []*BundleItem

	// Package reports whether the reference is resolved via search-path
	// lookup rather than relative to the requiring file.
	Package bool

	// Script reports whether the resolved file can be walked for
	// require-style references.
	Script bool

	// TypedSource reports whether dependency extraction for the resolved
	// file is deferred to a downstream processing stage.
	TypedSource bool
}

// NewBundleItem creates an item for the given module reference.
func NewBundleItem(moduleName string) *BundleItem {
	return &BundleItem{
		ModuleName: moduleName,
		Package:    IsPackageReference(moduleName),
	}
}

// Resolved reports whether the item was resolved to a filename.
// Excluded modules never resolve.
func (it *BundleItem) Resolved() bool {
	return it.Filename != ""
}

// IsPackageReference reports whether name is a package-style reference,
// i.e. neither relative to the requiring file nor absolute.
func IsPackageReference(name string) bool {
	return name != "" && !strings.HasPrefix(name, ".") && !filepath.IsAbs(name)
}
