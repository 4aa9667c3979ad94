package domain

// Package describes one installed secondary-package-manager package.
type Package struct {
	// Name is the package name as published.
	Name string

	// Dir is the package's canonical directory.
	Dir string

	// Entry is the best-guess absolute entry filename.
	Entry string
}

// ResolveOptions parameterize the generic path-resolution algorithm.
type ResolveOptions struct {
	// Filename is the requiring file. It is empty for package-style
	// references, so resolution starts from the configured search roots
	// rather than a specific directory.
	Filename string

	// Extensions tried when probing candidate files.
	Extensions []string

	// Directories are the search roots for package-style references.
	Directories []string

	// Shims maps built-in module names to injected implementations.
	// Nil means no shimming.
	Shims map[string]string

	// PathFilter rewrites a candidate resolved path. It is applied to
	// every candidate before the algorithm commits to it.
	PathFilter func(path string) string
}
