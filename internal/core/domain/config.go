package domain

import "slices"

// ConfigFileName is the name of the bindle configuration file.
const ConfigFileName = "bindle.yaml"

const (
	// DirPerm is the permission used when creating directories.
	DirPerm = 0o755
	// FilePerm is the permission used when creating files.
	FilePerm = 0o644
)

// Alias maps a module name to a replacement target. During generic
// resolution the name is additionally treated as a regular expression
// against candidate paths, so deep paths can be redirected too.
type Alias struct {
	Name   string
	Target string
}

// Config is the fully resolved bundler configuration. All paths are
// absolute by the time the loader hands the Config out.
type Config struct {
	// Root is the project base path.
	Root string

	// Entries are the entry module references to bundle.
	Entries []string

	// Exclude lists module names that are acknowledged but resolve to
	// nothing.
	Exclude []string

	// Aliases in configuration order. Order matters: the first alias
	// whose name matches wins during deep-path rewriting.
	Aliases []Alias

	// Extensions tried during generic resolution, e.g. ".js", ".json".
	Extensions []string

	// TypedExtensions mark files whose dependency extraction happens in a
	// downstream stage, e.g. ".css", ".less".
	TypedExtensions []string

	// Directories are the search roots for package-style references.
	Directories []string

	// Components is the bower components tree.
	Components string

	// Shim enables substitution of environment built-ins.
	Shim bool

	// ShimDir is the directory holding shim modules.
	ShimDir string
}

// Excluded reports whether the module name is in the exclusion list.
func (c *Config) Excluded(name string) bool {
	return slices.Contains(c.Exclude, name)
}

// Alias returns the alias configured for the exact module name.
func (c *Config) Alias(name string) (Alias, bool) {
	for _, a := range c.Aliases {
		if a.Name == name {
			return a, true
		}
	}
	return Alias{}, false
}
