package domain

import "go.trai.ch/zerr"

var (
	// ErrModuleNotFound is returned when generic path resolution cannot find a module.
	ErrModuleNotFound = zerr.New("module not found")

	// ErrNoEntriesSpecified is returned when a bundle run is started without entry modules.
	ErrNoEntriesSpecified = zerr.New("no entry modules specified")

	// ErrInvalidAliasPattern is returned when an alias name does not compile as a regular expression.
	ErrInvalidAliasPattern = zerr.New("invalid alias pattern")

	// ErrSourceReadFailed is returned when a resolved module's source cannot be read.
	ErrSourceReadFailed = zerr.New("failed to read module source")

	// ErrDependencyScanFailed is returned when require references cannot be collected from a source.
	ErrDependencyScanFailed = zerr.New("failed to collect dependencies")

	// ErrComponentsUnavailable is returned when the components tree cannot be enumerated.
	ErrComponentsUnavailable = zerr.New("components tree unavailable")

	// ErrConfigNotFound is returned when no bindle.yaml can be found.
	ErrConfigNotFound = zerr.New("could not find " + ConfigFileName)

	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrInvalidEntry is returned when an entry module reference is empty.
	ErrInvalidEntry = zerr.New("invalid entry module reference")

	// ErrBundleFailed is returned when the bundle run aborts on a resolution failure.
	ErrBundleFailed = zerr.New("bundle resolution failed")

	// ErrManifestWriteFailed is returned when the bundle manifest cannot be written.
	ErrManifestWriteFailed = zerr.New("failed to write manifest")
)
