// Package config provides the configuration loader for bindle.
package config

import (
	"os"
	"path/filepath"

	"go.trai.ch/bindle/internal/core/domain"
	"go.trai.ch/bindle/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

var _ ports.ConfigLoader = (*Loader)(nil)

// Loader implements ports.ConfigLoader using a YAML file.
type Loader struct {
	Logger ports.Logger
}

// NewLoader creates a new Loader with the given logger.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{Logger: logger}
}

// Defaults applied when the configuration leaves a field empty.
var (
	defaultExtensions      = []string{".js", ".json"}
	defaultTypedExtensions = []string{".css", ".less"}
	defaultModuleDirs      = []string{"node_modules", "bower_components"}
)

const (
	defaultComponents = "bower_components"
	defaultShimDir    = "shims"
)

// Load discovers bindle.yaml by walking up from cwd and returns the
// fully resolved configuration with all paths made absolute.
func (l *Loader) Load(cwd string) (*domain.Config, error) {
	cwd, err := filepath.Abs(cwd)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to resolve working directory")
	}

	configPath, err := l.findConfiguration(cwd)
	if err != nil {
		return nil, err
	}

	var file Bindlefile
	if err := readAndUnmarshalYAML(configPath, &file); err != nil {
		return nil, err
	}

	root := resolveRoot(configPath, file.Root)

	for _, entry := range file.Entries {
		if entry == "" {
			return nil, zerr.With(domain.ErrInvalidEntry, "config", configPath)
		}
	}

	cfg := &domain.Config{
		Root:            root,
		Entries:         file.Entries,
		Exclude:         file.Exclude,
		Aliases:         file.Alias,
		Extensions:      withDefault(file.Extensions, defaultExtensions),
		TypedExtensions: withDefault(file.TypedExtensions, defaultTypedExtensions),
		Components:      resolvePath(root, file.Components, defaultComponents),
		Shim:            file.Shim,
		ShimDir:         resolvePath(root, file.ShimDir, defaultShimDir),
	}

	for _, dir := range withDefault(file.ModuleDirs, defaultModuleDirs) {
		cfg.Directories = append(cfg.Directories, resolvePath(root, dir, ""))
	}

	return cfg, nil
}

// findConfiguration walks up from cwd until it finds bindle.yaml.
func (l *Loader) findConfiguration(cwd string) (string, error) {
	currentDir := cwd
	for {
		configPath := filepath.Join(currentDir, domain.ConfigFileName)
		if _, err := os.Stat(configPath); err == nil {
			return configPath, nil
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			// Reached root
			break
		}
		currentDir = parentDir
	}

	return "", zerr.With(domain.ErrConfigNotFound, "cwd", cwd)
}

func resolveRoot(configPath, configuredRoot string) string {
	configDir := filepath.Dir(configPath)
	if configuredRoot == "" {
		return filepath.Clean(configDir)
	}
	if filepath.IsAbs(configuredRoot) {
		return filepath.Clean(configuredRoot)
	}
	return filepath.Clean(filepath.Join(configDir, configuredRoot))
}

// resolvePath resolves a configured path against the project root,
// substituting fallback when the path is empty.
func resolvePath(root, path, fallback string) string {
	if path == "" {
		path = fallback
	}
	if filepath.IsAbs(path) {
		return filepath.Clean(path)
	}
	return filepath.Join(root, path)
}

func withDefault(values, fallback []string) []string {
	if len(values) == 0 {
		return fallback
	}
	return values
}

// readAndUnmarshalYAML reads a YAML file and unmarshals it into the target struct.
func readAndUnmarshalYAML[T any](configPath string, target *T) error {
	// #nosec G304 -- configPath is validated by caller
	configFile, err := os.ReadFile(configPath)
	if err != nil {
		return zerr.Wrap(err, domain.ErrConfigReadFailed.Error())
	}

	if parseErr := yaml.Unmarshal(configFile, target); parseErr != nil {
		return zerr.Wrap(parseErr, domain.ErrConfigParseFailed.Error())
	}

	return nil
}
