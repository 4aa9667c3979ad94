package ports

import "go.trai.ch/bindle/internal/core/domain"

// PathResolver implements the generic Node-style path resolution algorithm.
//
//go:generate mockgen -source=resolver.go -destination=mocks/mock_resolver.go -package=mocks
type PathResolver interface {
	// Resolve resolves a module name to an absolute filename using the
	// given options. It returns domain.ErrModuleNotFound when no
	// candidate exists.
	Resolve(name string, opts domain.ResolveOptions) (string, error)
}
