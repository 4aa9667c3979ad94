package ports

import (
	"context"

	"go.trai.ch/bindle/internal/core/domain"
)

// PackageEnumerator lists installed secondary-package-manager packages
// with their best-guess entry files. Enumeration is best-effort: callers
// treat failure as "no packages available".
//
//go:generate mockgen -source=package_manager.go -destination=mocks/mock_package_manager.go -package=mocks
type PackageEnumerator interface {
	// List enumerates the packages installed under dir.
	List(ctx context.Context, dir string) ([]domain.Package, error)
}
