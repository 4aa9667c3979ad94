package ports

import (
	"context"

	"go.trai.ch/bindle/internal/core/domain"
)

// DependencyCollector extracts require-style references from module source.
//
//go:generate mockgen -source=collector.go -destination=mocks/mock_collector.go -package=mocks
type DependencyCollector interface {
	// HasRequire reports whether the source contains at least one
	// require-style reference. It is a cheap synchronous predicate used
	// to skip the full collection pass.
	HasRequire(source string) bool

	// Collect returns the ordered set of module names referenced by
	// item.Source.
	Collect(ctx context.Context, item *domain.BundleItem) ([]string, error)
}
