// Package ports defines the core interfaces for the application.
package ports

import (
	"context"

	"go.trai.ch/bindle/internal/core/domain"
)

// SourceReader reads a resolved module's content into the item.
//
//go:generate mockgen -source=reader.go -destination=mocks/mock_reader.go -package=mocks
type SourceReader interface {
	// Read populates item.Source from item.Filename.
	Read(ctx context.Context, item *domain.BundleItem) error
}
