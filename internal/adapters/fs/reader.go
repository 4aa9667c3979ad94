// Package fs implements filesystem-backed adapters: the source reader,
// the Node-style path resolver, and the content hasher.
package fs

import (
	"context"
	"os"

	"go.trai.ch/bindle/internal/core/domain"
	"go.trai.ch/bindle/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.SourceReader = (*Reader)(nil)

// Reader implements ports.SourceReader using the local filesystem.
type Reader struct{}

// NewReader creates a new Reader.
func NewReader() *Reader {
	return &Reader{}
}

// Read populates item.Source from item.Filename.
func (r *Reader) Read(ctx context.Context, item *domain.BundleItem) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	// #nosec G304 -- filename was produced by resolution, not user input
	data, err := os.ReadFile(item.Filename)
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrSourceReadFailed.Error()), "filename", item.Filename)
	}
	item.Source = string(data)
	return nil
}
