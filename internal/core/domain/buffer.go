package domain

import "sync"

// Buffer collects completed bundle entries across concurrent resolutions.
// Entries are appended in completion order, which is not guaranteed to
// match declaration order; consumers must not rely on ordering.
type Buffer struct {
	mu    sync.Mutex
	items []*BundleItem
}

// NewBuffer creates an empty Buffer.
func NewBuffer() *Buffer {
	return &Buffer{}
}

// Append adds a completed entry to the buffer.
func (b *Buffer) Append(item *BundleItem) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.items = append(b.items, item)
}

// Items returns a snapshot of the buffered entries.
func (b *Buffer) Items() []*BundleItem {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]*BundleItem, len(b.items))
	copy(out, b.items)
	return out
}

// Len returns the number of buffered entries.
func (b *Buffer) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.items)
}
