package kdpoint

// Close releases the point table. Subsequent operations return ErrClosed,
// while Len and IsEmpty report an empty index.
// Closing twice is a no-op.
func (ix *Index[V]) Close() error {
	if ix == nil {
		return nil
	}
	ix.mu.Lock()
	defer ix.mu.Unlock()
	if ix.closed {
		return nil
	}
	ix.closed = true
	ix.table, _ = newTable[V](ix.opts.backend)
	return nil
}
