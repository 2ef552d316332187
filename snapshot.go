package kdpoint

import (
	"bytes"
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/hupe1980/kdpoint/blobstore"
	"github.com/hupe1980/kdpoint/geom"
	"github.com/hupe1980/kdpoint/persistence"
	"github.com/hupe1980/kdpoint/resource"
)

const snapshotPrefix = "snapshot-"

// snapshotName zero-pads seq so lexical order equals numeric order.
func snapshotName(seq uint64) string {
	return fmt.Sprintf("%s%020d%s", snapshotPrefix, seq, persistence.FileExtension)
}

func parseSnapshotSeq(name string) (uint64, bool) {
	digits, ok := strings.CutPrefix(name, snapshotPrefix)
	if !ok {
		return 0, false
	}
	digits, ok = strings.CutSuffix(digits, persistence.FileExtension)
	if !ok {
		return 0, false
	}
	seq, err := strconv.ParseUint(digits, 10, 64)
	return seq, err == nil
}

// Snapshots returns the names of all snapshots in the blob store, oldest first.
func (ix *Index[V]) Snapshots(ctx context.Context) ([]string, error) {
	store := ix.opts.store
	if store == nil {
		return nil, ErrNoBlobStore
	}

	names, err := store.List(ctx, snapshotPrefix)
	if err != nil {
		return nil, translateError("list", "", err)
	}

	out := names[:0]
	for _, name := range names {
		if _, ok := parseSnapshotSeq(name); ok {
			out = append(out, name)
		}
	}
	return out, nil
}

// Save writes a snapshot of the index to the blob store, points CURRENT at it
// and returns its name. Readers keep running while the snapshot is encoded.
func (ix *Index[V]) Save(ctx context.Context) (name string, err error) {
	start := time.Now()
	var (
		entries int
		size    int64
	)
	defer func() {
		ix.metrics.RecordSave(size, time.Since(start), err)
		ix.logger.LogSnapshot(ctx, name, entries, size, err)
	}()

	store := ix.opts.store
	if store == nil {
		return "", ErrNoBlobStore
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}

	// Serialize savers so two snapshots never claim the same sequence number.
	ix.saveMu.Lock()
	defer ix.saveMu.Unlock()

	var buf bytes.Buffer
	ix.mu.RLock()
	if ix.closed {
		ix.mu.RUnlock()
		return "", ErrClosed
	}
	entries = ix.table.Len()
	_, err = persistence.Write(&buf, ix.table.All(), func(o *persistence.WriteOptions) {
		o.Codec = ix.opts.codec
		o.Compression = ix.opts.compression
	})
	ix.mu.RUnlock()
	if err != nil {
		return "", translateError("encode", "", err)
	}
	size = int64(buf.Len())

	rc := ix.opts.controller
	if err := rc.AcquireMemory(ctx, size); err != nil {
		return "", translateError("reserve", "", err)
	}
	defer rc.ReleaseMemory(size)

	existing, err := ix.Snapshots(ctx)
	if err != nil {
		return "", err
	}
	var seq uint64
	if n := len(existing); n > 0 {
		seq, _ = parseSnapshotSeq(existing[n-1])
	}
	name = snapshotName(seq + 1)

	if err := rc.WaitIO(ctx, buf.Len()); err != nil {
		return "", err
	}
	if err := store.Put(ctx, name, buf.Bytes()); err != nil {
		return "", translateError("put", name, err)
	}
	if err := store.Put(ctx, blobstore.Current, []byte(name)); err != nil {
		return "", translateError("commit", name, err)
	}

	ix.prune(ctx, append(existing, name))
	return name, nil
}

// prune deletes all but the newest retained snapshots. Failures are logged,
// the next Save retries them.
func (ix *Index[V]) prune(ctx context.Context, names []string) {
	keep := ix.opts.retain
	if keep <= 0 || len(names) <= keep {
		return
	}
	for _, name := range names[:len(names)-keep] {
		if err := ix.opts.store.Delete(ctx, name); err != nil {
			ix.logger.WarnContext(ctx, "snapshot prune failed", "name", name, "error", err)
		}
	}
}

// Load replaces the contents of the index with the snapshot CURRENT points at.
// It returns ErrNoSnapshot if nothing was ever saved.
func (ix *Index[V]) Load(ctx context.Context) error {
	store := ix.opts.store
	if store == nil {
		return ErrNoBlobStore
	}

	ptr, err := store.Get(ctx, blobstore.Current)
	if err != nil {
		return translateError("load", blobstore.Current, err)
	}
	return ix.LoadSnapshot(ctx, strings.TrimSpace(string(ptr)))
}

// LoadSnapshot replaces the contents of the index with the named snapshot.
// The index is swapped only after the whole snapshot decoded successfully.
func (ix *Index[V]) LoadSnapshot(ctx context.Context, name string) (err error) {
	start := time.Now()
	var (
		entries int
		height  int
	)
	defer func() {
		ix.metrics.RecordLoad(entries, time.Since(start), err)
		ix.logger.LogLoad(ctx, name, entries, height, err)
	}()

	store := ix.opts.store
	if store == nil {
		return ErrNoBlobStore
	}

	data, err := store.Get(ctx, name)
	if err != nil {
		return translateError("get", name, err)
	}

	rc := ix.opts.controller
	if err := rc.AcquireMemory(ctx, int64(len(data))); err != nil {
		return translateError("reserve", name, err)
	}
	defer rc.ReleaseMemory(int64(len(data)))

	table, err := newTable[V](ix.opts.backend)
	if err != nil {
		return err
	}
	r := resource.NewRateLimitedReader(ctx, bytes.NewReader(data), rc)
	if _, err := persistence.Read(r, func(p geom.Point, v V) error {
		return table.Insert(p, v)
	}); err != nil {
		return translateError("decode", name, err)
	}

	entries = table.Len()
	if h, ok := table.(interface{ Height() int }); ok {
		height = h.Height()
	}

	ix.mu.Lock()
	defer ix.mu.Unlock()
	if ix.closed {
		return ErrClosed
	}
	ix.table = table
	return nil
}
