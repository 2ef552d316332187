package kdpoint

import (
	"errors"
	"fmt"

	"github.com/hupe1980/kdpoint/blobstore"
	"github.com/hupe1980/kdpoint/geom"
)

var (
	// ErrInvalidArgument is returned for a non-finite point, a malformed
	// rectangle, a nil value or mismatched batch lengths.
	ErrInvalidArgument = geom.ErrInvalidArgument

	// ErrNoSnapshot is returned by Load when the blob store holds no snapshot.
	ErrNoSnapshot = errors.New("no snapshot")

	// ErrNoBlobStore is returned by Save and Load when no blob store is configured.
	ErrNoBlobStore = errors.New("no blob store configured")

	// ErrClosed is returned by operations on a closed Index.
	ErrClosed = errors.New("index closed")
)

// SnapshotError wraps a failure to save or load a named snapshot.
//
// The original underlying error can be accessed via errors.Unwrap.
type SnapshotError struct {
	Op    string
	Name  string
	cause error
}

func (e *SnapshotError) Error() string {
	if e.Name == "" {
		return fmt.Sprintf("snapshot %s: %v", e.Op, e.cause)
	}
	return fmt.Sprintf("snapshot %s %s: %v", e.Op, e.Name, e.cause)
}

func (e *SnapshotError) Unwrap() error { return e.cause }

func translateError(op, name string, err error) error {
	if err == nil {
		return nil
	}

	// Missing pointer means nothing was ever saved.
	if name == blobstore.Current && errors.Is(err, blobstore.ErrNotFound) {
		return fmt.Errorf("%w: %w", ErrNoSnapshot, err)
	}

	return &SnapshotError{Op: op, Name: name, cause: err}
}
