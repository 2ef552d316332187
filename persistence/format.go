package persistence

import (
	"errors"
	"fmt"
)

const (
	// MagicNumber identifies snapshot files (ASCII: "KDP1").
	MagicNumber uint32 = 0x4B445031
	// Version is the current file format version.
	Version uint32 = 1

	// FileExtension is the conventional suffix of snapshot blobs.
	FileExtension = ".kdp"

	entryFixedSize = 8 + 8 + 4
	checksumSize   = 4

	// maxExpansion bounds PayloadSize/StoredSize for compressed snapshots.
	maxExpansion = 1024
)

var (
	ErrInvalidMagic       = errors.New("invalid magic number")
	ErrUnsupportedVersion = errors.New("unsupported version")
	ErrTruncated          = errors.New("snapshot truncated")
	ErrInvalidHeader      = errors.New("invalid snapshot header")
)

// UnknownCodecError is returned when a snapshot names a codec that is not
// registered with codec.ByName.
type UnknownCodecError struct {
	Name string
}

func (e *UnknownCodecError) Error() string {
	return fmt.Sprintf("unknown codec %q", e.Name)
}

// Header describes a snapshot.
type Header struct {
	Version     uint32
	Compression Compression
	Codec       string
	Count       uint64
	PayloadSize uint64
	StoredSize  uint64
}
