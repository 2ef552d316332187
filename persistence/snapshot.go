package persistence

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"iter"
	"math"

	"github.com/hupe1980/kdpoint/codec"
	"github.com/hupe1980/kdpoint/geom"
)

// WriteOptions configures Write.
type WriteOptions struct {
	// Codec encodes values. Defaults to codec.Default.
	Codec codec.Codec

	// Compression applied to the payload. Defaults to CompressionNone.
	Compression Compression
}

// Write serializes entries as a snapshot to w and returns the number of
// bytes written.
func Write[V any](w io.Writer, entries iter.Seq2[geom.Point, V], optFns ...func(o *WriteOptions)) (int64, error) {
	opts := WriteOptions{Codec: codec.Default}
	for _, fn := range optFns {
		fn(&opts)
	}
	if opts.Codec == nil {
		opts.Codec = codec.Default
	}
	name := opts.Codec.Name()
	if len(name) > math.MaxUint8 {
		return 0, fmt.Errorf("codec name %q too long", name)
	}

	var (
		payload bytes.Buffer
		scratch [entryFixedSize]byte
		count   uint64
	)
	for p, v := range entries {
		data, err := opts.Codec.Marshal(v)
		if err != nil {
			return 0, fmt.Errorf("encode value at %s: %w", p, err)
		}
		if uint64(len(data)) > math.MaxUint32 {
			return 0, fmt.Errorf("value at %s too large: %d bytes", p, len(data))
		}
		binary.LittleEndian.PutUint64(scratch[0:], math.Float64bits(p.X))
		binary.LittleEndian.PutUint64(scratch[8:], math.Float64bits(p.Y))
		binary.LittleEndian.PutUint32(scratch[16:], uint32(len(data)))
		payload.Write(scratch[:])
		payload.Write(data)
		count++
	}

	stored, applied, err := compress(payload.Bytes(), opts.Compression)
	if err != nil {
		return 0, fmt.Errorf("compress payload: %w", err)
	}

	hdr := make([]byte, 0, 4+4+1+1+len(name)+8+8+8)
	hdr = binary.LittleEndian.AppendUint32(hdr, MagicNumber)
	hdr = binary.LittleEndian.AppendUint32(hdr, Version)
	hdr = append(hdr, byte(applied), byte(len(name)))
	hdr = append(hdr, name...)
	hdr = binary.LittleEndian.AppendUint64(hdr, count)
	hdr = binary.LittleEndian.AppendUint64(hdr, uint64(payload.Len()))
	hdr = binary.LittleEndian.AppendUint64(hdr, uint64(len(stored)))

	cw := NewChecksumWriter(w)
	if _, err := cw.Write(hdr); err != nil {
		return cw.Written(), err
	}
	if _, err := cw.Write(stored); err != nil {
		return cw.Written(), err
	}
	var trailer [checksumSize]byte
	binary.LittleEndian.PutUint32(trailer[:], cw.Sum())
	n, err := w.Write(trailer[:])
	return cw.Written() + int64(n), err
}

// Read parses a snapshot from r and calls fn for every entry in file order.
// The checksum is verified before any entry is decoded, so fn never sees data
// from a corrupt snapshot. An error returned by fn aborts the read.
func Read[V any](r io.Reader, fn func(p geom.Point, v V) error) (Header, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return Header{}, err
	}
	if len(data) < checksumSize {
		return Header{}, ErrTruncated
	}
	body := data[:len(data)-checksumSize]
	expected := binary.LittleEndian.Uint32(data[len(data)-checksumSize:])
	if actual := CalculateChecksum(body); actual != expected {
		return Header{}, &ChecksumMismatchError{Expected: expected, Actual: actual}
	}

	hdr, stored, err := parseHeader(body)
	if err != nil {
		return hdr, err
	}
	c, ok := codec.ByName(hdr.Codec)
	if !ok {
		return hdr, &UnknownCodecError{Name: hdr.Codec}
	}

	payload, err := decompress(stored, hdr.Compression, hdr.PayloadSize)
	if err != nil {
		return hdr, fmt.Errorf("decompress payload: %w", err)
	}

	for i := uint64(0); i < hdr.Count; i++ {
		if len(payload) < entryFixedSize {
			return hdr, ErrTruncated
		}
		p := geom.Point{
			X: math.Float64frombits(binary.LittleEndian.Uint64(payload[0:])),
			Y: math.Float64frombits(binary.LittleEndian.Uint64(payload[8:])),
		}
		size := uint64(binary.LittleEndian.Uint32(payload[16:]))
		payload = payload[entryFixedSize:]
		if uint64(len(payload)) < size {
			return hdr, ErrTruncated
		}

		var v V
		if err := c.Unmarshal(payload[:size], &v); err != nil {
			return hdr, fmt.Errorf("decode value at %s: %w", p, err)
		}
		payload = payload[size:]

		if err := fn(p, v); err != nil {
			return hdr, err
		}
	}
	return hdr, nil
}

func parseHeader(body []byte) (Header, []byte, error) {
	var hdr Header
	if len(body) < 10 {
		return hdr, nil, ErrTruncated
	}
	if binary.LittleEndian.Uint32(body[0:]) != MagicNumber {
		return hdr, nil, ErrInvalidMagic
	}
	hdr.Version = binary.LittleEndian.Uint32(body[4:])
	if hdr.Version != Version {
		return hdr, nil, fmt.Errorf("%w: %d", ErrUnsupportedVersion, hdr.Version)
	}
	hdr.Compression = Compression(body[8])
	nameLen := int(body[9])
	rest := body[10:]
	if len(rest) < nameLen+24 {
		return hdr, nil, ErrTruncated
	}
	hdr.Codec = string(rest[:nameLen])
	rest = rest[nameLen:]
	hdr.Count = binary.LittleEndian.Uint64(rest[0:])
	hdr.PayloadSize = binary.LittleEndian.Uint64(rest[8:])
	hdr.StoredSize = binary.LittleEndian.Uint64(rest[16:])
	rest = rest[24:]
	if uint64(len(rest)) != hdr.StoredSize {
		return hdr, nil, ErrTruncated
	}
	if err := checkSizes(hdr); err != nil {
		return hdr, nil, err
	}
	return hdr, rest, nil
}

// checkSizes rejects headers whose declared sizes the stored bytes cannot
// back, before any buffer is allocated from them.
func checkSizes(hdr Header) error {
	switch {
	case hdr.Count > hdr.PayloadSize/entryFixedSize:
		return fmt.Errorf("%w: %d entries in %d payload bytes", ErrInvalidHeader, hdr.Count, hdr.PayloadSize)
	case hdr.Compression == CompressionNone && hdr.PayloadSize != hdr.StoredSize:
		return fmt.Errorf("%w: uncompressed payload of %d bytes stored in %d", ErrInvalidHeader, hdr.PayloadSize, hdr.StoredSize)
	case hdr.Compression != CompressionNone && hdr.PayloadSize/maxExpansion > hdr.StoredSize:
		return fmt.Errorf("%w: payload of %d bytes from %d stored", ErrInvalidHeader, hdr.PayloadSize, hdr.StoredSize)
	}
	return nil
}
