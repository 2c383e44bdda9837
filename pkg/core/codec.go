package core

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"math"
	"unicode/utf8"
)

// PayloadReader returns the raw bytes stored for the i-th entry
type PayloadReader func(i int, e Entry) ([]byte, error)

// Encode builds the raw archive buffer. Entries must already be in wire
// order (textures first). Paths and types are validated before anything is
// written, so a bad entry yields no output at all.
func Encode(entries []Entry, read PayloadReader) ([]byte, error) {
	if int64(len(entries)) > math.MaxInt32 {
		return nil, fmt.Errorf("encode: %d entries exceed header range", len(entries))
	}
	metaSize := headerSize
	for _, e := range entries {
		if len(e.Path) > MaxPathLength {
			return nil, &EncodeError{Path: e.Path, Err: ErrPathTooLong}
		}
		if !utf8.ValidString(e.Path) {
			return nil, &EncodeError{Path: e.Path, Err: ErrInvalidPath}
		}
		if !e.Type.Known() {
			return nil, &EncodeError{Path: e.Path, Err: ErrUnknownType}
		}
		metaSize += minEntryMetaLen + len(e.Path)
	}

	var buf bytes.Buffer
	buf.Grow(metaSize)

	// Header
	writeInt32(&buf, int32(len(entries)))

	// Metadata block
	for _, e := range entries {
		buf.WriteByte(byte(len(e.Path)))
		buf.WriteString(e.Path)
		buf.WriteByte(e.Type.WireCode())
	}

	// Payload block, same order
	for i, e := range entries {
		payload, err := read(i, e)
		if err != nil {
			return nil, fmt.Errorf("read payload %s: %w", e.Path, err)
		}
		if int64(len(payload)) > math.MaxInt32 {
			return nil, &EncodeError{Path: e.Path, Err: ErrPayloadTooLarge}
		}
		writeInt32(&buf, int32(len(payload)))
		buf.Write(payload)
	}
	return buf.Bytes(), nil
}

// Decode parses a raw archive buffer. With metadataOnly set it stops after
// the entry table and leaves Payloads nil. Returned payloads alias data.
func Decode(data []byte, metadataOnly bool) (*Archive, error) {
	d := decoder{data: data}

	count, ok := d.readInt32()
	if !ok {
		return nil, d.fail(-1, ErrTruncatedHeader)
	}
	if count < 0 {
		return nil, &DecodeError{Offset: 0, Entry: -1, Err: ErrCorruptArchive}
	}

	// A hostile count must not drive the allocation
	capHint := min(int(count), len(data)/minEntryMetaLen)
	entries := make([]Entry, 0, capHint)
	for i := 0; i < int(count); i++ {
		e, err := d.entry(i)
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}

	archive := &Archive{Entries: entries}
	if metadataOnly {
		return archive, nil
	}

	archive.Payloads = make([][]byte, 0, len(entries))
	for i := range entries {
		size, ok := d.readInt32()
		if !ok || size < 0 {
			return nil, d.fail(i, ErrTruncatedPayload)
		}
		payload, ok := d.take(int(size))
		if !ok {
			return nil, d.fail(i, ErrTruncatedPayload)
		}
		archive.Payloads = append(archive.Payloads, payload)
	}
	return archive, nil
}

// decoder is a bounds-checked cursor over a raw archive buffer
type decoder struct {
	data []byte
	off  int
}

func (d *decoder) fail(entry int, err error) error {
	return &DecodeError{Offset: d.off, Entry: entry, Err: err}
}

func (d *decoder) take(n int) ([]byte, bool) {
	if n < 0 || n > len(d.data)-d.off {
		return nil, false
	}
	b := d.data[d.off : d.off+n : d.off+n]
	d.off += n
	return b, true
}

func (d *decoder) readByte() (byte, bool) {
	b, ok := d.take(1)
	if !ok {
		return 0, false
	}
	return b[0], true
}

func (d *decoder) readInt32() (int32, bool) {
	b, ok := d.take(4)
	if !ok {
		return 0, false
	}
	return int32(binary.LittleEndian.Uint32(b)), true
}

func (d *decoder) entry(i int) (Entry, error) {
	n, ok := d.readByte()
	if !ok {
		return Entry{}, d.fail(i, ErrTruncatedHeader)
	}
	start := d.off
	path, ok := d.take(int(n))
	if !ok {
		return Entry{}, d.fail(i, ErrTruncatedHeader)
	}
	if !utf8.Valid(path) {
		return Entry{}, &DecodeError{Offset: start, Entry: i, Err: ErrInvalidPath}
	}
	code, ok := d.readByte()
	if !ok {
		return Entry{}, d.fail(i, ErrTruncatedHeader)
	}
	return Entry{Path: string(path), Type: AssetTypeFromWire(code)}, nil
}

func writeInt32(buf *bytes.Buffer, v int32) {
	var b [4]byte
	binary.LittleEndian.PutUint32(b[:], uint32(v))
	buf.Write(b[:])
}
