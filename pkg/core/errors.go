package core

import (
	"errors"
	"fmt"
)

// Decode failures
var (
	ErrTruncatedHeader  = errors.New("truncated header")
	ErrTruncatedPayload = errors.New("truncated payload")
	ErrInvalidPath      = errors.New("invalid path encoding")
	ErrCorruptArchive   = errors.New("corrupt archive")
)

// Encode failures
var (
	ErrPathTooLong     = errors.New("archive path longer than 255 bytes")
	ErrPayloadTooLarge = errors.New("payload larger than 2 GiB")
	ErrUnknownType     = errors.New("unknown asset type")
)

// ErrUnknownCodec is returned for compression codec names that are not supported
var ErrUnknownCodec = errors.New("unknown compression codec")

// DecodeError records where in the raw buffer a decode failed.
// Entry is -1 when the failure is not tied to an entry.
type DecodeError struct {
	Offset int
	Entry  int
	Err    error
}

func (e *DecodeError) Error() string {
	if e.Entry < 0 {
		return fmt.Sprintf("decode at offset %d: %v", e.Offset, e.Err)
	}
	return fmt.Sprintf("decode entry %d at offset %d: %v", e.Entry, e.Offset, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// EncodeError names the entry that could not be encoded
type EncodeError struct {
	Path string
	Err  error
}

func (e *EncodeError) Error() string {
	return fmt.Sprintf("encode %q: %v", e.Path, e.Err)
}

func (e *EncodeError) Unwrap() error {
	return e.Err
}

// ArchiveIOError is a failure to read or write the archive file itself,
// as opposed to one of the assets inside it.
type ArchiveIOError struct {
	Op   string
	Path string
	Err  error
}

func (e *ArchiveIOError) Error() string {
	return fmt.Sprintf("%s archive %s: %v", e.Op, e.Path, e.Err)
}

func (e *ArchiveIOError) Unwrap() error {
	return e.Err
}
