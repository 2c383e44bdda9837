package core

import (
	"bytes"
	"fmt"
	"io"

	"github.com/klauspost/compress/flate"
	"github.com/pierrec/lz4/v4"
)

// Codec names the whole-buffer compressor wrapped around the raw archive.
// The codec is not recorded in the archive itself.
type Codec string

const (
	CodecDeflate Codec = "deflate" // raw DEFLATE, the format of existing game archives
	CodecLZ4     Codec = "lz4"     // LZ4 frame

	DefaultCodec = CodecDeflate
)

// ParseCodec validates a codec name. The empty string selects DefaultCodec.
func ParseCodec(name string) (Codec, error) {
	switch c := Codec(name); c {
	case "":
		return DefaultCodec, nil
	case CodecDeflate, CodecLZ4:
		return c, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownCodec, name)
}

// Compress compresses the whole raw archive buffer in one shot
func Compress(data []byte, codec Codec) ([]byte, error) {
	var buf bytes.Buffer
	var zw io.WriteCloser
	switch codec {
	case CodecDeflate, "":
		w, err := flate.NewWriter(&buf, flate.DefaultCompression)
		if err != nil {
			return nil, fmt.Errorf("create deflate writer: %w", err)
		}
		zw = w
	case CodecLZ4:
		zw = lz4.NewWriter(&buf)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownCodec, codec)
	}

	if _, err := zw.Write(data); err != nil {
		return nil, fmt.Errorf("write compressed: %w", err)
	}
	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("close %s writer: %w", codec, err)
	}
	return buf.Bytes(), nil
}

// Decompress inflates a stored archive to completion. Any stream error,
// including a stream that ends early, is reported as ErrCorruptArchive.
func Decompress(data []byte, codec Codec) ([]byte, error) {
	var zr io.Reader
	switch codec {
	case CodecDeflate, "":
		fr := flate.NewReader(bytes.NewReader(data))
		defer fr.Close()
		zr = fr
	case CodecLZ4:
		zr = lz4.NewReader(bytes.NewReader(data))
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownCodec, codec)
	}

	raw, err := io.ReadAll(zr)
	if err != nil {
		return nil, fmt.Errorf("%w: %s stream: %v", ErrCorruptArchive, codec, err)
	}
	return raw, nil
}
