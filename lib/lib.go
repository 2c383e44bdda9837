// Package lib provides the archive operations of prae to other programs.
// It re-exports the core package so callers depend on a stable surface.
package lib

import (
	"io"

	"prae/pkg/core"
	"prae/pkg/progress"
)

// Constants for archive format re-exported from core
const (
	MaxPathLength = core.MaxPathLength
	DefaultExt    = core.DefaultExt
)

// Types re-exported from core
type (
	AssetType    = core.AssetType
	Entry        = core.Entry
	Archive      = core.Archive
	Codec        = core.Codec
	Option       = core.Option
	PackResult   = core.PackResult
	UnpackResult = core.UnpackResult
)

// Re-export asset types
const (
	AssetBox         = core.AssetBox
	AssetObject      = core.AssetObject
	AssetMap         = core.AssetMap
	AssetHeightMap   = core.AssetHeightMap
	AssetPath        = core.AssetPath
	AssetAnimation   = core.AssetAnimation
	AssetCarProperty = core.AssetCarProperty
	AssetModel       = core.AssetModel
	AssetTexture     = core.AssetTexture
	AssetUnknown     = core.AssetUnknown
)

// Re-export codecs
const (
	CodecDeflate = core.CodecDeflate
	CodecLZ4     = core.CodecLZ4
)

// Re-export options
var (
	WithLogger = core.WithLogger
	WithCodec  = core.WithCodec
)

// WithProgress prints per-file progress lines to w
func WithProgress(w io.Writer) Option {
	return core.WithProgress(progress.New(w))
}

// Classify is a wrapper around core.Classify
func Classify(fileName string) AssetType {
	return core.Classify(fileName)
}

// Pack is a wrapper around core.Pack
func Pack(sourceDir, outputPath string, opts ...Option) (*PackResult, error) {
	return core.Pack(sourceDir, outputPath, opts...)
}

// Unpack is a wrapper around core.Unpack
func Unpack(archivePath, destDir string, opts ...Option) (*UnpackResult, error) {
	return core.Unpack(archivePath, destDir, opts...)
}

// List is a wrapper around core.List
func List(archivePath string, opts ...Option) ([]Entry, error) {
	return core.List(archivePath, opts...)
}

// ReadArchive is a wrapper around core.ReadArchive
func ReadArchive(archivePath string, opts ...Option) (*Archive, error) {
	return core.ReadArchive(archivePath, opts...)
}
