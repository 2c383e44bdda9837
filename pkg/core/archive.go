// Package core reads and writes prae asset archives.
package core

// Constants for archive format
const (
	MaxPathLength = 255 // Longest archive path a one-byte length can describe
	DefaultExt    = ".dat"

	headerSize      = 4 // int32 entry count
	minEntryMetaLen = 2 // length byte + type byte, empty path
)

// Entry holds one asset's metadata as stored in the archive
type Entry struct {
	Path string    // Forward-slash path relative to the archived root
	Type AssetType // Asset type, written as its wire code
}

// Source is an entry discovered on disk, ready to be packed
type Source struct {
	Entry
	FilePath string // Full file path on disk
}

// Archive is a decoded archive. Payloads is nil for metadata-only decodes,
// otherwise Payloads[i] belongs to Entries[i].
type Archive struct {
	Entries  []Entry
	Payloads [][]byte
}

// Len returns the number of entries in the archive
func (a *Archive) Len() int {
	return len(a.Entries)
}
