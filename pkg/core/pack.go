package core

import (
	"fmt"
	"os"
	"path/filepath"
)

// readFile loads one asset payload; tests replace it to simulate failures
var readFile = os.ReadFile

// PackResult summarizes a Pack run
type PackResult struct {
	Textures       int    // Texture entries written
	Files          int    // Non-texture entries written
	Skipped        int    // Files left out: unknown type, uninspectable or unreadable
	RawSize        int    // Size of the raw archive before compression
	CompressedSize int    // Size of the archive file on disk
	OutputPath     string // Where the archive was written
}

// Entries returns the number of entries in the archive
func (r *PackResult) Entries() int {
	return r.Textures + r.Files
}

// Pack archives every classifiable file under sourceDir into outputPath
func Pack(sourceDir, outputPath string, opts ...Option) (*PackResult, error) {
	cfg := newConfig(opts)

	info, err := os.Stat(sourceDir)
	if err != nil {
		return nil, fmt.Errorf("stat source: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("source %s is not a directory", sourceDir)
	}

	w, err := walkTree(sourceDir, cfg.logger)
	if err != nil {
		return nil, fmt.Errorf("collect entries: %w", err)
	}
	result := &PackResult{Skipped: w.skipped, OutputPath: outputPath}

	totalSize := calculateTotalSize(w.textures, w.files)
	cfg.tracker.Init(len(w.textures)+len(w.files), totalSize)
	defer cfg.tracker.Stop()

	// Payloads are read before encoding so an unreadable asset can be
	// dropped from the metadata block as well.
	entries := make([]Entry, 0, len(w.textures)+len(w.files))
	payloads := make([][]byte, 0, cap(entries))
	for _, list := range [][]Source{w.textures, w.files} {
		for _, src := range list {
			data, err := readFile(src.FilePath)
			if err != nil {
				cfg.logger.Warn("Skipping unreadable file", "path", src.FilePath, "error", err)
				result.Skipped++
				continue
			}
			entries = append(entries, src.Entry)
			payloads = append(payloads, data)
			if src.Type.IsTexture() {
				result.Textures++
			} else {
				result.Files++
			}
			cfg.logger.Debug("Packed file", "path", src.Path, "type", src.Type, "size", len(data))
			cfg.tracker.File(src.Path, src.Type)
			cfg.tracker.AddBytes(uint64(len(data)))
		}
	}

	// Encode copies each payload into its buffer; drop ours as it goes
	raw, err := Encode(entries, func(i int, _ Entry) ([]byte, error) {
		p := payloads[i]
		payloads[i] = nil
		return p, nil
	})
	if err != nil {
		return nil, fmt.Errorf("compile archive: %w", err)
	}
	result.RawSize = len(raw)

	compressed, err := Compress(raw, cfg.codec)
	if err != nil {
		return nil, err
	}
	result.CompressedSize = len(compressed)

	if err := writeArchive(outputPath, compressed); err != nil {
		return nil, err
	}

	cfg.logger.Info("Wrote archive", "path", outputPath, "entries", result.Entries(),
		"skipped", result.Skipped, "codec", cfg.codec)
	return result, nil
}

// calculateTotalSize sums the on-disk sizes of all sources
func calculateTotalSize(lists ...[]Source) uint64 {
	var totalSize uint64
	for _, list := range lists {
		for _, src := range list {
			info, err := os.Stat(src.FilePath)
			if err != nil {
				continue
			}
			totalSize += uint64(info.Size())
		}
	}
	return totalSize
}

// writeArchive creates or truncates path and writes the stored archive
func writeArchive(path string, data []byte) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return &ArchiveIOError{Op: "create directory for", Path: path, Err: err}
		}
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return &ArchiveIOError{Op: "write", Path: path, Err: err}
	}
	return nil
}
