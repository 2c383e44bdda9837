package core

import (
	"fmt"
	"os"
	"path/filepath"

	"prae/pkg/progress"
)

// UnpackResult summarizes an Unpack run
type UnpackResult struct {
	Entries int // Entries in the archive
	Written int // Files materialized under the destination
	Skipped int // Entries that could not be written
}

// Unpack extracts every entry of the archive at archivePath below destDir.
// The whole archive is decoded before the first file is written, so a
// corrupt archive leaves destDir untouched. Failures on individual files
// are logged and skipped.
func Unpack(archivePath, destDir string, opts ...Option) (*UnpackResult, error) {
	cfg := newConfig(opts)

	archive, err := readArchive(archivePath, cfg.codec, false)
	if err != nil {
		return nil, err
	}

	var totalSize uint64
	for _, p := range archive.Payloads {
		totalSize += uint64(len(p))
	}
	cfg.tracker.Init(archive.Len(), totalSize)
	defer cfg.tracker.Stop()

	result := &UnpackResult{Entries: archive.Len()}
	for i, e := range archive.Entries {
		if err := writeEntry(destDir, e, archive.Payloads[i], cfg.tracker); err != nil {
			cfg.logger.Warn("Skipping file", "path", e.Path, "error", err)
			result.Skipped++
			continue
		}
		cfg.logger.Debug("Wrote file", "path", e.Path, "type", e.Type, "size", len(archive.Payloads[i]))
		cfg.tracker.File(e.Path, e.Type)
		result.Written++
	}

	cfg.logger.Info("Unpacked archive", "path", archivePath, "written", result.Written,
		"skipped", result.Skipped)
	return result, nil
}

// List reads only the entry table of the archive at archivePath
func List(archivePath string, opts ...Option) ([]Entry, error) {
	cfg := newConfig(opts)
	archive, err := readArchive(archivePath, cfg.codec, true)
	if err != nil {
		return nil, err
	}
	return archive.Entries, nil
}

// ReadArchive fully decodes the archive at archivePath without touching
// the filesystem otherwise.
func ReadArchive(archivePath string, opts ...Option) (*Archive, error) {
	cfg := newConfig(opts)
	return readArchive(archivePath, cfg.codec, false)
}

func readArchive(path string, codec Codec, metadataOnly bool) (*Archive, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &ArchiveIOError{Op: "open", Path: path, Err: err}
	}
	raw, err := Decompress(data, codec)
	if err != nil {
		return nil, fmt.Errorf("decompress %s: %w", path, err)
	}
	archive, err := Decode(raw, metadataOnly)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return archive, nil
}

// writeEntry writes one payload to destDir/e.Path, creating parents as needed
func writeEntry(destDir string, e Entry, payload []byte, tracker *progress.Tracker) error {
	rel := filepath.FromSlash(e.Path)
	if !filepath.IsLocal(rel) {
		return fmt.Errorf("path %q escapes destination", e.Path)
	}
	path := filepath.Join(destDir, rel)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create folder: %w", err)
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return fmt.Errorf("create file: %w", err)
	}
	w := &progress.Writer{W: f, Tracker: tracker}
	if _, err := w.Write(payload); err != nil {
		f.Close()
		return fmt.Errorf("write file: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close file: %w", err)
	}
	return nil
}
