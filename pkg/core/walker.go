package core

import (
	"fmt"
	"os"
	"path/filepath"
	"unicode/utf8"

	"github.com/charmbracelet/log"
)

// Walk collects every classifiable file under root. Textures and all other
// known assets come back in separate lists, each in discovery order
// (depth-first, directories entered as they are met). Files of unknown type
// and entries that cannot be inspected are logged and skipped; failing to
// read root or any subdirectory aborts the walk.
func Walk(root string, logger *log.Logger) (textures, files []Source, err error) {
	w, err := walkTree(root, logger)
	if err != nil {
		return nil, nil, err
	}
	return w.textures, w.files, nil
}

func walkTree(root string, logger *log.Logger) (*walker, error) {
	if logger == nil {
		logger = discardLogger()
	}
	w := &walker{root: root, logger: logger}
	if err := w.dir(root); err != nil {
		return nil, err
	}
	return w, nil
}

type walker struct {
	root     string
	logger   *log.Logger
	textures []Source
	files    []Source
	skipped  int
}

func (w *walker) dir(path string) error {
	children, err := os.ReadDir(path)
	if err != nil {
		return fmt.Errorf("read directory %s: %w", path, err)
	}
	for _, child := range children {
		childPath := filepath.Join(path, child.Name())

		// Stat rather than the dirent type so symlinks are followed
		info, err := os.Stat(childPath)
		if err != nil {
			w.logger.Warn("Skipping unreadable entry", "path", childPath, "error", err)
			w.skipped++
			continue
		}

		switch {
		case info.IsDir():
			if err := w.dir(childPath); err != nil {
				return err
			}
		case info.Mode().IsRegular():
			if err := w.file(childPath); err != nil {
				return err
			}
		default:
			w.logger.Warn("Skipping non-regular file", "path", childPath, "mode", info.Mode().Type())
			w.skipped++
		}
	}
	return nil
}

func (w *walker) file(path string) error {
	assetType := Classify(filepath.Base(path))
	if assetType == AssetUnknown {
		w.logger.Warn("Skipping file with unknown file type", "path", path)
		w.skipped++
		return nil
	}

	rel, err := filepath.Rel(w.root, path)
	if err != nil {
		return fmt.Errorf("relative path for %s: %w", path, err)
	}
	if !utf8.ValidString(rel) {
		w.logger.Warn("Skipping file with non-UTF-8 name", "path", path)
		w.skipped++
		return nil
	}
	src := Source{
		Entry:    Entry{Path: filepath.ToSlash(rel), Type: assetType},
		FilePath: path,
	}
	if assetType.IsTexture() {
		w.textures = append(w.textures, src)
	} else {
		w.files = append(w.files, src)
	}
	return nil
}
