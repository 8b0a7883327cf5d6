package fs

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/aleksw/profgen"
)

// Cleaner deletes raw data files. It implements profgen.Fixer and refuses
// to touch anything outside its root directory.
type Cleaner struct {
	Root   string
	Logger *slog.Logger
}

// RemoveRawFile deletes one raw data file under the cleaner's root.
// Missing files are not an error.
func (c *Cleaner) RemoveRawFile(path string) error {
	root, err := filepath.Abs(c.Root)
	if err != nil {
		return profgen.Errorf(profgen.EINTERNAL, "resolve cleanup root: %v", err)
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return profgen.Errorf(profgen.EINTERNAL, "resolve raw file path: %v", err)
	}
	rel, err := filepath.Rel(root, abs)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return profgen.Errorf(profgen.EINVALID, "raw file %s is outside the output directory", path)
	}

	if err := os.Remove(abs); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return profgen.Errorf(profgen.EINTERNAL, "remove raw file: %v", err)
	}
	if c.Logger != nil {
		c.Logger.Info("removed raw data file", "path", abs)
	}
	return nil
}
