package fs

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/aleksw/profgen"
)

// EnsureIgnoreFile makes sure the output directory's .gitignore excludes
// raw data files, creating or appending as needed. It returns the patterns
// it added.
func EnsureIgnoreFile(dir string) ([]string, error) {
	path := filepath.Join(dir, ".gitignore")
	existing, _, err := readIgnoreFile(path)
	if err != nil {
		return nil, err
	}

	have := make(map[string]bool, len(existing))
	for _, p := range existing {
		have[p] = true
	}
	var missing []string
	for _, p := range RawDataPatterns {
		if !have[p] {
			missing = append(missing, p)
		}
	}
	if len(missing) == 0 {
		return nil, nil
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, profgen.Errorf(profgen.EINTERNAL, "open ignore file: %v", err)
	}
	defer f.Close()

	if _, err := f.WriteString(strings.Join(missing, "\n") + "\n"); err != nil {
		return nil, profgen.Errorf(profgen.EINTERNAL, "update ignore file: %v", err)
	}
	return missing, nil
}
