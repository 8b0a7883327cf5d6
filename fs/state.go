package fs

import (
	"bufio"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/aleksw/profgen"
)

// RawDataPatterns are the version-control ignore patterns expected to cover
// raw data files in an output directory.
var RawDataPatterns = []string{RawFileName, "*_raw.json"}

// outputExtensions are the rendered-document extensions the collector
// recognizes.
var outputExtensions = map[string]bool{
	".md":   true,
	".html": true,
	".json": true,
}

// StateCollector snapshots an output directory into an AuditState so every
// audit rule sees one consistent view of the filesystem.
type StateCollector struct {
	OutputDir string
	Retention time.Duration

	// Now overrides the clock in tests. Nil means time.Now.
	Now func() time.Time
}

// Collect scans the output directory. A missing directory yields an empty
// state rather than an error: auditing a clean workspace passes.
func (c *StateCollector) Collect() (*profgen.AuditState, error) {
	now := time.Now().UTC()
	if c.Now != nil {
		now = c.Now()
	}
	state := &profgen.AuditState{
		RawDataPatterns: RawDataPatterns,
		Retention:       c.Retention,
		Now:             now,
	}

	entries, err := os.ReadDir(c.OutputDir)
	if err != nil {
		if os.IsNotExist(err) {
			return state, nil
		}
		return nil, profgen.Errorf(profgen.EINTERNAL, "read output directory: %v", err)
	}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		path := filepath.Join(c.OutputDir, entry.Name())
		if isRawFile(entry.Name()) {
			info, err := entry.Info()
			if err != nil {
				return nil, profgen.Errorf(profgen.EINTERNAL, "stat raw data file: %v", err)
			}
			state.RawFiles = append(state.RawFiles, profgen.RawFileInfo{
				Path:    path,
				Size:    info.Size(),
				ModTime: info.ModTime(),
			})
			continue
		}
		if outputExtensions[filepath.Ext(entry.Name())] {
			state.OutputFiles = append(state.OutputFiles, path)
		}
	}

	patterns, exists, err := readIgnoreFile(filepath.Join(c.OutputDir, ".gitignore"))
	if err != nil {
		return nil, err
	}
	state.IgnoreFileExists = exists
	state.IgnorePatterns = patterns

	return state, nil
}

func isRawFile(name string) bool {
	for _, pattern := range RawDataPatterns {
		if ok, _ := filepath.Match(pattern, name); ok {
			return true
		}
	}
	// A pending write counts as raw data too.
	return strings.HasSuffix(name, ".json.tmp")
}

func readIgnoreFile(path string) ([]string, bool, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, false, nil
		}
		return nil, false, profgen.Errorf(profgen.EINTERNAL, "read ignore file: %v", err)
	}
	defer f.Close()

	var patterns []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		patterns = append(patterns, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, true, profgen.Errorf(profgen.EINTERNAL, "read ignore file: %v", err)
	}
	return patterns, true, nil
}
