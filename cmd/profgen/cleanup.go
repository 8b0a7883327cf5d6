package main

import (
	"fmt"

	"github.com/aleksw/profgen/fs"
)

// Run executes the cleanup command: delete every retained raw data file in
// the output directory, regardless of age.
func (c *CleanupCmd) Run(deps *Dependencies) error {
	collector := &fs.StateCollector{OutputDir: c.OutputDir}
	state, err := collector.Collect()
	if err != nil {
		return err
	}
	if len(state.RawFiles) == 0 {
		fmt.Fprintln(deps.Stdout, "No raw data files to remove")
		return nil
	}

	cleaner := &fs.Cleaner{Root: c.OutputDir, Logger: deps.Logger}
	for _, f := range state.RawFiles {
		if err := cleaner.RemoveRawFile(f.Path); err != nil {
			return err
		}
		fmt.Fprintf(deps.Stdout, "Removed %s\n", f.Path)
	}
	return nil
}
