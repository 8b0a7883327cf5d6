package mock

import "github.com/aleksw/profgen"

var _ profgen.Fixer = (*Fixer)(nil)

// Fixer is a mock implementation of profgen.Fixer.
type Fixer struct {
	RemoveRawFileFn func(path string) error
}

func (f *Fixer) RemoveRawFile(path string) error {
	return f.RemoveRawFileFn(path)
}
