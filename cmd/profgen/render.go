package main

import (
	"fmt"

	"github.com/aleksw/profgen"
	"github.com/aleksw/profgen/bloom"
	"github.com/aleksw/profgen/fs"
)

// Run executes the render command: re-render documents from the committed
// raw record without touching the network.
func (c *RenderCmd) Run(deps *Dependencies) error {
	formats, err := parseFormats(c.Format)
	if err != nil {
		return err
	}
	privacy, err := profgen.ParseRedactionLevel(c.Privacy)
	if err != nil {
		return err
	}

	store := fs.NewRawStore(c.OutputDir)
	rec, err := store.Load(deps.Ctx)
	if err != nil {
		return err
	}

	redactor := profgen.NewRedactor(profgen.PolicyFor(privacy),
		bloom.NewKeywordFilter(profgen.DefaultSensitiveKeywords))
	redacted := redactor.Redact(rec)

	if err := writeDocuments(deps, redacted, c.OutputDir, rec.Name, formats); err != nil {
		return err
	}

	fmt.Fprintf(deps.Stdout, "Rendered %d document(s) from raw data saved at %s\n",
		len(formats), store.Path())
	return nil
}
