package render

import (
	"encoding/json"

	"github.com/aleksw/profgen"
)

// JSON renders a record as indented JSON, the record's own wire shape.
type JSON struct{}

// Render implements profgen.Renderer.
func (j *JSON) Render(rec *profgen.ProfileRecord) ([]byte, error) {
	if err := rec.Validate(); err != nil {
		return nil, err
	}
	out, err := json.MarshalIndent(rec, "", "  ")
	if err != nil {
		return nil, profgen.Errorf(profgen.EINTERNAL, "marshal profile record: %v", err)
	}
	return append(out, '\n'), nil
}
