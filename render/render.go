// Package render implements the document renderers. Each renderer is pure:
// it reads the record and produces bytes, nothing else.
package render

import "github.com/aleksw/profgen"

// For returns the renderer for a format.
func For(format profgen.Format) (profgen.Renderer, error) {
	switch format {
	case profgen.FormatMarkdown:
		return &Markdown{}, nil
	case profgen.FormatHTML:
		return &HTML{}, nil
	case profgen.FormatJSON:
		return &JSON{}, nil
	default:
		return nil, profgen.Errorf(profgen.ECONFIG, "no renderer for format %q", format)
	}
}

// employerHeading returns the section heading for an employer group.
// Unresolved groups captured an employment-type label rather than a real
// employer, so they render under a neutral heading with the label kept as
// context.
func employerHeading(group profgen.EmployerGroup) string {
	if !group.Unresolved {
		return group.Employer
	}
	if group.Employer == "" {
		return "Independent"
	}
	return "Independent (" + group.Employer + ")"
}
