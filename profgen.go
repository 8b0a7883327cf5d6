// Package profgen extracts a single user's profile from an authenticated
// professional-network page, normalizes it into a structured record, applies
// privacy redaction, and renders the result as Markdown, HTML, or JSON. A
// compliance auditor checks the retained-data state before and after runs.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency or concern (e.g., rod/, goquery/, render/).
package profgen
