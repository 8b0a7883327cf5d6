package profgen

import (
	"strconv"
	"strings"
	"time"
)

// Confidence grades how reliably a date range was parsed.
type Confidence string

// Confidence levels for parsed date ranges.
const (
	ConfidenceHigh Confidence = "high"
	ConfidenceLow  Confidence = "low"
)

// Date is a year with an optional month. A zero Year means absent.
type Date struct {
	Year  int        `json:"year,omitempty"`
	Month time.Month `json:"month,omitempty"`
}

// IsZero reports whether the date is absent.
func (d Date) IsZero() bool {
	return d.Year == 0
}

// String formats the date as "Jan 2020" or "2020" when the month is absent.
func (d Date) String() string {
	if d.IsZero() {
		return ""
	}
	if d.Month == 0 {
		return strconv.Itoa(d.Year)
	}
	return d.Month.String()[:3] + " " + strconv.Itoa(d.Year)
}

// sortKey orders dates chronologically; absent months sort before January
// of the same year.
func (d Date) sortKey() int {
	return d.Year*100 + int(d.Month)
}

// DateRange is a normalized (start, end) pair parsed from free-text duration
// strings such as "Jan 2020 - Present" or "2018 - 2022".
//
// When the text is unparseable the original is retained in Raw with
// Confidence low, letting consumers decide whether to display it. An absent
// End with Ongoing set means "current".
type DateRange struct {
	Start      Date       `json:"start,omitempty"`
	End        Date       `json:"end,omitempty"`
	Ongoing    bool       `json:"ongoing,omitempty"`
	Raw        string     `json:"raw,omitempty"`
	Confidence Confidence `json:"confidence,omitempty"`
}

// IsZero reports whether the range carries no date information at all,
// not even fallback text.
func (r DateRange) IsZero() bool {
	return r.Start.IsZero() && r.End.IsZero() && !r.Ongoing && r.Raw == ""
}

// Current reports whether the range describes an ongoing position.
func (r DateRange) Current() bool {
	return r.Ongoing || (!r.Start.IsZero() && r.End.IsZero())
}

// String re-serializes the range to the textual form it was parsed from.
// Low-confidence ranges return the retained raw text verbatim.
func (r DateRange) String() string {
	if r.Confidence == ConfidenceLow {
		return r.Raw
	}
	var b strings.Builder
	b.WriteString(r.Start.String())
	switch {
	case r.Ongoing:
		b.WriteString(" - Present")
	case !r.End.IsZero():
		b.WriteString(" - ")
		b.WriteString(r.End.String())
	}
	return b.String()
}

// Display formats the range for rendered documents: "Start - End",
// "Start - Present", a bare start, or the raw fallback text.
func (r DateRange) Display() string {
	if r.Confidence == ConfidenceLow {
		return r.Raw
	}
	if r.Start.IsZero() && r.End.IsZero() && !r.Ongoing {
		return ""
	}
	return r.String()
}

// ongoingSynonyms are normalized to the explicit ongoing marker.
var ongoingSynonyms = map[string]bool{
	"present": true,
	"current": true,
	"now":     true,
}

var monthsByPrefix = map[string]time.Month{
	"jan": time.January, "feb": time.February, "mar": time.March,
	"apr": time.April, "may": time.May, "jun": time.June,
	"jul": time.July, "aug": time.August, "sep": time.September,
	"oct": time.October, "nov": time.November, "dec": time.December,
}

// ParseDateRange converts a free-text duration string into a DateRange.
//
// Accepted forms: "Mon YYYY - Mon YYYY", "Mon YYYY - Present", "YYYY - YYYY",
// "YYYY", "Mon YYYY". "Present", "Current" and "Now" (case-insensitive) mark
// the range as ongoing. A trailing elapsed-time annotation ("· 3 yrs 2 mos")
// is stripped before parsing. Malformed text is not an error: the original
// text is retained in Raw with Confidence low.
func ParseDateRange(text string) DateRange {
	original := strings.TrimSpace(text)

	// Profile pages append the elapsed duration after a middle dot.
	cleaned := original
	if i := strings.IndexRune(cleaned, '·'); i >= 0 {
		cleaned = strings.TrimSpace(cleaned[:i])
	}

	if cleaned == "" {
		return DateRange{Raw: original, Confidence: ConfidenceLow}
	}

	parts := splitRange(cleaned)
	fallback := DateRange{Raw: original, Confidence: ConfidenceLow}

	start, ok := parseDate(parts[0])
	if !ok {
		return fallback
	}

	r := DateRange{Start: start, Confidence: ConfidenceHigh}
	if len(parts) == 1 {
		// A single year-like token is treated as the start, end unset.
		return r
	}

	if ongoingSynonyms[strings.ToLower(parts[1])] {
		r.Ongoing = true
		return r
	}

	end, ok := parseDate(parts[1])
	if !ok {
		return fallback
	}
	r.End = end
	return r
}

// splitRange splits on the first hyphen or en dash separator, returning one
// or two trimmed parts.
func splitRange(s string) []string {
	for _, sep := range []string{" - ", " – ", "-", "–"} {
		if before, after, found := strings.Cut(s, sep); found {
			return []string{strings.TrimSpace(before), strings.TrimSpace(after)}
		}
	}
	return []string{s}
}

// parseDate parses "YYYY" or "Mon YYYY" (full month names accepted).
func parseDate(s string) (Date, bool) {
	fields := strings.Fields(s)
	switch len(fields) {
	case 1:
		year, ok := parseYear(fields[0])
		if !ok {
			return Date{}, false
		}
		return Date{Year: year}, true
	case 2:
		month, ok := parseMonth(fields[0])
		if !ok {
			return Date{}, false
		}
		year, ok := parseYear(fields[1])
		if !ok {
			return Date{}, false
		}
		return Date{Year: year, Month: month}, true
	default:
		return Date{}, false
	}
}

func parseYear(s string) (int, bool) {
	if len(s) != 4 {
		return 0, false
	}
	year, err := strconv.Atoi(s)
	if err != nil || year < 1900 || year > 2100 {
		return 0, false
	}
	return year, true
}

func parseMonth(s string) (time.Month, bool) {
	s = strings.ToLower(s)
	if len(s) < 3 {
		return 0, false
	}
	month, ok := monthsByPrefix[s[:3]]
	if !ok {
		return 0, false
	}
	// Accept abbreviations of the full name ("Sep", "Sept", "September")
	// but reject tokens that merely share a prefix ("mayhem").
	full := strings.ToLower(month.String())
	if !strings.HasPrefix(full, s) {
		return 0, false
	}
	return month, true
}
