package profgen

import (
	"sort"
	"strings"
)

// employmentTypes are annotations that profile pages append to (or sometimes
// substitute for) the employer name. Matching is case-insensitive.
var employmentTypes = map[string]bool{
	"full-time":      true,
	"part-time":      true,
	"contract":       true,
	"freelance":      true,
	"self-employed":  true,
	"internship":     true,
	"apprenticeship": true,
	"temporary":      true,
	"seasonal":       true,
}

// CleanEmployerName strips trailing employment-type annotations such as
// "· Full-time" from a captured employer string.
//
// When cleanup yields an empty string, or the captured text was itself an
// employment-type label ("Freelance" mistakenly scraped as the employer),
// unresolved is true and the caller must flag the entry instead of guessing
// a real name.
func CleanEmployerName(raw string) (name string, unresolved bool) {
	name = strings.TrimSpace(raw)
	if i := strings.IndexRune(name, '·'); i >= 0 {
		name = strings.TrimSpace(name[:i])
	}
	if name == "" {
		return "", true
	}
	if employmentTypes[strings.ToLower(name)] {
		return name, true
	}
	return name, false
}

// DedupeExperience drops entries whose title, employer, and date range all
// match an earlier entry after normalization, keeping the first occurrence.
func DedupeExperience(entries []ExperienceEntry) []ExperienceEntry {
	seen := make(map[string]bool, len(entries))
	result := make([]ExperienceEntry, 0, len(entries))
	for _, e := range entries {
		key := strings.ToLower(strings.TrimSpace(e.Title)) + "\x00" +
			strings.ToLower(strings.TrimSpace(e.Employer)) + "\x00" +
			e.Dates.String()
		if seen[key] {
			continue
		}
		seen[key] = true
		result = append(result, e)
	}
	return result
}

// GroupExperience merges entries sharing a cleaned employer name into
// EmployerGroups. Roles within a group are ordered by descending start date,
// ties broken by original extraction order. Groups are ordered by their most
// recent role, newest first, again with stable ties.
//
// Grouping is idempotent: flattening the returned groups and regrouping
// yields the same result.
func GroupExperience(entries []ExperienceEntry) []EmployerGroup {
	type indexed struct {
		entry ExperienceEntry
		pos   int
	}

	order := make([]string, 0, len(entries))
	byKey := make(map[string][]indexed, len(entries))
	for i, e := range entries {
		key := strings.ToLower(strings.TrimSpace(e.Employer))
		if _, ok := byKey[key]; !ok {
			order = append(order, key)
		}
		byKey[key] = append(byKey[key], indexed{entry: e, pos: i})
	}

	groups := make([]EmployerGroup, 0, len(order))
	for _, key := range order {
		members := byKey[key]
		sort.SliceStable(members, func(i, j int) bool {
			return members[i].entry.Dates.Start.sortKey() > members[j].entry.Dates.Start.sortKey()
		})

		g := EmployerGroup{
			Employer: members[0].entry.Employer,
			Roles:    make([]ExperienceEntry, 0, len(members)),
		}
		for _, m := range members {
			if m.entry.EmployerUnresolved {
				g.Unresolved = true
			}
			g.Roles = append(g.Roles, m.entry)
		}
		groups = append(groups, g)
	}

	sort.SliceStable(groups, func(i, j int) bool {
		return groups[i].Roles[0].Dates.Start.sortKey() > groups[j].Roles[0].Dates.Start.sortKey()
	})
	return groups
}

// FlattenGroups returns the entries of the groups in group order, preserving
// each group's role order.
func FlattenGroups(groups []EmployerGroup) []ExperienceEntry {
	var entries []ExperienceEntry
	for _, g := range groups {
		entries = append(entries, g.Roles...)
	}
	return entries
}
