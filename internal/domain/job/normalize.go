package job

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// normalizeText lower-cases s, strips combining marks and trims it
func normalizeText(s string) string {
	// transformers carry state, so each call builds its own chain
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		out = s
	}
	return strings.TrimSpace(strings.ToLower(out))
}

func isLocationSeparator(r rune) bool {
	switch r {
	case ',', '/', '-', '–', '—', '|':
		return true
	}
	return false
}

// locationParts splits a normalized location on its separators
func locationParts(normalized string) []string {
	fields := strings.FieldsFunc(normalized, isLocationSeparator)
	parts := make([]string, 0, len(fields))
	for _, f := range fields {
		if f = strings.TrimSpace(f); f != "" {
			parts = append(parts, f)
		}
	}
	return parts
}

// MatchesLocation reports whether a filter value selects a job location.
// "Madrid, España (Remoto)" is selected by "madrid" but "Madrid" is not selected by "Barcelona".
func MatchesLocation(location, value string) bool {
	loc := normalizeText(location)
	want := normalizeText(value)
	if loc == "" || want == "" {
		return false
	}
	if loc == want {
		return true
	}
	for _, p := range locationParts(loc) {
		if p == want {
			return true
		}
	}
	return false
}
