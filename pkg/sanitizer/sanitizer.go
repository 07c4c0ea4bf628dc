package sanitizer

import (
	"strings"
	"unicode"
)

// TrimAndNormalize trims leading/trailing whitespace and collapses inner
// runs of whitespace to a single space.
func TrimAndNormalize(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}

	var result strings.Builder
	var lastWasSpace bool

	for _, r := range s {
		if unicode.IsSpace(r) {
			if !lastWasSpace {
				result.WriteRune(' ')
				lastWasSpace = true
			}
		} else {
			result.WriteRune(r)
			lastWasSpace = false
		}
	}

	return result.String()
}

func NormalizeName(name string) string {
	return TrimAndNormalize(name)
}

// NormalizeNotes cleans customer free-text notes. Control characters are
// stripped; whitespace is normalized.
func NormalizeNotes(notes string) string {
	var cleaned strings.Builder
	for _, r := range notes {
		if unicode.IsControl(r) && r != '\n' {
			continue
		}
		cleaned.WriteRune(r)
	}
	return TrimAndNormalize(cleaned.String())
}

// NormalizeSpecialty lowercases and normalizes a painter specialty label so
// "Interior " and "interior" collapse to one value.
func NormalizeSpecialty(label string) string {
	return strings.ToLower(TrimAndNormalize(label))
}

// NormalizeSpecialties normalizes and de-duplicates, preserving first-seen
// order.
func NormalizeSpecialties(labels []string) []string {
	seen := make(map[string]struct{}, len(labels))
	out := make([]string, 0, len(labels))
	for _, l := range labels {
		n := NormalizeSpecialty(l)
		if n == "" {
			continue
		}
		if _, dup := seen[n]; dup {
			continue
		}
		seen[n] = struct{}{}
		out = append(out, n)
	}
	return out
}
