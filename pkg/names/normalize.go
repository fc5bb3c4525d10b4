// Package names normalizes and fuzzy-matches personal names so professors
// extracted from the schedule listings can be resolved against the
// differently formatted names on the ratings site.
package names

import (
	"regexp"
	"strings"
)

// namePrefixes are surname particles that must stay glued to the part that
// follows them when a concatenated name is split on capital letters
// ("MorganMcKnight" splits to Morgan, Mc, Knight and Mc belongs to Knight).
var namePrefixes = []string{"Mc", "Mac", "O'", "De", "Van", "Von", "La", "Le", "St", "Saint"}

var (
	parentheticalPattern = regexp.MustCompile(`\([^)]*\)`)
	gluedInitialPattern  = regexp.MustCompile(`\.([A-Z])`)
	capitalRunPattern    = regexp.MustCompile(`[A-Z][^A-Z]*`)
	lowerUpperPattern    = regexp.MustCompile(`^([a-z]+)([A-Z].*)`)
)

// Normalize reduces a raw personal name to ordered lowercase tokens.
// It handles the messy shapes the listings markup produces: parenthetical
// nicknames ("Roderic (Rick)Taylor"), glued middle initials
// ("Christopher N.Bradley"), and fully concatenated names ("RodericTaylor").
// Single-letter tokens are treated as initials and dropped. The result is
// empty when nothing usable remains.
func Normalize(name string) []string {
	clean := parentheticalPattern.ReplaceAllString(name, "")
	clean = strings.ReplaceAll(clean, ",", " ")
	clean = gluedInitialPattern.ReplaceAllString(clean, " $1")

	parts := strings.Fields(clean)

	// A single part means the name had no separators at all; try to split it
	// on capital-letter boundaries instead.
	if len(parts) == 1 {
		split := capitalRunPattern.FindAllString(parts[0], -1)
		switch {
		case len(split) >= 2:
			parts = mergePrefixes(split)
		case len(split) == 1:
			// Still one piece: look for a lowercase-to-uppercase boundary,
			// e.g. "rodericTaylor" or "rodericMcKnight"
			if m := lowerUpperPattern.FindStringSubmatch(parts[0]); m != nil {
				rest := capitalRunPattern.FindAllString(m[2], -1)
				if len(rest) >= 2 {
					parts = append([]string{m[1]}, mergePrefixes(rest)...)
				} else {
					parts = []string{m[1], m[2]}
				}
			}
		}
	}

	var tokens []string
	for _, p := range parts {
		p = strings.ToLower(strings.TrimSpace(strings.ReplaceAll(p, ".", "")))
		if len(p) > 1 {
			tokens = append(tokens, p)
		}
	}
	return tokens
}

// mergePrefixes rejoins surname particles with their successor part.
func mergePrefixes(parts []string) []string {
	merged := make([]string, 0, len(parts))
	for i := 0; i < len(parts); i++ {
		if i < len(parts)-1 && isNamePrefix(parts[i]) {
			merged = append(merged, parts[i]+parts[i+1])
			i++
			continue
		}
		merged = append(merged, parts[i])
	}
	return merged
}

func isNamePrefix(part string) bool {
	for _, prefix := range namePrefixes {
		if part == prefix {
			return true
		}
	}
	return false
}
