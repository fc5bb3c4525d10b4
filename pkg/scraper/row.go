package scraper

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/PuerkitoBio/goquery"
)

var (
	crnPattern       = regexp.MustCompile(`\b(\d{5})\b`)
	timeRangePattern = regexp.MustCompile(`(?i)(\d{1,2}:\d{2}\s*[AP]M)\s*-\s*(\d{1,2}:\d{2}\s*[AP]M)`)
	digitPattern     = regexp.MustCompile(`\d`)

	// Professor name shapes: "Last, First", "First Last", "First M. Last"
	lastFirstPattern  = regexp.MustCompile(`^[A-Z][a-z]+(?:-[A-Z][a-z]+)?,\s+[A-Z][a-z]+(?:\s+[A-Z][a-z]+)?$`)
	firstLastPattern  = regexp.MustCompile(`^[A-Z][a-z]+\s+[A-Z][a-z]+$`)
	firstMLastPattern = regexp.MustCompile(`^[A-Z][a-z]+\s+[A-Z]\.\s+[A-Z][a-z]+$`)

	// The hybrid marker is a status pill rendered as a span with a
	// generated class name containing "skittle"
	hybridClassPattern = regexp.MustCompile(`(?i)skittle.*hybrid`)
)

// noiseTerms disqualify a cell from being read as a professor name. Mostly
// column labels, status words, and campus/schedule vocabulary that happens
// to be capitalized like a name.
var noiseTerms = []string{
	"view", "footnote", "math", "calculus", "class", "meets",
	"campus", "online", "hybrid", "tba", "tbd", "am", "pm", "open", "wl",
}

var weekdayLetters = map[rune]bool{
	'M': true, 'T': true, 'W': true, 'R': true, 'F': true, 'S': true, 'U': true,
}

// extractFromRow pulls one course section out of a table row in a single
// pass over its cells, first match wins per field. A section is only emitted
// when a CRN was found; every other missing field falls back to its sentinel.
func extractFromRow(row *goquery.Selection, cells *goquery.Selection, courseCode string) (CourseSection, bool) {
	cellTexts := make([]string, 0, cells.Length())
	cells.Each(func(_ int, cell *goquery.Selection) {
		cellTexts = append(cellTexts, strings.TrimSpace(cell.Text()))
	})
	rowTextLower := strings.ToLower(strings.Join(cellTexts, " "))
	courseUpper := strings.ToUpper(courseCode)

	var crn, days, timeStr, professor string

	cells.Each(func(i int, cell *goquery.Selection) {
		text := cellTexts[i]
		textUpper := strings.ToUpper(text)

		if crn == "" {
			if m := crnPattern.FindStringSubmatch(text); m != nil {
				crn = m[1]
			}
		}

		// Days live in a dedicated sub-element, separated by middle dots
		if days == "" {
			if span := cell.Find("span.days").First(); span.Length() > 0 {
				raw := strings.ReplaceAll(strings.TrimSpace(span.Text()), "·", "")
				days = filterDayLetters(raw)
			}
		}

		if timeStr == "" {
			if timeRangePattern.MatchString(text) {
				timeStr = text
			} else if strings.Contains(textUpper, "TBA") {
				timeStr = "TBA"
			}
		}

		if professor == "" {
			if link := cell.Find("a[href*='/directory/user']").First(); link.Length() > 0 {
				professor = strings.TrimSpace(link.Text())
			} else if text != "" && crn != "" && !strings.Contains(text, crn) && !strings.Contains(textUpper, courseUpper) {
				professor = professorCandidate(text)
			}
		}
	})

	if crn == "" {
		return CourseSection{}, false
	}

	classTime := "TBA"
	if timeStr != "" {
		if days != "" {
			classTime = days + " " + timeStr
		} else {
			classTime = timeStr
		}
	}
	if professor == "" {
		professor = "TBA"
	}

	return CourseSection{
		Course:    courseCode,
		CRN:       crn,
		Professor: professor,
		ClassTime: classTime,
		Format:    detectFormat(row, rowTextLower),
	}, true
}

// professorCandidate decides whether a cell's text looks like a person's
// name. Exact shapes match immediately; otherwise 2-4 capitalized words with
// no digits and no noise terms pass. This is a tuned heuristic, not a
// guarantee.
func professorCandidate(text string) string {
	if lastFirstPattern.MatchString(text) || firstLastPattern.MatchString(text) || firstMLastPattern.MatchString(text) {
		return text
	}

	words := strings.Fields(text)
	if len(words) < 2 || len(words) > 4 {
		return ""
	}
	for _, word := range words {
		runes := []rune(word)
		if len(runes) == 0 || !unicode.IsUpper(runes[0]) {
			return ""
		}
	}

	lower := strings.ToLower(text)
	for _, term := range noiseTerms {
		if strings.Contains(lower, term) {
			return ""
		}
	}
	if digitPattern.MatchString(text) {
		return ""
	}
	return text
}

// detectFormat classifies the section's delivery format from the row text.
// Hybrid wins over everything because hybrid rows also mention "online".
func detectFormat(row *goquery.Selection, rowTextLower string) string {
	hybridPill := row.Find("span").FilterFunction(func(_ int, sel *goquery.Selection) bool {
		class, ok := sel.Attr("class")
		return ok && hybridClassPattern.MatchString(class)
	})

	switch {
	case hybridPill.Length() > 0 || strings.Contains(rowTextLower, "hybrid"):
		return FormatHybrid
	case strings.Contains(rowTextLower, "fully online"),
		strings.Contains(rowTextLower, "online class"):
		return FormatOnline
	case strings.Contains(rowTextLower, "fully on-campus"),
		strings.Contains(rowTextLower, "on-campus"):
		return FormatInPerson
	case strings.Contains(rowTextLower, "online"):
		return FormatOnline
	default:
		return FormatUnknown
	}
}

// filterDayLetters keeps only canonical weekday letters, space-separated.
func filterDayLetters(raw string) string {
	var letters []string
	for _, r := range raw {
		if weekdayLetters[r] {
			letters = append(letters, string(r))
		}
	}
	return strings.Join(letters, " ")
}
