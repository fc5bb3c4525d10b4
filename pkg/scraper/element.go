package scraper

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Loose patterns for the generic fallback extractor. These run over flat
// element text with no cell structure to lean on, so they are deliberately
// permissive.
var (
	bareCRNPattern      = regexp.MustCompile(`\b\d{5}\b`)
	looseNamePattern    = regexp.MustCompile(`[A-Z][a-z]+,?\s+[A-Z][a-z]+`)
	looseTimePattern    = regexp.MustCompile(`[MTWRF]+.*?\d{1,2}:\d{2}[AP]?M?.*?\d{1,2}:\d{2}[AP]?M?`)
	onlineWordPattern   = regexp.MustCompile(`(?i)\bonline\b`)
	hybridWordPattern   = regexp.MustCompile(`(?i)\bhybrid\b`)
	inPersonWordPattern = regexp.MustCompile(`(?i)\bin-person\b|\bon-campus\b`)
)

// extractFromElement reads a course section out of an arbitrary element
// using regex matching only. It emits a record when at least a CRN or a
// professor name was found, defaulting the CRN to "N/A".
func extractFromElement(el *goquery.Selection, courseCode string) (CourseSection, bool) {
	text := strings.Join(strings.Fields(el.Text()), " ")

	crn := bareCRNPattern.FindString(text)
	professor := looseNamePattern.FindString(text)
	classTime := looseTimePattern.FindString(text)

	var format string
	switch {
	case onlineWordPattern.MatchString(text):
		format = FormatOnline
	case hybridWordPattern.MatchString(text):
		format = FormatHybrid
	case inPersonWordPattern.MatchString(text):
		format = FormatInPerson
	}

	if crn == "" && professor == "" {
		return CourseSection{}, false
	}

	if crn == "" {
		crn = "N/A"
	}
	if professor == "" {
		professor = "TBA"
	}
	if classTime == "" {
		classTime = "TBA"
	}
	if format == "" {
		format = FormatUnknown
	}

	return CourseSection{
		Course:    courseCode,
		CRN:       crn,
		Professor: professor,
		ClassTime: classTime,
		Format:    format,
	}, true
}
