package scraper

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
)

const listingsTableHTML = `<html><head><title>Schedule Listings</title></head><body>
<table>
<tr><th>CRN</th><th>Course</th><th>Days</th><th>Time</th><th>Instructor</th><th>Notes</th></tr>
<tr>
  <td>12345</td>
  <td>MATH 1A</td>
  <td><span class="days">M·W</span></td>
  <td>08:30 AM-10:45 AM</td>
  <td><a href="/directory/user/nguyenclare">Clare Nguyen</a></td>
  <td>Fully On-Campus</td>
</tr>
<tr>
  <td>23456</td>
  <td>MATH 1A</td>
  <td></td>
  <td>TBA</td>
  <td></td>
  <td>Fully Online Class meets asynchronously</td>
</tr>
<tr>
  <td>12345</td>
  <td>MATH 1A</td>
  <td><span class="days">M·W</span></td>
  <td>08:30 AM-10:45 AM</td>
  <td><a href="/directory/user/nguyenclare">Clare Nguyen</a></td>
  <td>Fully On-Campus</td>
</tr>
<tr>
  <td>67890</td>
  <td>PHYS 4B</td>
  <td><span class="days">T·R</span></td>
  <td>01:30 PM-03:20 PM</td>
  <td>Taylor, Roderic</td>
  <td><span class="skittle skittle-hybrid">Hybrid</span></td>
</tr>
</table>
</body></html>`

func mustParse(t *testing.T, page string) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(page))
	if err != nil {
		t.Fatalf("failed to parse test HTML: %v", err)
	}
	return doc
}

func TestParseListingsTableStrategy(t *testing.T) {
	doc := mustParse(t, listingsTableHTML)

	sections := ParseListings(doc, "MATH 1A")
	if len(sections) != 2 {
		t.Fatalf("expected 2 unique MATH 1A sections, got %d: %+v", len(sections), sections)
	}

	first := sections[0]
	if first.CRN != "12345" {
		t.Errorf("expected CRN 12345, got %s", first.CRN)
	}
	if first.Professor != "Clare Nguyen" {
		t.Errorf("expected professor from directory link, got %q", first.Professor)
	}
	if first.ClassTime != "M W 08:30 AM-10:45 AM" {
		t.Errorf("expected combined days and time, got %q", first.ClassTime)
	}
	if first.Format != FormatInPerson {
		t.Errorf("expected In-Person format, got %s", first.Format)
	}

	second := sections[1]
	if second.CRN != "23456" {
		t.Errorf("expected CRN 23456, got %s", second.CRN)
	}
	if second.Professor != "TBA" {
		t.Errorf("expected TBA professor sentinel, got %q", second.Professor)
	}
	if second.ClassTime != "TBA" {
		t.Errorf("expected TBA class time sentinel, got %q", second.ClassTime)
	}
	if second.Format != FormatOnline {
		t.Errorf("expected Online format, got %s", second.Format)
	}
}

func TestParseListingsProfessorNameShape(t *testing.T) {
	doc := mustParse(t, listingsTableHTML)

	sections := ParseListings(doc, "PHYS 4B")
	if len(sections) != 1 {
		t.Fatalf("expected 1 PHYS 4B section, got %d", len(sections))
	}

	s := sections[0]
	if s.Professor != "Taylor, Roderic" {
		t.Errorf("expected 'Taylor, Roderic' via name-shape match, got %q", s.Professor)
	}
	if s.Format != FormatHybrid {
		t.Errorf("expected Hybrid format from the skittle pill, got %s", s.Format)
	}
	if s.ClassTime != "T R 01:30 PM-03:20 PM" {
		t.Errorf("unexpected class time: %q", s.ClassTime)
	}
}

func TestParseListingsNoMatches(t *testing.T) {
	doc := mustParse(t, listingsTableHTML)

	// An empty result is a valid "nothing found" outcome, not an error
	if sections := ParseListings(doc, "CHEM 30A"); len(sections) != 0 {
		t.Errorf("expected no sections for unlisted course, got %d", len(sections))
	}
}

func TestParseListingsMarkedElementStrategy(t *testing.T) {
	page := `<html><body>
<div class="course-listing">MATH 1A 34567 Nguyen, Clare Online</div>
<div class="sidebar">unrelated content</div>
</body></html>`
	doc := mustParse(t, page)

	sections := ParseListings(doc, "MATH 1A")
	if len(sections) != 1 {
		t.Fatalf("expected 1 section from class-marked element, got %d", len(sections))
	}

	s := sections[0]
	if s.CRN != "34567" {
		t.Errorf("expected CRN 34567, got %s", s.CRN)
	}
	if s.Professor != "Nguyen, Clare" {
		t.Errorf("expected professor 'Nguyen, Clare', got %q", s.Professor)
	}
	if s.Format != FormatOnline {
		t.Errorf("expected Online format, got %s", s.Format)
	}
}

func TestParseListingsTextSearchStrategy(t *testing.T) {
	// No tables and no listing-like class names: the text search fallback
	// climbs from the matching text node to its nearest container.
	page := `<html><body>
<ul>
  <li>PHYS 4B - CRN 45678 - Taylor, Roderic - Hybrid section</li>
</ul>
</body></html>`
	doc := mustParse(t, page)

	sections := ParseListings(doc, "PHYS 4B")
	if len(sections) != 1 {
		t.Fatalf("expected 1 section from text search fallback, got %d", len(sections))
	}

	s := sections[0]
	if s.CRN != "45678" {
		t.Errorf("expected CRN 45678, got %s", s.CRN)
	}
	if s.Professor != "Taylor, Roderic" {
		t.Errorf("expected professor 'Taylor, Roderic', got %q", s.Professor)
	}
	if s.Format != FormatHybrid {
		t.Errorf("expected Hybrid format, got %s", s.Format)
	}
}

func TestRowExtractorRequiresCRN(t *testing.T) {
	page := `<html><body>
<table>
<tr><td>MATH 1A</td><td>Nguyen, Clare</td><td>08:30 AM-10:45 AM</td></tr>
</table>
</body></html>`
	doc := mustParse(t, page)

	if sections := ParseListings(doc, "MATH 1A"); len(sections) != 0 {
		t.Errorf("a row without a CRN must not produce a record, got %d", len(sections))
	}
}

func TestDedupeByCRN(t *testing.T) {
	sections := []CourseSection{
		{Course: "MATH 1A", CRN: "12345"},
		{Course: "MATH 1A", CRN: "12345"},
		{Course: "MATH 1A", CRN: "N/A"},
		{Course: "MATH 1A", CRN: "N/A"},
		{Course: "MATH 1A", CRN: "54321"},
	}

	unique := dedupeByCRN(sections)
	if len(unique) != 4 {
		t.Fatalf("expected 4 sections after de-duplication, got %d", len(unique))
	}

	// Duplicate real CRN collapses, the N/A sentinel does not
	counts := make(map[string]int)
	for _, s := range unique {
		counts[s.CRN]++
	}
	if counts["12345"] != 1 {
		t.Errorf("expected one 12345 record, got %d", counts["12345"])
	}
	if counts["N/A"] != 2 {
		t.Errorf("expected both N/A records kept, got %d", counts["N/A"])
	}
}

func TestProfessorCandidateHeuristic(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"Taylor, Roderic", "Taylor, Roderic"},
		{"Clare Nguyen", "Clare Nguyen"},
		{"Christopher N. Bradley", "Christopher N. Bradley"},
		{"View Footnotes", ""},       // noise term
		{"Room 2301", ""},            // digits
		{"lowercase name", ""},       // not capitalized
		{"A B C D E", ""},            // too many words
		{"De Anza Main Campus", ""},  // campus vocabulary
		{"Online Class Meets", ""},   // schedule vocabulary
	}

	for _, tt := range tests {
		if got := professorCandidate(tt.input); got != tt.expected {
			t.Errorf("professorCandidate(%q) = %q, expected %q", tt.input, got, tt.expected)
		}
	}
}
