package scraper

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// markedClassPattern qualifies elements whose class attribute suggests they
// hold a course listing.
var markedClassPattern = regexp.MustCompile(`(?i)course|section|listing`)

// extractStrategy pulls course sections out of a listings document. Each
// strategy assumes a different page structure; an empty result means the
// structure it expects is not there.
type extractStrategy func(doc *goquery.Document, courseCode string) []CourseSection

// ParseListings extracts every section of the given course from a listings
// document. The page carries no stable schema, so extraction strategies are
// tried in priority order until one yields rows: regular tables first, then
// elements marked with listing-like class names, then a whole-document text
// search as the last resort. The final list is de-duplicated by CRN, keeping
// the first occurrence; the "N/A" sentinel is exempt and may repeat. Output
// follows document order.
func ParseListings(doc *goquery.Document, courseCode string) []CourseSection {
	strategies := []extractStrategy{
		extractFromTables,
		extractFromMarkedElements,
		extractFromTextSearch,
	}

	var sections []CourseSection
	for _, strategy := range strategies {
		sections = strategy(doc, courseCode)
		if len(sections) > 0 {
			break
		}
	}

	return dedupeByCRN(sections)
}

// extractFromTables walks every table row and extracts from those whose
// concatenated cell text mentions the course code.
func extractFromTables(doc *goquery.Document, courseCode string) []CourseSection {
	needle := strings.ToUpper(courseCode)

	var sections []CourseSection
	doc.Find("table").Each(func(_ int, table *goquery.Selection) {
		table.Find("tr").Each(func(_ int, row *goquery.Selection) {
			cells := row.Find("td, th")
			if cells.Length() == 0 {
				return
			}

			rowText := joinedCellText(cells)
			if !strings.Contains(strings.ToUpper(rowText), needle) {
				return
			}

			if section, ok := extractFromRow(row, cells, courseCode); ok {
				sections = append(sections, section)
			}
		})
	})
	return sections
}

// extractFromMarkedElements handles pages without tables: it qualifies
// elements by listing-like class names, falling back to bare table rows.
func extractFromMarkedElements(doc *goquery.Document, courseCode string) []CourseSection {
	if doc.Find("table").Length() > 0 {
		return nil
	}

	elements := doc.Find("div, tr").FilterFunction(func(_ int, sel *goquery.Selection) bool {
		class, ok := sel.Attr("class")
		return ok && markedClassPattern.MatchString(class)
	})
	if elements.Length() == 0 {
		elements = doc.Find("tr")
	}

	needle := strings.ToUpper(courseCode)
	var sections []CourseSection
	elements.Each(func(_ int, el *goquery.Selection) {
		if !strings.Contains(strings.ToUpper(el.Text()), needle) {
			return
		}

		// Use cell-based extraction when the element actually has cells,
		// otherwise fall back to the loose regex extractor.
		cells := el.Find("td, th")
		if cells.Length() > 0 {
			if section, ok := extractFromRow(el, cells, courseCode); ok {
				sections = append(sections, section)
			}
		} else if section, ok := extractFromElement(el, courseCode); ok {
			sections = append(sections, section)
		}
	})
	return sections
}

// extractFromTextSearch is the last resort: find any text node mentioning the
// course code and extract from its nearest row-like container.
func extractFromTextSearch(doc *goquery.Document, courseCode string) []CourseSection {
	needle := strings.ToUpper(courseCode)

	var sections []CourseSection
	seen := make(map[*html.Node]bool)

	doc.Find("*").Each(func(_ int, sel *goquery.Selection) {
		if !hasMatchingTextNode(sel, needle) {
			return
		}

		container := sel.Closest("tr, div, li")
		if container.Length() == 0 || seen[container.Nodes[0]] {
			return
		}
		seen[container.Nodes[0]] = true

		if section, ok := extractFromElement(container, courseCode); ok {
			sections = append(sections, section)
		}
	})
	return sections
}

// hasMatchingTextNode reports whether any direct text child of the selection
// contains the needle.
func hasMatchingTextNode(sel *goquery.Selection, needle string) bool {
	for _, node := range sel.Nodes {
		for child := node.FirstChild; child != nil; child = child.NextSibling {
			if child.Type != html.TextNode {
				continue
			}
			if strings.Contains(strings.ToUpper(child.Data), needle) {
				return true
			}
		}
	}
	return false
}

// dedupeByCRN removes duplicate sections, keeping the first occurrence of
// each CRN. "N/A" marks sections where no CRN could be extracted; those are
// distinct records and are kept as-is.
func dedupeByCRN(sections []CourseSection) []CourseSection {
	seen := make(map[string]bool, len(sections))
	unique := make([]CourseSection, 0, len(sections))

	for _, s := range sections {
		if seen[s.CRN] && s.CRN != "N/A" {
			continue
		}
		seen[s.CRN] = true
		unique = append(unique, s)
	}
	return unique
}

// joinedCellText concatenates the trimmed text of every cell with spaces.
func joinedCellText(cells *goquery.Selection) string {
	texts := make([]string, 0, cells.Length())
	cells.Each(func(_ int, cell *goquery.Selection) {
		texts = append(texts, strings.TrimSpace(cell.Text()))
	})
	return strings.Join(texts, " ")
}
