// Package ratings resolves professors against their public RateMyProfessors
// profile. Lookups are best-effort: a missing or ambiguous profile is an
// expected outcome, never an error.
package ratings

import (
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/PuerkitoBio/goquery"
)

const (
	profileBaseURL  = "https://www.ratemyprofessors.com"
	DefaultSchoolID = "1967" // De Anza College
)

// searchURL is a package-level var so tests can point the client at a mock server.
var searchURL = "https://www.ratemyprofessors.com/search/professors"

// Rating holds whatever subset of a professor's rating data could be
// extracted. Nil pointer fields were not found.
type Rating struct {
	Score      *float64 `json:"rating,omitempty"`
	NumRatings *int     `json:"num_ratings,omitempty"`
	Difficulty *float64 `json:"difficulty,omitempty"`
	URL        string   `json:"url,omitempty"`
}

// Client handles HTTP requests to the ratings site
type Client struct {
	httpClient *http.Client
	schoolID   string
	useCache   bool
}

// NewClient creates a ratings client scoped to one school's search results.
// An empty schoolID falls back to the De Anza College ID.
func NewClient(schoolID string) *Client {
	if schoolID == "" {
		schoolID = DefaultSchoolID
	}
	return &Client{
		httpClient: &http.Client{Timeout: 15 * time.Second},
		schoolID:   schoolID,
		useCache:   true,
	}
}

// DisableCache turns off the on-disk lookup cache, forcing fresh requests.
func (c *Client) DisableCache() {
	c.useCache = false
}

// Lookup fetches the search results page for a professor and extracts rating
// data from the one result card whose name strictly matches. It returns nil
// whenever no rating could be resolved: request failure, non-200 response, no
// matching card, or a matching card with nothing extractable. It never
// returns an error; absence of a rating is a common, non-fatal outcome.
func (c *Client) Lookup(professorName string) *Rating {
	if c.useCache {
		if rating, ok := readCache(professorName); ok {
			return rating
		}
	}

	reqURL := fmt.Sprintf("%s/%s?q=%s", searchURL, c.schoolID, url.QueryEscape(professorName))

	req, err := http.NewRequest("GET", reqURL, nil)
	if err != nil {
		return nil
	}
	req.Header.Set("User-Agent", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36")
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil
	}

	rating := parseSearchResults(doc, professorName)
	if rating != nil && c.useCache {
		writeCache(professorName, rating)
	}
	return rating
}
