package scraper

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
)

// minPageLength is the floor below which a response body is considered an
// empty or broken page rather than real listings content.
const minPageLength = 100

const defaultMaxRetries = 3

var (
	// listingsURL is a package-level var so tests can point the client at a mock server
	listingsURL = "https://www.deanza.edu/schedule/listings.html"

	// retryBaseDelay is multiplied by the attempt number between retries
	retryBaseDelay = 2 * time.Second
)

// FetchError reports a listings fetch that failed after exhausting all retries.
type FetchError struct {
	Attempts int
	URL      string
	Err      error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("failed to fetch listings after %d attempts: %v", e.Attempts, e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }

// Client handles HTTP requests to the schedule listings site. The site sits
// behind Cloudflare, so requests impersonate a regular browser session: full
// browser headers plus a cookie jar that keeps clearance cookies across
// retries. Clients are cheap and hold no cross-search state, so callers
// should create one per search rather than sharing a global instance.
type Client struct {
	httpClient *http.Client
	maxRetries int
}

// NewClient creates a scraper client with the default retry budget.
func NewClient() *Client {
	return NewClientWithRetries(defaultMaxRetries)
}

// NewClientWithRetries creates a scraper client that gives up after
// maxRetries failed fetch attempts.
func NewClientWithRetries(maxRetries int) *Client {
	jar, _ := cookiejar.New(nil)
	return &Client{
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
			Jar:     jar,
		},
		maxRetries: maxRetries,
	}
}

// GetListings fetches and parses the listings page for a department and term.
// Every failure mode - bad status, empty body, Cloudflare interstitial,
// error page - is retried with an increasing delay before surfacing a
// FetchError carrying the last observed cause.
func (c *Client) GetListings(department, term string) (*goquery.Document, error) {
	url := fmt.Sprintf("%s?dept=%s&t=%s", listingsURL, department, term)

	var lastErr error
	for attempt := 0; attempt < c.maxRetries; attempt++ {
		doc, err := c.fetchListingsPage(url)
		if err == nil {
			return doc, nil
		}
		lastErr = err

		if attempt < c.maxRetries-1 {
			time.Sleep(time.Duration(attempt+1) * retryBaseDelay)
		}
	}

	return nil, &FetchError{Attempts: c.maxRetries, URL: url, Err: lastErr}
}

// SearchCourse fetches the listings page and extracts every section of the
// given course. An empty result with a nil error means the page parsed fine
// but held no matching sections.
func (c *Client) SearchCourse(department, courseCode, term string) ([]CourseSection, error) {
	doc, err := c.GetListings(department, term)
	if err != nil {
		return nil, err
	}

	fullCourseCode := fmt.Sprintf("%s %s", strings.ToUpper(department), strings.ToUpper(courseCode))
	return ParseListings(doc, fullCourseCode), nil
}

// fetchListingsPage performs one GET attempt and validates that the response
// is a real listings page.
func (c *Client) fetchListingsPage(url string) (*goquery.Document, error) {
	req, err := http.NewRequest("GET", url, nil)
	if err != nil {
		return nil, err
	}
	setBrowserHeaders(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code %d (%s)", resp.StatusCode, http.StatusText(resp.StatusCode))
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read listings response body: %w", err)
	}

	if len(body) < minPageLength {
		return nil, fmt.Errorf("received empty or invalid page content (%d bytes)", len(body))
	}

	page := strings.ToLower(string(body))
	if strings.Contains(page, "cloudflare") && strings.Contains(page, "checking your browser") {
		return nil, errors.New("stuck on the Cloudflare challenge page")
	}
	if strings.Contains(page, "error") && strings.Contains(page, "403") {
		return nil, errors.New("access denied (403), the site may be blocking requests")
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to parse listings HTML: %w", err)
	}

	title := strings.TrimSpace(doc.Find("title").First().Text())
	if strings.Contains(strings.ToLower(title), "error") {
		return nil, fmt.Errorf("error page detected: %s", title)
	}

	return doc, nil
}

// setBrowserHeaders makes the request look like it came from a real browser.
// The default Go user agent gets served the bot challenge immediately.
func setBrowserHeaders(req *http.Request) {
	req.Header.Set("User-Agent", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36")
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,image/avif,image/webp,*/*;q=0.8")
	req.Header.Set("Accept-Language", "en-US,en;q=0.9")
	req.Header.Set("Upgrade-Insecure-Requests", "1")
}
