package ratings

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

const searchResultsHTML = `<html><head><title>Search</title></head><body>
<a class="TeacherCard__StyledTeacherCard-syjs0d-0" href="/professor/123456">
  <div class="CardName__StyledCardName-sc-1gyrgim-0">Clare M. Nguyen</div>
  <div class="CardNumRating__CardNumRatingNumber-sc-17t4b9u-2">4.5</div>
  <div class="CardNumRating__CardNumRatingCount-sc-17t4b9u-3">32 ratings</div>
  <div class="CardFeedback__CardFeedbackItem-lq6nix-1">
    <div class="CardFeedback__CardFeedbackNumber-lq6nix-2">78%</div>
    <div>would take again</div>
  </div>
  <div class="CardFeedback__CardFeedbackItem-lq6nix-1">
    <div class="CardFeedback__CardFeedbackNumber-lq6nix-2">3.1</div>
    <div>level of difficulty</div>
  </div>
</a>
<a class="TeacherCard__StyledTeacherCard-syjs0d-0" href="/professor/654321">
  <div class="CardName__StyledCardName-sc-1gyrgim-0">John Nguyen</div>
  <div class="CardNumRating__CardNumRatingNumber-sc-17t4b9u-2">2.0</div>
</a>
</body></html>`

// newTestClient points the package search URL at a mock server and disables
// the on-disk cache.
func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	originalSearchURL := searchURL
	searchURL = server.URL
	t.Cleanup(func() { searchURL = originalSearchURL })

	client := NewClient("")
	client.DisableCache()
	return client
}

func TestLookupMatchesCard(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/"+DefaultSchoolID {
			t.Errorf("expected school ID path /%s, got %s", DefaultSchoolID, r.URL.Path)
		}
		if r.URL.Query().Get("q") != "Clare Nguyen" {
			t.Errorf("expected query 'Clare Nguyen', got %q", r.URL.Query().Get("q"))
		}
		w.Write([]byte(searchResultsHTML))
	})

	rating := client.Lookup("Clare Nguyen")
	if rating == nil {
		t.Fatalf("expected a rating for Clare Nguyen, got nil")
	}

	if rating.Score == nil || *rating.Score != 4.5 {
		t.Errorf("expected score 4.5, got %v", rating.Score)
	}
	if rating.NumRatings == nil || *rating.NumRatings != 32 {
		t.Errorf("expected 32 ratings, got %v", rating.NumRatings)
	}
	if rating.Difficulty == nil || *rating.Difficulty != 3.1 {
		t.Errorf("expected difficulty 3.1, got %v", rating.Difficulty)
	}
	if rating.URL != "https://www.ratemyprofessors.com/professor/123456" {
		t.Errorf("unexpected profile URL: %s", rating.URL)
	}
}

func TestLookupNoExactMatch(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(searchResultsHTML))
	})

	// "Jane Smith" appears in no card; the nearest result must not be used
	if rating := client.Lookup("Jane Smith"); rating != nil {
		t.Errorf("expected nil for unmatched professor, got %+v", rating)
	}
}

func TestLookupNoCards(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<html><body><p>No professors found</p></body></html>`))
	})

	if rating := client.Lookup("Clare Nguyen"); rating != nil {
		t.Errorf("expected nil when no result cards exist, got %+v", rating)
	}
}

func TestLookupBadStatus(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	// A failed lookup is "no rating", never an error
	if rating := client.Lookup("Clare Nguyen"); rating != nil {
		t.Errorf("expected nil on HTTP 500, got %+v", rating)
	}
}

func TestLookupProfilePageFallback(t *testing.T) {
	// Card matches by name but carries no rating fields; the page also holds
	// the profile-layout markers the parser should fall back to.
	page := `<html><body>
<a class="TeacherCard__StyledTeacherCard-syjs0d-0" href="/professor/777">
  <div class="CardName__StyledCardName-sc-1gyrgim-0">Roderic Taylor</div>
</a>
<div class="RatingValue__Numerator-qw8sqy-2">4.2</div>
<a href="#ratingsList">65&nbsp;ratings</a>
<div class="FeedbackItem__StyledFeedbackItem-uof32n-0">
  <div class="FeedbackItem__FeedbackNumber-uof32n-1">3.8</div>
  <div class="FeedbackItem__FeedbackDescription-uof32n-2">Level of Difficulty</div>
</div>
</body></html>`

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(page))
	})

	rating := client.Lookup("RodericTaylor")
	if rating == nil {
		t.Fatalf("expected a rating from the profile-page fallback, got nil")
	}
	if rating.Score == nil || *rating.Score != 4.2 {
		t.Errorf("expected fallback score 4.2, got %v", rating.Score)
	}
	if rating.NumRatings == nil || *rating.NumRatings != 65 {
		t.Errorf("expected fallback count 65, got %v", rating.NumRatings)
	}
	if rating.Difficulty == nil || *rating.Difficulty != 3.8 {
		t.Errorf("expected fallback difficulty 3.8, got %v", rating.Difficulty)
	}
}

func TestLookupCardWithNothingExtractable(t *testing.T) {
	page := `<html><body>
<a class="TeacherCard__StyledTeacherCard-syjs0d-0" href="/professor/888">
  <div class="CardName__StyledCardName-sc-1gyrgim-0">Clare Nguyen</div>
</a>
</body></html>`

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(page))
	})

	// Matching card but no score, count, or difficulty anywhere
	if rating := client.Lookup("Clare Nguyen"); rating != nil {
		t.Errorf("expected nil when nothing could be extracted, got %+v", rating)
	}
}
