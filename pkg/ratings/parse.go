package ratings

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/Bryne19/deanza-course-planner/pkg/names"
)

var numberPattern = regexp.MustCompile(`\d+`)

// parseSearchResults extracts a Rating for professorName from a search
// results page. The site renders result cards as anchors with generated
// class names, so selection goes by stable class-name substrings with an
// href-based fallback. Only a card whose display name strictly matches is
// used; a near miss returns nil rather than guessing. Fields missing from
// the card are retried against the full-profile page layout, which uses
// different structural markers for the same data.
func parseSearchResults(doc *goquery.Document, professorName string) *Rating {
	cards := doc.Find("a[class*='TeacherCard']")
	if cards.Length() == 0 {
		cards = doc.Find("a[href*='/professor/']")
	}
	if cards.Length() == 0 {
		return nil
	}

	var card *goquery.Selection
	cards.EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		cardName := strings.TrimSpace(sel.Find("div[class*='CardName']").First().Text())
		if cardName != "" && names.Match(professorName, cardName) {
			card = sel
			return false
		}
		return true
	})
	if card == nil {
		return nil
	}

	rating := &Rating{URL: profileURL(card)}

	if score, ok := parseFloatText(card.Find("div[class*='CardNumRatingNumber']").First().Text()); ok {
		rating.Score = &score
	}
	if countText := card.Find("div[class*='CardNumRatingCount']").First().Text(); countText != "" {
		if m := numberPattern.FindString(countText); m != "" {
			if count, err := strconv.Atoi(m); err == nil {
				rating.NumRatings = &count
			}
		}
	}
	rating.Difficulty = cardDifficulty(card)

	// Per-field fallback to the profile-page layout
	if rating.Score == nil {
		if score, ok := parseFloatText(doc.Find("div[class*='RatingValue__Numerator']").First().Text()); ok {
			rating.Score = &score
		}
	}
	if rating.NumRatings == nil {
		if text := doc.Find("a[href='#ratingsList']").First().Text(); text != "" {
			if m := numberPattern.FindString(text); m != "" {
				if count, err := strconv.Atoi(m); err == nil {
					rating.NumRatings = &count
				}
			}
		}
	}
	if rating.Difficulty == nil {
		rating.Difficulty = profileDifficulty(doc)
	}

	if rating.Score == nil && rating.NumRatings == nil && rating.Difficulty == nil {
		return nil
	}
	return rating
}

// cardDifficulty scans the card's labeled feedback items for the one marked
// "difficulty" and reads the number inside it.
func cardDifficulty(card *goquery.Selection) *float64 {
	var difficulty *float64

	card.Find("div[class*='CardFeedbackItem']").EachWithBreak(func(_ int, item *goquery.Selection) bool {
		if !strings.Contains(strings.ToLower(item.Text()), "difficulty") {
			return true
		}
		if value, ok := parseFloatText(item.Find("div[class*='CardFeedbackNumber']").First().Text()); ok {
			difficulty = &value
			return false
		}
		return true
	})
	if difficulty != nil {
		return difficulty
	}

	// Alternate layout: bare feedback numbers whose parent carries the label
	card.Find("div[class*='CardFeedbackNumber']").EachWithBreak(func(_ int, num *goquery.Selection) bool {
		parent := num.Parent()
		if parent.Length() == 0 || !strings.Contains(strings.ToLower(parent.Text()), "difficulty") {
			return true
		}
		if value, ok := parseFloatText(num.Text()); ok {
			difficulty = &value
			return false
		}
		return true
	})
	return difficulty
}

// profileDifficulty reads the difficulty value off a full-profile page.
func profileDifficulty(doc *goquery.Document) *float64 {
	var difficulty *float64

	doc.Find("div[class*='FeedbackItem']").EachWithBreak(func(_ int, item *goquery.Selection) bool {
		if !strings.Contains(strings.ToLower(item.Text()), "difficulty") {
			return true
		}
		if value, ok := parseFloatText(item.Find("div[class*='FeedbackItem__FeedbackNumber']").First().Text()); ok {
			difficulty = &value
			return false
		}
		return true
	})
	if difficulty != nil {
		return difficulty
	}

	// The profile page lists quality then difficulty; take the second number
	numbers := doc.Find("div[class*='FeedbackItem__FeedbackNumber']")
	if numbers.Length() >= 2 {
		if value, ok := parseFloatText(numbers.Eq(1).Text()); ok {
			difficulty = &value
		}
	}
	return difficulty
}

// profileURL resolves the card's href into an absolute profile URL.
func profileURL(card *goquery.Selection) string {
	href, ok := card.Attr("href")
	if !ok {
		return ""
	}
	if strings.HasPrefix(href, "/professor/") {
		return profileBaseURL + href
	}
	if strings.HasPrefix(href, "http") {
		return href
	}
	return ""
}

func parseFloatText(text string) (float64, bool) {
	value, err := strconv.ParseFloat(strings.TrimSpace(text), 64)
	if err != nil {
		return 0, false
	}
	return value, true
}
