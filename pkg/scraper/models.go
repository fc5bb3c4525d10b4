package scraper

import (
	"sort"

	"github.com/Bryne19/deanza-course-planner/pkg/ratings"
	"github.com/Bryne19/deanza-course-planner/pkg/schedule"
)

// Course format tags as derived from the listings page text.
const (
	FormatOnline   = "Online"
	FormatHybrid   = "Hybrid"
	FormatInPerson = "In-Person"
	FormatUnknown  = "Unknown"
)

// CourseSection represents one section row scraped from the listings page.
// Professor, ClassTime, and Format are never empty: fields the page did not
// yield fall back to "TBA" (or "Unknown" for Format). TimeData and Ratings
// are attached after extraction and may be nil.
type CourseSection struct {
	Course    string                 `json:"course"`
	CRN       string                 `json:"crn"`
	Professor string                 `json:"professor"`
	ClassTime string                 `json:"class_time"`
	Format    string                 `json:"format"`
	TimeData  *schedule.TimeInterval `json:"time_data,omitempty"`
	Ratings   *ratings.Rating        `json:"ratings,omitempty"`
}

// Meetings adapts scraped sections into the conflict detector's input form.
func Meetings(sections []CourseSection) []schedule.Section {
	meetings := make([]schedule.Section, 0, len(sections))
	for _, s := range sections {
		meetings = append(meetings, schedule.Section{
			Course:    s.Course,
			CRN:       s.CRN,
			Professor: s.Professor,
			Time:      s.TimeData,
		})
	}
	return meetings
}

// SortByRating orders sections best-rated first. Sections without a rating
// keep their relative order at the end of the list.
func SortByRating(sections []CourseSection) {
	sort.SliceStable(sections, func(i, j int) bool {
		return ratingScore(sections[i]) > ratingScore(sections[j])
	})
}

func ratingScore(s CourseSection) float64 {
	if s.Ratings == nil || s.Ratings.Score == nil {
		return 0
	}
	return *s.Ratings.Score
}
