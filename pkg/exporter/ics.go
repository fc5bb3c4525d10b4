package exporter

import (
	"fmt"
	"io"
	"time"

	"github.com/Bryne19/deanza-course-planner/pkg/scraper"

	ics "github.com/arran4/golang-ical"
)

// dayOffsets maps schedule day letters to offsets from the Monday of the
// export week. R is Thursday, U is Sunday.
var dayOffsets = map[string]int{
	"M": 0,
	"T": 1,
	"W": 2,
	"R": 3,
	"F": 4,
	"S": 5,
	"U": 6,
}

// GenerateICS creates an ICS file from the slice of course sections and writes
// it to the provided writer. weekStart should be the Monday of the week the
// events are placed in; sections without parsed meeting times are skipped.
func GenerateICS(sections []scraper.CourseSection, weekStart time.Time, w io.Writer) error {
	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)

	loc, err := time.LoadLocation("America/Los_Angeles")
	if err != nil {
		return fmt.Errorf("could not load timezone: %w", err)
	}

	for i, s := range sections {
		if s.TimeData == nil {
			continue // TBA or unparseable meeting times
		}

		seen := make(map[string]bool)
		for _, day := range s.TimeData.Days {
			if seen[day] {
				continue
			}
			seen[day] = true

			offset, ok := dayOffsets[day]
			if !ok {
				continue
			}

			date := weekStart.AddDate(0, 0, offset)
			// Build times from minutes past midnight so DST transitions
			// within the week don't shift the wall-clock hour.
			startTime := time.Date(date.Year(), date.Month(), date.Day(), 0, s.TimeData.StartMinutes, 0, 0, loc)
			endTime := time.Date(date.Year(), date.Month(), date.Day(), 0, s.TimeData.EndMinutes, 0, 0, loc)

			event := cal.AddEvent(fmt.Sprintf("%s-%s-%d", s.CRN, day, i))
			event.SetCreatedTime(time.Now())
			event.SetDtStampTime(time.Now())
			event.SetModifiedAt(time.Now())
			event.SetStartAt(startTime)
			event.SetEndAt(endTime)
			event.SetSummary(s.Course)

			description := fmt.Sprintf("CRN: %s\nProfessor: %s\nFormat: %s", s.CRN, s.Professor, s.Format)
			event.SetDescription(description)
		}
	}

	return cal.SerializeTo(w)
}
