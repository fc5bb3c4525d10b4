package schedule

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

// dayNames maps the single-letter weekday codes used on the listings page to
// their full names. R is Thursday and U is Sunday.
var dayNames = map[string]string{
	"M": "Monday",
	"T": "Tuesday",
	"W": "Wednesday",
	"R": "Thursday",
	"F": "Friday",
	"S": "Saturday",
	"U": "Sunday",
}

var (
	leadingDaysPattern = regexp.MustCompile(`^([MTWRFSU\s]+)`)
	timeRangePattern   = regexp.MustCompile(`(?i)(\d{1,2}:\d{2}\s*[AP]M)\s*-\s*(\d{1,2}:\d{2}\s*[AP]M)`)
	clockPattern       = regexp.MustCompile(`(\d{1,2}):(\d{2})\s*([AP]M)`)
)

// TimeInterval is the structured form of a class time string like
// "M W 08:30 AM-10:45 AM".
type TimeInterval struct {
	Days            []string `json:"days"`
	DayNames        []string `json:"day_names"`
	StartTime       string   `json:"start_time"`
	EndTime         string   `json:"end_time"`
	StartMinutes    int      `json:"start_minutes"`
	EndMinutes      int      `json:"end_minutes"`
	DurationMinutes int      `json:"duration_minutes"`
}

// Range formats the interval as a display string, e.g. "08:30 AM - 10:45 AM".
func (t *TimeInterval) Range() string {
	return fmt.Sprintf("%s - %s", t.StartTime, t.EndTime)
}

// ParseClassTime parses a raw class time string into a TimeInterval.
// It returns nil for empty input, literal "TBA", or any string missing either
// a leading run of weekday letters or a 12-hour time range. Duration is
// end minus start and is not validated, so a malformed range can yield a
// non-positive duration.
func ParseClassTime(classTime string) *TimeInterval {
	if classTime == "" || classTime == "TBA" {
		return nil
	}

	daysMatch := leadingDaysPattern.FindStringSubmatch(classTime)
	if daysMatch == nil {
		return nil
	}

	var days, names []string
	for _, r := range strings.TrimSpace(daysMatch[1]) {
		letter := string(r)
		if full, ok := dayNames[letter]; ok {
			days = append(days, letter)
			names = append(names, full)
		}
	}
	if len(days) == 0 {
		return nil
	}

	rangeMatch := timeRangePattern.FindStringSubmatch(classTime)
	if rangeMatch == nil {
		return nil
	}

	startStr := strings.TrimSpace(rangeMatch[1])
	endStr := strings.TrimSpace(rangeMatch[2])

	startMinutes, ok := clockToMinutes(startStr)
	if !ok {
		return nil
	}
	endMinutes, ok := clockToMinutes(endStr)
	if !ok {
		return nil
	}

	return &TimeInterval{
		Days:            days,
		DayNames:        names,
		StartTime:       startStr,
		EndTime:         endStr,
		StartMinutes:    startMinutes,
		EndMinutes:      endMinutes,
		DurationMinutes: endMinutes - startMinutes,
	}
}

// clockToMinutes converts a 12-hour clock string like "08:30 AM" (the space is
// optional) to minutes since midnight.
func clockToMinutes(clock string) (int, bool) {
	m := clockPattern.FindStringSubmatch(strings.ToUpper(clock))
	if m == nil {
		return 0, false
	}

	t, err := time.Parse("3:04 PM", fmt.Sprintf("%s:%s %s", m[1], m[2], m[3]))
	if err != nil {
		return 0, false
	}

	return t.Hour()*60 + t.Minute(), true
}
