package schedule

import (
	"reflect"
	"testing"
)

func TestParseClassTime(t *testing.T) {
	interval := ParseClassTime("M W 08:30 AM-10:45 AM")
	if interval == nil {
		t.Fatalf("expected interval for valid class time, got nil")
	}

	if !reflect.DeepEqual(interval.Days, []string{"M", "W"}) {
		t.Errorf("expected days [M W], got %v", interval.Days)
	}
	if !reflect.DeepEqual(interval.DayNames, []string{"Monday", "Wednesday"}) {
		t.Errorf("expected day names [Monday Wednesday], got %v", interval.DayNames)
	}
	if interval.StartMinutes != 510 {
		t.Errorf("expected start 510 minutes (08:30 AM), got %d", interval.StartMinutes)
	}
	if interval.EndMinutes != 645 {
		t.Errorf("expected end 645 minutes (10:45 AM), got %d", interval.EndMinutes)
	}
	if interval.DurationMinutes != 135 {
		t.Errorf("expected duration 135 minutes, got %d", interval.DurationMinutes)
	}
	if interval.Range() != "08:30 AM - 10:45 AM" {
		t.Errorf("unexpected range string: %s", interval.Range())
	}
}

func TestParseClassTimeAfternoon(t *testing.T) {
	interval := ParseClassTime("T R 01:30 PM-03:20 PM")
	if interval == nil {
		t.Fatalf("expected interval for valid class time, got nil")
	}
	if interval.StartMinutes != 810 || interval.EndMinutes != 920 {
		t.Errorf("expected 810-920 minutes, got %d-%d", interval.StartMinutes, interval.EndMinutes)
	}
}

func TestParseClassTimeSentinels(t *testing.T) {
	if interval := ParseClassTime("TBA"); interval != nil {
		t.Errorf("expected nil for TBA, got %+v", interval)
	}
	if interval := ParseClassTime(""); interval != nil {
		t.Errorf("expected nil for empty string, got %+v", interval)
	}
}

func TestParseClassTimeMissingParts(t *testing.T) {
	// No weekday letters before the time range
	if interval := ParseClassTime("08:30 AM-10:45 AM"); interval != nil {
		t.Errorf("expected nil without day letters, got %+v", interval)
	}

	// Days but no parsable time range
	if interval := ParseClassTime("M W morning"); interval != nil {
		t.Errorf("expected nil without a time range, got %+v", interval)
	}
}

func TestParseClassTimeNoSpaceBeforeMeridiem(t *testing.T) {
	// The listings page sometimes drops the space before AM/PM
	interval := ParseClassTime("F 09:00AM-11:50AM")
	if interval == nil {
		t.Fatalf("expected interval for compact time format, got nil")
	}
	if interval.StartMinutes != 540 || interval.EndMinutes != 710 {
		t.Errorf("expected 540-710 minutes, got %d-%d", interval.StartMinutes, interval.EndMinutes)
	}
}

func TestParseClassTimeDurationNotValidated(t *testing.T) {
	// An inverted range still parses; the sign of the duration is the caller's concern
	interval := ParseClassTime("M 10:45 AM-08:30 AM")
	if interval == nil {
		t.Fatalf("expected interval for inverted range, got nil")
	}
	if interval.DurationMinutes != -135 {
		t.Errorf("expected duration -135, got %d", interval.DurationMinutes)
	}
}
