// Package planner persists the user's selected course sections between runs
// so conflict checks and calendar exports can work across searches.
package planner

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/Bryne19/deanza-course-planner/pkg/scraper"
	"github.com/Bryne19/deanza-course-planner/pkg/schedule"
)

// Store manages the selected-sections file in the user's home directory.
type Store struct {
	path string
}

// savedSchedule represents the disk data format
type savedSchedule struct {
	LastUpdated time.Time               `json:"last_updated"`
	Courses     []scraper.CourseSection `json:"courses"`
}

// NewStore creates a store backed by ~/.deanza-planner_courses.json.
func NewStore() (*Store, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("could not find user home directory: %w", err)
	}
	return &Store{path: filepath.Join(homeDir, ".deanza-planner_courses.json")}, nil
}

// Load reads the selected sections from disk. A missing file yields an empty
// list. Sections saved without parsed time data get it re-derived so the
// conflict detector always sees current parse results.
func (s *Store) Load() ([]scraper.CourseSection, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read selected courses file: %w", err)
	}

	var saved savedSchedule
	if err := json.Unmarshal(data, &saved); err != nil {
		return nil, fmt.Errorf("failed to parse selected courses JSON: %w", err)
	}

	for i := range saved.Courses {
		if saved.Courses[i].TimeData == nil {
			saved.Courses[i].TimeData = schedule.ParseClassTime(saved.Courses[i].ClassTime)
		}
	}
	return saved.Courses, nil
}

// Save writes the full section list back to disk.
func (s *Store) Save(sections []scraper.CourseSection) error {
	saved := savedSchedule{
		LastUpdated: time.Now(),
		Courses:     sections,
	}

	data, err := json.MarshalIndent(saved, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize selected courses: %w", err)
	}

	if err := os.WriteFile(s.path, data, 0644); err != nil {
		return fmt.Errorf("failed to write selected courses file: %w", err)
	}
	return nil
}

// Add stores a section, replacing any previously selected section with the
// same CRN.
func (s *Store) Add(section scraper.CourseSection) error {
	sections, err := s.Load()
	if err != nil {
		return err
	}

	kept := make([]scraper.CourseSection, 0, len(sections)+1)
	for _, existing := range sections {
		if existing.CRN != section.CRN {
			kept = append(kept, existing)
		}
	}
	kept = append(kept, section)

	return s.Save(kept)
}

// Remove drops the section with the given CRN. It reports whether a section
// was actually removed.
func (s *Store) Remove(crn string) (bool, error) {
	sections, err := s.Load()
	if err != nil {
		return false, err
	}

	kept := make([]scraper.CourseSection, 0, len(sections))
	for _, existing := range sections {
		if existing.CRN != crn {
			kept = append(kept, existing)
		}
	}
	if len(kept) == len(sections) {
		return false, nil
	}

	return true, s.Save(kept)
}

// Clear removes every selected section.
func (s *Store) Clear() error {
	return s.Save(nil)
}

// Conflicts runs conflict detection over the currently selected sections.
func (s *Store) Conflicts() ([]schedule.Conflict, error) {
	sections, err := s.Load()
	if err != nil {
		return nil, err
	}
	return schedule.DetectConflicts(scraper.Meetings(sections)), nil
}
