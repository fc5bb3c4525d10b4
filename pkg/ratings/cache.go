package ratings

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"
)

// cacheDuration determines how long a resolved rating is kept before a fresh lookup
const cacheDuration = 24 * time.Hour

var unsafePathPattern = regexp.MustCompile(`[^a-z0-9]+`)

// cacheEntry represents the disk data format
type cacheEntry struct {
	Timestamp time.Time `json:"timestamp"`
	Rating    Rating    `json:"rating"`
}

func getCachePath(professorName string) (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("could not find user home directory: %w", err)
	}

	cacheDir := filepath.Join(homeDir, ".deanza-planner_cache")
	if err := os.MkdirAll(cacheDir, 0755); err != nil {
		return "", fmt.Errorf("could not create cache directory: %w", err)
	}

	// Make a safe filesystem name from the professor name
	// (e.g. "Clare M. Nguyen" -> "clare_m_nguyen.json")
	key := unsafePathPattern.ReplaceAllString(strings.ToLower(professorName), "_")
	key = strings.Trim(key, "_")
	if key == "" {
		key = "unknown"
	}
	return filepath.Join(cacheDir, key+".json"), nil
}

// readCache checks if a valid, unexpired rating exists for this professor
func readCache(professorName string) (*Rating, bool) {
	path, err := getCachePath(professorName)
	if err != nil {
		return nil, false
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, false // File doesn't exist or can't be read
	}

	var entry cacheEntry
	if err := json.Unmarshal(data, &entry); err != nil {
		return nil, false
	}

	// Check expiration
	if time.Since(entry.Timestamp) > cacheDuration {
		return nil, false
	}

	rating := entry.Rating
	return &rating, true
}

// writeCache saves a resolved rating to disk
func writeCache(professorName string, rating *Rating) {
	path, err := getCachePath(professorName)
	if err != nil {
		return
	}

	entry := cacheEntry{
		Timestamp: time.Now(),
		Rating:    *rating,
	}

	data, err := json.MarshalIndent(entry, "", "  ")
	if err != nil {
		return
	}

	_ = os.WriteFile(path, data, 0644)
}
