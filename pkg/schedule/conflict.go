package schedule

// Section is a single class meeting as seen by the conflict detector.
// Sections whose Time is nil (TBA or unparsable) are skipped silently.
type Section struct {
	Course    string
	CRN       string
	Professor string
	Time      *TimeInterval
}

// SectionRef identifies one side of a detected conflict.
type SectionRef struct {
	Course    string `json:"course"`
	CRN       string `json:"crn"`
	Professor string `json:"professor"`
}

// Conflict reports a pair of sections that meet at overlapping times on at
// least one shared day.
type Conflict struct {
	First           SectionRef `json:"course1"`
	Second          SectionRef `json:"course2"`
	ConflictingDays []string   `json:"conflicting_days"`
	Time1           string     `json:"time1"`
	Time2           string     `json:"time2"`
}

// DetectConflicts finds every pair of sections whose meeting times overlap on
// a shared day. The check treats intervals as half-open, so back-to-back
// sections that merely touch do not conflict. Output is deterministic: pairs
// are enumerated with the first index ascending, then the second.
func DetectConflicts(sections []Section) []Conflict {
	var conflicts []Conflict

	for i := 0; i < len(sections); i++ {
		t1 := sections[i].Time
		if t1 == nil {
			continue
		}

		for j := i + 1; j < len(sections); j++ {
			t2 := sections[j].Time
			if t2 == nil {
				continue
			}

			shared := sharedDays(t1.Days, t2.Days)
			if len(shared) == 0 {
				continue
			}

			if t1.StartMinutes < t2.EndMinutes && t1.EndMinutes > t2.StartMinutes {
				conflicts = append(conflicts, Conflict{
					First:           ref(sections[i]),
					Second:          ref(sections[j]),
					ConflictingDays: shared,
					Time1:           t1.Range(),
					Time2:           t2.Range(),
				})
			}
		}
	}

	return conflicts
}

func ref(s Section) SectionRef {
	return SectionRef{Course: s.Course, CRN: s.CRN, Professor: s.Professor}
}

// sharedDays returns the days present in both lists, ordered as they appear
// in the first list, without duplicates.
func sharedDays(a, b []string) []string {
	inB := make(map[string]bool, len(b))
	for _, d := range b {
		inB[d] = true
	}

	var shared []string
	seen := make(map[string]bool, len(a))
	for _, d := range a {
		if inB[d] && !seen[d] {
			seen[d] = true
			shared = append(shared, d)
		}
	}
	return shared
}
