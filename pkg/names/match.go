package names

// Match reports whether two personal names refer to the same person, using
// normalized tokens. Both first and last name must match exactly; middle
// names and initials are already elided by Normalize, so they can neither
// block nor falsely enable a match. A reversed pairing also matches to cover
// "Last, First" display order. Names that normalize to fewer than two tokens
// never match.
func Match(searchName, candidateName string) bool {
	search := Normalize(searchName)
	candidate := Normalize(candidateName)

	if len(search) < 2 || len(candidate) < 2 {
		return false
	}

	searchFirst, searchLast := search[0], search[len(search)-1]
	candidateFirst, candidateLast := candidate[0], candidate[len(candidate)-1]

	if searchFirst == candidateFirst && searchLast == candidateLast {
		return true
	}

	return searchFirst == candidateLast && searchLast == candidateFirst
}
