package domain

import "time"

// CandidateQuery filters processed items for selection. With Exclude set the
// category filter is inverted.
type CandidateQuery struct {
	Categories   []string
	Exclude      bool
	Since        time.Time
	MinRelevance int
	Limit        int
}
