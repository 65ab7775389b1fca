package models

import "time"

// SearchMode selects how much of each result card is extracted
type SearchMode string

const (
	// SearchModeLinks extracts profile URLs only
	SearchModeLinks SearchMode = "links"
	// SearchModeDetailed extracts every card field
	SearchModeDetailed SearchMode = "detailed"
)

// RunStatus represents how a search run ended
type RunStatus string

const (
	RunStatusOK          RunStatus = "ok"
	RunStatusNoContainer RunStatus = "no_container"
	RunStatusFailed      RunStatus = "failed"
)

// SearchResult is one person card from the results page.
// ProfileURL is the identity; the other fields are best effort and may be empty.
type SearchResult struct {
	ProfileURL       string `json:"profile_url"`
	Name             string `json:"name"`
	Headline         string `json:"headline"`
	Location         string `json:"location"`
	ConnectionDegree string `json:"connection_degree"`
}

// SearchRun holds the ordered, deduplicated results of one search along with
// the counters collected while walking the cards
type SearchRun struct {
	RunID          string
	Term           string
	URL            string
	Mode           SearchMode
	Results        []SearchResult
	Candidates     int
	Skipped        int
	Duplicates     int
	ContainerFound bool
	StartedAt      time.Time
	FinishedAt     time.Time
	Err            error
}

// ProfileURLs returns the profile URLs of the run in result order
func (r *SearchRun) ProfileURLs() []string {
	urls := make([]string, 0, len(r.Results))
	for _, res := range r.Results {
		urls = append(urls, res.ProfileURL)
	}
	return urls
}

// Duration returns how long the run took
func (r *SearchRun) Duration() time.Duration {
	if r.FinishedAt.IsZero() {
		return 0
	}
	return r.FinishedAt.Sub(r.StartedAt)
}

// Status derives how the run ended
func (r *SearchRun) Status() RunStatus {
	switch {
	case r.Err != nil:
		return RunStatusFailed
	case !r.ContainerFound:
		return RunStatusNoContainer
	default:
		return RunStatusOK
	}
}
