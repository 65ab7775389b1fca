// Package export renders search results for the terminal or other tools.
package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"linkedin-people-search/internal/models"
)

// Format names an output encoding
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatCSV  Format = "csv"
)

// ParseFormat validates an output format name
func ParseFormat(name string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(name))); f {
	case FormatText, FormatJSON, FormatCSV:
		return f, nil
	default:
		return "", fmt.Errorf("unknown output format %q (want text, json or csv)", name)
	}
}

var csvHeader = []string{"term", "profile_url", "name", "headline", "location", "connection_degree"}

// jsonRun is the JSON shape of one run
type jsonRun struct {
	RunID   string                `json:"run_id,omitempty"`
	Term    string                `json:"term"`
	URL     string                `json:"url,omitempty"`
	Results []models.SearchResult `json:"results"`
	Error   string                `json:"error,omitempty"`
}

// Write renders runs to w. In links mode the text format prints only profile URLs.
func Write(w io.Writer, format Format, mode models.SearchMode, runs []*models.SearchRun) error {
	switch format {
	case FormatJSON:
		return writeJSON(w, runs)
	case FormatCSV:
		return writeCSV(w, runs)
	default:
		return writeText(w, mode, runs)
	}
}

func writeText(w io.Writer, mode models.SearchMode, runs []*models.SearchRun) error {
	for _, run := range runs {
		if len(runs) > 1 {
			if _, err := fmt.Fprintf(w, "# %s\n", run.Term); err != nil {
				return err
			}
		}
		for _, r := range run.Results {
			var err error
			if mode == models.SearchModeDetailed {
				_, err = fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
					r.ProfileURL, r.Name, r.Headline, r.Location, r.ConnectionDegree)
			} else {
				_, err = fmt.Fprintln(w, r.ProfileURL)
			}
			if err != nil {
				return err
			}
		}
	}
	return nil
}

func writeJSON(w io.Writer, runs []*models.SearchRun) error {
	out := make([]jsonRun, 0, len(runs))
	for _, run := range runs {
		jr := jsonRun{
			RunID:   run.RunID,
			Term:    run.Term,
			URL:     run.URL,
			Results: run.Results,
		}
		if jr.Results == nil {
			jr.Results = []models.SearchResult{}
		}
		if run.Err != nil {
			jr.Error = run.Err.Error()
		}
		out = append(out, jr)
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

func writeCSV(w io.Writer, runs []*models.SearchRun) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return err
	}
	for _, run := range runs {
		for _, r := range run.Results {
			rec := []string{run.Term, r.ProfileURL, r.Name, r.Headline, r.Location, r.ConnectionDegree}
			if err := cw.Write(rec); err != nil {
				return err
			}
		}
	}
	cw.Flush()
	return cw.Error()
}
