package crawler

import (
	"fmt"
	"net/url"

	"github.com/PuerkitoBio/goquery"

	"linkedin-people-search/internal/models"
)

const searchPath = "search/results/people/"

// SearchURL builds the people search URL for term under baseURL
func SearchURL(baseURL, term string) (string, error) {
	base, err := url.Parse(baseURL)
	if err != nil {
		return "", fmt.Errorf("invalid base URL %q: %w", baseURL, err)
	}

	u := base.ResolveReference(&url.URL{Path: searchPath})
	q := url.Values{}
	q.Set("keywords", term)
	q.Set("refresh", "true")
	u.RawQuery = q.Encode()

	return u.String(), nil
}

// extractFunc turns one card into a result
type extractFunc func(card *goquery.Selection) models.SearchResult

// cardTally counts what happened to the candidate cards of one page
type cardTally struct {
	candidates int
	skipped    int
	duplicates int
}

// collectCards extracts every card, drops the ones without a usable profile
// URL and keeps the first occurrence of each URL in page order
func collectCards(cards *goquery.Selection, extract extractFunc) ([]models.SearchResult, cardTally) {
	var (
		results []models.SearchResult
		tally   cardTally
		seen    = make(map[string]struct{})
	)

	cards.Each(func(_ int, card *goquery.Selection) {
		tally.candidates++

		result, ok := safeExtract(card, extract)
		if !ok || !IsProfileURL(result.ProfileURL) {
			tally.skipped++
			return
		}
		if _, dup := seen[result.ProfileURL]; dup {
			tally.duplicates++
			return
		}

		seen[result.ProfileURL] = struct{}{}
		results = append(results, result)
	})

	return results, tally
}

// safeExtract runs extract and reports false if it panicked
func safeExtract(card *goquery.Selection, extract extractFunc) (result models.SearchResult, ok bool) {
	defer func() {
		if r := recover(); r != nil {
			ok = false
		}
	}()
	return extract(card), true
}
