package crawler

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"linkedin-people-search/internal/models"
)

func TestSearchURL(t *testing.T) {
	tests := []struct {
		name    string
		base    string
		term    string
		want    string
		wantErr bool
	}{
		{
			name: "plain term",
			base: "https://www.linkedin.com/",
			term: "golang",
			want: "https://www.linkedin.com/search/results/people/?keywords=golang&refresh=true",
		},
		{
			name: "term is escaped",
			base: "https://www.linkedin.com/",
			term: "c++ & rust",
			want: "https://www.linkedin.com/search/results/people/?keywords=c%2B%2B+%26+rust&refresh=true",
		},
		{
			name: "base with path prefix",
			base: "http://localhost:8080/mirror/",
			term: "x",
			want: "http://localhost:8080/mirror/search/results/people/?keywords=x&refresh=true",
		},
		{
			name:    "invalid base",
			base:    "://bad",
			term:    "x",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := SearchURL(tt.base, tt.term)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func cardsOf(t *testing.T, ids ...string) *goquery.Selection {
	t.Helper()
	var b strings.Builder
	b.WriteString("<ul>")
	for _, id := range ids {
		b.WriteString(`<li class="card" data-id="` + id + `"></li>`)
	}
	b.WriteString("</ul>")

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(b.String()))
	require.NoError(t, err)
	return doc.Find("li.card")
}

func byID(card *goquery.Selection) models.SearchResult {
	id, _ := card.Attr("data-id")
	switch id {
	case "panic":
		panic("broken card")
	case "empty":
		return models.SearchResult{}
	case "company":
		return models.SearchResult{ProfileURL: "https://www.linkedin.com/company/" + id}
	}
	return models.SearchResult{ProfileURL: "https://www.linkedin.com/in/" + id, Name: id}
}

func TestCollectCardsKeepsFirstOccurrence(t *testing.T) {
	results, tally := collectCards(cardsOf(t, "a", "b", "a", "c", "b"), byID)

	var names []string
	for _, r := range results {
		names = append(names, r.Name)
	}
	assert.Equal(t, []string{"a", "b", "c"}, names)
	assert.Equal(t, cardTally{candidates: 5, duplicates: 2}, tally)
}

func TestCollectCardsSkipsUnusableCards(t *testing.T) {
	results, tally := collectCards(cardsOf(t, "a", "panic", "empty", "company", "b"), byID)

	require.Len(t, results, 2)
	assert.Equal(t, "https://www.linkedin.com/in/a", results[0].ProfileURL)
	assert.Equal(t, "https://www.linkedin.com/in/b", results[1].ProfileURL)
	assert.Equal(t, cardTally{candidates: 5, skipped: 3}, tally)
}

func TestCollectCardsEmpty(t *testing.T) {
	results, tally := collectCards(cardsOf(t), byID)
	assert.Empty(t, results)
	assert.Equal(t, cardTally{}, tally)
}
