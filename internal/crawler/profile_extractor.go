package crawler

import (
	"net/url"
	"strings"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"

	"linkedin-people-search/internal/models"
)

const (
	// headlineMinLen is exclusive: a headline is longer than this
	headlineMinLen = 25
	locationMinLen = 2
	locationMaxLen = 40
)

// ProfileExtractor pulls search result fields out of result cards
type ProfileExtractor struct {
	base *url.URL
}

// NewProfileExtractor creates a ProfileExtractor resolving relative links against base
func NewProfileExtractor(base *url.URL) *ProfileExtractor {
	return &ProfileExtractor{base: base}
}

// ExtractProfileData extracts every field of one card. Each field is looked
// up on its own, so a missing element only leaves that field empty.
func (pe *ProfileExtractor) ExtractProfileData(card *goquery.Selection) models.SearchResult {
	link, href := pe.profileLink(card)

	result := models.SearchResult{
		ProfileURL: href,
	}

	result.Name, _ = FirstOf(
		func() string {
			avatar, _ := Locate(card, avatarSelectors...)
			return attrOf(avatar, "alt")
		},
		func() string { return textOf(link) },
	)

	if badge, ok := Locate(card, badgeSelectors...); ok {
		result.ConnectionDegree = textOf(badge)
	}

	result.Headline, result.Location = ClassifyTextBlocks(textBlocks(card))

	return result
}

// ExtractProfileURL extracts only the normalized profile URL of one card
func (pe *ProfileExtractor) ExtractProfileURL(card *goquery.Selection) models.SearchResult {
	_, href := pe.profileLink(card)
	return models.SearchResult{ProfileURL: href}
}

// profileLink returns the first profile-link candidate with a non-empty href
// and its normalized URL
func (pe *ProfileExtractor) profileLink(card *goquery.Selection) (*goquery.Selection, string) {
	if card == nil {
		return nil, ""
	}
	for _, selector := range profileLinkSelectors {
		link, ok := Locate(card, selector)
		if !ok {
			continue
		}
		if href := NormalizeProfileURL(pe.base, attrOf(link, "href")); href != "" {
			return link, href
		}
	}
	return nil, ""
}

// NormalizeProfileURL drops the query string and fragment of href and
// resolves it against base when it is relative
func NormalizeProfileURL(base *url.URL, href string) string {
	href = strings.TrimSpace(href)
	if i := strings.IndexAny(href, "?#"); i >= 0 {
		href = href[:i]
	}
	if href == "" {
		return ""
	}

	if base != nil {
		if u, err := url.Parse(href); err == nil && !u.IsAbs() {
			return base.ResolveReference(u).String()
		}
	}
	return href
}

// IsProfileURL reports whether u points at a person profile
func IsProfileURL(u string) bool {
	return u != "" && strings.Contains(u, ProfilePathMarker)
}

// textBlocks returns the non-blank small-text lines of card in document order
func textBlocks(card *goquery.Selection) []string {
	if card == nil {
		return nil
	}
	var blocks []string
	card.Find(TextBlockSelector).Each(func(_ int, s *goquery.Selection) {
		if text := textOf(s); text != "" {
			blocks = append(blocks, text)
		}
	})
	return blocks
}

// ClassifyTextBlocks picks headline and location out of a card's text blocks.
// The headline is the first block longer than 25 characters; the location is
// the first other block between 2 and 40 characters long. This is a layout
// heuristic and will misclassify when the card layout changes.
func ClassifyTextBlocks(blocks []string) (headline, location string) {
	for _, block := range blocks {
		if utf8.RuneCountInString(block) > headlineMinLen {
			headline = block
			break
		}
	}

	for _, block := range blocks {
		if headline != "" && block == headline {
			continue
		}
		if n := utf8.RuneCountInString(block); n >= locationMinLen && n <= locationMaxLen {
			location = block
			break
		}
	}

	return headline, location
}
