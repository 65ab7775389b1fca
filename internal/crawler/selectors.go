package crawler

// Search results page selectors.
// These break whenever the results page markup changes. Order inside each
// list is priority order: later entries are looser fallbacks.
const (
	// ProfilePathMarker is the path segment every person profile URL contains
	ProfilePathMarker = "/in/"

	// SignedInSelector is only rendered for an authenticated session
	SignedInSelector = ".global-nav__primary-link"

	ResultsContainer         = ".search-results-container"
	ResultsContainerFallback = ".reusable-search__entity-result-list"

	// CardSelector is a union: every element matching any part is a candidate card
	CardSelector = `li.reusable-search__result-container, ` +
		`.entity-result__item, ` +
		`div[data-chameleon-result-urn], ` +
		`div[data-view-name="search-entity-result-universal-template"]`

	// TextBlockSelector matches the small-text lines holding headline and location
	TextBlockSelector = "div.t-14"
)

var (
	profileLinkSelectors = []string{
		".entity-result__title-text a",
		"a.app-aware-link",
		"a[data-test-app-aware-link]",
		`a[href*="` + ProfilePathMarker + `"]`,
	}

	avatarSelectors = []string{
		"img.presence-entity__image",
		".presence-entity img",
	}

	badgeSelectors = []string{
		".entity-result__badge-text",
		".entity-result__badge",
	}
)
