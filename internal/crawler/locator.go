package crawler

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Locate returns the first element under root matched by selectors, trying
// them in order. ok is false when no selector matches.
func Locate(root *goquery.Selection, selectors ...string) (el *goquery.Selection, ok bool) {
	if root == nil {
		return nil, false
	}
	for _, selector := range selectors {
		if found := root.Find(selector); found.Length() > 0 {
			return found.First(), true
		}
	}
	return nil, false
}

// Strategy produces a candidate value, or "" when it has nothing
type Strategy func() string

// FirstOf evaluates strategies in order and returns the first non-empty value
func FirstOf(strategies ...Strategy) (string, bool) {
	for _, strategy := range strategies {
		if v := strategy(); v != "" {
			return v, true
		}
	}
	return "", false
}

// cleanText collapses runs of whitespace and trims the ends
func cleanText(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

func textOf(el *goquery.Selection) string {
	if el == nil {
		return ""
	}
	return cleanText(el.Text())
}

func attrOf(el *goquery.Selection, name string) string {
	if el == nil {
		return ""
	}
	v, _ := el.Attr(name)
	return strings.TrimSpace(v)
}
