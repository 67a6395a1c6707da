package domain

import (
	"sort"
	"strings"
)

type Product struct {
	ID          int64
	Name        string
	Category    string
	Style       string
	Price       float64
	Description string
	Sizes       []string
	Colors      []string
	Image       string
}

// FilterCriteria is a conjunction of catalog constraints.
// An empty string or nil field means "no constraint".
type FilterCriteria struct {
	Category string
	Style    string
	Search   string
	Budget   *float64
	Occasion string
}

// occasionStyles maps a shopping occasion to the styles allowed for it.
// Lookup is case-insensitive; an unmapped occasion imposes no constraint.
var occasionStyles = map[string][]string{
	"work":   {"Professional", "Casual"},
	"party":  {"Edgy", "Feminine", "Elegant"},
	"casual": {"Casual", "Sporty"},
	"sport":  {"Athletic", "Sporty"},
}

// StylesForOccasion returns the allowed style set for the occasion
// and whether the occasion is known.
func StylesForOccasion(occasion string) ([]string, bool) {
	ss, ok := occasionStyles[strings.ToLower(occasion)]
	return ss, ok
}

// FilterCatalog returns the products satisfying every non-empty
// criterion. The input slice is never mutated.
func FilterCatalog(products []Product, c FilterCriteria) []Product {
	matched := make([]Product, 0, len(products))
	for _, p := range products {
		if matches(p, c) {
			matched = append(matched, p)
		}
	}
	return matched
}

func matches(p Product, c FilterCriteria) bool {
	if c.Category != "" && p.Category != c.Category {
		return false
	}
	if c.Style != "" && p.Style != c.Style {
		return false
	}
	if c.Occasion != "" {
		if styles, ok := StylesForOccasion(c.Occasion); ok &&
			!containsString(styles, p.Style) {
			return false
		}
	}
	if c.Budget != nil && p.Price > *c.Budget {
		return false
	}
	if c.Search != "" && !matchesSearch(p, c.Search) {
		return false
	}
	return true
}

func matchesSearch(p Product, query string) bool {
	q := strings.ToLower(query)
	return strings.Contains(strings.ToLower(p.Name), q) ||
		strings.Contains(strings.ToLower(p.Description), q) ||
		strings.Contains(strings.ToLower(p.Category), q)
}

func containsString(ss []string, v string) bool {
	for _, s := range ss {
		if s == v {
			return true
		}
	}
	return false
}

// MaxRecommendations caps the result of RankByPreferences.
const MaxRecommendations = 6

// RankByPreferences orders products by how many preference tokens
// appear in their name or description, most relevant first. Ties keep
// catalog order. The result holds at most MaxRecommendations items
// and the input slice is never mutated.
func RankByPreferences(products []Product, preferences []string) []Product {
	ranked := make([]Product, len(products))
	copy(ranked, products)

	if len(preferences) > 0 {
		sort.SliceStable(ranked, func(i, j int) bool {
			return relevanceScore(ranked[i], preferences) >
				relevanceScore(ranked[j], preferences)
		})
	}

	if len(ranked) > MaxRecommendations {
		ranked = ranked[:MaxRecommendations]
	}
	return ranked
}

func relevanceScore(p Product, preferences []string) int {
	name := strings.ToLower(p.Name)
	desc := strings.ToLower(p.Description)

	var score int
	for _, pref := range preferences {
		token := strings.ToLower(pref)
		if token == "" {
			continue
		}
		if strings.Contains(name, token) || strings.Contains(desc, token) {
			score++
		}
	}
	return score
}

// Categories returns the distinct categories in catalog order.
func Categories(products []Product) []string {
	seen := make(map[string]struct{}, len(products))
	var cs []string
	for _, p := range products {
		if _, ok := seen[p.Category]; ok {
			continue
		}
		seen[p.Category] = struct{}{}
		cs = append(cs, p.Category)
	}
	return cs
}
