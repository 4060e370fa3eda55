package catalog

import "strings"

// maxSuggestions caps the type-ahead suggestion list.
const maxSuggestions = 5

// minSuggestionQuery is the minimum query length before suggestions appear.
const minSuggestionQuery = 2

// Suggestions returns up to five unique type-ahead strings drawn from product
// names and category tags matching the query (case-insensitive substring).
// Queries shorter than two characters yield nothing.
func Suggestions(products []Product, query string) []string {
	if len([]rune(query)) < minSuggestionQuery {
		return nil
	}

	lower := strings.ToLower(query)
	seen := make(map[string]struct{})
	var out []string

	add := func(s string) {
		if _, dup := seen[s]; dup {
			return
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}

	for _, p := range products {
		if len(out) >= maxSuggestions {
			break
		}
		if strings.Contains(strings.ToLower(p.Name), lower) {
			add(p.Name)
		}
		if len(out) >= maxSuggestions {
			break
		}
		if strings.Contains(strings.ToLower(p.Category), lower) {
			add(p.Category)
		}
	}

	if len(out) > maxSuggestions {
		out = out[:maxSuggestions]
	}
	return out
}
