package catalog

import "testing"

func TestSuggestions_ShortQueryYieldsNothing(t *testing.T) {
	for _, query := range []string{"", "ч", "a"} {
		if got := Suggestions(testProducts(), query); len(got) != 0 {
			t.Fatalf("Suggestions(%q) = %v, want empty", query, got)
		}
	}
}

func TestSuggestions_MatchesNamesAndCategories(t *testing.T) {
	got := Suggestions(testProducts(), "часы")
	if len(got) != 1 || got[0] != "Умные часы" {
		t.Fatalf("Suggestions(часы) = %v, want [Умные часы]", got)
	}

	got = Suggestions(testProducts(), "electr")
	if len(got) != 1 || got[0] != "electronics" {
		t.Fatalf("Suggestions(electr) = %v, want [electronics]", got)
	}
}

func TestSuggestions_CaseInsensitive(t *testing.T) {
	lower := Suggestions(testProducts(), "часы")
	upper := Suggestions(testProducts(), "ЧАСЫ")
	if len(lower) != len(upper) {
		t.Fatalf("Suggestions differ by case: %v vs %v", lower, upper)
	}
	for i := range lower {
		if lower[i] != upper[i] {
			t.Fatalf("Suggestions differ by case: %v vs %v", lower, upper)
		}
	}
}

func TestSuggestions_DeduplicatesAndCaps(t *testing.T) {
	products := []Product{
		{ID: 1, Name: "Товар один", Category: "товары"},
		{ID: 2, Name: "Товар два", Category: "товары"},
		{ID: 3, Name: "Товар три", Category: "товары"},
		{ID: 4, Name: "Товар четыре", Category: "товары"},
		{ID: 5, Name: "Товар пять", Category: "товары"},
		{ID: 6, Name: "Товар шесть", Category: "товары"},
	}

	got := Suggestions(products, "товар")
	if len(got) != 5 {
		t.Fatalf("len(Suggestions) = %d, want 5", len(got))
	}
	seen := make(map[string]bool)
	for _, s := range got {
		if seen[s] {
			t.Fatalf("duplicate suggestion %q in %v", s, got)
		}
		seen[s] = true
	}
	// First-encountered order: first product name, then its category.
	if got[0] != "Товар один" || got[1] != "товары" {
		t.Fatalf("Suggestions = %v, want [Товар один товары ...]", got)
	}
}

func TestSuggestions_EmptyCatalog(t *testing.T) {
	if got := Suggestions(nil, "часы"); len(got) != 0 {
		t.Fatalf("Suggestions(nil catalog) = %v, want empty", got)
	}
}
