package catalog

import (
	"net/url"
	"reflect"
	"testing"

	"aiwiki/internal/models"
)

func TestParseCriteriaDefaults(t *testing.T) {
	c := ParseCriteria(url.Values{})

	if c.Category != models.CategoryAll {
		t.Errorf("category: got %q, want %q", c.Category, models.CategoryAll)
	}
	if c.Pricing != "all" {
		t.Errorf("pricing: got %q, want %q", c.Pricing, "all")
	}
	if c.Sort != SortPopular {
		t.Errorf("sort: got %q, want %q", c.Sort, SortPopular)
	}
	if c.HasActiveFilters() {
		t.Error("zero criteria should have no active filters")
	}
}

func TestParseCriteriaFallbacks(t *testing.T) {
	c := ParseCriteria(url.Values{
		"category": {"no-such-category"},
		"pricing":  {"donationware"},
		"sort":     {"chaos"},
	})

	if c.Category != models.CategoryAll {
		t.Errorf("unknown category: got %q, want fallback %q", c.Category, models.CategoryAll)
	}
	if c.Pricing != "all" {
		t.Errorf("unknown pricing: got %q, want fallback %q", c.Pricing, "all")
	}
	if c.Sort != SortPopular {
		t.Errorf("unknown sort: got %q, want fallback %q", c.Sort, SortPopular)
	}
}

func TestParseCriteriaFull(t *testing.T) {
	c := ParseCriteria(url.Values{
		"q":         {"  chat  "},
		"category":  {"research"},
		"pricing":   {"freemium"},
		"show":      {"nlp", " art ", ""},
		"hide":      {"legacy"},
		"favorites": {"1"},
		"sort":      {"rating"},
	})

	if c.Query != "chat" {
		t.Errorf("query: got %q, want %q", c.Query, "chat")
	}
	if c.Category != "research" || c.Pricing != "freemium" {
		t.Errorf("got category %q pricing %q", c.Category, c.Pricing)
	}
	if want := []string{"nlp", "art"}; !reflect.DeepEqual(c.ShowTags, want) {
		t.Errorf("show tags: got %v, want %v", c.ShowTags, want)
	}
	if !c.FavoritesOnly || c.Sort != SortRating {
		t.Errorf("got favorites=%v sort=%q", c.FavoritesOnly, c.Sort)
	}
	if !c.HasActiveFilters() {
		t.Error("expected active filters")
	}
}

func TestCriteriaValuesRoundTrip(t *testing.T) {
	orig := Criteria{
		Query:         "paint",
		Category:      "design",
		Pricing:       "paid",
		ShowTags:      []string{"art", "3d"},
		HideTags:      []string{"beta"},
		FavoritesOnly: true,
		Sort:          SortNewest,
	}

	parsed := ParseCriteria(orig.Values())
	if !reflect.DeepEqual(parsed, orig) {
		t.Errorf("round trip: got %+v, want %+v", parsed, orig)
	}
}

// TestTagToggleIdempotent verifies that toggling a tag twice returns the
// filter set to its prior state.
func TestTagToggleIdempotent(t *testing.T) {
	c := Criteria{ShowTags: []string{"nlp"}, HideTags: []string{"legacy"}}

	twice := c.WithShowTagToggled("art").WithShowTagToggled("art")
	if !reflect.DeepEqual(twice.ShowTags, c.ShowTags) {
		t.Errorf("show toggle twice: got %v, want %v", twice.ShowTags, c.ShowTags)
	}

	twice = c.WithHideTagToggled("legacy").WithHideTagToggled("legacy")
	if !reflect.DeepEqual(twice.HideTags, c.HideTags) {
		t.Errorf("hide toggle twice: got %v, want %v", twice.HideTags, c.HideTags)
	}

	// Single toggle adds when absent, removes when present.
	added := c.WithShowTagToggled("art")
	if want := []string{"nlp", "art"}; !reflect.DeepEqual(added.ShowTags, want) {
		t.Errorf("show toggle add: got %v, want %v", added.ShowTags, want)
	}
	removed := c.WithShowTagToggled("nlp")
	if len(removed.ShowTags) != 0 {
		t.Errorf("show toggle remove: got %v, want empty", removed.ShowTags)
	}
}

func TestCacheKeyIgnoresTagOrder(t *testing.T) {
	a := Criteria{ShowTags: []string{"nlp", "art"}, Sort: SortPopular}
	b := Criteria{ShowTags: []string{"art", "nlp"}, Sort: SortPopular}

	if a.CacheKey() != b.CacheKey() {
		t.Errorf("cache keys differ for equivalent criteria:\n%s\n%s", a.CacheKey(), b.CacheKey())
	}

	c := a.WithShowTagToggled("art")
	if a.CacheKey() == c.CacheKey() {
		t.Error("cache keys should differ for different criteria")
	}
}

func TestWithoutFavoritesOnly(t *testing.T) {
	c := Criteria{FavoritesOnly: true}
	if c.WithoutFavoritesOnly().FavoritesOnly {
		t.Error("favorites-only flag not cleared")
	}
}
