// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package catalog implements the directory's filter and sort pipeline.
// Filtering is a pure function over the tool collection: it never mutates
// its inputs and is safe to recompute on every request.
package catalog

import (
	"net/url"
	"sort"
	"strings"

	"aiwiki/internal/models"
)

// SortKey selects the comparator applied after filtering.
type SortKey string

const (
	SortPopular SortKey = "popular" // default: popularity descending
	SortName    SortKey = "name"    // display name ascending, locale-aware
	SortRating  SortKey = "rating"  // rating descending
	SortNewest  SortKey = "newest"  // release year descending
)

// ValidSortKey reports whether k names a known comparator.
func ValidSortKey(k SortKey) bool {
	switch k {
	case SortPopular, SortName, SortRating, SortNewest:
		return true
	}
	return false
}

// Criteria holds one request's worth of filter state. The zero value plus
// the defaults applied by ParseCriteria means "everything, most popular
// first".
type Criteria struct {
	Query         string   // free-text search against name and description
	Category      string   // category id or models.CategoryAll
	Pricing       string   // pricing id or "all"
	ShowTags      []string // tool must carry at least one (empty = no-op)
	HideTags      []string // tool must carry none (empty = no-op)
	FavoritesOnly bool     // restrict to the current user's favorites
	Sort          SortKey
}

// DefaultCriteria returns the unfiltered view: every category and pricing,
// most popular first.
func DefaultCriteria() Criteria {
	return Criteria{
		Category: models.CategoryAll,
		Pricing:  "all",
		Sort:     SortPopular,
	}
}

// ParseCriteria builds Criteria from URL query values. Unknown sort keys
// fall back to popular; category and pricing fall back to "all".
// Parameter names match the directory page's form fields.
func ParseCriteria(values url.Values) Criteria {
	c := Criteria{
		Query:         strings.TrimSpace(values.Get("q")),
		Category:      values.Get("category"),
		Pricing:       values.Get("pricing"),
		ShowTags:      cleanTagList(values["show"]),
		HideTags:      cleanTagList(values["hide"]),
		FavoritesOnly: values.Get("favorites") == "1",
		Sort:          SortKey(values.Get("sort")),
	}

	if c.Category == "" || (c.Category != models.CategoryAll && !models.ValidCategory(c.Category)) {
		c.Category = models.CategoryAll
	}
	switch models.Pricing(c.Pricing) {
	case models.PricingFree, models.PricingFreemium, models.PricingPaid:
	default:
		c.Pricing = "all"
	}
	if !ValidSortKey(c.Sort) {
		c.Sort = SortPopular
	}

	return c
}

// Values converts the criteria back into URL query values. Round-trips
// with ParseCriteria; used to build filter toggle links.
func (c Criteria) Values() url.Values {
	v := url.Values{}
	if c.Query != "" {
		v.Set("q", c.Query)
	}
	if c.Category != "" && c.Category != models.CategoryAll {
		v.Set("category", c.Category)
	}
	if c.Pricing != "" && c.Pricing != "all" {
		v.Set("pricing", c.Pricing)
	}
	for _, t := range c.ShowTags {
		v.Add("show", t)
	}
	for _, t := range c.HideTags {
		v.Add("hide", t)
	}
	if c.FavoritesOnly {
		v.Set("favorites", "1")
	}
	if c.Sort != "" && c.Sort != SortPopular {
		v.Set("sort", string(c.Sort))
	}
	return v
}

// CacheKey returns a canonical string for the criteria, used to key the
// rendered-page cache. Tag sets are sorted so equivalent criteria map to
// the same key regardless of toggle order.
func (c Criteria) CacheKey() string {
	show := append([]string(nil), c.ShowTags...)
	hide := append([]string(nil), c.HideTags...)
	sort.Strings(show)
	sort.Strings(hide)

	var b strings.Builder
	b.WriteString("q=" + strings.ToLower(c.Query))
	b.WriteString("|cat=" + c.Category)
	b.WriteString("|price=" + c.Pricing)
	b.WriteString("|show=" + strings.Join(show, ","))
	b.WriteString("|hide=" + strings.Join(hide, ","))
	if c.FavoritesOnly {
		b.WriteString("|fav")
	}
	b.WriteString("|sort=" + string(c.Sort))
	return b.String()
}

// HasActiveFilters reports whether any narrowing criterion is set.
// The sort key alone does not count as a filter.
func (c Criteria) HasActiveFilters() bool {
	return c.Query != "" ||
		(c.Category != "" && c.Category != models.CategoryAll) ||
		(c.Pricing != "" && c.Pricing != "all") ||
		len(c.ShowTags) > 0 || len(c.HideTags) > 0 ||
		c.FavoritesOnly
}

// WithShowTagToggled returns a copy of the criteria with tag added to the
// show set if absent, or removed if present. Toggling twice restores the
// original set.
func (c Criteria) WithShowTagToggled(tag string) Criteria {
	c.ShowTags = toggleTag(c.ShowTags, tag)
	return c
}

// WithHideTagToggled returns a copy with tag toggled in the hide set.
func (c Criteria) WithHideTagToggled(tag string) Criteria {
	c.HideTags = toggleTag(c.HideTags, tag)
	return c
}

// WithoutFavoritesOnly returns a copy with the favorites-only flag cleared.
// Applied when a session ends, since an anonymous session has no favorites.
func (c Criteria) WithoutFavoritesOnly() Criteria {
	c.FavoritesOnly = false
	return c
}

// toggleTag adds tag if absent, removes it if present. Always returns a
// fresh slice so callers never share backing arrays.
func toggleTag(tags []string, tag string) []string {
	out := make([]string, 0, len(tags)+1)
	removed := false
	for _, t := range tags {
		if t == tag {
			removed = true
			continue
		}
		out = append(out, t)
	}
	if !removed {
		out = append(out, tag)
	}
	return out
}

// cleanTagList trims whitespace and drops empty entries from raw query
// values while preserving order.
func cleanTagList(raw []string) []string {
	var out []string
	for _, t := range raw {
		t = strings.TrimSpace(t)
		if t != "" {
			out = append(out, t)
		}
	}
	return out
}
