// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package catalog

import (
	"sort"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"aiwiki/internal/models"
)

// nameCollator performs locale-aware, case-insensitive comparison for the
// name sort. Collators are not safe for concurrent use, so each Filter
// call creates its own.
func nameCollator() *collate.Collator {
	return collate.New(language.English, collate.IgnoreCase)
}

// Favorites is the set of tool ids the current user has favorited.
// A nil set behaves as empty (anonymous session).
type Favorites map[uuid.UUID]bool

// Filter returns the tools matching all criteria, ordered by the criteria's
// sort key. The input slice is never modified; an empty result is a valid
// outcome, not an error.
func Filter(tools []models.Tool, c Criteria, favs Favorites) []models.Tool {
	matched := make([]models.Tool, 0, len(tools))
	for _, t := range tools {
		if Matches(&t, c, favs) {
			matched = append(matched, t)
		}
	}
	sortTools(matched, c.Sort)
	return matched
}

// Matches evaluates the conjunction of all six predicates against a single
// tool: text, category, pricing, show tags, hide tags, favorites.
func Matches(t *models.Tool, c Criteria, favs Favorites) bool {
	if !matchesQuery(t, c.Query) {
		return false
	}
	if c.Category != "" && c.Category != models.CategoryAll && t.Category != c.Category {
		return false
	}
	if c.Pricing != "" && c.Pricing != "all" && string(t.Pricing) != c.Pricing {
		return false
	}
	if len(c.ShowTags) > 0 && !hasAnyTag(t, c.ShowTags) {
		return false
	}
	if len(c.HideTags) > 0 && hasAnyTag(t, c.HideTags) {
		return false
	}
	if c.FavoritesOnly && !favs[t.ID] {
		return false
	}
	return true
}

// matchesQuery does a case-insensitive substring match against the tool's
// name or description. An empty query matches everything.
func matchesQuery(t *models.Tool, query string) bool {
	if query == "" {
		return true
	}
	q := strings.ToLower(query)
	return strings.Contains(strings.ToLower(t.Name), q) ||
		strings.Contains(strings.ToLower(t.Description), q)
}

// hasAnyTag reports whether the tool carries at least one of the tags.
func hasAnyTag(t *models.Tool, tags []string) bool {
	for _, tag := range tags {
		if t.HasTag(tag) {
			return true
		}
	}
	return false
}

// sortTools orders the slice in place by the given key. The sort is stable
// so equal elements keep their catalog order, making output deterministic
// for any key.
func sortTools(tools []models.Tool, key SortKey) {
	switch key {
	case SortName:
		col := nameCollator()
		sort.SliceStable(tools, func(i, j int) bool {
			return col.CompareString(tools[i].Name, tools[j].Name) < 0
		})
	case SortRating:
		sort.SliceStable(tools, func(i, j int) bool {
			return tools[i].Rating > tools[j].Rating
		})
	case SortNewest:
		sort.SliceStable(tools, func(i, j int) bool {
			return releaseYear(&tools[i]) > releaseYear(&tools[j])
		})
	default: // SortPopular
		sort.SliceStable(tools, func(i, j int) bool {
			return tools[i].Popularity > tools[j].Popularity
		})
	}
}

// releaseYear interprets the tool's release year string as a numeric year.
// Unparseable values sort after every real year.
func releaseYear(t *models.Tool) int {
	y, err := strconv.Atoi(strings.TrimSpace(t.ReleaseYear))
	if err != nil {
		return 0
	}
	return y
}

// AllTags returns the sorted union of every tool's tags. Used by the
// advanced filter panel to offer the full tag vocabulary.
func AllTags(tools []models.Tool) []string {
	seen := make(map[string]bool)
	var tags []string
	for _, t := range tools {
		for _, tag := range t.Tags {
			if !seen[tag] {
				seen[tag] = true
				tags = append(tags, tag)
			}
		}
	}
	sort.Strings(tags)
	return tags
}

// CountByCategory returns the number of tools per category id, with the
// "all" sentinel mapped to the full catalog size. Drives the sidebar counts.
func CountByCategory(tools []models.Tool) map[string]int {
	counts := map[string]int{models.CategoryAll: len(tools)}
	for _, t := range tools {
		counts[t.Category]++
	}
	return counts
}
