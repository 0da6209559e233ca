package catalog

import "strings"

// ParseTags derives a tool's tag list from a comma-separated free-text
// field: split on commas, trim whitespace, discard empties, and drop
// duplicates while preserving the first occurrence's position.
func ParseTags(raw string) []string {
	parts := strings.Split(raw, ",")
	seen := make(map[string]bool, len(parts))
	var tags []string
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" || seen[p] {
			continue
		}
		seen[p] = true
		tags = append(tags, p)
	}
	return tags
}

// JoinTags is the inverse of ParseTags for form display: tags are
// re-joined comma-separated with a space, matching the edit form's
// free-text tag field.
func JoinTags(tags []string) string {
	return strings.Join(tags, ", ")
}
