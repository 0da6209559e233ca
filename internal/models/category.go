// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

// CategoryAll is the sentinel category id meaning "no category filter".
const CategoryAll = "all"

// Category represents one entry of the fixed category set. Categories are
// not user-extensible; they exist for filtering and icon/color lookup.
type Category struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Icon  string `json:"icon"`  // icon reference used by the templates
	Color string `json:"color"` // gradient color token
}

// categories is the fixed, statically enumerated category set. The first
// entry is the "all" pseudo-category used by the sidebar.
var categories = []Category{
	{ID: CategoryAll, Name: "All Tools", Icon: "brain", Color: "from-cyan-500 to-blue-500"},
	{ID: "text-generation", Name: "Text Generation", Icon: "file-text", Color: "from-cyan-500 to-blue-500"},
	{ID: "image-generation", Name: "Image Generation", Icon: "image", Color: "from-green-500 to-emerald-500"},
	{ID: "code-assistant", Name: "Code Assistant", Icon: "code", Color: "from-orange-500 to-red-500"},
	{ID: "video-audio", Name: "Video & Audio", Icon: "video", Color: "from-purple-500 to-indigo-500"},
	{ID: "research", Name: "Research", Icon: "brain", Color: "from-yellow-500 to-orange-500"},
	{ID: "productivity", Name: "Productivity", Icon: "zap", Color: "from-pink-500 to-rose-500"},
	{ID: "design", Name: "Design", Icon: "palette", Color: "from-teal-500 to-cyan-500"},
	{ID: "music", Name: "Music Generation", Icon: "music", Color: "from-indigo-500 to-purple-500"},
	{ID: "app-builder", Name: "App Builder", Icon: "blocks", Color: "from-emerald-500 to-teal-500"},
	{ID: "manga-anime", Name: "Manga & Anime", Icon: "sparkles", Color: "from-pink-500 to-purple-500"},
	{ID: "entertainment", Name: "Entertainment", Icon: "heart", Color: "from-red-500 to-pink-500"},
	{ID: "3d-animation", Name: "3D & Animation", Icon: "box", Color: "from-blue-500 to-indigo-500"},
}

// Fallback for records whose category value is not in the fixed set.
var defaultCategory = Category{
	ID:    "",
	Name:  "Uncategorized",
	Icon:  "brain",
	Color: "from-gray-500 to-gray-600",
}

// Categories returns the fixed category set including the "all" entry.
func Categories() []Category {
	return categories
}

// AssignableCategories returns the categories a tool may belong to,
// excluding the "all" sentinel. Used for the add/edit form dropdowns.
func AssignableCategories() []Category {
	return categories[1:]
}

// CategoryByID looks up a category by id. Unknown ids return the default
// icon/color fallback so rendering never fails on stale data.
func CategoryByID(id string) Category {
	for _, c := range categories {
		if c.ID == id {
			return c
		}
	}
	return defaultCategory
}

// ValidCategory reports whether id names an assignable category
// (the "all" sentinel is not assignable to a tool).
func ValidCategory(id string) bool {
	for _, c := range categories[1:] {
		if c.ID == id {
			return true
		}
	}
	return false
}
