// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package models defines the data structures that map to database tables
// and provides the core types used throughout the application.
package models

import (
	"time"

	"github.com/google/uuid"
)

// Pricing represents the pricing model of a listed tool.
type Pricing string

const (
	PricingFree     Pricing = "free"
	PricingFreemium Pricing = "freemium"
	PricingPaid     Pricing = "paid"
)

// ValidPricing reports whether p is one of the known pricing models.
func ValidPricing(p Pricing) bool {
	switch p {
	case PricingFree, PricingFreemium, PricingPaid:
		return true
	}
	return false
}

// Default values assigned to tools created through the directory form.
const (
	DefaultPopularity = 50
	DefaultRating     = 4.0
)

// Tool represents one directory entry for an external AI product or service.
type Tool struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	Tags        []string  `json:"tags"`
	Website     string    `json:"website"`
	Pricing     Pricing   `json:"pricing"`
	Rating      float64   `json:"rating"`
	Popularity  int       `json:"popularity"`
	ReleaseYear string    `json:"release_year"`
	ImageURL    *string   `json:"image_url,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// HasTag reports whether the tool carries the given tag.
func (t *Tool) HasTag(tag string) bool {
	for _, tg := range t.Tags {
		if tg == tag {
			return true
		}
	}
	return false
}

// IsFree returns true for tools with the free pricing model.
func (t *Tool) IsFree() bool {
	return t.Pricing == PricingFree
}
