// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package store provides database access methods for the directory's
// entities. Each store struct wraps a *sql.DB and exposes typed query methods.
package store

import (
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"

	"aiwiki/internal/catalog"
	"aiwiki/internal/models"
)

// ErrNotFound is returned by mutations that target an identifier with no
// matching record.
var ErrNotFound = errors.New("record not found")

// ToolStore handles all tool-related database operations.
type ToolStore struct {
	db *sql.DB
}

// NewToolStore creates a new ToolStore with the given database connection.
func NewToolStore(db *sql.DB) *ToolStore {
	return &ToolStore{db: db}
}

const toolColumns = `id, name, description, category, tags, website, pricing, rating, popularity, release_year, image_url, created_at, updated_at`

// scanTool reads one tool row. Tags are stored comma-separated and split
// here so the rest of the application only ever sees clean slices.
func scanTool(row interface{ Scan(...any) error }) (*models.Tool, error) {
	t := &models.Tool{}
	var tags string
	var imageURL sql.NullString
	err := row.Scan(
		&t.ID, &t.Name, &t.Description, &t.Category, &tags, &t.Website,
		&t.Pricing, &t.Rating, &t.Popularity, &t.ReleaseYear, &imageURL,
		&t.CreatedAt, &t.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	t.Tags = catalog.ParseTags(tags)
	if imageURL.Valid && imageURL.String != "" {
		t.ImageURL = &imageURL.String
	}
	return t, nil
}

// List returns the full catalog in insertion order. Ordering within the
// directory page is applied later by the filter/sort engine.
func (s *ToolStore) List() ([]models.Tool, error) {
	rows, err := s.db.Query(`SELECT ` + toolColumns + ` FROM tools ORDER BY created_at ASC, id ASC`)
	if err != nil {
		return nil, fmt.Errorf("list tools: %w", err)
	}
	defer rows.Close()

	var tools []models.Tool
	for rows.Next() {
		t, err := scanTool(rows)
		if err != nil {
			return nil, fmt.Errorf("scan tool: %w", err)
		}
		tools = append(tools, *t)
	}
	return tools, rows.Err()
}

// FindByID retrieves a tool by its UUID. Returns nil if not found.
func (s *ToolStore) FindByID(id uuid.UUID) (*models.Tool, error) {
	t, err := scanTool(s.db.QueryRow(`SELECT `+toolColumns+` FROM tools WHERE id = $1`, id))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find tool by id: %w", err)
	}
	return t, nil
}

// Create inserts a new tool and returns it with the generated identifier.
// Missing popularity and release year get the directory defaults: new
// entries start mid-pack and carry the current year.
func (s *ToolStore) Create(t *models.Tool) (*models.Tool, error) {
	if t.Popularity == 0 {
		t.Popularity = models.DefaultPopularity
	}
	if t.ReleaseYear == "" {
		t.ReleaseYear = strconv.Itoa(time.Now().Year())
	}

	var imageURL any
	if t.ImageURL != nil && *t.ImageURL != "" {
		imageURL = *t.ImageURL
	}

	created, err := scanTool(s.db.QueryRow(`
		INSERT INTO tools (name, description, category, tags, website, pricing, rating, popularity, release_year, image_url)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING `+toolColumns,
		t.Name, t.Description, t.Category, catalog.JoinTags(t.Tags), t.Website,
		t.Pricing, t.Rating, t.Popularity, t.ReleaseYear, imageURL,
	))
	if err != nil {
		return nil, fmt.Errorf("create tool: %w", err)
	}
	return created, nil
}

// Update replaces every mutable field of the record matching t.ID. The
// identifier itself is immutable. Returns ErrNotFound if no record matches.
func (s *ToolStore) Update(t *models.Tool) error {
	var imageURL any
	if t.ImageURL != nil && *t.ImageURL != "" {
		imageURL = *t.ImageURL
	}

	res, err := s.db.Exec(`
		UPDATE tools SET
			name = $1, description = $2, category = $3, tags = $4, website = $5,
			pricing = $6, rating = $7, popularity = $8, release_year = $9,
			image_url = $10, updated_at = NOW()
		WHERE id = $11
	`, t.Name, t.Description, t.Category, catalog.JoinTags(t.Tags), t.Website,
		t.Pricing, t.Rating, t.Popularity, t.ReleaseYear, imageURL, t.ID,
	)
	if err != nil {
		return fmt.Errorf("update tool: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update tool rows affected: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("update tool %s: %w", t.ID, ErrNotFound)
	}
	return nil
}

// CountAll returns the number of tools in the catalog.
func (s *ToolStore) CountAll() (int, error) {
	var count int
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM tools`).Scan(&count); err != nil {
		return 0, fmt.Errorf("count tools: %w", err)
	}
	return count, nil
}
