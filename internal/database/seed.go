// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package database

import (
	"database/sql"
	"fmt"
	"log/slog"

	"golang.org/x/crypto/bcrypt"
)

// seedTool is one row of the fixed startup dataset.
type seedTool struct {
	name        string
	description string
	category    string
	tags        string // comma-separated, split by the store on read
	website     string
	pricing     string
	rating      float64
	popularity  int
	releaseYear string
}

// seedTools is the fixed catalog the directory starts with. Only inserted
// when the tools table is empty, so user-added entries survive restarts.
var seedTools = []seedTool{
	{"ChatGPT", "Conversational AI assistant for writing, research, and everyday questions.", "text-generation", "chatbot, writing, nlp", "https://chat.openai.com", "freemium", 4.8, 98, "2022"},
	{"Claude", "AI assistant focused on long-form reasoning, analysis, and safe conversation.", "text-generation", "chatbot, writing, analysis", "https://claude.ai", "freemium", 4.7, 90, "2023"},
	{"Midjourney", "Text-to-image generation with a distinctive painterly aesthetic.", "image-generation", "art, image, creative", "https://midjourney.com", "paid", 4.6, 92, "2022"},
	{"DALL-E 3", "Image generation tightly integrated with conversational prompting.", "image-generation", "art, image", "https://openai.com/dall-e-3", "paid", 4.4, 85, "2023"},
	{"GitHub Copilot", "AI pair programmer that suggests code and whole functions in your editor.", "code-assistant", "code, autocomplete, productivity", "https://github.com/features/copilot", "paid", 4.5, 94, "2021"},
	{"Cursor", "AI-first code editor with repository-aware chat and inline edits.", "code-assistant", "code, editor", "https://cursor.com", "freemium", 4.6, 88, "2023"},
	{"Runway", "Video generation and editing suite for filmmakers and creators.", "video-audio", "video, editing, creative", "https://runwayml.com", "freemium", 4.3, 78, "2021"},
	{"ElevenLabs", "Realistic text-to-speech and voice cloning in dozens of languages.", "video-audio", "audio, voice, speech", "https://elevenlabs.io", "freemium", 4.5, 82, "2022"},
	{"Perplexity", "Conversational search engine that cites its sources.", "research", "search, citations, nlp", "https://perplexity.ai", "freemium", 4.4, 86, "2022"},
	{"NotebookLM", "Research assistant grounded in the documents you upload.", "research", "notes, documents, analysis", "https://notebooklm.google.com", "free", 4.2, 70, "2023"},
	{"Notion AI", "Writing and summarization assistant built into the Notion workspace.", "productivity", "writing, notes, productivity", "https://notion.so/product/ai", "paid", 4.1, 75, "2023"},
	{"Zapier AI", "Natural-language automation across thousands of connected apps.", "productivity", "automation, workflow", "https://zapier.com/ai", "freemium", 4.0, 68, "2023"},
	{"Canva Magic Studio", "AI design tools for social posts, presentations, and brand assets.", "design", "design, templates, creative", "https://canva.com/magic", "freemium", 4.3, 80, "2023"},
	{"Figma AI", "Design assistance and prototyping helpers inside Figma.", "design", "design, prototyping", "https://figma.com/ai", "freemium", 4.1, 72, "2024"},
	{"Suno", "Generate complete songs with vocals from a text prompt.", "music", "music, audio, creative", "https://suno.com", "freemium", 4.4, 76, "2023"},
	{"Bolt", "Prompt-to-app builder that scaffolds and deploys full-stack web apps.", "app-builder", "code, no-code, web", "https://bolt.new", "freemium", 4.2, 74, "2024"},
	{"NovelAI", "AI-assisted storytelling and anime-style image generation.", "manga-anime", "anime, art, writing", "https://novelai.net", "paid", 4.0, 60, "2021"},
	{"Character.AI", "Chat with community-created characters for fun and roleplay.", "entertainment", "chatbot, roleplay", "https://character.ai", "freemium", 4.1, 84, "2022"},
	{"Luma Dream Machine", "Generate 3D-consistent video scenes from text and images.", "3d-animation", "3d, video, creative", "https://lumalabs.ai", "freemium", 4.2, 66, "2024"},
	{"Meshy", "Text-to-3D asset generation for games and prototyping.", "3d-animation", "3d, assets, games", "https://meshy.ai", "freemium", 3.9, 58, "2023"},
}

// Seed populates the database with the fixed startup catalog and, for
// AUTH_MODE=local deployments, a default account. Both inserts are no-ops
// when their tables already contain data.
func Seed(db *sql.DB) error {
	if err := seedToolCatalog(db); err != nil {
		return err
	}
	return seedDefaultUser(db)
}

func seedToolCatalog(db *sql.DB) error {
	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM tools").Scan(&count); err != nil {
		return fmt.Errorf("seed check tools: %w", err)
	}

	if count > 0 {
		slog.Info("tool catalog already seeded, skipping")
		return nil
	}

	for _, t := range seedTools {
		_, err := db.Exec(`
			INSERT INTO tools (name, description, category, tags, website, pricing, rating, popularity, release_year)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		`, t.name, t.description, t.category, t.tags, t.website, t.pricing, t.rating, t.popularity, t.releaseYear)
		if err != nil {
			return fmt.Errorf("seed insert tool %q: %w", t.name, err)
		}
	}

	slog.Info("tool catalog seeded", "tools", len(seedTools))
	return nil
}

func seedDefaultUser(db *sql.DB) error {
	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM users").Scan(&count); err != nil {
		return fmt.Errorf("seed check users: %w", err)
	}

	if count > 0 {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("admin"), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("seed bcrypt: %w", err)
	}

	_, err = db.Exec(`
		INSERT INTO users (email, password_hash, display_name)
		VALUES ($1, $2, $3)
	`, "admin@aiwiki.local", string(hash), "Admin")
	if err != nil {
		return fmt.Errorf("seed insert user: %w", err)
	}

	slog.Info("default user seeded",
		"email", "admin@aiwiki.local",
		"password", "admin",
	)
	return nil
}
