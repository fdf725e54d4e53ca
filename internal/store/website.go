// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package store provides the persistence layer for generated site
// records. Agent outputs are stored as JSONB so the record round-trips
// through the database without losing its wire shape.
package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"siteforge/internal/models"
)

// WebsiteStore handles all website-record database operations.
type WebsiteStore struct {
	db *sql.DB
}

// NewWebsiteStore creates a new WebsiteStore with the given database connection.
func NewWebsiteStore(db *sql.DB) *WebsiteStore {
	return &WebsiteStore{db: db}
}

// Create inserts a new website record and returns the generated
// identifier. This is the only write this service performs: records are
// created once and never mutated.
func (s *WebsiteStore) Create(ctx context.Context, w *models.Website) (uuid.UUID, error) {
	architecture, err := json.Marshal(w.Architecture)
	if err != nil {
		return uuid.Nil, fmt.Errorf("marshal architecture: %w", err)
	}
	content, err := json.Marshal(w.Content)
	if err != nil {
		return uuid.Nil, fmt.Errorf("marshal content: %w", err)
	}
	visuals, err := json.Marshal(w.Visuals)
	if err != nil {
		return uuid.Nil, fmt.Errorf("marshal visuals: %w", err)
	}
	integrations, err := json.Marshal(w.Integrations)
	if err != nil {
		return uuid.Nil, fmt.Errorf("marshal integrations: %w", err)
	}

	var id uuid.UUID
	err = s.db.QueryRowContext(ctx, `
		INSERT INTO websites (business_name, description, industry, theme,
		                      architecture, content, visuals, integrations,
		                      status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id
	`, w.BusinessName, w.Description, w.Industry, w.Theme,
		architecture, content, visuals, integrations,
		w.Status, w.CreatedAt,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("create website: %w", err)
	}
	return id, nil
}

// FindByID retrieves a website record by its UUID. Returns nil if not found.
func (s *WebsiteStore) FindByID(ctx context.Context, id uuid.UUID) (*models.Website, error) {
	w := &models.Website{}
	var architecture, content, visuals, integrations []byte

	err := s.db.QueryRowContext(ctx, `
		SELECT business_name, description, industry, theme,
		       architecture, content, visuals, integrations,
		       status, created_at
		FROM websites WHERE id = $1
	`, id).Scan(
		&w.BusinessName, &w.Description, &w.Industry, &w.Theme,
		&architecture, &content, &visuals, &integrations,
		&w.Status, &w.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find website by id: %w", err)
	}

	if err := json.Unmarshal(architecture, &w.Architecture); err != nil {
		return nil, fmt.Errorf("unmarshal architecture: %w", err)
	}
	if err := json.Unmarshal(content, &w.Content); err != nil {
		return nil, fmt.Errorf("unmarshal content: %w", err)
	}
	if err := json.Unmarshal(visuals, &w.Visuals); err != nil {
		return nil, fmt.Errorf("unmarshal visuals: %w", err)
	}
	if err := json.Unmarshal(integrations, &w.Integrations); err != nil {
		return nil, fmt.Errorf("unmarshal integrations: %w", err)
	}

	return w, nil
}

// Count returns the number of stored website records.
func (s *WebsiteStore) Count(ctx context.Context) (int, error) {
	var count int
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM websites`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count websites: %w", err)
	}
	return count, nil
}
