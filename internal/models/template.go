// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package models defines the entities of the presentation template system:
// templates, slides, variations, and the recursive element tree the
// renderer walks.
package models

import (
	"time"

	"github.com/google/uuid"
)

// Template is a named presentation deck. Name is unique — rendering and
// stylesheet publication are both keyed by it.
type Template struct {
	ID          uuid.UUID  `json:"id"`
	Name        string     `json:"name"`
	Category    string     `json:"category"`
	Description string     `json:"description"`
	ThumbnailID *uuid.UUID `json:"thumbnail_id,omitempty"`
	Slides      []Slide    `json:"slides,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// TemplateSummary is the listing shape: no slides, thumbnail resolved to
// a storage key for URL building in the handler layer.
type TemplateSummary struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Category    string    `json:"category"`
	Description string    `json:"description"`
	Thumbnail   *string   `json:"thumbnail"`
}
