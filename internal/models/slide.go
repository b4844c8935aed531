// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"time"

	"github.com/google/uuid"
)

// Slide is one deck page: a background, an optional style object, an
// ordered element tree, and any number of alternate variations. Position
// fixes the slide's place within its template.
type Slide struct {
	ID              uuid.UUID   `json:"id"`
	TemplateID      uuid.UUID   `json:"template_id"`
	Name            string      `json:"name"`
	Variant         string      `json:"variant"`
	BackgroundColor string      `json:"background_color,omitempty"`
	BackgroundImage *MediaRef   `json:"background_image,omitempty"`
	Style           Style       `json:"style,omitempty"`
	Elements        []Element   `json:"elements"`
	Position        int         `json:"position"`
	Variations      []Variation `json:"variations,omitempty"`
	CreatedAt       time.Time   `json:"created_at"`
	UpdatedAt       time.Time   `json:"updated_at"`
}

// Variation is an alternate rendering of a slide under a different variant
// key. It is structurally a slide without nested variations and renders
// under the owning slide's name.
type Variation struct {
	ID              uuid.UUID `json:"id"`
	SlideID         uuid.UUID `json:"slide_id"`
	Name            string    `json:"name"`
	Variant         string    `json:"variant"`
	BackgroundColor string    `json:"background_color,omitempty"`
	BackgroundImage *MediaRef `json:"background_image,omitempty"`
	Style           Style     `json:"style,omitempty"`
	Elements        []Element `json:"elements"`
	Position        int       `json:"position"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// AsSlide shapes the variation like a slide for rendering: the variation's
// own content and variant, but the parent slide's name (the slide type key
// in the emitted HTML and SCSS).
func (v *Variation) AsSlide(parentName string) Slide {
	return Slide{
		ID:              v.ID,
		Name:            parentName,
		Variant:         v.Variant,
		BackgroundColor: v.BackgroundColor,
		BackgroundImage: v.BackgroundImage,
		Style:           v.Style,
		Elements:        v.Elements,
	}
}
