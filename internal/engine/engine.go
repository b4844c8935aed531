// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package engine assembles a template's combined HTML and SCSS. It loads
// the full entity graph from the store, then drives the slide renderers
// in stored order: each slide first, then its variations, all sharing one
// sequential slide counter.
package engine

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/Abrar408/powerpresent-templates/internal/models"
	"github.com/Abrar408/powerpresent-templates/internal/renderer"
)

// TemplateSource loads a template with its complete slide, variation, and
// element graph. Returns (nil, nil) when the name does not resolve.
type TemplateSource interface {
	FindByNameWithAllData(name string) (*models.Template, error)
}

// RenderedTemplate is the output of a full template render. The SCSS
// field is the bare combined fragment — the publisher adds the outer
// scaffold when writing the stylesheet file.
type RenderedTemplate struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
	HTML string    `json:"html"`
	SCSS string    `json:"scss"`
}

// Engine renders templates.
type Engine struct {
	templates TemplateSource
	renderer  *renderer.Renderer
}

// New creates an Engine over the given template source and renderer.
func New(templates TemplateSource, r *renderer.Renderer) *Engine {
	return &Engine{templates: templates, renderer: r}
}

// RenderTemplate renders every slide of the named template, variations
// included, into one combined HTML string and one combined SCSS string.
// The slide counter threads through the whole iteration, so a variation
// consumes the next sequential slide number after its parent slide.
// Returns (nil, nil) when no template has this name. Rendering is pure:
// the same stored data always yields byte-identical output.
func (e *Engine) RenderTemplate(name string) (*RenderedTemplate, error) {
	tpl, err := e.templates.FindByNameWithAllData(name)
	if err != nil {
		return nil, fmt.Errorf("load template %q: %w", name, err)
	}
	if tpl == nil {
		return nil, nil
	}

	var html, scss string
	slideNumber := 1

	for i := range tpl.Slides {
		slide := &tpl.Slides[i]

		html += e.renderer.SlideHTML(slide, slideNumber, tpl.Name)
		scss += e.renderer.SlideSCSS(slide)
		slideNumber++

		for j := range slide.Variations {
			asSlide := slide.Variations[j].AsSlide(slide.Name)
			html += e.renderer.SlideHTML(&asSlide, slideNumber, tpl.Name)
			scss += e.renderer.SlideSCSS(&asSlide)
			slideNumber++
		}
	}

	return &RenderedTemplate{
		ID:   tpl.ID,
		Name: tpl.Name,
		HTML: html,
		SCSS: scss,
	}, nil
}
