// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/Abrar408/powerpresent-templates/internal/cache"
	"github.com/Abrar408/powerpresent-templates/internal/models"
	"github.com/Abrar408/powerpresent-templates/internal/store"
)

// Slides groups the slide HTTP handlers. Every mutation refreshes the
// owning template's published stylesheet and drops its cached render.
type Slides struct {
	slides    *store.SlideStore
	templates *store.TemplateStore
	renderer  TemplateRenderer
	publisher StylesheetPublisher
	cache     *cache.RenderCache
}

// NewSlides creates a new Slides handler group.
func NewSlides(slides *store.SlideStore, templates *store.TemplateStore, renderer TemplateRenderer, publisher StylesheetPublisher, renderCache *cache.RenderCache) *Slides {
	return &Slides{
		slides:    slides,
		templates: templates,
		renderer:  renderer,
		publisher: publisher,
		cache:     renderCache,
	}
}

type slideRequest struct {
	TemplateID      uuid.UUID        `json:"template_id"`
	Name            string           `json:"name"`
	Variant         string           `json:"variant"`
	BackgroundColor string           `json:"background_color"`
	BackgroundImage *models.MediaRef `json:"background_image"`
	Style           models.Style     `json:"style"`
	Elements        []models.Element `json:"elements"`
	Position        int              `json:"position"`
}

// Create inserts a new slide under a template.
func (h *Slides) Create(w http.ResponseWriter, r *http.Request) {
	var req slideRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.TemplateID == uuid.Nil {
		writeError(w, http.StatusBadRequest, "template_id is required")
		return
	}
	if msg := validateSlide(req.Name, req.Variant, req.Elements); msg != "" {
		writeError(w, http.StatusBadRequest, msg)
		return
	}

	tmpl, err := h.templates.FindByID(req.TemplateID)
	if err != nil {
		slog.Error("template lookup failed", "id", req.TemplateID, "error", err)
		writeError(w, http.StatusInternalServerError, "failed to load template")
		return
	}
	if tmpl == nil {
		writeError(w, http.StatusNotFound, "template not found")
		return
	}

	slide, err := h.slides.Create(&models.Slide{
		TemplateID:      req.TemplateID,
		Name:            strings.TrimSpace(req.Name),
		Variant:         req.Variant,
		BackgroundColor: req.BackgroundColor,
		BackgroundImage: req.BackgroundImage,
		Style:           req.Style,
		Elements:        req.Elements,
		Position:        req.Position,
	})
	if err != nil {
		slog.Error("slide create failed", "template", tmpl.Name, "error", err)
		writeError(w, http.StatusInternalServerError, "failed to create slide")
		return
	}

	h.refreshTemplate(r.Context(), tmpl.Name)
	slog.Info("slide created", "id", slide.ID, "template", tmpl.Name)
	writeData(w, http.StatusCreated, slide)
}

// Update replaces a slide's content.
func (h *Slides) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}
	var req slideRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if msg := validateSlide(req.Name, req.Variant, req.Elements); msg != "" {
		writeError(w, http.StatusBadRequest, msg)
		return
	}

	existing, err := h.slides.FindByID(id)
	if err != nil {
		slog.Error("slide lookup failed", "id", id, "error", err)
		writeError(w, http.StatusInternalServerError, "failed to load slide")
		return
	}
	if existing == nil {
		writeError(w, http.StatusNotFound, "slide not found")
		return
	}

	existing.Name = strings.TrimSpace(req.Name)
	existing.Variant = req.Variant
	existing.BackgroundColor = req.BackgroundColor
	existing.BackgroundImage = req.BackgroundImage
	existing.Style = req.Style
	existing.Elements = req.Elements
	existing.Position = req.Position

	if err := h.slides.Update(existing); err != nil {
		slog.Error("slide update failed", "id", id, "error", err)
		writeError(w, http.StatusInternalServerError, "failed to update slide")
		return
	}

	h.refreshByTemplateID(r.Context(), existing.TemplateID)
	slog.Info("slide updated", "id", id)
	writeData(w, http.StatusOK, existing)
}

// Delete removes a slide and its variations.
func (h *Slides) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}
	existing, err := h.slides.FindByID(id)
	if err != nil {
		slog.Error("slide lookup failed", "id", id, "error", err)
		writeError(w, http.StatusInternalServerError, "failed to load slide")
		return
	}
	if existing == nil {
		writeError(w, http.StatusNotFound, "slide not found")
		return
	}

	if err := h.slides.Delete(id); err != nil {
		slog.Error("slide delete failed", "id", id, "error", err)
		writeError(w, http.StatusInternalServerError, "failed to delete slide")
		return
	}

	h.refreshByTemplateID(r.Context(), existing.TemplateID)
	slog.Info("slide deleted", "id", id)
	w.WriteHeader(http.StatusNoContent)
}

// refreshByTemplateID resolves a template's name and refreshes its
// published artifacts. Failures are logged, not surfaced: the slide
// mutation itself already succeeded.
func (h *Slides) refreshByTemplateID(ctx context.Context, templateID uuid.UUID) {
	tmpl, err := h.templates.FindByID(templateID)
	if err != nil || tmpl == nil {
		slog.Warn("template lookup for refresh failed", "id", templateID, "error", err)
		return
	}
	h.refreshTemplate(ctx, tmpl.Name)
}

// refreshTemplate drops the cached render and re-publishes the
// stylesheet for a template.
func (h *Slides) refreshTemplate(ctx context.Context, name string) {
	h.cache.Invalidate(ctx, name)

	rendered, err := h.renderer.RenderTemplate(name)
	if err != nil || rendered == nil {
		slog.Warn("template re-render failed", "template", name, "error", err)
		return
	}
	if _, err := h.publisher.Publish(rendered.Name, rendered.SCSS); err != nil {
		slog.Warn("stylesheet re-publish failed", "template", name, "error", err)
	}
}
