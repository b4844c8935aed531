// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/Abrar408/powerpresent-templates/internal/cache"
	"github.com/Abrar408/powerpresent-templates/internal/engine"
	"github.com/Abrar408/powerpresent-templates/internal/markdown"
	"github.com/Abrar408/powerpresent-templates/internal/models"
	"github.com/Abrar408/powerpresent-templates/internal/storage"
	"github.com/Abrar408/powerpresent-templates/internal/store"
)

// TemplateRenderer produces the combined HTML and SCSS for a template.
// A nil result with a nil error means the template does not exist.
type TemplateRenderer interface {
	RenderTemplate(name string) (*engine.RenderedTemplate, error)
}

// StylesheetPublisher writes a template's combined SCSS to its
// published stylesheet file and returns the file path.
type StylesheetPublisher interface {
	Publish(templateName, combinedSCSS string) (string, error)
}

// Templates groups the template HTTP handlers.
type Templates struct {
	templates *store.TemplateStore
	renderer  TemplateRenderer
	publisher StylesheetPublisher
	cache     *cache.RenderCache
	storage   *storage.Client
}

// NewTemplates creates a new Templates handler group. The cache and
// storage client may be nil.
func NewTemplates(templates *store.TemplateStore, renderer TemplateRenderer, publisher StylesheetPublisher, renderCache *cache.RenderCache, storageClient *storage.Client) *Templates {
	return &Templates{
		templates: templates,
		renderer:  renderer,
		publisher: publisher,
		cache:     renderCache,
		storage:   storageClient,
	}
}

// List returns all template summaries. Descriptions are rendered from
// Markdown to HTML and thumbnails are resolved to public URLs.
func (h *Templates) List(w http.ResponseWriter, r *http.Request) {
	summaries, err := h.templates.List()
	if err != nil {
		slog.Error("template list failed", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to list templates")
		return
	}

	for i := range summaries {
		if summaries[i].Description != "" {
			html, err := markdown.ToHTML(summaries[i].Description)
			if err != nil {
				slog.Warn("description markdown render failed", "template", summaries[i].Name, "error", err)
			} else {
				summaries[i].Description = html
			}
		}
		if summaries[i].Thumbnail != nil && h.storage != nil {
			url := h.storage.FileURL(*summaries[i].Thumbnail)
			summaries[i].Thumbnail = &url
		}
	}

	writeData(w, http.StatusOK, summaries)
}

// GetByName renders a template by name: combined slide HTML, combined
// SCSS, and the published stylesheet refreshed on disk. Responses are
// cached by template name.
func (h *Templates) GetByName(w http.ResponseWriter, r *http.Request) {
	name := strings.TrimSpace(chi.URLParam(r, "name"))
	if name == "" {
		writeError(w, http.StatusBadRequest, "template name is required")
		return
	}

	if payload, ok := h.cache.Get(r.Context(), name); ok {
		writeData(w, http.StatusOK, json.RawMessage(payload))
		return
	}

	rendered, err := h.renderer.RenderTemplate(name)
	if err != nil {
		slog.Error("template render failed", "template", name, "error", err)
		writeError(w, http.StatusInternalServerError, "failed to render template")
		return
	}
	if rendered == nil {
		writeError(w, http.StatusNotFound, "template not found")
		return
	}

	path, err := h.publisher.Publish(rendered.Name, rendered.SCSS)
	if err != nil {
		slog.Error("stylesheet publish failed", "template", rendered.Name, "error", err)
		writeError(w, http.StatusInternalServerError, "failed to publish stylesheet")
		return
	}
	slog.Debug("stylesheet published", "template", rendered.Name, "path", path)

	if payload, err := json.Marshal(rendered); err == nil {
		h.cache.Set(r.Context(), name, payload)
	}

	writeData(w, http.StatusOK, rendered)
}

// Get returns a single template row without slides.
func (h *Templates) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}
	tmpl, err := h.templates.FindByID(id)
	if err != nil {
		slog.Error("template lookup failed", "id", id, "error", err)
		writeError(w, http.StatusInternalServerError, "failed to load template")
		return
	}
	if tmpl == nil {
		writeError(w, http.StatusNotFound, "template not found")
		return
	}
	writeData(w, http.StatusOK, tmpl)
}

// Structure returns a template with its full slide, variation, and
// element tree, ordered by slide position.
func (h *Templates) Structure(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}
	tmpl, err := h.templates.FindByIDWithAllData(id)
	if err != nil {
		slog.Error("template structure load failed", "id", id, "error", err)
		writeError(w, http.StatusInternalServerError, "failed to load template structure")
		return
	}
	if tmpl == nil {
		writeError(w, http.StatusNotFound, "template not found")
		return
	}
	writeData(w, http.StatusOK, tmpl)
}

type templateRequest struct {
	Name        string     `json:"name"`
	Category    string     `json:"category"`
	Description string     `json:"description"`
	ThumbnailID *uuid.UUID `json:"thumbnail_id"`
}

// Create inserts a new template.
func (h *Templates) Create(w http.ResponseWriter, r *http.Request) {
	var req templateRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if msg := validateTemplate(req.Name, req.Category, req.Description); msg != "" {
		writeError(w, http.StatusBadRequest, msg)
		return
	}

	tmpl, err := h.templates.Create(&models.Template{
		Name:        strings.TrimSpace(req.Name),
		Category:    req.Category,
		Description: req.Description,
		ThumbnailID: req.ThumbnailID,
	})
	if err != nil {
		if isUniqueViolation(err) {
			writeError(w, http.StatusConflict, "a template with this name already exists")
			return
		}
		slog.Error("template create failed", "name", req.Name, "error", err)
		writeError(w, http.StatusInternalServerError, "failed to create template")
		return
	}

	slog.Info("template created", "id", tmpl.ID, "name", tmpl.Name)
	writeData(w, http.StatusCreated, tmpl)
}

// Update modifies a template's metadata. Renames invalidate the cached
// render under both the old and the new name.
func (h *Templates) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}
	var req templateRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if msg := validateTemplate(req.Name, req.Category, req.Description); msg != "" {
		writeError(w, http.StatusBadRequest, msg)
		return
	}

	existing, err := h.templates.FindByID(id)
	if err != nil {
		slog.Error("template lookup failed", "id", id, "error", err)
		writeError(w, http.StatusInternalServerError, "failed to load template")
		return
	}
	if existing == nil {
		writeError(w, http.StatusNotFound, "template not found")
		return
	}

	oldName := existing.Name
	existing.Name = strings.TrimSpace(req.Name)
	existing.Category = req.Category
	existing.Description = req.Description
	existing.ThumbnailID = req.ThumbnailID

	if err := h.templates.Update(existing); err != nil {
		if isUniqueViolation(err) {
			writeError(w, http.StatusConflict, "a template with this name already exists")
			return
		}
		slog.Error("template update failed", "id", id, "error", err)
		writeError(w, http.StatusInternalServerError, "failed to update template")
		return
	}

	h.cache.Invalidate(r.Context(), oldName)
	if existing.Name != oldName {
		h.cache.Invalidate(r.Context(), existing.Name)
	}

	slog.Info("template updated", "id", id, "name", existing.Name)
	writeData(w, http.StatusOK, existing)
}

// Delete removes a template and, through cascade, its slides and
// variations.
func (h *Templates) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}
	existing, err := h.templates.FindByID(id)
	if err != nil {
		slog.Error("template lookup failed", "id", id, "error", err)
		writeError(w, http.StatusInternalServerError, "failed to load template")
		return
	}
	if existing == nil {
		writeError(w, http.StatusNotFound, "template not found")
		return
	}

	if err := h.templates.Delete(id); err != nil {
		slog.Error("template delete failed", "id", id, "error", err)
		writeError(w, http.StatusInternalServerError, "failed to delete template")
		return
	}

	h.cache.Invalidate(r.Context(), existing.Name)

	slog.Info("template deleted", "id", id, "name", existing.Name)
	w.WriteHeader(http.StatusNoContent)
}

// parseID reads the {id} route parameter as a UUID, writing a 400 on
// failure.
func parseID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid id")
		return uuid.Nil, false
	}
	return id, true
}

// isUniqueViolation reports whether err is a Postgres unique constraint
// violation (SQLSTATE 23505).
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
