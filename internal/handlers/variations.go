// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/Abrar408/powerpresent-templates/internal/cache"
	"github.com/Abrar408/powerpresent-templates/internal/models"
	"github.com/Abrar408/powerpresent-templates/internal/store"
)

// SlideLister enumerates every slide together with its template name.
type SlideLister interface {
	ListAllWithTemplate() ([]store.SlideWithTemplate, error)
}

// VariationCreator inserts variations.
type VariationCreator interface {
	Create(v *models.Variation) (*models.Variation, error)
}

// Variations groups the variation HTTP handlers.
type Variations struct {
	slides     SlideLister
	variations VariationCreator
	cache      *cache.RenderCache
}

// NewVariations creates a new Variations handler group.
func NewVariations(slides SlideLister, variations VariationCreator, renderCache *cache.RenderCache) *Variations {
	return &Variations{
		slides:     slides,
		variations: variations,
		cache:      renderCache,
	}
}

// createdVariation describes one successful copy in the bulk response.
type createdVariation struct {
	VariationID     uuid.UUID `json:"variation_id"`
	SourceSlideID   uuid.UUID `json:"source_slide_id"`
	SourceSlideName string    `json:"source_slide_name"`
	Variant         string    `json:"variant"`
}

// copyFailure describes one failed copy in the bulk response.
type copyFailure struct {
	SlideID   uuid.UUID `json:"slide_id"`
	SlideName string    `json:"slide_name"`
	Error     string    `json:"error"`
}

// CopyAllSlides duplicates every slide in the system into a variation of
// itself. Each copy is attempted independently: a failure is recorded
// and the loop continues, so one bad slide cannot abort the batch.
func (h *Variations) CopyAllSlides(w http.ResponseWriter, r *http.Request) {
	slides, err := h.slides.ListAllWithTemplate()
	if err != nil {
		slog.Error("slide listing failed", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to list slides")
		return
	}

	created := make([]createdVariation, 0, len(slides))
	failures := make([]copyFailure, 0)

	for _, slide := range slides {
		variant := slide.Variant
		if variant == "" {
			variant = fmt.Sprintf("slide_%s_variant", slide.ID)
		}

		v, err := h.variations.Create(&models.Variation{
			SlideID:         slide.ID,
			Name:            fmt.Sprintf("%s_%s", slide.TemplateName, slide.Name),
			Variant:         variant,
			BackgroundColor: slide.BackgroundColor,
			BackgroundImage: slide.BackgroundImage,
			Style:           slide.Style,
			Elements:        slide.Elements,
			Position:        slide.Position,
		})
		if err != nil {
			slog.Warn("slide copy failed", "slide", slide.ID, "error", err)
			failures = append(failures, copyFailure{
				SlideID:   slide.ID,
				SlideName: slide.Name,
				Error:     err.Error(),
			})
			continue
		}

		created = append(created, createdVariation{
			VariationID:     v.ID,
			SourceSlideID:   slide.ID,
			SourceSlideName: slide.Name,
			Variant:         v.Variant,
		})
	}

	// Any template may have gained variations, so every cached render is
	// suspect.
	if len(created) > 0 {
		h.cache.InvalidateAll(r.Context())
	}

	slog.Info("bulk slide copy finished",
		"total", len(slides), "copied", len(created), "failed", len(failures))

	writeJSON(w, http.StatusOK, map[string]any{
		"message": "Slide copy operation completed",
		"summary": map[string]int{
			"total_slides":      len(slides),
			"successful_copies": len(created),
			"errors":            len(failures),
		},
		"created_variations": created,
		"errors":             failures,
	})
}
