// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"

	"github.com/Abrar408/powerpresent-templates/internal/models"
	"github.com/Abrar408/powerpresent-templates/internal/store"
)

type stubSlideLister struct {
	slides []store.SlideWithTemplate
	err    error
}

func (s *stubSlideLister) ListAllWithTemplate() ([]store.SlideWithTemplate, error) {
	return s.slides, s.err
}

// stubVariationCreator fails for any slide ID in failFor.
type stubVariationCreator struct {
	created []*models.Variation
	failFor map[uuid.UUID]bool
}

func (s *stubVariationCreator) Create(v *models.Variation) (*models.Variation, error) {
	if s.failFor[v.SlideID] {
		return nil, errDatabaseDown
	}
	v.ID = uuid.New()
	s.created = append(s.created, v)
	return v, nil
}

type copyResponse struct {
	Message string `json:"message"`
	Summary struct {
		TotalSlides      int `json:"total_slides"`
		SuccessfulCopies int `json:"successful_copies"`
		Errors           int `json:"errors"`
	} `json:"summary"`
	CreatedVariations []struct {
		VariationID     uuid.UUID `json:"variation_id"`
		SourceSlideID   uuid.UUID `json:"source_slide_id"`
		SourceSlideName string    `json:"source_slide_name"`
		Variant         string    `json:"variant"`
	} `json:"created_variations"`
	Errors []struct {
		SlideID   uuid.UUID `json:"slide_id"`
		SlideName string    `json:"slide_name"`
		Error     string    `json:"error"`
	} `json:"errors"`
}

func testSlide(template, name, variant string) store.SlideWithTemplate {
	return store.SlideWithTemplate{
		Slide: models.Slide{
			ID:      uuid.New(),
			Name:    name,
			Variant: variant,
		},
		TemplateName: template,
	}
}

func doCopy(t *testing.T, h *Variations) (*httptest.ResponseRecorder, copyResponse) {
	t.Helper()
	rec := httptest.NewRecorder()
	h.CopyAllSlides(rec, httptest.NewRequest(http.MethodPost, "/variations/copy-all-slides", nil))

	var resp copyResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v (%s)", err, rec.Body)
	}
	return rec, resp
}

func TestCopyAllSlides(t *testing.T) {
	slides := []store.SlideWithTemplate{
		testSlide("pitch-deck", "Intro", "default"),
		testSlide("pitch-deck", "Closing", "dark"),
	}
	creator := &stubVariationCreator{}
	h := NewVariations(&stubSlideLister{slides: slides}, creator, nil)

	rec, resp := doCopy(t, h)
	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d: %s", rec.Code, rec.Body)
	}

	if resp.Summary.TotalSlides != 2 || resp.Summary.SuccessfulCopies != 2 || resp.Summary.Errors != 0 {
		t.Errorf("summary: %+v", resp.Summary)
	}
	if len(resp.CreatedVariations) != 2 {
		t.Fatalf("created: got %d, want 2", len(resp.CreatedVariations))
	}
	if resp.CreatedVariations[0].SourceSlideName != "Intro" {
		t.Errorf("source name: got %q", resp.CreatedVariations[0].SourceSlideName)
	}

	// Copies are named {template}_{slide} and inherit the slide's variant.
	if creator.created[0].Name != "pitch-deck_Intro" {
		t.Errorf("copy name: got %q", creator.created[0].Name)
	}
	if creator.created[1].Variant != "dark" {
		t.Errorf("variant: got %q", creator.created[1].Variant)
	}
}

func TestCopyAllSlidesVariantFallback(t *testing.T) {
	slide := testSlide("pitch-deck", "Intro", "")
	creator := &stubVariationCreator{}
	h := NewVariations(&stubSlideLister{slides: []store.SlideWithTemplate{slide}}, creator, nil)

	_, resp := doCopy(t, h)

	want := fmt.Sprintf("slide_%s_variant", slide.ID)
	if resp.CreatedVariations[0].Variant != want {
		t.Errorf("variant: got %q, want %q", resp.CreatedVariations[0].Variant, want)
	}
}

func TestCopyAllSlidesFaultIsolation(t *testing.T) {
	good := testSlide("pitch-deck", "Intro", "default")
	bad := testSlide("pitch-deck", "Broken", "default")
	alsoGood := testSlide("other-deck", "Closing", "default")

	creator := &stubVariationCreator{failFor: map[uuid.UUID]bool{bad.ID: true}}
	h := NewVariations(&stubSlideLister{
		slides: []store.SlideWithTemplate{good, bad, alsoGood},
	}, creator, nil)

	rec, resp := doCopy(t, h)

	// One failure must not abort the batch or the response.
	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d: %s", rec.Code, rec.Body)
	}
	if resp.Summary.TotalSlides != 3 || resp.Summary.SuccessfulCopies != 2 || resp.Summary.Errors != 1 {
		t.Errorf("summary: %+v", resp.Summary)
	}
	if len(resp.Errors) != 1 || resp.Errors[0].SlideID != bad.ID || resp.Errors[0].SlideName != "Broken" {
		t.Errorf("errors: %+v", resp.Errors)
	}
	if len(resp.CreatedVariations) != 2 {
		t.Errorf("created: got %d, want 2", len(resp.CreatedVariations))
	}
}

func TestCopyAllSlidesEmpty(t *testing.T) {
	h := NewVariations(&stubSlideLister{}, &stubVariationCreator{}, nil)

	rec, resp := doCopy(t, h)
	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d", rec.Code)
	}
	if resp.Summary.TotalSlides != 0 || resp.Summary.SuccessfulCopies != 0 {
		t.Errorf("summary: %+v", resp.Summary)
	}
	if resp.CreatedVariations == nil || resp.Errors == nil {
		t.Error("arrays should be present (empty), not null")
	}
}

func TestCopyAllSlidesListError(t *testing.T) {
	h := NewVariations(&stubSlideLister{err: errDatabaseDown}, &stubVariationCreator{}, nil)

	rec := httptest.NewRecorder()
	h.CopyAllSlides(rec, httptest.NewRequest(http.MethodPost, "/variations/copy-all-slides", nil))

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status: got %d, want 500", rec.Code)
	}
}
