// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store_test

import (
	"testing"

	"github.com/google/uuid"

	"github.com/Abrar408/powerpresent-templates/internal/models"
	"github.com/Abrar408/powerpresent-templates/internal/store"
)

func TestTemplateStoreCreateAndFind(t *testing.T) {
	db := testDB(t)
	s := store.NewTemplateStore(db)

	name := "test-deck-" + uuid.NewString()[:8]
	t.Cleanup(func() { cleanTemplates(t, db, name) })

	created, err := s.Create(&models.Template{
		Name:        name,
		Category:    "sales",
		Description: "A **bold** deck.",
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if created.ID == uuid.Nil {
		t.Error("expected non-nil UUID")
	}
	if created.Name != name || created.Category != "sales" {
		t.Errorf("created: %+v", created)
	}

	found, err := s.FindByID(created.ID)
	if err != nil {
		t.Fatalf("FindByID: %v", err)
	}
	if found == nil || found.Description != "A **bold** deck." {
		t.Errorf("found: %+v", found)
	}

	// Not found.
	missing, err := s.FindByID(uuid.New())
	if err != nil {
		t.Fatalf("FindByID miss: %v", err)
	}
	if missing != nil {
		t.Error("expected nil for random UUID")
	}
}

func TestTemplateStoreNameUnique(t *testing.T) {
	db := testDB(t)
	s := store.NewTemplateStore(db)

	name := "unique-deck-" + uuid.NewString()[:8]
	t.Cleanup(func() { cleanTemplates(t, db, name) })

	if _, err := s.Create(&models.Template{Name: name}); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if _, err := s.Create(&models.Template{Name: name}); err == nil {
		t.Error("duplicate name should fail")
	}
}

func TestTemplateStoreFindByNameWithAllData(t *testing.T) {
	db := testDB(t)
	templates := store.NewTemplateStore(db)
	slides := store.NewSlideStore(db)
	variations := store.NewVariationStore(db)

	name := "graph-deck-" + uuid.NewString()[:8]
	t.Cleanup(func() { cleanTemplates(t, db, name) })

	tmpl, err := templates.Create(&models.Template{Name: name})
	if err != nil {
		t.Fatalf("Create template: %v", err)
	}

	// Two slides out of insertion order; position must win.
	second, err := slides.Create(&models.Slide{
		TemplateID: tmpl.ID,
		Name:       "Closing",
		Position:   2,
		Elements:   []models.Element{{Type: models.ElementParagraph}},
	})
	if err != nil {
		t.Fatalf("Create slide: %v", err)
	}
	first, err := slides.Create(&models.Slide{
		TemplateID:      tmpl.ID,
		Name:            "Intro",
		Variant:         "default",
		BackgroundColor: "#eee",
		Position:        1,
		Style:           models.Style{{Key: "display", Value: "flex"}},
		Elements: []models.Element{{
			Type:  models.ElementHeading1,
			Style: models.Style{{Key: "color", Value: "red"}},
		}},
	})
	if err != nil {
		t.Fatalf("Create slide: %v", err)
	}

	if _, err := variations.Create(&models.Variation{
		SlideID:  first.ID,
		Name:     "Intro Left",
		Variant:  "left",
		Elements: []models.Element{{Type: models.ElementHeading2}},
	}); err != nil {
		t.Fatalf("Create variation: %v", err)
	}

	got, err := templates.FindByNameWithAllData(name)
	if err != nil {
		t.Fatalf("FindByNameWithAllData: %v", err)
	}
	if got == nil {
		t.Fatal("expected template")
	}
	if len(got.Slides) != 2 {
		t.Fatalf("slides: got %d, want 2", len(got.Slides))
	}
	if got.Slides[0].Name != "Intro" || got.Slides[1].Name != "Closing" {
		t.Errorf("slide order: %q, %q", got.Slides[0].Name, got.Slides[1].Name)
	}
	if got.Slides[0].BackgroundColor != "#eee" {
		t.Errorf("background color: %q", got.Slides[0].BackgroundColor)
	}

	// JSONB round trip keeps element trees and style order.
	intro := got.Slides[0]
	if len(intro.Elements) != 1 || intro.Elements[0].Type != models.ElementHeading1 {
		t.Errorf("elements: %+v", intro.Elements)
	}
	if intro.Elements[0].Style.Get("color") != "red" {
		t.Errorf("element style: %+v", intro.Elements[0].Style)
	}
	if intro.Style.Get("display") != "flex" {
		t.Errorf("slide style: %+v", intro.Style)
	}

	if len(intro.Variations) != 1 || intro.Variations[0].Variant != "left" {
		t.Errorf("variations: %+v", intro.Variations)
	}
	if len(got.Slides[1].Variations) != 0 {
		t.Errorf("closing slide should have no variations")
	}
	_ = second

	// Unknown names resolve to nil, not an error.
	missing, err := templates.FindByNameWithAllData("no-such-deck")
	if err != nil {
		t.Fatalf("miss: %v", err)
	}
	if missing != nil {
		t.Error("expected nil for unknown name")
	}
}

func TestTemplateStoreDeleteCascades(t *testing.T) {
	db := testDB(t)
	templates := store.NewTemplateStore(db)
	slides := store.NewSlideStore(db)

	name := "cascade-deck-" + uuid.NewString()[:8]
	t.Cleanup(func() { cleanTemplates(t, db, name) })

	tmpl, err := templates.Create(&models.Template{Name: name})
	if err != nil {
		t.Fatalf("Create template: %v", err)
	}
	slide, err := slides.Create(&models.Slide{TemplateID: tmpl.ID, Name: "Only"})
	if err != nil {
		t.Fatalf("Create slide: %v", err)
	}

	if err := templates.Delete(tmpl.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}

	gone, err := slides.FindByID(slide.ID)
	if err != nil {
		t.Fatalf("FindByID: %v", err)
	}
	if gone != nil {
		t.Error("slide should cascade-delete with its template")
	}

	// Deleting again reports not found.
	if err := templates.Delete(tmpl.ID); err == nil {
		t.Error("second delete should fail")
	}
}
