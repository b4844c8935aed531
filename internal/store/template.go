// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/Abrar408/powerpresent-templates/internal/models"
)

// TemplateStore handles all template-related database operations.
type TemplateStore struct {
	db *sql.DB
}

// NewTemplateStore creates a new TemplateStore with the given database connection.
func NewTemplateStore(db *sql.DB) *TemplateStore {
	return &TemplateStore{db: db}
}

// List returns summaries of all templates ordered by category and name.
// The thumbnail column resolves to the media file's storage key.
func (s *TemplateStore) List() ([]models.TemplateSummary, error) {
	rows, err := s.db.Query(`
		SELECT t.id, t.name, t.category, t.description, m.s3_key
		FROM templates t
		LEFT JOIN media m ON m.id = t.thumbnail_id
		ORDER BY t.category, t.name
	`)
	if err != nil {
		return nil, fmt.Errorf("list templates: %w", err)
	}
	defer rows.Close()

	var summaries []models.TemplateSummary
	for rows.Next() {
		var t models.TemplateSummary
		if err := rows.Scan(&t.ID, &t.Name, &t.Category, &t.Description, &t.Thumbnail); err != nil {
			return nil, fmt.Errorf("scan template summary: %w", err)
		}
		summaries = append(summaries, t)
	}
	return summaries, rows.Err()
}

// FindByID retrieves a template row by its UUID, without the slide graph.
// Returns nil if not found.
func (s *TemplateStore) FindByID(id uuid.UUID) (*models.Template, error) {
	t := &models.Template{}
	err := s.db.QueryRow(`
		SELECT id, name, category, description, thumbnail_id, created_at, updated_at
		FROM templates WHERE id = $1
	`, id).Scan(&t.ID, &t.Name, &t.Category, &t.Description, &t.ThumbnailID, &t.CreatedAt, &t.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find template by id: %w", err)
	}
	return t, nil
}

// FindByNameWithAllData retrieves a template by its unique name together
// with its full graph: slides in position order, each slide's variations
// in position order, element trees and styles decoded from JSONB.
// Returns nil if no template has this name.
func (s *TemplateStore) FindByNameWithAllData(name string) (*models.Template, error) {
	t := &models.Template{}
	err := s.db.QueryRow(`
		SELECT id, name, category, description, thumbnail_id, created_at, updated_at
		FROM templates WHERE name = $1
	`, name).Scan(&t.ID, &t.Name, &t.Category, &t.Description, &t.ThumbnailID, &t.CreatedAt, &t.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find template by name: %w", err)
	}

	if err := s.loadSlides(t); err != nil {
		return nil, err
	}
	return t, nil
}

// FindByIDWithAllData is FindByNameWithAllData keyed by UUID. Used by the
// structure endpoint.
func (s *TemplateStore) FindByIDWithAllData(id uuid.UUID) (*models.Template, error) {
	t, err := s.FindByID(id)
	if err != nil || t == nil {
		return t, err
	}
	if err := s.loadSlides(t); err != nil {
		return nil, err
	}
	return t, nil
}

// loadSlides populates the template's slides and their variations.
func (s *TemplateStore) loadSlides(t *models.Template) error {
	rows, err := s.db.Query(`
		SELECT id, template_id, name, variant, background_color, background_image,
		       style, elements, position, created_at, updated_at
		FROM slides
		WHERE template_id = $1
		ORDER BY position, created_at
	`, t.ID)
	if err != nil {
		return fmt.Errorf("load slides: %w", err)
	}
	defer rows.Close()

	t.Slides = []models.Slide{}
	for rows.Next() {
		var sl models.Slide
		var content slideContent
		if err := rows.Scan(
			&sl.ID, &sl.TemplateID, &sl.Name, &sl.Variant,
			&content.backgroundColor, &content.backgroundImage,
			&content.style, &content.elements,
			&sl.Position, &sl.CreatedAt, &sl.UpdatedAt,
		); err != nil {
			return fmt.Errorf("scan slide: %w", err)
		}
		if err := content.apply(&sl.BackgroundColor, &sl.BackgroundImage, &sl.Style, &sl.Elements); err != nil {
			return fmt.Errorf("slide %s: %w", sl.ID, err)
		}
		t.Slides = append(t.Slides, sl)
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("iterate slides: %w", err)
	}

	for i := range t.Slides {
		variations, err := s.loadVariations(t.Slides[i].ID)
		if err != nil {
			return err
		}
		t.Slides[i].Variations = variations
	}
	return nil
}

// loadVariations returns a slide's variations in position order.
func (s *TemplateStore) loadVariations(slideID uuid.UUID) ([]models.Variation, error) {
	rows, err := s.db.Query(`
		SELECT id, slide_id, name, variant, background_color, background_image,
		       style, elements, position, created_at, updated_at
		FROM variations
		WHERE slide_id = $1
		ORDER BY position, created_at
	`, slideID)
	if err != nil {
		return nil, fmt.Errorf("load variations: %w", err)
	}
	defer rows.Close()

	var variations []models.Variation
	for rows.Next() {
		var v models.Variation
		var content slideContent
		if err := rows.Scan(
			&v.ID, &v.SlideID, &v.Name, &v.Variant,
			&content.backgroundColor, &content.backgroundImage,
			&content.style, &content.elements,
			&v.Position, &v.CreatedAt, &v.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan variation: %w", err)
		}
		if err := content.apply(&v.BackgroundColor, &v.BackgroundImage, &v.Style, &v.Elements); err != nil {
			return nil, fmt.Errorf("variation %s: %w", v.ID, err)
		}
		variations = append(variations, v)
	}
	return variations, rows.Err()
}

// Create inserts a new template and returns it with generated fields.
func (s *TemplateStore) Create(t *models.Template) (*models.Template, error) {
	result := &models.Template{}
	err := s.db.QueryRow(`
		INSERT INTO templates (name, category, description, thumbnail_id)
		VALUES ($1, $2, $3, $4)
		RETURNING id, name, category, description, thumbnail_id, created_at, updated_at
	`, t.Name, t.Category, t.Description, t.ThumbnailID).Scan(
		&result.ID, &result.Name, &result.Category, &result.Description,
		&result.ThumbnailID, &result.CreatedAt, &result.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("create template: %w", err)
	}
	return result, nil
}

// Update modifies a template's metadata.
func (s *TemplateStore) Update(t *models.Template) error {
	_, err := s.db.Exec(`
		UPDATE templates SET
			name = $1, category = $2, description = $3, thumbnail_id = $4, updated_at = NOW()
		WHERE id = $5
	`, t.Name, t.Category, t.Description, t.ThumbnailID, t.ID)
	if err != nil {
		return fmt.Errorf("update template: %w", err)
	}
	return nil
}

// Delete removes a template and, via cascade, its slides and variations.
func (s *TemplateStore) Delete(id uuid.UUID) error {
	result, err := s.db.Exec(`DELETE FROM templates WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete template: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return fmt.Errorf("template not found")
	}
	return nil
}

// Count returns the total number of templates.
func (s *TemplateStore) Count() (int, error) {
	var count int
	err := s.db.QueryRow(`SELECT COUNT(*) FROM templates`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count templates: %w", err)
	}
	return count, nil
}
