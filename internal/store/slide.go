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

// SlideStore handles all slide-related database operations.
type SlideStore struct {
	db *sql.DB
}

// NewSlideStore creates a new SlideStore with the given database connection.
func NewSlideStore(db *sql.DB) *SlideStore {
	return &SlideStore{db: db}
}

// SlideWithTemplate pairs a slide with its owning template's name, as the
// bulk copy-to-variations operation needs both.
type SlideWithTemplate struct {
	models.Slide
	TemplateName string
}

// slideColumns is the select list shared by the slide queries.
const slideColumns = `id, template_id, name, variant, background_color, background_image,
	       style, elements, position, created_at, updated_at`

// scanSlide scans one slide row, decoding the JSONB columns.
func scanSlide(scan func(dest ...any) error, sl *models.Slide) error {
	var content slideContent
	if err := scan(
		&sl.ID, &sl.TemplateID, &sl.Name, &sl.Variant,
		&content.backgroundColor, &content.backgroundImage,
		&content.style, &content.elements,
		&sl.Position, &sl.CreatedAt, &sl.UpdatedAt,
	); err != nil {
		return err
	}
	return content.apply(&sl.BackgroundColor, &sl.BackgroundImage, &sl.Style, &sl.Elements)
}

// FindByID retrieves a slide by its UUID. Returns nil if not found.
func (s *SlideStore) FindByID(id uuid.UUID) (*models.Slide, error) {
	sl := &models.Slide{}
	row := s.db.QueryRow(`SELECT `+slideColumns+` FROM slides WHERE id = $1`, id)
	err := scanSlide(row.Scan, sl)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find slide by id: %w", err)
	}
	return sl, nil
}

// ListAllWithTemplate returns every slide in the system joined with its
// template name, ordered by template and position. Used by the bulk
// copy-all-slides operation.
func (s *SlideStore) ListAllWithTemplate() ([]SlideWithTemplate, error) {
	rows, err := s.db.Query(`
		SELECT s.id, s.template_id, s.name, s.variant, s.background_color, s.background_image,
		       s.style, s.elements, s.position, s.created_at, s.updated_at, t.name
		FROM slides s
		JOIN templates t ON t.id = s.template_id
		ORDER BY t.name, s.position, s.created_at
	`)
	if err != nil {
		return nil, fmt.Errorf("list slides: %w", err)
	}
	defer rows.Close()

	var slides []SlideWithTemplate
	for rows.Next() {
		var sw SlideWithTemplate
		var content slideContent
		if err := rows.Scan(
			&sw.ID, &sw.TemplateID, &sw.Name, &sw.Variant,
			&content.backgroundColor, &content.backgroundImage,
			&content.style, &content.elements,
			&sw.Position, &sw.CreatedAt, &sw.UpdatedAt, &sw.TemplateName,
		); err != nil {
			return nil, fmt.Errorf("scan slide: %w", err)
		}
		if err := content.apply(&sw.BackgroundColor, &sw.BackgroundImage, &sw.Style, &sw.Elements); err != nil {
			return nil, fmt.Errorf("slide %s: %w", sw.ID, err)
		}
		slides = append(slides, sw)
	}
	return slides, rows.Err()
}

// Create inserts a new slide and returns it with generated fields.
func (s *SlideStore) Create(sl *models.Slide) (*models.Slide, error) {
	bgImage, err := encodeJSONB(sl.BackgroundImage)
	if err != nil {
		return nil, err
	}
	style, err := encodeJSONB(sl.Style)
	if err != nil {
		return nil, err
	}
	elements, err := encodeElements(sl.Elements)
	if err != nil {
		return nil, err
	}

	result := &models.Slide{}
	row := s.db.QueryRow(`
		INSERT INTO slides (template_id, name, variant, background_color, background_image, style, elements, position)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING `+slideColumns,
		sl.TemplateID, sl.Name, sl.Variant, nullIfEmpty(sl.BackgroundColor),
		bgImage, style, elements, sl.Position,
	)
	if err := scanSlide(row.Scan, result); err != nil {
		return nil, fmt.Errorf("create slide: %w", err)
	}
	return result, nil
}

// Update replaces a slide's content.
func (s *SlideStore) Update(sl *models.Slide) error {
	bgImage, err := encodeJSONB(sl.BackgroundImage)
	if err != nil {
		return err
	}
	style, err := encodeJSONB(sl.Style)
	if err != nil {
		return err
	}
	elements, err := encodeElements(sl.Elements)
	if err != nil {
		return err
	}

	_, err = s.db.Exec(`
		UPDATE slides SET
			name = $1, variant = $2, background_color = $3, background_image = $4,
			style = $5, elements = $6, position = $7, updated_at = NOW()
		WHERE id = $8
	`, sl.Name, sl.Variant, nullIfEmpty(sl.BackgroundColor), bgImage, style, elements, sl.Position, sl.ID)
	if err != nil {
		return fmt.Errorf("update slide: %w", err)
	}
	return nil
}

// Delete removes a slide and, via cascade, its variations.
func (s *SlideStore) Delete(id uuid.UUID) error {
	result, err := s.db.Exec(`DELETE FROM slides WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete slide: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return fmt.Errorf("slide not found")
	}
	return nil
}
