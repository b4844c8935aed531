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

// VariationStore handles all variation-related database operations.
type VariationStore struct {
	db *sql.DB
}

// NewVariationStore creates a new VariationStore with the given database connection.
func NewVariationStore(db *sql.DB) *VariationStore {
	return &VariationStore{db: db}
}

const variationColumns = `id, slide_id, name, variant, background_color, background_image,
	       style, elements, position, created_at, updated_at`

func scanVariation(scan func(dest ...any) error, v *models.Variation) error {
	var content slideContent
	if err := scan(
		&v.ID, &v.SlideID, &v.Name, &v.Variant,
		&content.backgroundColor, &content.backgroundImage,
		&content.style, &content.elements,
		&v.Position, &v.CreatedAt, &v.UpdatedAt,
	); err != nil {
		return err
	}
	return content.apply(&v.BackgroundColor, &v.BackgroundImage, &v.Style, &v.Elements)
}

// ListBySlide returns a slide's variations in position order.
func (s *VariationStore) ListBySlide(slideID uuid.UUID) ([]models.Variation, error) {
	rows, err := s.db.Query(`
		SELECT `+variationColumns+` FROM variations
		WHERE slide_id = $1
		ORDER BY position, created_at
	`, slideID)
	if err != nil {
		return nil, fmt.Errorf("list variations: %w", err)
	}
	defer rows.Close()

	var variations []models.Variation
	for rows.Next() {
		var v models.Variation
		if err := scanVariation(rows.Scan, &v); err != nil {
			return nil, fmt.Errorf("scan variation: %w", err)
		}
		variations = append(variations, v)
	}
	return variations, rows.Err()
}

// Create inserts a new variation and returns it with generated fields.
func (s *VariationStore) Create(v *models.Variation) (*models.Variation, error) {
	bgImage, err := encodeJSONB(v.BackgroundImage)
	if err != nil {
		return nil, err
	}
	style, err := encodeJSONB(v.Style)
	if err != nil {
		return nil, err
	}
	elements, err := encodeElements(v.Elements)
	if err != nil {
		return nil, err
	}

	result := &models.Variation{}
	row := s.db.QueryRow(`
		INSERT INTO variations (slide_id, name, variant, background_color, background_image, style, elements, position)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING `+variationColumns,
		v.SlideID, v.Name, v.Variant, nullIfEmpty(v.BackgroundColor),
		bgImage, style, elements, v.Position,
	)
	if err := scanVariation(row.Scan, result); err != nil {
		return nil, fmt.Errorf("create variation: %w", err)
	}
	return result, nil
}

// Delete removes a variation.
func (s *VariationStore) Delete(id uuid.UUID) error {
	result, err := s.db.Exec(`DELETE FROM variations WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete variation: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return fmt.Errorf("variation not found")
	}
	return nil
}

// Count returns the total number of variations.
func (s *VariationStore) Count() (int, error) {
	var count int
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM variations`).Scan(&count); err != nil {
		return 0, fmt.Errorf("count variations: %w", err)
	}
	return count, nil
}
