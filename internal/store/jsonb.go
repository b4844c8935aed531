// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// jsonb.go holds the helpers that move element trees, style objects, and
// media references between their Go models and the JSONB columns they
// live in. Slides and variations share the same column layout.
package store

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/Abrar408/powerpresent-templates/internal/models"
)

// slideContent is the scan target for the JSONB columns shared by slides
// and variations, plus the nullable background color.
type slideContent struct {
	backgroundColor sql.NullString
	backgroundImage []byte
	style           []byte
	elements        []byte
}

// apply decodes the scanned raw columns into the destination fields.
func (c *slideContent) apply(bgColor *string, bgImage **models.MediaRef, style *models.Style, elements *[]models.Element) error {
	if c.backgroundColor.Valid {
		*bgColor = c.backgroundColor.String
	}

	if len(c.backgroundImage) > 0 {
		ref := &models.MediaRef{}
		if err := json.Unmarshal(c.backgroundImage, ref); err != nil {
			return fmt.Errorf("decode background_image: %w", err)
		}
		*bgImage = ref
	}

	if len(c.style) > 0 {
		if err := json.Unmarshal(c.style, style); err != nil {
			return fmt.Errorf("decode style: %w", err)
		}
	}

	if len(c.elements) > 0 {
		if err := json.Unmarshal(c.elements, elements); err != nil {
			return fmt.Errorf("decode elements: %w", err)
		}
	}
	if *elements == nil {
		*elements = []models.Element{}
	}
	return nil
}

// encodeJSONB marshals a value for a JSONB parameter, mapping nil-ish
// values to SQL NULL so optional columns stay NULL instead of "null".
func encodeJSONB(v any) (any, error) {
	switch val := v.(type) {
	case nil:
		return nil, nil
	case *models.MediaRef:
		if val == nil {
			return nil, nil
		}
	case models.Style:
		if len(val) == 0 {
			return nil, nil
		}
	}

	data, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("encode jsonb: %w", err)
	}
	return data, nil
}

// encodeElements marshals an element tree, defaulting nil to an empty array.
func encodeElements(elements []models.Element) ([]byte, error) {
	if elements == nil {
		elements = []models.Element{}
	}
	data, err := json.Marshal(elements)
	if err != nil {
		return nil, fmt.Errorf("encode elements: %w", err)
	}
	return data, nil
}

// nullIfEmpty maps an empty string to SQL NULL.
func nullIfEmpty(s string) any {
	if s == "" {
		return nil
	}
	return s
}
