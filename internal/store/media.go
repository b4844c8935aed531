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

// MediaStore handles all media-related database operations.
type MediaStore struct {
	db *sql.DB
}

// NewMediaStore creates a new MediaStore with the given database connection.
func NewMediaStore(db *sql.DB) *MediaStore {
	return &MediaStore{db: db}
}

// Create inserts a new media record and returns it with generated fields.
func (s *MediaStore) Create(m *models.Media) (*models.Media, error) {
	result := &models.Media{}
	err := s.db.QueryRow(`
		INSERT INTO media (file_name, content_type, size_bytes, bucket, s3_key, alt_text)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, file_name, content_type, size_bytes, bucket, s3_key, alt_text, created_at
	`, m.FileName, m.ContentType, m.SizeBytes, m.Bucket, m.S3Key, m.AltText).Scan(
		&result.ID, &result.FileName, &result.ContentType, &result.SizeBytes,
		&result.Bucket, &result.S3Key, &result.AltText, &result.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("create media: %w", err)
	}
	return result, nil
}

// FindByID retrieves a media record by its UUID. Returns nil if not found.
func (s *MediaStore) FindByID(id uuid.UUID) (*models.Media, error) {
	m := &models.Media{}
	err := s.db.QueryRow(`
		SELECT id, file_name, content_type, size_bytes, bucket, s3_key, alt_text, created_at
		FROM media WHERE id = $1
	`, id).Scan(
		&m.ID, &m.FileName, &m.ContentType, &m.SizeBytes,
		&m.Bucket, &m.S3Key, &m.AltText, &m.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find media by id: %w", err)
	}
	return m, nil
}

// Delete removes a media record.
func (s *MediaStore) Delete(id uuid.UUID) error {
	result, err := s.db.Exec(`DELETE FROM media WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete media: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return fmt.Errorf("media not found")
	}
	return nil
}
