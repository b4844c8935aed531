// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"time"

	"github.com/google/uuid"
)

// Media is an uploaded file tracked in the database and stored in
// S3-compatible object storage.
type Media struct {
	ID          uuid.UUID `json:"id"`
	FileName    string    `json:"file_name"`
	ContentType string    `json:"content_type"`
	SizeBytes   int64     `json:"size_bytes"`
	Bucket      string    `json:"bucket"`
	S3Key       string    `json:"s3_key"`
	AltText     *string   `json:"alt_text,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}
