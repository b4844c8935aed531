package handlers

import (
	"strings"
	"unicode/utf8"

	"github.com/Abrar408/powerpresent-templates/internal/models"
)

// Validation limits for template and slide fields.
const (
	maxTemplateNameLen = 200
	maxCategoryLen     = 200
	maxDescriptionLen  = 10_000
	maxSlideNameLen    = 200
	maxVariantLen      = 200
)

// validateTemplate checks template inputs and returns the first error found.
func validateTemplate(name, category, description string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return "Template name is required."
	}
	if utf8.RuneCountInString(name) > maxTemplateNameLen {
		return "Template name is too long (max 200 characters)."
	}
	// The name becomes part of the stylesheet file name.
	if strings.ContainsAny(name, "/\\") || strings.Contains(name, "..") {
		return "Template name must not contain path separators or '..'."
	}
	if utf8.RuneCountInString(category) > maxCategoryLen {
		return "Category is too long (max 200 characters)."
	}
	if utf8.RuneCountInString(description) > maxDescriptionLen {
		return "Description is too long (max 10,000 characters)."
	}
	return ""
}

// validateSlide checks slide or variation inputs, including the element
// tree, and returns the first error found.
func validateSlide(name, variant string, elements []models.Element) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return "Slide name is required."
	}
	if utf8.RuneCountInString(name) > maxSlideNameLen {
		return "Slide name is too long (max 200 characters)."
	}
	if utf8.RuneCountInString(variant) > maxVariantLen {
		return "Variant is too long (max 200 characters)."
	}
	if err := models.ValidateElements(elements); err != nil {
		return err.Error()
	}
	return ""
}
