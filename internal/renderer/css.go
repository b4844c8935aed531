// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package renderer turns slide element trees into the HTML and SCSS
// fragments consumed by the rich-text presentation editor. Output is
// whitespace-sensitive: the editor re-parses the HTML and the published
// stylesheet is diffed byte-for-byte, so indentation here is part of the
// contract, not cosmetics.
package renderer

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/Abrar408/powerpresent-templates/internal/models"
)

// styleIndent is the base indentation style declarations are joined with.
// Nested rules rewrite it per level; see the SCSS renderer.
const styleIndent = "\n          "

// Flatten converts a style object into CSS declaration text. Keys convert
// camelCase to kebab-case; nested style objects (like "li" sub-styles on a
// list) render as nested blocks. An empty style yields an empty string.
// Unknown keys pass through verbatim after case conversion; a JSON null
// value renders as the literal null.
func Flatten(style models.Style) string {
	var parts []string
	for _, entry := range style {
		key := kebabCase(entry.Key)

		if nested, ok := entry.Value.(models.Style); ok {
			inner := Flatten(nested)
			if inner == "" {
				continue
			}
			parts = append(parts, key+" {\n            "+inner+"\n          }")
			continue
		}

		if entry.Value == nil {
			parts = append(parts, key+": null;")
			continue
		}
		parts = append(parts, fmt.Sprintf("%s: %v;", key, entry.Value))
	}
	return strings.Join(parts, styleIndent)
}

// kebabCase lowercases a camelCase key, prefixing each uppercase letter
// with a hyphen: "textAlign" becomes "text-align".
func kebabCase(key string) string {
	var b strings.Builder
	b.Grow(len(key) + 2)
	for _, r := range key {
		if unicode.IsUpper(r) {
			b.WriteByte('-')
			b.WriteRune(unicode.ToLower(r))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
