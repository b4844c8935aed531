// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package renderer

import (
	"github.com/Abrar408/powerpresent-templates/internal/models"
)

// defaultSelectors maps element types to the CSS selectors the editor
// assigns their rendered nodes.
var defaultSelectors = map[models.ElementType]string{
	models.ElementHeading1:         ".node-heading:has(h1)",
	models.ElementHeading2:         ".node-heading:has(h2)",
	models.ElementHeading3:         ".node-heading:has(h3)",
	models.ElementHeading4:         ".node-heading:has(h4)",
	models.ElementParagraph:        ".node-paragraph",
	models.ElementUnorderedBullets: "ul",
	models.ElementOrderedBullets:   "ol",
	models.ElementImage:            ".node-image",
	models.ElementShape:            ".node-shapeNode",
}

// groupSelector is the default selector for group containers.
const groupSelector = ".tiptap-block-node"

// SelectorFor resolves the CSS selector for an element. An explicit
// custom_style_node override always wins, regardless of type. Types with
// no default selector (group, span, background-element) resolve to the
// empty string, which callers must treat as "skip".
func SelectorFor(el *models.Element) string {
	if el.CustomStyleNode != "" {
		return el.CustomStyleNode
	}
	return defaultSelectors[el.Type]
}

// selectorForGroup resolves a group's selector, falling back to the
// block-node default instead of the empty string.
func selectorForGroup(el *models.Element) string {
	if el.CustomStyleNode != "" {
		return el.CustomStyleNode
	}
	return groupSelector
}
