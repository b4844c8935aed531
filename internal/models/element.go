// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"fmt"
)

// ElementType tags a node in a slide's element tree.
type ElementType string

const (
	ElementHeading1          ElementType = "heading1"
	ElementHeading2          ElementType = "heading2"
	ElementHeading3          ElementType = "heading3"
	ElementHeading4          ElementType = "heading4"
	ElementParagraph         ElementType = "paragraph"
	ElementSpan              ElementType = "span"
	ElementOrderedBullets    ElementType = "ordered-bullets"
	ElementUnorderedBullets  ElementType = "un-ordered-bullets"
	ElementImage             ElementType = "image"
	ElementShape             ElementType = "shape"
	ElementGroup             ElementType = "group"
	ElementBackgroundElement ElementType = "background-element"
)

// DataType refines how a paragraph element renders.
type DataType string

const (
	DataTypeNumberedBullet DataType = "numbered-bullet"
	DataTypeIcon           DataType = "icon"
)

// BackgroundPosition anchors a background element's media within the slide.
type BackgroundPosition string

const (
	PositionLeft        BackgroundPosition = "left"
	PositionRight       BackgroundPosition = "right"
	PositionTop         BackgroundPosition = "top"
	PositionBottom      BackgroundPosition = "bottom"
	PositionTopLeft     BackgroundPosition = "top-left"
	PositionTopRight    BackgroundPosition = "top-right"
	PositionBottomLeft  BackgroundPosition = "bottom-left"
	PositionBottomRight BackgroundPosition = "bottom-right"
	PositionCenter      BackgroundPosition = "center"
	PositionCover       BackgroundPosition = "cover"
	PositionContain     BackgroundPosition = "contain"
)

// MediaRef points at a stored media file as the renderer consumes it.
type MediaRef struct {
	URL             string `json:"url"`
	AlternativeText string `json:"alternativeText,omitempty"`
}

// BackgroundElement is the payload of a "background-element" node: a media
// reference plus where to anchor it.
type BackgroundElement struct {
	Media    *MediaRef          `json:"media,omitempty"`
	Position BackgroundPosition `json:"position,omitempty"`
}

// MaxNestingDepth is the maximum number of element levels in a tree.
// A group at the top level may contain groups three levels further down,
// so the deepest leaf sits at level four.
const MaxNestingDepth = 4

// Element is a node in a slide's render tree. All type-specific payloads
// live on the one struct as optional fields: Children is only meaningful
// for groups, BackgroundElement only for background-element nodes. The
// tree is recursive with depth bounded by MaxNestingDepth, enforced by
// Validate at the API boundary rather than by the schema.
type Element struct {
	Type              ElementType        `json:"type"`
	Style             Style              `json:"style,omitempty"`
	CustomStyleNode   string             `json:"custom_style_node,omitempty"`
	Repeat            int                `json:"repeat,omitempty"`
	DataType          DataType           `json:"data_type,omitempty"`
	Media             *MediaRef          `json:"media,omitempty"`
	BackgroundElement *BackgroundElement `json:"background_element,omitempty"`
	Children          []Element          `json:"children,omitempty"`
}

// RepeatCount returns how many times the element renders. Absent or zero
// means once; a negative value means the element is skipped entirely.
func (e *Element) RepeatCount() int {
	if e.Repeat == 0 {
		return 1
	}
	if e.Repeat < 0 {
		return 0
	}
	return e.Repeat
}

var validElementTypes = map[ElementType]bool{
	ElementHeading1:          true,
	ElementHeading2:          true,
	ElementHeading3:          true,
	ElementHeading4:          true,
	ElementParagraph:         true,
	ElementSpan:              true,
	ElementOrderedBullets:    true,
	ElementUnorderedBullets:  true,
	ElementImage:             true,
	ElementShape:             true,
	ElementGroup:             true,
	ElementBackgroundElement: true,
}

// ValidateElements checks a top-level element tree against the structural
// rules: known types only, children only under groups, nesting no deeper
// than MaxNestingDepth levels.
func ValidateElements(elements []Element) error {
	return validateElements(elements, 1)
}

func validateElements(elements []Element, depth int) error {
	if depth > MaxNestingDepth {
		return fmt.Errorf("element tree exceeds maximum nesting depth of %d", MaxNestingDepth)
	}
	for i := range elements {
		el := &elements[i]
		if !validElementTypes[el.Type] {
			return fmt.Errorf("unknown element type %q at depth %d", el.Type, depth)
		}
		if len(el.Children) > 0 {
			if el.Type != ElementGroup {
				return fmt.Errorf("element type %q at depth %d cannot have children", el.Type, depth)
			}
			if depth == MaxNestingDepth {
				return fmt.Errorf("group at depth %d cannot have children: maximum nesting depth is %d", depth, MaxNestingDepth)
			}
			if err := validateElements(el.Children, depth+1); err != nil {
				return err
			}
		}
		if el.Type == ElementBackgroundElement && el.BackgroundElement == nil {
			return fmt.Errorf("background-element at depth %d is missing its payload", depth)
		}
	}
	return nil
}
