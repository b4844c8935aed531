// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"strings"
	"testing"
)

func TestRepeatCount(t *testing.T) {
	tests := []struct {
		repeat int
		want   int
	}{
		{0, 1},
		{1, 1},
		{5, 5},
		{-1, 0},
		{-100, 0},
	}
	for _, tt := range tests {
		el := Element{Type: ElementParagraph, Repeat: tt.repeat}
		if got := el.RepeatCount(); got != tt.want {
			t.Errorf("repeat=%d: got %d, want %d", tt.repeat, got, tt.want)
		}
	}
}

// nestedGroups builds a chain of groups `levels` deep ending in a leaf.
func nestedGroups(levels int) []Element {
	el := Element{Type: ElementHeading1}
	for i := 0; i < levels-1; i++ {
		el = Element{Type: ElementGroup, Children: []Element{el}}
	}
	return []Element{el}
}

func TestValidateElementsDepth(t *testing.T) {
	if err := ValidateElements(nestedGroups(MaxNestingDepth)); err != nil {
		t.Errorf("depth %d should be valid: %v", MaxNestingDepth, err)
	}
	err := ValidateElements(nestedGroups(MaxNestingDepth + 1))
	if err == nil {
		t.Fatalf("depth %d should be rejected", MaxNestingDepth+1)
	}
	if !strings.Contains(err.Error(), "nesting depth") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestValidateElementsChildrenOnlyUnderGroups(t *testing.T) {
	elements := []Element{{
		Type:     ElementParagraph,
		Children: []Element{{Type: ElementSpan}},
	}}
	if err := ValidateElements(elements); err == nil {
		t.Error("paragraph with children should be rejected")
	}
}

func TestValidateElementsUnknownType(t *testing.T) {
	if err := ValidateElements([]Element{{Type: "marquee"}}); err == nil {
		t.Error("unknown type should be rejected")
	}
}

func TestValidateElementsBackgroundPayload(t *testing.T) {
	if err := ValidateElements([]Element{{Type: ElementBackgroundElement}}); err == nil {
		t.Error("background-element without payload should be rejected")
	}

	ok := []Element{{
		Type: ElementBackgroundElement,
		BackgroundElement: &BackgroundElement{
			Media:    &MediaRef{URL: "/img/bg.png"},
			Position: PositionTopRight,
		},
	}}
	if err := ValidateElements(ok); err != nil {
		t.Errorf("valid background-element rejected: %v", err)
	}
}

func TestValidateElementsEmptyTree(t *testing.T) {
	if err := ValidateElements(nil); err != nil {
		t.Errorf("empty tree should be valid: %v", err)
	}
}
