// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"encoding/json"
	"testing"
)

func TestStylePreservesDeclarationOrder(t *testing.T) {
	// Deliberately not alphabetical: a map-based decode would scramble it.
	input := `{"zIndex":"2","backgroundColor":"#fff","alignItems":"center","display":"flex"}`

	var s Style
	if err := json.Unmarshal([]byte(input), &s); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	wantKeys := []string{"zIndex", "backgroundColor", "alignItems", "display"}
	if len(s) != len(wantKeys) {
		t.Fatalf("got %d entries, want %d", len(s), len(wantKeys))
	}
	for i, key := range wantKeys {
		if s[i].Key != key {
			t.Errorf("entry %d: got key %q, want %q", i, s[i].Key, key)
		}
	}

	// Round trip keeps the order too.
	out, err := json.Marshal(s)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(out) != input {
		t.Errorf("round trip:\n got %s\nwant %s", out, input)
	}
}

func TestStyleNestedBlocks(t *testing.T) {
	input := `{"display":"flex","li":{"fontSize":"16px","color":"red"}}`

	var s Style
	if err := json.Unmarshal([]byte(input), &s); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	nested, ok := s.Get("li").(Style)
	if !ok {
		t.Fatalf("li: got %T, want Style", s.Get("li"))
	}
	if nested.Get("fontSize") != "16px" {
		t.Errorf("fontSize: got %v", nested.Get("fontSize"))
	}
	if nested.Get("color") != "red" {
		t.Errorf("color: got %v", nested.Get("color"))
	}
}

func TestStyleNonObjectInput(t *testing.T) {
	for _, input := range []string{`null`, `"red"`, `42`, `[1,2]`, `true`} {
		var s Style
		if err := json.Unmarshal([]byte(input), &s); err != nil {
			t.Errorf("unmarshal %s: %v", input, err)
		}
		if len(s) != 0 {
			t.Errorf("unmarshal %s: got %d entries, want 0", input, len(s))
		}
	}
}

func TestStyleNumbersSurviveRoundTrip(t *testing.T) {
	input := `{"opacity":0.5,"order":3}`

	var s Style
	if err := json.Unmarshal([]byte(input), &s); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	// Numbers decode as json.Number so 0.5 does not become 0.5000000001
	// and 3 does not become 3e+00 on re-encode.
	if _, ok := s.Get("opacity").(json.Number); !ok {
		t.Errorf("opacity: got %T, want json.Number", s.Get("opacity"))
	}
	out, err := json.Marshal(s)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(out) != input {
		t.Errorf("round trip:\n got %s\nwant %s", out, input)
	}
}

func TestStyleEmptyMarshalsToNull(t *testing.T) {
	out, err := json.Marshal(Style(nil))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(out) != "null" {
		t.Errorf("got %s, want null", out)
	}
}
