// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Style is an ordered set of CSS-like declarations attached to a slide or
// element. Keys are camelCase property names; values are scalars or nested
// Style blocks (e.g. "li" sub-styles on a list). Declaration order is part
// of the rendered output, so Style preserves the order keys appear in the
// stored JSON — a plain map would randomize it.
type Style []StyleEntry

// StyleEntry is a single key/value pair in a Style.
// Value is one of: string, json.Number, bool, nil, or a nested Style.
type StyleEntry struct {
	Key   string
	Value any
}

// Get returns the value for a key, or nil if absent. Linear scan — style
// objects are small.
func (s Style) Get(key string) any {
	for _, e := range s {
		if e.Key == key {
			return e.Value
		}
	}
	return nil
}

// UnmarshalJSON decodes a JSON object into an ordered Style. Non-object
// input (null, scalars, arrays) yields an empty Style rather than an error:
// the rendering layer treats anything that is not an object as "no styles".
func (s *Style) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		return fmt.Errorf("style decode: %w", err)
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		*s = nil
		return nil
	}

	parsed, err := decodeStyleObject(dec)
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// decodeStyleObject reads key/value pairs until the closing brace. The
// opening brace must already be consumed.
func decodeStyleObject(dec *json.Decoder) (Style, error) {
	var out Style
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("style key: %w", err)
		}
		key := keyTok.(string)

		val, err := decodeStyleValue(dec)
		if err != nil {
			return nil, err
		}
		out = append(out, StyleEntry{Key: key, Value: val})
	}
	// Consume the closing '}'.
	if _, err := dec.Token(); err != nil {
		return nil, fmt.Errorf("style close: %w", err)
	}
	return out, nil
}

func decodeStyleValue(dec *json.Decoder) (any, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, fmt.Errorf("style value: %w", err)
	}

	switch v := tok.(type) {
	case json.Delim:
		switch v {
		case '{':
			return decodeStyleObject(dec)
		case '[':
			// Arrays do not occur in style objects; skip them wholesale.
			depth := 1
			for depth > 0 {
				t, err := dec.Token()
				if err != nil {
					return nil, fmt.Errorf("style array: %w", err)
				}
				if d, ok := t.(json.Delim); ok {
					switch d {
					case '[', '{':
						depth++
					case ']', '}':
						depth--
					}
				}
			}
			return nil, nil
		}
		return nil, fmt.Errorf("style: unexpected delimiter %v", v)
	default:
		// string, json.Number, bool, or nil.
		return v, nil
	}
}

// MarshalJSON encodes the Style back to a JSON object, preserving entry
// order. An empty Style marshals to null so optional columns stay NULL.
func (s Style) MarshalJSON() ([]byte, error) {
	if len(s) == 0 {
		return []byte("null"), nil
	}

	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, e := range s {
		if i > 0 {
			buf.WriteByte(',')
		}
		k, err := json.Marshal(e.Key)
		if err != nil {
			return nil, err
		}
		buf.Write(k)
		buf.WriteByte(':')

		v, err := json.Marshal(e.Value)
		if err != nil {
			return nil, fmt.Errorf("style marshal %q: %w", e.Key, err)
		}
		buf.Write(v)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
