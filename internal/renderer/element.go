// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package renderer

import (
	"strings"

	"github.com/Abrar408/powerpresent-templates/internal/models"
)

// placeholderImage is served when an image element has no media attached.
const placeholderImage = "/assets/placeholder.png"

// Renderer produces HTML and SCSS for slides. MediaBaseURL, when set,
// prefixes relative media URLs coming from the storage layer; absolute
// URLs pass through untouched.
type Renderer struct {
	MediaBaseURL string
}

// New creates a Renderer. mediaBaseURL may be empty.
func New(mediaBaseURL string) *Renderer {
	return &Renderer{MediaBaseURL: strings.TrimRight(mediaBaseURL, "/")}
}

// mediaURL applies the configured base URL to relative media paths.
func (r *Renderer) mediaURL(raw string) string {
	if raw == "" || r.MediaBaseURL == "" {
		return raw
	}
	if strings.HasPrefix(raw, "http://") || strings.HasPrefix(raw, "https://") {
		return raw
	}
	if !strings.HasPrefix(raw, "/") {
		return r.MediaBaseURL + "/" + raw
	}
	return r.MediaBaseURL + raw
}

// ElementHTML renders a single non-container element to its static
// placeholder fragment. Groups and background elements need tree context
// and are handled by the slide renderer, not here; they fall through to
// the empty string like any other unrenderable type.
func (r *Renderer) ElementHTML(el *models.Element) string {
	switch el.Type {
	case models.ElementHeading1:
		return "<h1>Heading # 1</h1>"
	case models.ElementHeading2:
		return "<h2>Heading # 2</h2>"
	case models.ElementHeading3:
		return "<h3>Heading # 3</h3>"
	case models.ElementHeading4:
		return "<h4>Heading # 4</h4>"
	case models.ElementParagraph:
		return "<p>Lorem ipsum dolor sit amet...</p>"
	case models.ElementOrderedBullets, models.ElementUnorderedBullets:
		tag := "ul"
		if el.Type == models.ElementOrderedBullets {
			tag = "ol"
		}
		return "<" + tag + ">\n" +
			"        <li>Heading # 4</li>\n" +
			"        <li>Heading # 4</li>\n" +
			"        <li>Heading # 4</li>\n" +
			"        <li>Heading # 4</li>\n" +
			"        <li>Heading # 4</li>\n" +
			"      </" + tag + ">"
	case models.ElementImage:
		src := placeholderImage
		alt := "Image"
		if el.Media != nil {
			if el.Media.URL != "" {
				src = r.mediaURL(el.Media.URL)
			}
			if el.Media.AlternativeText != "" {
				alt = el.Media.AlternativeText
			}
		}
		return `<img src="` + src + `" alt="` + alt + `" />`
	case models.ElementShape:
		return "<shape-node></shape-node>"
	default:
		return ""
	}
}

// backgroundElementHTML renders a background-element node as an anchored
// image tag, or nothing when the media reference is missing.
func (r *Renderer) backgroundElementHTML(el *models.Element) string {
	be := el.BackgroundElement
	if be == nil || be.Media == nil || be.Media.URL == "" {
		return ""
	}
	alt := be.Media.AlternativeText
	if alt == "" {
		alt = "Background Image"
	}
	return "\n          <img data-type='" + string(be.Position) + `-background' src="` +
		r.mediaURL(be.Media.URL) + `" alt="` + alt + `" />`
}
