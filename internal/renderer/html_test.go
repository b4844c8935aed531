// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package renderer

import (
	"strings"
	"testing"

	"github.com/Abrar408/powerpresent-templates/internal/models"
)

func TestSlideHTMLEnvelope(t *testing.T) {
	r := New("")
	slide := &models.Slide{
		Name:            "Intro",
		Variant:         "default",
		BackgroundColor: "#eee",
		Elements:        []models.Element{{Type: models.ElementHeading1}},
	}

	want := "<slide-node data-slide-number=\"1\">\n" +
		"        <data-node style=\"background-color: #eee;\" data-template=\"Demo\" data-type=\"Intro\" data-variant=\"default\" data-slide-number=\"1\">\n" +
		"         \n" +
		"        \n" +
		"      <h1>Heading # 1</h1>\n" +
		"        </data-node>\n" +
		"      </slide-node>\n"

	if got := r.SlideHTML(slide, 1, "Demo"); got != want {
		t.Errorf("SlideHTML:\n got %q\nwant %q", got, want)
	}
}

func TestSlideHTMLDefaults(t *testing.T) {
	r := New("")
	slide := &models.Slide{Name: "Blank"}

	got := r.SlideHTML(slide, 7, "Demo")
	if !strings.Contains(got, `data-variant="default"`) {
		t.Error("empty variant should render as default")
	}
	if !strings.Contains(got, "background-color: #ffffff;") {
		t.Error("empty background color should render as #ffffff")
	}
	if !strings.Contains(got, `data-slide-number="7"`) {
		t.Error("slide number not threaded through")
	}
}

func TestSlideHTMLElementPlaceholders(t *testing.T) {
	r := New("")
	slide := &models.Slide{
		Name: "Kitchen",
		Elements: []models.Element{
			{Type: models.ElementHeading2},
			{Type: models.ElementParagraph},
			{Type: models.ElementUnorderedBullets},
			{Type: models.ElementOrderedBullets},
			{Type: models.ElementShape},
			{Type: models.ElementImage},
		},
	}

	got := r.SlideHTML(slide, 1, "Demo")
	for _, fragment := range []string{
		"<h2>Heading # 2</h2>",
		"<p>Lorem ipsum dolor sit amet...</p>",
		"<ul>\n        <li>Heading # 4</li>",
		"<ol>\n        <li>Heading # 4</li>",
		"<shape-node></shape-node>",
		`<img src="/assets/placeholder.png" alt="Image" />`,
	} {
		if !strings.Contains(got, fragment) {
			t.Errorf("missing fragment %q in:\n%s", fragment, got)
		}
	}
	if n := strings.Count(got, "<li>Heading # 4</li>"); n != 10 {
		t.Errorf("expected 10 list items across both lists, got %d", n)
	}
}

func TestSlideHTMLRepeat(t *testing.T) {
	r := New("")
	slide := &models.Slide{
		Name: "Rep",
		Elements: []models.Element{
			{Type: models.ElementHeading3, Repeat: 3},
			{Type: models.ElementHeading4, Repeat: -1},
		},
	}

	got := r.SlideHTML(slide, 1, "Demo")
	if n := strings.Count(got, "<h3>Heading # 3</h3>"); n != 3 {
		t.Errorf("repeat=3: got %d copies, want 3", n)
	}
	if strings.Contains(got, "<h4>") {
		t.Error("negative repeat should skip the element")
	}
}

func TestSlideHTMLGroupWithNumberedBullets(t *testing.T) {
	r := New("")
	slide := &models.Slide{
		Name: "Steps",
		Elements: []models.Element{{
			Type:   models.ElementGroup,
			Repeat: 3,
			Children: []models.Element{
				{Type: models.ElementParagraph, DataType: models.DataTypeNumberedBullet},
				{Type: models.ElementParagraph},
			},
		}},
	}

	got := r.SlideHTML(slide, 1, "Demo")
	if n := strings.Count(got, "<block-node>"); n != 3 {
		t.Errorf("group repeat=3: got %d wrappers, want 3", n)
	}
	// Each repetition numbers its bullet with the group's iteration.
	for _, marker := range []string{"<p>1</p>", "<p>2</p>", "<p>3</p>"} {
		if !strings.Contains(got, marker) {
			t.Errorf("missing numbered bullet %q in:\n%s", marker, got)
		}
	}
	if n := strings.Count(got, "<p>Lorem ipsum dolor sit amet...</p>"); n != 3 {
		t.Errorf("plain paragraph: got %d copies, want 3", n)
	}
}

func TestSlideHTMLNestedGroups(t *testing.T) {
	r := New("")
	slide := &models.Slide{
		Name: "Nest",
		Elements: []models.Element{{
			Type: models.ElementGroup,
			Children: []models.Element{{
				Type:     models.ElementGroup,
				Children: []models.Element{{Type: models.ElementSpan}},
			}},
		}},
	}

	got := r.SlideHTML(slide, 1, "Demo")
	if n := strings.Count(got, "<block-node>"); n != 2 {
		t.Errorf("nested groups: got %d wrappers, want 2", n)
	}
	if n := strings.Count(got, "</block-node>"); n != 2 {
		t.Errorf("nested groups: got %d closers, want 2", n)
	}
}

func TestSlideHTMLBackgroundImage(t *testing.T) {
	r := New("")
	slide := &models.Slide{
		Name:            "Bg",
		BackgroundImage: &models.MediaRef{URL: "/uploads/bg.jpg", AlternativeText: "sunset"},
	}

	got := r.SlideHTML(slide, 1, "Demo")
	if !strings.Contains(got, `<img data-type="background-image" src="/uploads/bg.jpg" alt="sunset" />`) {
		t.Errorf("background image tag missing in:\n%s", got)
	}
}

func TestSlideHTMLBackgroundElement(t *testing.T) {
	r := New("")
	slide := &models.Slide{
		Name: "Anchored",
		Elements: []models.Element{
			{
				Type: models.ElementBackgroundElement,
				BackgroundElement: &models.BackgroundElement{
					Media:    &models.MediaRef{URL: "/uploads/corner.png"},
					Position: models.PositionTopRight,
				},
			},
			// No payload: renders nothing but must not panic.
			{Type: models.ElementBackgroundElement},
		},
	}

	got := r.SlideHTML(slide, 1, "Demo")
	if !strings.Contains(got, `<img data-type='top-right-background' src="/uploads/corner.png" alt="Background Image" />`) {
		t.Errorf("anchored background missing in:\n%s", got)
	}
}

func TestMediaURLPrefixing(t *testing.T) {
	r := New("https://cdn.example.com/")

	tests := []struct {
		in, want string
	}{
		{"/uploads/a.png", "https://cdn.example.com/uploads/a.png"},
		{"uploads/a.png", "https://cdn.example.com/uploads/a.png"},
		{"https://other.host/a.png", "https://other.host/a.png"},
		{"http://other.host/a.png", "http://other.host/a.png"},
		{"", ""},
	}
	for _, tt := range tests {
		el := models.Element{Type: models.ElementImage, Media: &models.MediaRef{URL: tt.in}}
		got := r.ElementHTML(&el)
		wantSrc := tt.want
		if tt.in == "" {
			wantSrc = "/assets/placeholder.png"
		}
		if !strings.Contains(got, `src="`+wantSrc+`"`) {
			t.Errorf("url %q: got %q, want src %q", tt.in, got, wantSrc)
		}
	}
}
