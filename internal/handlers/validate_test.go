package handlers

import (
	"strings"
	"testing"

	"github.com/Abrar408/powerpresent-templates/internal/models"
)

func TestValidateTemplate(t *testing.T) {
	if msg := validateTemplate("pitch-deck", "sales", "A deck."); msg != "" {
		t.Errorf("valid template rejected: %s", msg)
	}
	if msg := validateTemplate("   ", "", ""); msg == "" {
		t.Error("blank name should be rejected")
	}
	if msg := validateTemplate(strings.Repeat("x", maxTemplateNameLen+1), "", ""); msg == "" {
		t.Error("overlong name should be rejected")
	}
	if msg := validateTemplate("ok", strings.Repeat("x", maxCategoryLen+1), ""); msg == "" {
		t.Error("overlong category should be rejected")
	}

	// The name ends up in the stylesheet file name.
	for _, name := range []string{"../escaped", "a/b", `a\b`, "dots..deck"} {
		if msg := validateTemplate(name, "", ""); msg == "" {
			t.Errorf("name %q with path characters should be rejected", name)
		}
	}
}

func TestValidateSlide(t *testing.T) {
	elements := []models.Element{{Type: models.ElementHeading1}}
	if msg := validateSlide("Intro", "default", elements); msg != "" {
		t.Errorf("valid slide rejected: %s", msg)
	}
	if msg := validateSlide("", "default", elements); msg == "" {
		t.Error("blank name should be rejected")
	}

	// Element validation runs at the boundary.
	tooDeep := []models.Element{{Type: models.ElementGroup, Children: []models.Element{
		{Type: models.ElementGroup, Children: []models.Element{
			{Type: models.ElementGroup, Children: []models.Element{
				{Type: models.ElementGroup, Children: []models.Element{
					{Type: models.ElementSpan},
				}},
			}},
		}},
	}}}
	if msg := validateSlide("Intro", "default", tooDeep); msg == "" {
		t.Error("overdeep element tree should be rejected")
	}
	if msg := validateSlide("Intro", "default", []models.Element{{Type: "blink"}}); msg == "" {
		t.Error("unknown element type should be rejected")
	}
}
