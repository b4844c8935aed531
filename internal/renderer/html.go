// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package renderer

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/Abrar408/powerpresent-templates/internal/models"
)

// defaultBackgroundColor fills in when a slide carries no explicit color.
const defaultBackgroundColor = "#ffffff"

// SlideHTML renders one slide (or a variation shaped as a slide) into the
// editor's HTML fragment. Elements render in stored order, each repeated
// per its repeat count; groups become <block-node> wrappers around their
// recursively rendered children. The whole body is wrapped in the fixed
// slide-node/data-node envelope the editor expects.
func (r *Renderer) SlideHTML(slide *models.Slide, slideNumber int, templateName string) string {
	variant := slide.Variant
	if variant == "" {
		variant = "default"
	}

	var body strings.Builder
	for i := range slide.Elements {
		el := &slide.Elements[i]
		repeat := el.RepeatCount()

		for n := 0; n < repeat; n++ {
			switch {
			case el.Type == models.ElementGroup:
				body.WriteString("\n          <block-node>\n          ")
				if len(el.Children) > 0 {
					body.WriteString(r.childrenHTML(el.Children, "          ", n+1))
				}
				body.WriteString("</block-node>")
			case el.Type == models.ElementBackgroundElement && el.BackgroundElement != nil:
				body.WriteString(r.backgroundElementHTML(el))
			case el.Type == models.ElementParagraph && el.DataType == models.DataTypeNumberedBullet:
				// A numbered bullet repeated at the top level counts itself.
				body.WriteString("<p>" + strconv.Itoa(n+1) + "</p>")
			default:
				body.WriteString("\n      " + r.ElementHTML(el))
			}
		}
	}

	backgroundColor := slide.BackgroundColor
	if backgroundColor == "" {
		backgroundColor = defaultBackgroundColor
	}

	backgroundImage := ""
	if slide.BackgroundImage != nil && slide.BackgroundImage.URL != "" {
		alt := slide.BackgroundImage.AlternativeText
		if alt == "" {
			alt = "Background Image"
		}
		backgroundImage = `<img data-type="background-image" src="` +
			r.mediaURL(slide.BackgroundImage.URL) + `" alt="` + alt + `" />`
	}

	return fmt.Sprintf("<slide-node data-slide-number=\"%d\">\n"+
		"        <data-node style=\"background-color: %s;\" data-template=\"%s\" data-type=\"%s\" data-variant=\"%s\" data-slide-number=\"%d\">\n"+
		"         %s\n"+
		"        %s\n"+
		"        </data-node>\n"+
		"      </slide-node>\n",
		slideNumber, backgroundColor, templateName, slide.Name, variant, slideNumber,
		backgroundImage, body.String())
}

// childrenHTML recursively renders a group's children. parentRepeat is
// the enclosing group's current repeat iteration (1-based); numbered
// bullet paragraphs inside a group render that number, so a group with
// repeat=3 numbers its copies 1, 2, 3.
func (r *Renderer) childrenHTML(children []models.Element, indent string, parentRepeat int) string {
	var out strings.Builder

	for i := range children {
		child := &children[i]
		repeat := child.RepeatCount()

		for n := 0; n < repeat; n++ {
			switch {
			case child.Type == models.ElementGroup:
				out.WriteString("<block-node>\n" + indent)
				if len(child.Children) > 0 {
					out.WriteString(r.childrenHTML(child.Children, indent+"  ", n+1))
				}
				out.WriteString("</block-node>\n" + indent)
			case child.Type == models.ElementBackgroundElement && child.BackgroundElement != nil:
				out.WriteString(r.backgroundElementHTML(child))
			case child.Type == models.ElementParagraph && child.DataType == models.DataTypeNumberedBullet:
				out.WriteString("<p>" + strconv.Itoa(parentRepeat) + "</p>")
			default:
				out.WriteString(r.ElementHTML(child) + "\n" + indent)
			}
		}
	}

	return out.String()
}
