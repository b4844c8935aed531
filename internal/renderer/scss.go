// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package renderer

import (
	"strings"

	"github.com/Abrar408/powerpresent-templates/internal/models"
)

// SlideSCSS renders one slide's style rules as a nested SCSS fragment
// scoped by slide type and variant. Group elements open a block for their
// resolved selector even when childless, nesting any children's rules one
// level deeper;
// leaf elements only emit a rule when they carry a style object and
// resolve to a non-empty selector. Indentation grows two spaces per
// nesting level to keep the published file stable across renders.
func (r *Renderer) SlideSCSS(slide *models.Slide) string {
	variant := slide.Variant
	if variant == "" {
		variant = "default"
	}
	backgroundColor := slide.BackgroundColor
	if backgroundColor == "" {
		backgroundColor = defaultBackgroundColor
	}

	var b strings.Builder
	b.WriteString("&.type-" + slide.Name + " {\n")
	b.WriteString("  &.variant-" + variant + " {\n")
	b.WriteString("    .data-node-content {\n")
	b.WriteString("      background-color: " + backgroundColor + ";\n")
	b.WriteString("      >div[data-node-view-content-react][data-node-view-wrapper] {\n")

	if slideStyles := Flatten(slide.Style); slideStyles != "" {
		b.WriteString("        " + slideStyles + "\n")
	}

	for i := range slide.Elements {
		el := &slide.Elements[i]

		if el.Type == models.ElementGroup {
			selector := selectorForGroup(el)

			if len(el.Style) > 0 {
				groupStyles := Flatten(el.Style)
				if groupStyles == "" {
					continue
				}
				b.WriteString("        " + selector + " {\n          " + groupStyles)
				if children := r.childrenSCSS(el.Children, "          "); children != "" {
					b.WriteString("\n" + children)
				}
				b.WriteString("\n        }\n")
			} else {
				// Group without styles still opens its block to host children.
				b.WriteString("        " + selector + " {\n")
				b.WriteString(r.childrenSCSS(el.Children, "          "))
				b.WriteString("        }\n")
			}
			continue
		}

		b.WriteString(r.elementSCSS(el))
	}

	b.WriteString("\n      }\n")
	b.WriteString("    }\n")
	b.WriteString("  }\n")
	b.WriteString("}")
	return b.String()
}

// childrenSCSS emits rules for a group's children, one indentation level
// below the parent. Nested groups recurse with two more spaces; leaf
// children emit a rule only when styled and resolvable to a selector.
func (r *Renderer) childrenSCSS(children []models.Element, indent string) string {
	var b strings.Builder

	for i := range children {
		child := &children[i]

		if child.Type == models.ElementGroup {
			selector := selectorForGroup(child)

			if len(child.Style) > 0 {
				styles := Flatten(child.Style)
				if styles == "" {
					continue
				}
				b.WriteString("\n" + indent + "  " + selector + " {\n" + indent + "    " +
					reindent(styles, indent+"    "))
				b.WriteString(r.childrenSCSS(child.Children, indent+"    "))
				b.WriteString("\n" + indent + "  }")
			} else {
				b.WriteString("\n" + indent + "  " + selector + " {")
				b.WriteString(r.childrenSCSS(child.Children, indent+"    "))
				b.WriteString("\n" + indent + "  }")
			}
			continue
		}

		if len(child.Style) == 0 {
			continue
		}
		styles := Flatten(child.Style)
		if styles == "" {
			continue
		}
		selector := SelectorFor(child)
		if selector == "" {
			continue
		}
		b.WriteString("\n\n" + indent + "  " + selector + " {\n" + indent + "    " +
			reindent(styles, indent+"    ") + "\n" + indent + "  }")
	}

	return b.String()
}

// elementSCSS emits the rule for a styled top-level leaf element, or
// nothing when it has no styles or no resolvable selector.
func (r *Renderer) elementSCSS(el *models.Element) string {
	if len(el.Style) == 0 {
		return ""
	}
	styles := Flatten(el.Style)
	if styles == "" {
		return ""
	}
	selector := SelectorFor(el)
	if selector == "" {
		return ""
	}
	return "        " + selector + " {\n          " + styles + "\n        }\n"
}

// reindent moves flattened declarations from the base style indentation
// to the given deeper indentation.
func reindent(styles, indent string) string {
	return strings.ReplaceAll(styles, styleIndent, "\n"+indent)
}
