// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package publisher persists compiled template stylesheets. Writing the
// file is deliberately separate from rendering so the two stay
// independently testable; the by-name handler chains them to keep the
// original fetch-and-publish behavior.
package publisher

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
)

// Publisher writes template stylesheets into a fixed output directory,
// one file per template, overwriting on every publish. Two concurrent
// publishes of the same template race last-writer-wins; different
// templates never collide since the file is keyed by template name.
type Publisher struct {
	dir string
}

// New creates a Publisher writing into dir (created on first publish).
func New(dir string) *Publisher {
	return &Publisher{dir: dir}
}

// FilePath returns where the named template's stylesheet is written.
func (p *Publisher) FilePath(templateName string) string {
	return filepath.Join(p.dir, templateName+"-template.scss")
}

// Scaffold wraps a template's combined SCSS in the fixed outer structure
// that scopes it under the editor's data-node tree.
func Scaffold(templateName, combinedSCSS string) string {
	return fmt.Sprintf(`.tiptap.ProseMirror {
  .node-dataNode {
    display: block;
    position: relative;
    width: 100%%;
    height: 100%%;
    box-sizing: border-box;
    /* Default styling */
    background-color: transparent;

    .tiptap-data-node {
    &.template-%s {
 %s
}
    }}}`, templateName, combinedSCSS)
}

// Publish wraps the combined SCSS in the outer scaffold and writes it to
// the template's stylesheet file, replacing any previous version. Names
// that would resolve outside the styles directory are rejected; the file
// must land directly under it. Returns the written path.
func (p *Publisher) Publish(templateName, combinedSCSS string) (string, error) {
	path := p.FilePath(templateName)
	if filepath.Dir(path) != filepath.Clean(p.dir) {
		return "", fmt.Errorf("invalid template name %q", templateName)
	}

	if err := os.MkdirAll(p.dir, 0o755); err != nil {
		return "", fmt.Errorf("create styles dir: %w", err)
	}
	if err := os.WriteFile(path, []byte(Scaffold(templateName, combinedSCSS)), 0o644); err != nil {
		return "", fmt.Errorf("write stylesheet %s: %w", path, err)
	}

	slog.Info("stylesheet published", "template", templateName, "path", path)
	return path, nil
}
