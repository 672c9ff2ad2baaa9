package template

import (
	"bytes"
	"embed"
	"fmt"
	"io/fs"
	"regexp"
	"text/template"
)

//go:embed templates/*.tmpl
var embeddedTemplates embed.FS

// Template names under the embedded filesystem.
const (
	ServiceTemplate = "service.ts.tmpl"
	ModelTemplate   = "model.ts.tmpl"
	IndexTemplate   = "index.ts.tmpl"
)

// unexpandedTokenPattern detects leftover template actions in rendered output.
// TypeScript template literals (${...}) are legitimate output and are not matched.
var unexpandedTokenPattern = regexp.MustCompile(`\{\{\s*\.?[A-Za-z_][A-Za-z0-9_.]*\s*\}\}`)

// EmbeddedTemplates returns the module templates rooted at the templates directory.
func EmbeddedTemplates() (fs.FS, error) {
	return fs.Sub(embeddedTemplates, "templates")
}

// Renderer renders Go text/template files with strict mode enabled.
type Renderer interface {
	// Render parses the named template and executes it with the given data.
	// Returns ErrMissingTemplateKey if a key is missing and
	// ErrUnexpandedToken if template actions remain after rendering.
	Render(templateName string, data any) ([]byte, error)
}

// renderer is the concrete implementation of Renderer.
type renderer struct {
	fsys fs.FS
}

// NewRenderer creates a Renderer backed by the given filesystem.
func NewRenderer(fsys fs.FS) Renderer {
	return &renderer{fsys: fsys}
}

// NewEmbeddedRenderer creates a Renderer over the embedded module templates.
func NewEmbeddedRenderer() (Renderer, error) {
	fsys, err := EmbeddedTemplates()
	if err != nil {
		return nil, fmt.Errorf("load embedded templates: %w", err)
	}
	return NewRenderer(fsys), nil
}

// Render parses and executes a template with strict mode (missingkey=error).
func (r *renderer) Render(templateName string, data any) ([]byte, error) {
	content, err := fs.ReadFile(r.fsys, templateName)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrTemplateNotFound, templateName)
	}

	tmpl, err := template.New(templateName).
		Option("missingkey=error").
		Parse(string(content))
	if err != nil {
		return nil, fmt.Errorf("template parse %q: %w", templateName, err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMissingTemplateKey, err)
	}

	result := buf.Bytes()
	if loc := unexpandedTokenPattern.Find(result); loc != nil {
		return nil, fmt.Errorf("%w: found %q", ErrUnexpandedToken, string(loc))
	}

	return result, nil
}
