package scaffold

import (
	"fmt"
	"path/filepath"

	"github.com/modu-ai/modularizer/internal/defs"
	"github.com/modu-ai/modularizer/internal/naming"
)

// Module is the immutable description of one generated module. It is
// passed by value to every generation step.
type Module struct {
	ProjectRoot string // absolute project root
	Name        string // kebab-case identifier, used for paths
	TypeName    string // PascalCase identifier, used for type names
}

// NewModule validates rawName and derives the kebab-case and PascalCase
// identifiers for a module in projectRoot.
func NewModule(projectRoot, rawName string) (Module, error) {
	cleaned := naming.Clean(rawName)
	if err := naming.Validate(cleaned); err != nil {
		return Module{}, fmt.Errorf("invalid module name %q: %w", rawName, err)
	}
	name := naming.KebabCase(cleaned)
	return Module{
		ProjectRoot: filepath.Clean(projectRoot),
		Name:        name,
		TypeName:    naming.PascalCase(name),
	}, nil
}

// Path returns <root>/src/app/<name>.
func (m Module) Path() string {
	return filepath.Join(m.ProjectRoot, defs.SrcDir, defs.AppDir, m.Name)
}

// RelPath returns src/app/<name>, for display.
func (m Module) RelPath() string {
	return filepath.ToSlash(filepath.Join(defs.SrcDir, defs.AppDir, m.Name))
}

// Dir returns the absolute path of one of the module subdirectories.
func (m Module) Dir(sub string) string {
	return filepath.Join(m.Path(), sub)
}

// ServiceFile returns services/<name>.service.ts.
func (m Module) ServiceFile() string {
	return filepath.Join(m.Dir(defs.ServicesDir), m.Name+".service.ts")
}

// ModelFile returns models/<name>.model.ts.
func (m Module) ModelFile() string {
	return filepath.Join(m.Dir(defs.ModelsDir), m.Name+".model.ts")
}

// IndexFile returns models/index.ts.
func (m Module) IndexFile() string {
	return filepath.Join(m.Dir(defs.ModelsDir), "index.ts")
}

// Rel returns path relative to the project root with forward slashes.
func (m Module) Rel(path string) string {
	rel, err := filepath.Rel(m.ProjectRoot, path)
	if err != nil {
		return filepath.ToSlash(path)
	}
	return filepath.ToSlash(rel)
}
