package scaffold

import (
	"fmt"
	"os"

	"github.com/modu-ai/modularizer/internal/defs"
)

// Subdirs lists the directories created under every module.
var Subdirs = []string{
	defs.ServicesDir,
	defs.LayoutsDir,
	defs.ComponentsDir,
	defs.ModelsDir,
}

// CreateStructure creates the module directory and its subdirectories.
// Existing directories are left untouched. It returns the module-relative
// paths of the directory tree, in creation order.
func CreateStructure(m Module) ([]string, error) {
	dirs := make([]string, 0, len(Subdirs)+1)

	if err := os.MkdirAll(m.Path(), defs.DirPerm); err != nil {
		return nil, fmt.Errorf("%w: mkdir %s: %w", ErrStructure, m.Path(), err)
	}
	dirs = append(dirs, m.RelPath())

	for _, sub := range Subdirs {
		dir := m.Dir(sub)
		if err := os.MkdirAll(dir, defs.DirPerm); err != nil {
			return dirs, fmt.Errorf("%w: mkdir %s: %w", ErrStructure, dir, err)
		}
		dirs = append(dirs, m.Rel(dir))
	}
	return dirs, nil
}
