package project

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/modu-ai/modularizer/internal/defs"
)

// ValidateAngularRoot confirms root is an Angular workspace root: it must
// be a directory containing angular.json and src/app.
func ValidateAngularRoot(root string) error {
	root = filepath.Clean(root)
	if err := validateRoot(root); err != nil {
		return err
	}

	if _, err := os.Stat(filepath.Join(root, defs.AngularJSON)); err != nil {
		return fmt.Errorf("%w (no %s in %s)", ErrNotAngularProject, defs.AngularJSON, root)
	}

	info, err := os.Stat(AppDir(root))
	if err != nil || !info.IsDir() {
		return fmt.Errorf("%w in %s", ErrSourceDirMissing, root)
	}

	return nil
}

// AppDir returns <root>/src/app.
func AppDir(root string) string {
	return filepath.Join(root, defs.SrcDir, defs.AppDir)
}

// ResolveRoot returns the absolute project root. An empty dir means the
// current working directory.
func ResolveRoot(dir string) (string, error) {
	if dir == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("get working directory: %w", err)
		}
		dir = cwd
	}
	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("resolve absolute path: %w", err)
	}
	return abs, nil
}

func validateRoot(root string) error {
	info, err := os.Stat(root)
	if err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidRoot, root)
	}
	if !info.IsDir() {
		return fmt.Errorf("%w: %s is not a directory", ErrInvalidRoot, root)
	}
	return nil
}
