package project

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/Masterminds/semver/v3"

	"github.com/modu-ai/modularizer/internal/defs"
)

// LayoutTypeMinVersion is the first Angular CLI release that accepts
// `ng generate component --type`.
var LayoutTypeMinVersion = semver.MustParse("20.0.0")

// packageJSON is used for parsing package.json dependencies.
type packageJSON struct {
	Dependencies    map[string]string `json:"dependencies"`
	DevDependencies map[string]string `json:"devDependencies"`
}

// angularPackages lists the dependencies consulted for the Angular version,
// in order of preference.
var angularPackages = []string{
	"@angular/cli",
	"@angular/core",
}

// DetectAngularVersion reads package.json under root and returns the lowest
// version allowed by the @angular/cli (or @angular/core) requirement.
func DetectAngularVersion(root string) (*semver.Version, error) {
	data, err := os.ReadFile(filepath.Join(filepath.Clean(root), defs.PackageJSON))
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", defs.PackageJSON, err)
	}

	var pkg packageJSON
	if err := json.Unmarshal(data, &pkg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", defs.PackageJSON, err)
	}

	for _, name := range angularPackages {
		spec, ok := pkg.DevDependencies[name]
		if !ok {
			spec, ok = pkg.Dependencies[name]
		}
		if !ok {
			continue
		}
		v, err := parseRequirement(spec)
		if err != nil {
			return nil, fmt.Errorf("%w: %s %q", ErrAngularVersionUnknown, name, spec)
		}
		return v, nil
	}

	return nil, fmt.Errorf("%w: no @angular dependency in %s", ErrAngularVersionUnknown, defs.PackageJSON)
}

// SupportsLayoutType reports whether v accepts the --type component flag.
func SupportsLayoutType(v *semver.Version) bool {
	return v != nil && !v.LessThan(LayoutTypeMinVersion)
}

// parseRequirement extracts the base version from an npm requirement such
// as "^20.1.0", "~19.2.3" or ">=18.0.0 <19".
func parseRequirement(spec string) (*semver.Version, error) {
	fields := strings.Fields(spec)
	if len(fields) == 0 {
		return nil, ErrAngularVersionUnknown
	}
	base := strings.TrimLeft(fields[0], "^~>=<v")
	return semver.NewVersion(base)
}
