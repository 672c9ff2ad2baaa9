// Package scaffold creates a module's directory tree under src/app and
// fills it with generated files. Directory creation failures are fatal;
// failures of individual artifacts are recorded and the run continues.
package scaffold

import "errors"

// Sentinel errors for the scaffold package.
var (
	// ErrStructure indicates the module directory tree could not be created.
	ErrStructure = errors.New("create directory structure")

	// ErrArtifact indicates a single artifact could not be generated.
	ErrArtifact = errors.New("generate artifact")
)
