package defs

import "os"

// Angular project markers read by the environment validator.
const (
	// AngularJSON is the Angular workspace configuration file.
	AngularJSON = "angular.json"

	// PackageJSON is the npm manifest used to detect the Angular CLI version.
	PackageJSON = "package.json"

	// SrcDir is the conventional source directory.
	SrcDir = "src"

	// AppDir is the application directory under SrcDir.
	AppDir = "app"

	// ConfigYAML is the optional modularizer configuration file in the project root.
	ConfigYAML = ".modularizer.yaml"
)

// Subdirectories created under every module.
const (
	ServicesDir   = "services"
	LayoutsDir    = "layouts"
	ComponentsDir = "components"
	ModelsDir     = "models"
)

// File permissions for generated content.
const (
	DirPerm  os.FileMode = 0o755
	FilePerm os.FileMode = 0o644
)
