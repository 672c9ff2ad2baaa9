// Package project validates that modularizer runs inside an Angular
// workspace and inspects the workspace for the installed Angular CLI.
package project

import "errors"

// Sentinel errors for the project package.
var (
	// ErrNotAngularProject indicates the root has no angular.json.
	ErrNotAngularProject = errors.New("this command must be run from the root of an Angular project")

	// ErrSourceDirMissing indicates the root has no src/app directory.
	ErrSourceDirMissing = errors.New("src/app directory not found")

	// ErrInvalidRoot indicates the given project root path is invalid or inaccessible.
	ErrInvalidRoot = errors.New("invalid project root path")

	// ErrAngularVersionUnknown indicates package.json does not pin a usable Angular version.
	ErrAngularVersionUnknown = errors.New("angular version could not be determined")
)
