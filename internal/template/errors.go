// Package template renders the TypeScript files written into a generated
// module. Templates are embedded in the binary and executed with
// text/template in strict mode.
package template

import "errors"

// Sentinel errors for template rendering.
var (
	// ErrTemplateNotFound indicates the named template is not embedded.
	ErrTemplateNotFound = errors.New("template not found")

	// ErrMissingTemplateKey indicates the template referenced a missing key.
	ErrMissingTemplateKey = errors.New("missing template key")

	// ErrUnexpandedToken indicates template actions remained in rendered output.
	ErrUnexpandedToken = errors.New("unexpanded template token")
)
