// Package wizard collects the module name and artifact choices through a
// sequence of huh prompts.
package wizard

import (
	"errors"
)

// WizardResult holds the user's answers.
type WizardResult struct {
	ModuleName string // Raw module name as typed (validated, not normalized)

	Service bool // Generate the CRUD service
	Guard   bool // Generate the route guard
	Layout  bool // Generate the layout component
	Models  bool // Generate model and index files
}

// QuestionType represents the type of wizard question.
type QuestionType int

const (
	// QuestionTypeInput is a text input question.
	QuestionTypeInput QuestionType = iota
	// QuestionTypeConfirm is a yes/no question.
	QuestionTypeConfirm
)

// Question defines a single wizard question.
type Question struct {
	ID          string             // Unique identifier
	Type        QuestionType       // Input or Confirm
	Title       string             // Question title
	Description string             // Additional description
	Default     string             // Default value; "true"/"false" for confirms
	Required    bool               // Whether the field is required
	Validate    func(string) error // Extra validation for input questions
}

// Question IDs.
const (
	IDModuleName = "module_name"
	IDService    = "generate_service"
	IDGuard      = "generate_guard"
	IDLayout     = "generate_layout"
	IDModels     = "generate_models"
)

// Error definitions for the wizard package.
var (
	// ErrCancelled is returned when the user cancels the wizard.
	ErrCancelled = errors.New("wizard cancelled by user")
	// ErrNoQuestions is returned when no questions are provided.
	ErrNoQuestions = errors.New("no questions provided")
)
