package wizard

import (
	"strconv"

	"github.com/modu-ai/modularizer/internal/config"
	"github.com/modu-ai/modularizer/internal/naming"
)

// DefaultQuestions returns the module name prompt followed by one confirm
// per artifact kind. Confirm defaults come from the configuration.
func DefaultQuestions(defaults config.ArtifactDefaults) []Question {
	return []Question{
		{
			ID:          IDModuleName,
			Type:        QuestionTypeInput,
			Title:       "Module name",
			Description: "Letters, digits and hyphens; converted to kebab-case (e.g. userProfile → user-profile).",
			Required:    true,
			Validate:    naming.Validate,
		},
		{
			ID:          IDService,
			Type:        QuestionTypeConfirm,
			Title:       "Generate CRUD service?",
			Description: "services/<module>.service.ts with getAll, getById, create, update and delete.",
			Default:     strconv.FormatBool(defaults.Service),
		},
		{
			ID:          IDGuard,
			Type:        QuestionTypeConfirm,
			Title:       "Generate guard?",
			Description: "Delegated to ng generate guard.",
			Default:     strconv.FormatBool(defaults.Guard),
		},
		{
			ID:          IDLayout,
			Type:        QuestionTypeConfirm,
			Title:       "Generate layout?",
			Description: "Delegated to ng generate component --type=layout.",
			Default:     strconv.FormatBool(defaults.Layout),
		},
		{
			ID:          IDModels,
			Type:        QuestionTypeConfirm,
			Title:       "Generate models?",
			Description: "models/<module>.model.ts and models/index.ts.",
			Default:     strconv.FormatBool(defaults.Models),
		},
	}
}

// QuestionByID returns the question with the given ID, or nil.
func QuestionByID(questions []Question, id string) *Question {
	for i := range questions {
		if questions[i].ID == id {
			return &questions[i]
		}
	}
	return nil
}

// Prefilled returns questions with the module name prompt removed when name
// is already known, so a --name flag skips straight to the confirms.
func Prefilled(questions []Question, name string) []Question {
	if name == "" {
		return questions
	}
	out := make([]Question, 0, len(questions))
	for _, q := range questions {
		if q.ID == IDModuleName {
			continue
		}
		out = append(out, q)
	}
	return out
}
