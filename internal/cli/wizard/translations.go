package wizard

import (
	"errors"

	"github.com/modu-ai/modularizer/internal/naming"
)

// QuestionTranslation holds translated text for a question.
type QuestionTranslation struct {
	Title       string
	Description string
}

// UIStrings holds translated prompt chrome.
type UIStrings struct {
	Affirmative      string
	Negative         string
	ErrorRequired    string
	ErrorInvalidName string
}

// translations maps locale -> question ID -> translated text.
// English lives in DefaultQuestions.
var translations = map[string]map[string]QuestionTranslation{
	"pt": {
		IDModuleName: {
			Title:       "📦 Nome do módulo",
			Description: "Letras, números e hífens; convertido para kebab-case (ex.: userProfile → user-profile).",
		},
		IDService: {
			Title:       "🔧 Gerar service CRUD?",
			Description: "services/<módulo>.service.ts com getAll, getById, create, update e delete.",
		},
		IDGuard: {
			Title:       "🛡️  Gerar guard?",
			Description: "Delegado ao ng generate guard.",
		},
		IDLayout: {
			Title:       "🎨 Gerar layout?",
			Description: "Delegado ao ng generate component --type=layout.",
		},
		IDModels: {
			Title:       "📋 Gerar models?",
			Description: "models/<módulo>.model.ts e models/index.ts.",
		},
	},
}

var uiStrings = map[string]UIStrings{
	"en": {
		Affirmative:      "Yes",
		Negative:         "No",
		ErrorRequired:    "Module name is required",
		ErrorInvalidName: "Name must start with a letter and contain only letters, digits and hyphens",
	},
	"pt": {
		Affirmative:      "Sim",
		Negative:         "Não",
		ErrorRequired:    "Nome do módulo é obrigatório",
		ErrorInvalidName: "Nome deve começar com letra e conter apenas letras, números e hífens",
	},
}

// GetLocalizedQuestion returns a copy of q with translated text for locale.
// Unknown locales and untranslated IDs return q unchanged.
func GetLocalizedQuestion(q *Question, locale string) Question {
	result := *q
	byID, ok := translations[locale]
	if !ok {
		return result
	}
	tr, ok := byID[q.ID]
	if !ok {
		return result
	}
	if tr.Title != "" {
		result.Title = tr.Title
	}
	if tr.Description != "" {
		result.Description = tr.Description
	}
	return result
}

// GetUIStrings returns UI strings for locale, falling back to English.
func GetUIStrings(locale string) UIStrings {
	if s, ok := uiStrings[locale]; ok {
		return s
	}
	return uiStrings["en"]
}

// localizeError maps naming errors to translated messages.
func localizeError(err error, locale string) error {
	if err == nil {
		return nil
	}
	s := GetUIStrings(locale)
	switch {
	case errors.Is(err, naming.ErrNameRequired):
		return errors.New(s.ErrorRequired)
	case errors.Is(err, naming.ErrInvalidName):
		return errors.New(s.ErrorInvalidName)
	}
	return err
}
