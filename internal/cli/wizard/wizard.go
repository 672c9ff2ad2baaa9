package wizard

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// Wizard brand colors (dark variants).
const (
	ColorPrimary   = "#DA7756"
	ColorSecondary = "#7C3AED"
	ColorSuccess   = "#10B981"
	ColorError     = "#EF4444"
	ColorText      = "#F3F4F6"
	ColorMuted     = "#9CA3AF"
	ColorBorder    = "#4B5563"
)

// Options configures Run.
type Options struct {
	Locale string // "en" or "pt"; unknown locales use English

	// Accessible switches huh to line-based prompts for screen readers.
	Accessible bool
	Input      io.Reader
	Output     io.Writer
}

// answer is the value bound to a single field.
type answer struct {
	text    string
	confirm bool
}

// value returns the answer in the string form saveAnswer expects.
func (a *answer) value(t QuestionType) string {
	if t == QuestionTypeConfirm {
		return strconv.FormatBool(a.confirm)
	}
	return strings.TrimSpace(a.text)
}

// Run executes the wizard and returns the result. Each question runs as its
// own huh.Form. A preset result (e.g. a --name flag) is used as the starting
// point and only the given questions overwrite it.
func Run(questions []Question, preset *WizardResult, opts Options) (*WizardResult, error) {
	if len(questions) == 0 {
		return nil, ErrNoQuestions
	}

	result := &WizardResult{}
	if preset != nil {
		*result = *preset
	}
	theme := newWizardTheme()

	for i := range questions {
		q := &questions[i]

		a := &answer{}
		g := buildQuestionGroup(q, a, opts.Locale)
		form := huh.NewForm(g).
			WithTheme(theme).
			WithAccessible(opts.Accessible)
		if opts.Input != nil {
			form = form.WithInput(opts.Input)
		}
		if opts.Output != nil {
			form = form.WithOutput(opts.Output)
		}

		if err := form.Run(); err != nil {
			if errors.Is(err, huh.ErrUserAborted) {
				return nil, ErrCancelled
			}
			return nil, fmt.Errorf("wizard error: %w", err)
		}
		saveAnswer(q.ID, a.value(q.Type), result)
	}

	return result, nil
}

// buildQuestionGroup creates a huh.Group for a single question bound to a.
func buildQuestionGroup(q *Question, a *answer, locale string) *huh.Group {
	var field huh.Field

	switch q.Type {
	case QuestionTypeInput:
		field = buildInputField(q, a, locale)
	case QuestionTypeConfirm:
		field = buildConfirmField(q, a, locale)
	}

	return huh.NewGroup(field)
}

// buildInputField creates a huh.Input field for an input-type question.
func buildInputField(q *Question, a *answer, locale string) *huh.Input {
	lq := GetLocalizedQuestion(q, locale)
	if q.Default != "" {
		a.text = q.Default
	}

	inp := huh.NewInput().
		Title(lq.Title).
		Description(lq.Description).
		Value(&a.text)

	if q.Default != "" {
		inp = inp.Placeholder(q.Default)
	}

	required := q.Required
	defVal := q.Default
	validate := q.Validate
	inp = inp.Validate(func(val string) error {
		v := strings.TrimSpace(val)
		if v == "" && defVal != "" {
			v = defVal
		}
		if required && v == "" {
			return errors.New(GetUIStrings(locale).ErrorRequired)
		}
		if validate != nil {
			return localizeError(validate(v), locale)
		}
		return nil
	})

	return inp
}

// buildConfirmField creates a huh.Confirm field for a yes/no question.
// Anything other than a "false" default preselects yes.
func buildConfirmField(q *Question, a *answer, locale string) *huh.Confirm {
	lq := GetLocalizedQuestion(q, locale)
	ui := GetUIStrings(locale)
	a.confirm = q.Default != "false"

	return huh.NewConfirm().
		Title(lq.Title).
		Description(lq.Description).
		Affirmative(ui.Affirmative).
		Negative(ui.Negative).
		Value(&a.confirm)
}

// saveAnswer stores an answer in the result.
func saveAnswer(id, value string, result *WizardResult) {
	switch id {
	case IDModuleName:
		result.ModuleName = value
	case IDService:
		result.Service = value == "true"
	case IDGuard:
		result.Guard = value == "true"
	case IDLayout:
		result.Layout = value == "true"
	case IDModels:
		result.Models = value == "true"
	}
}

// newWizardTheme creates a huh.Theme with the modularizer palette.
func newWizardTheme() *huh.Theme {
	t := huh.ThemeBase()

	primary := lipgloss.AdaptiveColor{Light: "#C45A3C", Dark: ColorPrimary}
	secondary := lipgloss.AdaptiveColor{Light: "#5B21B6", Dark: ColorSecondary}
	green := lipgloss.AdaptiveColor{Light: "#059669", Dark: ColorSuccess}
	red := lipgloss.AdaptiveColor{Light: "#DC2626", Dark: ColorError}
	text := lipgloss.AdaptiveColor{Light: "#111827", Dark: ColorText}
	muted := lipgloss.AdaptiveColor{Light: "#9CA3AF", Dark: ColorMuted}
	border := lipgloss.AdaptiveColor{Light: "#D1D5DB", Dark: ColorBorder}

	t.Focused.Base = t.Focused.Base.BorderForeground(border)
	t.Focused.Card = t.Focused.Base
	t.Focused.Title = t.Focused.Title.Foreground(primary).Bold(true)
	t.Focused.Description = t.Focused.Description.Foreground(muted)
	t.Focused.ErrorIndicator = t.Focused.ErrorIndicator.Foreground(red)
	t.Focused.ErrorMessage = t.Focused.ErrorMessage.Foreground(red)
	t.Focused.SelectedOption = t.Focused.SelectedOption.Foreground(green)
	t.Focused.TextInput.Cursor = t.Focused.TextInput.Cursor.Foreground(primary)
	t.Focused.TextInput.Placeholder = t.Focused.TextInput.Placeholder.Foreground(muted)
	t.Focused.TextInput.Prompt = t.Focused.TextInput.Prompt.Foreground(secondary)
	t.Focused.FocusedButton = t.Focused.FocusedButton.
		Foreground(lipgloss.AdaptiveColor{Light: "#FFFFFF", Dark: "#FFFFFF"}).
		Background(primary)
	t.Focused.BlurredButton = t.Focused.BlurredButton.
		Foreground(text).
		Background(lipgloss.AdaptiveColor{Light: "#E5E7EB", Dark: "#374151"})
	t.Focused.Next = t.Focused.FocusedButton

	t.Blurred = t.Focused
	t.Blurred.Base = t.Focused.Base.BorderStyle(lipgloss.HiddenBorder())
	t.Blurred.Card = t.Blurred.Base
	t.Blurred.NextIndicator = lipgloss.NewStyle()
	t.Blurred.PrevIndicator = lipgloss.NewStyle()

	t.Group.Title = t.Focused.Title
	t.Group.Description = t.Focused.Description

	return t
}
