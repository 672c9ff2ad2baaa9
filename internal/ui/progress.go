package ui

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Spinner shows an indeterminate activity indicator for one step and
// finishes with a success or failure line.
type Spinner interface {
	SetTitle(title string)
	Succeed(msg string)
	Fail(msg string)
	Stop()
}

// Progress creates spinners.
type Progress interface {
	Spinner(title string) Spinner
}

// progressImpl implements the Progress interface.
type progressImpl struct {
	theme    *Theme
	headless *HeadlessManager
	writer   io.Writer
}

// NewProgressWriter creates a Progress that writes to w. Spinners are
// always headless unless w is os.Stdout.
func NewProgressWriter(theme *Theme, hm *HeadlessManager, w io.Writer) Progress {
	return &progressImpl{theme: theme, headless: hm, writer: w}
}

// Spinner creates an indeterminate spinner.
// In headless mode it prints the title as a log line.
func (p *progressImpl) Spinner(title string) Spinner {
	if p.headless.IsHeadless() || p.theme.NoColor || p.writer != os.Stdout {
		return newHeadlessSpinner(p.theme, title, p.writer)
	}
	return newInteractiveSpinner(p.theme, title, p.writer)
}

// SuccessSymbol returns the themed check mark.
func SuccessSymbol(theme *Theme) string {
	return symbol(theme, "✓", theme.Colors.Success)
}

// FailureSymbol returns the themed cross.
func FailureSymbol(theme *Theme) string {
	return symbol(theme, "✗", theme.Colors.Error)
}

func symbol(theme *Theme, s, color string) string {
	if theme.NoColor {
		return s
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(color)).Render(s)
}

// --- interactiveSpinner ---

// spinnerTitleMsg is sent to update the spinner title.
type spinnerTitleMsg string

// spinnerStopMsg is sent to stop the spinner.
type spinnerStopMsg struct{}

// spinnerModel is the bubbletea Model for the animated spinner.
type spinnerModel struct {
	spinner spinner.Model
	title   string
	done    bool
}

func newSpinnerModel(theme *Theme, title string) spinnerModel {
	s := spinner.New(spinner.WithSpinner(spinner.Dot))
	if !theme.NoColor {
		s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Colors.Primary))
	}
	return spinnerModel{spinner: s, title: title}
}

func (m spinnerModel) Init() tea.Cmd {
	return m.spinner.Tick
}

func (m spinnerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case spinnerTitleMsg:
		m.title = string(msg)
		return m, nil
	case spinnerStopMsg:
		m.done = true
		return m, tea.Quit
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m spinnerModel) View() string {
	if m.done {
		return ""
	}
	return m.spinner.View() + " " + m.title + "\n"
}

// interactiveSpinner implements Spinner with an animated bubbles spinner.
type interactiveSpinner struct {
	theme   *Theme
	program *tea.Program
	writer  io.Writer
	once    sync.Once
}

func newInteractiveSpinner(theme *Theme, title string, w io.Writer) *interactiveSpinner {
	m := newSpinnerModel(theme, title)
	p := tea.NewProgram(m, spinnerProgramOptions(w)...)

	s := &interactiveSpinner{theme: theme, program: p, writer: w}

	go func() {
		_, _ = p.Run()
	}()

	return s
}

// spinnerProgramOptions keeps the terminal out of raw mode and leaves
// SIGINT to the caller, so Ctrl-C reaches the command context instead of
// only quitting the spinner.
func spinnerProgramOptions(w io.Writer) []tea.ProgramOption {
	return []tea.ProgramOption{
		tea.WithOutput(w),
		tea.WithInput(nil),
		tea.WithoutSignalHandler(),
	}
}

// SetTitle updates the spinner title.
func (s *interactiveSpinner) SetTitle(title string) {
	s.program.Send(spinnerTitleMsg(title))
}

// Stop halts the spinner.
func (s *interactiveSpinner) Stop() {
	s.once.Do(func() {
		s.program.Send(spinnerStopMsg{})
		s.program.Wait()
	})
}

// Succeed stops the spinner and prints msg with a check mark.
func (s *interactiveSpinner) Succeed(msg string) {
	s.Stop()
	_, _ = fmt.Fprintf(s.writer, "%s %s\n", SuccessSymbol(s.theme), msg)
}

// Fail stops the spinner and prints msg with a cross.
func (s *interactiveSpinner) Fail(msg string) {
	s.Stop()
	_, _ = fmt.Fprintf(s.writer, "%s %s\n", FailureSymbol(s.theme), msg)
}

// --- headlessSpinner ---

// headlessSpinner implements Spinner with plain text log output.
type headlessSpinner struct {
	theme   *Theme
	title   string
	writer  io.Writer
	stopped bool
}

// newHeadlessSpinner creates a headless spinner that prints the title.
func newHeadlessSpinner(theme *Theme, title string, w io.Writer) *headlessSpinner {
	s := &headlessSpinner{
		theme:  theme,
		title:  title,
		writer: w,
	}
	_, _ = fmt.Fprintf(w, "%s\n", title)
	return s
}

// SetTitle updates the spinner title and prints a log line.
func (s *headlessSpinner) SetTitle(title string) {
	s.title = title
	_, _ = fmt.Fprintf(s.writer, "%s\n", title)
}

// Stop halts the spinner.
func (s *headlessSpinner) Stop() {
	s.stopped = true
}

// Succeed prints msg with a check mark.
func (s *headlessSpinner) Succeed(msg string) {
	s.Stop()
	_, _ = fmt.Fprintf(s.writer, "%s %s\n", SuccessSymbol(s.theme), msg)
}

// Fail prints msg with a cross.
func (s *headlessSpinner) Fail(msg string) {
	s.Stop()
	_, _ = fmt.Fprintf(s.writer, "%s %s\n", FailureSymbol(s.theme), msg)
}
