package ui

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"

	"github.com/CarsonBain/wins/internal/logging"
	"github.com/CarsonBain/wins/internal/theme"
)

// spinnerDoneMsg signals that the wrapped operation returned
type spinnerDoneMsg struct{}

// spinnerModel shows a spinner and a message until the operation finishes
type spinnerModel struct {
	interrupted bool
	message     string
	spinner     spinner.Model
}

func newSpinnerModel(message string) spinnerModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = theme.SpinnerStyle
	return spinnerModel{
		message: message,
		spinner: s,
	}
}

func (m spinnerModel) Init() tea.Cmd {
	return m.spinner.Tick
}

func (m spinnerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case spinnerDoneMsg:
		return m, tea.Quit
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.interrupted = true
			return m, tea.Quit
		}
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m spinnerModel) View() string {
	return fmt.Sprintf("%s %s\n", m.spinner.View(), m.message)
}

// RunWithSpinner runs fn while a spinner with message is drawn on stderr.
// Without a terminal fn runs as is. Ctrl+C cancels the context passed to fn.
func RunWithSpinner(ctx context.Context, message string, fn func(ctx context.Context) error) error {
	if !isTerminal(os.Stderr) {
		return fn(ctx)
	}
	return runWithSpinner(ctx, message, fn, tea.WithOutput(os.Stderr))
}

func runWithSpinner(ctx context.Context, message string, fn func(ctx context.Context) error, opts ...tea.ProgramOption) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	p := tea.NewProgram(newSpinnerModel(message), opts...)

	result := make(chan error, 1)
	go func() {
		err := fn(ctx)
		result <- err
		p.Send(spinnerDoneMsg{})
	}()

	final, runErr := p.Run()
	if m, ok := final.(spinnerModel); ok && m.interrupted {
		logging.Logger.Info("Operation interrupted", "message", message)
		cancel()
	}
	if runErr != nil {
		// The program never ran; the operation keeps going without a spinner
		logging.Logger.Warn("Spinner failed", "error", runErr)
	}

	return <-result
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
