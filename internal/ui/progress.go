// Package ui renders tool progress and results in the terminal.
package ui

import (
	"context"
	"fmt"
	"io"

	"github.com/Cyclone1070/fsnav/internal/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

// Operation is a unit of work that reports progress through the reporter
// carried by its context.
type Operation func(ctx context.Context) (string, error)

// SpinnerFactory creates a new spinner
type SpinnerFactory func() spinner.Model

// DefaultSpinner is the spinner used by the CLI.
func DefaultSpinner() spinner.Model {
	return spinner.New(spinner.WithSpinner(spinner.Dot), spinner.WithStyle(StatusWorkingStyle))
}

type eventMsg progress.Event

type operationDoneMsg struct{}

// progressModel shows a spinner with the latest status event until the event
// channel is closed.
type progressModel struct {
	title    string
	spinner  spinner.Model
	events   <-chan progress.Event
	status   string
	done     bool
	finished bool
}

func newProgressModel(title string, events <-chan progress.Event, spinnerFactory SpinnerFactory) progressModel {
	return progressModel{
		title:   title,
		spinner: spinnerFactory(),
		events:  events,
	}
}

func waitForEvent(events <-chan progress.Event) tea.Cmd {
	return func() tea.Msg {
		ev, ok := <-events
		if !ok {
			return operationDoneMsg{}
		}
		return eventMsg(ev)
	}
}

// Init implements tea.Model
func (m progressModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, waitForEvent(m.events))
}

// Update implements tea.Model
func (m progressModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case eventMsg:
		m.status = msg.Data.Description
		m.done = msg.Data.Done
		return m, waitForEvent(m.events)
	case operationDoneMsg:
		m.finished = true
		return m, tea.Quit
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}
	return m, nil
}

// View implements tea.Model
func (m progressModel) View() string {
	status := m.status
	if status == "" {
		status = "Starting..."
	}
	if m.finished || m.done {
		return fmt.Sprintf("%s %s\n", StatusDoneStyle.Render("✔"), StatusDoneStyle.Render(status))
	}
	return fmt.Sprintf("%s %s %s\n", TitleStyle.Render(m.title), m.spinner.View(), StatusWorkingStyle.Render(status))
}

// RunWithProgress runs op while a spinner on out shows its progress events.
// Events are also forwarded to the reporter in ctx, if any.
// It returns once both op and the display have finished.
func RunWithProgress(ctx context.Context, out io.Writer, title string, op Operation, spinnerFactory SpinnerFactory) (string, error) {
	if spinnerFactory == nil {
		spinnerFactory = DefaultSpinner
	}

	events := make(chan progress.Event, 16)
	program := tea.NewProgram(
		newProgressModel(title, events, spinnerFactory),
		tea.WithContext(ctx),
		tea.WithOutput(out),
		tea.WithInput(nil),
	)

	var result string
	var opErr error
	// Events still reach any reporter already carried by ctx.
	reporter := progress.Multi{progress.NewChannelReporter(events), progress.FromContext(ctx, nil)}
	go func() {
		defer close(events)
		result, opErr = op(progress.WithReporter(ctx, reporter))
	}()

	_, runErr := program.Run()

	// Wait for op before reading its result.
	for range events {
	}

	if opErr != nil {
		return "", opErr
	}
	if runErr != nil && ctx.Err() == nil {
		return result, fmt.Errorf("progress display failed: %w", runErr)
	}
	return result, nil
}
