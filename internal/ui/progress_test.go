package ui

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/Cyclone1070/fsnav/internal/progress"
	"github.com/Cyclone1070/fsnav/internal/testing/mocks"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testSpinner() spinner.Model {
	return spinner.New(spinner.WithSpinner(spinner.Line))
}

func TestProgressModel_EventUpdatesStatus(t *testing.T) {
	events := make(chan progress.Event, 1)
	m := newProgressModel("list_files", events, testSpinner)

	assert.Contains(t, m.View(), "Starting...")

	next, cmd := m.Update(eventMsg(progress.Working("Finding files in /tmp.")))
	pm := next.(progressModel)
	assert.NotNil(t, cmd)
	assert.Equal(t, "Finding files in /tmp.", pm.status)
	assert.False(t, pm.done)
	assert.Contains(t, pm.View(), "list_files")
	assert.Contains(t, pm.View(), "Finding files in /tmp.")

	next, _ = pm.Update(eventMsg(progress.Finished("Found 2 files from /tmp.")))
	pm = next.(progressModel)
	assert.True(t, pm.done)
	assert.Contains(t, pm.View(), "✔")
	assert.NotContains(t, pm.View(), "list_files")
}

func TestProgressModel_ClosedChannelQuits(t *testing.T) {
	events := make(chan progress.Event)
	close(events)

	msg := waitForEvent(events)()
	assert.IsType(t, operationDoneMsg{}, msg)

	m := newProgressModel("read_file", events, testSpinner)
	next, cmd := m.Update(msg)
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	assert.True(t, next.(progressModel).finished)
}

func TestRunWithProgress_ReturnsResult(t *testing.T) {
	var out bytes.Buffer

	result, err := RunWithProgress(context.Background(), &out, "search_file_name", func(ctx context.Context) (string, error) {
		r := progress.FromContext(ctx, nil)
		r.Report(ctx, progress.Working("Searching for x in /tmp."))
		r.Report(ctx, progress.Finished("Found 1 matching files."))
		return `{"results":["x"]}`, nil
	}, testSpinner)

	require.NoError(t, err)
	assert.Equal(t, `{"results":["x"]}`, result)
}

func TestRunWithProgress_ReturnsOperationError(t *testing.T) {
	var out bytes.Buffer
	boom := errors.New("boom")

	_, err := RunWithProgress(context.Background(), &out, "read_file", func(ctx context.Context) (string, error) {
		return "", boom
	}, nil)

	assert.ErrorIs(t, err, boom)
}

func TestRunWithProgress_ForwardsToContextReporter(t *testing.T) {
	var out bytes.Buffer
	rec := &mocks.Recorder{}
	ctx := progress.WithReporter(context.Background(), rec)

	_, err := RunWithProgress(ctx, &out, "list_files", func(ctx context.Context) (string, error) {
		r := progress.FromContext(ctx, nil)
		r.Report(ctx, progress.Working("Finding files in /tmp."))
		r.Report(ctx, progress.Finished("Found 0 files from /tmp."))
		return "{}", nil
	}, testSpinner)

	require.NoError(t, err)
	assert.Equal(t, []string{"Finding files in /tmp.", "Found 0 files from /tmp."}, rec.Descriptions())
}
