package uitest

import (
	"bytes"
	"io"
	"testing"
	"time"

	"github.com/charmbracelet/x/ansi"
	"github.com/charmbracelet/x/exp/teatest"
	"github.com/stretchr/testify/require"

	tea "github.com/charmbracelet/bubbletea"
)

// NewTestModel starts m in a test program with the given terminal size.
func NewTestModel(tb testing.TB, m tea.Model, size Size) *teatest.TestModel {
	tb.Helper()

	return teatest.NewTestModel(tb, m, teatest.WithInitialTermSize(size.Width, size.Height))
}

// Key returns the key message whose String form is s. Single runes become
// rune keys; anything else must be a named key such as "ctrl+c" or "esc".
func Key(s string) tea.KeyMsg {
	switch s {
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEscape}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	}

	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// WaitForText waits until the plain text of the output contains text.
func WaitForText(tb testing.TB, r io.Reader, text string, timeout time.Duration) {
	tb.Helper()

	teatest.WaitFor(tb, r, func(b []byte) bool {
		return bytes.Contains([]byte(ansi.Strip(string(b))), []byte(text))
	}, teatest.WithDuration(timeout), teatest.WithCheckInterval(10*time.Millisecond))
}

// FinalModel waits for the program to exit and returns its model as T.
func FinalModel[T tea.Model](tb testing.TB, tm *teatest.TestModel, timeout time.Duration) T {
	tb.Helper()

	fm := tm.FinalModel(tb, teatest.WithFinalTimeout(timeout))

	m, ok := fm.(T)
	require.True(tb, ok, "final model has type %T", fm)

	return m
}
