package status

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/filesafe/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/filesafe/internal/adapters/driving/tui/styles"
)

func TestNewBar(t *testing.T) {
	bar := NewBar(styles.DefaultStyles(), keymap.DefaultKeyMap())

	require.NotNil(t, bar)
	assert.Equal(t, StateReady, bar.State())
	assert.Equal(t, "", bar.Message())
	assert.Equal(t, 0, bar.ResultCount())
	assert.Equal(t, 80, bar.Width())
}

func TestNewBar_NilArgs(t *testing.T) {
	bar := NewBar(nil, nil)

	require.NotNil(t, bar)
	assert.NotNil(t, bar.styles)
	assert.NotNil(t, bar.keymap)
}

func TestBar_InitAndUpdate(t *testing.T) {
	bar := NewBar(nil, nil)

	assert.Nil(t, bar.Init())

	updated, cmd := bar.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, bar, updated)
	assert.Nil(t, cmd)
}

func TestBar_View_Ready(t *testing.T) {
	bar := NewBar(nil, nil)
	bar.SetWidth(120)

	view := bar.View()

	assert.Contains(t, view, "Ready")
	assert.Contains(t, view, "enter: search")
	assert.Contains(t, view, "tab: next chip")
}

func TestBar_View_IdleMessage(t *testing.T) {
	bar := NewBar(nil, nil)
	bar.SetWidth(120)
	bar.SetMessage("Vault unlocked")

	assert.Contains(t, bar.View(), "Vault unlocked")
}

func TestBar_View_Searching(t *testing.T) {
	bar := NewBar(nil, nil)
	bar.SetState(StateSearching)

	assert.Contains(t, bar.View(), "Searching...")
}

func TestBar_View_Error(t *testing.T) {
	bar := NewBar(nil, nil)
	bar.SetWidth(120)
	bar.SetState(StateError)

	assert.Contains(t, bar.View(), "Error")

	bar.SetMessage("store down")
	assert.Contains(t, bar.View(), "Error: store down")
}

func TestBar_View_Locked(t *testing.T) {
	bar := NewBar(nil, nil)
	bar.SetWidth(120)
	bar.SetState(StateLocked)

	view := bar.View()
	assert.Contains(t, view, "Locked")
	assert.Contains(t, view, "esc: quit")
}

func TestBar_SetResults(t *testing.T) {
	bar := NewBar(nil, nil)
	bar.SetWidth(140)
	bar.SetMessage("stale")

	bar.SetResults(3, "Sara")

	assert.Equal(t, StateResults, bar.State())
	assert.Equal(t, 3, bar.ResultCount())
	assert.Equal(t, "Sara", bar.Scope())
	assert.Equal(t, "", bar.Message())
	view := bar.View()
	assert.Contains(t, view, "3 results · Sara")
	assert.Contains(t, view, "p: pin")
}

func TestBar_SetResults_Singular(t *testing.T) {
	bar := NewBar(nil, nil)
	bar.SetWidth(140)

	bar.SetResults(1, "")

	assert.Contains(t, bar.View(), "1 result")
	assert.NotContains(t, bar.View(), "·")
}

func TestBar_SetResults_NoneShowsInputHints(t *testing.T) {
	bar := NewBar(nil, nil)
	bar.SetWidth(140)

	bar.SetResults(0, "")

	view := bar.View()
	assert.Contains(t, view, "0 results")
	assert.Contains(t, view, "enter: search")
}

func TestBar_Clear(t *testing.T) {
	bar := NewBar(nil, nil)
	bar.SetResults(5, "Alex")

	bar.Clear()

	assert.Equal(t, StateReady, bar.State())
	assert.Equal(t, 0, bar.ResultCount())
	assert.Equal(t, "", bar.Scope())
}

func TestBar_View_NarrowWidth(t *testing.T) {
	bar := NewBar(nil, nil)
	bar.SetWidth(10)

	assert.NotEmpty(t, bar.View())
}
