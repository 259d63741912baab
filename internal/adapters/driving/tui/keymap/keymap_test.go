package keymap

import (
	"testing"

	"github.com/charmbracelet/bubbles/key"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultKeyMap(t *testing.T) {
	km := DefaultKeyMap()

	require.NotNil(t, km)
}

func TestDefaultKeyMap_Keys(t *testing.T) {
	km := DefaultKeyMap()

	tests := []struct {
		name    string
		binding key.Binding
		keys    []string
	}{
		{"quit", km.Quit, []string{"q", "ctrl+c"}},
		{"back", km.Back, []string{"esc"}},
		{"search", km.Search, []string{"enter"}},
		{"up", km.Up, []string{"up", "k"}},
		{"down", km.Down, []string{"down", "j"}},
		{"select", km.Select, []string{"enter"}},
		{"prev chip", km.PrevChip, []string{"shift+tab"}},
		{"next chip", km.NextChip, []string{"tab"}},
		{"new search", km.NewSearch, []string{"/", "n"}},
		{"pin", km.Pin, []string{"p"}},
		{"lock", km.Lock, []string{"ctrl+l"}},
		{"copy", km.Copy, []string{"c"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ElementsMatch(t, tt.keys, tt.binding.Keys())
			assert.NotEmpty(t, tt.binding.Help().Key, "binding should have help key")
		})
	}
}

func TestInputHelp(t *testing.T) {
	km := DefaultKeyMap()

	bindings := km.InputHelp()

	require.Len(t, bindings, 3)
	assert.Equal(t, km.Search, bindings[0])
	assert.Equal(t, km.Lock, bindings[2])
}

func TestResultsHelp(t *testing.T) {
	km := DefaultKeyMap()

	bindings := km.ResultsHelp()

	require.Len(t, bindings, 5)
	assert.Equal(t, km.Up, bindings[0])
	assert.Equal(t, km.Quit, bindings[4])
}

func TestMatches(t *testing.T) {
	km := DefaultKeyMap()

	assert.True(t, Matches("q", km.Quit))
	assert.True(t, Matches("ctrl+c", km.Quit))
	assert.True(t, Matches("tab", km.NextChip))
	assert.True(t, Matches("k", km.Up))

	assert.False(t, Matches("x", km.Quit))
	assert.False(t, Matches("down", km.Up))
	assert.False(t, Matches("tab", km.PrevChip))
}
