package docdetails

import (
	"errors"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/filesafe/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/filesafe/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/filesafe/internal/core/domain"
)

var testNow = time.Date(2026, 10, 15, 9, 0, 0, 0, time.UTC)

func testDocument() *domain.Document {
	pinned := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	return &domain.Document{
		ID:             "doc-9",
		ProfileID:      "profile-me",
		Type:           domain.DocumentTypeInsurance,
		Title:          "Auto Insurance",
		PolicyNumber:   "AUTO-8877665",
		InsuranceType:  "Auto",
		Provider:       "State Farm",
		ExpiryDate:     "2026-11-01",
		CustomFields:   []domain.CustomField{{ID: "c1", Label: "Vehicle", Value: "2021 Honda Accord"}},
		Notes:          "Renew online\nAsk about discount",
		IsPinned:       true,
		PinnedAt:       &pinned,
		CreatedAt:      testNow,
		UpdatedAt:      testNow,
		LastAccessedAt: &testNow,
	}
}

func newTestView() *View {
	v := NewView(styles.DefaultStyles())
	v.SetClock(func() time.Time { return testNow })
	v.SetDimensions(100, 40)
	return v
}

func TestNewView(t *testing.T) {
	v := NewView(nil)

	require.NotNil(t, v)
	assert.NotNil(t, v.styles)
	assert.False(t, v.ready)
	assert.Nil(t, v.Document())
	assert.Nil(t, v.Init())
}

func TestView_SetDocument(t *testing.T) {
	v := newTestView()
	v.scrollOffset = 3
	v.SetError(errors.New("stale"))

	v.SetDocument(testDocument(), "Me")

	assert.Equal(t, "doc-9", v.Document().ID)
	assert.Equal(t, 0, v.scrollOffset)
	assert.NoError(t, v.Err())
}

func TestView_Render(t *testing.T) {
	v := newTestView()
	v.SetDocument(testDocument(), "Me")

	view := v.View()

	assert.Contains(t, view, "🛡️ Auto Insurance 📌")
	assert.Contains(t, view, "Insurance Policy")
	assert.Contains(t, view, "Owner:")
	assert.Contains(t, view, "Policy Number:")
	assert.Contains(t, view, "AUTO-8877665")
	assert.Contains(t, view, "State Farm")
	assert.Contains(t, view, "2026-11-01 (expires in 17 days, urgent)")
	assert.Contains(t, view, "Custom fields:")
	assert.Contains(t, view, "2021 Honda Accord")
	assert.Contains(t, view, "Ask about discount")
	assert.Contains(t, view, "Pinned:")
	assert.Contains(t, view, "doc-9")
	assert.NotContains(t, view, "Passport Number")
}

func TestView_Render_NoDocument(t *testing.T) {
	v := newTestView()

	view := v.View()

	assert.Contains(t, view, "Document Details")
	assert.Contains(t, view, "No document selected")
}

func TestView_Render_Error(t *testing.T) {
	v := newTestView()
	v.SetDocument(testDocument(), "")

	v.Update(messages.ErrorOccurred{Err: domain.ErrNotFound})

	assert.Contains(t, v.View(), "Error: not found")
}

func keyRune(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestView_SelectionScrolls(t *testing.T) {
	v := newTestView()
	v.SetDimensions(80, 10)
	v.SetDocument(testDocument(), "Me")
	maxOffset := v.maxScrollOffset()
	require.Positive(t, maxOffset)
	assert.Equal(t, "AUTO-8877665", v.SelectedValue(), "first typed field is selected")

	for i := 0; i < 20; i++ {
		v.Update(keyRune('j'))
	}
	assert.Equal(t, "doc-9", v.SelectedValue())
	assert.Equal(t, maxOffset, v.scrollOffset)
	assert.Contains(t, v.View(), "[Line")

	v.Update(keyRune('k'))
	assert.Equal(t, "2026-09-01", v.SelectedValue())
	assert.Equal(t, maxOffset, v.scrollOffset)

	for i := 0; i < 20; i++ {
		v.Update(tea.KeyMsg{Type: tea.KeyUp})
	}
	assert.Equal(t, "Insurance Policy", v.SelectedValue())
	assert.Equal(t, 0, v.scrollOffset)
}

func TestView_SelectionSkipsHeadings(t *testing.T) {
	v := newTestView()
	v.SetDocument(testDocument(), "Me")

	v.SelectField(domain.FieldProvider)
	assert.Equal(t, "State Farm", v.SelectedValue())

	v.Update(keyRune('j'))
	assert.Equal(t, "2021 Honda Accord", v.SelectedValue())

	v.SelectField(domain.FieldPassportNumber)
	assert.Equal(t, "2021 Honda Accord", v.SelectedValue(), "unset fields keep the selection")
}

func TestView_CopySelectedField(t *testing.T) {
	v := newTestView()
	var copied []string
	v.SetClipboard(func(s string) error {
		copied = append(copied, s)
		return nil
	})
	v.SetDocument(testDocument(), "Me")
	v.SelectField(domain.FieldExpiryDate)

	_, cmd := v.Update(keyRune('c'))
	require.NotNil(t, cmd)
	msg := cmd()
	assert.Equal(t, messages.FieldCopied{Label: "Expiry Date"}, msg)
	assert.Equal(t, []string{"2026-11-01"}, copied)

	v.Update(msg)
	assert.Contains(t, v.View(), "Copied Expiry Date")

	v.Update(keyRune('j'))
	assert.NotContains(t, v.View(), "Copied")
}

func TestView_CopyNoteLine(t *testing.T) {
	v := newTestView()
	var copied string
	v.SetClipboard(func(s string) error {
		copied = s
		return nil
	})
	v.SetDocument(testDocument(), "Me")
	v.SelectField(domain.FieldProvider)
	for i := 0; i < 2; i++ {
		v.Update(keyRune('j'))
	}

	_, cmd := v.Update(keyRune('c'))
	require.NotNil(t, cmd)

	assert.Equal(t, messages.FieldCopied{Label: "Notes"}, cmd())
	assert.Equal(t, "Renew online", copied)
}

func TestView_CopyFailure(t *testing.T) {
	v := newTestView()
	v.SetClipboard(func(string) error { return errors.New("no clipboard utility") })
	v.SetDocument(testDocument(), "Me")

	_, cmd := v.Update(keyRune('c'))
	require.NotNil(t, cmd)
	v.Update(cmd())

	assert.Contains(t, v.View(), "Copy failed: no clipboard utility")
}

func TestView_CopyWithoutDocument(t *testing.T) {
	v := newTestView()
	v.SetClipboard(func(string) error { return nil })

	_, cmd := v.Update(keyRune('c'))

	assert.Nil(t, cmd)
	assert.Empty(t, v.SelectedValue())
}

func TestView_EscGoesBack(t *testing.T) {
	v := newTestView()

	_, cmd := v.Update(tea.KeyMsg{Type: tea.KeyEsc})

	require.NotNil(t, cmd)
	assert.Equal(t, messages.ViewChanged{View: messages.ViewSearch}, cmd())
}

func TestView_QuitKey(t *testing.T) {
	v := newTestView()

	_, cmd := v.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})

	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestView_WindowSize(t *testing.T) {
	v := NewView(nil)

	v.Update(tea.WindowSizeMsg{Width: 120, Height: 50})

	assert.True(t, v.ready)
	assert.Equal(t, 120, v.width)
}
