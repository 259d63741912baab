// Package unlock provides the PIN prompt shown while the vault is locked.
package unlock

import (
	"errors"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/filesafe/internal/adapters/driving/tui/components/input"
	"github.com/custodia-labs/filesafe/internal/adapters/driving/tui/components/status"
	"github.com/custodia-labs/filesafe/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/filesafe/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/filesafe/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/filesafe/internal/core/domain"
)

// View is the unlock screen.
type View struct {
	styles    *styles.Styles
	pin       *input.Field
	statusbar *status.Bar

	pending bool
	err     error
	width   int
	height  int
	ready   bool
}

// NewView creates a new unlock view.
func NewView(s *styles.Styles, km *keymap.KeyMap) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	bar := status.NewBar(s, km)
	bar.SetState(status.StateLocked)

	return &View{
		styles:    s,
		pin:       input.NewPINInput(s),
		statusbar: bar,
		width:     80,
		height:    24,
	}
}

// Init initialises the view.
func (v *View) Init() tea.Cmd {
	return v.pin.Init()
}

// Update handles messages for the unlock view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case messages.UnlockCompleted:
		v.pending = false
		v.err = msg.Err
		return v, nil

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyEnter:
			pin := strings.TrimSpace(v.pin.Value())
			if pin == "" || v.pending {
				return v, nil
			}
			v.pending = true
			v.pin.Reset()
			return v, func() tea.Msg { return messages.UnlockRequested{PIN: pin} }
		case tea.KeyEsc, tea.KeyCtrlC:
			return v, tea.Quit
		}
	}

	var cmd tea.Cmd
	v.pin, cmd = v.pin.Update(msg)
	return v, cmd
}

// View renders the unlock view.
func (v *View) View() string {
	if !v.ready {
		return "Initialising..."
	}

	sections := []string{
		v.styles.Title.Render("FileSafe") + v.styles.Muted.Render(" · locked"),
		"",
		v.styles.Normal.Render("Enter your PIN to unlock the vault."),
		"",
		v.pin.View(),
		"",
	}
	switch {
	case v.pending:
		sections = append(sections, v.styles.Muted.Render("Checking..."))
	case v.err != nil:
		sections = append(sections, v.styles.Error.Render(describe(v.err)))
	default:
		sections = append(sections, "")
	}
	sections = append(sections, "", v.statusbar.View())
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func describe(err error) string {
	switch {
	case errors.Is(err, domain.ErrInvalidPIN):
		return "Incorrect PIN, try again."
	case errors.Is(err, domain.ErrTooManyAttempts):
		return "Too many attempts, wait a moment and try again."
	default:
		return "Error: " + err.Error()
	}
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true
	v.pin.SetWidth(width / 2)
	v.statusbar.SetWidth(width)
}

// Reset clears the PIN, any error and the pending flag.
func (v *View) Reset() tea.Cmd {
	v.pin.Reset()
	v.err = nil
	v.pending = false
	return v.pin.Focus()
}

// Pending reports whether an unlock attempt is in flight.
func (v *View) Pending() bool {
	return v.pending
}

// Err returns the last unlock error.
func (v *View) Err() error {
	return v.err
}
