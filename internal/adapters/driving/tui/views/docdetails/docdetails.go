// Package docdetails provides the document details view component for the TUI.
package docdetails

import (
	"fmt"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/filesafe/internal/adapters/driving/tui/components/list"
	"github.com/custodia-labs/filesafe/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/filesafe/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/filesafe/internal/core/domain"
)

// line is one rendered row: a label/value pair or a section heading.
// field is set for typed document fields.
type line struct {
	label   string
	value   string
	field   string
	heading bool
	expiry  *domain.ExpiryStatus
}

func (l line) selectable() bool {
	return !l.heading && l.value != ""
}

// View is the document details view.
type View struct {
	styles *styles.Styles
	now    func() time.Time
	write  func(string) error

	doc          *domain.Document
	owner        string
	lines        []line
	selected     int
	notice       string
	scrollOffset int
	width        int
	height       int
	ready        bool
	err          error
}

// NewView creates a new document details view.
func NewView(s *styles.Styles) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	return &View{
		styles: s,
		now:    time.Now,
		write:  clipboard.WriteAll,
		width:  80,
		height: 24,
	}
}

// SetClock replaces the clock used for the expiry status.
func (v *View) SetClock(now func() time.Time) {
	v.now = now
}

// SetClipboard replaces the clipboard writer.
func (v *View) SetClipboard(write func(string) error) {
	v.write = write
}

// SetDocument sets the document to display and its owner's name. The first
// typed field is selected.
func (v *View) SetDocument(doc *domain.Document, owner string) {
	v.doc = doc
	v.owner = owner
	v.scrollOffset = 0
	v.notice = ""
	v.err = nil
	v.lines = v.buildContent()
	v.selected = -1
	for i, l := range v.lines {
		if l.field != "" {
			v.selected = i
			break
		}
	}
	if v.selected < 0 {
		v.moveSelection(1)
	}
}

// SelectField selects the row of a typed field. Unknown or unset fields
// keep the current selection.
func (v *View) SelectField(field string) {
	if field == "" {
		return
	}
	for i, l := range v.lines {
		if l.field == field {
			v.selected = i
			v.followSelection()
			return
		}
	}
}

// SelectedValue returns the value the copy key would copy.
func (v *View) SelectedValue() string {
	if v.selected < 0 || v.selected >= len(v.lines) {
		return ""
	}
	return v.lines[v.selected].value
}

// moveSelection moves to the next selectable row in direction dir.
func (v *View) moveSelection(dir int) {
	for i := v.selected + dir; i >= 0 && i < len(v.lines); i += dir {
		if v.lines[i].selectable() {
			v.selected = i
			break
		}
	}
	v.followSelection()
}

// followSelection scrolls so the selected row is visible.
func (v *View) followSelection() {
	if v.selected < 0 {
		return
	}
	visible := v.visibleLines()
	if v.selected < v.scrollOffset {
		v.scrollOffset = v.selected
	}
	if v.selected >= v.scrollOffset+visible {
		v.scrollOffset = v.selected - visible + 1
	}
	v.scrollOffset = min(v.scrollOffset, v.maxScrollOffset())
}

func (v *View) copySelected() tea.Cmd {
	if v.selected < 0 || v.selected >= len(v.lines) || v.write == nil {
		return nil
	}
	l := v.lines[v.selected]
	label := l.label
	if label == "" {
		label = "Notes"
	}
	write, value := v.write, l.value
	return func() tea.Msg {
		return messages.FieldCopied{Label: label, Err: write(value)}
	}
}

// SetError sets an error to display.
func (v *View) SetError(err error) {
	v.err = err
}

// Init initialises the view.
func (v *View) Init() tea.Cmd {
	return nil
}

// Update handles messages for the document details view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case tea.KeyMsg:
		return v.handleKeyMsg(msg)

	case messages.FieldCopied:
		if msg.Err != nil {
			v.notice = "Copy failed: " + msg.Err.Error()
		} else {
			v.notice = "Copied " + msg.Label
		}
		return v, nil

	case messages.ErrorOccurred:
		v.err = msg.Err
		return v, nil
	}

	return v, nil
}

func (v *View) handleKeyMsg(msg tea.KeyMsg) (*View, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		v.notice = ""
		v.moveSelection(-1)
	case "down", "j":
		v.notice = ""
		v.moveSelection(1)
	case "c":
		return v, v.copySelected()
	case "esc", "backspace":
		return v, func() tea.Msg {
			return messages.ViewChanged{View: messages.ViewSearch}
		}
	case "q", "ctrl+c":
		return v, tea.Quit
	}
	return v, nil
}

func (v *View) visibleLines() int {
	return max(v.height-6, 1)
}

func (v *View) maxScrollOffset() int {
	return max(len(v.lines)-v.visibleLines(), 0)
}

// buildContent lists the document's set fields in display order.
func (v *View) buildContent() []line {
	if v.doc == nil {
		return nil
	}
	d := v.doc

	lines := []line{
		{label: "Type", value: d.Type.Config().Label},
	}
	if v.owner != "" {
		lines = append(lines, line{label: "Owner", value: v.owner})
	}
	for _, f := range domain.DisplayFields() {
		value, ok := d.Field(f)
		if !ok {
			continue
		}
		l := line{label: domain.FieldLabel(f), value: value, field: f}
		if f == domain.FieldExpiryDate {
			status := domain.StatusOf(value, v.now())
			l.expiry = &status
		}
		lines = append(lines, l)
	}

	if len(d.CustomFields) > 0 {
		lines = append(lines, line{heading: true, label: "Custom fields"})
		for _, cf := range d.CustomFields {
			lines = append(lines, line{label: cf.Label, value: cf.Value})
		}
	}
	if d.Notes != "" {
		lines = append(lines, line{heading: true, label: "Notes"})
		for _, n := range strings.Split(d.Notes, "\n") {
			lines = append(lines, line{value: n})
		}
	}
	if d.IsPinned && d.PinnedAt != nil {
		lines = append(lines, line{label: "Pinned", value: d.PinnedAt.Format("2006-01-02")})
	}
	lines = append(lines, line{label: "ID", value: d.ID})
	return lines
}

func (v *View) render(l line, selected bool) string {
	cursor := "  "
	if selected {
		cursor = v.styles.Selected.Render("▸ ")
	}
	switch {
	case l.heading:
		return cursor + v.styles.Subtitle.Render(l.label+":")
	case l.label == "":
		return cursor + v.styles.Normal.Render("  "+l.value)
	}
	label := cursor + v.styles.Muted.Render(fmt.Sprintf("%-18s", l.label+":"))
	value := v.styles.Normal.Render(l.value)
	if l.expiry != nil {
		if desc := l.expiry.Describe(); desc != "" {
			value += " " + v.styles.ForExpiry(*l.expiry).Render("("+desc+")")
		}
	}
	return label + " " + value
}

// View renders the document details view.
func (v *View) View() string {
	var b strings.Builder

	title := "Document Details"
	if v.doc != nil {
		title = list.Heading(v.doc, "")
	}
	b.WriteString(v.styles.Title.Render(title))
	b.WriteString("\n")
	b.WriteString(strings.Repeat("─", max(min(v.width-4, 60), 1)))
	b.WriteString("\n\n")

	if v.err != nil {
		b.WriteString(v.styles.Error.Render("Error: " + v.err.Error()))
		b.WriteString("\n\n")
		b.WriteString(v.renderHelp())
		return b.String()
	}

	if v.doc == nil {
		b.WriteString(v.styles.Muted.Render("No document selected"))
		b.WriteString("\n\n")
		b.WriteString(v.renderHelp())
		return b.String()
	}

	lines := v.lines
	visible := v.visibleLines()
	end := min(v.scrollOffset+visible, len(lines))
	for i := v.scrollOffset; i < end; i++ {
		b.WriteString(v.render(lines[i], i == v.selected))
		b.WriteString("\n")
	}

	if len(lines) > visible {
		b.WriteString("\n")
		b.WriteString(v.styles.Muted.Render(fmt.Sprintf("  [Line %d-%d of %d]",
			v.scrollOffset+1, end, len(lines))))
	}

	b.WriteString("\n\n")
	if v.notice != "" {
		b.WriteString(v.styles.Success.Render(v.notice))
		b.WriteString("\n")
	}
	b.WriteString(v.renderHelp())
	return b.String()
}

func (v *View) renderHelp() string {
	return v.styles.Help.Render("[↑/↓] select  [c] copy  [esc] back  [q] quit")
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true
	v.followSelection()
}

// Document returns the displayed document.
func (v *View) Document() *domain.Document {
	return v.doc
}

// Err returns the last error.
func (v *View) Err() error {
	return v.err
}
