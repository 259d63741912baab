// Package list provides the result list component for the TUI.
package list

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/filesafe/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/filesafe/internal/core/domain"
)

// linesPerRow is the height of one rendered document.
const linesPerRow = 2

// ResultList displays the documents of a search result in a navigable list.
// Each row shows the document heading and, beneath it, the highlighted
// field and the expiry status.
type ResultList struct {
	docs        []domain.Document
	highlighted string
	owners      map[string]string
	selected    int
	styles      *styles.Styles
	now         func() time.Time
	width       int
	height      int
}

// NewResultList creates a new result list component.
func NewResultList(s *styles.Styles) *ResultList {
	if s == nil {
		s = styles.DefaultStyles()
	}

	return &ResultList{
		owners: map[string]string{},
		styles: s,
		now:    time.Now,
		width:  80,
		height: 10,
	}
}

// SetClock replaces the clock used for expiry colouring.
func (r *ResultList) SetClock(now func() time.Time) {
	r.now = now
}

// Init initialises the result list.
func (r *ResultList) Init() tea.Cmd {
	return nil
}

// Update handles list navigation messages.
func (r *ResultList) Update(msg tea.Msg) (*ResultList, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "up", "k":
			r.MoveUp()
		case "down", "j":
			r.MoveDown()
		}
	}
	return r, nil
}

// View renders the result list.
func (r *ResultList) View() string {
	if len(r.docs) == 0 {
		return r.styles.Muted.Render("No documents found")
	}

	visible := (r.height - 2) / linesPerRow
	if visible < 1 {
		visible = 1
	}
	start := 0
	if r.selected >= visible {
		start = r.selected - visible + 1
	}
	end := min(start+visible, len(r.docs))

	lines := make([]string, 0, (end-start)*linesPerRow)
	for i := start; i < end; i++ {
		lines = append(lines, r.renderRow(i, &r.docs[i]))
	}
	return strings.Join(lines, "\n")
}

// Heading is the one-line label of a document: glyph, title, pin marker, owner.
func Heading(doc *domain.Document, owner string) string {
	heading := doc.Title
	if heading == "" {
		heading = "(Untitled)"
	}
	if glyph := doc.Type.Config().Glyph; glyph != "" {
		heading = glyph + " " + heading
	}
	if doc.IsPinned {
		heading += " 📌"
	}
	if owner != "" {
		heading += " · " + owner
	}
	return heading
}

func (r *ResultList) renderRow(index int, doc *domain.Document) string {
	heading := truncate(Heading(doc, r.owners[doc.ProfileID]), r.width-4)
	var top string
	if index == r.selected {
		top = r.styles.Selected.Render("> " + heading)
	} else {
		top = r.styles.Normal.Render("  " + heading)
	}

	parts := make([]string, 0, 2)
	field := r.highlighted
	emphasise := field != "" && field != domain.FieldTitle
	if !emphasise {
		field = doc.NumberFieldName()
	}
	if value, ok := doc.Field(field); ok {
		text := fmt.Sprintf("%s: %s", domain.FieldLabel(field), value)
		if emphasise {
			parts = append(parts, r.styles.Highlight.Render(text))
		} else {
			parts = append(parts, r.styles.Muted.Render(text))
		}
	}
	if doc.ExpiryDate != "" {
		status := domain.StatusOf(doc.ExpiryDate, r.now())
		parts = append(parts, r.styles.ForExpiry(status).Render(status.Describe()))
	}

	return top + "\n    " + strings.Join(parts, "  ")
}

func truncate(s string, limit int) string {
	if limit < 10 {
		limit = 10
	}
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit-3]) + "..."
}

// SetResult replaces the list contents with a search result.
func (r *ResultList) SetResult(res *domain.SearchResult) {
	r.selected = 0
	if res == nil {
		r.docs = nil
		r.highlighted = ""
		return
	}
	r.docs = res.Documents
	r.highlighted = res.HighlightedField
}

// SetOwners sets the profile names shown next to each document.
func (r *ResultList) SetOwners(owners map[string]string) {
	if owners == nil {
		owners = map[string]string{}
	}
	r.owners = owners
}

// Documents returns the listed documents.
func (r *ResultList) Documents() []domain.Document {
	return r.docs
}

// Selected returns the index of the selected document.
func (r *ResultList) Selected() int {
	return r.selected
}

// SetSelected sets the selected index.
func (r *ResultList) SetSelected(index int) {
	if index >= 0 && index < len(r.docs) {
		r.selected = index
	}
}

// SelectedDocument returns the currently selected document, or nil if none.
func (r *ResultList) SelectedDocument() *domain.Document {
	if r.selected < 0 || r.selected >= len(r.docs) {
		return nil
	}
	return &r.docs[r.selected]
}

// MoveUp moves selection up.
func (r *ResultList) MoveUp() {
	if r.selected > 0 {
		r.selected--
	}
}

// MoveDown moves selection down.
func (r *ResultList) MoveDown() {
	if r.selected < len(r.docs)-1 {
		r.selected++
	}
}

// SetDimensions sets the component dimensions.
func (r *ResultList) SetDimensions(width, height int) {
	r.width = width
	r.height = height
}

// Width returns the current width.
func (r *ResultList) Width() int {
	return r.width
}

// Height returns the current height.
func (r *ResultList) Height() int {
	return r.height
}

// Count returns the number of documents.
func (r *ResultList) Count() int {
	return len(r.docs)
}

// IsEmpty returns whether the list is empty.
func (r *ResultList) IsEmpty() bool {
	return len(r.docs) == 0
}
