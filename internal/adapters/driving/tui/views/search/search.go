// Package search provides the main search view for the TUI.
package search

import (
	"context"
	"slices"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/filesafe/internal/adapters/driving/tui/components/input"
	"github.com/custodia-labs/filesafe/internal/adapters/driving/tui/components/list"
	"github.com/custodia-labs/filesafe/internal/adapters/driving/tui/components/status"
	"github.com/custodia-labs/filesafe/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/filesafe/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/filesafe/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/filesafe/internal/core/domain"
	"github.com/custodia-labs/filesafe/internal/core/ports/driving"
)

// View is the search screen: query input, suggestion chips, results and status bar.
type View struct {
	styles    *styles.Styles
	keymap    *keymap.KeyMap
	input     *input.Field
	list      *list.ResultList
	statusbar *status.Bar

	searchService   driving.SearchService
	documentService driving.DocumentService
	ctx             context.Context

	activeProfile string
	profileName   string

	chips    []string
	chip     int // -1 when no chip is selected
	lastChip string
	last     string // last typed query
	result   *domain.SearchResult

	width      int
	height     int
	ready      bool
	err        error
	focusInput bool // true = typing a query, false = browsing results
}

// NewView creates a new search view. documentService may be nil, which
// disables pinning.
func NewView(
	s *styles.Styles,
	km *keymap.KeyMap,
	searchService driving.SearchService,
	documentService driving.DocumentService,
) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}

	return &View{
		styles:          s,
		keymap:          km,
		input:           input.NewSearchInput(s),
		list:            list.NewResultList(s),
		statusbar:       status.NewBar(s, km),
		searchService:   searchService,
		documentService: documentService,
		ctx:             context.Background(),
		chip:            -1,
		width:           80,
		height:          24,
		focusInput:      true,
	}
}

// WithContext sets the context for the view.
func (v *View) WithContext(ctx context.Context) *View {
	v.ctx = ctx
	return v
}

// SetActiveProfile sets the profile used to scope suggestions and queries.
func (v *View) SetActiveProfile(id, name string) {
	v.activeProfile = id
	v.profileName = name
}

// ActiveProfile returns the active profile ID.
func (v *View) ActiveProfile() string {
	return v.activeProfile
}

// Init initialises the view.
func (v *View) Init() tea.Cmd {
	return v.input.Init()
}

// Update handles messages for the search view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case tea.KeyMsg:
		return v.handleKeyMsg(msg)

	case messages.SearchCompleted:
		v.handleSearchCompleted(msg)
		return v, nil

	case messages.SuggestionsLoaded:
		v.handleSuggestions(msg)
		return v, nil

	case messages.OwnersLoaded:
		v.list.SetOwners(msg.Owners)
		return v, nil

	case messages.PinToggled:
		if msg.Err != nil {
			v.setError(msg.Err)
			return v, nil
		}
		return v, v.Refresh()

	case messages.ErrorOccurred:
		v.setError(msg.Err)
		return v, nil
	}

	var cmd tea.Cmd
	v.input, cmd = v.input.Update(msg)
	return v, cmd
}

func (v *View) handleKeyMsg(msg tea.KeyMsg) (*View, tea.Cmd) {
	key := msg.String()

	switch {
	case keymap.Matches(key, v.keymap.NextChip):
		return v, v.moveChip(1)
	case keymap.Matches(key, v.keymap.PrevChip):
		return v, v.moveChip(-1)
	}

	if v.focusInput {
		switch msg.Type {
		case tea.KeyEnter:
			query := strings.TrimSpace(v.input.Value())
			if query == "" {
				return v, nil
			}
			v.chip = -1
			return v, v.runQuery(query)
		case tea.KeyEsc:
			v.input.Reset()
			return v, nil
		}
		var cmd tea.Cmd
		v.input, cmd = v.input.Update(msg)
		return v, cmd
	}

	switch {
	case keymap.Matches(key, v.keymap.Select):
		if doc := v.list.SelectedDocument(); doc != nil {
			id, field := doc.ID, ""
			if v.result != nil {
				field = v.result.HighlightedField
			}
			return v, func() tea.Msg { return messages.DocumentSelected{ID: id, Field: field} }
		}
		return v, nil
	case keymap.Matches(key, v.keymap.Pin):
		return v, v.togglePin()
	case keymap.Matches(key, v.keymap.NewSearch), keymap.Matches(key, v.keymap.Back):
		v.focusInput = true
		return v, v.input.Focus()
	case keymap.Matches(key, v.keymap.Quit):
		return v, tea.Quit
	}

	v.list, _ = v.list.Update(msg)
	return v, nil
}

// moveChip selects the neighbouring chip, wrapping around, and runs it.
func (v *View) moveChip(delta int) tea.Cmd {
	if len(v.chips) == 0 {
		return nil
	}
	switch {
	case v.chip < 0 && delta > 0:
		v.chip = 0
	case v.chip < 0:
		v.chip = len(v.chips) - 1
	default:
		v.chip = (v.chip + delta + len(v.chips)) % len(v.chips)
	}
	return v.runChip(v.chips[v.chip])
}

func (v *View) runQuery(query string) tea.Cmd {
	v.last = query
	v.lastChip = ""
	v.statusbar.SetState(status.StateSearching)
	svc, ctx, active := v.searchService, v.ctx, v.activeProfile
	return func() tea.Msg {
		if svc == nil {
			return messages.ErrorOccurred{Err: ErrNoSearchService}
		}
		res, err := svc.Search(ctx, query, active)
		return messages.SearchCompleted{Result: res, Err: err}
	}
}

func (v *View) runChip(label string) tea.Cmd {
	v.lastChip = label
	v.last = ""
	v.statusbar.SetState(status.StateSearching)
	svc, ctx, active := v.searchService, v.ctx, v.activeProfile
	return func() tea.Msg {
		if svc == nil {
			return messages.ErrorOccurred{Err: ErrNoSearchService}
		}
		res, err := svc.RunSuggestion(ctx, label, active)
		return messages.SearchCompleted{Result: res, Chip: label, Err: err}
	}
}

// Refresh re-runs the last query or chip, if any.
func (v *View) Refresh() tea.Cmd {
	switch {
	case v.lastChip != "":
		return v.runChip(v.lastChip)
	case v.last != "":
		return v.runQuery(v.last)
	}
	return nil
}

func (v *View) togglePin() tea.Cmd {
	doc := v.list.SelectedDocument()
	if doc == nil || v.documentService == nil {
		return nil
	}
	svc, ctx := v.documentService, v.ctx
	id, pin := doc.ID, !doc.IsPinned
	return func() tea.Msg {
		var err error
		if pin {
			err = svc.Pin(ctx, id)
		} else {
			err = svc.Unpin(ctx, id)
		}
		return messages.PinToggled{ID: id, Pinned: pin, Err: err}
	}
}

func (v *View) handleSearchCompleted(msg messages.SearchCompleted) {
	if msg.Err != nil {
		v.setError(msg.Err)
		return
	}

	v.err = nil
	v.result = msg.Result
	v.list.SetResult(msg.Result)

	scope := ""
	if msg.Result != nil && msg.Result.Profile != nil {
		scope = msg.Result.Profile.Name
	}
	v.statusbar.SetResults(v.list.Count(), scope)

	if v.list.Count() > 0 {
		v.focusInput = false
		v.input.Blur()
	}
}

func (v *View) handleSuggestions(msg messages.SuggestionsLoaded) {
	if msg.Err != nil {
		v.setError(msg.Err)
		return
	}
	selected := ""
	if v.chip >= 0 && v.chip < len(v.chips) {
		selected = v.chips[v.chip]
	}
	v.chips = msg.Chips
	v.chip = slices.Index(v.chips, selected)
}

func (v *View) setError(err error) {
	v.err = err
	v.statusbar.SetState(status.StateError)
	v.statusbar.SetMessage(err.Error())
}

// Notify shows an informational message in the status bar.
func (v *View) Notify(message string) {
	v.statusbar.SetState(status.StateReady)
	v.statusbar.SetMessage(message)
}

// View renders the search view.
func (v *View) View() string {
	if !v.ready {
		return "Initialising..."
	}

	header := v.styles.Title.Render("FileSafe")
	if v.profileName != "" {
		header += v.styles.Muted.Render(" · " + v.profileName)
	}

	sections := make([]string, 0, 10)
	sections = append(sections, header, "", v.input.View())

	if chips := v.renderChips(); chips != "" {
		sections = append(sections, chips)
	}
	sections = append(sections, "")

	if v.err != nil {
		sections = append(sections, v.styles.Error.Render("Error: "+v.err.Error()), "")
	}
	if v.result != nil {
		sections = append(sections, v.list.View())
	}

	sections = append(sections, "", v.statusbar.View())
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (v *View) renderChips() string {
	if len(v.chips) == 0 {
		return ""
	}
	rendered := make([]string, 0, len(v.chips))
	for i, c := range v.chips {
		if i == v.chip {
			rendered = append(rendered, v.styles.ChipSelected.Render(c))
		} else {
			rendered = append(rendered, v.styles.Chip.Render(c))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true

	v.input.SetWidth(width)
	v.list.SetDimensions(width, height-12)
	v.statusbar.SetWidth(width)
}

// Ready returns whether the view is ready to render.
func (v *View) Ready() bool {
	return v.ready
}

// Query returns the current input value.
func (v *View) Query() string {
	return v.input.Value()
}

// SetQuery sets the input value.
func (v *View) SetQuery(query string) {
	v.input.SetValue(query)
}

// Chips returns the suggestion labels.
func (v *View) Chips() []string {
	return v.chips
}

// SelectedChip returns the selected chip label, or "" if none.
func (v *View) SelectedChip() string {
	if v.chip < 0 || v.chip >= len(v.chips) {
		return ""
	}
	return v.chips[v.chip]
}

// Result returns the last search result.
func (v *View) Result() *domain.SearchResult {
	return v.result
}

// List exposes the result list.
func (v *View) List() *list.ResultList {
	return v.list
}

// StatusBar exposes the status bar.
func (v *View) StatusBar() *status.Bar {
	return v.statusbar
}

// Err returns the current error, if any.
func (v *View) Err() error {
	return v.err
}

// Reset returns the view to an empty query with no results.
func (v *View) Reset() {
	v.focusInput = true
	v.input.Focus()
	v.input.Reset()
	v.list.SetResult(nil)
	v.result = nil
	v.last, v.lastChip = "", ""
	v.chip = -1
	v.err = nil
	v.statusbar.Clear()
}

// InputFocused returns whether the input has focus.
func (v *View) InputFocused() bool {
	return v.focusInput
}
