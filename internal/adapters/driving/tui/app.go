package tui

import (
	"context"
	"errors"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/filesafe/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/filesafe/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/filesafe/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/filesafe/internal/adapters/driving/tui/views/docdetails"
	"github.com/custodia-labs/filesafe/internal/adapters/driving/tui/views/search"
	"github.com/custodia-labs/filesafe/internal/adapters/driving/tui/views/unlock"
	"github.com/custodia-labs/filesafe/internal/core/domain"
	"github.com/custodia-labs/filesafe/internal/logger"
)

// lockCheckInterval is how often the app polls the vault for auto-lock.
const lockCheckInterval = 5 * time.Second

// noPINMessage answers the lock key on a vault without a PIN.
const noPINMessage = "No PIN set: run 'filesafe vault init' to enable locking"

// lockCheck triggers an auto-lock poll.
type lockCheck struct{}

// watchStarted carries the change channel once the notifier is running.
type watchStarted struct {
	changes <-chan struct{}
	err     error
}

// App is the main TUI application following the Elm architecture.
// It implements tea.Model for use with Bubbletea.
type App struct {
	ports  *Ports
	ctx    context.Context
	styles *styles.Styles
	keymap *keymap.KeyMap

	searchView     *search.View
	unlockView     *unlock.View
	docDetailsView *docdetails.View

	currentView messages.ViewType
	owners      map[string]string
	changes     <-chan struct{}

	err    error
	width  int
	height int
	ready  bool
}

// Ensure App implements tea.Model.
var _ tea.Model = (*App)(nil)

// NewApp creates a new TUI application with the given ports.
func NewApp(ports *Ports) (*App, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("creating app: %w", err)
	}

	s := styles.DefaultStyles()
	km := keymap.DefaultKeyMap()
	a := &App{
		ports:          ports,
		ctx:            context.Background(),
		styles:         s,
		keymap:         km,
		searchView:     search.NewView(s, km, ports.Search, ports.Document),
		unlockView:     unlock.NewView(s, km),
		docDetailsView: docdetails.NewView(s),
		currentView:    messages.ViewSearch,
		owners:         map[string]string{},
	}
	if a.locked() {
		a.currentView = messages.ViewUnlock
	}
	return a, nil
}

// WithContext sets the context for the app and its views.
func (a *App) WithContext(ctx context.Context) *App {
	a.ctx = ctx
	a.searchView.WithContext(ctx)
	return a
}

// locked reports whether a PIN is set and the vault is not unlocked.
func (a *App) locked() bool {
	if a.ports.Vault == nil {
		return false
	}
	initialised, err := a.ports.Vault.IsInitialized(a.ctx)
	if err != nil {
		logger.Warn("Vault status unavailable: %v", err)
		return true
	}
	return initialised && !a.ports.Vault.Unlocked()
}

// Init implements tea.Model.
func (a *App) Init() tea.Cmd {
	cmds := []tea.Cmd{
		tea.SetWindowTitle("FileSafe"),
		a.startWatch(),
		a.scheduleLockCheck(),
	}
	if a.currentView == messages.ViewUnlock {
		cmds = append(cmds, a.unlockView.Init())
	} else {
		cmds = append(cmds, a.searchView.Init(), a.loadData())
	}
	return tea.Batch(cmds...)
}

// loadData fetches the active profile and owner names. Suggestions follow
// once the active profile is known.
func (a *App) loadData() tea.Cmd {
	profiles, ctx := a.ports.Profile, a.ctx
	return tea.Batch(
		func() tea.Msg {
			p, err := profiles.Current(ctx)
			if errors.Is(err, domain.ErrNotFound) {
				return messages.ActiveProfileLoaded{}
			}
			return messages.ActiveProfileLoaded{Profile: p, Err: err}
		},
		func() tea.Msg {
			list, err := profiles.List(ctx)
			if err != nil {
				return messages.ErrorOccurred{Err: fmt.Errorf("list profiles: %w", err)}
			}
			owners := make(map[string]string, len(list))
			for _, p := range list {
				owners[p.ID] = p.Name
			}
			return messages.OwnersLoaded{Owners: owners}
		},
	)
}

func (a *App) loadSuggestions() tea.Cmd {
	svc, ctx, active := a.ports.Search, a.ctx, a.searchView.ActiveProfile()
	return func() tea.Msg {
		chips, err := svc.Suggestions(ctx, active)
		return messages.SuggestionsLoaded{Chips: chips, Err: err}
	}
}

func (a *App) startWatch() tea.Cmd {
	if a.ports.Notifier == nil {
		return nil
	}
	notifier, ctx := a.ports.Notifier, a.ctx
	return func() tea.Msg {
		ch, err := notifier.Watch(ctx)
		return watchStarted{changes: ch, err: err}
	}
}

// waitForChange blocks until the notifier fires. A closed channel ends the wait.
func waitForChange(ch <-chan struct{}) tea.Cmd {
	return func() tea.Msg {
		if _, ok := <-ch; !ok {
			return nil
		}
		return messages.StoreChanged{}
	}
}

func (a *App) scheduleLockCheck() tea.Cmd {
	if a.ports.Vault == nil {
		return nil
	}
	return tea.Tick(lockCheckInterval, func(time.Time) tea.Msg { return lockCheck{} })
}

func (a *App) loadDocument(id, field string) tea.Cmd {
	if a.ports.Document == nil {
		return nil
	}
	svc, ctx, owners := a.ports.Document, a.ctx, a.owners
	return func() tea.Msg {
		doc, err := svc.Get(ctx, id)
		if err != nil {
			return messages.DocumentLoaded{Err: err}
		}
		return messages.DocumentLoaded{Document: doc, Owner: owners[doc.ProfileID], Field: field}
	}
}

func (a *App) unlock(pin string) tea.Cmd {
	vault, ctx := a.ports.Vault, a.ctx
	return func() tea.Msg {
		return messages.UnlockCompleted{Err: vault.Unlock(ctx, pin)}
	}
}

// lock switches to the unlock view.
func (a *App) lock() tea.Cmd {
	a.currentView = messages.ViewUnlock
	a.searchView.Reset()
	a.docDetailsView.SetDocument(nil, "")
	return a.unlockView.Reset()
}

// lockNow handles the lock key. Without a PIN there is nothing to unlock
// with, so the key only explains how to set one.
func (a *App) lockNow() tea.Cmd {
	initialised, err := a.ports.Vault.IsInitialized(a.ctx)
	if err != nil {
		logger.Warn("Vault status unavailable: %v", err)
		a.err = err
		a.searchView.Notify("Vault status unavailable, not locking")
		return nil
	}
	if !initialised {
		a.searchView.Notify(noPINMessage)
		return nil
	}
	a.ports.Vault.Lock()
	logger.Debug("Vault locked from TUI")
	return a.lock()
}

// Update implements tea.Model.
//
//nolint:gocyclo // central message handler
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.SetDimensions(msg.Width, msg.Height)
		return a, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return a, tea.Quit
		}
		if a.currentView != messages.ViewUnlock && a.ports.Vault != nil {
			if keymap.Matches(msg.String(), a.keymap.Lock) {
				return a, a.lockNow()
			}
			a.ports.Vault.Touch()
		}
		return a, a.forward(msg)

	case lockCheck:
		var lockCmd tea.Cmd
		if a.currentView != messages.ViewUnlock && a.locked() {
			lockCmd = a.lock()
		}
		return a, tea.Batch(lockCmd, a.scheduleLockCheck())

	case watchStarted:
		if msg.err != nil {
			logger.Warn("Change notifications unavailable: %v", msg.err)
			return a, nil
		}
		a.changes = msg.changes
		return a, waitForChange(a.changes)

	case messages.StoreChanged:
		logger.Debug("Data directory changed, reloading")
		var cmds []tea.Cmd
		if a.changes != nil {
			cmds = append(cmds, waitForChange(a.changes))
		}
		if a.currentView != messages.ViewUnlock {
			cmds = append(cmds, a.loadData(), a.searchView.Refresh())
		}
		return a, tea.Batch(cmds...)

	case messages.UnlockRequested:
		if a.ports.Vault == nil {
			return a, nil
		}
		return a, a.unlock(msg.PIN)

	case messages.UnlockCompleted:
		a.unlockView, cmd = a.unlockView.Update(msg)
		if msg.Err != nil {
			return a, cmd
		}
		a.currentView = messages.ViewSearch
		return a, tea.Batch(a.searchView.Init(), a.loadData())

	case messages.ActiveProfileLoaded:
		if msg.Err != nil {
			a.err = msg.Err
			a.searchView, cmd = a.searchView.Update(messages.ErrorOccurred{Err: msg.Err})
			return a, cmd
		}
		if msg.Profile != nil {
			a.searchView.SetActiveProfile(msg.Profile.ID, msg.Profile.Name)
		} else {
			a.searchView.SetActiveProfile("", "")
		}
		return a, a.loadSuggestions()

	case messages.OwnersLoaded:
		a.owners = msg.Owners
		a.searchView, cmd = a.searchView.Update(msg)
		return a, cmd

	case messages.DocumentSelected:
		return a, a.loadDocument(msg.ID, msg.Field)

	case messages.DocumentLoaded:
		if msg.Err != nil {
			a.err = msg.Err
			a.searchView, cmd = a.searchView.Update(messages.ErrorOccurred{Err: msg.Err})
			return a, cmd
		}
		a.docDetailsView.SetDocument(msg.Document, msg.Owner)
		a.docDetailsView.SelectField(msg.Field)
		a.currentView = messages.ViewDocDetails
		return a, nil

	case messages.ViewChanged:
		a.currentView = msg.View
		return a, nil

	case messages.ErrorOccurred:
		a.err = msg.Err
	}

	return a, a.forward(msg)
}

// forward passes a message to the active view.
func (a *App) forward(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	switch a.currentView {
	case messages.ViewUnlock:
		a.unlockView, cmd = a.unlockView.Update(msg)
	case messages.ViewDocDetails:
		a.docDetailsView, cmd = a.docDetailsView.Update(msg)
	default:
		a.searchView, cmd = a.searchView.Update(msg)
		a.err = a.searchView.Err()
	}
	return cmd
}

// View implements tea.Model.
func (a *App) View() string {
	if !a.ready {
		return "Initialising..."
	}

	switch a.currentView {
	case messages.ViewUnlock:
		return a.unlockView.View()
	case messages.ViewDocDetails:
		return a.docDetailsView.View()
	default:
		return a.searchView.View()
	}
}

// Run starts the TUI application.
func (a *App) Run() error {
	p := tea.NewProgram(a, tea.WithAltScreen(), tea.WithContext(a.ctx))
	_, err := p.Run()
	return err
}

// CurrentView returns the current view type.
func (a *App) CurrentView() messages.ViewType {
	return a.currentView
}

// SearchView exposes the search view.
func (a *App) SearchView() *search.View {
	return a.searchView
}

// DocDetailsView exposes the document details view.
func (a *App) DocDetailsView() *docdetails.View {
	return a.docDetailsView
}

// Err returns the last error that occurred.
func (a *App) Err() error {
	return a.err
}

// Ready returns whether the app has been sized.
func (a *App) Ready() bool {
	return a.ready
}

// SetDimensions sets the terminal dimensions on every view.
func (a *App) SetDimensions(width, height int) {
	a.width = width
	a.height = height
	a.ready = true
	a.searchView.SetDimensions(width, height)
	a.unlockView.SetDimensions(width, height)
	a.docDetailsView.SetDimensions(width, height)
}
