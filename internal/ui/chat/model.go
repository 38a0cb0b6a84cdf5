// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package chat

import (
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"

	"github.com/wellbot/wellbot-tui/internal/api"
	"github.com/wellbot/wellbot-tui/internal/model"
	"github.com/wellbot/wellbot-tui/internal/storage"
	"github.com/wellbot/wellbot-tui/internal/ui/styles"
)

// =============================================================================
// CHAT STATE
// =============================================================================

// State represents the current state of the chat screen.
type State int

const (
	StateLoading State = iota // Transcript loading from disk
	StateReady                // Ready for input
	StateWaiting              // Waiting for the bot's reply
)

// =============================================================================
// CHAT MODEL
// =============================================================================

// Model is the Bubble Tea model for the chat screen.
type Model struct {
	// State
	state State

	// Styling
	theme    *styles.Theme
	renderer *glamour.TermRenderer

	// Dimensions
	width  int
	height int

	// Session
	user model.User

	// Transcript
	messages []model.Message
	history  *storage.HistoryStore

	// Server
	client *api.Client
	seq    int

	// UI components
	viewport viewport.Model
	input    textinput.Model
	spinner  spinner.Model

	// Key bindings
	keys KeyMap

	// Transient error shown under the input
	errMsg string
}

// New creates the chat screen for the given user. The transcript is
// loaded by Init.
func New(theme *styles.Theme, client *api.Client, history *storage.HistoryStore, user model.User) *Model {
	ti := textinput.New()
	ti.Placeholder = "Type your wellness question..."
	ti.CharLimit = 2000
	ti.Focus()

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = theme.Spinner

	vp := viewport.New(80, 20)

	return &Model{
		state:    StateLoading,
		theme:    theme,
		user:     user,
		history:  history,
		client:   client,
		viewport: vp,
		input:    ti,
		spinner:  sp,
		keys:     DefaultKeyMap(),
	}
}

// Init implements tea.Model. It kicks off the transcript load.
func (m *Model) Init() tea.Cmd {
	history := m.history
	username := m.user.Username
	return tea.Batch(
		m.spinner.Tick,
		func() tea.Msg {
			messages, err := history.Load(username)
			return historyLoadedMsg{messages: messages, err: err}
		},
	)
}

// User returns the signed-in user shown by this screen.
func (m *Model) User() model.User {
	return m.user
}

// SetUser refreshes the session user after a profile update. The
// transcript cache is keyed by username, so a rename reloads it.
func (m *Model) SetUser(user model.User) tea.Cmd {
	renamed := user.Username != m.user.Username
	m.user = user
	if !renamed {
		return nil
	}
	m.state = StateLoading
	history := m.history
	username := user.Username
	return func() tea.Msg {
		messages, err := history.Load(username)
		return historyLoadedMsg{messages: messages, err: err}
	}
}

// SetSize updates the layout and rebuilds the markdown renderer at the
// new wrap width.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height

	// Header, input box and status bar share the vertical space.
	vpHeight := height - 8
	if vpHeight < 3 {
		vpHeight = 3
	}
	m.viewport.Width = width
	m.viewport.Height = vpHeight
	m.input.Width = width - 8

	wrap := width - 12
	if wrap < 20 {
		wrap = 20
	}
	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(wrap),
	)
	if err == nil {
		m.renderer = renderer
	}

	m.refreshViewport()
}
