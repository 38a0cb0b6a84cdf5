// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package admin

import (
	"context"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/wellbot/wellbot-tui/internal/api"
	"github.com/wellbot/wellbot-tui/internal/model"
	"github.com/wellbot/wellbot-tui/internal/ui/components"
	"github.com/wellbot/wellbot-tui/internal/ui/styles"
)

// =============================================================================
// DASHBOARD MODE
// =============================================================================

// Mode is the dashboard's interaction state.
type Mode int

const (
	ModeBrowse  Mode = iota // Navigating stats, reviews, and the disease list
	ModeForm                // Adding or editing a disease
	ModeConfirm             // Confirming a delete
)

// =============================================================================
// ADMIN MODEL
// =============================================================================

// Model is the Bubble Tea model for the admin dashboard.
type Model struct {
	mode Mode

	theme  *styles.Theme
	client *api.Client
	keys   KeyMap

	// Data
	stats    *model.Stats
	reviews  []model.Review
	diseases []model.Disease

	// Disease list cursor
	cursor int

	// Add/edit form. editing holds the original disease name during an
	// edit; it is the path parameter for the PUT and empty for an add.
	// formFocus cycles name, symptoms, advice.
	editing   string
	formFocus int
	name      *components.TextField
	symptoms  *components.TextField
	advice    textarea.Model

	// Fetch/mutation bookkeeping
	seq      int
	pending  int // outstanding fetches from the current refresh
	spinner  spinner.Model
	errMsg   string
	notice   string

	width  int
	height int
}

// New creates the admin dashboard. Init starts the first fetch.
func New(theme *styles.Theme, client *api.Client) *Model {
	name := components.NewTextField("Name", "Disease name", true, false)
	symptoms := components.NewTextField("Symptoms (comma separated)", "fever, cough", true, false)

	ta := textarea.New()
	ta.Placeholder = "One advice item per line"
	ta.CharLimit = 2000
	ta.SetWidth(44)
	ta.SetHeight(4)

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = theme.Spinner

	return &Model{
		mode:     ModeBrowse,
		theme:    theme,
		client:   client,
		keys:     DefaultKeyMap(),
		name:     name,
		symptoms: symptoms,
		advice:   ta,
		spinner:  sp,
	}
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return m.refresh()
}

// SetSize updates the screen dimensions.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// refresh fetches stats, reviews, and the knowledge base in parallel,
// invalidating any responses still in flight.
func (m *Model) refresh() tea.Cmd {
	m.seq++
	m.pending = 3
	m.errMsg = ""

	seq := m.seq
	client := m.client

	return tea.Batch(
		m.spinner.Tick,
		func() tea.Msg {
			stats, err := client.AdminStats(context.Background())
			return statsMsg{seq: seq, stats: stats, err: err}
		},
		func() tea.Msg {
			resp, err := client.LatestReviews(context.Background())
			if err != nil {
				return reviewsMsg{seq: seq, err: err}
			}
			return reviewsMsg{seq: seq, reviews: resp.LatestReviews}
		},
		func() tea.Msg {
			resp, err := client.KnowledgeBase(context.Background())
			if err != nil {
				return knowledgeBaseMsg{seq: seq, err: err}
			}
			return knowledgeBaseMsg{seq: seq, diseases: resp.KnowledgeBase}
		},
	)
}

// openAdd switches to the form with empty fields.
func (m *Model) openAdd() tea.Cmd {
	m.mode = ModeForm
	m.editing = ""
	m.name.SetValue("")
	m.symptoms.SetValue("")
	m.advice.SetValue("")
	m.errMsg = ""
	m.notice = ""
	return m.focusForm()
}

// openEdit switches to the form seeded from the disease under the cursor.
func (m *Model) openEdit() tea.Cmd {
	if len(m.diseases) == 0 {
		return nil
	}
	d := m.diseases[m.cursor]
	m.mode = ModeForm
	m.editing = d.Name
	m.name.SetValue(d.Name)
	m.symptoms.SetValue(model.JoinSymptoms(d.Symptoms))
	m.advice.SetValue(model.JoinAdvice(d.Advice))
	m.errMsg = ""
	m.notice = ""
	return m.focusForm()
}

func (m *Model) focusForm() tea.Cmd {
	m.formFocus = 0
	return m.setFormFocus(0)
}

// setFormFocus focuses the form field at i: 0 name, 1 symptoms, 2 advice.
func (m *Model) setFormFocus(i int) tea.Cmd {
	m.formFocus = i
	m.name.Blur()
	m.symptoms.Blur()
	m.advice.Blur()
	switch i {
	case 0:
		return m.name.Focus()
	case 1:
		return m.symptoms.Focus()
	default:
		return m.advice.Focus()
	}
}

func (m *Model) cycleFormFocus(delta int) tea.Cmd {
	return m.setFormFocus(((m.formFocus+delta)%3 + 3) % 3)
}

// selected returns the disease under the cursor, if any.
func (m *Model) selected() (model.Disease, bool) {
	if m.cursor < 0 || m.cursor >= len(m.diseases) {
		return model.Disease{}, false
	}
	return m.diseases[m.cursor], true
}
