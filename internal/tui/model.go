// Package tui is the terminal front end of the flashcard viewer. It renders a
// viewer.State and routes key presses and request results through its
// transitions, so the rules about loading and deck boundaries live in one place.
package tui

import (
	"context"
	"log/slog"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/google/uuid"
	"github.com/phrazzld/flashdeck/internal/viewer"
)

// Generator fetches a deck for a topic.
type Generator interface {
	GenerateFlashcards(ctx context.Context, topic string) ([]viewer.Flashcard, error)
}

// RendererFactory builds a markdown renderer wrapping at width columns.
type RendererFactory func(width int) (*glamour.TermRenderer, error)

type focusArea int

const (
	focusInput focusArea = iota
	focusCard
)

const (
	defaultWidth = 80
	minCardWidth = 24
)

// deckLoadedMsg carries a successful response. requestID ties it to the
// submit that caused it.
type deckLoadedMsg struct {
	requestID string
	cards     []viewer.Flashcard
}

// deckFailedMsg carries a failed request.
type deckFailedMsg struct {
	requestID string
	err       error
}

// Model is the bubbletea model for a study session.
type Model struct {
	ctx       context.Context
	generator Generator
	logger    *slog.Logger

	state     viewer.State
	requestID string
	started   time.Time
	focus     focusArea

	keys     KeyMap
	input    textinput.Model
	spinner  spinner.Model
	progress progress.Model
	help     help.Model

	newRenderer RendererFactory
	renderer    *glamour.TermRenderer

	width      int
	autoSubmit bool
}

// Option configures a Model.
type Option func(*Model)

// WithTopic pre-fills the topic and submits it when the program starts.
func WithTopic(topic string) Option {
	return func(m *Model) {
		m.input.SetValue(topic)
		m.state = m.state.SetTopic(topic)
		m.autoSubmit = true
	}
}

// WithRenderer renders card faces as markdown. Without it faces are shown
// as plain text.
func WithRenderer(factory RendererFactory) Option {
	return func(m *Model) {
		m.newRenderer = factory
	}
}

// New creates the study model. ctx bounds every request the model issues.
func New(ctx context.Context, generator Generator, logger *slog.Logger, opts ...Option) Model {
	if logger == nil {
		logger = slog.Default()
	}

	input := textinput.New()
	input.Placeholder = "Enter a topic, e.g. Photosynthesis"
	input.Prompt = "› "
	input.CharLimit = 200
	input.Focus()

	m := Model{
		ctx:       ctx,
		generator: generator,
		logger:    logger.With("component", "study_tui"),
		state:     viewer.New(),
		focus:     focusInput,
		keys:      DefaultKeyMap(),
		input:     input,
		spinner:   spinner.New(spinner.WithSpinner(spinner.Dot)),
		progress:  progress.New(progress.WithDefaultGradient(), progress.WithoutPercentage()),
		help:      help.New(),
	}
	for _, opt := range opts {
		opt(&m)
	}
	m.resize(defaultWidth)
	return m
}

// State returns the current viewer state.
func (m Model) State() viewer.State {
	return m.state
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	if m.autoSubmit {
		return func() tea.Msg { return autoSubmitMsg{} }
	}
	return textinput.Blink
}

// autoSubmitMsg triggers the submit requested with WithTopic.
type autoSubmitMsg struct{}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width)
		return m, nil

	case autoSubmitMsg:
		return m.submit()

	case spinner.TickMsg:
		if !m.state.Loading() {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case deckLoadedMsg:
		if msg.requestID != m.requestID {
			return m, nil
		}
		m.state = m.state.Loaded(msg.cards)
		m.logger.Info("deck loaded",
			"request_id", msg.requestID,
			"card_count", len(msg.cards),
			"elapsed_ms", time.Since(m.started).Milliseconds())
		if m.state.Phase == viewer.PhaseReady {
			m.setFocus(focusCard)
		}
		return m, nil

	case deckFailedMsg:
		if msg.requestID != m.requestID {
			return m, nil
		}
		m.logger.Error("Error fetching flashcards",
			"request_id", msg.requestID,
			"error", msg.err,
			"elapsed_ms", time.Since(m.started).Milliseconds())
		m.state = m.state.Failed(msg.err)
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.ForceQuit) {
		return m, tea.Quit
	}

	if m.focus == focusInput {
		switch {
		case key.Matches(msg, m.keys.Submit):
			return m.submit()
		case key.Matches(msg, m.keys.Focus), key.Matches(msg, m.keys.Leave):
			m.setFocus(focusCard)
			return m, nil
		}

		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		m.state = m.state.SetTopic(m.input.Value())
		return m, cmd
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Focus):
		m.setFocus(focusInput)
		return m, textinput.Blink
	case key.Matches(msg, m.keys.Prev):
		m.state = m.state.Prev()
	case key.Matches(msg, m.keys.Next):
		m.state = m.state.Next()
	case key.Matches(msg, m.keys.Flip):
		m.state = m.state.Flip()
	}
	return m, nil
}

// submit dispatches a request when the state allows it.
func (m Model) submit() (tea.Model, tea.Cmd) {
	next, dispatch := m.state.Submit()
	if !dispatch {
		return m, nil
	}
	m.state = next
	m.requestID = uuid.NewString()
	m.started = time.Now()

	m.logger.Info("requesting flashcards",
		"request_id", m.requestID,
		"topic_length", len(m.state.Topic))

	return m, tea.Batch(m.spinner.Tick, m.fetch(m.requestID, m.state.Topic))
}

func (m Model) fetch(requestID, topic string) tea.Cmd {
	ctx, generator := m.ctx, m.generator
	return func() tea.Msg {
		cards, err := generator.GenerateFlashcards(ctx, topic)
		if err != nil {
			return deckFailedMsg{requestID: requestID, err: err}
		}
		return deckLoadedMsg{requestID: requestID, cards: cards}
	}
}

func (m *Model) setFocus(f focusArea) {
	m.focus = f
	if f == focusInput {
		m.input.Focus()
	} else {
		m.input.Blur()
	}
}

func (m *Model) resize(width int) {
	if width <= 0 {
		width = defaultWidth
	}
	m.width = width
	m.input.Width = max(width-20, 10)
	m.progress.Width = max(width-16, 10)
	m.help.Width = width

	if m.newRenderer == nil {
		return
	}
	r, err := m.newRenderer(m.cardWidth() - 4)
	if err != nil {
		m.logger.Warn("markdown renderer unavailable, using plain text", "error", err)
		m.renderer = nil
		return
	}
	m.renderer = r
}

func (m Model) cardWidth() int {
	return max(min(m.width-4, 100), minCardWidth)
}
