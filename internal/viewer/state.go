package viewer

import (
	"fmt"
	"strings"
)

// Flashcard is one question/answer pair as shown to the learner.
type Flashcard struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// Phase is the request lifecycle of a study session.
type Phase int

const (
	// PhaseIdle is the initial phase: no request made yet.
	PhaseIdle Phase = iota
	// PhaseLoading means a request is in flight.
	PhaseLoading
	// PhaseReady means a non-empty deck is on screen.
	PhaseReady
	// PhaseEmpty means the last request produced no cards, either because it
	// failed or because the deck came back empty.
	PhaseEmpty
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseLoading:
		return "loading"
	case PhaseReady:
		return "ready"
	case PhaseEmpty:
		return "empty"
	default:
		return fmt.Sprintf("phase(%d)", int(p))
	}
}

// State is the full viewer state.
//
// Invariant: when Phase is PhaseReady, Deck is non-empty and
// 0 <= Index < len(Deck). In every other phase Deck is nil, Index is 0 and
// Revealed is false.
type State struct {
	Topic    string
	Phase    Phase
	Deck     []Flashcard
	Index    int
	Revealed bool
}

// New returns the initial state.
func New() State {
	return State{Phase: PhaseIdle}
}

// Loading reports whether a request is in flight.
func (s State) Loading() bool {
	return s.Phase == PhaseLoading
}

// SetTopic replaces the topic text. Allowed in every phase.
func (s State) SetTopic(topic string) State {
	s.Topic = topic
	return s
}

// CanSubmit reports whether Submit would dispatch a request.
func (s State) CanSubmit() bool {
	return !s.Loading() && strings.TrimSpace(s.Topic) != ""
}

// Submit starts a request for the current topic. The previous deck is
// cleared and navigation reset before dispatch. The boolean is true when the
// caller must now issue the request; otherwise the state is unchanged.
func (s State) Submit() (State, bool) {
	if !s.CanSubmit() {
		return s, false
	}
	return State{Topic: s.Topic, Phase: PhaseLoading}, true
}

// Loaded settles a request with deck. An empty deck lands in PhaseEmpty.
// Ignored unless a request is in flight.
func (s State) Loaded(deck []Flashcard) State {
	if !s.Loading() {
		return s
	}
	if len(deck) == 0 {
		return State{Topic: s.Topic, Phase: PhaseEmpty}
	}

	cards := make([]Flashcard, len(deck))
	copy(cards, deck)
	return State{Topic: s.Topic, Phase: PhaseReady, Deck: cards}
}

// Failed settles a request that did not produce a deck. The cause is not
// kept: the viewer shows an empty deck whatever went wrong, so callers log
// it themselves. Ignored unless a request is in flight.
func (s State) Failed(error) State {
	if !s.Loading() {
		return s
	}
	return State{Topic: s.Topic, Phase: PhaseEmpty}
}

// CanPrev reports whether Prev would move.
func (s State) CanPrev() bool {
	return s.Phase == PhaseReady && s.Index > 0
}

// CanNext reports whether Next would move.
func (s State) CanNext() bool {
	return s.Phase == PhaseReady && s.Index < len(s.Deck)-1
}

// Next moves to the following card, face down. No-op on the last card.
func (s State) Next() State {
	if !s.CanNext() {
		return s
	}
	s.Index++
	s.Revealed = false
	return s
}

// Prev moves to the preceding card, face down. No-op on the first card.
func (s State) Prev() State {
	if !s.CanPrev() {
		return s
	}
	s.Index--
	s.Revealed = false
	return s
}

// Flip toggles between question and answer of the current card.
func (s State) Flip() State {
	if s.Phase != PhaseReady {
		return s
	}
	s.Revealed = !s.Revealed
	return s
}

// Current returns the card at Index.
func (s State) Current() (Flashcard, bool) {
	if s.Phase != PhaseReady {
		return Flashcard{}, false
	}
	return s.Deck[s.Index], true
}

// Progress renders the 1-based position, e.g. "3 / 20". Empty unless a deck
// is on screen.
func (s State) Progress() string {
	if s.Phase != PhaseReady {
		return ""
	}
	return fmt.Sprintf("%d / %d", s.Index+1, len(s.Deck))
}
