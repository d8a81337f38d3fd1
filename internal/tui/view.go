package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/phrazzld/flashdeck/internal/viewer"
)

// View implements tea.Model.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("AI Flashcard Generator"))
	b.WriteString("\n\n")
	b.WriteString(m.searchBar())
	b.WriteString("\n\n")

	switch m.state.Phase {
	case viewer.PhaseLoading:
		b.WriteString(m.spinner.View() + " Generating flashcards...")
	case viewer.PhaseReady:
		b.WriteString(m.cardView())
		b.WriteString("\n")
		b.WriteString(m.navigation())
	case viewer.PhaseEmpty:
		b.WriteString(mutedStyle.Render("No flashcards generated."))
	default:
		b.WriteString(mutedStyle.Render("Type a topic and press enter."))
	}

	b.WriteString("\n\n")
	if m.focus == focusInput {
		b.WriteString(m.help.View(inputKeys(m.keys)))
	} else {
		b.WriteString(m.help.View(cardKeys(m.keys)))
	}
	b.WriteString("\n")
	return b.String()
}

func (m Model) searchBar() string {
	label := "Generate"
	style := buttonStyle
	if m.state.Loading() {
		label = "Generating..."
	}
	if !m.state.CanSubmit() {
		style = disabledButtonStyle
	}
	return lipgloss.JoinHorizontal(lipgloss.Center, m.input.View(), " ", style.Render(label))
}

func (m Model) cardView() string {
	card, ok := m.state.Current()
	if !ok {
		return ""
	}

	label, text := "Question", card.Question
	if m.state.Revealed {
		label, text = "Answer", card.Answer
	}

	style := cardStyle
	if m.focus == focusCard {
		style = focusedCardStyle
	}

	body := faceLabelStyle.Render(label) + "\n\n" + m.renderFace(text)
	hint := mutedStyle.Render("space to flip")
	return style.Width(m.cardWidth()).Render(body + "\n\n" + hint)
}

// renderFace renders card text as markdown when a renderer is configured.
func (m Model) renderFace(text string) string {
	if m.renderer == nil {
		return text
	}
	out, err := m.renderer.Render(text)
	if err != nil {
		m.logger.Debug("markdown render failed, using plain text", "error", err)
		return text
	}
	return strings.Trim(out, "\n")
}

func (m Model) navigation() string {
	prev, next := mutedStyle.Render("← prev"), mutedStyle.Render("next →")
	if m.state.CanPrev() {
		prev = "← prev"
	}
	if m.state.CanNext() {
		next = "next →"
	}

	total := len(m.state.Deck)
	ratio := float64(m.state.Index+1) / float64(total)

	return fmt.Sprintf("%s  %s  %s\n%s",
		prev, m.state.Progress(), next, m.progress.ViewAs(ratio))
}
