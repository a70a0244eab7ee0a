package cli

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/versedeck/versedeck/pkg/review"
)

// Card styles
var (
	cardFrameStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorDim).
			Padding(1, 2).
			Width(60)

	cardReferenceStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	cardTextStyle      = lipgloss.NewStyle().Foreground(colorWhite)
	cardHiddenStyle    = lipgloss.NewStyle().Foreground(colorDim).Italic(true)
)

// reviewModel is the bubbletea model for a review session. It drives both
// flashcard and swipe modes: flashcard hides the text until revealed,
// swipe shows everything and grades directly.
type reviewModel struct {
	ctx      context.Context
	session  *review.Session
	revealed bool
	finished bool
}

func newReviewModel(ctx context.Context, s *review.Session) reviewModel {
	return reviewModel{ctx: ctx, session: s}
}

func (m reviewModel) Init() tea.Cmd {
	return nil
}

func (m reviewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.String() {
	case "q", "ctrl+c", "esc":
		return m, tea.Quit

	case " ", "enter":
		if m.session.Mode() == review.ModeFlashcard && !m.revealed {
			m.revealed = true
		}
		return m, nil

	case "s":
		m.session.Skip()
		m.revealed = false
		return m.advance()

	case "y", "right":
		return m.grade(true)

	case "n", "left":
		return m.grade(false)
	}
	return m, nil
}

func (m reviewModel) grade(remembered bool) (tea.Model, tea.Cmd) {
	// Flashcard mode grades only after the text is revealed.
	if m.session.Mode() == review.ModeFlashcard && !m.revealed {
		return m, nil
	}
	if err := m.session.Grade(m.ctx, remembered); err != nil {
		return m, tea.Quit
	}
	m.revealed = false
	return m.advance()
}

func (m reviewModel) advance() (tea.Model, tea.Cmd) {
	if m.session.Done() {
		m.finished = true
		return m, tea.Quit
	}
	return m, nil
}

func (m reviewModel) View() string {
	if m.finished {
		return ""
	}
	item, ok := m.session.Current()
	if !ok {
		return ""
	}

	var b strings.Builder
	b.WriteString(StyleTitle.Render(m.session.Pack().Name))
	b.WriteString(StyleDim.Render(fmt.Sprintf("  %d left", m.session.Remaining())))
	b.WriteString("\n\n")

	var card strings.Builder
	card.WriteString(cardReferenceStyle.Render(item.Verse.Reference))
	if item.Verse.Translation != "" {
		card.WriteString(StyleDim.Render(" (" + item.Verse.Translation + ")"))
	}
	card.WriteString("\n\n")

	showText := m.session.Mode() == review.ModeSwipe || m.revealed
	if showText {
		card.WriteString(cardTextStyle.Render(item.Verse.Text))
	} else {
		card.WriteString(cardHiddenStyle.Render("(recite, then press space to reveal)"))
	}
	card.WriteString("\n\n")
	card.WriteString(renderHealth(item.Health))

	b.WriteString(cardFrameStyle.Render(card.String()))
	b.WriteString("\n\n")
	b.WriteString(StyleDim.Render(m.helpLine(showText)))
	return b.String()
}

func (m reviewModel) helpLine(revealed bool) string {
	if m.session.Mode() == review.ModeSwipe {
		return "→/y remembered  ←/n missed  s skip  q quit"
	}
	if !revealed {
		return "space reveal  s skip  q quit"
	}
	return "y remembered  n missed  s skip  q quit"
}
