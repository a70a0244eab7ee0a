package cli

import (
	"fmt"
	"sort"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/versedeck/versedeck/pkg/deck"
	"github.com/versedeck/versedeck/pkg/rolodex"
)

// Browse styles
var (
	browseProminentStyle = lipgloss.NewStyle().
				Border(lipgloss.DoubleBorder()).
				BorderForeground(colorCyan).
				Padding(1, 2).
				Width(60)

	browseStackedStyle = lipgloss.NewStyle().Foreground(colorDim)
	browseAngledStyle  = lipgloss.NewStyle().Foreground(colorGray)
	browseFadedStyle   = lipgloss.NewStyle().Foreground(colorDim)
)

// scrollStep is how far one key press moves the deck, in layout units.
const scrollStep = 40

// browseModel is the bubbletea model for the rolodex browser. Scrolling
// produces a position snapshot per frame; the layout engine turns it into
// per-card render states, which the view translates into terminal output.
type browseModel struct {
	pack   deck.Pack
	engine *rolodex.Engine

	cards  []rolodex.CardID
	byID   map[rolodex.CardID]deck.Verse
	scroll float64
	anchor rolodex.CardID

	previous rolodex.PositionSnapshot
	states   map[rolodex.CardID]rolodex.RenderState
}

func newBrowseModel(pack deck.Pack, engine *rolodex.Engine) browseModel {
	m := browseModel{
		pack:   pack,
		engine: engine,
		byID:   make(map[rolodex.CardID]deck.Verse, len(pack.Verses)),
	}
	for _, v := range pack.Verses {
		id := rolodex.CardID(v.ID)
		m.cards = append(m.cards, id)
		m.byID[id] = v
	}
	m.recompute()
	return m
}

// snapshot derives card positions from the scroll offset: card i rests at
// the prominence line plus i card heights, shifted up as the user scrolls.
func (m *browseModel) snapshot() rolodex.PositionSnapshot {
	cfg := m.engine.Config()
	snap := make(rolodex.PositionSnapshot, len(m.cards))
	for i, id := range m.cards {
		snap[id] = cfg.ProminenceLine + float64(i)*cfg.CardHeight - m.scroll
	}
	return snap
}

// recompute runs the layout engine. The previous snapshot only advances
// when the new one clears the tolerance gate, so jitter below the
// threshold keeps producing identical geometry.
func (m *browseModel) recompute() {
	next := m.snapshot()
	m.states = m.engine.ComputeRenderStates(m.cards, next, m.anchor, m.previous)
	if len(m.previous) == 0 || m.engine.Changed(next, m.previous) {
		m.previous = next
	}
}

func (m browseModel) maxScroll() float64 {
	return float64(len(m.cards)-1) * m.engine.Config().CardHeight
}

func (m browseModel) Init() tea.Cmd {
	return nil
}

func (m browseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.String() {
	case "q", "ctrl+c", "esc":
		if m.anchor != "" {
			m.anchor = ""
			m.recompute()
			return m, nil
		}
		return m, tea.Quit

	case "down", "j":
		m.scroll = min(m.scroll+scrollStep, m.maxScroll())
		m.recompute()

	case "up", "k":
		m.scroll = max(m.scroll-scrollStep, 0)
		m.recompute()

	case "pgdown", "J":
		m.scroll = min(m.scroll+m.engine.Config().CardHeight, m.maxScroll())
		m.recompute()

	case "pgup", "K":
		m.scroll = max(m.scroll-m.engine.Config().CardHeight, 0)
		m.recompute()

	case "home", "g":
		m.scroll = 0
		m.recompute()

	case "end", "G":
		m.scroll = m.maxScroll()
		m.recompute()

	case "enter":
		// Pin the prominent card; scrolling then happens around it.
		if id, ok := m.prominentCard(); ok {
			m.anchor = id
			m.recompute()
		}
	}
	return m, nil
}

func (m browseModel) prominentCard() (rolodex.CardID, bool) {
	for id, st := range m.states {
		if st.IsProminent {
			return id, true
		}
	}
	return "", false
}

func (m browseModel) View() string {
	var b strings.Builder
	b.WriteString(StyleTitle.Render(m.pack.Name))
	b.WriteString(StyleDim.Render(fmt.Sprintf("  %d cards", len(m.cards))))
	b.WriteString("\n\n")

	stacked, prominent, angled := m.partition()

	// Stack above the line, deepest card first.
	for _, id := range stacked {
		b.WriteString(browseStackedStyle.Render("▔ " + m.byID[id].Reference))
		b.WriteString("\n")
	}
	if len(stacked) > 0 {
		b.WriteString("\n")
	}

	if prominent != "" {
		b.WriteString(m.renderProminent(prominent))
		b.WriteString("\n")
	}

	// Angled cards below, nearest first, indented by tilt.
	for _, id := range angled {
		st := m.states[id]
		indent := strings.Repeat(" ", 2+int(st.TiltDegrees/10))
		style := browseAngledStyle
		if st.ProminenceFactor == 0 {
			style = browseFadedStyle
		}
		b.WriteString(indent + style.Render("╲ "+m.byID[id].Reference))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	help := "↑/↓ scroll  ⏎ pin  q quit"
	if m.anchor != "" {
		help = "↑/↓ scroll  esc unpin  q quit"
	}
	b.WriteString(StyleDim.Render(help))
	return b.String()
}

// partition splits cards into the stacked pile, the prominent card, and
// the angled cards below, each ordered for display.
func (m browseModel) partition() (stacked []rolodex.CardID, prominent rolodex.CardID, angled []rolodex.CardID) {
	depth := float64(m.engine.Config().MaxVisibleStackDepth)
	for _, id := range m.cards {
		st := m.states[id]
		switch {
		case st.IsProminent:
			prominent = id
		// A card in the prominence slot that has not faded in yet renders
		// with the angled cards rather than vanishing.
		case st.ZIndex > depth:
			angled = append(angled, id)
		case st.VerticalOffset > 0 && st.ZIndex > 0:
			stacked = append(stacked, id)
		}
	}

	// Deepest stacked card renders first; nearest angled card first.
	sort.SliceStable(stacked, func(i, j int) bool {
		return m.states[stacked[i]].ZIndex < m.states[stacked[j]].ZIndex
	})
	sort.SliceStable(angled, func(i, j int) bool {
		return m.states[angled[i]].ZIndex < m.states[angled[j]].ZIndex
	})
	return stacked, prominent, angled
}

func (m browseModel) renderProminent(id rolodex.CardID) string {
	v := m.byID[id]
	st := m.states[id]

	var card strings.Builder
	card.WriteString(cardReferenceStyle.Render(v.Reference))
	if v.Translation != "" {
		card.WriteString(StyleDim.Render(" (" + v.Translation + ")"))
	}
	if id == m.anchor {
		card.WriteString(StyleHighlight.Render("  ⦿ pinned"))
	}
	card.WriteString("\n\n")

	// Full text appears once the card is within half fade of the line,
	// the same threshold the engine uses for prominence itself.
	if st.ProminenceFactor >= 0.5 {
		card.WriteString(cardTextStyle.Render(v.Text))
	} else {
		card.WriteString(cardHiddenStyle.Render(fmt.Sprintf("(settling, %.0f%%)", st.ProminenceFactor*100)))
	}
	return browseProminentStyle.Render(card.String())
}
