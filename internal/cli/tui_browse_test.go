package cli

import (
	"strings"
	"testing"

	"github.com/versedeck/versedeck/pkg/deck"
	"github.com/versedeck/versedeck/pkg/rolodex"
)

func testBrowseModel(t *testing.T) browseModel {
	t.Helper()

	pack, err := deck.NewPack("Browse Pack", "")
	if err != nil {
		t.Fatalf("NewPack: %v", err)
	}
	verses := []struct{ ref, text string }{
		{"John 3:16", "For God so loved the world"},
		{"Psalm 23:1", "The LORD is my shepherd"},
		{"Romans 8:28", "All things work together for good"},
	}
	for _, v := range verses {
		verse, err := deck.NewVerse(v.ref, v.text, "web")
		if err != nil {
			t.Fatalf("NewVerse: %v", err)
		}
		if err := pack.AddVerse(verse); err != nil {
			t.Fatalf("AddVerse: %v", err)
		}
	}

	engine, err := rolodex.New(rolodex.DefaultConfig())
	if err != nil {
		t.Fatalf("rolodex.New: %v", err)
	}
	return newBrowseModel(pack, engine)
}

func TestBrowseInitialViewShowsFirstVerse(t *testing.T) {
	m := testBrowseModel(t)

	view := m.View()
	if !strings.Contains(view, "John 3:16") {
		t.Error("initial view should show the first card's reference")
	}
	if !strings.Contains(view, "For God so loved") {
		t.Error("card on the prominence line should show its text")
	}
}

func TestBrowseProminentTextThreshold(t *testing.T) {
	m := testBrowseModel(t)
	id := m.cards[0]

	// At half fade the text appears, matching the engine's own
	// prominence threshold.
	m.states[id] = rolodex.RenderState{IsProminent: true, ProminenceFactor: 0.5}
	if out := m.renderProminent(id); !strings.Contains(out, "For God so loved") {
		t.Error("card at half fade should show the verse text")
	}

	m.states[id] = rolodex.RenderState{IsProminent: true, ProminenceFactor: 0.4}
	out := m.renderProminent(id)
	if strings.Contains(out, "For God so loved") {
		t.Error("card below half fade should not show the verse text")
	}
	if !strings.Contains(out, "settling") {
		t.Error("card below half fade should show the settling note")
	}
}

func TestBrowsePartitionKeepsSettlingCardVisible(t *testing.T) {
	m := testBrowseModel(t)
	depth := float64(m.engine.Config().MaxVisibleStackDepth)

	// A card in the prominence slot that has not faded in yet is not
	// marked prominent; it must still render with the angled cards.
	m.states = map[rolodex.CardID]rolodex.RenderState{
		m.cards[0]: {VerticalOffset: 12, ZIndex: 1, ProminenceFactor: 0.2},
		m.cards[1]: {ZIndex: depth + 1, ProminenceFactor: 0.3},
		m.cards[2]: {ZIndex: depth + 2, TiltDegrees: 55},
	}

	stacked, prominent, angled := m.partition()
	if prominent != "" {
		t.Errorf("no card should be prominent, got %q", prominent)
	}
	if len(stacked) != 1 || stacked[0] != m.cards[0] {
		t.Errorf("stacked = %v, want [%s]", stacked, m.cards[0])
	}
	if len(angled) != 2 {
		t.Fatalf("angled = %v, want both remaining cards", angled)
	}
	if angled[0] != m.cards[1] {
		t.Errorf("settling card should render nearest, got %v", angled)
	}
}

func TestBrowseScrollAdvancesProminence(t *testing.T) {
	m := testBrowseModel(t)
	cfg := m.engine.Config()

	m.scroll = cfg.CardHeight
	m.recompute()

	id, ok := m.prominentCard()
	if !ok {
		t.Fatal("a card should be prominent after scrolling one card height")
	}
	if id != m.cards[1] {
		t.Errorf("prominent card = %s, want %s", id, m.cards[1])
	}
}
