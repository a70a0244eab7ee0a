package cli

import (
	"strings"
	"testing"

	"github.com/versedeck/versedeck/pkg/deck"
	"github.com/versedeck/versedeck/pkg/progress"
)

func TestSanitizeFilename(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Romans Road", "romans-road"},
		{"Psalm 23:1-6", "psalm-23-1-6"},
		{"a/b", "a-b"},
	}
	for _, tt := range tests {
		if got := sanitizeFilename(tt.in); got != tt.want {
			t.Errorf("sanitizeFilename(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestStatsGraphNamesPackAndVerses(t *testing.T) {
	pack, err := deck.NewPack("Stats Pack", "")
	if err != nil {
		t.Fatalf("NewPack: %v", err)
	}
	verse, err := deck.NewVerse("John 3:16", "For God so loved the world", "web")
	if err != nil {
		t.Fatalf("NewVerse: %v", err)
	}
	if err := pack.AddVerse(verse); err != nil {
		t.Fatalf("AddVerse: %v", err)
	}

	dot := progress.ToDOT(&pack, map[string]deck.Health{}, progress.Options{})
	if !strings.Contains(dot, "Stats Pack") {
		t.Error("DOT output should name the pack")
	}
	if !strings.Contains(dot, "John 3:16") {
		t.Error("DOT output should name the verse reference")
	}
}
