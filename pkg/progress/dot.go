package progress

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/versedeck/versedeck/pkg/deck"
)

// Options configures progress graph rendering.
type Options struct {
	// Detailed includes score and review count in verse labels.
	// When false, only the reference is shown.
	Detailed bool
}

// Fill colors per health level.
var levelColors = map[string]string{
	deck.LevelWeak:   "#f4cccc",
	deck.LevelFair:   "#fff2cc",
	deck.LevelStrong: "#d9ead3",
}

// ToDOT converts a pack and its health records to Graphviz DOT format.
// The pack is the root node; each verse hangs off it, filled by health
// level. Verses with no health record render as weak (score 0).
// The resulting DOT string can be rendered using [RenderSVG].
func ToDOT(pack *deck.Pack, health map[string]deck.Health, opts Options) string {
	var buf bytes.Buffer
	buf.WriteString("digraph G {\n")
	buf.WriteString("  rankdir=TB;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontsize=14, margin=\"0.2,0.1\"];\n")
	buf.WriteString("  ranksep=0.5;\n")
	buf.WriteString("  nodesep=0.3;\n")
	buf.WriteString("\n")

	fmt.Fprintf(&buf, "  %q [label=%q, shape=folder, fillcolor=\"#cfe2f3\"];\n", pack.ID, pack.Name)

	buf.WriteString("\n")
	for _, v := range pack.Verses {
		h := health[v.ID]
		label := fmtLabel(v, h, opts.Detailed)
		fmt.Fprintf(&buf, "  %q [label=%q, fillcolor=%q];\n", v.ID, label, levelColors[h.Level()])
	}

	buf.WriteString("\n")
	for _, v := range pack.Verses {
		fmt.Fprintf(&buf, "  %q -> %q;\n", pack.ID, v.ID)
	}

	buf.WriteString("}\n")
	return buf.String()
}

func fmtLabel(v deck.Verse, h deck.Health, detailed bool) string {
	label := v.Reference
	if v.Translation != "" {
		label += " (" + v.Translation + ")"
	}
	if !detailed {
		return label
	}

	parts := []string{
		fmt.Sprintf("score: %.1f", h.Score),
		fmt.Sprintf("reviews: %d", h.Reviews),
	}
	return label + "\n" + strings.Join(parts, "\n")
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
func RenderSVG(dot string) ([]byte, error) {
	ctx := context.Background()
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return buf.Bytes(), nil
}
