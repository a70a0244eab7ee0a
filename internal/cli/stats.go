package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/versedeck/versedeck/pkg/deck"
	"github.com/versedeck/versedeck/pkg/progress"
	"github.com/versedeck/versedeck/pkg/store"
)

// Output formats for the stats command.
const (
	formatTable = "table"
	formatDOT   = "dot"
	formatSVG   = "svg"
)

// statsCommand creates the stats command for progress reporting.
func (c *CLI) statsCommand() *cobra.Command {
	var (
		format   string
		output   string
		detailed bool
	)

	cmd := &cobra.Command{
		Use:   "stats <pack>",
		Short: "Show memorization progress for a pack",
		Long: `Show memorization progress for a pack.

Formats:

  table  per-verse health table in the terminal (default)
  dot    Graphviz DOT text, pack and verses colored by health
  svg    rendered SVG graph (use -o to write it to a file)`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runStats(cmd, args[0], format, output, detailed)
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", formatTable, "output format: table, dot, svg")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (svg defaults to <pack>.svg)")
	cmd.Flags().BoolVar(&detailed, "detailed", false, "include scores and review counts in graph labels")
	return cmd
}

func (c *CLI) runStats(cmd *cobra.Command, packName, format, output string, detailed bool) error {
	ctx := cmd.Context()

	st, err := c.openStore(cmd)
	if err != nil {
		return err
	}
	defer st.Close()

	pack, err := store.FindPackByName(ctx, st, packName)
	if err != nil {
		return fmt.Errorf("pack %q: %w", packName, err)
	}

	health := make(map[string]deck.Health, len(pack.Verses))
	for _, v := range pack.Verses {
		h, err := st.GetHealth(ctx, v.ID)
		if err != nil {
			return err
		}
		health[v.ID] = h
	}

	switch format {
	case formatTable:
		printStatsTable(pack, health)
		return nil

	case formatDOT:
		fmt.Print(progress.ToDOT(&pack, health, progress.Options{Detailed: detailed}))
		return nil

	case formatSVG:
		dot := progress.ToDOT(&pack, health, progress.Options{Detailed: detailed})
		svg, err := progress.RenderSVG(dot)
		if err != nil {
			return fmt.Errorf("render SVG: %w", err)
		}
		if output == "" {
			output = sanitizeFilename(pack.Name) + ".svg"
		}
		if err := os.WriteFile(output, svg, 0644); err != nil {
			return fmt.Errorf("write %s: %w", output, err)
		}
		printSuccess("Wrote progress graph")
		printFile(output)
		return nil

	default:
		return fmt.Errorf("unknown format %q (expected table, dot, or svg)", format)
	}
}

func printStatsTable(pack deck.Pack, health map[string]deck.Health) {
	fmt.Println(StyleTitle.Render(pack.Name))

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)

	rows := make([][]string, 0, len(pack.Verses))
	var total float64
	for _, v := range pack.Verses {
		h := health[v.ID]
		total += h.Score

		last := "never"
		if !h.LastReviewed.IsZero() {
			last = h.LastReviewed.Format("Jan 2, 2006")
		}
		rows = append(rows, []string{
			v.Reference,
			h.Level(),
			fmt.Sprintf("%.1f", h.Score),
			fmt.Sprintf("%d", h.Reviews),
			last,
		})
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("Reference", "Health", "Score", "Reviews", "Last Review").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}
			if col == 1 && row < len(rows) {
				return styleForLevel(rows[row][1])
			}
			return lipgloss.NewStyle()
		})
	fmt.Println(t.Render())

	if n := len(pack.Verses); n > 0 {
		printDetail("Average score: %.2f over %d verses", total/float64(n), n)
	}
}

// sanitizeFilename makes a pack name safe to use as a file name.
func sanitizeFilename(name string) string {
	replacer := strings.NewReplacer(" ", "-", "/", "-", ":", "-")
	return strings.ToLower(replacer.Replace(name))
}
