package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/versedeck/versedeck/pkg/review"
	"github.com/versedeck/versedeck/pkg/store"
)

// reviewCommand creates the review command for interactive review sessions.
func (c *CLI) reviewCommand() *cobra.Command {
	var mode string

	cmd := &cobra.Command{
		Use:   "review <pack>",
		Short: "Review a pack's verses",
		Long: `Run an interactive review session over a pack.

Two modes are supported:

  flashcard  show the reference, reveal the text on demand, then grade
  swipe      show the full card and grade with left/right

Verses are queued weakest first, so shaky verses come up before solid
ones. Each grade nudges the verse's health score up or down.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runReview(cmd, args[0], review.Mode(mode))
		},
	}

	cmd.Flags().StringVarP(&mode, "mode", "m", string(review.ModeFlashcard), "review mode: flashcard, swipe")
	return cmd
}

func (c *CLI) runReview(cmd *cobra.Command, packName string, mode review.Mode) error {
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

	session, err := review.NewSession(ctx, st, pack, mode)
	if err != nil {
		return err
	}

	model := newReviewModel(ctx, session)
	final, err := tea.NewProgram(model, tea.WithContext(ctx)).Run()
	if err != nil {
		return fmt.Errorf("review UI: %w", err)
	}

	m, ok := final.(reviewModel)
	if !ok || !m.finished {
		printInfo("Session abandoned")
		return nil
	}

	summary := session.Finish(ctx)
	printSuccess("Reviewed %d verses, remembered %d", summary.Reviewed, summary.Remembered)
	if summary.ScoreDelta != 0 {
		printDetail("Score change: %+.1f", summary.ScoreDelta)
	}
	return nil
}
