package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/versedeck/versedeck/pkg/rolodex"
	"github.com/versedeck/versedeck/pkg/store"
)

// browseCommand creates the browse command: a scrollable rolodex of a
// pack's verses.
func (c *CLI) browseCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "browse <pack>",
		Short: "Browse a pack as a rolodex card stack",
		Long: `Browse a pack's verses as a rolodex: one prominent card showing the
full verse, cards above it settling into a stack, and cards below
tilting away. Scrolling moves cards through the prominence line;
selecting a card pins it as the anchor.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			st, err := c.openStore(cmd)
			if err != nil {
				return err
			}
			defer st.Close()

			pack, err := store.FindPackByName(ctx, st, args[0])
			if err != nil {
				return fmt.Errorf("pack %q: %w", args[0], err)
			}
			if len(pack.Verses) == 0 {
				printInfo("Pack %s is empty", pack.Name)
				return nil
			}

			engine, err := rolodex.New(c.Config.Layout)
			if err != nil {
				return err
			}

			model := newBrowseModel(pack, engine)
			if _, err := tea.NewProgram(model, tea.WithContext(ctx)).Run(); err != nil {
				return fmt.Errorf("browse UI: %w", err)
			}
			return nil
		},
	}
}
