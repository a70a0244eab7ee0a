package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/versedeck/versedeck/pkg/deck"
	"github.com/versedeck/versedeck/pkg/store"
)

// verseCommand creates the verse management command group.
func (c *CLI) verseCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "verse",
		Short: "Manage verses within a pack",
	}

	cmd.AddCommand(c.verseAddCommand())
	cmd.AddCommand(c.verseRemoveCommand())

	return cmd
}

// verseAddCommand creates the "verse add" subcommand. The verse text is
// fetched from the passage API.
func (c *CLI) verseAddCommand() *cobra.Command {
	var (
		translation string
		text        string
		noCache     bool
		refresh     bool
	)

	cmd := &cobra.Command{
		Use:   "add <pack> <reference>",
		Short: "Fetch a verse and add it to a pack",
		Long: `Fetch a verse from the passage API and add it to a pack.

The reference uses the usual book chapter:verse form, with an optional
verse range:

  versedeck verse add "Romans Road" "Romans 3:23"
  versedeck verse add "Psalms" "Psalm 23:1-6" --translation kjv

With --text the verse is stored as given and nothing is fetched, for
offline use or translations the API does not carry.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runVerseAdd(cmd, args[0], args[1], translation, text, noCache, refresh)
		},
	}

	cmd.Flags().StringVarP(&translation, "translation", "t", "", "translation (default from config)")
	cmd.Flags().StringVar(&text, "text", "", "verse text, skipping the passage API")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable passage caching")
	cmd.Flags().BoolVar(&refresh, "refresh", false, "bypass cached passage text")
	return cmd
}

func (c *CLI) runVerseAdd(cmd *cobra.Command, packName, reference, translation, text string, noCache, refresh bool) error {
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

	if translation == "" {
		translation = c.Config.Scripture.Translation
	}

	if text == "" {
		client := c.newScriptureClient(noCache)
		spinner := newSpinnerWithContext(ctx, fmt.Sprintf("Fetching %s...", reference))
		spinner.Start()

		passage, err := client.Fetch(ctx, reference, translation, refresh)
		if err != nil {
			spinner.StopWithError("Could not fetch %s", reference)
			return err
		}
		spinner.Stop()

		reference = passage.Reference
		translation = passage.Translation
		text = passage.Text
	}

	verse, err := deck.NewVerse(reference, text, translation)
	if err != nil {
		return err
	}
	if err := pack.AddVerse(verse); err != nil {
		return err
	}
	if err := st.PutPack(ctx, pack); err != nil {
		return fmt.Errorf("store pack: %w", err)
	}

	printSuccess("Added %s to %s", StyleHighlight.Render(verse.Reference), StyleHighlight.Render(pack.Name))
	printDetail("%s", text)
	return nil
}

// verseRemoveCommand creates the "verse remove" subcommand.
func (c *CLI) verseRemoveCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "remove <pack> <reference|id>",
		Short: "Remove a verse from a pack",
		Args:  cobra.ExactArgs(2),
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

			verseID := args[1]
			// Accept a reference in place of an ID.
			if _, ok := pack.Verse(verseID); !ok {
				for _, v := range pack.Verses {
					if v.Reference == args[1] {
						verseID = v.ID
						break
					}
				}
			}

			if err := pack.RemoveVerse(verseID); err != nil {
				return err
			}
			if err := st.PutPack(ctx, pack); err != nil {
				return fmt.Errorf("store pack: %w", err)
			}

			printSuccess("Removed %s from %s", args[1], StyleHighlight.Render(pack.Name))
			return nil
		},
	}
}
