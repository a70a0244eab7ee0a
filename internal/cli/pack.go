package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/versedeck/versedeck/pkg/deck"
	"github.com/versedeck/versedeck/pkg/store"
)

// packCommand creates the pack management command group.
func (c *CLI) packCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pack",
		Short: "Manage verse packs",
	}

	cmd.AddCommand(c.packCreateCommand())
	cmd.AddCommand(c.packListCommand())
	cmd.AddCommand(c.packShowCommand())
	cmd.AddCommand(c.packDeleteCommand())

	return cmd
}

// packCreateCommand creates the "pack create" subcommand.
func (c *CLI) packCreateCommand() *cobra.Command {
	var description string

	cmd := &cobra.Command{
		Use:   "create <name>",
		Short: "Create an empty verse pack",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := c.openStore(cmd)
			if err != nil {
				return err
			}
			defer st.Close()

			pack, err := deck.NewPack(args[0], description)
			if err != nil {
				return err
			}
			if err := st.PutPack(cmd.Context(), pack); err != nil {
				return fmt.Errorf("store pack: %w", err)
			}

			printSuccess("Created pack %s", StyleHighlight.Render(pack.Name))
			printDetail("ID: %s", pack.ID)
			printNextStep("Add a verse", fmt.Sprintf("versedeck verse add %q \"John 3:16\"", pack.Name))
			return nil
		},
	}

	cmd.Flags().StringVarP(&description, "description", "d", "", "pack description")
	return cmd
}

// packListCommand creates the "pack list" subcommand.
func (c *CLI) packListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all packs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := c.openStore(cmd)
			if err != nil {
				return err
			}
			defer st.Close()

			packs, err := st.ListPacks(cmd.Context())
			if err != nil {
				return err
			}
			if len(packs) == 0 {
				printInfo("No packs yet")
				printNextStep("Create one", "versedeck pack create \"My Pack\"")
				return nil
			}

			for _, p := range packs {
				fmt.Println(StyleHighlight.Render(p.Name) + StyleDim.Render(fmt.Sprintf("  %d verses", len(p.Verses))))
				if p.Description != "" {
					printDetail("%s", p.Description)
				}
				printDetail("ID: %s", p.ID)
			}
			return nil
		},
	}
}

// packShowCommand creates the "pack show" subcommand.
func (c *CLI) packShowCommand() *cobra.Command {
	var full bool

	cmd := &cobra.Command{
		Use:   "show <name|id>",
		Short: "Show a pack's verses and their health",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := c.openStore(cmd)
			if err != nil {
				return err
			}
			defer st.Close()

			pack, err := store.FindPackByName(cmd.Context(), st, args[0])
			if err != nil {
				return fmt.Errorf("pack %q: %w", args[0], err)
			}

			fmt.Println(StyleTitle.Render(pack.Name))
			if pack.Description != "" {
				printDetail("%s", pack.Description)
			}
			printKeyValue("ID", pack.ID)
			printKeyValue("Verses", fmt.Sprintf("%d", len(pack.Verses)))
			printNewline()

			for _, v := range pack.Verses {
				h, err := st.GetHealth(cmd.Context(), v.ID)
				if err != nil {
					return err
				}
				line := StyleValue.Render(v.Reference)
				if v.Translation != "" {
					line += StyleDim.Render(" (" + v.Translation + ")")
				}
				fmt.Println(line + "  " + renderHealth(h))
				if full {
					printDetail("%s", v.Text)
				}
			}
			if len(pack.Verses) == 0 {
				printInfo("Pack is empty")
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&full, "full", false, "include verse text")
	return cmd
}

// packDeleteCommand creates the "pack delete" subcommand.
func (c *CLI) packDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <name|id>",
		Short: "Delete a pack",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := c.openStore(cmd)
			if err != nil {
				return err
			}
			defer st.Close()

			pack, err := store.FindPackByName(cmd.Context(), st, args[0])
			if err != nil {
				return fmt.Errorf("pack %q: %w", args[0], err)
			}
			if err := st.DeletePack(cmd.Context(), pack.ID); err != nil {
				return err
			}

			printSuccess("Deleted pack %s", StyleHighlight.Render(pack.Name))
			return nil
		},
	}
}
