package cli

import (
	"fmt"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"

	"github.com/versedeck/versedeck/pkg/deck"
	"github.com/versedeck/versedeck/pkg/store"
)

// packManifest is the TOML shape accepted by `versedeck import`.
type packManifest struct {
	Name        string `toml:"name"`
	Description string `toml:"description"`
	Translation string `toml:"translation"`
	Verses      []struct {
		Reference   string `toml:"reference"`
		Translation string `toml:"translation"`
	} `toml:"verses"`
}

// importCommand creates the import command for loading whole passages.
func (c *CLI) importCommand() *cobra.Command {
	var (
		noCache     bool
		packName    string
		translation string
	)

	cmd := &cobra.Command{
		Use:   "import <manifest.toml | reference-range>",
		Short: "Import a reference range or a TOML manifest",
		Long: `Import many verses at once.

With --pack, the argument is a reference range: each verse in the range
becomes its own card in the pack:

  versedeck import --pack "Psalms" "Psalm 23:1-6"

Without --pack, the argument is a TOML manifest that names a new pack
and lists references; the verse text is fetched from the passage API:

  name = "Romans Road"
  translation = "web"

  [[verses]]
  reference = "Romans 3:23"

  [[verses]]
  reference = "Romans 10:9"
  translation = "kjv"

A per-verse translation overrides the manifest default.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if packName != "" {
				return c.runImportRange(cmd, packName, args[0], translation, noCache)
			}
			return c.runImport(cmd, args[0], noCache)
		},
	}

	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable passage caching")
	cmd.Flags().StringVarP(&packName, "pack", "p", "", "import a reference range into this pack")
	cmd.Flags().StringVarP(&translation, "translation", "t", "", "translation for range import (default from config)")
	return cmd
}

// runImportRange fetches a reference range and adds one card per verse.
func (c *CLI) runImportRange(cmd *cobra.Command, packName, reference, translation string, noCache bool) error {
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

	client := c.newScriptureClient(noCache)
	spinner := newSpinnerWithContext(ctx, fmt.Sprintf("Fetching %s...", reference))
	spinner.Start()
	passage, err := client.Fetch(ctx, reference, translation, false)
	if err != nil {
		spinner.StopWithError("Could not fetch %s", reference)
		return err
	}
	spinner.Stop()

	added := 0
	for _, v := range passage.Verses {
		ref := fmt.Sprintf("%s %d:%d", v.Book, v.Chapter, v.Verse)
		verse, err := deck.NewVerse(ref, v.Text, passage.Translation)
		if err != nil {
			return err
		}
		if err := pack.AddVerse(verse); err != nil {
			// A verse already in the pack is skipped, not fatal.
			printWarning("Skipped %s: already in pack", ref)
			continue
		}
		added++
	}

	if err := st.PutPack(ctx, pack); err != nil {
		return fmt.Errorf("store pack: %w", err)
	}

	printSuccess("Imported %d verses into %s", added, StyleHighlight.Render(pack.Name))
	return nil
}

func (c *CLI) runImport(cmd *cobra.Command, path string, noCache bool) error {
	ctx := cmd.Context()

	var manifest packManifest
	if _, err := toml.DecodeFile(path, &manifest); err != nil {
		return fmt.Errorf("load manifest %s: %w", path, err)
	}
	if len(manifest.Verses) == 0 {
		return fmt.Errorf("manifest %s lists no verses", path)
	}

	st, err := c.openStore(cmd)
	if err != nil {
		return err
	}
	defer st.Close()

	pack, err := deck.NewPack(manifest.Name, manifest.Description)
	if err != nil {
		return err
	}

	client := c.newScriptureClient(noCache)
	tm := newTimer(c.Logger)

	for _, mv := range manifest.Verses {
		translation := mv.Translation
		if translation == "" {
			translation = manifest.Translation
		}
		if translation == "" {
			translation = c.Config.Scripture.Translation
		}

		spinner := newSpinnerWithContext(ctx, fmt.Sprintf("Fetching %s...", mv.Reference))
		spinner.Start()
		passage, err := client.Fetch(ctx, mv.Reference, translation, false)
		if err != nil {
			spinner.StopWithError("Could not fetch %s", mv.Reference)
			return err
		}
		spinner.Stop()

		verse, err := deck.NewVerse(passage.Reference, passage.Text, passage.Translation)
		if err != nil {
			return err
		}
		if err := pack.AddVerse(verse); err != nil {
			return err
		}
	}

	if err := st.PutPack(ctx, pack); err != nil {
		return fmt.Errorf("store pack: %w", err)
	}

	tm.done(fmt.Sprintf("Imported %d verses", len(pack.Verses)))
	printSuccess("Imported pack %s", StyleHighlight.Render(pack.Name))
	printNextStep("Review it", fmt.Sprintf("versedeck review %q", pack.Name))
	return nil
}
