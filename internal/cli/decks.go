// decks.go implements "flashdeck decks", a plain listing of available decks.
package cli

import (
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/flashdeck-dev/flashdeck/internal/deck"
)

var decksCmd = &cobra.Command{
	Use:   "decks",
	Short: "List decks",
	Long:  `Print every deck with its id, category and card count.`,
	Args:  cobra.NoArgs,
	RunE:  runDecks,
}

func runDecks(cmd *cobra.Command, args []string) error {
	env, err := loadEnvironment()
	if err != nil {
		return err
	}

	repo, closeRepo, err := env.openRepository(commandContext(cmd))
	if err != nil {
		return err
	}
	defer closeRepo()

	ctx, cancel := withTimeout(cmd, time.Duration(env.cfg.Remote.TimeoutMs)*time.Millisecond)
	defer cancel()

	decks, err := repo.ListDecks(ctx)
	if err != nil {
		return fmt.Errorf("listing decks: %w", err)
	}

	out := cmd.OutOrStdout()
	if len(decks) == 0 {
		fmt.Fprintln(out, "No decks yet. Add some with: flashdeck import <file.yaml>")
		return nil
	}
	return printDecks(out, decks)
}

func printDecks(out io.Writer, decks []deck.Deck) error {
	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTITLE\tCATEGORY\tCARDS")
	for _, d := range decks {
		category := "-"
		if d.Category != nil && *d.Category != "" {
			category = *d.Category
		}
		fmt.Fprintf(w, "%d\t%s\t%s\t%d\n", d.ID, d.Title, category, d.CardCount)
	}
	return w.Flush()
}
