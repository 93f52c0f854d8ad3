// play.go implements "flashdeck play <deck-id>", the /play/{id} route.
package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/flashdeck-dev/flashdeck/internal/deck"
	"github.com/flashdeck-dev/flashdeck/internal/tui"
)

var playCmd = &cobra.Command{
	Use:   "play <deck-id>",
	Short: "Study one deck",
	Long: `Open a study session for the given deck. Space or enter flips the
card and advances, r restarts, 1-9 jump ahead in long decks, esc returns
to the deck list.`,
	Args: cobra.ExactArgs(1),
	RunE: runPlay,
}

func runPlay(cmd *cobra.Command, args []string) error {
	id, err := parseDeckID(args[0])
	if err != nil {
		return err
	}
	if !tui.IsTTY() {
		return fmt.Errorf("play needs an interactive terminal")
	}
	return runTUI(commandContext(cmd), id)
}

// parseDeckID accepts positive integer ids only.
func parseDeckID(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("deck id %q: %w", s, deck.ErrInvalidID)
	}
	if err := deck.ValidateID(id); err != nil {
		return 0, err
	}
	return id, nil
}
