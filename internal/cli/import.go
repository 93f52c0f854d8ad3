// import.go implements "flashdeck import", seeding the local store from YAML.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/flashdeck-dev/flashdeck/internal/deck"
	"github.com/flashdeck-dev/flashdeck/internal/log"
)

var importCmd = &cobra.Command{
	Use:   "import <file.yaml>",
	Short: "Import decks from a YAML file",
	Long: `Add the decks and cards described in a YAML file to the local
database. The file looks like:

  decks:
    - title: Capitals
      category: Geography
      cards:
        - front: France
          back: Paris`,
	Args: cobra.ExactArgs(1),
	RunE: runImport,
}

func runImport(cmd *cobra.Command, args []string) error {
	env, err := loadEnvironment()
	if err != nil {
		return err
	}
	if env.cfg.Remote.URL != "" {
		return fmt.Errorf("import writes to the local database; unset --remote")
	}

	f, err := deck.ReadImportFile(args[0])
	if err != nil {
		return err
	}

	s, err := env.openStore(commandContext(cmd))
	if err != nil {
		return err
	}
	defer s.Close()

	ids, err := s.Import(commandContext(cmd), f)
	if err != nil {
		return fmt.Errorf("importing %s: %w", args[0], err)
	}

	out := cmd.OutOrStdout()
	for i, id := range ids {
		d := f.Decks[i]
		env.logger.Record(log.LogEvent{
			Event:  log.EventDeckImported,
			DeckID: id,
			Title:  d.Title,
			Cards:  len(d.Cards),
		})
		fmt.Fprintf(out, "  %d  %s (%d cards)\n", id, d.Title, len(d.Cards))
	}
	fmt.Fprintf(out, "Imported %d deck(s).\n", len(ids))
	return nil
}
