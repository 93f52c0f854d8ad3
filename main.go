// Command flashdeck studies flashcard decks in the terminal.
package main

import "github.com/flashdeck-dev/flashdeck/internal/cli"

func main() {
	cli.Execute()
}
