package deck

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// ImportFile is the YAML document accepted by "flashdeck import".
type ImportFile struct {
	Decks []ImportDeck `yaml:"decks"`
}

// ImportDeck is one deck inside an ImportFile.
type ImportDeck struct {
	Title    string       `yaml:"title"`
	Category string       `yaml:"category,omitempty"`
	Cards    []ImportCard `yaml:"cards"`
}

// ImportCard is one front/back pair inside an ImportDeck.
type ImportCard struct {
	Front string `yaml:"front"`
	Back  string `yaml:"back"`
}

// ReadImportFile reads and validates an import document from path.
func ReadImportFile(path string) (*ImportFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading import file: %w", err)
	}
	return ParseImport(data)
}

// ParseImport parses an import document. Every deck needs a title and every
// card needs a front.
func ParseImport(data []byte) (*ImportFile, error) {
	var f ImportFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing import file: %w", err)
	}

	for i, d := range f.Decks {
		if strings.TrimSpace(d.Title) == "" {
			return nil, fmt.Errorf("deck %d: title is required", i+1)
		}
		for j, c := range d.Cards {
			if strings.TrimSpace(c.Front) == "" {
				return nil, fmt.Errorf("deck %q card %d: front is required", d.Title, j+1)
			}
		}
	}

	return &f, nil
}
