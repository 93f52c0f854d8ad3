// Package views provides TUI view components for the flashdeck application.
package views

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/flashdeck-dev/flashdeck/internal/deck"
	"github.com/flashdeck-dev/flashdeck/internal/tui"
)

// deckItem adapts deck.Deck to list.DefaultItem.
type deckItem struct {
	deck deck.Deck
}

func (i deckItem) Title() string { return i.deck.Title }

func (i deckItem) Description() string {
	cards := fmt.Sprintf("%d cards", i.deck.CardCount)
	if i.deck.CardCount == 1 {
		cards = "1 card"
	}
	if i.deck.Category != nil && *i.deck.Category != "" {
		return *i.deck.Category + " · " + cards
	}
	return cards
}

func (i deckItem) FilterValue() string { return i.deck.Title }

// HomeModel is the view model for the deck list.
type HomeModel struct {
	list    list.Model
	keys    tui.KeyMap
	loaded  bool
	loadErr error
	width   int
	height  int
}

// NewHomeModel creates an empty HomeModel; decks arrive via DecksLoadedMsg.
func NewHomeModel(width, height int) HomeModel {
	l := list.New([]list.Item{}, list.NewDefaultDelegate(), width, height-2)
	l.Title = "Decks"
	l.SetShowStatusBar(false)
	// esc and q leave a study session; on the deck list only Quit exits.
	l.KeyMap.Quit.SetEnabled(false)
	l.AdditionalShortHelpKeys = func() []key.Binding {
		return []key.Binding{tui.DefaultKeyMap.Open, tui.DefaultKeyMap.Quit}
	}

	return HomeModel{
		list:   l,
		keys:   tui.DefaultKeyMap,
		width:  width,
		height: height,
	}
}

// Update handles messages for the home view.
func (m HomeModel) Update(msg tea.Msg) (HomeModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tui.DecksLoadedMsg:
		m.loaded = true
		m.loadErr = msg.Err
		items := make([]list.Item, len(msg.Decks))
		for i, d := range msg.Decks {
			items[i] = deckItem{deck: d}
		}
		return m, m.list.SetItems(items)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.list.SetSize(msg.Width, msg.Height-2)
		return m, nil

	case tea.KeyMsg:
		if m.list.FilterState() == list.Filtering {
			break
		}
		if key.Matches(msg, m.keys.Open) {
			if item, ok := m.list.SelectedItem().(deckItem); ok {
				id := item.deck.ID
				return m, func() tea.Msg {
					return tui.OpenDeckMsg{DeckID: id}
				}
			}
			return m, nil
		}
		if key.Matches(msg, m.keys.Quit) {
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

// View renders the home view.
func (m HomeModel) View() string {
	switch {
	case !m.loaded:
		return tui.DimStyle.Render("Loading decks...")
	case m.loadErr != nil:
		return tui.ErrorStyle.Render("Could not load decks: "+m.loadErr.Error()) +
			"\n\n" + tui.DimStyle.Render("q: quit")
	case len(m.list.Items()) == 0:
		return tui.TitleStyle.Render("No decks yet") + "\n\n" +
			tui.DimStyle.Render("Add some with: flashdeck import decks.yaml") + "\n\n" +
			tui.DimStyle.Render("q: quit")
	}
	return m.list.View()
}
