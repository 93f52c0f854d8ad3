// Package app provides the main TUI application that wires all views together.
package app

import (
	"errors"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/flashdeck-dev/flashdeck/internal/config"
	"github.com/flashdeck-dev/flashdeck/internal/deck"
	"github.com/flashdeck-dev/flashdeck/internal/log"
	"github.com/flashdeck-dev/flashdeck/internal/study"
	"github.com/flashdeck-dev/flashdeck/internal/tui"
	"github.com/flashdeck-dev/flashdeck/internal/tui/commands"
	"github.com/flashdeck-dev/flashdeck/internal/tui/views"
)

// App is the main TUI application that wires all views together.
type App struct {
	model     *tui.Model
	startDeck int64

	homeView  views.HomeModel
	studyView *views.StudyModel // nil outside RoutePlay
}

// New creates a new App. A positive startDeck opens that deck's session
// immediately instead of the deck list.
func New(cfg *config.Config, repo deck.Repository, logger *log.Logger, startDeck int64) *App {
	model := tui.NewModel(cfg, repo, logger)

	return &App{
		model:     model,
		startDeck: startDeck,
		homeView:  views.NewHomeModel(model.Width, model.Height),
	}
}

// Init returns the initial command for the TUI.
func (a *App) Init() tea.Cmd {
	if a.startDeck > 0 {
		return a.openDeck(a.startDeck)
	}
	return commands.LoadDecksCmd(a.model.Repo, a.model.RequestTimeout())
}

// Update handles messages and updates the application state.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.model.Width = msg.Width
		a.model.Height = msg.Height
		var cmd tea.Cmd
		a.homeView, cmd = a.homeView.Update(msg)
		if a.studyView != nil {
			*a.studyView, _ = a.studyView.Update(msg)
		}
		return a, cmd

	case tea.KeyMsg:
		if key.Matches(msg, tui.DefaultKeyMap.CtrlC) {
			if a.model.CtrlCPending {
				return a, tea.Quit
			}
			a.model.CtrlCPending = true
			return a, tea.Tick(time.Second, func(time.Time) tea.Msg {
				return tui.CtrlCResetMsg{}
			})
		}

	case tui.CtrlCResetMsg:
		a.model.CtrlCPending = false
		return a, nil

	case tui.NoticeMsg:
		a.model.NoticeSeq++
		a.model.Notice = msg.Text
		return a, commands.NoticeTimeoutCmd(a.model.NoticeSeq, a.model.NoticeDuration())

	case tui.NoticeExpiredMsg:
		if msg.Seq == a.model.NoticeSeq {
			a.model.Notice = ""
		}
		return a, nil

	case tui.OpenDeckMsg:
		return a, a.openDeck(msg.DeckID)

	case tui.DeckLoadedMsg:
		return a.handleDeckLoaded(msg)

	case tui.SessionActionMsg:
		a.recordAction(msg)
		return a, nil

	case tui.ExitSessionMsg:
		return a.handleExit(msg)

	case tui.DecksLoadedMsg:
		if msg.Err != nil {
			a.model.Logger.Record(log.LogEvent{Event: log.EventDeckLoadFailed, Error: msg.Err.Error()})
		}
		var cmd tea.Cmd
		a.homeView, cmd = a.homeView.Update(msg)
		return a, cmd
	}

	switch a.model.Route {
	case tui.RoutePlay:
		if a.studyView == nil {
			return a, nil
		}
		var cmd tea.Cmd
		*a.studyView, cmd = a.studyView.Update(msg)
		return a, cmd

	default:
		var cmd tea.Cmd
		a.homeView, cmd = a.homeView.Update(msg)
		return a, cmd
	}
}

// openDeck mounts a new session view and issues its one deck request.
func (a *App) openDeck(deckID int64) tea.Cmd {
	sv := views.NewStudyModel(deckID, a.model.StudyOptions(), a.model.Width, a.model.Height)
	a.studyView = &sv
	a.model.Route = tui.RoutePlay
	a.model.DeckID = deckID

	a.model.Logger.Record(log.LogEvent{
		Event:     log.EventSessionStarted,
		SessionID: sv.Token(),
		DeckID:    deckID,
	})

	return tea.Batch(
		sv.Init(),
		commands.LoadDeckCmd(a.model.Repo, sv.Token(), deckID, a.model.RequestTimeout()),
	)
}

// handleDeckLoaded forwards a fetch result to the session that requested it.
// Results for sessions that were already left are dropped.
func (a *App) handleDeckLoaded(msg tui.DeckLoadedMsg) (tea.Model, tea.Cmd) {
	if a.model.Route != tui.RoutePlay || a.studyView == nil || a.studyView.Token() != msg.Token {
		return a, nil
	}

	event := log.LogEvent{SessionID: msg.Token, DeckID: msg.DeckID}
	if msg.Err != nil {
		event.Event = log.EventDeckLoadFailed
		event.Error = msg.Err.Error()
		if errors.Is(msg.Err, deck.ErrNotFound) {
			event.Reason = "not_found"
		}
	} else {
		event.Event = log.EventDeckLoaded
		if msg.Detail != nil {
			event.Title = msg.Detail.Title
			event.Cards = len(msg.Detail.Cards)
		}
	}
	a.model.Logger.Record(event)

	var cmd tea.Cmd
	*a.studyView, cmd = a.studyView.Update(msg)
	return a, cmd
}

func (a *App) recordAction(msg tui.SessionActionMsg) {
	event := log.LogEvent{SessionID: msg.Token, DeckID: a.model.DeckID, Index: msg.Index}
	switch msg.Action {
	case study.ActionRestart:
		event.Event = log.EventSessionRestarted
	case study.ActionJump:
		event.Event = log.EventCardJumped
	default:
		return
	}
	a.model.Logger.Record(event)
}

// handleExit unmounts the session and returns to the deck list.
func (a *App) handleExit(msg tui.ExitSessionMsg) (tea.Model, tea.Cmd) {
	if a.studyView == nil || a.studyView.Token() != msg.Token {
		return a, nil
	}

	event := log.LogEvent{
		Event:     log.EventSessionExited,
		SessionID: msg.Token,
		DeckID:    a.model.DeckID,
		Index:     msg.Index,
	}
	if msg.Finished {
		event.Event = log.EventSessionFinished
	}
	a.model.Logger.Record(event)

	a.studyView = nil
	a.model.Route = tui.RouteHome
	a.model.DeckID = 0

	return a, commands.LoadDecksCmd(a.model.Repo, a.model.RequestTimeout())
}

// View renders the current application state.
func (a *App) View() string {
	var content string
	switch a.model.Route {
	case tui.RoutePlay:
		if a.studyView != nil {
			content = a.studyView.View()
		}
	default:
		content = a.homeView.View()
	}

	var footer []string
	if a.model.Notice != "" {
		footer = append(footer, tui.NoticeStyle.Render(a.model.Notice))
	}
	if a.model.CtrlCPending {
		footer = append(footer, tui.DimStyle.Render("Press Ctrl+C again to exit"))
	}
	if len(footer) == 0 {
		return content
	}

	notice := lipgloss.PlaceHorizontal(a.model.Width, lipgloss.Right, strings.Join(footer, "\n"))
	return content + "\n\n" + notice
}

// Route returns the active route.
func (a *App) Route() tui.Route {
	return a.model.Route
}

// Notice returns the visible notice text, if any.
func (a *App) Notice() string {
	return a.model.Notice
}

// Session returns the active session state, if any.
func (a *App) Session() (study.State, bool) {
	if a.studyView == nil {
		return study.State{}, false
	}
	return a.studyView.State(), true
}
