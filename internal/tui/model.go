package tui

import (
	"time"

	"github.com/flashdeck-dev/flashdeck/internal/config"
	"github.com/flashdeck-dev/flashdeck/internal/deck"
	"github.com/flashdeck-dev/flashdeck/internal/log"
	"github.com/flashdeck-dev/flashdeck/internal/study"
)

// Route is the screen currently shown.
type Route int

const (
	RouteHome Route = iota // deck list
	RoutePlay              // study session, "/play/{id}"
)

// Model holds application-wide TUI state shared by the views.
type Model struct {
	Route  Route
	DeckID int64 // deck of the active session when Route == RoutePlay

	Cfg    *config.Config
	Repo   deck.Repository
	Logger *log.Logger

	// Transient notice
	Notice    string
	NoticeSeq int

	// Terminal dimensions
	Width  int
	Height int

	// Ctrl+C confirmation state
	CtrlCPending bool
}

// NewModel creates a new Model with the given configuration and repository.
func NewModel(cfg *config.Config, repo deck.Repository, logger *log.Logger) *Model {
	return &Model{
		Route:  RouteHome,
		Cfg:    cfg,
		Repo:   repo,
		Logger: logger,
		Width:  80,
		Height: 24,
	}
}

// StudyOptions maps the study config onto session options.
func (m *Model) StudyOptions() study.Options {
	return study.Options{
		JumpNavigation:   m.Cfg.Study.JumpNavigation,
		LastCardEmphasis: m.Cfg.Study.LastCardEmphasis,
		JumpInterval:     m.Cfg.Study.JumpInterval,
	}
}

// RequestTimeout bounds each repository call.
func (m *Model) RequestTimeout() time.Duration {
	return time.Duration(m.Cfg.Remote.TimeoutMs) * time.Millisecond
}

// NoticeDuration is how long a notice stays visible.
func (m *Model) NoticeDuration() time.Duration {
	return time.Duration(m.Cfg.UI.NoticeSeconds) * time.Second
}
