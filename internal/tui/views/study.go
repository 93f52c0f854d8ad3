package views

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/flashdeck-dev/flashdeck/internal/study"
	"github.com/flashdeck-dev/flashdeck/internal/tui"
)

// StudyModel is the view model for one study session.
type StudyModel struct {
	state   study.State
	keys    tui.KeyMap
	spinner spinner.Model
	bar     progress.Model
	lastBar progress.Model
	help    help.Model
	width   int
	height  int
}

// NewStudyModel creates a session view in the Loading state for deckID.
func NewStudyModel(deckID int64, opts study.Options, width, height int) StudyModel {
	sp := spinner.New()
	sp.Spinner = spinner.Dot

	m := StudyModel{
		state:   study.NewSession(deckID, opts),
		keys:    tui.DefaultKeyMap,
		spinner: sp,
		bar:     progress.New(progress.WithSolidFill(tui.ProgressColor), progress.WithoutPercentage()),
		lastBar: progress.New(progress.WithGradient(tui.GradientStart, tui.GradientEnd), progress.WithoutPercentage()),
		help:    help.New(),
	}
	m.resize(width, height)
	return m
}

// Token identifies this session's deck request.
func (m StudyModel) Token() string {
	return m.state.Token
}

// State returns the session state.
func (m StudyModel) State() study.State {
	return m.state
}

// Init starts the loading spinner.
func (m StudyModel) Init() tea.Cmd {
	return m.spinner.Tick
}

// Update handles messages for the study view.
func (m StudyModel) Update(msg tea.Msg) (StudyModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tui.DeckLoadedMsg:
		if msg.Err != nil {
			return m.apply(study.LoadFailed{Token: msg.Token, Err: msg.Err})
		}
		return m.apply(study.Loaded{Token: msg.Token, Detail: msg.Detail})

	case spinner.TickMsg:
		if m.state.Phase != study.PhaseLoading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m StudyModel) handleKey(msg tea.KeyMsg) (StudyModel, tea.Cmd) {
	if key.Matches(msg, m.keys.Exit) {
		if m.state.Phase == study.PhaseLoading {
			return m, nil
		}
		return m, m.exitCmd(false)
	}

	if m.state.Phase != study.PhaseShowing {
		return m, nil
	}

	var cmd tea.Cmd
	switch {
	case key.Matches(msg, m.keys.Reveal):
		return m.apply(study.Reveal{})

	case key.Matches(msg, m.keys.Restart):
		m, cmd = m.apply(study.Restart{})
		return m, tea.Batch(cmd, m.actionCmd(study.ActionRestart))

	case key.Matches(msg, m.keys.Jump):
		n, err := strconv.Atoi(msg.String())
		targets := m.state.JumpTargets()
		if err != nil || n < 1 || n > len(targets) {
			return m, nil
		}
		m, cmd = m.apply(study.Jump{Target: targets[n-1] - 1})
		return m, tea.Batch(cmd, m.actionCmd(study.ActionJump))
	}

	return m, nil
}

// apply runs the reducer and turns its effect into a command.
func (m StudyModel) apply(ev study.Event) (StudyModel, tea.Cmd) {
	var eff study.Effect
	m.state, eff = study.Reduce(m.state, ev)

	switch eff {
	case study.EffectNotifyLoadFailure:
		text := m.state.Notice
		return m, func() tea.Msg { return tui.NoticeMsg{Text: text} }
	case study.EffectEnd:
		return m, m.exitCmd(true)
	}
	return m, nil
}

func (m StudyModel) exitCmd(finished bool) tea.Cmd {
	msg := tui.ExitSessionMsg{Token: m.state.Token, Finished: finished, Index: m.state.Index}
	return func() tea.Msg { return msg }
}

func (m StudyModel) actionCmd(action study.Action) tea.Cmd {
	msg := tui.SessionActionMsg{Token: m.state.Token, Action: action, Index: m.state.Index}
	return func() tea.Msg { return msg }
}

func (m *StudyModel) resize(width, height int) {
	m.width = width
	m.height = height
	barWidth := width - 4
	if barWidth < 10 {
		barWidth = 10
	}
	m.bar.Width = barWidth
	m.lastBar.Width = barWidth
	m.help.Width = width
}

// View renders the study view.
func (m StudyModel) View() string {
	switch m.state.Phase {
	case study.PhaseLoading:
		return m.spinner.View() + " " + tui.DimStyle.Render("Loading...")
	case study.PhaseEmpty:
		return m.renderEmpty()
	case study.PhaseEnded:
		return ""
	}
	return m.renderSession()
}

func (m StudyModel) renderEmpty() string {
	var b strings.Builder
	b.WriteString("This deck has no cards.")
	b.WriteString("\n\n")
	b.WriteString(m.help.View(tui.StudyHelp{Keys: m.keys, Actions: m.state.Actions()}))
	return b.String()
}

func (m StudyModel) renderSession() string {
	s := m.state
	emphasized := s.Emphasized()

	var b strings.Builder

	// Header: title, face badge, position.
	header := tui.TitleStyle.Render(s.Title)
	if s.Category != "" {
		header += " " + tui.DimStyle.Render(s.Category)
	}
	position := fmt.Sprintf("%d / %d cards", s.Index+1, len(s.Cards))
	if emphasized {
		position = tui.EmphasisStyle.Render(position)
	} else {
		position = tui.DimStyle.Render(position)
	}
	b.WriteString(header + "  " + tui.BadgeStyle.Render(s.Face()) + "  " + position)
	b.WriteString("\n")

	if jumps := m.renderJumps(); jumps != "" {
		b.WriteString(jumps)
		b.WriteString("\n")
	}

	bar := m.bar
	if emphasized {
		bar = m.lastBar
	}
	b.WriteString(bar.ViewAs(s.Progress() / 100))
	b.WriteString("\n\n")

	// Card surface.
	cardStyle := tui.CardStyle
	if emphasized {
		cardStyle = tui.EmphasizedCardStyle
	}
	cardWidth := m.width - 8
	if cardWidth > 72 {
		cardWidth = 72
	}
	if cardWidth < 20 {
		cardWidth = 20
	}
	card := cardStyle.Width(cardWidth).Height(7).Render(s.Text())
	b.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, card))
	b.WriteString("\n\n")

	caption := s.Caption()
	if emphasized {
		caption = tui.EmphasisStyle.Render(caption)
	} else {
		caption = tui.DimStyle.Render(caption)
	}
	b.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, caption))
	b.WriteString("\n\n")

	b.WriteString(m.help.View(tui.StudyHelp{Keys: m.keys, Actions: s.Actions()}))
	return b.String()
}

// renderJumps draws the jump targets; key n selects the n-th target.
func (m StudyModel) renderJumps() string {
	targets := m.state.JumpTargets()
	if len(targets) == 0 {
		return ""
	}

	parts := []string{tui.DimStyle.Render("jump:")}
	for i, target := range targets {
		label := fmt.Sprintf("%d:#%d", i+1, target)
		if i >= 9 {
			label = fmt.Sprintf("#%d", target)
		}
		if m.state.Index == target-1 {
			parts = append(parts, tui.ActiveJumpStyle.Render(label))
		} else {
			parts = append(parts, tui.JumpStyle.Render(label))
		}
	}
	return strings.Join(parts, " ")
}
