// Package tui provides the BubbleTea-based interactive session picker
// used by the select command.
package tui

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jmylchreest/volctl/internal/audio"
	"github.com/jmylchreest/volctl/internal/control"
	"github.com/jmylchreest/volctl/internal/core"
	"github.com/jmylchreest/volctl/internal/model"
)

// Mode represents the current UI mode.
type Mode int

const (
	// ModeList shows the scrollable session list.
	ModeList Mode = iota
	// ModeVolume shows the volume prompt for the highlighted session.
	ModeVolume
)

// Messages produced by backend commands.
type (
	sessionsLoadedMsg struct{ sessions []model.Session }
	volumeAppliedMsg  struct {
		name   string
		volume float64
	}
	muteToggledMsg struct {
		name  string
		muted bool
	}
	errMsg struct{ err error }
)

// sessionItem wraps a session for the list component.
type sessionItem struct {
	session model.Session
}

func (i sessionItem) Title() string {
	title := i.session.DisplayName()
	if i.session.Corked {
		title += " (paused)"
	}
	return title
}

func (i sessionItem) Description() string {
	return fmt.Sprintf("%s, %s", core.FormatPercent(i.session.Volume), i.session.MuteLabel())
}

func (i sessionItem) FilterValue() string {
	return i.session.ProcessName
}

var (
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	promptStyle = lipgloss.NewStyle().Padding(1, 2)
)

// Model is the session picker TUI model.
type Model struct {
	controller *control.Controller
	chime      *audio.Chime

	mode Mode

	list        list.Model
	volumeInput textinput.Model

	sessions []model.Session
	keys     KeyMap

	statusMsg string
	statusErr bool

	width  int
	height int
}

// New creates a new picker model. chime may be nil to disable audible
// confirmation.
func New(controller *control.Controller, chime *audio.Chime) Model {
	l := list.New(nil, list.NewDefaultDelegate(), 0, 0)
	l.Title = "Audio Sessions"
	l.SetShowStatusBar(true)
	l.SetShowHelp(true)
	l.SetFilteringEnabled(true)
	l.DisableQuitKeybindings()

	volumeInput := textinput.New()
	volumeInput.Placeholder = "0-100 or 0.0-1.0"
	volumeInput.CharLimit = 8
	volumeInput.Width = 24

	return Model{
		controller:  controller,
		chime:       chime,
		mode:        ModeList,
		list:        l,
		volumeInput: volumeInput,
		keys:        DefaultKeyMap(),
	}
}

// Init requests the initial session snapshot.
func (m Model) Init() tea.Cmd {
	return m.loadSessions()
}

// loadSessions re-enumerates sessions from the backend.
func (m Model) loadSessions() tea.Cmd {
	controller := m.controller
	return func() tea.Msg {
		sessions, err := controller.Sessions(context.Background())
		if err != nil {
			return errMsg{err}
		}
		return sessionsLoadedMsg{sessions}
	}
}

// applyVolume parses and applies the prompt input to the session.
func (m Model) applyVolume(s model.Session, raw string) tea.Cmd {
	controller := m.controller
	chime := m.chime
	return func() tea.Msg {
		v, err := controller.SetVolume(context.Background(), &s, raw)
		if err != nil {
			return errMsg{err}
		}
		if chime != nil {
			// Audible feedback is best-effort only.
			_ = chime.Play(v)
		}
		return volumeAppliedMsg{name: s.DisplayName(), volume: v}
	}
}

// toggleMute flips mute on the session.
func (m Model) toggleMute(s model.Session) tea.Cmd {
	controller := m.controller
	return func() tea.Msg {
		muted, err := controller.ToggleMute(context.Background(), &s)
		if err != nil {
			return errMsg{err}
		}
		return muteToggledMsg{name: s.DisplayName(), muted: muted}
	}
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.list.SetSize(msg.Width, msg.Height-2)
		return m, nil

	case sessionsLoadedMsg:
		m.sessions = msg.sessions
		items := make([]list.Item, len(msg.sessions))
		for i, s := range msg.sessions {
			items[i] = sessionItem{session: s}
		}
		return m, m.list.SetItems(items)

	case volumeAppliedMsg:
		m.setStatus(fmt.Sprintf("Volume of %s set to %s", msg.name, core.FormatPercent(msg.volume)), false)
		return m, m.loadSessions()

	case muteToggledMsg:
		m.setStatus(fmt.Sprintf("%s is now %s", msg.name, muteLabel(msg.muted)), false)
		return m, m.loadSessions()

	case errMsg:
		m.setStatus(msg.err.Error(), true)
		return m, nil

	case tea.KeyMsg:
		switch m.mode {
		case ModeVolume:
			return m.updateVolumePrompt(msg)
		default:
			return m.updateList(msg)
		}
	}

	return m, nil
}

// updateList handles keys in list mode.
func (m Model) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Don't intercept keys while the list's own filter input is active.
	if m.list.FilterState() == list.Filtering {
		var cmd tea.Cmd
		m.list, cmd = m.list.Update(msg)
		return m, cmd
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Refresh):
		m.setStatus("Refreshing...", false)
		return m, m.loadSessions()

	case key.Matches(msg, m.keys.Mute):
		if s, ok := m.selectedSession(); ok {
			return m, m.toggleMute(s)
		}
		return m, nil

	case key.Matches(msg, m.keys.Enter):
		if _, ok := m.selectedSession(); ok {
			m.mode = ModeVolume
			m.volumeInput.SetValue("")
			m.volumeInput.Focus()
			return m, textinput.Blink
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

// updateVolumePrompt handles keys in volume prompt mode.
func (m Model) updateVolumePrompt(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Back):
		m.mode = ModeList
		m.volumeInput.Blur()
		return m, nil

	case key.Matches(msg, m.keys.Enter):
		s, ok := m.selectedSession()
		if !ok {
			m.mode = ModeList
			return m, nil
		}
		raw := m.volumeInput.Value()
		m.mode = ModeList
		m.volumeInput.Blur()
		return m, m.applyVolume(s, raw)
	}

	var cmd tea.Cmd
	m.volumeInput, cmd = m.volumeInput.Update(msg)
	return m, cmd
}

// selectedSession returns the highlighted session.
func (m Model) selectedSession() (model.Session, bool) {
	item, ok := m.list.SelectedItem().(sessionItem)
	if !ok {
		return model.Session{}, false
	}
	return item.session, true
}

// setStatus records the status line content.
func (m *Model) setStatus(msg string, isErr bool) {
	m.statusMsg = msg
	m.statusErr = isErr
}

// View renders the UI.
func (m Model) View() string {
	if m.mode == ModeVolume {
		s, _ := m.selectedSession()
		prompt := fmt.Sprintf("Set volume for %s\n\n%s\n\n(enter to apply, esc to cancel)",
			s.DisplayName(), m.volumeInput.View())
		return promptStyle.Render(prompt)
	}

	view := m.list.View()
	if m.statusMsg != "" {
		style := statusStyle
		if m.statusErr {
			style = errorStyle
		}
		view += "\n" + style.Render(m.statusMsg)
	}
	return view
}

// muteLabel mirrors model.Session.MuteLabel for bare booleans.
func muteLabel(muted bool) string {
	if muted {
		return "muted"
	}
	return "unmuted"
}

// Run starts the picker and blocks until the user quits.
func Run(controller *control.Controller, chime *audio.Chime) error {
	p := tea.NewProgram(New(controller, chime), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
