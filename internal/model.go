package internal

import (
	"project_timer/internal/session"

	tea "github.com/charmbracelet/bubbletea"
)

// MsgTick is sent by the external ticker once per second.
type MsgTick struct{}

// MsgAlarm is forwarded from the engine's alarm subscription when the
// countdown reaches zero.
type MsgAlarm struct{}

type viewMode int

const (
	viewMain viewMode = iota
	viewPicker
	viewAdd
)

// Model is the bubbletea host. Its Update loop serializes ticks and user
// commands, so the controller and engine below it never see concurrent
// calls.
type Model struct {
	ctl  *session.Controller
	mode viewMode

	// picker state
	Projects []string
	Cursor   int

	// add-form state
	NewProjectName string

	Alarm bool
	Warn  string
}

// NewModel wires the host around a session controller.
func NewModel(ctl *session.Controller) *Model {
	return &Model{ctl: ctl}
}

func (m *Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case MsgTick:
		m.ctl.Tick()
		return m, nil
	case MsgAlarm:
		m.Alarm = true
		return m, nil
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)
	case tea.WindowSizeMsg:
		return m, nil
	}
	return m, nil
}

func (m *Model) View() string {
	switch m.mode {
	case viewPicker:
		return m.pickerView()
	case viewAdd:
		return m.addFormView()
	default:
		return m.mainView()
	}
}

func (m *Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.mode == viewPicker {
		return m.handlePickerInput(msg)
	}
	if m.mode == viewAdd {
		return m.handleAddInput(msg)
	}

	m.Alarm = false

	switch msg.String() {
	case "ctrl+c", "q":
		if err := m.ctl.Shutdown(); err != nil {
			m.Warn = err.Error()
		}
		return m, tea.Quit
	case " ", "enter":
		m.Warn = ""
		m.ctl.Toggle()
	case "+", "=":
		m.ctl.Adjust(60)
	case "-":
		m.ctl.Adjust(-60)
	case "0":
		m.ctl.Adjust(0)
	case "p", "tab":
		m.openPicker()
	case "n":
		m.mode = viewAdd
		m.NewProjectName = ""
	}
	return m, nil
}

func (m *Model) openPicker() {
	m.mode = viewPicker
	m.Projects = m.ctl.Projects()
	m.Cursor = 0
	active := m.ctl.ActiveProject()
	for i, name := range m.Projects {
		if name == active {
			m.Cursor = i
			break
		}
	}
}

func (m *Model) handlePickerInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "esc", "p":
		m.mode = viewMain
	case "up", "k":
		if m.Cursor > 0 {
			m.Cursor--
		}
	case "down", "j":
		if m.Cursor < len(m.Projects)-1 {
			m.Cursor++
		}
	case "enter":
		if m.Cursor >= 0 && m.Cursor < len(m.Projects) {
			m.Warn = ""
			if err := m.ctl.SelectProject(m.Projects[m.Cursor]); err != nil {
				m.Warn = err.Error()
			}
		}
		m.mode = viewMain
	}
	return m, nil
}

func (m *Model) handleAddInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "esc":
		m.mode = viewMain
	case "enter":
		m.Warn = ""
		if err := m.ctl.CreateProject(m.NewProjectName); err != nil {
			m.Warn = err.Error()
		}
		m.mode = viewMain
	case "backspace":
		if len(m.NewProjectName) > 0 {
			m.NewProjectName = m.NewProjectName[:len(m.NewProjectName)-1]
		}
	default:
		runes := []rune(msg.String())
		if len(runes) == 1 {
			m.NewProjectName += string(runes[0])
		}
	}
	return m, nil
}
