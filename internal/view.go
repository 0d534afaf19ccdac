package internal

import (
	"fmt"
	"strings"

	"project_timer/internal/engine"
	"project_timer/internal/session"

	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("86")).
			Bold(true).
			Align(lipgloss.Center)

	clockStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("69")).
			Bold(true)

	clockRunningStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("82")).
				Bold(true)

	totalStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("33")).
			Bold(true)

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	warnStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("208"))

	alarmStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true)

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)

	itemStyle = lipgloss.NewStyle().
			Padding(0, 1)

	itemSelectedStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("170")).
				Background(lipgloss.Color("235")).
				Padding(0, 1)

	inactiveStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	inputStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("170"))
)

func (m *Model) mainView() string {
	var sb strings.Builder

	sb.WriteString(titleStyle.Width(60).Render("Project Timer"))
	sb.WriteString("\n\n")

	project := m.ctl.ActiveProject()
	if project == "" {
		project = "(no project)"
	}

	clock := m.ctl.SessionClock()
	if m.ctl.Status() == engine.StatusRunning {
		clock = clockRunningStyle.Render(clock)
	} else {
		clock = clockStyle.Render(clock)
	}

	var body strings.Builder
	body.WriteString(fmt.Sprintf("Project: %s\n", project))
	body.WriteString(fmt.Sprintf("Status:  %s\n\n", m.ctl.Status()))
	body.WriteString(fmt.Sprintf("Session: %s\n", clock))
	if m.ctl.ActiveProject() == session.CountdownProject {
		body.WriteString("\nCountdown mode: no time is recorded\n")
	} else if m.ctl.ActiveProject() != "" {
		body.WriteString(fmt.Sprintf("Total:   %s\n", totalStyle.Render(fmt.Sprintf("%.1f h", m.ctl.RunningTotal()))))
	}

	sb.WriteString(boxStyle.Width(44).Render(body.String()))
	sb.WriteString("\n")

	if m.Alarm {
		sb.WriteString(alarmStyle.Render("  TIME'S UP! Countdown has reached zero."))
		sb.WriteString("\n")
	}
	if m.Warn != "" {
		sb.WriteString(warnStyle.Render("  warning: " + m.Warn))
		sb.WriteString("\n")
	}

	sb.WriteString("\n")
	sb.WriteString(helpStyle.Render("Space: Start/Pause | +/-: ±1m | 0: Reset | p: Projects | n: New | q: Quit"))
	return sb.String()
}

func (m *Model) pickerView() string {
	var sb strings.Builder

	sb.WriteString(titleStyle.Width(60).Render("Select Project"))
	sb.WriteString("\n\n")

	var list strings.Builder
	for i, name := range m.Projects {
		marker := ""
		if name == m.ctl.ActiveProject() {
			marker = " *"
		}
		line := name + marker
		if i == m.Cursor {
			list.WriteString(itemSelectedStyle.Render(line))
		} else {
			list.WriteString(itemStyle.Render(inactiveStyle.Render(line)))
		}
		list.WriteString("\n")
	}

	sb.WriteString(boxStyle.Width(30).Render(list.String()))
	sb.WriteString("\n\n")
	sb.WriteString(helpStyle.Render("Up/Down: Move | Enter: Select | Esc: Cancel"))
	return sb.String()
}

func (m *Model) addFormView() string {
	var sb strings.Builder

	sb.WriteString(titleStyle.Width(60).Render("New Project"))
	sb.WriteString("\n\n")

	form := fmt.Sprintf("%s%s\n\n%s",
		inputStyle.Render("Name: "),
		inputStyle.Render(m.NewProjectName+"█"),
		helpStyle.Render("Enter: Create | Esc: Cancel"),
	)
	sb.WriteString(boxStyle.Width(44).Render(form))
	return sb.String()
}
