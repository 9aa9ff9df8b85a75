// Package ui holds the transient notification line shown under TUI screens.
package ui

import (
	"strings"
	"time"

	"github.com/anidex-cli/anidex/style"
	tea "github.com/charmbracelet/bubbletea"
)

// NotifyDuration is how long a notification stays visible.
const NotifyDuration = 3 * time.Second

// Model holds the current notification. The zero value shows nothing.
type Model struct {
	notification string
	isError      bool
	seq          int
}

// NotificationMsg sets the notification line.
type NotificationMsg struct {
	Text  string
	Error bool
}

// ClearNotificationMsg resets the line if no newer notification replaced it.
type ClearNotificationMsg struct {
	seq int
}

// Notify returns a command that shows text.
func Notify(text string) tea.Cmd {
	return func() tea.Msg { return NotificationMsg{Text: text} }
}

// NotifyError returns a command that shows text highlighted as an error.
func NotifyError(err error) tea.Cmd {
	return func() tea.Msg { return NotificationMsg{Text: err.Error(), Error: true} }
}

func clearAfter(seq int) tea.Cmd {
	return tea.Tick(NotifyDuration, func(time.Time) tea.Msg {
		return ClearNotificationMsg{seq: seq}
	})
}

// Update processes incoming messages to modify the notification state.
func (m *Model) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case NotificationMsg:
		m.seq++
		m.notification = msg.Text
		m.isError = msg.Error
		return clearAfter(m.seq)
	case ClearNotificationMsg:
		if msg.seq == m.seq {
			m.notification = ""
		}
	}
	return nil
}

// Text returns the visible notification.
func (m *Model) Text() string {
	return m.notification
}

// View appends the notification to the last line of mainContent.
func (m *Model) View(mainContent string) string {
	if m.notification == "" {
		return mainContent
	}

	render := style.Faint
	if m.isError {
		render = style.Fg(style.ErrorColor)
	}

	lines := strings.Split(mainContent, "\n")
	lines[len(lines)-1] += "  " + render(m.notification)
	return strings.Join(lines, "\n")
}
