package ui

import (
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"lavka/internal/notify"
)

// toastExpiredMsg fires once per notification when its display time is up.
type toastExpiredMsg struct {
	id int64
}

// expireToastCmd schedules the deferred removal of a notification.
func expireToastCmd(id int64) tea.Cmd {
	return tea.Tick(notify.DisplayDuration, func(time.Time) tea.Msg {
		return toastExpiredMsg{id: id}
	})
}

// renderToasts stacks pending notifications, oldest first.
func (m Model) renderToasts() string {
	pending := m.toasts.Pending()
	if len(pending) == 0 {
		return ""
	}

	lines := make([]string, 0, len(pending))
	for _, n := range pending {
		style := m.styles.ToastStyle(n.Kind)
		lines = append(lines, style.Render(truncate(n.Message, maxInt(20, m.width-4))))
	}
	return strings.Join(lines, "\n")
}
