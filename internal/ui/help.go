package ui

import "strings"

// renderHelp shows the key binding overlay. Any key closes it.
func (m Model) renderHelp() string {
	s := m.styles

	rows := []struct{ key, desc string }{
		{"/", "Поиск по названию (подсказки от 2 символов)"},
		{"f", "Переключить категорию"},
		{"s", "Переключить сортировку"},
		{"j/k, ↑/↓", "Перемещение по списку"},
		{"g/G", "В начало / в конец"},
		{"Enter, a", "Добавить товар в корзину"},
		{"c", "Открыть/закрыть корзину"},
		{"+/-", "Изменить количество (в корзине)"},
		{"x, d", "Удалить строку (в корзине)"},
		{"m", "Подписка на рассылку"},
		{"t", "Переключить тему (светлая/тёмная)"},
		{"Esc", "Сбросить поиск / закрыть панель"},
		{"q, Ctrl+C", "Выход"},
	}

	var b strings.Builder
	b.WriteString(s.AccentText.Render("Помощь"))
	b.WriteString("\n\n")
	for _, r := range rows {
		b.WriteString("  ")
		b.WriteString(s.AccentText.Render(padRight(r.key, 12)))
		b.WriteString(s.Text.Render(r.desc))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(s.MutedText.Render("Нажмите любую клавишу, чтобы закрыть"))
	return b.String()
}

func padRight(s string, width int) string {
	if n := width - len([]rune(s)); n > 0 {
		return s + strings.Repeat(" ", n)
	}
	return s
}
