package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Загрузка..."
	}

	if m.showHelp {
		return m.renderHelp()
	}

	var body string
	switch m.currentView {
	case ViewCheckout:
		body = m.renderCheckout()
	case ViewNewsletter:
		body = m.renderNewsletter()
	default:
		body = m.renderCatalogArea()
	}

	sections := []string{m.renderHeader(), body}
	if toasts := m.renderToasts(); toasts != "" {
		sections = append(sections, toasts)
	}
	sections = append(sections, m.renderFooter())
	return strings.Join(sections, "\n")
}

// renderCatalogArea shows the catalog, with the cart drawer beside it when open.
func (m Model) renderCatalogArea() string {
	catalogView := m.renderCatalog()
	if !m.cart.IsOpen() {
		return catalogView
	}

	drawer := m.renderCartDrawer()
	if m.width < 80 {
		return drawer
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, catalogView, " ", drawer)
}

// renderHeader renders the top status bar.
func (m Model) renderHeader() string {
	s := m.styles
	parts := []string{
		s.Logo.Render("lavka"),
		s.MutedText.Render("Корзина:") + " " + s.Badge.Render(fmt.Sprintf("%d", m.cart.TotalItems())),
		s.MutedText.Render("Тема:") + " " + s.Text.Render(m.theme.Name),
	}
	return s.Header.Width(m.width).Render(strings.Join(parts, "  "))
}

// renderFooter renders contextual key hints (command bar).
func (m Model) renderFooter() string {
	type hint struct{ key, desc string }
	var hints []hint

	switch {
	case m.searching:
		hints = []hint{{"Enter", "Применить"}, {"Esc", "Отмена"}}
	case m.currentView == ViewCheckout:
		hints = []hint{
			{"Tab", "Поле"},
			{"←/→", "Оплата"},
			{"Enter", "Подтвердить"},
			{"Esc", "Назад"},
		}
	case m.currentView == ViewNewsletter:
		hints = []hint{{"Enter", "Подписаться"}, {"Esc", "Назад"}}
	case m.cart.IsOpen():
		hints = []hint{
			{"j/k", "Навигация"},
			{"+/-", "Количество"},
			{"x", "Удалить"},
			{"Enter", "Оформить"},
			{"Esc", "Закрыть"},
		}
	default:
		hints = []hint{
			{"/", "Поиск"},
			{"f", "Категория"},
			{"s", "Сортировка"},
			{"Enter", "В корзину"},
			{"c", "Корзина"},
			{"m", "Рассылка"},
			{"t", "Тема"},
			{"?", "Помощь"},
			{"q", "Выход"},
		}
	}

	segments := make([]string, 0, len(hints))
	for _, h := range hints {
		segments = append(segments,
			m.styles.AccentText.Render(h.key)+m.styles.MutedText.Render(":"+h.desc))
	}
	return m.styles.Footer.Width(m.width).Render(strings.Join(segments, "  "))
}
