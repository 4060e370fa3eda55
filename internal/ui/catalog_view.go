package ui

import (
	"fmt"
	"strings"

	"lavka/internal/catalog"
)

// renderCatalog renders the filter bar, the optional search/suggestion rows
// and the product table.
func (m Model) renderCatalog() string {
	s := m.styles
	var b strings.Builder

	// Filter bar
	filters := []string{
		s.MutedText.Render("Категория:") + " " + s.Text.Render(catalog.CategoryLabel(m.query.Category)),
		s.MutedText.Render("Сортировка:") + " " + s.Text.Render(m.query.Sort.Label()),
	}
	if m.query.Search != "" && !m.searching {
		filters = append(filters, s.MutedText.Render("Поиск:")+" "+s.AccentText.Render(m.query.Search))
	}
	b.WriteString(strings.Join(filters, "  ·  "))
	b.WriteString("\n")

	if m.searching {
		b.WriteString(m.searchInput.View())
		b.WriteString("\n")
		if len(m.suggestions) > 0 {
			b.WriteString(s.MutedText.Render("Подсказки: " + strings.Join(m.suggestions, " · ")))
			b.WriteString("\n")
		}
	}
	b.WriteString("\n")

	if len(m.results) == 0 {
		b.WriteString(s.MutedText.Render("Товары не найдены"))
		return b.String()
	}

	nameWidth := 32
	for i, p := range m.results {
		row := fmt.Sprintf("%-*s  %-14s  %s  %8s",
			nameWidth, truncate(p.Name, nameWidth),
			truncate(catalog.CategoryLabel(p.Category), 14),
			formatRating(p.Rating),
			formatPrice(p.Price),
		)
		if i == m.cursor {
			b.WriteString(s.Selected.Render("> " + row))
		} else {
			b.WriteString(s.Text.Render("  " + row))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(s.MutedText.Render(fmt.Sprintf("%d из %d товаров", len(m.results), len(m.pipeline.Products()))))
	return b.String()
}
