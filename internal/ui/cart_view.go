package ui

import (
	"fmt"
	"strings"
)

// renderCartDrawer renders the cart panel: lines, subtotals and grand total.
func (m Model) renderCartDrawer() string {
	s := m.styles
	lines := m.cart.Lines()

	var b strings.Builder
	b.WriteString(s.AccentText.Render(fmt.Sprintf("Корзина (%d)", m.cart.TotalItems())))
	b.WriteString("\n\n")

	if len(lines) == 0 {
		b.WriteString(s.MutedText.Render("Корзина пуста"))
		return s.Panel.Render(b.String())
	}

	for i, line := range lines {
		marker := "  "
		if i == m.cartCursor {
			marker = "> "
		}
		b.WriteString(s.Text.Render(marker + truncate(line.Name, 28)))
		b.WriteString("\n")
		b.WriteString(s.MutedText.Render(fmt.Sprintf("    %s × %d", formatPrice(line.Price), line.Quantity)))
		b.WriteString("  ")
		b.WriteString(s.Text.Render(fmt.Sprintf("Итого: %s", formatPrice(line.Subtotal()))))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(s.MutedText.Render("Общая сумма: "))
	b.WriteString(s.AccentText.Render(formatPrice(m.cart.TotalPrice())))
	return s.Panel.Render(b.String())
}
