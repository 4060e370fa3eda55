package ui

import (
	"fmt"
	"strings"

	"lavka/internal/checkout"
)

// renderCheckout renders the order summary and the form fields.
func (m Model) renderCheckout() string {
	s := m.styles
	var b strings.Builder

	b.WriteString(s.AccentText.Render("Оформление заказа"))
	b.WriteString("\n\n")

	// Order summary
	b.WriteString(s.MutedText.Render("Ваш заказ"))
	b.WriteString("\n")
	for _, line := range m.cart.Lines() {
		b.WriteString(s.Text.Render(fmt.Sprintf("  %s × %d", truncate(line.Name, 30), line.Quantity)))
		b.WriteString("  ")
		b.WriteString(s.MutedText.Render(formatPrice(line.Subtotal())))
		b.WriteString("\n")
	}
	b.WriteString(s.Text.Render("  Итого: "))
	b.WriteString(s.AccentText.Render(formatPrice(m.cart.TotalPrice())))
	b.WriteString("\n\n")

	// Form fields
	for i := 0; i < fieldPayment; i++ {
		label := fieldLabels[i]
		if i == m.form.focus {
			b.WriteString(s.AccentText.Render(fmt.Sprintf("%-14s", label)))
		} else {
			b.WriteString(s.MutedText.Render(fmt.Sprintf("%-14s", label)))
		}
		b.WriteString(m.form.inputs[i].View())
		b.WriteString("\n")
	}

	// Payment selector
	payment := checkout.PaymentMethods()[m.form.payment]
	label := fmt.Sprintf("%-14s", fieldLabels[fieldPayment])
	if m.form.paymentFocused() {
		b.WriteString(s.AccentText.Render(label))
		b.WriteString(s.Selected.Render(" " + payment.Label() + " "))
		b.WriteString(s.MutedText.Render("  ←/→"))
	} else {
		b.WriteString(s.MutedText.Render(label))
		b.WriteString(s.Text.Render(payment.Label()))
	}
	b.WriteString("\n\n")

	b.WriteString(s.MutedText.Render(fmt.Sprintf("Enter — подтвердить заказ (%s)", formatPrice(m.cart.TotalPrice()))))
	return b.String()
}

// renderNewsletter renders the email signup prompt.
func (m Model) renderNewsletter() string {
	s := m.styles
	var b strings.Builder

	b.WriteString(s.AccentText.Render("Будьте в курсе"))
	b.WriteString("\n\n")
	b.WriteString(s.MutedText.Render("Подпишитесь на нашу рассылку и получайте уведомления о новых товарах"))
	b.WriteString("\n\n")
	b.WriteString(m.emailInput.View())
	return b.String()
}
