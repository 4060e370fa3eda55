package ui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"lavka/internal/catalog"
	"lavka/internal/checkout"
	"lavka/internal/notify"
)

// handleKey processes keyboard input, routed by the active view.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Help overlay: any key closes it
	if m.showHelp {
		m.showHelp = false
		return m, nil
	}

	if msg.Type == tea.KeyCtrlC {
		return m, tea.Quit
	}

	// Search input swallows keys while active
	if m.searching {
		return m.handleSearchKey(msg)
	}

	switch m.currentView {
	case ViewCheckout:
		return m.handleCheckoutKey(msg)
	case ViewNewsletter:
		return m.handleNewsletterKey(msg)
	}

	if m.cart.IsOpen() {
		return m.handleCartKey(msg)
	}
	return m.handleCatalogKey(msg)
}

func (m Model) handleCatalogKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return m, tea.Quit

	case "?":
		m.showHelp = true
		return m, nil

	case "t":
		cmd := m.toggleTheme()
		return m, cmd

	case "/":
		m.searching = true
		m.searchInput.SetValue(m.query.Search)
		m.searchInput.Focus()
		m.suggestions = catalog.Suggestions(m.pipeline.Products(), m.searchInput.Value())
		return m, textinput.Blink

	case "esc":
		if m.query.Search != "" {
			m.query.Search = ""
			m.refreshResults()
		}
		return m, nil

	case "f":
		m.categoryIdx = (m.categoryIdx + 1) % len(catalog.Categories())
		m.query.Category = catalog.Categories()[m.categoryIdx]
		m.refreshResults()
		return m, nil

	case "s":
		m.sortIdx = (m.sortIdx + 1) % len(catalog.Sorts())
		m.query.Sort = catalog.Sorts()[m.sortIdx]
		m.refreshResults()
		return m, nil

	case "j", "down":
		if m.cursor < len(m.results)-1 {
			m.cursor++
		}
		return m, nil

	case "k", "up":
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil

	case "g":
		m.cursor = 0
		return m, nil

	case "G":
		if len(m.results) > 0 {
			m.cursor = len(m.results) - 1
		}
		return m, nil

	case "enter", "a":
		if m.cursor < len(m.results) {
			p := m.results[m.cursor]
			m.cart.Add(p)
			return m, m.toast(fmt.Sprintf("%s добавлен в корзину", p.Name), notify.KindSuccess)
		}
		return m, nil

	case "c":
		m.cart.SetOpen(true)
		m.cartCursor = 0
		return m, nil

	case "m":
		m.currentView = ViewNewsletter
		m.emailInput.SetValue("")
		m.emailInput.Focus()
		return m, textinput.Blink
	}

	return m, nil
}

func (m Model) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEnter:
		m.query.Search = m.searchInput.Value()
		m.searching = false
		m.searchInput.Blur()
		m.suggestions = nil
		m.cursor = 0
		m.refreshResults()
		return m, nil

	case tea.KeyEsc:
		m.searching = false
		m.searchInput.Blur()
		m.suggestions = nil
		return m, nil
	}

	var cmd tea.Cmd
	m.searchInput, cmd = m.searchInput.Update(msg)
	m.suggestions = catalog.Suggestions(m.pipeline.Products(), m.searchInput.Value())
	return m, cmd
}

func (m Model) handleCartKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	lines := m.cart.Lines()

	switch msg.String() {
	case "q":
		return m, tea.Quit

	case "?":
		m.showHelp = true
		return m, nil

	case "esc", "c":
		m.cart.SetOpen(false)
		return m, nil

	case "t":
		cmd := m.toggleTheme()
		return m, cmd

	case "j", "down":
		if m.cartCursor < len(lines)-1 {
			m.cartCursor++
		}
		return m, nil

	case "k", "up":
		if m.cartCursor > 0 {
			m.cartCursor--
		}
		return m, nil

	case "+", "l", "right":
		if m.cartCursor < len(lines) {
			line := lines[m.cartCursor]
			m.cart.SetQuantity(line.ProductID, line.Quantity+1)
		}
		return m, nil

	case "-", "h", "left":
		if m.cartCursor < len(lines) {
			line := lines[m.cartCursor]
			m.cart.SetQuantity(line.ProductID, line.Quantity-1)
			m.clampCartCursor()
		}
		return m, nil

	case "x", "d":
		if m.cartCursor < len(lines) {
			m.cart.Remove(lines[m.cartCursor].ProductID)
			m.clampCartCursor()
		}
		return m, nil

	case "enter":
		if len(lines) == 0 {
			return m, nil
		}
		m.cart.SetOpen(false)
		m.currentView = ViewCheckout
		m.form = newCheckoutForm()
		m.form.focusField(0)
		return m, textinput.Blink
	}

	return m, nil
}

func (m *Model) clampCartCursor() {
	if n := len(m.cart.Lines()); m.cartCursor >= n {
		m.cartCursor = n - 1
	}
	if m.cartCursor < 0 {
		m.cartCursor = 0
	}
}

func (m Model) handleCheckoutKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.currentView = ViewCatalog
		return m, nil

	case tea.KeyTab, tea.KeyDown:
		m.form.focusNext()
		return m, textinput.Blink

	case tea.KeyShiftTab, tea.KeyUp:
		m.form.focusPrev()
		return m, textinput.Blink

	case tea.KeyLeft, tea.KeyRight:
		if m.form.paymentFocused() {
			m.form.cyclePayment(msg.Type == tea.KeyRight)
			return m, nil
		}

	case tea.KeyEnter:
		return m.submitOrder()
	}

	var cmd tea.Cmd
	m.form, cmd = m.form.update(msg)
	return m, cmd
}

// submitOrder validates the form; failure leaves the cart and the form intact.
func (m Model) submitOrder() (tea.Model, tea.Cmd) {
	form := m.form.value()
	if len(form.Missing()) > 0 {
		return m, m.toast("Пожалуйста, заполните все обязательные поля", notify.KindError)
	}

	orderID := checkout.NewOrderID()
	m.cart.Clear()
	m.currentView = ViewCatalog
	m.form = newCheckoutForm()
	return m, m.toast(fmt.Sprintf("Заказ успешно оформлен! (№ %.8s)", orderID), notify.KindSuccess)
}

func (m Model) handleNewsletterKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.currentView = ViewCatalog
		m.emailInput.Blur()
		return m, nil

	case tea.KeyEnter:
		email := m.emailInput.Value()
		if email == "" {
			return m, m.toast("Введите email адрес", notify.KindError)
		}
		if !checkout.ValidEmail(email) {
			return m, m.toast("Введите корректный email адрес", notify.KindError)
		}
		m.emailInput.SetValue("")
		m.currentView = ViewCatalog
		return m, m.toast("Спасибо за подписку!", notify.KindSuccess)
	}

	var cmd tea.Cmd
	m.emailInput, cmd = m.emailInput.Update(msg)
	return m, cmd
}
