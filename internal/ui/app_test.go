package ui

import (
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"lavka/internal/cart"
	"lavka/internal/catalog"
	"lavka/internal/notify"
	"lavka/internal/prefs"
)

func newTestModel(t *testing.T) Model {
	t.Helper()
	opts := Options{
		Pipeline:  catalog.NewPipeline(catalog.Default()),
		Cart:      cart.New(),
		Toasts:    &notify.Queue{},
		Prefs:     prefs.Prefs{Theme: prefs.ThemeLight},
		PrefsPath: filepath.Join(t.TempDir(), "prefs.toml"),
	}
	m := New(opts)
	m.width, m.height = 120, 40
	m.ready = true
	return m
}

func keyRune(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	model, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T, want Model", next)
	}
	return model
}

func TestAddToCartKey_QueuesSuccessToast(t *testing.T) {
	m := newTestModel(t)

	m = update(t, m, keyRune('a'))

	if got := m.cart.TotalItems(); got != 1 {
		t.Fatalf("TotalItems() = %d, want 1", got)
	}
	pending := m.toasts.Pending()
	if len(pending) != 1 || pending[0].Kind != notify.KindSuccess {
		t.Fatalf("toasts = %#v, want one success toast", pending)
	}
}

func TestThemeToggle_TwicePersistsLight(t *testing.T) {
	m := newTestModel(t)
	if m.theme.Dark {
		t.Fatal("initial theme is dark, want light")
	}

	m = update(t, m, keyRune('t'))
	if !m.theme.Dark {
		t.Fatal("theme after one toggle = light, want dark")
	}

	m = update(t, m, keyRune('t'))
	if m.theme.Dark {
		t.Fatal("theme after two toggles = dark, want light")
	}

	p, err := prefs.Load(m.prefsPath)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if p.Theme != prefs.ThemeLight {
		t.Fatalf("persisted theme = %q, want %q", p.Theme, prefs.ThemeLight)
	}
}

func TestCheckoutSubmit_MissingFieldLeavesStateIntact(t *testing.T) {
	m := newTestModel(t)
	m.cart.Add(m.pipeline.Products()[0])

	m.currentView = ViewCheckout
	m.form = newCheckoutForm()
	// Fill everything except the first name.
	m.form.inputs[fieldLastName].SetValue("Петров")
	m.form.inputs[fieldEmail].SetValue("ivan@example.com")
	m.form.inputs[fieldPhone].SetValue("+7 900 000-00-00")
	m.form.inputs[fieldAddress].SetValue("ул. Ленина, 1")
	m.form.inputs[fieldCity].SetValue("Москва")

	m = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	if got := m.cart.TotalItems(); got != 1 {
		t.Fatalf("TotalItems() = %d after failed submit, want 1", got)
	}
	if m.currentView != ViewCheckout {
		t.Fatalf("currentView = %v after failed submit, want ViewCheckout", m.currentView)
	}
	pending := m.toasts.Pending()
	if len(pending) != 1 || pending[0].Kind != notify.KindError {
		t.Fatalf("toasts = %#v, want one error toast", pending)
	}
}

func TestCheckoutSubmit_ValidFormClearsCartAndCloses(t *testing.T) {
	m := newTestModel(t)
	m.cart.Add(m.pipeline.Products()[0])

	m.currentView = ViewCheckout
	m.form = newCheckoutForm()
	m.form.inputs[fieldFirstName].SetValue("Иван")
	m.form.inputs[fieldLastName].SetValue("Петров")
	m.form.inputs[fieldEmail].SetValue("ivan@example.com")
	m.form.inputs[fieldPhone].SetValue("+7 900 000-00-00")
	m.form.inputs[fieldAddress].SetValue("ул. Ленина, 1")
	m.form.inputs[fieldCity].SetValue("Москва")

	m = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	if got := m.cart.TotalItems(); got != 0 {
		t.Fatalf("TotalItems() = %d after successful submit, want 0", got)
	}
	if m.currentView != ViewCatalog {
		t.Fatalf("currentView = %v, want ViewCatalog", m.currentView)
	}
	pending := m.toasts.Pending()
	if len(pending) != 1 || pending[0].Kind != notify.KindSuccess {
		t.Fatalf("toasts = %#v, want one success toast", pending)
	}
}

func TestNewsletterSubmit_Validation(t *testing.T) {
	m := newTestModel(t)
	m.currentView = ViewNewsletter

	// Empty email
	m = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	pending := m.toasts.Pending()
	if len(pending) != 1 || pending[0].Kind != notify.KindError {
		t.Fatalf("toasts = %#v, want one error toast for empty email", pending)
	}
	if m.currentView != ViewNewsletter {
		t.Fatal("view changed on failed newsletter submit")
	}

	// Malformed email
	m.emailInput.SetValue("not-an-email")
	m = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if got := m.toasts.Len(); got != 2 {
		t.Fatalf("toasts = %d, want 2", got)
	}

	// Valid email
	m.emailInput.SetValue("ivan@example.com")
	m = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.currentView != ViewCatalog {
		t.Fatalf("currentView = %v after subscribe, want ViewCatalog", m.currentView)
	}
	if got := m.emailInput.Value(); got != "" {
		t.Fatalf("email input = %q after subscribe, want empty", got)
	}
}

func TestToastExpiry_RemovesByID(t *testing.T) {
	m := newTestModel(t)
	id := m.toasts.Add("готово", notify.KindInfo)

	m = update(t, m, toastExpiredMsg{id: id})

	if got := m.toasts.Len(); got != 0 {
		t.Fatalf("Len() = %d after expiry, want 0", got)
	}
}

func TestCartDrawerKeys_QuantityAndRemoval(t *testing.T) {
	m := newTestModel(t)
	products := m.pipeline.Products()
	m.cart.Add(products[0])
	m.cart.SetOpen(true)

	m = update(t, m, keyRune('+'))
	if got := m.cart.Lines()[0].Quantity; got != 2 {
		t.Fatalf("Quantity = %d after '+', want 2", got)
	}

	m = update(t, m, keyRune('-'))
	m = update(t, m, keyRune('-'))
	if got := len(m.cart.Lines()); got != 0 {
		t.Fatalf("len(Lines()) = %d after decrement to zero, want 0", got)
	}
}

func TestSearchFlow_FiltersResults(t *testing.T) {
	m := newTestModel(t)

	m = update(t, m, keyRune('/'))
	if !m.searching {
		t.Fatal("searching = false after '/', want true")
	}

	for _, r := range "часы" {
		m = update(t, m, keyRune(r))
	}
	if len(m.suggestions) == 0 {
		t.Fatalf("suggestions empty for query %q", m.searchInput.Value())
	}

	m = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.searching {
		t.Fatal("searching = true after enter, want false")
	}
	if len(m.results) != 1 || m.results[0].ID != 4 {
		t.Fatalf("results = %v, want only product 4", m.results)
	}
}
