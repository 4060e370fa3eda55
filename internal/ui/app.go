// Package ui provides the Bubble Tea storefront interface for lavka.
package ui

import (
	"context"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"lavka/internal/cart"
	"lavka/internal/catalog"
	"lavka/internal/notify"
	"lavka/internal/prefs"
)

// View represents the current active view.
type View int

const (
	ViewCatalog View = iota
	ViewCheckout
	ViewNewsletter
)

// Options configures the UI.
type Options struct {
	Context   context.Context
	Pipeline  *catalog.Pipeline
	Cart      *cart.Store
	Toasts    *notify.Queue
	Prefs     prefs.Prefs
	PrefsPath string
}

// Model is the root application state for Bubble Tea.
type Model struct {
	// Injected stores
	pipeline *catalog.Pipeline
	cart     *cart.Store
	toasts   *notify.Queue

	// Theme state
	prefsPath string
	theme     Theme
	styles    Styles

	// UI state
	currentView View
	width       int
	height      int
	ready       bool
	showHelp    bool

	// Catalog state
	query       catalog.Query
	results     []catalog.Product
	cursor      int
	categoryIdx int
	sortIdx     int
	searching   bool
	searchInput textinput.Model
	suggestions []string

	// Cart drawer state
	cartCursor int

	// Checkout state
	form checkoutForm

	// Newsletter state
	emailInput textinput.Model
}

// New creates a new Bubble Tea model.
func New(opts Options) Model {
	prefsPath := opts.PrefsPath
	if prefsPath == "" {
		prefsPath = prefs.DefaultPath()
	}

	theme := ThemeFor(opts.Prefs.DarkMode(lipgloss.HasDarkBackground()))

	search := textinput.New()
	search.Prompt = "/"
	search.Placeholder = "поиск товаров"
	search.CharLimit = 60

	email := textinput.New()
	email.Prompt = "> "
	email.Placeholder = "ваш email"
	email.CharLimit = 80

	m := Model{
		pipeline:    opts.Pipeline,
		cart:        opts.Cart,
		toasts:      opts.Toasts,
		prefsPath:   prefsPath,
		theme:       theme,
		styles:      theme.Styles(),
		currentView: ViewCatalog,
		query:       catalog.Query{Category: catalog.CategoryAll, Sort: catalog.SortName},
		searchInput: search,
		emailInput:  email,
		form:        newCheckoutForm(),
	}
	m.refreshResults()
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.EnterAltScreen
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		return m, nil

	case toastExpiredMsg:
		m.toasts.Remove(msg.id)
		return m, nil
	}

	return m, nil
}

// refreshResults re-evaluates the catalog pipeline and clamps the cursor.
func (m *Model) refreshResults() {
	m.results = m.pipeline.Evaluate(m.query)
	if m.cursor >= len(m.results) {
		m.cursor = len(m.results) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

// toggleTheme flips dark mode, rebuilds the styles and persists the choice.
func (m *Model) toggleTheme() tea.Cmd {
	m.theme = ThemeFor(!m.theme.Dark)
	m.styles = m.theme.Styles()

	value := prefs.ThemeLight
	if m.theme.Dark {
		value = prefs.ThemeDark
	}
	if err := prefs.Save(m.prefsPath, prefs.Prefs{Theme: value}); err != nil {
		return m.toast("Не удалось сохранить тему", notify.KindError)
	}
	return nil
}

// toast queues a notification and schedules its expiry.
func (m Model) toast(message string, kind notify.Kind) tea.Cmd {
	id := m.toasts.Add(message, kind)
	return expireToastCmd(id)
}

// Run starts the Bubble Tea program and blocks until the user quits or the
// context is cancelled.
func Run(opts Options) error {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}
	_, err := tea.NewProgram(New(opts), tea.WithContext(ctx)).Run()
	return err
}
