// Package ui implements the Bubble Tea storefront interface.
//
// # Views
//
// A single root Model renders one of three views — catalog, checkout form,
// newsletter signup — plus the cart drawer beside the catalog and a help
// overlay. Toasts from the notification queue are stacked above the footer
// and expire through fire-once tea.Tick commands, one per notification.
//
// # State
//
// The model holds no domain state of its own: the catalog pipeline, cart
// store and notification queue are injected through Options and mutated only
// in response to key events. Theme state (the dark-mode flag) lives on the
// model; toggling rebuilds the palette and persists the choice via prefs.
//
// # Key routing
//
// Update dispatches keys by mode: an active search input or checkout form
// swallows keys first, then the cart drawer, then the catalog bindings. The
// footer renders the bindings for whichever mode is active.
package ui
