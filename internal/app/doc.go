// Package app provides the orchestration layer for the lavka application.
//
// # Overview
//
// This package is the composition root: it loads user preferences, builds the
// three state holders (catalog pipeline, cart store, notification queue),
// wires observers and logging, and starts the TUI. No business logic lives
// here; domain packages own their own rules.
//
// # Architecture
//
//	┌──────────────┐
//	│   Run()      │ Initialize everything
//	└──────┬───────┘
//	       │
//	       ├─────> prefs.Load()          Read theme preference
//	       ├─────> newLogger()           zap file logger (nop when unset)
//	       ├─────> catalog.NewPipeline() Static catalog + query pipeline
//	       ├─────> cart.New()            Cart store
//	       ├─────> notify.Queue{}        Notification queue
//	       └─────> ui.Run()              Start TUI (blocks)
//
// All stores are constructed here and passed down explicitly through
// ui.Options. The UI never reaches for ambient state; every mutation goes
// through an injected store.
//
// # Logging
//
// The TUI owns stdout, so logs go to a file selected with --log-file. Without
// the flag a nop logger is used. A cart observer registered here logs every
// cart mutation at debug level, which is the only logging hook the stores
// expose.
//
// # Error Handling
//
// Preference loading degrades gracefully (a missing or broken prefs file
// yields the system theme fallback). Logger construction and UI startup
// failures are fatal and returned from Run.
package app
