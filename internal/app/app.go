package app

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"lavka/internal/cart"
	"lavka/internal/catalog"
	"lavka/internal/notify"
	"lavka/internal/prefs"
	"lavka/internal/ui"
)

// Options configure the lavka application.
type Options struct {
	PrefsPath string // empty uses default ~/.config/lavka/prefs.toml
	LogPath   string // empty disables logging
	Verbose   bool
}

// Run boots the lavka TUI until the context is cancelled or the user quits.
func Run(ctx context.Context, opts Options) error {
	userPrefs, err := prefs.Load(opts.PrefsPath)
	if err != nil {
		return fmt.Errorf("load prefs: %w", err)
	}

	logger, err := newLogger(opts.LogPath, opts.Verbose)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	pipeline := catalog.NewPipeline(catalog.Default())
	basket := cart.New()
	toasts := &notify.Queue{}

	basket.Watch(func(ev cart.Event) {
		logger.Debug("cart event",
			zap.String("op", ev.Op),
			zap.Int("product_id", ev.ProductID),
			zap.Int("quantity", ev.Quantity))
	})

	logger.Info("starting", zap.Int("catalog_size", len(pipeline.Products())))

	uiOpts := ui.Options{
		Context:   ctx,
		Pipeline:  pipeline,
		Cart:      basket,
		Toasts:    toasts,
		Prefs:     userPrefs,
		PrefsPath: opts.PrefsPath,
	}
	if err := ui.Run(uiOpts); err != nil {
		return fmt.Errorf("run ui: %w", err)
	}
	return nil
}

// newLogger builds a file logger. The TUI owns stdout, so an empty path means
// a nop logger rather than console output.
func newLogger(path string, verbose bool) (*zap.Logger, error) {
	if path == "" {
		return zap.NewNop(), nil
	}
	cfg := zap.NewProductionConfig()
	cfg.OutputPaths = []string{path}
	cfg.ErrorOutputPaths = []string{path}
	if verbose {
		cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	return cfg.Build()
}
