package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"lavka/internal/app"
)

var (
	prefsPath string
	logPath   string
	verbose   bool
)

var rootCmd = &cobra.Command{
	Use:   "lavka",
	Short: "lavka — терминальная витрина: каталог, корзина, оформление заказа",
	Long: `lavka is a keyboard-driven storefront demo for the terminal.

Browse the product catalog with search, category filters and sorting, manage
a shopping cart, and walk through a checkout form. The only thing persisted
is the theme preference (light/dark) in ~/.config/lavka/prefs.toml.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		opts := app.Options{
			PrefsPath: prefsPath,
			LogPath:   logPath,
			Verbose:   verbose,
		}
		return app.Run(ctx, opts)
	},
}

func init() {
	rootCmd.Flags().StringVar(&prefsPath, "prefs", "", "override preferences path (optional)")
	rootCmd.Flags().StringVar(&logPath, "log-file", "", "write debug logs to this file (optional)")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "lavka: %v\n", err)
		os.Exit(1)
	}
}
