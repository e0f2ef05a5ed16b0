package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"mend/internal/app"
	"mend/internal/config"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "mend",
	Short: "Mend therapy-advice dataset tool",
	Long: `Mend maintains a JSON dataset of therapy-advice records.

Run without arguments it annotates every record: the first entry of each
record's "contexts" field is mapped to a category through a fixed lookup
table and written back to the file in place.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		// Bare invocation runs the full annotate pass immediately.
		return runAnnotate(cmd, "")
	},
	// PersistentPreRunE runs before any subcommand's RunE
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Name() == "help" || cmd.Name() == "version" {
			return nil
		}

		cfg, err := config.LoadConfig()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		if verbose {
			cfg.Log.Level = "debug"
		}

		appInstance, err := app.NewApp(cfg)
		if err != nil {
			return fmt.Errorf("failed to initialize app: %w", err)
		}

		// Store the app instance in the command's context.
		ctx := context.WithValue(cmd.Context(), appKey, appInstance)
		cmd.SetContext(ctx)
		return nil
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Define a custom type for the context key to avoid collisions.
type contextKey string

const appKey contextKey = "app"

// GetAppFromContext retrieves the app instance stashed by PersistentPreRunE.
func GetAppFromContext(ctx context.Context) (*app.App, error) {
	appInstance, ok := ctx.Value(appKey).(*app.App)
	if !ok || appInstance == nil {
		return nil, fmt.Errorf("application instance not found in context")
	}
	return appInstance, nil
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
}
