package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var annotateFile string

// annotateCmd is the explicit form of the default (bare) invocation.
var annotateCmd = &cobra.Command{
	Use:   "annotate",
	Short: "Derive the category field for every advice record",
	Long: `Loads the dataset, derives a category for each record from its primary
(first) context via the fixed lookup table, and rewrites the file in place.
Records whose primary context is unknown fall back to "emotional"; records
without contexts get "general". Existing category values are overwritten.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runAnnotate(cmd, annotateFile)
	},
}

func runAnnotate(cmd *cobra.Command, path string) error {
	appInstance, err := GetAppFromContext(cmd.Context())
	if err != nil {
		return err
	}
	if path == "" {
		path = appInstance.Config.Dataset.Path
	}

	if _, err := appInstance.Annotations.AnnotateFile(cmd.Context(), path); err != nil {
		return fmt.Errorf("annotate failed: %w", err)
	}

	fmt.Println("✅ Added category field to all entries")
	return nil
}

func init() {
	annotateCmd.Flags().StringVarP(&annotateFile, "file", "f", "", "Dataset file to annotate (defaults to dataset.path from config)")
	rootCmd.AddCommand(annotateCmd)
}
