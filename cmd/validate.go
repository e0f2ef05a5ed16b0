package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"mend/internal/models"
)

var validateFile string

// validateCmd checks the schema assumptions the annotate pass relies on.
var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check the dataset against the expected record schema",
	Long: `Verifies that every record's "contexts" field (when present) is an array
of strings and that "category" (when present) is a string. Exits non-zero
when violations are found.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		appInstance, err := GetAppFromContext(cmd.Context())
		if err != nil {
			return err
		}
		path := validateFile
		if path == "" {
			path = appInstance.Config.Dataset.Path
		}

		issues, err := appInstance.Annotations.Validate(cmd.Context(), path)
		if err != nil {
			return fmt.Errorf("validate failed: %w", err)
		}

		if len(issues) == 0 {
			fmt.Printf("%s dataset matches the expected schema\n", color.GreenString("OK"))
			return nil
		}

		for _, issue := range issues {
			fmt.Printf("  - %s %s\n", color.RedString("ERROR"), issue)
		}
		return fmt.Errorf("%w: %d schema violation(s) found", models.ErrValidation, len(issues))
	},
}

func init() {
	validateCmd.Flags().StringVarP(&validateFile, "file", "f", "", "Dataset file to validate (defaults to dataset.path from config)")
	rootCmd.AddCommand(validateCmd)
}
