package cmd

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"mend/internal/clix"
)

var (
	addContexts string
	addFile     string
)

// addCmd appends a new advice record to the dataset.
var addCmd = &cobra.Command{
	Use:   "add <advice text>",
	Short: "Add a new advice record to the dataset",
	Long: `Appends a record with a generated id, the given advice text, and the
given contexts. The category is derived from the first context the same way
the annotate pass derives it.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		appInstance, err := GetAppFromContext(cmd.Context())
		if err != nil {
			return err
		}
		path := addFile
		if path == "" {
			path = appInstance.Config.Dataset.Path
		}

		contexts, err := clix.ParseContexts(cmd.Flags())
		if err != nil {
			return err
		}
		advice := strings.Join(args, " ")

		record, err := appInstance.Annotations.AddRecord(cmd.Context(), path, advice, contexts)
		if err != nil {
			return fmt.Errorf("failed to add record: %w", err)
		}

		fmt.Printf("%s added record %s (category: %s)\n",
			color.GreenString("OK"), record["id"], record.Category())
		return nil
	},
}

func init() {
	addCmd.Flags().StringVarP(&addContexts, "contexts", "c", "", "Comma-separated context labels (first one drives the category)")
	addCmd.Flags().StringVarP(&addFile, "file", "f", "", "Dataset file to append to (defaults to dataset.path from config)")
	rootCmd.AddCommand(addCmd)
}
