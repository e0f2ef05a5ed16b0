package cmd

import (
	"fmt"
	"os"
	"sort"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

var statsFile string

// statsCmd shows the category distribution of the dataset as stored.
var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show the category distribution of the dataset",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		appInstance, err := GetAppFromContext(cmd.Context())
		if err != nil {
			return err
		}
		path := statsFile
		if path == "" {
			path = appInstance.Config.Dataset.Path
		}

		summary, err := appInstance.Annotations.Stats(cmd.Context(), path)
		if err != nil {
			return fmt.Errorf("error reading dataset stats: %w", err)
		}

		if summary.Total == 0 {
			fmt.Println("No records found.")
			return nil
		}

		categories := make([]string, 0, len(summary.ByCategory))
		for category := range summary.ByCategory {
			categories = append(categories, category)
		}
		sort.Strings(categories)

		table := tablewriter.NewWriter(os.Stdout)
		table.SetHeader([]string{"Category", "Count"})
		table.SetBorder(false)
		table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
		table.SetAlignment(tablewriter.ALIGN_LEFT)

		for _, category := range categories {
			label := category
			if label == "" {
				label = "(none)"
			}
			table.Append([]string{label, strconv.Itoa(summary.ByCategory[category])})
		}
		table.Render()

		fmt.Printf("Total: %d records\n", summary.Total)
		return nil
	},
}

func init() {
	statsCmd.Flags().StringVarP(&statsFile, "file", "f", "", "Dataset file to inspect (defaults to dataset.path from config)")
	rootCmd.AddCommand(statsCmd)
}
