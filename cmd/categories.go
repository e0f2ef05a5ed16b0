package cmd

import (
	"fmt"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"mend/pkg/categorizer"
)

// categoriesCmd dumps the context-to-category lookup table.
var categoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "List the context-to-category mapping",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		table := tablewriter.NewWriter(os.Stdout)
		table.SetHeader([]string{"Context", "Category"})
		table.SetBorder(false)
		table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
		table.SetAlignment(tablewriter.ALIGN_LEFT)

		for _, context := range categorizer.Contexts() {
			table.Append([]string{context, categorizer.CategoryMap[context]})
		}
		table.Render()

		fmt.Printf("Unknown first context falls back to %q; records without contexts get %q.\n",
			categorizer.FallbackCategory, categorizer.DefaultCategory)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(categoriesCmd)
}
