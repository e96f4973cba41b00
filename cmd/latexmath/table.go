package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/eolymp/go-latexmath"
	"github.com/spf13/cobra"
)

var tableCmd = &cobra.Command{
	Use:   "table",
	Short: "List commands resolved through the command table",
	Long:  "List functions, operators, letters and spaces known to the converter, including definitions added with --table and other flags.",
	Args:  cobra.NoArgs,
	RunE:  runTable,
}

func init() {
	tableCmd.Flags().String("category", "", "Show only one category: function, operator, letter or space")
	rootCmd.AddCommand(tableCmd)
}

func runTable(cmd *cobra.Command, args []string) error {
	category, _ := cmd.Flags().GetString("category")

	table, err := loadTable()
	if err != nil {
		return err
	}

	out := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)

	table.Scan(func(name string, def latex.Definition) bool {
		if category != "" && def.Category.String() != category {
			return true
		}

		text := def.Text
		if def.Category == latex.SpaceCategory {
			text = fmt.Sprintf("%gem", def.Width)
		}

		fmt.Fprintf(out, "\\%s\t%s\t%s\n", name, def.Category, text)
		return true
	})

	return out.Flush()
}
