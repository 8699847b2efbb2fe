package cli

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/hireflow/pkg/workflow"
	"github.com/matzehuels/hireflow/pkg/workflow/catalog"
)

// variantsCommand creates the variants command listing the built-in workflows.
func (c *CLI) variantsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "variants",
		Short: "List the built-in workflows",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), variantsTable(c.Config.View.Variant))
			return nil
		},
	}
}

// variantsTable renders the variants in selector order. The configured
// default variant is marked.
func variantsTable(current string) string {
	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)
	cell := lipgloss.NewStyle().Padding(0, 1)

	var rows [][]string
	for i, v := range catalog.All() {
		e := catalog.Lookup(v)
		mark := ""
		if string(v) == current {
			mark = "•"
		}
		rows = append(rows, []string{
			strconv.Itoa(i + 1),
			string(v),
			e.Label,
			strconv.Itoa(workflow.Count(e.Steps)),
			strconv.Itoa(workflow.Depth(e.Steps)),
			mark,
		})
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("#", "Variant", "Label", "Steps", "Depth", "Default").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle.Padding(0, 1)
			}
			switch col {
			case 1:
				return cell.Foreground(colorCyan)
			case 3, 4:
				return cell.Foreground(colorWhite).Align(lipgloss.Right)
			case 5:
				return cell.Foreground(colorGreen).Align(lipgloss.Center)
			}
			return cell.Foreground(colorGray)
		})
	return t.Render()
}
