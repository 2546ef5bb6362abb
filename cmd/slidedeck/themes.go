package main

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

var themesCmd = &cobra.Command{
	Use:   "themes",
	Short: "List the available themes",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		for _, id := range catalog.IDs() {
			t, _ := catalog.Lookup(id)

			swatch := ""
			for _, c := range []string{t.Colors.Primary, t.Colors.Background, t.Colors.Text, t.Colors.Muted} {
				swatch += lipgloss.NewStyle().Background(lipgloss.Color(c)).Render("  ")
			}

			marker := " "
			if id == catalog.DefaultID() {
				marker = "*"
			}
			fmt.Fprintf(out, "%s %-16s %s  %s\n", marker, id, swatch, t.Name)
		}
	},
}

func init() {
	rootCmd.AddCommand(themesCmd)
}
