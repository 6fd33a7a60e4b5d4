package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jobzen/dashboard/internal/core/domain"
)

var themesCmd = &cobra.Command{
	Use:   "themes [id]",
	Short: "List themes, or print the stylesheet of one theme",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		if len(args) == 0 {
			for _, t := range domain.Themes {
				fmt.Fprintf(out, "%-10s %-22s %s\n", t.ID, t.Name, t.Primary)
			}
			return nil
		}
		id := domain.ThemeID(args[0])
		if !id.Valid() {
			return fmt.Errorf("unknown theme %q", args[0])
		}
		fmt.Fprint(out, domain.StyleSheet(id))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(themesCmd)
}
