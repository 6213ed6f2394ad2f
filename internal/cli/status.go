package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gitpeek/gitpeek/internal/status"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Summarize working-tree changes",
	RunE: func(cmd *cobra.Command, args []string) error {
		r := newRunner()
		if !r.IsRepo() {
			fail("not a git repository")
			return nil
		}

		entries, err := r.ShortStatus()
		if err != nil {
			fail("%v", err)
			return nil
		}

		for _, e := range entries {
			fmt.Printf("%s %s\n", e.Code(), e.Path)
		}
		if len(entries) > 0 {
			fmt.Println()
		}
		fmt.Println(formatCounts(status.Tally(entries)))
		return nil
	},
}
