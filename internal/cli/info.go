package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gitpeek/gitpeek/internal/config"
)

var infoCmd = &cobra.Command{
	Use:   "info",
	Short: "Show repository branch, remote and last commit",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			fail("%v", err)
			return nil
		}

		r := newRunner()
		if !r.IsRepo() {
			fail("not a git repository")
			return nil
		}

		branch, err := r.CurrentBranch()
		if err != nil {
			fail("%v", err)
			return nil
		}
		last, err := r.LastCommit()
		if err != nil {
			fail("%v", err)
			return nil
		}

		fmt.Printf("Branch:      %s\n", branch)
		fmt.Printf("Remote:      %s\n", r.RemoteURL(cfg.RemotePlaceholder))
		fmt.Printf("Last commit: %s\n", last)
		return nil
	},
}
