// Browse command opens the interactive gallery.
package main

import (
	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/keepsake/internal/tui"
)

var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Browse favorites interactively",
	Long: `Browse opens a terminal gallery over the favorites list: type to
filter live, select an item, and press enter to open its detail view.

Example:
  keepsake browse`,
	Args: cobra.NoArgs,
	RunE: runBrowse,
}

func runBrowse(cmd *cobra.Command, args []string) error {
	s, adapter, err := openStore()
	if err != nil {
		return err
	}
	defer adapter.Close()

	return tui.Run(s)
}
