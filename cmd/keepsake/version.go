// Version command for the keepsake CLI.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/keepsake/pkg/keepsake"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the keepsake version",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("keepsake", keepsake.Version)
	},
}
