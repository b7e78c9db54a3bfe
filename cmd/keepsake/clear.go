// Clear command empties the favorites list.
package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove all favorites",
	Long: `Clear empties the favorites list and persists the empty sequence.

Example:
  keepsake clear`,
	Args: cobra.NoArgs,
	RunE: runClear,
}

func runClear(cmd *cobra.Command, args []string) error {
	s, adapter, err := openStore()
	if err != nil {
		return err
	}
	defer adapter.Close()

	n := s.Len()
	if err := s.Clear(); err != nil {
		return fmt.Errorf("clear favorites: %w", err)
	}

	if flagJSON {
		output, err := json.MarshalIndent(map[string]any{
			"cleared": n,
		}, "", "  ")
		if err != nil {
			return fmt.Errorf("marshal result: %w", err)
		}
		fmt.Println(string(output))
		return nil
	}

	fmt.Printf("Cleared %d favorite(s)\n", n)
	return nil
}
