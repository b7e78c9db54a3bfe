// Remove command deletes a favorite by URL.
package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

var removeCmd = &cobra.Command{
	Use:   "remove <url>",
	Short: "Remove a favorite by URL",
	Long: `Remove deletes the favorite matching the given URL exactly.

Removing a URL that is not saved is not an error.

Example:
  keepsake remove https://example.com/images/sunset.png`,
	Args: cobra.ExactArgs(1),
	RunE: runRemove,
}

func runRemove(cmd *cobra.Command, args []string) error {
	url := args[0]

	s, adapter, err := openStore()
	if err != nil {
		return err
	}
	defer adapter.Close()

	removed, err := s.Remove(url)
	if err != nil {
		return fmt.Errorf("remove favorite: %w", err)
	}

	if flagJSON {
		output, err := json.MarshalIndent(map[string]any{
			"url":     url,
			"removed": removed,
			"total":   s.Len(),
		}, "", "  ")
		if err != nil {
			return fmt.Errorf("marshal result: %w", err)
		}
		fmt.Println(string(output))
		return nil
	}

	if removed {
		fmt.Printf("Removed favorite: %s\n", url)
	} else {
		fmt.Printf("Not a favorite: %s\n", url)
	}
	return nil
}
