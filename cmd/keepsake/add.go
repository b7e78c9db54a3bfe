// Add command saves a favorite image URL.
package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

var addCmd = &cobra.Command{
	Use:   "add <url>",
	Short: "Save an image URL as a favorite",
	Long: `Add saves an image URL at the front of the favorites list.

A URL that is already saved (exact match) is left alone; adding it again
is not an error.

Example:
  keepsake add https://example.com/images/sunset.png
  keepsake add https://example.com/cat.jpg --json`,
	Args: cobra.ExactArgs(1),
	RunE: runAdd,
}

func runAdd(cmd *cobra.Command, args []string) error {
	url := args[0]

	s, adapter, err := openStore()
	if err != nil {
		return err
	}
	defer adapter.Close()

	added, err := s.Add(url)
	if err != nil {
		return fmt.Errorf("add favorite: %w", err)
	}

	if flagJSON {
		output, err := json.MarshalIndent(map[string]any{
			"url":   url,
			"added": added,
			"total": s.Len(),
		}, "", "  ")
		if err != nil {
			return fmt.Errorf("marshal result: %w", err)
		}
		fmt.Println(string(output))
		return nil
	}

	if added {
		fmt.Printf("Saved favorite: %s\n", url)
	} else {
		fmt.Printf("Already saved: %s\n", url)
	}
	return nil
}
