// List command projects the favorites gallery.
package main

import (
	"encoding/json"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/keepsake/internal/gallery"
)

var listFilter string

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List favorites as a gallery",
	Long: `List shows the saved favorites newest-first with their captions.

Use --filter to restrict the gallery to favorites whose caption or URL
contains the given substring (case-insensitive).

Example:
  keepsake list
  keepsake list --filter cat
  keepsake list --json`,
	Args: cobra.NoArgs,
	RunE: runList,
}

func init() {
	listCmd.Flags().StringVar(&listFilter, "filter", "", "substring filter over caption and URL")
}

func runList(cmd *cobra.Command, args []string) error {
	s, adapter, err := openStore()
	if err != nil {
		return err
	}
	defer adapter.Close()

	view := gallery.Render(s.List(), listFilter)

	if flagJSON {
		output, err := json.MarshalIndent(view, "", "  ")
		if err != nil {
			return fmt.Errorf("marshal gallery: %w", err)
		}
		fmt.Println(string(output))
		return nil
	}

	if view.Empty {
		fmt.Println(view.Notice)
		return nil
	}

	printGalleryTable(view)
	return nil
}

// printGalleryTable prints the gallery in a human-readable table format.
func printGalleryTable(view gallery.View) {
	var sb strings.Builder
	w := tabwriter.NewWriter(&sb, 0, 0, 2, ' ', 0)

	fmt.Fprintln(w, "CAPTION\tURL")
	fmt.Fprintln(w, "-------\t---")
	for _, item := range view.Items {
		caption := item.Caption
		if len(caption) > 40 {
			caption = caption[:37] + "..."
		}
		fmt.Fprintf(w, "%s\t%s\n", caption, item.URL)
	}
	w.Flush()

	for _, line := range strings.Split(sb.String(), "\n") {
		fmt.Println(strings.TrimRight(line, " "))
	}

	fmt.Printf("Total: %d favorite(s)\n", view.Total)
}
