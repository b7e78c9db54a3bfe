// Package gallery projects the favorites list into display descriptors.
// Projection is pure: no side effects, restartable, the same inputs always
// produce the same view. Painting the result (CLI table, terminal UI) is the
// caller's concern.
package gallery

import (
	"iter"
	"net/url"
	"strings"
)

// FallbackCaption is used when a URL has no usable path segment.
const FallbackCaption = "image"

// Empty-view notices, distinguishable so callers can paint the right
// placeholder.
const (
	NoticeNoFavorites = "no favorites yet"
	NoticeNoMatches   = "no favorites match the filter"
)

// Item is one displayable favorite: the image URL plus a short caption.
type Item struct {
	URL     string `json:"url"`
	Caption string `json:"caption"`
}

// View is a materialized gallery projection. Empty distinguishes "nothing to
// show" from a populated gallery; Notice says why the view is empty.
type View struct {
	Items  []Item `json:"items"`
	Total  int    `json:"total"`
	Empty  bool   `json:"empty"`
	Notice string `json:"notice,omitempty"`
}

// Caption derives the display caption for a favorite URL: the last path
// segment, or FallbackCaption when the URL has no path to speak of.
func Caption(rawURL string) string {
	path := rawURL
	if u, err := url.Parse(rawURL); err == nil && u.Path != "" {
		path = u.Path
	} else if err == nil {
		return FallbackCaption
	}

	path = strings.TrimSuffix(path, "/")
	if i := strings.LastIndex(path, "/"); i >= 0 {
		path = path[i+1:]
	}
	if path == "" {
		return FallbackCaption
	}
	return path
}

// Items returns a lazy sequence of display items for urls, restricted to
// those whose caption or URL contains filter (case-insensitive substring).
// An empty filter passes every item through unchanged in order.
func Items(urls []string, filter string) iter.Seq[Item] {
	needle := strings.ToLower(filter)
	return func(yield func(Item) bool) {
		for _, u := range urls {
			item := Item{URL: u, Caption: Caption(u)}
			if needle != "" &&
				!strings.Contains(strings.ToLower(item.Caption), needle) &&
				!strings.Contains(strings.ToLower(item.URL), needle) {
				continue
			}
			if !yield(item) {
				return
			}
		}
	}
}

// Render materializes the projection of urls under filter. An empty source
// list and a filter that matches nothing both produce an empty view, with
// Notice telling the two apart.
func Render(urls []string, filter string) View {
	var items []Item
	for item := range Items(urls, filter) {
		items = append(items, item)
	}

	v := View{Items: items, Total: len(items)}
	switch {
	case len(urls) == 0:
		v.Empty = true
		v.Notice = NoticeNoFavorites
	case len(items) == 0:
		v.Empty = true
		v.Notice = NoticeNoMatches
	}
	return v
}
