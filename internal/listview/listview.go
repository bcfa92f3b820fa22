// Package listview implements the list-view contract shared by every
// resource screen: pure filter/search/pagination over a fetched collection,
// plus the optimistic-mutation helper that splices a server's canonical
// response back into local state or rolls back on failure.
package listview

import "strings"

// Config parameterizes the filter/search behavior for one resource type.
type Config[T any] struct {
	// SearchText selects the designated text field searched as a
	// case-insensitive substring.
	SearchText func(T) string

	// Hidden reports whether an item is archived/hidden and therefore
	// excluded from the default view.
	Hidden func(T) bool

	// Tags maps each filter-tag value of the resource's closed enum to its
	// predicate. Tags not present here pass everything through.
	Tags map[string]func(T) bool

	// HiddenTags lists the tags that explicitly target hidden/archived
	// items; while one is active the default-visibility policy is off.
	HiddenTags []string
}

// Apply filters items by tag and search text. It is pure and deterministic:
// the input slice is never modified.
//
// Rules:
//   - an unknown tag passes everything through
//   - empty search text is a pass-through, not a no-match
//   - hidden items are excluded by default; they become visible only while
//     a non-empty search matches them or while the active tag explicitly
//     targets hidden items
func (c Config[T]) Apply(items []T, tag, search string) []T {
	tagPred, known := c.Tags[tag]
	showHidden := c.tagShowsHidden(tag)

	out := make([]T, 0, len(items))
	for _, item := range items {
		if known && !tagPred(item) {
			continue
		}
		if !matchesSearch(c.searchText(item), search) {
			continue
		}
		if search == "" && !showHidden && c.hidden(item) {
			continue
		}
		out = append(out, item)
	}
	return out
}

func (c Config[T]) searchText(item T) string {
	if c.SearchText == nil {
		return ""
	}
	return c.SearchText(item)
}

func (c Config[T]) hidden(item T) bool {
	return c.Hidden != nil && c.Hidden(item)
}

func (c Config[T]) tagShowsHidden(tag string) bool {
	for _, t := range c.HiddenTags {
		if t == tag {
			return true
		}
	}
	return false
}

func matchesSearch(text, search string) bool {
	if search == "" {
		return true
	}
	return strings.Contains(strings.ToLower(text), strings.ToLower(search))
}

// Paginate returns the 1-indexed page of the given size. Out-of-range pages
// and non-positive arguments yield an empty slice, never an error.
func Paginate[T any](items []T, pageSize, page int) []T {
	if pageSize <= 0 || page <= 0 {
		return []T{}
	}

	start := (page - 1) * pageSize
	if start >= len(items) {
		return []T{}
	}

	end := start + pageSize
	if end > len(items) {
		end = len(items)
	}

	return items[start:end]
}

// PageCount returns the number of pages needed to show items
func PageCount[T any](items []T, pageSize int) int {
	if pageSize <= 0 {
		return 0
	}
	return (len(items) + pageSize - 1) / pageSize
}
