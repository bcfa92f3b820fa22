package listview

// Mutator formalizes the optimistic update: snapshot prior state, apply the
// local change, perform the call, then commit the server's canonical item or
// restore the snapshot.
type Mutator[T any] struct {
	// ID extracts the identifier used to splice items back into the slice.
	ID func(T) string
}

// Apply runs one optimistic mutation. The optimistic item replaces its match
// in a copy of items; call performs the network mutation. On success the
// canonical response is spliced in by identifier; on failure the original
// slice is returned unchanged along with the error.
func (m Mutator[T]) Apply(items []T, optimistic T, call func() (T, error)) ([]T, error) {
	working := m.Splice(items, optimistic)

	canonical, err := call()
	if err != nil {
		return items, err
	}

	return m.Splice(working, canonical), nil
}

// Splice returns a copy of items with the matching element replaced. Items
// without a match are returned unchanged (still copied).
func (m Mutator[T]) Splice(items []T, replacement T) []T {
	out := make([]T, len(items))
	copy(out, items)

	id := m.ID(replacement)
	for i, item := range out {
		if m.ID(item) == id {
			out[i] = replacement
			break
		}
	}
	return out
}
