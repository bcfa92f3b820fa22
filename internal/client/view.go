package client

import (
	"context"
	"errors"
	"sync"
	"time"

	"pulse-backend/internal/listview"
)

// ErrMutationInFlight is returned when the same item is mutated again while
// a previous mutation has not completed.
var ErrMutationInFlight = errors.New("mutation already in flight")

// DefaultSearchDebounce is the quiet interval applied to search input
const DefaultSearchDebounce = 400 * time.Millisecond

// View is one resource list view: the fetched collection plus the local
// filter tag, search text, and page applied on top of it. Failures are
// surfaced per-view through Err, never globally.
type View[T any] struct {
	mu sync.Mutex

	load    func(context.Context) ([]T, error)
	cfg     listview.Config[T]
	mutator listview.Mutator[T]

	items    []T
	tag      string
	search   string
	page     int
	pageSize int

	loading    bool
	errMsg     string
	generation int
	inFlight   map[string]bool

	debounce *Debouncer
}

// NewView creates a view over a load function. cfg drives filter/search; id
// extracts item identifiers for mutation splicing.
func NewView[T any](load func(context.Context) ([]T, error), cfg listview.Config[T], id func(T) string, pageSize int) *View[T] {
	return &View[T]{
		load:     load,
		cfg:      cfg,
		mutator:  listview.Mutator[T]{ID: id},
		page:     1,
		pageSize: pageSize,
		inFlight: make(map[string]bool),
		debounce: NewDebouncer(DefaultSearchDebounce),
	}
}

// Reload fetches the collection. A reload started after this one supersedes
// it: the stale response is discarded rather than applied.
func (v *View[T]) Reload(ctx context.Context) error {
	v.mu.Lock()
	v.generation++
	gen := v.generation
	v.loading = true
	v.mu.Unlock()

	items, err := v.load(ctx)

	v.mu.Lock()
	defer v.mu.Unlock()

	if gen != v.generation {
		// Superseded by a newer load; drop this result.
		return nil
	}

	v.loading = false
	if err != nil {
		v.errMsg = err.Error()
		return err
	}

	v.items = items
	v.errMsg = ""
	return nil
}

// SetTag sets the active filter tag and resets to the first page
func (v *View[T]) SetTag(tag string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.tag = tag
	v.page = 1
}

// SetSearch applies search text immediately and resets to the first page
func (v *View[T]) SetSearch(text string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.search = text
	v.page = 1
}

// Search applies search text after the debounce interval, coalescing rapid
// keystrokes. onApply, if non-nil, runs after the text takes effect.
func (v *View[T]) Search(text string, onApply func()) {
	v.debounce.Do(func() {
		v.SetSearch(text)
		if onApply != nil {
			onApply()
		}
	})
}

// SetPage sets the current 1-indexed page
func (v *View[T]) SetPage(page int) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.page = page
}

// Visible returns the current page of the filtered collection
func (v *View[T]) Visible() []T {
	v.mu.Lock()
	defer v.mu.Unlock()

	filtered := v.cfg.Apply(v.items, v.tag, v.search)
	return listview.Paginate(filtered, v.pageSize, v.page)
}

// Items returns a copy of the full fetched collection
func (v *View[T]) Items() []T {
	v.mu.Lock()
	defer v.mu.Unlock()

	out := make([]T, len(v.items))
	copy(out, v.items)
	return out
}

// Loading reports whether a load is in progress
func (v *View[T]) Loading() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.loading
}

// Err returns the view-local error message, empty when healthy
func (v *View[T]) Err() string {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.errMsg
}

// Mutate applies optimistic locally, performs call, and either splices the
// canonical response back in by identifier or restores the pre-mutation
// state. A second mutation of the same item while one is in flight returns
// ErrMutationInFlight.
func (v *View[T]) Mutate(ctx context.Context, optimistic T, call func(context.Context) (T, error)) error {
	id := v.mutator.ID(optimistic)

	v.mu.Lock()
	if v.inFlight[id] {
		v.mu.Unlock()
		return ErrMutationInFlight
	}
	v.inFlight[id] = true

	snapshot := make([]T, len(v.items))
	copy(snapshot, v.items)
	v.items = v.mutator.Splice(v.items, optimistic)
	v.mu.Unlock()

	canonical, err := call(ctx)

	v.mu.Lock()
	defer v.mu.Unlock()
	delete(v.inFlight, id)

	if err != nil {
		v.items = snapshot
		v.errMsg = err.Error()
		return err
	}

	v.items = v.mutator.Splice(v.items, canonical)
	v.errMsg = ""
	return nil
}
