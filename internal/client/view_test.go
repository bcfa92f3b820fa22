package client

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"pulse-backend/internal/listview"
)

type viewItem struct {
	ID       string
	Title    string
	Done     bool
	Archived bool
}

var viewItemConfig = listview.Config[viewItem]{
	SearchText: func(i viewItem) string { return i.Title },
	Hidden:     func(i viewItem) bool { return i.Archived },
	Tags: map[string]func(viewItem) bool{
		"Completed": func(i viewItem) bool { return i.Done },
		"Archived":  func(i viewItem) bool { return i.Archived },
	},
	HiddenTags: []string{"Archived"},
}

func viewItemID(i viewItem) string { return i.ID }

func staticLoad(items []viewItem) func(context.Context) ([]viewItem, error) {
	return func(context.Context) ([]viewItem, error) {
		out := make([]viewItem, len(items))
		copy(out, items)
		return out, nil
	}
}

func TestView_ReloadAndVisible(t *testing.T) {
	t.Parallel()

	items := make([]viewItem, 12)
	for i := range items {
		items[i] = viewItem{ID: string(rune('a' + i)), Title: "Task"}
	}

	v := NewView(staticLoad(items), viewItemConfig, viewItemID, 5)
	require.NoError(t, v.Reload(context.Background()))
	require.False(t, v.Loading())
	require.Empty(t, v.Err())

	require.Len(t, v.Visible(), 5)

	v.SetPage(3)
	require.Len(t, v.Visible(), 2)

	v.SetPage(4)
	require.Empty(t, v.Visible())
}

func TestView_TagAndSearchResetPage(t *testing.T) {
	t.Parallel()

	items := []viewItem{
		{ID: "1", Title: "Write report"},
		{ID: "2", Title: "Review budget", Done: true},
		{ID: "3", Title: "Old budget review", Archived: true},
	}

	v := NewView(staticLoad(items), viewItemConfig, viewItemID, 10)
	require.NoError(t, v.Reload(context.Background()))

	// Archived item hidden by default
	require.Len(t, v.Visible(), 2)

	v.SetPage(9)
	v.SetTag("Completed")
	visible := v.Visible()
	require.Len(t, visible, 1)
	require.Equal(t, "Review budget", visible[0].Title)

	v.SetTag("")
	v.SetSearch("budget")
	require.Len(t, v.Visible(), 2)
}

func TestView_ReloadError(t *testing.T) {
	t.Parallel()

	load := func(context.Context) ([]viewItem, error) {
		return nil, errors.New("connection refused")
	}

	v := NewView(load, viewItemConfig, viewItemID, 10)
	require.Error(t, v.Reload(context.Background()))
	require.Equal(t, "connection refused", v.Err())
	require.False(t, v.Loading())
}

func TestView_StaleReloadDiscarded(t *testing.T) {
	t.Parallel()

	var calls int32
	firstStarted := make(chan struct{})
	releaseFirst := make(chan struct{})

	load := func(context.Context) ([]viewItem, error) {
		if atomic.AddInt32(&calls, 1) == 1 {
			close(firstStarted)
			<-releaseFirst
			return []viewItem{{ID: "stale"}}, nil
		}
		return []viewItem{{ID: "fresh"}}, nil
	}

	v := NewView(load, viewItemConfig, viewItemID, 10)

	firstDone := make(chan error, 1)
	go func() { firstDone <- v.Reload(context.Background()) }()
	<-firstStarted

	// Second reload supersedes the first
	require.NoError(t, v.Reload(context.Background()))
	close(releaseFirst)
	require.NoError(t, <-firstDone)

	items := v.Items()
	require.Len(t, items, 1)
	require.Equal(t, "fresh", items[0].ID)
}

func TestView_MutateCommitsCanonical(t *testing.T) {
	t.Parallel()

	items := []viewItem{{ID: "1", Title: "Write report"}}
	v := NewView(staticLoad(items), viewItemConfig, viewItemID, 10)
	require.NoError(t, v.Reload(context.Background()))

	canonical := viewItem{ID: "1", Title: "Write report", Done: true}
	err := v.Mutate(context.Background(), viewItem{ID: "1", Done: true},
		func(context.Context) (viewItem, error) { return canonical, nil })
	require.NoError(t, err)
	require.Empty(t, v.Err())
	require.Equal(t, canonical, v.Items()[0])
}

func TestView_MutateRollsBackOnFailure(t *testing.T) {
	t.Parallel()

	items := []viewItem{{ID: "1", Title: "Write report"}}
	v := NewView(staticLoad(items), viewItemConfig, viewItemID, 10)
	require.NoError(t, v.Reload(context.Background()))

	err := v.Mutate(context.Background(), viewItem{ID: "1", Done: true},
		func(context.Context) (viewItem, error) {
			// The optimistic state is visible while the call runs
			require.True(t, v.Items()[0].Done)
			return viewItem{}, errors.New("server error")
		})
	require.Error(t, err)

	// Pre-mutation state restored
	require.False(t, v.Items()[0].Done)
	require.Equal(t, "server error", v.Err())
}

func TestView_MutateSingleFlightPerItem(t *testing.T) {
	t.Parallel()

	items := []viewItem{{ID: "1"}, {ID: "2"}}
	v := NewView(staticLoad(items), viewItemConfig, viewItemID, 10)
	require.NoError(t, v.Reload(context.Background()))

	started := make(chan struct{})
	release := make(chan struct{})

	firstDone := make(chan error, 1)
	go func() {
		firstDone <- v.Mutate(context.Background(), viewItem{ID: "1", Done: true},
			func(context.Context) (viewItem, error) {
				close(started)
				<-release
				return viewItem{ID: "1", Done: true}, nil
			})
	}()
	<-started

	// Same item: rejected while the first mutation is in flight
	err := v.Mutate(context.Background(), viewItem{ID: "1"},
		func(context.Context) (viewItem, error) { return viewItem{ID: "1"}, nil })
	require.ErrorIs(t, err, ErrMutationInFlight)

	// Different item: allowed
	err = v.Mutate(context.Background(), viewItem{ID: "2", Done: true},
		func(context.Context) (viewItem, error) { return viewItem{ID: "2", Done: true}, nil })
	require.NoError(t, err)

	close(release)
	require.NoError(t, <-firstDone)

	// Completed mutation releases the item for the next one
	err = v.Mutate(context.Background(), viewItem{ID: "1", Done: false},
		func(context.Context) (viewItem, error) { return viewItem{ID: "1"}, nil })
	require.NoError(t, err)
}

func TestView_SearchDebounced(t *testing.T) {
	t.Parallel()

	items := []viewItem{
		{ID: "1", Title: "Write report"},
		{ID: "2", Title: "Review budget"},
	}
	v := NewView(staticLoad(items), viewItemConfig, viewItemID, 10)
	v.debounce = NewDebouncer(20 * time.Millisecond)
	require.NoError(t, v.Reload(context.Background()))

	applied := make(chan struct{})
	// Rapid keystrokes; only the final text survives the quiet interval
	v.Search("b", nil)
	v.Search("bu", nil)
	v.Search("budget", func() { close(applied) })

	require.Len(t, v.Visible(), 2)

	select {
	case <-applied:
	case <-time.After(time.Second):
		t.Fatal("debounced search never applied")
	}

	visible := v.Visible()
	require.Len(t, visible, 1)
	require.Equal(t, "Review budget", visible[0].Title)
}

func TestDebouncer_Stop(t *testing.T) {
	t.Parallel()

	d := NewDebouncer(10 * time.Millisecond)
	var fired int32
	d.Do(func() { atomic.AddInt32(&fired, 1) })
	d.Stop()

	time.Sleep(50 * time.Millisecond)
	require.Zero(t, atomic.LoadInt32(&fired))
}
