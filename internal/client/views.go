package client

import (
	"context"
	"strconv"

	"pulse-backend/internal/listview"
	"pulse-backend/internal/models"
)

// Per-resource view constructors. Each one binds a list endpoint to the
// resource's filter-tag enum, search field, and default-visibility policy.

// NewTaskView shows the session employee's tasks.
// Tags: All | Completed | Incomplete | Archived; searched by title.
func NewTaskView(c *Client, pageSize int) *View[*models.Task] {
	cfg := listview.Config[*models.Task]{
		SearchText: func(t *models.Task) string { return t.Title },
		Hidden:     func(t *models.Task) bool { return t.Status == models.TaskArchived },
		Tags: map[string]func(*models.Task) bool{
			"Completed":  func(t *models.Task) bool { return t.Status == models.TaskCompleted },
			"Incomplete": func(t *models.Task) bool { return t.Status == models.TaskIncomplete },
			"Archived":   func(t *models.Task) bool { return t.Status == models.TaskArchived },
		},
		HiddenTags: []string{"Archived"},
	}
	load := func(ctx context.Context) ([]*models.Task, error) {
		return Load[*models.Task](ctx, c, "/api/tasks")
	}
	return NewView(load, cfg, func(t *models.Task) string { return strconv.FormatInt(t.ID, 10) }, pageSize)
}

// NewEventView shows events with the caller's RSVP.
// Tags: All | Accepted | Declined; searched by title.
func NewEventView(c *Client, pageSize int) *View[*models.EventWithRSVP] {
	cfg := listview.Config[*models.EventWithRSVP]{
		SearchText: func(e *models.EventWithRSVP) string { return e.Title },
		Hidden:     func(e *models.EventWithRSVP) bool { return e.Archived },
		Tags: map[string]func(*models.EventWithRSVP) bool{
			"Accepted": func(e *models.EventWithRSVP) bool { return e.RSVP == models.RSVPAccepted },
			"Declined": func(e *models.EventWithRSVP) bool { return e.RSVP == models.RSVPDeclined },
		},
	}
	load := func(ctx context.Context) ([]*models.EventWithRSVP, error) {
		return Load[*models.EventWithRSVP](ctx, c, "/api/events")
	}
	return NewView(load, cfg, func(e *models.EventWithRSVP) string { return strconv.FormatInt(e.ID, 10) }, pageSize)
}

// NewPostView shows the social feed.
// Tags: All | Visible | Hidden; searched by title.
func NewPostView(c *Client, pageSize int) *View[*models.Post] {
	cfg := listview.Config[*models.Post]{
		SearchText: func(p *models.Post) string { return p.Title },
		Hidden:     func(p *models.Post) bool { return p.Hidden },
		Tags: map[string]func(*models.Post) bool{
			"Visible": func(p *models.Post) bool { return !p.Hidden },
			"Hidden":  func(p *models.Post) bool { return p.Hidden },
		},
		HiddenTags: []string{"Hidden"},
	}
	load := func(ctx context.Context) ([]*models.Post, error) {
		return Load[*models.Post](ctx, c, "/api/posts")
	}
	return NewView(load, cfg, func(p *models.Post) string { return p.ID }, pageSize)
}

// NewBadgeView shows the badge catalog.
// Tags: All | Archived; searched by name.
func NewBadgeView(c *Client, pageSize int) *View[*models.Badge] {
	cfg := listview.Config[*models.Badge]{
		SearchText: func(b *models.Badge) string { return b.Name },
		Hidden:     func(b *models.Badge) bool { return b.Archived },
		Tags: map[string]func(*models.Badge) bool{
			"Archived": func(b *models.Badge) bool { return b.Archived },
		},
		HiddenTags: []string{"Archived"},
	}
	load := func(ctx context.Context) ([]*models.Badge, error) {
		return Load[*models.Badge](ctx, c, "/api/badges")
	}
	return NewView(load, cfg, func(b *models.Badge) string { return b.ID }, pageSize)
}

// NewMilestoneView shows the session employee's milestones.
// Tags: All | Visible | Hidden; searched by title.
func NewMilestoneView(c *Client, pageSize int) *View[*models.Milestone] {
	cfg := listview.Config[*models.Milestone]{
		SearchText: func(m *models.Milestone) string { return m.Title },
		Hidden:     func(m *models.Milestone) bool { return m.Hidden },
		Tags: map[string]func(*models.Milestone) bool{
			"Visible": func(m *models.Milestone) bool { return !m.Hidden },
			"Hidden":  func(m *models.Milestone) bool { return m.Hidden },
		},
		HiddenTags: []string{"Hidden"},
	}
	load := func(ctx context.Context) ([]*models.Milestone, error) {
		return Load[*models.Milestone](ctx, c, "/api/milestones")
	}
	return NewView(load, cfg, func(m *models.Milestone) string { return strconv.FormatInt(m.ID, 10) }, pageSize)
}

// NewNotificationView shows the session employee's notifications.
// Tags: All | Unread; searched by message.
func NewNotificationView(c *Client, pageSize int) *View[*models.Notification] {
	cfg := listview.Config[*models.Notification]{
		SearchText: func(n *models.Notification) string { return n.Message },
		Tags: map[string]func(*models.Notification) bool{
			"Unread": func(n *models.Notification) bool { return !n.Read },
		},
	}
	load := func(ctx context.Context) ([]*models.Notification, error) {
		return Load[*models.Notification](ctx, c, "/api/notifications")
	}
	return NewView(load, cfg, func(n *models.Notification) string { return strconv.FormatInt(n.ID, 10) }, pageSize)
}
