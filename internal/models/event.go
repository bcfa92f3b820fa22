package models

import "time"

// RSVPStatus represents an employee's response to an event invitation
type RSVPStatus string

const (
	RSVPPending  RSVPStatus = "pending"
	RSVPAccepted RSVPStatus = "accepted"
	RSVPDeclined RSVPStatus = "declined"
)

// ValidRSVPStatus reports whether s is a known RSVP status
func ValidRSVPStatus(s RSVPStatus) bool {
	switch s {
	case RSVPPending, RSVPAccepted, RSVPDeclined:
		return true
	}
	return false
}

// Event represents a company event employees can RSVP to
type Event struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Location    string    `json:"location,omitempty"`
	StartsAt    time.Time `json:"starts_at"`
	Archived    bool      `json:"archived"`
	CreatedBy   int64     `json:"created_by"`
	CreatedAt   time.Time `json:"created_at"`
}

// EventWithRSVP is an event annotated with the caller's RSVP status
type EventWithRSVP struct {
	Event
	RSVP RSVPStatus `json:"rsvp"`
}

// CreateEventRequest represents the request body for creating an event
type CreateEventRequest struct {
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Location    string    `json:"location"`
	StartsAt    time.Time `json:"starts_at"`
}

// RSVPRequest represents the request body for an RSVP update
type RSVPRequest struct {
	Status RSVPStatus `json:"status"`
}
