package domain

import "time"

// StatusChangeEvent is published after a successful status transition and
// consumed by the notification dispatcher. It carries everything delivery
// needs so the worker never goes back to the database for the request.
type StatusChangeEvent struct {
	TravelRequestID string
	Destination     string
	OldStatus       TravelRequestStatus
	NewStatus       TravelRequestStatus
	DepartureDate   time.Time
	ReturnDate      *time.Time
	Recipient       Recipient
}

// Recipient is a snapshot of the owner at transition time.
type Recipient struct {
	UserID         string
	Name           string
	Email          string
	TelegramChatID *int64
}

// Notification is the persisted (database channel) form of a status change.
type Notification struct {
	ID              string              `json:"id"`
	UserID          string              `json:"user_id"`
	TravelRequestID string              `json:"travel_request_id"`
	Destination     string              `json:"destination"`
	OldStatus       TravelRequestStatus `json:"old_status"`
	NewStatus       TravelRequestStatus `json:"new_status"`
	DepartureDate   time.Time           `json:"departure_date"`
	ReturnDate      *time.Time          `json:"return_date"`
	Message         string              `json:"message"`
	CreatedAt       time.Time           `json:"created_at"`
}
