package domain

import "time"

type TravelRequestStatus string

const (
	StatusRequested TravelRequestStatus = "requested"
	StatusApproved  TravelRequestStatus = "approved"
	StatusCancelled TravelRequestStatus = "cancelled"
)

// Valid reports whether s is one of the known statuses.
func (s TravelRequestStatus) Valid() bool {
	switch s {
	case StatusRequested, StatusApproved, StatusCancelled:
		return true
	}
	return false
}

// Terminal statuses admit no further transitions.
func (s TravelRequestStatus) Terminal() bool {
	return s == StatusApproved || s == StatusCancelled
}

// CanBeCancelled gates owner cancellation. Kept separate from CanChangeStatus
// even though the condition is the same: they guard different actions.
func (s TravelRequestStatus) CanBeCancelled() bool {
	return s == StatusRequested
}

// CanChangeStatus gates admin approve/cancel.
func (s TravelRequestStatus) CanChangeStatus() bool {
	return s == StatusRequested
}

// CanTransition is the single place the status transition table lives.
// requested -> approved|cancelled; approved and cancelled are terminal.
func CanTransition(from, to TravelRequestStatus) bool {
	if from != StatusRequested {
		return false
	}
	return to == StatusApproved || to == StatusCancelled
}

type TravelRequest struct {
	ID            string              `json:"id"`
	UserID        string              `json:"user_id"`
	Destination   string              `json:"destination"`
	DepartureDate time.Time           `json:"departure_date"`
	ReturnDate    *time.Time          `json:"return_date"`
	Status        TravelRequestStatus `json:"status"`
	CreatedAt     time.Time           `json:"created_at"`
	UpdatedAt     time.Time           `json:"updated_at"`
	DeletedAt     *time.Time          `json:"deleted_at,omitempty"`

	Owner *User `json:"owner,omitempty"`
}

type CreateTravelRequestInput struct {
	Destination   string
	DepartureDate time.Time
	ReturnDate    *time.Time
}

// UpdateTravelRequestInput carries a partial update; nil fields are left
// unchanged. ClearReturnDate removes the return date, which a nil ReturnDate
// alone cannot express. Only destination and dates may change, never status
// or owner.
type UpdateTravelRequestInput struct {
	Destination     *string
	DepartureDate   *time.Time
	ReturnDate      *time.Time
	ClearReturnDate bool
}

// TravelRequestFilter composes the list query. Zero values impose no
// constraint; OwnerID is set by the service for non-admin callers.
type TravelRequestFilter struct {
	OwnerID       string
	Status        TravelRequestStatus
	Destination   string
	DepartureFrom *time.Time
	DepartureTo   *time.Time
	CreatedFrom   *time.Time
	CreatedTo     *time.Time
	Page          int
	PerPage       int
}

const DefaultPerPage = 15

type TravelRequestPage struct {
	Items    []*TravelRequest
	Total    int
	Page     int
	PerPage  int
	LastPage int
}

type TravelRequestStats struct {
	Total     int `json:"total"`
	Requested int `json:"requested"`
	Approved  int `json:"approved"`
	Cancelled int `json:"cancelled"`
}
