package dto

import (
	"time"

	"github.com/luksdev/travels-corp/internal/domain"
)

// Response is the single-resource envelope.
type Response struct {
	Data    any    `json:"data"`
	Message string `json:"message,omitempty"`
}

// ListResponse is the collection envelope.
type ListResponse struct {
	Data any  `json:"data"`
	Meta Meta `json:"meta"`
}

type Meta struct {
	Total       int `json:"total"`
	CurrentPage int `json:"current_page"`
	LastPage    int `json:"last_page"`
	PerPage     int `json:"per_page"`
}

type ErrorResponse struct {
	Message string `json:"message"`
}

type ValidationErrorResponse struct {
	Message string              `json:"message"`
	Errors  map[string][]string `json:"errors"`
}

type UserResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Role      string `json:"role"`
	CreatedAt string `json:"created_at"`
}

type AuthResponse struct {
	Message     string       `json:"message"`
	User        UserResponse `json:"user"`
	AccessToken string       `json:"access_token"`
	TokenType   string       `json:"token_type"`
	ExpiresIn   int64        `json:"expires_in"`
}

type TravelRequestResponse struct {
	ID            string        `json:"id"`
	UserID        string        `json:"user_id"`
	Destination   string        `json:"destination"`
	DepartureDate string        `json:"departure_date"`
	ReturnDate    *string       `json:"return_date"`
	Status        string        `json:"status"`
	CreatedAt     string        `json:"created_at"`
	UpdatedAt     string        `json:"updated_at"`
	Owner         *UserResponse `json:"owner,omitempty"`
}

type NotificationResponse struct {
	ID              string  `json:"id"`
	TravelRequestID string  `json:"travel_request_id"`
	Destination     string  `json:"destination"`
	OldStatus       string  `json:"old_status"`
	NewStatus       string  `json:"new_status"`
	DepartureDate   string  `json:"departure_date"`
	ReturnDate      *string `json:"return_date"`
	Message         string  `json:"message"`
	CreatedAt       string  `json:"created_at"`
}

func ToUserResponse(u *domain.User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Role:      string(u.Role),
		CreatedAt: u.CreatedAt.Format(time.RFC3339),
	}
}

func ToAuthResponse(message string, res *domain.AuthResult) AuthResponse {
	return AuthResponse{
		Message:     message,
		User:        ToUserResponse(res.User),
		AccessToken: res.AccessToken,
		TokenType:   "bearer",
		ExpiresIn:   res.ExpiresIn,
	}
}

func ToTravelRequestResponse(tr *domain.TravelRequest) TravelRequestResponse {
	resp := TravelRequestResponse{
		ID:            tr.ID,
		UserID:        tr.UserID,
		Destination:   tr.Destination,
		DepartureDate: tr.DepartureDate.Format(DateLayout),
		ReturnDate:    formatDate(tr.ReturnDate),
		Status:        string(tr.Status),
		CreatedAt:     tr.CreatedAt.Format(time.RFC3339),
		UpdatedAt:     tr.UpdatedAt.Format(time.RFC3339),
	}
	if tr.Owner != nil {
		owner := ToUserResponse(tr.Owner)
		resp.Owner = &owner
	}

	return resp
}

func ToTravelRequestListResponse(page *domain.TravelRequestPage) ListResponse {
	items := make([]TravelRequestResponse, 0, len(page.Items))
	for _, tr := range page.Items {
		items = append(items, ToTravelRequestResponse(tr))
	}

	return ListResponse{
		Data: items,
		Meta: Meta{
			Total:       page.Total,
			CurrentPage: page.Page,
			LastPage:    page.LastPage,
			PerPage:     page.PerPage,
		},
	}
}

func ToNotificationResponse(n *domain.Notification) NotificationResponse {
	return NotificationResponse{
		ID:              n.ID,
		TravelRequestID: n.TravelRequestID,
		Destination:     n.Destination,
		OldStatus:       string(n.OldStatus),
		NewStatus:       string(n.NewStatus),
		DepartureDate:   n.DepartureDate.Format(DateLayout),
		ReturnDate:      formatDate(n.ReturnDate),
		Message:         n.Message,
		CreatedAt:       n.CreatedAt.Format(time.RFC3339),
	}
}

func formatDate(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(DateLayout)
	return &s
}
