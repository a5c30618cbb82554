package dto

import (
	"encoding/json"
	"time"
)

const DateLayout = "2006-01-02"

// NullableDate distinguishes an absent key from an explicit null. Set is true
// whenever the key appeared in the body; Value stays nil for a null.
type NullableDate struct {
	Set   bool
	Value *string
}

func (d *NullableDate) UnmarshalJSON(data []byte) error {
	d.Set = true
	if string(data) == "null" {
		d.Value = nil
		return nil
	}
	return json.Unmarshal(data, &d.Value)
}

type RegisterRequest struct {
	Name           string `json:"name" binding:"required,max=255"`
	Email          string `json:"email" binding:"required,email,max=255"`
	Password       string `json:"password" binding:"required,min=8"`
	TelegramChatID *int64 `json:"telegram_chat_id"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type CreateTravelRequestRequest struct {
	Destination   string  `json:"destination" binding:"required,max=255"`
	DepartureDate string  `json:"departure_date" binding:"required"`
	ReturnDate    *string `json:"return_date"`
}

type UpdateTravelRequestRequest struct {
	Destination   *string      `json:"destination" binding:"omitempty,min=1,max=255"`
	DepartureDate *string      `json:"departure_date"`
	ReturnDate    NullableDate `json:"return_date"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=approved cancelled"`
}

// ParseDate parses the wire date format (YYYY-MM-DD).
func ParseDate(s string) (time.Time, error) {
	return time.Parse(DateLayout, s)
}
