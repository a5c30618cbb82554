package repository

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/luksdev/travels-corp/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(s string) *time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return &t
}

func TestBuildTravelRequestFilter_Empty(t *testing.T) {
	where, args := buildTravelRequestFilter(domain.TravelRequestFilter{})

	assert.Equal(t, "tr.deleted_at IS NULL", where)
	assert.Empty(t, args)
}

func TestBuildTravelRequestFilter_OwnerScope(t *testing.T) {
	where, args := buildTravelRequestFilter(domain.TravelRequestFilter{OwnerID: "u1"})

	assert.Equal(t, "tr.deleted_at IS NULL AND tr.user_id = $1", where)
	assert.Equal(t, []any{"u1"}, args)
}

func TestBuildTravelRequestFilter_SingleFilters(t *testing.T) {
	cases := []struct {
		name   string
		filter domain.TravelRequestFilter
		want   string
		args   []any
	}{
		{
			"status",
			domain.TravelRequestFilter{Status: domain.StatusApproved},
			"tr.deleted_at IS NULL AND tr.status = $1",
			[]any{"approved"},
		},
		{
			"destination substring",
			domain.TravelRequestFilter{Destination: "Tokyo"},
			"tr.deleted_at IS NULL AND tr.destination ILIKE $1",
			[]any{"%Tokyo%"},
		},
		{
			"departure from",
			domain.TravelRequestFilter{DepartureFrom: date("2025-12-01")},
			"tr.deleted_at IS NULL AND tr.departure_date >= $1",
			[]any{*date("2025-12-01")},
		},
		{
			"departure to",
			domain.TravelRequestFilter{DepartureTo: date("2025-12-31")},
			"tr.deleted_at IS NULL AND tr.departure_date <= $1",
			[]any{*date("2025-12-31")},
		},
		{
			"created range",
			domain.TravelRequestFilter{CreatedFrom: date("2025-01-01"), CreatedTo: date("2025-06-30")},
			"tr.deleted_at IS NULL AND tr.created_at >= $1 AND tr.created_at <= $2",
			[]any{*date("2025-01-01"), *date("2025-06-30")},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			where, args := buildTravelRequestFilter(tc.filter)
			assert.Equal(t, tc.want, where)
			assert.Equal(t, tc.args, args)
		})
	}
}

// Any subset of filters composes with AND, placeholders numbered in order.
func TestBuildTravelRequestFilter_Composed(t *testing.T) {
	where, args := buildTravelRequestFilter(domain.TravelRequestFilter{
		OwnerID:       "u1",
		Status:        domain.StatusRequested,
		Destination:   "Lisbon",
		DepartureFrom: date("2025-12-01"),
		DepartureTo:   date("2025-12-31"),
		CreatedFrom:   date("2025-01-01"),
		CreatedTo:     date("2025-06-30"),
	})

	assert.Equal(t,
		"tr.deleted_at IS NULL"+
			" AND tr.user_id = $1"+
			" AND tr.status = $2"+
			" AND tr.destination ILIKE $3"+
			" AND tr.departure_date >= $4"+
			" AND tr.departure_date <= $5"+
			" AND tr.created_at >= $6"+
			" AND tr.created_at <= $7",
		where,
	)
	assert.Len(t, args, 7)
	assert.Equal(t, "u1", args[0])
	assert.Equal(t, "requested", args[1])
	assert.Equal(t, "%Lisbon%", args[2])
}

// rowStub feeds a fixed tuple to scanTravelRequest in column order.
type rowStub struct{ vals []any }

func (r rowStub) Scan(dest ...any) error {
	if len(dest) != len(r.vals) {
		return fmt.Errorf("scan arity: want %d, got %d", len(r.vals), len(dest))
	}
	for i, v := range r.vals {
		if v == nil {
			continue
		}
		switch d := dest[i].(type) {
		case *string:
			*d = v.(string)
		case *time.Time:
			*d = v.(time.Time)
		case **time.Time:
			t := v.(time.Time)
			*d = &t
		case *domain.TravelRequestStatus:
			*d = domain.TravelRequestStatus(v.(string))
		case *domain.UserRole:
			*d = domain.UserRole(v.(string))
		case **int64:
			n := v.(int64)
			*d = &n
		default:
			return fmt.Errorf("unsupported destination %T", dest[i])
		}
	}
	return nil
}

// The owner join selects the telegram chat id so notification events can
// reach the telegram channel.
func TestScanTravelRequest_OwnerTelegramChatID(t *testing.T) {
	now := time.Now().UTC()
	vals := []any{
		"tr1", "u1", "Tokyo", now.AddDate(0, 1, 0), nil,
		"requested", now, now,
		"u1", "Alice", "alice@corp.test", "user", int64(123456789), now,
	}
	require.Len(t, vals, len(strings.Split(travelRequestColumns, ",")))

	tr, err := scanTravelRequest(rowStub{vals: vals})

	require.NoError(t, err)
	require.NotNil(t, tr.Owner)
	require.NotNil(t, tr.Owner.TelegramChatID)
	assert.Equal(t, int64(123456789), *tr.Owner.TelegramChatID)
	assert.Nil(t, tr.ReturnDate)
}

// The admin-wide query must not mention user_id at all: comparing the uuid
// column against an empty string does not plan on Postgres.
func TestBuildStatsQuery_AdminScope(t *testing.T) {
	query, args := buildStatsQuery("")

	assert.NotContains(t, query, "user_id")
	assert.NotContains(t, query, "$1")
	assert.Empty(t, args)
}

func TestBuildStatsQuery_OwnerScope(t *testing.T) {
	query, args := buildStatsQuery("u1")

	assert.Contains(t, query, "AND user_id = $1")
	assert.Equal(t, []any{"u1"}, args)
}
