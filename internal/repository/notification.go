package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/luksdev/travels-corp/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

type NotificationRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewNotificationRepo(db *dbpg.DB) *NotificationRepository {
	return &NotificationRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *NotificationRepository) Create(ctx context.Context, n *domain.Notification) error {
	query := `INSERT INTO notifications (id, user_id, travel_request_id, destination, old_status, new_status, departure_date, return_date, message, created_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		n.ID, n.UserID, n.TravelRequestID, n.Destination,
		n.OldStatus, n.NewStatus, n.DepartureDate, n.ReturnDate,
		n.Message, time.Now().UTC(),
	)
	if err != nil {
		return fmt.Errorf("insert notification: %w", err)
	}

	return nil
}

func (r *NotificationRepository) ListByUser(ctx context.Context, userID string) ([]*domain.Notification, error) {
	query := `SELECT id, user_id, travel_request_id, destination, old_status, new_status, departure_date, return_date, message, created_at
			  FROM notifications
			  WHERE user_id = $1
			  ORDER BY created_at DESC`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, userID)
	if err != nil {
		return nil, fmt.Errorf("list notifications: %w", err)
	}
	defer rows.Close()

	var res []*domain.Notification
	for rows.Next() {
		var n domain.Notification
		if err = rows.Scan(
			&n.ID, &n.UserID, &n.TravelRequestID, &n.Destination,
			&n.OldStatus, &n.NewStatus, &n.DepartureDate, &n.ReturnDate,
			&n.Message, &n.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan notification: %w", err)
		}
		res = append(res, &n)
	}

	return res, rows.Err()
}
