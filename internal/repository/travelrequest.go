package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/luksdev/travels-corp/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

type TravelRequestRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewTravelRequestRepo(db *dbpg.DB) *TravelRequestRepository {
	return &TravelRequestRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

const travelRequestColumns = `tr.id, tr.user_id, tr.destination, tr.departure_date, tr.return_date,
			 tr.status, tr.created_at, tr.updated_at,
			 u.id, u.name, u.email, u.role, u.telegram_chat_id, u.created_at`

func scanTravelRequest(row interface{ Scan(...any) error }) (*domain.TravelRequest, error) {
	var tr domain.TravelRequest
	var owner domain.User
	if err := row.Scan(
		&tr.ID, &tr.UserID, &tr.Destination, &tr.DepartureDate, &tr.ReturnDate,
		&tr.Status, &tr.CreatedAt, &tr.UpdatedAt,
		&owner.ID, &owner.Name, &owner.Email, &owner.Role, &owner.TelegramChatID, &owner.CreatedAt,
	); err != nil {
		return nil, err
	}
	tr.Owner = &owner
	return &tr, nil
}

func (r *TravelRequestRepository) Create(ctx context.Context, tr *domain.TravelRequest) error {
	query := `INSERT INTO travel_requests (id, user_id, destination, departure_date, return_date, status, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	now := time.Now().UTC()
	_, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		tr.ID, tr.UserID, tr.Destination, tr.DepartureDate, tr.ReturnDate,
		tr.Status, now, now,
	)
	if err != nil {
		return fmt.Errorf("insert travel request: %w", err)
	}

	return nil
}

func (r *TravelRequestRepository) GetByID(ctx context.Context, id string) (*domain.TravelRequest, error) {
	query := `SELECT ` + travelRequestColumns + `
			  FROM travel_requests tr
			  JOIN users u ON u.id = tr.user_id
			  WHERE tr.id = $1 AND tr.deleted_at IS NULL`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get travel request: %w", err)
	}

	tr, err := scanTravelRequest(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrTravelRequestNotFound
		}
		return nil, fmt.Errorf("scan travel request: %w", err)
	}

	return tr, nil
}

// buildTravelRequestFilter composes the WHERE clause for list queries. Any
// subset of filters may be combined; omitted filters impose no constraint.
// Soft-deleted rows are always excluded.
func buildTravelRequestFilter(f domain.TravelRequestFilter) (string, []any) {
	conds := []string{"tr.deleted_at IS NULL"}
	var args []any
	arg := func(v any) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	if f.OwnerID != "" {
		conds = append(conds, "tr.user_id = "+arg(f.OwnerID))
	}
	if f.Status != "" {
		conds = append(conds, "tr.status = "+arg(string(f.Status)))
	}
	if f.Destination != "" {
		conds = append(conds, "tr.destination ILIKE "+arg("%"+f.Destination+"%"))
	}
	if f.DepartureFrom != nil {
		conds = append(conds, "tr.departure_date >= "+arg(*f.DepartureFrom))
	}
	if f.DepartureTo != nil {
		conds = append(conds, "tr.departure_date <= "+arg(*f.DepartureTo))
	}
	if f.CreatedFrom != nil {
		conds = append(conds, "tr.created_at >= "+arg(*f.CreatedFrom))
	}
	if f.CreatedTo != nil {
		conds = append(conds, "tr.created_at <= "+arg(*f.CreatedTo))
	}

	return strings.Join(conds, " AND "), args
}

func (r *TravelRequestRepository) List(ctx context.Context, filter domain.TravelRequestFilter) ([]*domain.TravelRequest, int, error) {
	where, args := buildTravelRequestFilter(filter)

	countQuery := `SELECT COUNT(*) FROM travel_requests tr WHERE ` + where
	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, countQuery, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("count travel requests: %w", err)
	}
	var total int
	if err = row.Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("scan count: %w", err)
	}

	limitArgs := append(args, filter.PerPage, (filter.Page-1)*filter.PerPage)
	query := `SELECT ` + travelRequestColumns + `
			  FROM travel_requests tr
			  JOIN users u ON u.id = tr.user_id
			  WHERE ` + where + `
			  ORDER BY tr.created_at DESC
			  LIMIT $` + fmt.Sprint(len(args)+1) + ` OFFSET $` + fmt.Sprint(len(args)+2)

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, limitArgs...)
	if err != nil {
		return nil, 0, fmt.Errorf("list travel requests: %w", err)
	}
	defer rows.Close()

	var res []*domain.TravelRequest
	for rows.Next() {
		tr, err := scanTravelRequest(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan travel request: %w", err)
		}
		res = append(res, tr)
	}

	return res, total, rows.Err()
}

func (r *TravelRequestRepository) Update(ctx context.Context, tr *domain.TravelRequest) (*domain.TravelRequest, error) {
	query := `UPDATE travel_requests
			  SET destination = $2, departure_date = $3, return_date = $4, updated_at = now()
			  WHERE id = $1 AND deleted_at IS NULL`
	res, err := r.db.ExecWithRetry(ctx, r.strategy, query, tr.ID, tr.Destination, tr.DepartureDate, tr.ReturnDate)
	if err != nil {
		return nil, fmt.Errorf("update travel request: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("update rows affected: %w", err)
	}
	if rows == 0 {
		return nil, domain.ErrTravelRequestNotFound
	}

	return r.GetByID(ctx, tr.ID)
}

// UpdateStatus performs the transition as a compare-and-swap so two racing
// callers cannot both move the same request out of requested.
func (r *TravelRequestRepository) UpdateStatus(ctx context.Context, id string, from, to domain.TravelRequestStatus) (*domain.TravelRequest, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	query := `UPDATE travel_requests
			  SET status = $3, updated_at = now()
			  WHERE id = $1 AND status = $2 AND deleted_at IS NULL`
	res, err := tx.ExecContext(ctx, query, id, from, to)
	if err != nil {
		return nil, fmt.Errorf("update status: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("status rows affected: %w", err)
	}
	if rows == 0 {
		// Determine why: the request is gone, or its status moved under us.
		var current string
		checkQuery := `SELECT status FROM travel_requests WHERE id = $1 AND deleted_at IS NULL`
		if scanErr := tx.QueryRowContext(ctx, checkQuery, id).Scan(&current); scanErr != nil {
			return nil, domain.ErrTravelRequestNotFound
		}
		return nil, domain.ErrCannotChangeStatus
	}

	if err = tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit: %w", err)
	}

	return r.GetByID(ctx, id)
}

func (r *TravelRequestRepository) SoftDelete(ctx context.Context, id string) error {
	query := `UPDATE travel_requests
			  SET deleted_at = now(), updated_at = now()
			  WHERE id = $1 AND deleted_at IS NULL`
	res, err := r.db.ExecWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return fmt.Errorf("soft delete travel request: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete rows affected: %w", err)
	}
	if rows == 0 {
		return domain.ErrTravelRequestNotFound
	}

	return nil
}

// buildStatsQuery scopes the counts to one owner when ownerID is set. The
// owner clause is appended conditionally so the uuid column is never compared
// against an empty string.
func buildStatsQuery(ownerID string) (string, []any) {
	query := `SELECT COUNT(*),
					 COUNT(*) FILTER (WHERE status = 'requested'),
					 COUNT(*) FILTER (WHERE status = 'approved'),
					 COUNT(*) FILTER (WHERE status = 'cancelled')
			  FROM travel_requests
			  WHERE deleted_at IS NULL`

	var args []any
	if ownerID != "" {
		query += ` AND user_id = $1`
		args = append(args, ownerID)
	}

	return query, args
}

func (r *TravelRequestRepository) Stats(ctx context.Context, ownerID string) (*domain.TravelRequestStats, error) {
	query, args := buildStatsQuery(ownerID)

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, args...)
	if err != nil {
		return nil, fmt.Errorf("get stats: %w", err)
	}

	var s domain.TravelRequestStats
	if err = row.Scan(&s.Total, &s.Requested, &s.Approved, &s.Cancelled); err != nil {
		return nil, fmt.Errorf("scan stats: %w", err)
	}

	return &s, nil
}
