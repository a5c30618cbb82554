package ports

import (
	"context"

	"github.com/luksdev/travels-corp/internal/domain"
)

type TravelRequestRepo interface {
	Create(ctx context.Context, tr *domain.TravelRequest) error
	GetByID(ctx context.Context, id string) (*domain.TravelRequest, error)
	List(ctx context.Context, filter domain.TravelRequestFilter) ([]*domain.TravelRequest, int, error)
	Update(ctx context.Context, tr *domain.TravelRequest) (*domain.TravelRequest, error)
	// UpdateStatus is a compare-and-swap: the row is updated only while its
	// status still equals from. A lost race surfaces as ErrCannotChangeStatus.
	UpdateStatus(ctx context.Context, id string, from, to domain.TravelRequestStatus) (*domain.TravelRequest, error)
	SoftDelete(ctx context.Context, id string) error
	// Stats counts by status; an empty ownerID means all rows (admin scope).
	Stats(ctx context.Context, ownerID string) (*domain.TravelRequestStats, error)
}
