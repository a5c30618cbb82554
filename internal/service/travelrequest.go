package service

import (
	"context"
	"errors"
	"fmt"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/luksdev/travels-corp/internal/domain"
	"github.com/luksdev/travels-corp/internal/policy"
	"github.com/luksdev/travels-corp/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

const maxDestinationLen = 255

type TravelRequestService struct {
	repo     ports.TravelRequestRepo
	notifier ports.StatusNotifier
	logger   logger.Logger
}

func NewTravelRequestService(
	repo ports.TravelRequestRepo,
	notifier ports.StatusNotifier,
	logger logger.Logger,
) *TravelRequestService {
	return &TravelRequestService{
		repo:     repo,
		notifier: notifier,
		logger:   logger,
	}
}

func (s *TravelRequestService) Create(ctx context.Context, caller *domain.User, input domain.CreateTravelRequestInput) (*domain.TravelRequest, error) {
	if !policy.CanCreate(caller) {
		return nil, domain.ErrForbidden
	}
	if err := validateDestination(input.Destination); err != nil {
		return nil, err
	}
	if err := validateDates(input.DepartureDate, input.ReturnDate); err != nil {
		return nil, err
	}

	tr := &domain.TravelRequest{
		ID:            uuid.New().String(),
		UserID:        caller.ID,
		Destination:   input.Destination,
		DepartureDate: input.DepartureDate,
		ReturnDate:    input.ReturnDate,
		Status:        domain.StatusRequested,
	}
	if err := s.repo.Create(ctx, tr); err != nil {
		return nil, fmt.Errorf("create travel request: %w", err)
	}

	s.logger.Info("travel request created",
		logger.String("travel_request_id", tr.ID),
		logger.String("user_id", caller.ID),
		logger.String("destination", tr.Destination),
	)

	return s.repo.GetByID(ctx, tr.ID)
}

func (s *TravelRequestService) Get(ctx context.Context, caller *domain.User, id string) (*domain.TravelRequest, error) {
	tr, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !policy.CanView(caller, tr) {
		return nil, domain.ErrForbidden
	}

	return tr, nil
}

func (s *TravelRequestService) List(ctx context.Context, caller *domain.User, filter domain.TravelRequestFilter) (*domain.TravelRequestPage, error) {
	if !policy.CanViewAny(caller) {
		return nil, domain.ErrForbidden
	}

	// Non-admins only ever see their own rows, whatever the filter says.
	if caller.IsAdmin() {
		filter.OwnerID = ""
	} else {
		filter.OwnerID = caller.ID
	}
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.PerPage < 1 {
		filter.PerPage = domain.DefaultPerPage
	}

	items, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list travel requests: %w", err)
	}

	lastPage := (total + filter.PerPage - 1) / filter.PerPage
	if lastPage < 1 {
		lastPage = 1
	}

	return &domain.TravelRequestPage{
		Items:    items,
		Total:    total,
		Page:     filter.Page,
		PerPage:  filter.PerPage,
		LastPage: lastPage,
	}, nil
}

// Update applies a partial edit of destination and dates onto a fresh
// snapshot and persists the merged result; status and owner never change here.
func (s *TravelRequestService) Update(ctx context.Context, caller *domain.User, id string, input domain.UpdateTravelRequestInput) (*domain.TravelRequest, error) {
	tr, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !policy.CanUpdate(caller, tr) {
		return nil, domain.ErrForbidden
	}

	merged := *tr
	if input.Destination != nil {
		merged.Destination = *input.Destination
	}
	if input.DepartureDate != nil {
		merged.DepartureDate = *input.DepartureDate
	}
	if input.ClearReturnDate {
		merged.ReturnDate = nil
	} else if input.ReturnDate != nil {
		merged.ReturnDate = input.ReturnDate
	}

	if err := validateDestination(merged.Destination); err != nil {
		return nil, err
	}
	// The departure floor only applies when the departure date itself moves;
	// the return-after-departure invariant holds for every edit.
	if input.DepartureDate != nil {
		if err := validateDeparture(merged.DepartureDate); err != nil {
			return nil, err
		}
	}
	if err := validateReturn(merged.DepartureDate, merged.ReturnDate); err != nil {
		return nil, err
	}

	updated, err := s.repo.Update(ctx, &merged)
	if err != nil {
		return nil, fmt.Errorf("update travel request: %w", err)
	}

	s.logger.Info("travel request updated",
		logger.String("travel_request_id", id),
		logger.String("user_id", caller.ID),
	)

	return updated, nil
}

func (s *TravelRequestService) UpdateStatus(ctx context.Context, caller *domain.User, id string, newStatus domain.TravelRequestStatus) (*domain.TravelRequest, error) {
	if newStatus != domain.StatusApproved && newStatus != domain.StatusCancelled {
		return nil, fmt.Errorf("%w: status must be either approved or cancelled", domain.ErrValidation)
	}

	tr, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !policy.CanChangeStatus(caller, tr) {
		return nil, domain.ErrForbidden
	}
	if !tr.Status.CanChangeStatus() {
		return nil, domain.ErrCannotChangeStatus
	}

	updated, err := s.repo.UpdateStatus(ctx, id, tr.Status, newStatus)
	if err != nil {
		return nil, err
	}

	s.logger.Info("travel request status changed",
		logger.String("travel_request_id", id),
		logger.String("old_status", string(tr.Status)),
		logger.String("new_status", string(newStatus)),
		logger.String("changed_by", caller.ID),
	)

	s.notifier.Publish(statusChangeEvent(updated, tr.Status, newStatus))

	return updated, nil
}

func (s *TravelRequestService) Cancel(ctx context.Context, caller *domain.User, id string) (*domain.TravelRequest, error) {
	tr, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !policy.CanCancel(caller, tr) {
		return nil, domain.ErrForbidden
	}
	if !tr.Status.CanBeCancelled() {
		return nil, domain.ErrCannotCancel
	}

	updated, err := s.repo.UpdateStatus(ctx, id, tr.Status, domain.StatusCancelled)
	if err != nil {
		// A racing transition shows up here as the generic status error.
		if errors.Is(err, domain.ErrCannotChangeStatus) {
			return nil, domain.ErrCannotCancel
		}
		return nil, err
	}

	s.logger.Info("travel request cancelled",
		logger.String("travel_request_id", id),
		logger.String("cancelled_by", caller.ID),
	)

	s.notifier.Publish(statusChangeEvent(updated, tr.Status, domain.StatusCancelled))

	return updated, nil
}

func (s *TravelRequestService) Delete(ctx context.Context, caller *domain.User, id string) error {
	tr, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if !policy.CanDelete(caller, tr) {
		return domain.ErrForbidden
	}

	if err := s.repo.SoftDelete(ctx, id); err != nil {
		return fmt.Errorf("delete travel request: %w", err)
	}

	s.logger.Info("travel request deleted",
		logger.String("travel_request_id", id),
		logger.String("user_id", caller.ID),
	)

	return nil
}

func (s *TravelRequestService) Stats(ctx context.Context, caller *domain.User) (*domain.TravelRequestStats, error) {
	ownerID := caller.ID
	if caller.IsAdmin() {
		ownerID = ""
	}

	return s.repo.Stats(ctx, ownerID)
}

func statusChangeEvent(tr *domain.TravelRequest, oldStatus, newStatus domain.TravelRequestStatus) domain.StatusChangeEvent {
	event := domain.StatusChangeEvent{
		TravelRequestID: tr.ID,
		Destination:     tr.Destination,
		OldStatus:       oldStatus,
		NewStatus:       newStatus,
		DepartureDate:   tr.DepartureDate,
		ReturnDate:      tr.ReturnDate,
	}
	if tr.Owner != nil {
		event.Recipient = domain.Recipient{
			UserID:         tr.Owner.ID,
			Name:           tr.Owner.Name,
			Email:          tr.Owner.Email,
			TelegramChatID: tr.Owner.TelegramChatID,
		}
	} else {
		event.Recipient = domain.Recipient{UserID: tr.UserID}
	}

	return event
}

func validateDestination(destination string) error {
	if destination == "" {
		return fmt.Errorf("%w: destination is required", domain.ErrValidation)
	}
	if utf8.RuneCountInString(destination) > maxDestinationLen {
		return fmt.Errorf("%w: destination may not be greater than %d characters", domain.ErrValidation, maxDestinationLen)
	}

	return nil
}

func validateDates(departure time.Time, ret *time.Time) error {
	if err := validateDeparture(departure); err != nil {
		return err
	}

	return validateReturn(departure, ret)
}

func validateDeparture(departure time.Time) error {
	today := time.Now().UTC().Truncate(24 * time.Hour)
	if departure.Before(today) {
		return fmt.Errorf("%w: departure_date must be today or later", domain.ErrValidation)
	}

	return nil
}

func validateReturn(departure time.Time, ret *time.Time) error {
	if ret != nil && !ret.After(departure) {
		return fmt.Errorf("%w: return_date must be after departure_date", domain.ErrValidation)
	}

	return nil
}
