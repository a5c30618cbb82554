package service

import (
	"context"
	"testing"
	"time"

	"github.com/luksdev/travels-corp/internal/domain"
	"github.com/luksdev/travels-corp/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/logger"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

func newTravelRequestService(t *testing.T) (*TravelRequestService, *mocks.MockTravelRequestRepo, *mocks.MockStatusNotifier) {
	t.Helper()
	repo := mocks.NewMockTravelRequestRepo(t)
	notifier := mocks.NewMockStatusNotifier(t)
	svc := NewTravelRequestService(repo, notifier, newTestLogger(t))
	return svc, repo, notifier
}

func futureDate(months int) time.Time {
	return time.Now().UTC().AddDate(0, months, 0).Truncate(24 * time.Hour)
}

var (
	employee = &domain.User{ID: "u1", Name: "Alice", Email: "alice@corp.test", Role: domain.RoleUser}
	stranger = &domain.User{ID: "u2", Name: "Bob", Email: "bob@corp.test", Role: domain.RoleUser}
	admin    = &domain.User{ID: "a1", Name: "Root", Email: "root@corp.test", Role: domain.RoleAdmin}
)

func TestTravelRequestService_Create(t *testing.T) {
	svc, repo, _ := newTravelRequestService(t)

	departure := futureDate(1)
	ret := departure.AddDate(0, 0, 14)

	var createdID string
	repo.EXPECT().Create(mock.Anything, mock.Anything).Run(func(_ context.Context, tr *domain.TravelRequest) {
		createdID = tr.ID
		assert.Equal(t, "u1", tr.UserID)
		assert.Equal(t, domain.StatusRequested, tr.Status)
	}).Return(nil)
	repo.EXPECT().GetByID(mock.Anything, mock.Anything).RunAndReturn(func(_ context.Context, id string) (*domain.TravelRequest, error) {
		return &domain.TravelRequest{
			ID:            id,
			UserID:        "u1",
			Destination:   "Tokyo",
			DepartureDate: departure,
			ReturnDate:    &ret,
			Status:        domain.StatusRequested,
			Owner:         employee,
		}, nil
	})

	tr, err := svc.Create(context.Background(), employee, domain.CreateTravelRequestInput{
		Destination:   "Tokyo",
		DepartureDate: departure,
		ReturnDate:    &ret,
	})

	require.NoError(t, err)
	assert.Equal(t, createdID, tr.ID)
	assert.Equal(t, domain.StatusRequested, tr.Status)
	assert.Equal(t, "u1", tr.UserID)
}

func TestTravelRequestService_Create_Validation(t *testing.T) {
	tests := []struct {
		name  string
		input domain.CreateTravelRequestInput
	}{
		{
			name:  "empty destination",
			input: domain.CreateTravelRequestInput{DepartureDate: futureDate(1)},
		},
		{
			name: "departure in the past",
			input: domain.CreateTravelRequestInput{
				Destination:   "Tokyo",
				DepartureDate: time.Now().UTC().AddDate(0, 0, -2),
			},
		},
		{
			name: "return before departure",
			input: domain.CreateTravelRequestInput{
				Destination:   "Tokyo",
				DepartureDate: futureDate(2),
				ReturnDate:    ptrTime(futureDate(1)),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _, _ := newTravelRequestService(t)

			_, err := svc.Create(context.Background(), employee, tt.input)

			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrValidation)
		})
	}
}

func TestTravelRequestService_Get_OwnerAndAdmin(t *testing.T) {
	svc, repo, _ := newTravelRequestService(t)

	tr := &domain.TravelRequest{ID: "tr1", UserID: "u1", Status: domain.StatusRequested}
	repo.EXPECT().GetByID(mock.Anything, "tr1").Return(tr, nil).Twice()

	got, err := svc.Get(context.Background(), employee, "tr1")
	require.NoError(t, err)
	assert.Equal(t, tr, got)

	got, err = svc.Get(context.Background(), admin, "tr1")
	require.NoError(t, err)
	assert.Equal(t, tr, got)
}

func TestTravelRequestService_Get_ForbiddenForStranger(t *testing.T) {
	svc, repo, _ := newTravelRequestService(t)

	tr := &domain.TravelRequest{ID: "tr1", UserID: "u1", Status: domain.StatusRequested}
	repo.EXPECT().GetByID(mock.Anything, "tr1").Return(tr, nil)

	_, err := svc.Get(context.Background(), stranger, "tr1")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestTravelRequestService_Get_NotFound(t *testing.T) {
	svc, repo, _ := newTravelRequestService(t)

	repo.EXPECT().GetByID(mock.Anything, "missing").Return(nil, domain.ErrTravelRequestNotFound)

	_, err := svc.Get(context.Background(), employee, "missing")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrTravelRequestNotFound)
}

func TestTravelRequestService_List_ScopesNonAdminToOwnRows(t *testing.T) {
	svc, repo, _ := newTravelRequestService(t)

	repo.EXPECT().List(mock.Anything, mock.Anything).Run(func(_ context.Context, filter domain.TravelRequestFilter) {
		assert.Equal(t, "u1", filter.OwnerID)
	}).Return([]*domain.TravelRequest{}, 0, nil)

	page, err := svc.List(context.Background(), employee, domain.TravelRequestFilter{OwnerID: "someone-else"})

	require.NoError(t, err)
	assert.Equal(t, 0, page.Total)
	assert.Equal(t, 1, page.Page)
	assert.Equal(t, 1, page.LastPage)
	assert.Equal(t, domain.DefaultPerPage, page.PerPage)
}

func TestTravelRequestService_List_AdminSeesEverything(t *testing.T) {
	svc, repo, _ := newTravelRequestService(t)

	items := []*domain.TravelRequest{
		{ID: "tr1", UserID: "u1"},
		{ID: "tr2", UserID: "u2"},
	}
	repo.EXPECT().List(mock.Anything, mock.Anything).Run(func(_ context.Context, filter domain.TravelRequestFilter) {
		assert.Empty(t, filter.OwnerID)
	}).Return(items, 32, nil)

	page, err := svc.List(context.Background(), admin, domain.TravelRequestFilter{Page: 2, PerPage: 15})

	require.NoError(t, err)
	assert.Equal(t, 32, page.Total)
	assert.Equal(t, 2, page.Page)
	assert.Equal(t, 3, page.LastPage)
	assert.Len(t, page.Items, 2)
}

func TestTravelRequestService_Update_MergesPartialInput(t *testing.T) {
	svc, repo, _ := newTravelRequestService(t)

	departure := futureDate(1)
	tr := &domain.TravelRequest{
		ID:            "tr1",
		UserID:        "u1",
		Destination:   "Tokyo",
		DepartureDate: departure,
		Status:        domain.StatusRequested,
	}
	repo.EXPECT().GetByID(mock.Anything, "tr1").Return(tr, nil)
	repo.EXPECT().Update(mock.Anything, mock.Anything).RunAndReturn(func(_ context.Context, merged *domain.TravelRequest) (*domain.TravelRequest, error) {
		assert.Equal(t, "Osaka", merged.Destination)
		assert.Equal(t, departure, merged.DepartureDate)
		return merged, nil
	})

	dest := "Osaka"
	updated, err := svc.Update(context.Background(), employee, "tr1", domain.UpdateTravelRequestInput{Destination: &dest})

	require.NoError(t, err)
	assert.Equal(t, "Osaka", updated.Destination)
}

func TestTravelRequestService_Update_ClearsReturnDate(t *testing.T) {
	svc, repo, _ := newTravelRequestService(t)

	departure := futureDate(1)
	ret := departure.AddDate(0, 0, 7)
	tr := &domain.TravelRequest{
		ID:            "tr1",
		UserID:        "u1",
		Destination:   "Tokyo",
		DepartureDate: departure,
		ReturnDate:    &ret,
		Status:        domain.StatusRequested,
	}
	repo.EXPECT().GetByID(mock.Anything, "tr1").Return(tr, nil)
	repo.EXPECT().Update(mock.Anything, mock.Anything).RunAndReturn(func(_ context.Context, merged *domain.TravelRequest) (*domain.TravelRequest, error) {
		assert.Nil(t, merged.ReturnDate)
		return merged, nil
	})

	updated, err := svc.Update(context.Background(), employee, "tr1", domain.UpdateTravelRequestInput{ClearReturnDate: true})

	require.NoError(t, err)
	assert.Nil(t, updated.ReturnDate)
}

func TestTravelRequestService_Update_ForbiddenOnceApproved(t *testing.T) {
	svc, repo, _ := newTravelRequestService(t)

	tr := &domain.TravelRequest{ID: "tr1", UserID: "u1", Status: domain.StatusApproved}
	repo.EXPECT().GetByID(mock.Anything, "tr1").Return(tr, nil)

	dest := "Osaka"
	_, err := svc.Update(context.Background(), employee, "tr1", domain.UpdateTravelRequestInput{Destination: &dest})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestTravelRequestService_Update_ForbiddenForNonOwner(t *testing.T) {
	svc, repo, _ := newTravelRequestService(t)

	tr := &domain.TravelRequest{ID: "tr1", UserID: "u1", Status: domain.StatusRequested}
	repo.EXPECT().GetByID(mock.Anything, "tr1").Return(tr, nil)

	dest := "Osaka"
	_, err := svc.Update(context.Background(), stranger, "tr1", domain.UpdateTravelRequestInput{Destination: &dest})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestTravelRequestService_UpdateStatus_AdminApproves(t *testing.T) {
	svc, repo, notifier := newTravelRequestService(t)

	departure := futureDate(1)
	tr := &domain.TravelRequest{
		ID:            "tr1",
		UserID:        "u1",
		Destination:   "Tokyo",
		DepartureDate: departure,
		Status:        domain.StatusRequested,
		Owner:         employee,
	}
	approved := *tr
	approved.Status = domain.StatusApproved

	repo.EXPECT().GetByID(mock.Anything, "tr1").Return(tr, nil)
	repo.EXPECT().UpdateStatus(mock.Anything, "tr1", domain.StatusRequested, domain.StatusApproved).Return(&approved, nil)
	notifier.EXPECT().Publish(mock.Anything).Run(func(event domain.StatusChangeEvent) {
		assert.Equal(t, "tr1", event.TravelRequestID)
		assert.Equal(t, domain.StatusRequested, event.OldStatus)
		assert.Equal(t, domain.StatusApproved, event.NewStatus)
		assert.Equal(t, "u1", event.Recipient.UserID)
		assert.Equal(t, "alice@corp.test", event.Recipient.Email)
	}).Return()

	updated, err := svc.UpdateStatus(context.Background(), admin, "tr1", domain.StatusApproved)

	require.NoError(t, err)
	assert.Equal(t, domain.StatusApproved, updated.Status)
}

func TestTravelRequestService_UpdateStatus_EventCarriesTelegramChatID(t *testing.T) {
	svc, repo, notifier := newTravelRequestService(t)

	chatID := int64(987654321)
	owner := &domain.User{ID: "u1", Name: "Alice", Email: "alice@corp.test", Role: domain.RoleUser, TelegramChatID: &chatID}
	tr := &domain.TravelRequest{
		ID:            "tr1",
		UserID:        "u1",
		Destination:   "Tokyo",
		DepartureDate: futureDate(1),
		Status:        domain.StatusRequested,
		Owner:         owner,
	}
	approved := *tr
	approved.Status = domain.StatusApproved

	repo.EXPECT().GetByID(mock.Anything, "tr1").Return(tr, nil)
	repo.EXPECT().UpdateStatus(mock.Anything, "tr1", domain.StatusRequested, domain.StatusApproved).Return(&approved, nil)
	notifier.EXPECT().Publish(mock.Anything).Run(func(event domain.StatusChangeEvent) {
		require.NotNil(t, event.Recipient.TelegramChatID)
		assert.Equal(t, chatID, *event.Recipient.TelegramChatID)
	}).Return()

	_, err := svc.UpdateStatus(context.Background(), admin, "tr1", domain.StatusApproved)

	require.NoError(t, err)
}

func TestTravelRequestService_UpdateStatus_ForbiddenForNonAdmin(t *testing.T) {
	svc, repo, _ := newTravelRequestService(t)

	tr := &domain.TravelRequest{ID: "tr1", UserID: "u1", Status: domain.StatusRequested}
	repo.EXPECT().GetByID(mock.Anything, "tr1").Return(tr, nil)

	_, err := svc.UpdateStatus(context.Background(), employee, "tr1", domain.StatusApproved)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestTravelRequestService_UpdateStatus_RejectsRequestedTarget(t *testing.T) {
	svc, _, _ := newTravelRequestService(t)

	_, err := svc.UpdateStatus(context.Background(), admin, "tr1", domain.StatusRequested)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestTravelRequestService_UpdateStatus_TerminalState(t *testing.T) {
	svc, repo, _ := newTravelRequestService(t)

	tr := &domain.TravelRequest{ID: "tr1", UserID: "u1", Status: domain.StatusCancelled}
	repo.EXPECT().GetByID(mock.Anything, "tr1").Return(tr, nil)

	_, err := svc.UpdateStatus(context.Background(), admin, "tr1", domain.StatusApproved)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrCannotChangeStatus)
}

func TestTravelRequestService_Cancel_Owner(t *testing.T) {
	svc, repo, notifier := newTravelRequestService(t)

	tr := &domain.TravelRequest{
		ID:     "tr1",
		UserID: "u1",
		Status: domain.StatusRequested,
		Owner:  employee,
	}
	cancelled := *tr
	cancelled.Status = domain.StatusCancelled

	repo.EXPECT().GetByID(mock.Anything, "tr1").Return(tr, nil)
	repo.EXPECT().UpdateStatus(mock.Anything, "tr1", domain.StatusRequested, domain.StatusCancelled).Return(&cancelled, nil)
	notifier.EXPECT().Publish(mock.Anything).Run(func(event domain.StatusChangeEvent) {
		assert.Equal(t, domain.StatusCancelled, event.NewStatus)
	}).Return()

	updated, err := svc.Cancel(context.Background(), employee, "tr1")

	require.NoError(t, err)
	assert.Equal(t, domain.StatusCancelled, updated.Status)
}

func TestTravelRequestService_Cancel_ApprovedIsRejected(t *testing.T) {
	svc, repo, _ := newTravelRequestService(t)

	tr := &domain.TravelRequest{ID: "tr1", UserID: "u1", Status: domain.StatusApproved}
	repo.EXPECT().GetByID(mock.Anything, "tr1").Return(tr, nil)

	_, err := svc.Cancel(context.Background(), employee, "tr1")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrCannotCancel)
}

func TestTravelRequestService_Cancel_ForbiddenForStranger(t *testing.T) {
	svc, repo, _ := newTravelRequestService(t)

	tr := &domain.TravelRequest{ID: "tr1", UserID: "u1", Status: domain.StatusRequested}
	repo.EXPECT().GetByID(mock.Anything, "tr1").Return(tr, nil)

	_, err := svc.Cancel(context.Background(), stranger, "tr1")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestTravelRequestService_Cancel_LostRace(t *testing.T) {
	svc, repo, _ := newTravelRequestService(t)

	// The snapshot still says requested, but another transition lands first
	// and the conditional update matches zero rows.
	tr := &domain.TravelRequest{ID: "tr1", UserID: "u1", Status: domain.StatusRequested}
	repo.EXPECT().GetByID(mock.Anything, "tr1").Return(tr, nil)
	repo.EXPECT().UpdateStatus(mock.Anything, "tr1", domain.StatusRequested, domain.StatusCancelled).
		Return(nil, domain.ErrCannotChangeStatus)

	_, err := svc.Cancel(context.Background(), employee, "tr1")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrCannotCancel)
}

func TestTravelRequestService_Delete_OwnerOnRequested(t *testing.T) {
	svc, repo, _ := newTravelRequestService(t)

	tr := &domain.TravelRequest{ID: "tr1", UserID: "u1", Status: domain.StatusRequested}
	repo.EXPECT().GetByID(mock.Anything, "tr1").Return(tr, nil)
	repo.EXPECT().SoftDelete(mock.Anything, "tr1").Return(nil)

	err := svc.Delete(context.Background(), employee, "tr1")

	require.NoError(t, err)
}

func TestTravelRequestService_Delete_ForbiddenOnceApproved(t *testing.T) {
	svc, repo, _ := newTravelRequestService(t)

	tr := &domain.TravelRequest{ID: "tr1", UserID: "u1", Status: domain.StatusApproved}
	repo.EXPECT().GetByID(mock.Anything, "tr1").Return(tr, nil)

	err := svc.Delete(context.Background(), employee, "tr1")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestTravelRequestService_Stats_Scoping(t *testing.T) {
	svc, repo, _ := newTravelRequestService(t)

	stats := &domain.TravelRequestStats{Total: 3, Requested: 1, Approved: 1, Cancelled: 1}
	repo.EXPECT().Stats(mock.Anything, "u1").Return(stats, nil)
	repo.EXPECT().Stats(mock.Anything, "").Return(stats, nil)

	got, err := svc.Stats(context.Background(), employee)
	require.NoError(t, err)
	assert.Equal(t, stats, got)

	got, err = svc.Stats(context.Background(), admin)
	require.NoError(t, err)
	assert.Equal(t, stats, got)
}

func ptrTime(t time.Time) *time.Time {
	return &t
}
