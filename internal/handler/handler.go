package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/luksdev/travels-corp/internal/domain"
	"github.com/luksdev/travels-corp/internal/handler/dto"
	"github.com/luksdev/travels-corp/internal/middleware"
	"github.com/wb-go/wbf/ginext"
)

type TravelRequestSvc interface {
	Create(ctx context.Context, caller *domain.User, input domain.CreateTravelRequestInput) (*domain.TravelRequest, error)
	Get(ctx context.Context, caller *domain.User, id string) (*domain.TravelRequest, error)
	List(ctx context.Context, caller *domain.User, filter domain.TravelRequestFilter) (*domain.TravelRequestPage, error)
	Update(ctx context.Context, caller *domain.User, id string, input domain.UpdateTravelRequestInput) (*domain.TravelRequest, error)
	UpdateStatus(ctx context.Context, caller *domain.User, id string, newStatus domain.TravelRequestStatus) (*domain.TravelRequest, error)
	Cancel(ctx context.Context, caller *domain.User, id string) (*domain.TravelRequest, error)
	Delete(ctx context.Context, caller *domain.User, id string) error
	Stats(ctx context.Context, caller *domain.User) (*domain.TravelRequestStats, error)
}

type AuthSvc interface {
	Register(ctx context.Context, input domain.RegisterInput) (*domain.AuthResult, error)
	Login(ctx context.Context, email, password string) (*domain.AuthResult, error)
	Refresh(ctx context.Context, caller *domain.User, claims *domain.TokenClaims) (*domain.AuthResult, error)
	Logout(ctx context.Context, claims *domain.TokenClaims) error
}

type NotificationSvc interface {
	ListByUser(ctx context.Context, caller *domain.User) ([]*domain.Notification, error)
}

type Handler struct {
	travelRequestService TravelRequestSvc
	authService          AuthSvc
	notificationService  NotificationSvc
}

func NewHandler(travelRequestService TravelRequestSvc, authService AuthSvc, notificationService NotificationSvc) *Handler {
	return &Handler{
		travelRequestService: travelRequestService,
		authService:          authService,
		notificationService:  notificationService,
	}
}

// caller returns the authenticated user placed in the context by the auth
// middleware; handlers thread it explicitly into every service call.
func (h *Handler) caller(c *ginext.Context) (*domain.User, bool) {
	user, ok := middleware.CallerFromContext(c)
	if !ok {
		c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{Message: domain.ErrUnauthenticated.Error()})
		return nil, false
	}
	return user, true
}

func (h *Handler) handleError(c *ginext.Context, err error) {
	c.Set("error", err.Error())

	switch {
	case errors.Is(err, domain.ErrTravelRequestNotFound),
		errors.Is(err, domain.ErrUserNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Message: err.Error()})

	case errors.Is(err, domain.ErrForbidden):
		c.JSON(http.StatusForbidden, dto.ErrorResponse{Message: err.Error()})

	case errors.Is(err, domain.ErrUnauthenticated),
		errors.Is(err, domain.ErrInvalidCredentials),
		errors.Is(err, domain.ErrTokenRevoked):
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Message: err.Error()})

	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrCannotChangeStatus),
		errors.Is(err, domain.ErrCannotCancel),
		errors.Is(err, domain.ErrEmailTaken):
		c.JSON(http.StatusUnprocessableEntity, dto.ErrorResponse{Message: err.Error()})

	default:
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "internal server error"})
	}
}

func (h *Handler) handleBindError(c *ginext.Context, err error) {
	if fields := dto.BindErrors(err); fields != nil {
		c.JSON(http.StatusUnprocessableEntity, dto.ValidationErrorResponse{
			Message: "The given data was invalid.",
			Errors:  fields,
		})
		return
	}

	c.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "invalid request body"})
}
