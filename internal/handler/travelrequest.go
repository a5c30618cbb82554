package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/luksdev/travels-corp/internal/domain"
	"github.com/luksdev/travels-corp/internal/handler/dto"
	"github.com/wb-go/wbf/ginext"
)

func (h *Handler) ListTravelRequests(c *ginext.Context) {
	caller, ok := h.caller(c)
	if !ok {
		return
	}

	filter, ok := h.parseFilter(c)
	if !ok {
		return
	}

	page, err := h.travelRequestService.List(c.Request.Context(), caller, filter)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToTravelRequestListResponse(page))
}

func (h *Handler) CreateTravelRequest(c *ginext.Context) {
	caller, ok := h.caller(c)
	if !ok {
		return
	}

	var req dto.CreateTravelRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.handleBindError(c, err)
		return
	}

	departure, err := dto.ParseDate(req.DepartureDate)
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, dto.FieldErrors("departure_date", "The departure date must be a valid date."))
		return
	}
	ret, ok := h.parseOptionalDate(c, req.ReturnDate, "return_date")
	if !ok {
		return
	}

	tr, err := h.travelRequestService.Create(c.Request.Context(), caller, domain.CreateTravelRequestInput{
		Destination:   req.Destination,
		DepartureDate: departure,
		ReturnDate:    ret,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.Response{
		Data:    dto.ToTravelRequestResponse(tr),
		Message: "Travel request created successfully",
	})
}

func (h *Handler) GetTravelRequest(c *ginext.Context) {
	caller, ok := h.caller(c)
	if !ok {
		return
	}
	id, ok := h.requestID(c)
	if !ok {
		return
	}

	tr, err := h.travelRequestService.Get(c.Request.Context(), caller, id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.Response{Data: dto.ToTravelRequestResponse(tr)})
}

func (h *Handler) UpdateTravelRequest(c *ginext.Context) {
	caller, ok := h.caller(c)
	if !ok {
		return
	}
	id, ok := h.requestID(c)
	if !ok {
		return
	}

	var req dto.UpdateTravelRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.handleBindError(c, err)
		return
	}

	input := domain.UpdateTravelRequestInput{Destination: req.Destination}
	if req.DepartureDate != nil {
		departure, err := dto.ParseDate(*req.DepartureDate)
		if err != nil {
			c.JSON(http.StatusUnprocessableEntity, dto.FieldErrors("departure_date", "The departure date must be a valid date."))
			return
		}
		input.DepartureDate = &departure
	}
	if req.ReturnDate.Set {
		if req.ReturnDate.Value == nil || *req.ReturnDate.Value == "" {
			input.ClearReturnDate = true
		} else {
			ret, err := dto.ParseDate(*req.ReturnDate.Value)
			if err != nil {
				c.JSON(http.StatusUnprocessableEntity, dto.FieldErrors("return_date", "The return date must be a valid date."))
				return
			}
			input.ReturnDate = &ret
		}
	}

	tr, err := h.travelRequestService.Update(c.Request.Context(), caller, id, input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.Response{
		Data:    dto.ToTravelRequestResponse(tr),
		Message: "Travel request updated successfully",
	})
}

func (h *Handler) UpdateTravelRequestStatus(c *ginext.Context) {
	caller, ok := h.caller(c)
	if !ok {
		return
	}
	id, ok := h.requestID(c)
	if !ok {
		return
	}

	var req dto.UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.handleBindError(c, err)
		return
	}

	newStatus := domain.TravelRequestStatus(req.Status)
	tr, err := h.travelRequestService.UpdateStatus(c.Request.Context(), caller, id, newStatus)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.Response{
		Data:    dto.ToTravelRequestResponse(tr),
		Message: "Travel request " + req.Status + " successfully",
	})
}

func (h *Handler) CancelTravelRequest(c *ginext.Context) {
	caller, ok := h.caller(c)
	if !ok {
		return
	}
	id, ok := h.requestID(c)
	if !ok {
		return
	}

	tr, err := h.travelRequestService.Cancel(c.Request.Context(), caller, id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.Response{
		Data:    dto.ToTravelRequestResponse(tr),
		Message: "Travel request cancelled successfully",
	})
}

func (h *Handler) DeleteTravelRequest(c *ginext.Context) {
	caller, ok := h.caller(c)
	if !ok {
		return
	}
	id, ok := h.requestID(c)
	if !ok {
		return
	}

	if err := h.travelRequestService.Delete(c.Request.Context(), caller, id); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.Response{Message: "Travel request deleted successfully"})
}

func (h *Handler) TravelRequestStats(c *ginext.Context) {
	caller, ok := h.caller(c)
	if !ok {
		return
	}

	stats, err := h.travelRequestService.Stats(c.Request.Context(), caller)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.Response{Data: stats})
}

func (h *Handler) ListNotifications(c *ginext.Context) {
	caller, ok := h.caller(c)
	if !ok {
		return
	}

	notifications, err := h.notificationService.ListByUser(c.Request.Context(), caller)
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.NotificationResponse, 0, len(notifications))
	for _, n := range notifications {
		resp = append(resp, dto.ToNotificationResponse(n))
	}

	c.JSON(http.StatusOK, dto.Response{Data: resp})
}

func (h *Handler) requestID(c *ginext.Context) (string, bool) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "invalid travel request id"})
		return "", false
	}
	return id, true
}

func (h *Handler) parseFilter(c *ginext.Context) (domain.TravelRequestFilter, bool) {
	var filter domain.TravelRequestFilter

	if status := c.Query("status"); status != "" {
		s := domain.TravelRequestStatus(status)
		if !s.Valid() {
			c.JSON(http.StatusUnprocessableEntity, dto.FieldErrors("status", "The status must be one of: requested, approved, cancelled."))
			return filter, false
		}
		filter.Status = s
	}
	filter.Destination = c.Query("destination")

	for _, q := range []struct {
		name string
		dst  **time.Time
	}{
		{"departure_from", &filter.DepartureFrom},
		{"departure_to", &filter.DepartureTo},
		{"created_from", &filter.CreatedFrom},
		{"created_to", &filter.CreatedTo},
	} {
		raw := c.Query(q.name)
		if raw == "" {
			continue
		}
		t, err := dto.ParseDate(raw)
		if err != nil {
			c.JSON(http.StatusUnprocessableEntity, dto.FieldErrors(q.name, "The "+q.name+" must be a valid date."))
			return filter, false
		}
		*q.dst = &t
	}

	filter.Page = queryInt(c, "page", 1)
	filter.PerPage = queryInt(c, "per_page", domain.DefaultPerPage)

	return filter, true
}

func (h *Handler) parseOptionalDate(c *ginext.Context, raw *string, field string) (*time.Time, bool) {
	if raw == nil || *raw == "" {
		return nil, true
	}
	t, err := dto.ParseDate(*raw)
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, dto.FieldErrors(field, "The "+field+" must be a valid date."))
		return nil, false
	}
	return &t, true
}

func queryInt(c *ginext.Context, name string, fallback int) int {
	raw := c.Query(name)
	if raw == "" {
		return fallback
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v < 1 {
		return fallback
	}
	return v
}
