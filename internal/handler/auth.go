package handler

import (
	"net/http"

	"github.com/luksdev/travels-corp/internal/domain"
	"github.com/luksdev/travels-corp/internal/handler/dto"
	"github.com/luksdev/travels-corp/internal/middleware"
	"github.com/wb-go/wbf/ginext"
)

func (h *Handler) Register(c *ginext.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.handleBindError(c, err)
		return
	}

	res, err := h.authService.Register(c.Request.Context(), domain.RegisterInput{
		Name:           req.Name,
		Email:          req.Email,
		Password:       req.Password,
		TelegramChatID: req.TelegramChatID,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToAuthResponse("User created successfully", res))
}

func (h *Handler) Login(c *ginext.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.handleBindError(c, err)
		return
	}

	res, err := h.authService.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToAuthResponse("Login successful", res))
}

func (h *Handler) GetUser(c *ginext.Context) {
	caller, ok := h.caller(c)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, dto.Response{Data: dto.ToUserResponse(caller)})
}

func (h *Handler) Refresh(c *ginext.Context) {
	caller, ok := h.caller(c)
	if !ok {
		return
	}
	claims, ok := middleware.ClaimsFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Message: domain.ErrUnauthenticated.Error()})
		return
	}

	res, err := h.authService.Refresh(c.Request.Context(), caller, claims)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToAuthResponse("Token refreshed successfully", res))
}

func (h *Handler) Logout(c *ginext.Context) {
	claims, ok := middleware.ClaimsFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Message: domain.ErrUnauthenticated.Error()})
		return
	}

	if err := h.authService.Logout(c.Request.Context(), claims); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.Response{Message: "Successfully logged out"})
}
