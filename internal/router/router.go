package router

import (
	"net/http"

	"github.com/wb-go/wbf/ginext"
)

type Handler interface {
	Register(c *ginext.Context)
	Login(c *ginext.Context)
	GetUser(c *ginext.Context)
	Logout(c *ginext.Context)
	Refresh(c *ginext.Context)
	ListTravelRequests(c *ginext.Context)
	CreateTravelRequest(c *ginext.Context)
	GetTravelRequest(c *ginext.Context)
	UpdateTravelRequest(c *ginext.Context)
	UpdateTravelRequestStatus(c *ginext.Context)
	CancelTravelRequest(c *ginext.Context)
	DeleteTravelRequest(c *ginext.Context)
	TravelRequestStats(c *ginext.Context)
	ListNotifications(c *ginext.Context)
}

func InitRouter(mode string, h Handler, authMW ginext.HandlerFunc, mw ...ginext.HandlerFunc) *ginext.Engine {
	router := ginext.New(mode)
	router.Use(mw...)

	api := router.Group("/api")

	auth := api.Group("/auth")
	{
		auth.POST("/register", h.Register)
		auth.POST("/login", h.Login)

		authed := auth.Group("", authMW)
		authed.GET("/user", h.GetUser)
		authed.POST("/logout", h.Logout)
		authed.POST("/refresh", h.Refresh)
	}

	protected := api.Group("", authMW)
	{
		// Stats registered before :id so the literal path wins.
		protected.GET("/travel-requests/stats", h.TravelRequestStats)

		protected.GET("/travel-requests", h.ListTravelRequests)
		protected.POST("/travel-requests", h.CreateTravelRequest)
		protected.GET("/travel-requests/:id", h.GetTravelRequest)
		protected.PUT("/travel-requests/:id", h.UpdateTravelRequest)
		protected.PATCH("/travel-requests/:id/status", h.UpdateTravelRequestStatus)
		protected.PATCH("/travel-requests/:id/cancel", h.CancelTravelRequest)
		protected.DELETE("/travel-requests/:id", h.DeleteTravelRequest)

		protected.GET("/notifications", h.ListNotifications)
	}

	router.GET("/health", func(c *ginext.Context) {
		c.JSON(http.StatusOK, ginext.H{"status": "ok"})
	})

	return router
}
