package router

import (
	"net/http"

	"github.com/wb-go/wbf/ginext"
)

type Handler interface {
	CreateEvent(c *ginext.Context)
	UpdateEvent(c *ginext.Context)
	GetEvent(c *ginext.Context)
	ListEvents(c *ginext.Context)
	CalendarFeed(c *ginext.Context)
	CheckIn(c *ginext.Context)
	LookupPerson(c *ginext.Context)
	EnqueueOffline(c *ginext.Context)
	OfflineStatus(c *ginext.Context)
	SyncOffline(c *ginext.Context)
	CreateUser(c *ginext.Context)
	ListUsers(c *ginext.Context)
}

func InitRouter(mode string, h Handler, mw ...ginext.HandlerFunc) *ginext.Engine {
	router := ginext.New(mode)
	router.Use(mw...)

	api := router.Group("/api")
	{
		// Events
		api.POST("/events", h.CreateEvent)
		api.GET("/events", h.ListEvents)
		api.GET("/events/:id", h.GetEvent)
		api.PUT("/events/:id", h.UpdateEvent)
		api.GET("/calendar.ics", h.CalendarFeed)

		// Attendance
		api.POST("/events/:id/attendance", h.CheckIn)
		api.GET("/people/:phone", h.LookupPerson)

		// Offline
		api.POST("/offline/attendance", h.EnqueueOffline)
		api.GET("/offline/status", h.OfflineStatus)
		api.POST("/offline/sync", h.SyncOffline)

		// Users
		api.POST("/users", h.CreateUser)
		api.GET("/users", h.ListUsers)
	}

	router.GET("/health", func(c *ginext.Context) {
		c.JSON(http.StatusOK, ginext.H{"status": "ok"})
	})

	return router
}
