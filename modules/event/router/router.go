package router

import (
	"github.com/devlupca-cloud/njob-creator-sub000/core/middleware"
	"github.com/devlupca-cloud/njob-creator-sub000/modules/event/controller"

	"github.com/labstack/echo/v4"
)

type EventRouter struct {
	controller *controller.EventController
}

func NewEventRouter(controller *controller.EventController) *EventRouter {
	return &EventRouter{controller: controller}
}

func (r *EventRouter) Register(v1 *echo.Group, mw *middleware.Middleware) {
	private := v1.Group("/private/events", mw.AuthMiddleware())
	private.POST("", r.controller.CreateEvent)
	private.GET("/agenda", r.controller.GetAgenda)

	public := v1.Group("/public/creators")
	public.GET("/:slug/events", r.controller.PublicAgenda)
}
