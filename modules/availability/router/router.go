package router

import (
	"github.com/devlupca-cloud/njob-creator-sub000/core/middleware"
	"github.com/devlupca-cloud/njob-creator-sub000/modules/availability/controller"

	"github.com/labstack/echo/v4"
)

type AvailabilityRouter struct {
	controller *controller.AvailabilityController
}

func NewAvailabilityRouter(controller *controller.AvailabilityController) *AvailabilityRouter {
	return &AvailabilityRouter{controller: controller}
}

func (r *AvailabilityRouter) Register(v1 *echo.Group, mw *middleware.Middleware) {
	private := v1.Group("/private/availability", mw.AuthMiddleware())
	private.GET("/catalog", r.controller.GetCatalog)
	private.GET("/days/:date", r.controller.GetDay)
	private.PUT("/days/:date", r.controller.SaveDay)

	public := v1.Group("/public/creators")
	public.GET("/:slug/availability", r.controller.PublicDay)
}
