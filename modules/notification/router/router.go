package router

import (
	"github.com/devlupca-cloud/njob-creator-sub000/core/middleware"
	"github.com/devlupca-cloud/njob-creator-sub000/modules/notification/controller"

	"github.com/labstack/echo/v4"
)

type NotificationRouter struct {
	controller *controller.NotificationController
}

func NewNotificationRouter(controller *controller.NotificationController) *NotificationRouter {
	return &NotificationRouter{controller: controller}
}

func (r *NotificationRouter) Register(v1 *echo.Group, mw *middleware.Middleware) {
	private := v1.Group("/private/notifications", mw.AuthMiddleware())
	private.GET("", r.controller.GetMyNotifications)
	private.GET("/unread-count", r.controller.CountUnread)
	private.PUT("/mark-read", r.controller.MarkAsRead)
	private.PUT("/mark-all-read", r.controller.MarkAllAsRead)
}
