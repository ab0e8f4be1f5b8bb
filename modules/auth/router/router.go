package router

import (
	"github.com/devlupca-cloud/njob-creator-sub000/core/middleware"
	"github.com/devlupca-cloud/njob-creator-sub000/modules/auth/controller"

	"github.com/labstack/echo/v4"
)

type AuthRouter struct {
	controller *controller.AuthController
}

func NewAuthRouter(controller *controller.AuthController) *AuthRouter {
	return &AuthRouter{controller: controller}
}

func (r *AuthRouter) Register(v1 *echo.Group, mw *middleware.Middleware) {
	public := v1.Group("/auth")
	public.POST("/register", r.controller.Register)
	public.POST("/login", r.controller.Login)
	public.POST("/refresh", r.controller.Refresh)

	private := v1.Group("/private/auth", mw.AuthMiddleware())
	private.POST("/logout", r.controller.Logout)
	private.GET("/profile", r.controller.GetProfile)
	private.PUT("/profile", r.controller.UpdateProfile)
}
