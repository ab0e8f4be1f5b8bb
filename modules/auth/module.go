package auth

import (
	"github.com/devlupca-cloud/njob-creator-sub000/core/cache"
	"github.com/devlupca-cloud/njob-creator-sub000/core/database"
	"github.com/devlupca-cloud/njob-creator-sub000/core/middleware"
	"github.com/devlupca-cloud/njob-creator-sub000/modules/auth/controller"
	"github.com/devlupca-cloud/njob-creator-sub000/modules/auth/repository"
	"github.com/devlupca-cloud/njob-creator-sub000/modules/auth/router"
	"github.com/devlupca-cloud/njob-creator-sub000/modules/auth/service"

	"github.com/labstack/echo/v4"
)

func Init(v1 *echo.Group, db database.Database, c cache.Cache, mw *middleware.Middleware) *service.AuthService {
	repo := repository.NewCreatorRepository(db)
	svc := service.NewAuthService(repo, c)
	ctrl := controller.NewAuthController(svc)

	router.NewAuthRouter(ctrl).Register(v1, mw)

	return svc
}
