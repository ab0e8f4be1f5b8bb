package availability

import (
	"github.com/devlupca-cloud/njob-creator-sub000/core/cache"
	"github.com/devlupca-cloud/njob-creator-sub000/core/database"
	"github.com/devlupca-cloud/njob-creator-sub000/core/middleware"
	"github.com/devlupca-cloud/njob-creator-sub000/core/realtime"
	authRepository "github.com/devlupca-cloud/njob-creator-sub000/modules/auth/repository"
	"github.com/devlupca-cloud/njob-creator-sub000/modules/availability/controller"
	"github.com/devlupca-cloud/njob-creator-sub000/modules/availability/repository"
	"github.com/devlupca-cloud/njob-creator-sub000/modules/availability/router"
	"github.com/devlupca-cloud/njob-creator-sub000/modules/availability/service"

	"github.com/labstack/echo/v4"
)

func Init(v1 *echo.Group, db database.Database, c cache.Cache, hub realtime.Hub, mw *middleware.Middleware) service.AvailabilityService {
	repo := repository.NewAvailabilityRepository(db)
	creatorRepo := authRepository.NewCreatorRepository(db)
	svc := service.NewAvailabilityService(repo, creatorRepo, c, hub)
	ctrl := controller.NewAvailabilityController(svc)

	router.NewAvailabilityRouter(ctrl).Register(v1, mw)

	return svc
}
