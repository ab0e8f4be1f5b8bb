package event

import (
	"github.com/devlupca-cloud/njob-creator-sub000/core/database"
	"github.com/devlupca-cloud/njob-creator-sub000/core/middleware"
	"github.com/devlupca-cloud/njob-creator-sub000/core/realtime"
	authRepository "github.com/devlupca-cloud/njob-creator-sub000/modules/auth/repository"
	"github.com/devlupca-cloud/njob-creator-sub000/modules/event/controller"
	"github.com/devlupca-cloud/njob-creator-sub000/modules/event/repository"
	"github.com/devlupca-cloud/njob-creator-sub000/modules/event/router"
	"github.com/devlupca-cloud/njob-creator-sub000/modules/event/service"

	"github.com/labstack/echo/v4"
)

func Init(v1 *echo.Group, db database.Database, hub realtime.Hub, notifier service.TransitionNotifier, mw *middleware.Middleware) (service.EventService, *service.StatusPoller) {
	repo := repository.NewEventRepository(db)
	creatorRepo := authRepository.NewCreatorRepository(db)
	svc := service.NewEventService(repo, creatorRepo)
	ctrl := controller.NewEventController(svc)

	router.NewEventRouter(ctrl).Register(v1, mw)

	poller := service.NewStatusPoller(repo, hub, notifier)
	return svc, poller
}
