package notification

import (
	"github.com/devlupca-cloud/njob-creator-sub000/core/database"
	"github.com/devlupca-cloud/njob-creator-sub000/core/middleware"
	"github.com/devlupca-cloud/njob-creator-sub000/modules/notification/controller"
	"github.com/devlupca-cloud/njob-creator-sub000/modules/notification/repository"
	"github.com/devlupca-cloud/njob-creator-sub000/modules/notification/router"
	"github.com/devlupca-cloud/njob-creator-sub000/modules/notification/service"

	"github.com/hibiken/asynq"
	"github.com/labstack/echo/v4"
)

func Init(v1 *echo.Group, db database.Database, client *asynq.Client, mw *middleware.Middleware) *service.NotificationService {
	repo := repository.NewNotificationRepository(db)
	svc := service.NewNotificationService(repo, client)
	ctrl := controller.NewNotificationController(svc)

	router.NewNotificationRouter(ctrl).Register(v1, mw)

	return svc
}
