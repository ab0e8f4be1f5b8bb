package controller

import (
	"github.com/devlupca-cloud/njob-creator-sub000/core/constants"
	"github.com/devlupca-cloud/njob-creator-sub000/core/controller"
	"github.com/devlupca-cloud/njob-creator-sub000/core/errors"
	"github.com/devlupca-cloud/njob-creator-sub000/core/utils"
	"github.com/devlupca-cloud/njob-creator-sub000/modules/event/dto"
	"github.com/devlupca-cloud/njob-creator-sub000/modules/event/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

type EventController struct {
	service service.EventService
	controller.BaseController
}

func NewEventController(svc service.EventService) *EventController {
	return &EventController{
		service:        svc,
		BaseController: controller.NewBaseController(),
	}
}

// CreateEvent schedules a new live or call for the authenticated creator.
// @Summary Create event
// @Tags Event
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.CreateEventRequest true "Event to schedule"
// @Success 200 {object} entity.Event
// @Failure 400 {object} errors.AppError
// @Router /private/events [post]
func (c *EventController) CreateEvent(ctx echo.Context) error {
	creatorID, err := getCreatorIDFromContext(ctx)
	if err != nil {
		return c.Unauthorized(errors.ErrUnauthorized, "Unauthorized")
	}

	req := new(dto.CreateEventRequest)
	if err := ctx.Bind(req); err != nil {
		return c.BadRequest(errors.ErrInvalidRequestData, "Invalid request body")
	}

	created, appErr := c.service.Create(ctx.Request().Context(), creatorID, req)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, created, "Event created successfully")
}

// GetAgenda returns the creator's events grouped by local calendar day.
// @Summary Agenda view
// @Description Events bucketed by the creator's local day, with derived status and countdown
// @Tags Event
// @Security BearerAuth
// @Produce json
// @Param from query string false "Range start (YYYY-MM-DD, local)"
// @Param to query string false "Range end (YYYY-MM-DD, local)"
// @Success 200 {object} dto.AgendaResponse
// @Router /private/events/agenda [get]
func (c *EventController) GetAgenda(ctx echo.Context) error {
	creatorID, err := getCreatorIDFromContext(ctx)
	if err != nil {
		return c.Unauthorized(errors.ErrUnauthorized, "Unauthorized")
	}

	result, appErr := c.service.Agenda(ctx.Request().Context(), creatorID, ctx.QueryParam("from"), ctx.QueryParam("to"))
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, result, "Agenda retrieved successfully")
}

// PublicAgenda returns a creator's public schedule.
// @Summary Public agenda
// @Tags Event
// @Produce json
// @Param slug path string true "Creator slug"
// @Param from query string false "Range start (YYYY-MM-DD)"
// @Param to query string false "Range end (YYYY-MM-DD)"
// @Success 200 {object} dto.AgendaResponse
// @Failure 404 {object} errors.AppError
// @Router /public/creators/{slug}/events [get]
func (c *EventController) PublicAgenda(ctx echo.Context) error {
	result, appErr := c.service.PublicAgenda(ctx.Request().Context(), ctx.Param("slug"), ctx.QueryParam("from"), ctx.QueryParam("to"))
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, result, "Agenda retrieved successfully")
}

func getCreatorIDFromContext(ctx echo.Context) (uuid.UUID, error) {
	tokenData, ok := ctx.Get(constants.ContextTokenData).(*utils.TokenData)
	if !ok || tokenData == nil {
		return uuid.Nil, errors.NewAppError(errors.ErrUnauthorized, "No token data in context", nil)
	}
	return tokenData.UserID, nil
}
