package controller

import (
	"github.com/devlupca-cloud/njob-creator-sub000/core/constants"
	"github.com/devlupca-cloud/njob-creator-sub000/core/controller"
	"github.com/devlupca-cloud/njob-creator-sub000/core/errors"
	"github.com/devlupca-cloud/njob-creator-sub000/core/utils"
	"github.com/devlupca-cloud/njob-creator-sub000/modules/availability/dto"
	"github.com/devlupca-cloud/njob-creator-sub000/modules/availability/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

type AvailabilityController struct {
	service service.AvailabilityService
	controller.BaseController
}

func NewAvailabilityController(svc service.AvailabilityService) *AvailabilityController {
	return &AvailabilityController{
		service:        svc,
		BaseController: controller.NewBaseController(),
	}
}

// GetCatalog returns the fixed slot catalog for the availability editor grid.
// @Summary Slot catalog
// @Description Fixed half-hour slot menu for each day period
// @Tags Availability
// @Security BearerAuth
// @Produce json
// @Success 200 {object} dto.CatalogResponse
// @Router /private/availability/catalog [get]
func (c *AvailabilityController) GetCatalog(ctx echo.Context) error {
	return c.SuccessResponse(ctx, c.service.Catalog(), "Catalog retrieved successfully")
}

// SaveDay replaces the authenticated creator's availability for one date.
// @Summary Save day availability
// @Description Replaces the day's slot selections and returns the authoritative read-back
// @Tags Availability
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param date path string true "Local calendar date (YYYY-MM-DD)"
// @Param request body dto.SaveDayRequest true "Per-period slot selections"
// @Success 200 {object} dto.DayResponse
// @Failure 400 {object} errors.AppError
// @Router /private/availability/days/{date} [put]
func (c *AvailabilityController) SaveDay(ctx echo.Context) error {
	creatorID, err := getCreatorIDFromContext(ctx)
	if err != nil {
		return c.Unauthorized(errors.ErrUnauthorized, "Unauthorized")
	}

	req := new(dto.SaveDayRequest)
	if err := ctx.Bind(req); err != nil {
		return c.BadRequest(errors.ErrInvalidRequestData, "Invalid request body")
	}

	result, appErr := c.service.SaveDay(ctx.Request().Context(), creatorID, ctx.Param("date"), req)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, result, "Availability saved successfully")
}

// GetDay returns the creator's saved selections for one date.
// @Summary Get day availability
// @Tags Availability
// @Security BearerAuth
// @Produce json
// @Param date path string true "Local calendar date (YYYY-MM-DD)"
// @Success 200 {object} dto.DayResponse
// @Router /private/availability/days/{date} [get]
func (c *AvailabilityController) GetDay(ctx echo.Context) error {
	creatorID, err := getCreatorIDFromContext(ctx)
	if err != nil {
		return c.Unauthorized(errors.ErrUnauthorized, "Unauthorized")
	}

	result, appErr := c.service.GetDay(ctx.Request().Context(), creatorID, ctx.Param("date"))
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, result, "Availability retrieved successfully")
}

// PublicDay returns a creator's open slots for the public agenda page.
// @Summary Public day availability
// @Tags Availability
// @Produce json
// @Param slug path string true "Creator slug"
// @Param date query string true "Local calendar date (YYYY-MM-DD)"
// @Success 200 {object} dto.DayResponse
// @Failure 404 {object} errors.AppError
// @Router /public/creators/{slug}/availability [get]
func (c *AvailabilityController) PublicDay(ctx echo.Context) error {
	result, appErr := c.service.PublicDay(ctx.Request().Context(), ctx.Param("slug"), ctx.QueryParam("date"))
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, result, "Availability retrieved successfully")
}

func getCreatorIDFromContext(ctx echo.Context) (uuid.UUID, error) {
	tokenData, ok := ctx.Get(constants.ContextTokenData).(*utils.TokenData)
	if !ok || tokenData == nil {
		return uuid.Nil, errors.NewAppError(errors.ErrUnauthorized, "No token data in context", nil)
	}
	return tokenData.UserID, nil
}
