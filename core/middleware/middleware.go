package middleware

import (
	"strings"

	"github.com/devlupca-cloud/njob-creator-sub000/core/cache"
	"github.com/devlupca-cloud/njob-creator-sub000/core/constants"
	"github.com/devlupca-cloud/njob-creator-sub000/core/controller"
	"github.com/devlupca-cloud/njob-creator-sub000/core/errors"
	"github.com/devlupca-cloud/njob-creator-sub000/core/utils"

	"github.com/labstack/echo/v4"
)

type Middleware struct {
	cache cache.Cache
	base  controller.BaseController
}

func NewMiddleware(c cache.Cache) *Middleware {
	return &Middleware{
		cache: c,
		base:  controller.NewBaseController(),
	}
}

// AuthMiddleware validates the bearer access token and stores its data in the context.
func (m *Middleware) AuthMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get("Authorization")
			if header == "" {
				return m.base.Unauthorized(errors.ErrMissingAuthorizationHeader, "Missing Authorization header")
			}

			token := strings.TrimPrefix(header, "Bearer ")
			if token == header {
				return m.base.Unauthorized(errors.ErrInvalidTokenFormat, "Authorization header must be a Bearer token")
			}

			blacklisted, err := m.cache.IsTokenBlacklisted(c.Request().Context(), token)
			if err != nil {
				return m.base.InternalServerError(errors.ErrInternalServer, "Failed to check token blacklist")
			}
			if blacklisted {
				return m.base.Unauthorized(errors.ErrUnauthorized, "Token has been revoked")
			}

			tokenData, err := utils.ValidateAndParseToken(token)
			if err != nil {
				return m.base.Unauthorized(errors.ErrUnauthorized, "Invalid or expired token")
			}
			if tokenData.Scope != constants.ScopeTokenAccess {
				return m.base.Unauthorized(errors.ErrUnauthorized, "Token scope not allowed here")
			}

			c.Set(constants.ContextTokenData, tokenData)
			return next(c)
		}
	}
}
