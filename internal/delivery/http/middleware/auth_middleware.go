package middleware

import (
	"strings"

	deliverycontext "sitekhata/internal/delivery/context"
	"sitekhata/internal/delivery/http/response"
	"sitekhata/internal/domain/entity"
	"sitekhata/internal/domain/repository"
	"sitekhata/internal/domain/service"

	"github.com/labstack/echo/v4"
)

// AuthMiddleware provides middleware for JWT authentication and authorization.
type AuthMiddleware struct {
	tokenSvc service.TokenService
	userRepo repository.UserRepository
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService, userRepo repository.UserRepository) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc, userRepo: userRepo}
}

// Authenticate validates the access token and stores the resulting Actor on
// both the echo context and the request context. The user record is loaded so
// worker actors carry their linked worker ID.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return response.Unauthorized(c, "MISSING_TOKEN", "Authorization header is missing")
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			return response.Unauthorized(c, "INVALID_TOKEN", "Invalid token format, must be Bearer token")
		}

		claims, err := m.tokenSvc.ValidateToken(tokenString)
		if err != nil {
			return response.Unauthorized(c, "INVALID_TOKEN", "Invalid or expired token")
		}
		if claims.Type != "access" {
			return response.Unauthorized(c, "INVALID_TOKEN", "Refresh token cannot be used for API access")
		}

		user, err := m.userRepo.FindByID(c.Request().Context(), claims.UserID)
		if err != nil {
			return response.Unauthorized(c, "INVALID_TOKEN", "Account no longer exists")
		}

		actor := entity.Actor{
			UserID:   user.ID,
			Role:     user.Role,
			WorkerID: user.WorkerID,
		}

		c.Set(string(deliverycontext.KeyActor), actor)

		return next(c)
	}
}

// RequireRole is a middleware factory that checks the actor's role.
// It must be used AFTER the Authenticate middleware.
func (m *AuthMiddleware) RequireRole(requiredRole entity.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			actor, ok := GetActor(c)
			if !ok {
				return response.Forbidden(c, "FORBIDDEN", "Permission denied: actor information missing")
			}

			if actor.Role != requiredRole {
				return response.Forbidden(c, "FORBIDDEN", "Permission denied: require '"+requiredRole.String()+"' role")
			}

			return next(c)
		}
	}
}

// GetActor retrieves the authenticated actor set by Authenticate.
func GetActor(c echo.Context) (entity.Actor, bool) {
	actor, ok := c.Get(string(deliverycontext.KeyActor)).(entity.Actor)

	return actor, ok
}
