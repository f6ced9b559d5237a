package middleware

import (
	"strings"

	"Gardener-Assistant-Backend/domain"
	"Gardener-Assistant-Backend/internal/api/presenters"
	"Gardener-Assistant-Backend/pkg/jwt"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

type (
	Middleware interface {
		CORSMiddleware() fiber.Handler
		AuthMiddleware(jwtService jwt.JWTService) fiber.Handler
	}

	middleware struct{}
)

func NewMiddleware() Middleware {
	return &middleware{}
}

func (m *middleware) CORSMiddleware() fiber.Handler {
	return cors.New(cors.Config{
		AllowOrigins: "*",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET, POST, PUT, PATCH, DELETE",
	})
}

func (m *middleware) AuthMiddleware(jwtService jwt.JWTService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return presenters.ErrorResponse(c, fiber.StatusUnauthorized, domain.MessageFailedGetToken, domain.ErrTokenNotFound)
		}

		token := strings.TrimPrefix(authHeader, "Bearer ")
		if token == authHeader {
			return presenters.ErrorResponse(c, fiber.StatusUnauthorized, domain.MessageFailedGetToken, domain.ErrTokenNotFound)
		}

		userID, role, err := jwtService.GetUserIDByToken(token)
		if err != nil {
			return presenters.ErrorResponse(c, fiber.StatusUnauthorized, domain.MessageFailedTokenInvalid, err)
		}

		c.Locals("user_id", userID)
		c.Locals("role", role)
		return c.Next()
	}
}
