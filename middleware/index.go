package middleware

import (
	"errors"
	"os"
	"strings"

	"hall_manager/helper"
	"hall_manager/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

func Protected() fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := c.Cookies("access_token")

		if token == "" {
			auth := c.Get("Authorization")
			if strings.HasPrefix(auth, "Bearer ") {
				token = strings.TrimPrefix(auth, "Bearer ")
			}
		}

		if token == "" {
			return utils.ErrorResponse(c, fiber.StatusUnauthorized, "Missing token")
		}

		jwtToken, err := jwt.Parse(token, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, errors.New("unexpected signing method")
			}
			return []byte(os.Getenv("JWT_SECRET")), nil
		})
		if err != nil || !jwtToken.Valid {
			return utils.ErrorResponse(c, fiber.StatusUnauthorized, "Invalid token")
		}

		claims, ok := jwtToken.Claims.(jwt.MapClaims)
		if !ok {
			return utils.ErrorResponse(c, fiber.StatusUnauthorized, "Invalid token")
		}
		accountId := uint(0)
		if id, ok := claims["accountId"].(float64); ok {
			accountId = uint(id)
		}
		jti, _ := claims["jti"].(string)
		issuedAt := int64(0)
		if iat, ok := claims["iat"].(float64); ok {
			issuedAt = int64(iat)
		}

		if helper.IsTokenRevoked(c.Context(), accountId, jti, issuedAt) {
			return utils.ErrorResponse(c, fiber.StatusUnauthorized, "Token has been revoked")
		}

		c.Locals("user", jwtToken)
		return c.Next()
	}
}

// AdminOnly requires the acting account to hold the admin role. Must run
// after Protected().
func AdminOnly() fiber.Handler {
	return func(c *fiber.Ctx) error {
		_, isAdmin := helper.GetInfoAccountFromToken(c)
		if !isAdmin {
			return utils.ErrorResponse(c, fiber.StatusForbidden, "Admin role required")
		}
		return c.Next()
	}
}
