package middleware

import (
	"os"
	"strings"

	"transvert-logistics/constants"
	"transvert-logistics/types"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

// Protected validates the Bearer token and stores its claims in
// c.Locals("user") for the handlers downstream.
func Protected() fiber.Handler {
	return func(c *fiber.Ctx) error {
		claims, err := parseBearerToken(c)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(types.ErrorResponse{
				Message: err.Error(),
				Status:  fiber.StatusUnauthorized,
			})
		}

		c.Locals("user", claims)
		return c.Next()
	}
}

// RequireStaff allows staff and superadmin accounts.
func RequireStaff() fiber.Handler {
	return requireRole(func(claims jwt.MapClaims) bool {
		return boolClaim(claims, constants.ClaimIsStaff) || boolClaim(claims, constants.ClaimIsSuperuser)
	})
}

// RequireSuperuser allows superadmin accounts only.
func RequireSuperuser() fiber.Handler {
	return requireRole(func(claims jwt.MapClaims) bool {
		return boolClaim(claims, constants.ClaimIsSuperuser)
	})
}

func requireRole(allowed func(jwt.MapClaims) bool) fiber.Handler {
	return func(c *fiber.Ctx) error {
		claims, err := parseBearerToken(c)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(types.ErrorResponse{
				Message: err.Error(),
				Status:  fiber.StatusUnauthorized,
			})
		}

		if !allowed(claims) {
			return c.Status(fiber.StatusForbidden).JSON(types.ErrorResponse{
				Message: "Insufficient permissions",
				Status:  fiber.StatusForbidden,
			})
		}

		c.Locals("user", claims)
		return c.Next()
	}
}

func parseBearerToken(c *fiber.Ctx) (jwt.MapClaims, error) {
	authHeader := c.Get("Authorization")
	if authHeader == "" {
		return nil, fiber.NewError(fiber.StatusUnauthorized, "Missing Authorization header")
	}

	tokenParts := strings.Split(authHeader, " ")
	if len(tokenParts) != 2 || !strings.EqualFold(tokenParts[0], "Bearer") {
		return nil, fiber.NewError(fiber.StatusUnauthorized, "Invalid Authorization header format")
	}

	token, err := jwt.Parse(tokenParts[1], func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fiber.NewError(fiber.StatusUnauthorized, "Unauthorized: Invalid signing method")
		}
		return []byte(os.Getenv("JWT_SECRET")), nil
	})
	if err != nil {
		return nil, fiber.NewError(fiber.StatusUnauthorized, "Unauthorized: Invalid token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, fiber.NewError(fiber.StatusUnauthorized, "Unauthorized: Invalid token")
	}

	return claims, nil
}

func boolClaim(claims jwt.MapClaims, key string) bool {
	value, ok := claims[key].(bool)
	return ok && value
}
