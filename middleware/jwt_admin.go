package middleware

import (
	"fmt"
	"strings"
	"time"

	"stride/logger"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
)

// JWTAdminMiddleware requires a Bearer token signed with secret and carrying a
// username claim. An empty secret disables the check.
func JWTAdminMiddleware(secret string) fiber.Handler {
	log := logger.GetLogger().WithComponent("middleware")

	return func(c *fiber.Ctx) error {
		if secret == "" {
			return c.Next()
		}

		authHeader := c.Get("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"success": false,
				"message": "Bearer token required",
			})
		}

		tokenStr := strings.TrimPrefix(authHeader, "Bearer ")

		token, err := jwt.Parse(tokenStr, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
			}
			return []byte(secret), nil
		})

		if err != nil || !token.Valid {
			log.WithError(err).Warn("invalid admin token")
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"success": false,
				"message": "Invalid token",
			})
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		username, _ := claims["username"].(string)
		if !ok || username == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"success": false,
				"message": "Token has no username",
			})
		}

		c.Locals("username", username)
		log.WithFields(logger.Fields{"username": username, "path": c.Path()}).Info("admin request")

		return c.Next()
	}
}

// IssueAdminToken signs an HS256 token for username valid for ttl.
func IssueAdminToken(secret, username string, ttl time.Duration) (string, error) {
	if secret == "" {
		return "", fmt.Errorf("admin secret is not configured")
	}
	claims := jwt.MapClaims{
		"username": username,
		"exp":      time.Now().Add(ttl).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}
