package middleware

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"edtech/config"
	"edtech/database"
	"edtech/models"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
)

// IdentityHeader carries the caller's user identifier on protected routes
const IdentityHeader = "X-User-ID"

// GenerateJWT issues a signed token carrying the user's identity
func GenerateJWT(userID uint, role string) (string, error) {
	claims := jwt.MapClaims{
		"userId": userID,
		"role":   role,
		"iat":    time.Now().Unix(),
		"exp":    time.Now().Add(24 * time.Hour).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(config.AppConfig.JWTKey))
}

// Authenticate resolves the caller's identity. The identity is carried
// either directly in the X-User-ID header or inside a Bearer token; it is
// then resolved against the user store and the user's role is stashed in
// the request context.
func Authenticate(c *fiber.Ctx) error {
	userID, err := callerID(c)
	if err != nil {
		return ErrorResponse(c, fiber.StatusUnauthorized, err.Error())
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error; err != nil {
		return ErrorResponse(c, fiber.StatusUnauthorized, "User not found!")
	}

	c.Locals("userId", user.ID)
	c.Locals("role", user.Role)
	return c.Next()
}

// callerID extracts the claimed user identifier from the request
func callerID(c *fiber.Ctx) (uint, error) {
	if raw := c.Get(IdentityHeader); raw != "" {
		id, err := strconv.ParseUint(strings.TrimSpace(raw), 10, 64)
		if err != nil || id == 0 {
			return 0, fmt.Errorf("invalid %s header", IdentityHeader)
		}
		return uint(id), nil
	}

	authHeader := c.Get("Authorization")
	if authHeader == "" {
		return 0, fmt.Errorf("missing identity: set %s or Authorization header", IdentityHeader)
	}
	if !strings.HasPrefix(authHeader, "Bearer ") {
		return 0, fmt.Errorf("invalid Authorization header format")
	}
	tokenString := authHeader[len("Bearer "):]

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(config.AppConfig.JWTKey), nil
	})
	if err != nil || !token.Valid {
		return 0, fmt.Errorf("invalid or expired token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || claims["userId"] == nil {
		return 0, fmt.Errorf("invalid token payload")
	}

	userID, ok := claims["userId"].(float64) // JWT numbers decode as float64
	if !ok || userID <= 0 {
		return 0, fmt.Errorf("invalid token payload")
	}
	return uint(userID), nil
}
