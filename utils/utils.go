package utils

import (
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"transvert-logistics/constants"
	"transvert-logistics/models/user"
	"transvert-logistics/types"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GenerateTrackingCode builds a guide number: the "G-" prefix the labels
// carry plus 16 uppercase hex characters from crypto/rand, which keeps the
// collision probability negligible at scale.
func GenerateTrackingCode() string {
	bytes := make([]byte, 8)
	rand.Read(bytes)
	return "G-" + strings.ToUpper(hex.EncodeToString(bytes))
}

// ToFloat coerces a loosely typed JSON value (number, numeric string, nil)
// into a float64. Anything that does not parse counts as zero.
func ToFloat(v interface{}) float64 {
	switch value := v.(type) {
	case float64:
		return value
	case float32:
		return float64(value)
	case int:
		return float64(value)
	case int64:
		return float64(value)
	case json.Number:
		f, err := value.Float64()
		if err != nil {
			return 0
		}
		return f
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
		if err != nil {
			return 0
		}
		return f
	default:
		return 0
	}
}

// GetUserByID retrieves a user by primary key.
func GetUserByID(db *gorm.DB, id uint) (*user.User, error) {
	if id == 0 {
		return nil, errors.New("user id cannot be zero")
	}

	var userModel user.User
	if err := db.First(&userModel, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("user not found")
		}
		return nil, fmt.Errorf("database error: %w", err)
	}

	return &userModel, nil
}

// CurrentUser resolves the authenticated user from the token claims the auth
// middleware stored on the request context.
func CurrentUser(c *fiber.Ctx, db *gorm.DB) (*user.User, error) {
	claims, ok := c.Locals("user").(jwt.MapClaims)
	if !ok {
		return nil, errors.New("invalid user claims")
	}

	rawID, ok := claims[constants.ClaimUserID].(float64)
	if !ok || rawID <= 0 {
		return nil, errors.New("user id not found in token")
	}

	return GetUserByID(db, uint(rawID))
}

// GenerateAccessToken signs an HMAC access token carrying the role claims
// the middleware checks.
func GenerateAccessToken(u *user.User) (string, error) {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		return "", errors.New("JWT_SECRET is not set")
	}

	nowTime := time.Now()
	claims := jwt.MapClaims{
		constants.ClaimUserID:      u.ID,
		constants.ClaimUsername:    u.Username,
		constants.ClaimIsStaff:     u.IsStaff,
		constants.ClaimIsSuperuser: u.IsSuperuser,
		constants.ClaimSessionID:   uuid.New().String(),
		"iat":                      nowTime.Unix(),
		"exp":                      nowTime.Add(24 * time.Hour).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// CreateSanitizedLogEntry creates a deep copied log entry for the async
// logger, so the fasthttp buffers can be reused safely after the handler
// returns.
func CreateSanitizedLogEntry(c *fiber.Ctx) types.LogEntry {
	method := string([]byte(c.Method()))
	url := string([]byte(c.OriginalURL()))
	requestBody := string(append([]byte(nil), c.Body()...))
	responseBody := string(append([]byte(nil), c.Response().Body()...))

	requestHeaders := make([]byte, len(c.Request().Header.Header()))
	copy(requestHeaders, c.Request().Header.Header())

	responseHeaders := make([]byte, len(c.Response().Header.Header()))
	copy(responseHeaders, c.Response().Header.Header())

	return types.LogEntry{
		Method:          method,
		URL:             url,
		RequestBody:     requestBody,
		ResponseBody:    responseBody,
		RequestHeaders:  string(requestHeaders),
		ResponseHeaders: string(responseHeaders),
		StatusCode:      c.Response().StatusCode(),
		CreatedAt:       time.Now(),
	}
}
