package auth

import (
	"errors"
	"fmt"

	"transvert-logistics/constants"
	"transvert-logistics/logger"
	userModel "transvert-logistics/models/user"
	"transvert-logistics/types"
	authTypes "transvert-logistics/types/auth"
	"transvert-logistics/utils"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// AuthController handles registration, login and logout.
type AuthController struct {
	DB             *gorm.DB
	loggerInstance *logger.AsyncLogger
}

func NewAuthController(db *gorm.DB, asyncLogger *logger.AsyncLogger) *AuthController {
	return &AuthController{DB: db, loggerInstance: asyncLogger}
}

// Helper function to send response and log in one call
func (ac *AuthController) sendResponseWithLog(c *fiber.Ctx, status int, response types.ApiResponse) error {
	result := c.Status(status).JSON(response)
	ac.loggerInstance.Log(utils.CreateSanitizedLogEntry(c))
	return result
}

// Register creates a local customer account.
func (ac *AuthController) Register(c *fiber.Ctx) error {
	var req authTypes.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		logger.Error("Failed to parse request body", err)
		return ac.sendResponseWithLog(c, fiber.StatusBadRequest, types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid request body",
			Data:    nil,
		})
	}

	if err := req.Validate(); err != nil {
		return ac.sendResponseWithLog(c, fiber.StatusBadRequest, types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: err.Error(),
			Data:    nil,
		})
	}

	var existing userModel.User
	err := ac.DB.Where("username = ?", req.Username).First(&existing).Error
	if err == nil {
		return ac.sendResponseWithLog(c, fiber.StatusConflict, types.ApiResponse{
			Status:  fiber.StatusConflict,
			Message: "Username already taken",
			Data:    nil,
		})
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		logger.Error("Database error while checking existing user", err)
		return ac.sendResponseWithLog(c, fiber.StatusInternalServerError, types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Database error",
			Data:    nil,
		})
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		logger.Error("Failed to hash password", err)
		return ac.sendResponseWithLog(c, fiber.StatusInternalServerError, types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Failed to register user",
			Data:    nil,
		})
	}

	newUser := userModel.User{
		Username:     req.Username,
		PasswordHash: string(hash),
	}
	if req.Email != "" {
		email := req.Email
		newUser.Email = &email
	}

	if err := ac.DB.Create(&newUser).Error; err != nil {
		logger.Error("Failed to create user", err)
		return ac.sendResponseWithLog(c, fiber.StatusInternalServerError, types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Failed to register user",
			Data:    nil,
		})
	}

	logger.Success(fmt.Sprintf("User %s registered", newUser.Username))
	return ac.sendResponseWithLog(c, fiber.StatusCreated, types.ApiResponse{
		Status:  fiber.StatusCreated,
		Message: "Registration successful",
		Data:    newUser,
	})
}

// Login verifies the credentials and issues an access token together with
// the role-based panel redirect target.
func (ac *AuthController) Login(c *fiber.Ctx) error {
	var req authTypes.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		logger.Error("Failed to parse request body", err)
		return ac.sendResponseWithLog(c, fiber.StatusBadRequest, types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid request body",
			Data:    nil,
		})
	}

	if err := req.Validate(); err != nil {
		return ac.sendResponseWithLog(c, fiber.StatusBadRequest, types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: err.Error(),
			Data:    nil,
		})
	}

	var account userModel.User
	if err := ac.DB.Where("username = ?", req.Username).First(&account).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ac.sendResponseWithLog(c, fiber.StatusUnauthorized, types.ApiResponse{
				Status:  fiber.StatusUnauthorized,
				Message: "Usuario o contraseña incorrectos",
				Data:    nil,
			})
		}
		logger.Error("Database error during login", err)
		return ac.sendResponseWithLog(c, fiber.StatusInternalServerError, types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Database error",
			Data:    nil,
		})
	}

	if err := bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(req.Password)); err != nil {
		return ac.sendResponseWithLog(c, fiber.StatusUnauthorized, types.ApiResponse{
			Status:  fiber.StatusUnauthorized,
			Message: "Usuario o contraseña incorrectos",
			Data:    nil,
		})
	}

	token, err := utils.GenerateAccessToken(&account)
	if err != nil {
		logger.Error("Failed to sign access token", err)
		return ac.sendResponseWithLog(c, fiber.StatusInternalServerError, types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Failed to issue token",
			Data:    nil,
		})
	}

	logger.Success(fmt.Sprintf("User %s logged in as %s", account.Username, account.Role()))
	return ac.sendResponseWithLog(c, fiber.StatusOK, types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Login successful",
		Token:   token,
		Data: authTypes.LoginData{
			Token:    token,
			Redirect: redirectFor(&account),
			User:     account,
		},
	})
}

// LogOut is stateless on the server side: the client discards its token.
func (ac *AuthController) LogOut(c *fiber.Ctx) error {
	return ac.sendResponseWithLog(c, fiber.StatusOK, types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Logout successful",
		Data:    nil,
	})
}

// Profile returns the authenticated user's account.
func (ac *AuthController) Profile(c *fiber.Ctx) error {
	account, err := utils.CurrentUser(c, ac.DB)
	if err != nil {
		return ac.sendResponseWithLog(c, fiber.StatusUnauthorized, types.ApiResponse{
			Status:  fiber.StatusUnauthorized,
			Message: err.Error(),
			Data:    nil,
		})
	}

	return ac.sendResponseWithLog(c, fiber.StatusOK, types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Profile retrieved successfully",
		Data:    account,
	})
}

func redirectFor(u *userModel.User) string {
	switch {
	case u.IsSuperuser:
		return constants.RedirectSuperadminPanel
	case u.IsStaff:
		return constants.RedirectStaffPanel
	default:
		return constants.RedirectClientDashboard
	}
}
