package controllers

import (
	"time"

	"ca-office-backend/config"
	"ca-office-backend/employees/repositories"
	"ca-office-backend/utils"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

func (ec *EmployeeController) LoginEmployeeController(c *fiber.Ctx) error {
	type LoginRequest struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}

	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		config.Logger.Error("Error parsing login request body", zap.Error(err))
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request",
			"data":    nil,
			"error":   "Invalid request format.",
		})
	}

	employee, err := ec.EmployeeRepo.GetEmployeeByEmail(req.Email)
	if err != nil || !repositories.CheckPasswordHash(req.Password, employee.Password) {
		if err != nil {
			config.Logger.Warn("Login attempt: Employee not found or database error",
				zap.String("email", req.Email),
				zap.Error(err),
			)
		} else {
			config.Logger.Warn("Login attempt: Invalid password",
				zap.String("email", req.Email),
			)
		}
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"message": "Authentication failed",
			"data":    nil,
			"error":   "Invalid email or password.",
		})
	}

	if !employee.Active {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"message": "Account disabled",
			"data":    nil,
			"error":   "This account has been deactivated.",
		})
	}

	accessToken, err := ec.PasetoMaker.CreateToken(employee.Email, 15*time.Minute)
	if err != nil {
		config.Logger.Error("Error generating access token",
			zap.String("email", employee.Email),
			zap.Error(err),
		)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Something went wrong",
			"error":   "An internal server error occurred during token generation.",
		})
	}

	refreshToken, err := ec.PasetoMaker.CreateToken(employee.Email, 7*24*time.Hour)
	if err != nil {
		config.Logger.Error("Error generating refresh token",
			zap.String("email", employee.Email),
			zap.Error(err),
		)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Something went wrong",
			"error":   "An internal server error occurred during token generation.",
		})
	}

	err = ec.RedisClient.Set(ec.Ctx, "refresh_token:"+refreshToken, employee.ID.String(), 7*24*time.Hour).Err()
	if err != nil {
		config.Logger.Error("Error storing refresh token in Redis",
			zap.String("email", employee.Email),
			zap.Error(err),
		)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Something went wrong",
			"error":   "An internal server error occurred during session management.",
		})
	}

	if err := ec.EmployeeRepo.TouchLastLogin(employee.ID, utils.Today()); err != nil {
		config.Logger.Warn("Failed to record last login time",
			zap.String("email", employee.Email),
			zap.Error(err),
		)
	}

	c.Cookie(&fiber.Cookie{
		Name:     "access_token",
		Value:    accessToken,
		Expires:  time.Now().Add(15 * time.Minute),
		HTTPOnly: true,
		SameSite: "Lax",
		Path:     "/",
	})

	c.Cookie(&fiber.Cookie{
		Name:     "refresh_token",
		Value:    refreshToken,
		Expires:  time.Now().Add(7 * 24 * time.Hour),
		HTTPOnly: true,
		SameSite: "Lax",
		Path:     "/",
	})

	return c.JSON(fiber.Map{
		"message": "Login successful",
		"data": fiber.Map{
			"employee": employee,
		},
		"error": nil,
	})
}

func (ec *EmployeeController) LogoutEmployeeController(c *fiber.Ctx) error {
	refreshToken := c.Cookies("refresh_token")
	if refreshToken != "" {
		if err := ec.RedisClient.Del(ec.Ctx, "refresh_token:"+refreshToken).Err(); err != nil {
			config.Logger.Error("Failed to revoke refresh token", zap.Error(err))
		}
	}

	c.Cookie(&fiber.Cookie{
		Name:     "access_token",
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
		Path:     "/",
	})
	c.Cookie(&fiber.Cookie{
		Name:     "refresh_token",
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
		Path:     "/",
	})

	return c.JSON(fiber.Map{
		"message": "Logged out successfully",
	})
}
