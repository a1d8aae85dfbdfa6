package controllers

import (
	"encoding/json"
	"fmt"

	"ca-office-backend/clients/services"
	"ca-office-backend/config"
	"ca-office-backend/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

type commitImportRequest struct {
	SessionID string              `json:"session_id"`
	Mode      services.CommitMode `json:"mode"`
}

// CommitClientImport applies a previously validated import session in a
// single transaction. The whole session commits or none of it does.
func (cc *ClientController) CommitClientImport(c *fiber.Ctx) error {
	var req commitImportRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	if req.SessionID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "session_id is required",
		})
	}

	switch req.Mode {
	case services.SkipDuplicates, services.OverwriteDuplicates:
	case "":
		req.Mode = services.SkipDuplicates
	default:
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": fmt.Sprintf("Unknown commit mode %q", req.Mode),
		})
	}

	sessionKey := services.SessionCacheKey(req.SessionID)
	sessionData, err := cc.RedisClient.Get(cc.Ctx, sessionKey).Result()
	if err == redis.Nil {
		return c.Status(fiber.StatusGone).JSON(fiber.Map{
			"message": "Import session not found or expired. Upload the file again.",
		})
	} else if err != nil {
		config.Logger.Error("Failed to load import session from Redis", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Failed to load import session",
		})
	}

	var session services.ImportSession
	if err := json.Unmarshal([]byte(sessionData), &session); err != nil {
		config.Logger.Error("Failed to deserialize import session",
			zap.String("session_id", req.SessionID),
			zap.Error(err),
		)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Import session is corrupted. Upload the file again.",
		})
	}

	// Overwrite targets are resolved against the state of the table now,
	// not at validation time.
	existing, err := cc.ClientRepo.GetAllClients()
	if err != nil {
		config.Logger.Error("Failed to load clients for commit", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Failed to load existing clients",
		})
	}

	creates, updates, result := services.PlanCommit(session.Rows, req.Mode, existing, session.CreatedBy, utils.Today())

	if len(creates) > 0 || len(updates) > 0 {
		tx := cc.DB.Begin()
		if tx.Error != nil {
			config.Logger.Error("Failed to begin transaction for import commit", zap.Error(tx.Error))
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"message": "Failed to begin database transaction",
			})
		}

		if err := cc.ClientRepo.BulkCreateClients(tx, creates); err != nil {
			tx.Rollback()
			config.Logger.Error("Critical: Transaction rolled back due to BulkCreateClients error", zap.Error(err))
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"message": fmt.Sprintf("Failed to insert clients: %v. Database changes rolled back.", err.Error()),
			})
		}

		if err := cc.ClientRepo.BulkUpdateClients(tx, updates); err != nil {
			tx.Rollback()
			config.Logger.Error("Critical: Transaction rolled back due to BulkUpdateClients error", zap.Error(err))
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"message": fmt.Sprintf("Failed to update clients: %v. Database changes rolled back.", err.Error()),
			})
		}

		if err := tx.Commit().Error; err != nil {
			tx.Rollback()
			config.Logger.Error("Critical: Transaction rolled back due to commit error for client import", zap.Error(err))
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"message": fmt.Sprintf("Failed to commit client import: %v. Database changes rolled back.", err.Error()),
			})
		}

		// Index only after the transaction lands; bleve is eventually
		// consistent with the database.
		if cc.BleveRepo != nil {
			if err := cc.BleveRepo.IndexExistingClients(append(creates, updates...)); err != nil {
				config.Logger.Error("Warning: Failed to index imported clients in Bleve", zap.Error(err))
			}
		}

		utils.InvalidateCacheAsync("clients")
	}

	if err := cc.RedisClient.Del(cc.Ctx, sessionKey).Err(); err != nil {
		config.Logger.Warn("Failed to delete committed import session from Redis",
			zap.String("session_id", req.SessionID),
			zap.Error(err),
		)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Import committed successfully",
		"result":  result,
	})
}
