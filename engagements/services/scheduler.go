package services

import (
	"ca-office-backend/config"
	"ca-office-backend/engagements/repositories"
	"ca-office-backend/utils"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// StartEngagementScheduler materialises recurring engagements daily at 2 AM.
// Running daily is idempotent: a period already materialised is skipped.
func StartEngagementScheduler(db *gorm.DB, repo repositories.EngagementRepository) *cron.Cron {
	c := cron.New()

	c.AddFunc("0 2 * * *", func() {
		now := utils.Today()
		created, err := MaterialiseDueEngagements(db, repo, now)
		if err != nil {
			config.Logger.Error("Recurring engagement materialisation run failed", zap.Error(err))
			return
		}
		if created > 0 {
			config.Logger.Info("Materialised recurring engagements", zap.Int("created", created))
		}
	})

	c.Start()
	return c
}
