package services

import (
	"time"

	"ca-office-backend/config"
	"ca-office-backend/db/models"
	"ca-office-backend/engagements/repositories"
	"ca-office-backend/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// BuildEngagementFromRecurring produces the concrete engagement a recurring
// definition materialises for the period containing now. Pure; the caller
// persists it.
func BuildEngagementFromRecurring(rec *models.RecurringEngagement, now time.Time) models.Engagement {
	periodKey := utils.PeriodKey(now, string(rec.Frequency))

	dueDay := rec.DueDay
	if dueDay < 1 {
		dueDay = 20
	}
	// Clamp to the last day of the month so a DueDay of 31 works in
	// February.
	lastDay := time.Date(now.Year(), now.Month()+1, 0, 0, 0, 0, 0, now.Location()).Day()
	if dueDay > lastDay {
		dueDay = lastDay
	}
	dueDate := time.Date(now.Year(), now.Month(), dueDay, 0, 0, 0, 0, now.Location())

	return models.Engagement{
		ID:                    uuid.New(),
		ClientID:              rec.ClientID,
		Type:                  rec.Type,
		AssigneeID:            rec.AssigneeID,
		Status:                models.EngagementPending,
		Period:                periodKey,
		DueDate:               &dueDate,
		RecurringEngagementID: &rec.ID,
		CreatedBy:             rec.CreatedBy,
	}
}

// MaterialiseDueEngagements walks the active recurring definitions and
// creates one engagement per definition whose current period has not been
// materialised yet. Returns the number created.
func MaterialiseDueEngagements(db *gorm.DB, repo repositories.EngagementRepository, now time.Time) (int, error) {
	recs, err := repo.GetActiveRecurringEngagements()
	if err != nil {
		return 0, err
	}

	created := 0
	for i := range recs {
		rec := &recs[i]
		periodKey := utils.PeriodKey(now, string(rec.Frequency))
		if rec.LastMaterialisedPeriod == periodKey {
			continue
		}

		engagement := BuildEngagementFromRecurring(rec, now)

		tx := db.Begin()
		if tx.Error != nil {
			return created, tx.Error
		}
		if err := repo.MaterialiseRecurring(tx, &engagement, rec.ID, periodKey); err != nil {
			tx.Rollback()
			config.Logger.Error("Failed to materialise recurring engagement",
				zap.String("recurringID", rec.ID.String()),
				zap.String("period", periodKey),
				zap.Error(err),
			)
			continue
		}
		if err := tx.Commit().Error; err != nil {
			tx.Rollback()
			config.Logger.Error("Failed to commit recurring engagement materialisation",
				zap.String("recurringID", rec.ID.String()),
				zap.Error(err),
			)
			continue
		}

		created++
	}

	return created, nil
}
