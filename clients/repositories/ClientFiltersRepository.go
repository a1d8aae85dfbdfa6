package repositories

import (
	"strings"
	"time"

	"ca-office-backend/config"
	"ca-office-backend/db/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type clientQueryBuilder struct {
	db      *gorm.DB
	filters map[string]string
}

func newClientQueryBuilder(db *gorm.DB, filters map[string]string) *clientQueryBuilder {
	return &clientQueryBuilder{db: db, filters: filters}
}

func (qb *clientQueryBuilder) applyBasicFilters() *clientQueryBuilder {
	db := qb.db.Model(&models.Client{})

	if active, ok := qb.filters["active"]; ok && active != "" {
		db = db.Where("active = ?", strings.ToLower(active) == "true")
	}
	if category, ok := qb.filters["category"]; ok && category != "" {
		db = db.Where("category = ?", category)
	}
	if partnerID, ok := qb.filters["partner_id"]; ok && partnerID != "" {
		db = db.Where("partner_id = ?", partnerID)
	}
	if firmID, ok := qb.filters["firm_id"]; ok && firmID != "" {
		db = db.Where("firm_id = ?", firmID)
	}
	if q, ok := qb.filters["q"]; ok && q != "" {
		like := "%" + strings.ToLower(q) + "%"
		db = db.Where("LOWER(name) LIKE ? OR LOWER(pan) LIKE ? OR LOWER(mail_id) LIKE ?", like, like, like)
	}

	qb.db = db
	return qb
}

func (qb *clientQueryBuilder) applyDateRangeFilter() (*gorm.DB, error) {
	db := qb.db
	startDateStr := qb.filters["start_date"]
	endDateStr := qb.filters["end_date"]

	var startDate, endDate time.Time
	var err error

	if startDateStr != "" {
		startDate, err = time.Parse("2006-01-02", startDateStr)
		if err != nil {
			return nil, err
		}
	}

	if endDateStr != "" {
		endDate, err = time.Parse("2006-01-02", endDateStr)
		if err != nil {
			return nil, err
		}
		endDate = endDate.Add(24*time.Hour - time.Second)
	}

	if startDateStr != "" && endDateStr != "" {
		db = db.Where("created_at BETWEEN ? AND ?", startDate, endDate)
	} else if startDateStr != "" {
		db = db.Where("created_at >= ?", startDate)
	} else if endDateStr != "" {
		db = db.Where("created_at <= ?", endDate)
	}

	return db, nil
}

func (cr *clientRepository) GetFilteredClients(limit, offset int, filters map[string]string) ([]models.Client, int64, error) {
	var clients []models.Client
	var total int64

	db, err := newClientQueryBuilder(cr.DB, filters).applyBasicFilters().applyDateRangeFilter()
	if err != nil {
		config.Logger.Error("Invalid date filter for clients", zap.Error(err))
		return nil, 0, err
	}

	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if err := db.Order("last_updated DESC, created_at DESC").Limit(limit).Offset(offset).Find(&clients).Error; err != nil {
		return nil, 0, err
	}

	return clients, total, nil
}
