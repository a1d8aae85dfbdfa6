package repositories

import (
	"ca-office-backend/db/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type EngagementRepository interface {
	CreateEngagement(engagement *models.Engagement) (*models.Engagement, error)
	UpdateEngagement(engagement *models.Engagement) (*models.Engagement, error)
	GetEngagementByID(id uuid.UUID) (*models.Engagement, error)
	GetEngagementsByClient(clientID uuid.UUID) ([]models.Engagement, error)
	GetFilteredEngagements(pageSize, offset int, filters map[string]string) ([]models.Engagement, int64, error)
	DeleteEngagement(id uuid.UUID) error
	BulkCreateEngagements(tx *gorm.DB, engagements []models.Engagement) error
	GetAllEngagements() ([]models.Engagement, error)
	LogBulkUploadEngagementErrors(rows []models.BulkUploadErrorEngagement) error

	// Recurring definitions
	CreateRecurringEngagement(rec *models.RecurringEngagement) (*models.RecurringEngagement, error)
	UpdateRecurringEngagement(rec *models.RecurringEngagement) (*models.RecurringEngagement, error)
	GetRecurringEngagementByID(id uuid.UUID) (*models.RecurringEngagement, error)
	GetActiveRecurringEngagements() ([]models.RecurringEngagement, error)
	GetAllRecurringEngagements() ([]models.RecurringEngagement, error)
	BulkCreateRecurringEngagements(tx *gorm.DB, recs []models.RecurringEngagement) error
	MaterialiseRecurring(tx *gorm.DB, engagement *models.Engagement, recurringID uuid.UUID, periodKey string) error
}

type engagementRepository struct {
	db *gorm.DB
}

func NewEngagementRepository(db *gorm.DB) EngagementRepository {
	return &engagementRepository{db: db}
}

func (r *engagementRepository) CreateEngagement(engagement *models.Engagement) (*models.Engagement, error) {
	if err := r.db.Create(engagement).Error; err != nil {
		return nil, err
	}
	return engagement, nil
}

func (r *engagementRepository) UpdateEngagement(engagement *models.Engagement) (*models.Engagement, error) {
	if err := r.db.Save(engagement).Error; err != nil {
		return nil, err
	}
	return engagement, nil
}

func (r *engagementRepository) GetEngagementByID(id uuid.UUID) (*models.Engagement, error) {
	var engagement models.Engagement
	if err := r.db.First(&engagement, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &engagement, nil
}

func (r *engagementRepository) GetEngagementsByClient(clientID uuid.UUID) ([]models.Engagement, error) {
	var engagements []models.Engagement
	err := r.db.Where("client_id = ?", clientID).Order("created_at DESC").Find(&engagements).Error
	if err != nil {
		return nil, err
	}
	return engagements, nil
}

func (r *engagementRepository) GetAllEngagements() ([]models.Engagement, error) {
	var engagements []models.Engagement
	if err := r.db.Find(&engagements).Error; err != nil {
		return nil, err
	}
	return engagements, nil
}

func (r *engagementRepository) GetFilteredEngagements(pageSize, offset int, filters map[string]string) ([]models.Engagement, int64, error) {
	var engagements []models.Engagement
	var total int64

	db := r.db.Model(&models.Engagement{})

	if clientID, ok := filters["client_id"]; ok && clientID != "" {
		db = db.Where("client_id = ?", clientID)
	}
	if assigneeID, ok := filters["assignee_id"]; ok && assigneeID != "" {
		db = db.Where("assignee_id = ?", assigneeID)
	}
	if status, ok := filters["status"]; ok && status != "" {
		db = db.Where("status = ?", status)
	}
	if engagementType, ok := filters["type"]; ok && engagementType != "" {
		db = db.Where("type = ?", engagementType)
	}
	if period, ok := filters["period"]; ok && period != "" {
		db = db.Where("period = ?", period)
	}
	if dueBefore, ok := filters["due_before"]; ok && dueBefore != "" {
		db = db.Where("due_date <= ?", dueBefore)
	}

	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := db.Order("due_date ASC NULLS LAST").Limit(pageSize).Offset(offset).Find(&engagements).Error
	if err != nil {
		return nil, 0, err
	}

	return engagements, total, nil
}

func (r *engagementRepository) DeleteEngagement(id uuid.UUID) error {
	return r.db.Delete(&models.Engagement{}, "id = ?", id).Error
}

func (r *engagementRepository) BulkCreateEngagements(tx *gorm.DB, engagements []models.Engagement) error {
	if len(engagements) == 0 {
		return nil
	}
	return tx.CreateInBatches(engagements, 100).Error
}

func (r *engagementRepository) BulkCreateRecurringEngagements(tx *gorm.DB, recs []models.RecurringEngagement) error {
	if len(recs) == 0 {
		return nil
	}
	return tx.CreateInBatches(recs, 100).Error
}

func (r *engagementRepository) LogBulkUploadEngagementErrors(rows []models.BulkUploadErrorEngagement) error {
	if len(rows) == 0 {
		return nil
	}
	return r.db.CreateInBatches(rows, 100).Error
}

func (r *engagementRepository) CreateRecurringEngagement(rec *models.RecurringEngagement) (*models.RecurringEngagement, error) {
	if err := r.db.Create(rec).Error; err != nil {
		return nil, err
	}
	return rec, nil
}

func (r *engagementRepository) UpdateRecurringEngagement(rec *models.RecurringEngagement) (*models.RecurringEngagement, error) {
	if err := r.db.Save(rec).Error; err != nil {
		return nil, err
	}
	return rec, nil
}

func (r *engagementRepository) GetRecurringEngagementByID(id uuid.UUID) (*models.RecurringEngagement, error) {
	var rec models.RecurringEngagement
	if err := r.db.First(&rec, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &rec, nil
}

func (r *engagementRepository) GetActiveRecurringEngagements() ([]models.RecurringEngagement, error) {
	var recs []models.RecurringEngagement
	if err := r.db.Where("active = ?", true).Find(&recs).Error; err != nil {
		return nil, err
	}
	return recs, nil
}

func (r *engagementRepository) GetAllRecurringEngagements() ([]models.RecurringEngagement, error) {
	var recs []models.RecurringEngagement
	if err := r.db.Order("created_at DESC").Find(&recs).Error; err != nil {
		return nil, err
	}
	return recs, nil
}

// MaterialiseRecurring writes the materialised engagement and advances the
// definition's period marker in the same transaction, so a crash between the
// two cannot double-create a period.
func (r *engagementRepository) MaterialiseRecurring(tx *gorm.DB, engagement *models.Engagement, recurringID uuid.UUID, periodKey string) error {
	if err := tx.Create(engagement).Error; err != nil {
		return err
	}
	return tx.Model(&models.RecurringEngagement{}).
		Where("id = ?", recurringID).
		Update("last_materialised_period", periodKey).Error
}
