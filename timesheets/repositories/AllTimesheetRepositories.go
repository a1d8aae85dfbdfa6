package repositories

import (
	"time"

	"ca-office-backend/db/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type TimesheetRepository interface {
	CreateEntry(entry *models.TimesheetEntry) (*models.TimesheetEntry, error)
	UpdateEntry(entry *models.TimesheetEntry) (*models.TimesheetEntry, error)
	GetEntryByID(id uuid.UUID) (*models.TimesheetEntry, error)
	GetFilteredEntries(pageSize, offset int, filters map[string]string) ([]models.TimesheetEntry, int64, error)
	DeleteEntry(id uuid.UUID) error

	// GetUnbilledByClient collects unbilled entries across all of a
	// client's engagements, oldest first.
	GetUnbilledByClient(clientID uuid.UUID) ([]models.TimesheetEntry, error)
	MarkBilled(tx *gorm.DB, entryIDs []uuid.UUID, invoiceID uuid.UUID) error
}

type timesheetRepository struct {
	db *gorm.DB
}

func NewTimesheetRepository(db *gorm.DB) TimesheetRepository {
	return &timesheetRepository{db: db}
}

func (r *timesheetRepository) CreateEntry(entry *models.TimesheetEntry) (*models.TimesheetEntry, error) {
	if err := r.db.Create(entry).Error; err != nil {
		return nil, err
	}
	return entry, nil
}

func (r *timesheetRepository) UpdateEntry(entry *models.TimesheetEntry) (*models.TimesheetEntry, error) {
	if err := r.db.Save(entry).Error; err != nil {
		return nil, err
	}
	return entry, nil
}

func (r *timesheetRepository) GetEntryByID(id uuid.UUID) (*models.TimesheetEntry, error) {
	var entry models.TimesheetEntry
	if err := r.db.First(&entry, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &entry, nil
}

func (r *timesheetRepository) GetFilteredEntries(pageSize, offset int, filters map[string]string) ([]models.TimesheetEntry, int64, error) {
	var entries []models.TimesheetEntry
	var total int64

	query := r.db.Model(&models.TimesheetEntry{})

	if employeeID, ok := filters["employee_id"]; ok && employeeID != "" {
		query = query.Where("employee_id = ?", employeeID)
	}
	if engagementID, ok := filters["engagement_id"]; ok && engagementID != "" {
		query = query.Where("engagement_id = ?", engagementID)
	}
	if billed, ok := filters["billed"]; ok && billed != "" {
		query = query.Where("billed = ?", billed == "true")
	}
	if from, ok := filters["from"]; ok && from != "" {
		if t, err := time.Parse("2006-01-02", from); err == nil {
			query = query.Where("work_date >= ?", t)
		}
	}
	if to, ok := filters["to"]; ok && to != "" {
		if t, err := time.Parse("2006-01-02", to); err == nil {
			query = query.Where("work_date <= ?", t)
		}
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if err := query.Order("work_date DESC").
		Limit(pageSize).
		Offset(offset).
		Find(&entries).Error; err != nil {
		return nil, 0, err
	}

	return entries, total, nil
}

func (r *timesheetRepository) DeleteEntry(id uuid.UUID) error {
	return r.db.Delete(&models.TimesheetEntry{}, "id = ?", id).Error
}

func (r *timesheetRepository) GetUnbilledByClient(clientID uuid.UUID) ([]models.TimesheetEntry, error) {
	var entries []models.TimesheetEntry
	err := r.db.
		Joins("JOIN engagements ON engagements.id = timesheet_entries.engagement_id").
		Where("engagements.client_id = ? AND timesheet_entries.billed = ?", clientID, false).
		Order("timesheet_entries.work_date ASC").
		Find(&entries).Error
	if err != nil {
		return nil, err
	}
	return entries, nil
}

func (r *timesheetRepository) MarkBilled(tx *gorm.DB, entryIDs []uuid.UUID, invoiceID uuid.UUID) error {
	if len(entryIDs) == 0 {
		return nil
	}
	return tx.Model(&models.TimesheetEntry{}).
		Where("id IN ?", entryIDs).
		Updates(map[string]interface{}{
			"billed":     true,
			"invoice_id": invoiceID,
		}).Error
}
