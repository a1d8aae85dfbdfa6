package repositories

import (
	"ca-office-backend/db/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type FirmRepository interface {
	CreateFirm(firm *models.Firm) (*models.Firm, error)
	UpdateFirm(firm *models.Firm) (*models.Firm, error)
	GetFirmByID(id uuid.UUID) (*models.Firm, error)
	GetFirmByName(name string) (*models.Firm, error)
	GetAllFirms() ([]models.Firm, error)
	DeactivateFirm(id uuid.UUID) error
}

type firmRepository struct {
	db *gorm.DB
}

func NewFirmRepository(db *gorm.DB) FirmRepository {
	return &firmRepository{db: db}
}

func (r *firmRepository) CreateFirm(firm *models.Firm) (*models.Firm, error) {
	if err := r.db.Create(firm).Error; err != nil {
		return nil, err
	}
	return firm, nil
}

func (r *firmRepository) UpdateFirm(firm *models.Firm) (*models.Firm, error) {
	if err := r.db.Save(firm).Error; err != nil {
		return nil, err
	}
	return firm, nil
}

func (r *firmRepository) GetFirmByID(id uuid.UUID) (*models.Firm, error) {
	var firm models.Firm
	if err := r.db.First(&firm, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &firm, nil
}

func (r *firmRepository) GetFirmByName(name string) (*models.Firm, error) {
	var firm models.Firm
	if err := r.db.First(&firm, "LOWER(name) = LOWER(?)", name).Error; err != nil {
		return nil, err
	}
	return &firm, nil
}

func (r *firmRepository) GetAllFirms() ([]models.Firm, error) {
	var firms []models.Firm
	if err := r.db.Order("name ASC").Find(&firms).Error; err != nil {
		return nil, err
	}
	return firms, nil
}

func (r *firmRepository) DeactivateFirm(id uuid.UUID) error {
	return r.db.Model(&models.Firm{}).Where("id = ?", id).Update("active", false).Error
}
