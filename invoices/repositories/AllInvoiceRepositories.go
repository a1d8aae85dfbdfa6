package repositories

import (
	"fmt"
	"time"

	"ca-office-backend/db/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type InvoiceRepository interface {
	CreateInvoice(tx *gorm.DB, invoice *models.Invoice) (*models.Invoice, error)
	UpdateInvoice(invoice *models.Invoice) (*models.Invoice, error)
	GetInvoiceByID(id uuid.UUID) (*models.Invoice, error)
	GetFilteredInvoices(pageSize, offset int, filters map[string]string) ([]models.Invoice, int64, error)
	GetAllInvoices() ([]models.Invoice, error)
	NextInvoiceNumber(now time.Time) (string, error)

	// Tax rate master
	CreateTaxRate(rate *models.TaxRate) (*models.TaxRate, error)
	GetTaxRateByID(id uuid.UUID) (*models.TaxRate, error)
	GetActiveTaxRates() ([]models.TaxRate, error)
	DeactivateTaxRate(id uuid.UUID) error
}

type invoiceRepository struct {
	db *gorm.DB
}

func NewInvoiceRepository(db *gorm.DB) InvoiceRepository {
	return &invoiceRepository{db: db}
}

func (r *invoiceRepository) CreateInvoice(tx *gorm.DB, invoice *models.Invoice) (*models.Invoice, error) {
	if err := tx.Create(invoice).Error; err != nil {
		return nil, err
	}
	return invoice, nil
}

func (r *invoiceRepository) UpdateInvoice(invoice *models.Invoice) (*models.Invoice, error) {
	if err := r.db.Save(invoice).Error; err != nil {
		return nil, err
	}
	return invoice, nil
}

func (r *invoiceRepository) GetInvoiceByID(id uuid.UUID) (*models.Invoice, error) {
	var invoice models.Invoice
	if err := r.db.Preload("LineItems").First(&invoice, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &invoice, nil
}

func (r *invoiceRepository) GetFilteredInvoices(pageSize, offset int, filters map[string]string) ([]models.Invoice, int64, error) {
	var invoices []models.Invoice
	var total int64

	db := r.db.Model(&models.Invoice{})

	if clientID, ok := filters["client_id"]; ok && clientID != "" {
		db = db.Where("client_id = ?", clientID)
	}
	if firmID, ok := filters["firm_id"]; ok && firmID != "" {
		db = db.Where("firm_id = ?", firmID)
	}
	if status, ok := filters["status"]; ok && status != "" {
		db = db.Where("status = ?", status)
	}
	if from, ok := filters["issued_after"]; ok && from != "" {
		db = db.Where("issue_date >= ?", from)
	}
	if to, ok := filters["issued_before"]; ok && to != "" {
		db = db.Where("issue_date <= ?", to)
	}

	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := db.Preload("LineItems").Order("created_at DESC").Limit(pageSize).Offset(offset).Find(&invoices).Error
	if err != nil {
		return nil, 0, err
	}

	return invoices, total, nil
}

func (r *invoiceRepository) GetAllInvoices() ([]models.Invoice, error) {
	var invoices []models.Invoice
	if err := r.db.Order("created_at DESC").Find(&invoices).Error; err != nil {
		return nil, err
	}
	return invoices, nil
}

// NextInvoiceNumber issues sequential numbers per financial year, e.g.
// "INV-2026-27-0042". The Indian financial year turns over on 1 April.
func (r *invoiceRepository) NextInvoiceNumber(now time.Time) (string, error) {
	startYear := now.Year()
	if now.Month() < time.April {
		startYear--
	}
	fyStart := time.Date(startYear, time.April, 1, 0, 0, 0, 0, now.Location())
	fyLabel := fmt.Sprintf("%d-%02d", startYear, (startYear+1)%100)

	var count int64
	err := r.db.Model(&models.Invoice{}).
		Where("created_at >= ?", fyStart).
		Count(&count).Error
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("INV-%s-%04d", fyLabel, count+1), nil
}

func (r *invoiceRepository) CreateTaxRate(rate *models.TaxRate) (*models.TaxRate, error) {
	if err := r.db.Create(rate).Error; err != nil {
		return nil, err
	}
	return rate, nil
}

func (r *invoiceRepository) GetTaxRateByID(id uuid.UUID) (*models.TaxRate, error) {
	var rate models.TaxRate
	if err := r.db.First(&rate, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &rate, nil
}

func (r *invoiceRepository) GetActiveTaxRates() ([]models.TaxRate, error) {
	var rates []models.TaxRate
	if err := r.db.Where("active = ?", true).Order("name ASC").Find(&rates).Error; err != nil {
		return nil, err
	}
	return rates, nil
}

func (r *invoiceRepository) DeactivateTaxRate(id uuid.UUID) error {
	return r.db.Model(&models.TaxRate{}).Where("id = ?", id).Update("active", false).Error
}
