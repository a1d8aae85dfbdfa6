package repositories

import (
	"fmt"

	"ca-office-backend/config"
	"ca-office-backend/db/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type ClientRepository interface {
	CreateClient(tx *gorm.DB, client *models.Client) (*models.Client, error)
	UpdateClient(tx *gorm.DB, client *models.Client) (*models.Client, error)
	GetClientByID(id uuid.UUID) (*models.Client, error)
	GetAllClients() ([]models.Client, error)
	GetFilteredClients(limit, offset int, filters map[string]string) ([]models.Client, int64, error)
	DeleteClientCascade(tx *gorm.DB, id uuid.UUID) error
	BulkCreateClients(tx *gorm.DB, clients []models.Client) error
	BulkUpdateClients(tx *gorm.DB, clients []models.Client) error
	LogBulkUploadClientErrors(rows []models.BulkUploadErrorClient) error
	LogEmailSent(emailLog *models.EmailLog) error
}

type clientRepository struct {
	DB *gorm.DB
}

// NewClientRepository initializes a new client repository
func NewClientRepository(db *gorm.DB) ClientRepository {
	return &clientRepository{DB: db}
}

func (cr *clientRepository) GetAllClients() ([]models.Client, error) {
	var clients []models.Client
	if err := cr.DB.Find(&clients).Error; err != nil {
		config.Logger.Error("Failed to get all clients", zap.Error(err))
		return nil, fmt.Errorf("failed to get all clients: %w", err)
	}
	return clients, nil
}

func (cr *clientRepository) GetClientByID(id uuid.UUID) (*models.Client, error) {
	var client models.Client
	if err := cr.DB.First(&client, "id = ?", id).Error; err != nil {
		return nil, fmt.Errorf("failed to get client %s: %w", id, err)
	}
	return &client, nil
}

func (cr *clientRepository) CreateClient(tx *gorm.DB, client *models.Client) (*models.Client, error) {
	if err := tx.Create(client).Error; err != nil {
		config.Logger.Error("Failed to create client",
			zap.Error(err),
			zap.String("name", client.Name))
		return nil, fmt.Errorf("failed to create client: %w", err)
	}

	config.Logger.Info("Created client successfully",
		zap.String("clientID", client.ID.String()),
		zap.String("name", client.Name))

	return client, nil
}

func (cr *clientRepository) UpdateClient(tx *gorm.DB, client *models.Client) (*models.Client, error) {
	// created_at and created_by belong to the original record; a blank PAN
	// must not wipe out the stored natural key.
	query := tx.Model(&models.Client{}).Where("id = ?", client.ID).
		Omit("created_at", "created_by")
	if client.PAN == "" {
		query = query.Omit("pan")
	}
	if err := query.Updates(client).Error; err != nil {
		config.Logger.Error("Failed to update client",
			zap.Error(err),
			zap.String("clientID", client.ID.String()))
		return nil, fmt.Errorf("failed to update client: %w", err)
	}
	return client, nil
}

// DeleteClientCascade removes a client together with its engagements. The
// two deletes share the caller's transaction so a failure leaves both in
// place.
func (cr *clientRepository) DeleteClientCascade(tx *gorm.DB, id uuid.UUID) error {
	if err := tx.Where("client_id = ?", id).Delete(&models.Engagement{}).Error; err != nil {
		return fmt.Errorf("failed to delete engagements for client %s: %w", id, err)
	}
	if err := tx.Where("client_id = ?", id).Delete(&models.RecurringEngagement{}).Error; err != nil {
		return fmt.Errorf("failed to delete recurring engagements for client %s: %w", id, err)
	}
	if err := tx.Delete(&models.Client{}, "id = ?", id).Error; err != nil {
		return fmt.Errorf("failed to delete client %s: %w", id, err)
	}

	config.Logger.Info("Deleted client with cascading engagements",
		zap.String("clientID", id.String()))
	return nil
}

func (cr *clientRepository) BulkCreateClients(tx *gorm.DB, clients []models.Client) error {
	if len(clients) == 0 {
		return nil
	}
	if err := tx.Create(&clients).Error; err != nil {
		return fmt.Errorf("failed to bulk create clients: %w", err)
	}
	return nil
}

func (cr *clientRepository) BulkUpdateClients(tx *gorm.DB, clients []models.Client) error {
	for i := range clients {
		client := clients[i]
		query := tx.Model(&models.Client{}).Where("id = ?", client.ID).
			Omit("created_at", "created_by")
		if client.PAN == "" {
			query = query.Omit("pan")
		}
		if err := query.Updates(&client).Error; err != nil {
			return fmt.Errorf("failed to bulk update client %s: %w", client.ID, err)
		}
	}
	return nil
}

func (cr *clientRepository) LogBulkUploadClientErrors(rows []models.BulkUploadErrorClient) error {
	if len(rows) == 0 {
		return nil
	}
	if err := cr.DB.Create(&rows).Error; err != nil {
		config.Logger.Error("Failed to log bulk upload client errors", zap.Error(err))
		return fmt.Errorf("failed to log bulk upload client errors: %w", err)
	}
	return nil
}

func (cr *clientRepository) LogEmailSent(emailLog *models.EmailLog) error {
	if err := cr.DB.Create(emailLog).Error; err != nil {
		return fmt.Errorf("failed to log email: %w", err)
	}
	return nil
}
