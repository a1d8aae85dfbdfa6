package repositories

import (
	bleveindex "ca-office-backend/bleve/services"
	"ca-office-backend/config"
	"ca-office-backend/db/models"

	"github.com/blevesearch/bleve/v2"
	"go.uber.org/zap"
)

type BleveRepository struct {
	indexer *bleveindex.IndexingService
}

type BleveRepositoryInterface interface {
	// ==== Client Indexing ====
	IndexSingleClient(client models.Client) error
	IndexExistingClients(clients []models.Client) error
	DeleteClient(clientID string) error

	// ==== Employee Indexing ====
	IndexSingleEmployee(employee models.Employee) error
	IndexExistingEmployees(employees []models.Employee) error
	DeleteEmployee(employeeID string) error

	// ==== Search ====
	SearchClients(queryString string) (*bleve.SearchResult, error)
	SearchEmployees(queryString string) (*bleve.SearchResult, error)
	GetDocumentFields(result *bleve.SearchResult) []map[string]interface{}
}

// Constructor returning both the struct and the interface
func NewBleveRepository(indexer *bleveindex.IndexingService) (*BleveRepository, BleveRepositoryInterface) {
	repo := &BleveRepository{indexer: indexer}
	return repo, repo
}

type bleveClientDoc struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	MailID       string `json:"mail_id"`
	MobileNumber string `json:"mobile_number"`
	PAN          string `json:"pan"`
	Category     string `json:"category"`
}

func newBleveClientDoc(client models.Client) bleveClientDoc {
	return bleveClientDoc{
		ID:           client.ID.String(),
		Name:         client.Name,
		MailID:       client.MailID,
		MobileNumber: client.MobileNumber,
		PAN:          client.PAN,
		Category:     string(client.Category),
	}
}

func (r *BleveRepository) IndexSingleClient(client models.Client) error {
	err := r.indexer.IndexDocument("clients", client.ID.String(), newBleveClientDoc(client))
	if err != nil {
		config.Logger.Error("Failed to index single client into Bleve",
			zap.Error(err), zap.String("client_id", client.ID.String()))
		return err
	}
	return nil
}

func (r *BleveRepository) IndexExistingClients(clients []models.Client) error {
	docs := make(map[string]interface{}, len(clients))
	for _, client := range clients {
		docs[client.ID.String()] = newBleveClientDoc(client)
	}
	return r.indexer.BulkIndexDocuments("clients", docs)
}

func (r *BleveRepository) DeleteClient(clientID string) error {
	return r.indexer.DeleteDocument("clients", clientID)
}

type bleveEmployeeDoc struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

func newBleveEmployeeDoc(employee models.Employee) bleveEmployeeDoc {
	return bleveEmployeeDoc{
		ID:    employee.ID.String(),
		Name:  employee.Name,
		Email: employee.Email,
		Role:  string(employee.Role),
	}
}

func (r *BleveRepository) IndexSingleEmployee(employee models.Employee) error {
	err := r.indexer.IndexDocument("employees", employee.ID.String(), newBleveEmployeeDoc(employee))
	if err != nil {
		config.Logger.Error("Failed to index single employee into Bleve",
			zap.Error(err), zap.String("employee_id", employee.ID.String()))
		return err
	}
	return nil
}

func (r *BleveRepository) IndexExistingEmployees(employees []models.Employee) error {
	docs := make(map[string]interface{}, len(employees))
	for _, employee := range employees {
		docs[employee.ID.String()] = newBleveEmployeeDoc(employee)
	}
	return r.indexer.BulkIndexDocuments("employees", docs)
}

func (r *BleveRepository) DeleteEmployee(employeeID string) error {
	return r.indexer.DeleteDocument("employees", employeeID)
}
