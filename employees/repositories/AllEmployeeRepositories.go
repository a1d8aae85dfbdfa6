package repositories

import (
	"fmt"
	"time"

	"ca-office-backend/db/models"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type EmployeeRepository interface {
	CreateEmployee(employee *models.Employee) (*models.Employee, error)
	UpdateEmployee(employee *models.Employee) (*models.Employee, error)
	GetEmployeeByID(id uuid.UUID) (*models.Employee, error)
	GetEmployeeByEmail(email string) (*models.Employee, error)
	GetAllEmployees() ([]models.Employee, error)
	GetPartners() ([]models.Employee, error)
	GetFilteredEmployees(pageSize, offset int, filters map[string]string) ([]models.Employee, int64, error)
	DeleteEmployee(id uuid.UUID) error
	BulkCreateEmployees(tx *gorm.DB, employees []models.Employee) error
	BulkUpdateEmployees(tx *gorm.DB, employees []models.Employee) error
	TouchLastLogin(id uuid.UUID, at time.Time) error
}

type employeeRepository struct {
	db *gorm.DB
}

func NewEmployeeRepository(db *gorm.DB) EmployeeRepository {
	return &employeeRepository{db: db}
}

func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	return string(bytes), err
}

func CheckPasswordHash(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}

func (r *employeeRepository) CreateEmployee(employee *models.Employee) (*models.Employee, error) {
	if err := r.db.Create(employee).Error; err != nil {
		return nil, err
	}
	return employee, nil
}

func (r *employeeRepository) UpdateEmployee(employee *models.Employee) (*models.Employee, error) {
	if err := r.db.Save(employee).Error; err != nil {
		return nil, err
	}
	return employee, nil
}

func (r *employeeRepository) GetEmployeeByID(id uuid.UUID) (*models.Employee, error) {
	var employee models.Employee
	if err := r.db.First(&employee, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &employee, nil
}

func (r *employeeRepository) GetEmployeeByEmail(email string) (*models.Employee, error) {
	var employee models.Employee
	if err := r.db.First(&employee, "LOWER(email) = LOWER(?)", email).Error; err != nil {
		return nil, err
	}
	return &employee, nil
}

func (r *employeeRepository) GetAllEmployees() ([]models.Employee, error) {
	var employees []models.Employee
	if err := r.db.Order("name ASC").Find(&employees).Error; err != nil {
		return nil, err
	}
	return employees, nil
}

// GetPartners returns active partner-role employees; the only valid targets
// of a client's Partner column.
func (r *employeeRepository) GetPartners() ([]models.Employee, error) {
	var partners []models.Employee
	err := r.db.
		Where("role = ? AND active = ?", models.PartnerRole, true).
		Order("name ASC").
		Find(&partners).Error
	if err != nil {
		return nil, err
	}
	return partners, nil
}

func (r *employeeRepository) GetFilteredEmployees(pageSize, offset int, filters map[string]string) ([]models.Employee, int64, error) {
	var employees []models.Employee
	var total int64

	db := r.db.Model(&models.Employee{})

	if role, ok := filters["role"]; ok && role != "" {
		db = db.Where("role = ?", role)
	}
	if active, ok := filters["active"]; ok && active != "" {
		db = db.Where("active = ?", active == "true")
	}
	if q, ok := filters["q"]; ok && q != "" {
		like := "%" + q + "%"
		db = db.Where("name ILIKE ? OR email ILIKE ?", like, like)
	}

	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := db.Order("name ASC").Limit(pageSize).Offset(offset).Find(&employees).Error
	if err != nil {
		return nil, 0, err
	}

	return employees, total, nil
}

func (r *employeeRepository) DeleteEmployee(id uuid.UUID) error {
	return r.db.Delete(&models.Employee{}, "id = ?", id).Error
}

func (r *employeeRepository) BulkCreateEmployees(tx *gorm.DB, employees []models.Employee) error {
	if len(employees) == 0 {
		return nil
	}
	return tx.CreateInBatches(employees, 100).Error
}

// BulkUpdateEmployees rewrites imported employees in place. The password
// and audit columns are never touched by an import.
func (r *employeeRepository) BulkUpdateEmployees(tx *gorm.DB, employees []models.Employee) error {
	for i := range employees {
		employee := employees[i]
		err := tx.Model(&models.Employee{}).Where("id = ?", employee.ID).
			Omit("password", "created_at", "created_by").
			Updates(&employee).Error
		if err != nil {
			return fmt.Errorf("failed to bulk update employee %s: %w", employee.ID, err)
		}
	}
	return nil
}

func (r *employeeRepository) TouchLastLogin(id uuid.UUID, at time.Time) error {
	return r.db.Model(&models.Employee{}).Where("id = ?", id).Update("last_login_at", at).Error
}
