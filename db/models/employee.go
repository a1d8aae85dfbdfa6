package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type EmployeeRole string

const (
	PartnerRole EmployeeRole = "partner"
	ManagerRole EmployeeRole = "manager"
	ArticleRole EmployeeRole = "article"
	StaffRole   EmployeeRole = "staff"
	AdminRole   EmployeeRole = "admin"
)

// Employee represents a member of the firm's staff. Partners are the only
// employees a client's Partner column may resolve to during bulk import.
type Employee struct {
	ID       uuid.UUID    `gorm:"type:uuid;primary_key;" json:"id"`
	Name     string       `gorm:"not null" json:"name"`
	Email    string       `gorm:"unique;not null" json:"email"`
	Phone    string       `json:"phone"`
	Role     EmployeeRole `gorm:"type:varchar(30);not null" json:"role"`
	Password string       `json:"-"` // Never include in JSON responses

	// Billing
	HourlyRate *float64 `json:"hourly_rate"`

	// Status
	Active      bool       `gorm:"default:true" json:"active"`
	LastLoginAt *time.Time `json:"last_login_at"`

	// Leave entitlement in days per calendar year.
	AnnualLeaveDays int `gorm:"default:24" json:"annual_leave_days"`

	// Audit fields
	CreatedBy   string         `json:"created_by"`
	CreatedAt   time.Time      `gorm:"autoCreateTime" json:"created_at"`
	LastUpdated time.Time      `gorm:"autoUpdateTime" json:"last_updated"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}

// IsPartner reports whether the employee holds the partner role.
func (e *Employee) IsPartner() bool {
	return e.Role == PartnerRole
}
