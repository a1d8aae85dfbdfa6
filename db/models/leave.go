package models

import (
	"time"

	"github.com/google/uuid"
)

type LeaveType string

const (
	CasualLeave LeaveType = "CASUAL"
	SickLeave   LeaveType = "SICK"
	EarnedLeave LeaveType = "EARNED"
	UnpaidLeave LeaveType = "UNPAID"
)

type LeaveStatus string

const (
	LeavePending  LeaveStatus = "PENDING"
	LeaveApproved LeaveStatus = "APPROVED"
	LeaveRejected LeaveStatus = "REJECTED"
)

// LeaveRequest is an employee's request for time off, reviewed by a partner
// or admin.
type LeaveRequest struct {
	ID         uuid.UUID   `gorm:"type:uuid;primary_key;" json:"id"`
	EmployeeID uuid.UUID   `gorm:"type:uuid;not null;index" json:"employee_id"`
	Type       LeaveType   `gorm:"type:varchar(20);not null" json:"type"`
	FromDate   time.Time   `gorm:"type:date;not null" json:"from_date"`
	ToDate     time.Time   `gorm:"type:date;not null" json:"to_date"`
	Reason     *string     `json:"reason"`
	Status     LeaveStatus `gorm:"type:varchar(20);default:'PENDING'" json:"status"`

	ReviewedBy *string    `json:"reviewed_by"`
	ReviewedAt *time.Time `json:"reviewed_at"`

	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
	LastUpdated time.Time `gorm:"autoUpdateTime" json:"last_updated"`
}

// Days returns the inclusive length of the requested leave in days.
func (lr *LeaveRequest) Days() int {
	return int(lr.ToDate.Sub(lr.FromDate).Hours()/24) + 1
}
