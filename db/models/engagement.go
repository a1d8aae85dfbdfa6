package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type EngagementStatus string

const (
	EngagementPending    EngagementStatus = "PENDING"
	EngagementInProgress EngagementStatus = "IN_PROGRESS"
	EngagementCompleted  EngagementStatus = "COMPLETED"
	EngagementOnHold     EngagementStatus = "ON_HOLD"
)

// RecurrenceFrequency controls how often a recurring engagement definition
// materialises a new engagement instance.
type RecurrenceFrequency string

const (
	FrequencyMonthly   RecurrenceFrequency = "MONTHLY"
	FrequencyQuarterly RecurrenceFrequency = "QUARTERLY"
	FrequencyYearly    RecurrenceFrequency = "YEARLY"
)

// Engagement is a unit of work for a client: a tax filing, an audit, a
// certification. Engagements belong to a client and are removed when the
// client is deleted (cascading delete).
type Engagement struct {
	ID         uuid.UUID        `gorm:"type:uuid;primary_key;" json:"id"`
	ClientID   uuid.UUID        `gorm:"type:uuid;not null;index" json:"client_id"`
	Type       string           `gorm:"not null" json:"type"`
	AssigneeID *uuid.UUID       `gorm:"type:uuid;index" json:"assignee_id"`
	Status     EngagementStatus `gorm:"type:varchar(20);default:'PENDING'" json:"status"`

	// Period the engagement covers, e.g. "FY 2025-26" or "Q1 2026".
	Period  string     `json:"period"`
	DueDate *time.Time `json:"due_date"`

	// Checklist is a JSON array of {item, done} pairs maintained by the
	// assignee as the work progresses.
	Checklist datatypes.JSON `json:"checklist"`

	Notes *string `json:"notes"`

	// Set when the engagement was materialised from a recurring definition.
	RecurringEngagementID *uuid.UUID `gorm:"type:uuid;index" json:"recurring_engagement_id"`

	CreatedBy   string    `json:"created_by"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
	LastUpdated time.Time `gorm:"autoUpdateTime" json:"last_updated"`
}

// RecurringEngagement is a template that the scheduler turns into concrete
// Engagement rows once per period.
type RecurringEngagement struct {
	ID         uuid.UUID           `gorm:"type:uuid;primary_key;" json:"id"`
	ClientID   uuid.UUID           `gorm:"type:uuid;not null;index" json:"client_id"`
	Type       string              `gorm:"not null" json:"type"`
	AssigneeID *uuid.UUID          `gorm:"type:uuid" json:"assignee_id"`
	Frequency  RecurrenceFrequency `gorm:"type:varchar(20);not null" json:"frequency"`

	// Day of month the materialised engagement falls due.
	DueDay int `gorm:"default:20" json:"due_day"`

	Active bool `gorm:"default:true" json:"active"`

	// Period key of the most recently materialised instance, e.g. "2026-08".
	// Prevents the scheduler from creating the same period twice.
	LastMaterialisedPeriod string `json:"last_materialised_period"`

	CreatedBy   string    `json:"created_by"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
	LastUpdated time.Time `gorm:"autoUpdateTime" json:"last_updated"`
}
