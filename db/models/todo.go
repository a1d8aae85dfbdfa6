package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type TodoStatus string

const (
	TodoOpen TodoStatus = "OPEN"
	TodoDone TodoStatus = "DONE"
)

// Todo is an operator task, optionally tied to a client or engagement.
type Todo struct {
	ID           uuid.UUID  `gorm:"type:uuid;primary_key;" json:"id"`
	AssigneeID   uuid.UUID  `gorm:"type:uuid;not null;index" json:"assignee_id"`
	Title        string     `gorm:"not null" json:"title"`
	Notes        *string    `json:"notes"`
	DueDate      *time.Time `json:"due_date"`
	Status       TodoStatus `gorm:"type:varchar(10);default:'OPEN'" json:"status"`
	ClientID     *uuid.UUID `gorm:"type:uuid;index" json:"client_id"`
	EngagementID *uuid.UUID `gorm:"type:uuid;index" json:"engagement_id"`

	// Set once the due-date reminder for this todo has been sent, so the
	// scheduler does not notify twice.
	RemindedAt *time.Time `json:"reminded_at"`

	CreatedBy   string    `json:"created_by"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
	LastUpdated time.Time `gorm:"autoUpdateTime" json:"last_updated"`
}

type NotificationType string

const (
	NotificationTodoDue       NotificationType = "TODO_DUE"
	NotificationImportDone    NotificationType = "IMPORT_COMPLETED"
	NotificationInvoiceSent   NotificationType = "INVOICE_SENT"
	NotificationLeaveReviewed NotificationType = "LEAVE_REVIEWED"
)

// Notification is pushed to the recipient over the websocket hub and kept
// for the in-app notification list.
type Notification struct {
	ID          uuid.UUID        `gorm:"type:uuid;primary_key;" json:"id"`
	RecipientID uuid.UUID        `gorm:"type:uuid;not null;index" json:"recipient_id"`
	Type        NotificationType `gorm:"type:varchar(30);not null" json:"type"`
	Message     string           `json:"message"`
	Payload     datatypes.JSON   `json:"payload"`
	ReadAt      *time.Time       `json:"read_at"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}
