package services

import (
	"encoding/json"

	"ca-office-backend/config"
	"ca-office-backend/db/models"
	employee_repositories "ca-office-backend/employees/repositories"
	"ca-office-backend/todos/repositories"
	"ca-office-backend/utils"
	"ca-office-backend/websocket"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/datatypes"
)

// Notifier persists a notification row and pushes it to the recipient over
// the websocket hub. The row is the durable copy; the push is best-effort
// and lost if the recipient is offline.
type Notifier struct {
	notificationRepo repositories.NotificationRepository
	employeeRepo     employee_repositories.EmployeeRepository
	hub              *websocket.Hub
}

func NewNotifier(
	notificationRepo repositories.NotificationRepository,
	employeeRepo employee_repositories.EmployeeRepository,
	hub *websocket.Hub,
) *Notifier {
	return &Notifier{
		notificationRepo: notificationRepo,
		employeeRepo:     employeeRepo,
		hub:              hub,
	}
}

func (n *Notifier) Notify(recipientID uuid.UUID, notificationType models.NotificationType, message string, payload interface{}) (*models.Notification, error) {
	var payloadJSON datatypes.JSON
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return nil, err
		}
		payloadJSON = datatypes.JSON(data)
	}

	notification := models.Notification{
		ID:          uuid.New(),
		RecipientID: recipientID,
		Type:        notificationType,
		Message:     message,
		Payload:     payloadJSON,
	}

	created, err := n.notificationRepo.CreateNotification(&notification)
	if err != nil {
		return nil, err
	}

	recipient, err := n.employeeRepo.GetEmployeeByID(recipientID)
	if err != nil {
		config.Logger.Warn("Notification recipient not found; skipping websocket push",
			zap.String("recipient_id", recipientID.String()),
			zap.Error(err))
		return created, nil
	}

	n.hub.SendToUser(recipient.Email, websocket.WebSocketMessage{
		Type:      websocket.MessageTypeNotification,
		Payload:   created,
		Timestamp: utils.Today(),
	})

	return created, nil
}
