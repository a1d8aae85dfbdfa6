package repositories

import (
	"time"

	"ca-office-backend/db/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type TodoRepository interface {
	CreateTodo(todo *models.Todo) (*models.Todo, error)
	UpdateTodo(todo *models.Todo) (*models.Todo, error)
	GetTodoByID(id uuid.UUID) (*models.Todo, error)
	GetFilteredTodos(pageSize, offset int, filters map[string]string) ([]models.Todo, int64, error)
	DeleteTodo(id uuid.UUID) error

	// GetDueUnreminded returns open todos whose due date has arrived but
	// whose reminder has not been sent yet.
	GetDueUnreminded(now time.Time) ([]models.Todo, error)
	MarkReminded(id uuid.UUID, at time.Time) error
}

type NotificationRepository interface {
	CreateNotification(notification *models.Notification) (*models.Notification, error)
	GetNotificationsByRecipient(recipientID uuid.UUID, unreadOnly bool) ([]models.Notification, error)
	MarkNotificationRead(id uuid.UUID, at time.Time) error
	MarkAllNotificationsRead(recipientID uuid.UUID, at time.Time) error
}

type todoRepository struct {
	db *gorm.DB
}

func NewTodoRepository(db *gorm.DB) TodoRepository {
	return &todoRepository{db: db}
}

func (r *todoRepository) CreateTodo(todo *models.Todo) (*models.Todo, error) {
	if err := r.db.Create(todo).Error; err != nil {
		return nil, err
	}
	return todo, nil
}

func (r *todoRepository) UpdateTodo(todo *models.Todo) (*models.Todo, error) {
	if err := r.db.Save(todo).Error; err != nil {
		return nil, err
	}
	return todo, nil
}

func (r *todoRepository) GetTodoByID(id uuid.UUID) (*models.Todo, error) {
	var todo models.Todo
	if err := r.db.First(&todo, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &todo, nil
}

func (r *todoRepository) GetFilteredTodos(pageSize, offset int, filters map[string]string) ([]models.Todo, int64, error) {
	var todos []models.Todo
	var total int64

	query := r.db.Model(&models.Todo{})

	if assigneeID, ok := filters["assignee_id"]; ok && assigneeID != "" {
		query = query.Where("assignee_id = ?", assigneeID)
	}
	if status, ok := filters["status"]; ok && status != "" {
		query = query.Where("status = ?", status)
	}
	if clientID, ok := filters["client_id"]; ok && clientID != "" {
		query = query.Where("client_id = ?", clientID)
	}
	if dueBefore, ok := filters["due_before"]; ok && dueBefore != "" {
		if t, err := time.Parse("2006-01-02", dueBefore); err == nil {
			query = query.Where("due_date <= ?", t)
		}
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if err := query.Order("due_date ASC NULLS LAST, created_at DESC").
		Limit(pageSize).
		Offset(offset).
		Find(&todos).Error; err != nil {
		return nil, 0, err
	}

	return todos, total, nil
}

func (r *todoRepository) DeleteTodo(id uuid.UUID) error {
	return r.db.Delete(&models.Todo{}, "id = ?", id).Error
}

func (r *todoRepository) GetDueUnreminded(now time.Time) ([]models.Todo, error) {
	var todos []models.Todo
	err := r.db.
		Where("status = ? AND due_date IS NOT NULL AND due_date <= ? AND reminded_at IS NULL",
			models.TodoOpen, now).
		Find(&todos).Error
	if err != nil {
		return nil, err
	}
	return todos, nil
}

func (r *todoRepository) MarkReminded(id uuid.UUID, at time.Time) error {
	return r.db.Model(&models.Todo{}).
		Where("id = ?", id).
		Update("reminded_at", at).Error
}

type notificationRepository struct {
	db *gorm.DB
}

func NewNotificationRepository(db *gorm.DB) NotificationRepository {
	return &notificationRepository{db: db}
}

func (r *notificationRepository) CreateNotification(notification *models.Notification) (*models.Notification, error) {
	if err := r.db.Create(notification).Error; err != nil {
		return nil, err
	}
	return notification, nil
}

func (r *notificationRepository) GetNotificationsByRecipient(recipientID uuid.UUID, unreadOnly bool) ([]models.Notification, error) {
	var notifications []models.Notification
	query := r.db.Where("recipient_id = ?", recipientID)
	if unreadOnly {
		query = query.Where("read_at IS NULL")
	}
	if err := query.Order("created_at DESC").Limit(100).Find(&notifications).Error; err != nil {
		return nil, err
	}
	return notifications, nil
}

func (r *notificationRepository) MarkNotificationRead(id uuid.UUID, at time.Time) error {
	return r.db.Model(&models.Notification{}).
		Where("id = ? AND read_at IS NULL", id).
		Update("read_at", at).Error
}

func (r *notificationRepository) MarkAllNotificationsRead(recipientID uuid.UUID, at time.Time) error {
	return r.db.Model(&models.Notification{}).
		Where("recipient_id = ? AND read_at IS NULL", recipientID).
		Update("read_at", at).Error
}
