package controllers

import (
	"context"

	employee_repositories "ca-office-backend/employees/repositories"
	"ca-office-backend/todos/repositories"
	"ca-office-backend/todos/services"

	"gorm.io/gorm"
)

type TodoController struct {
	TodoRepo         repositories.TodoRepository
	NotificationRepo repositories.NotificationRepository
	EmployeeRepo     employee_repositories.EmployeeRepository
	Notifier         *services.Notifier
	DB               *gorm.DB
	Ctx              context.Context
}
