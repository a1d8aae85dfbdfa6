package controllers

import (
	"context"

	employee_repositories "ca-office-backend/employees/repositories"
	"ca-office-backend/leaves/repositories"
	todo_services "ca-office-backend/todos/services"

	"gorm.io/gorm"
)

type LeaveController struct {
	LeaveRepo    repositories.LeaveRepository
	EmployeeRepo employee_repositories.EmployeeRepository
	Notifier     *todo_services.Notifier
	DB           *gorm.DB
	Ctx          context.Context
}
