package controllers

import (
	"context"

	client_repositories "ca-office-backend/clients/repositories"
	employee_repositories "ca-office-backend/employees/repositories"
	"ca-office-backend/engagements/repositories"

	"gorm.io/gorm"
)

type EngagementController struct {
	EngagementRepo repositories.EngagementRepository
	ClientRepo     client_repositories.ClientRepository
	EmployeeRepo   employee_repositories.EmployeeRepository
	DB             *gorm.DB
	Ctx            context.Context
}
