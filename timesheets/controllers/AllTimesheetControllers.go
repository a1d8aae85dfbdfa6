package controllers

import (
	"context"

	client_repositories "ca-office-backend/clients/repositories"
	employee_repositories "ca-office-backend/employees/repositories"
	engagement_repositories "ca-office-backend/engagements/repositories"
	firm_repositories "ca-office-backend/firms/repositories"
	invoice_repositories "ca-office-backend/invoices/repositories"
	"ca-office-backend/timesheets/repositories"

	"gorm.io/gorm"
)

type TimesheetController struct {
	TimesheetRepo  repositories.TimesheetRepository
	EmployeeRepo   employee_repositories.EmployeeRepository
	EngagementRepo engagement_repositories.EngagementRepository
	ClientRepo     client_repositories.ClientRepository
	FirmRepo       firm_repositories.FirmRepository
	InvoiceRepo    invoice_repositories.InvoiceRepository
	DB             *gorm.DB
	Ctx            context.Context
}
