package controllers

import (
	"context"

	client_repositories "ca-office-backend/clients/repositories"
	firm_repositories "ca-office-backend/firms/repositories"
	"ca-office-backend/invoices/repositories"

	"github.com/hibiken/asynq"
	"gorm.io/gorm"
)

type InvoiceController struct {
	InvoiceRepo repositories.InvoiceRepository
	ClientRepo  client_repositories.ClientRepository
	FirmRepo    firm_repositories.FirmRepository
	DB          *gorm.DB
	Ctx         context.Context
	AsynqClient *asynq.Client
}
