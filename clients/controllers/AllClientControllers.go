package controllers

import (
	"context"

	indexing_repository "ca-office-backend/bleve/repositories"
	"ca-office-backend/clients/repositories"
	employee_repositories "ca-office-backend/employees/repositories"
	firm_repositories "ca-office-backend/firms/repositories"

	"github.com/hibiken/asynq"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type ClientController struct {
	ClientRepo   repositories.ClientRepository
	EmployeeRepo employee_repositories.EmployeeRepository
	FirmRepo     firm_repositories.FirmRepository
	DB           *gorm.DB
	Ctx          context.Context
	RedisClient  *redis.Client
	AsynqClient  *asynq.Client
	BleveRepo    indexing_repository.BleveRepositoryInterface
}
