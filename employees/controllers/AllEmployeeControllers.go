package controllers

import (
	"context"

	indexing_repository "ca-office-backend/bleve/repositories"
	"ca-office-backend/employees/repositories"
	"ca-office-backend/token"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type EmployeeController struct {
	EmployeeRepo repositories.EmployeeRepository
	DB           *gorm.DB
	Ctx          context.Context
	RedisClient  *redis.Client
	PasetoMaker  token.Maker
	BleveRepo    indexing_repository.BleveRepositoryInterface
}
