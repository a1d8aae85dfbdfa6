package controllers

import (
	"ca-office-backend/bleve/repositories"
)

type SearchController struct {
	bleveRepo repositories.BleveRepositoryInterface
}

func NewSearchController(bleveRepo repositories.BleveRepositoryInterface) *SearchController {
	return &SearchController{
		bleveRepo: bleveRepo,
	}
}
