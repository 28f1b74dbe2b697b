package catalog

import "github.com/gcharris/writers-factory-app-sub009/internal/models"

type ModelListResponse struct {
	Models []models.Model `json:"models"`
	Total  int            `json:"total"`
}

type RefreshResponse struct {
	Changed int `json:"changed"`
}
