package catalogRepo

import (
	"context"

	"terapiku/models"
)

// CatalogRepository provides read access to the service catalog.
type CatalogRepository interface {
	GetServiceByID(ctx context.Context, id string) (*models.Service, error)
	ListServices(ctx context.Context) ([]models.Service, error)
}
