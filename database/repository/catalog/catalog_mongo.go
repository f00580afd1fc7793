package catalogRepo

import (
	"context"
	"fmt"
	"time"

	"terapiku/database"
	"terapiku/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoCatalogRepo implements CatalogRepository using MongoDB.
type MongoCatalogRepo struct {
	coll *mongo.Collection
}

// NewMongoCatalogRepo constructs a new instance of MongoCatalogRepo.
func NewMongoCatalogRepo() CatalogRepository {
	db := database.MongoClient.Database("terapiku")
	return &MongoCatalogRepo{
		coll: db.Collection("services"),
	}
}

// GetServiceByID retrieves a catalog entry by ID.
func (repo *MongoCatalogRepo) GetServiceByID(ctx context.Context, id string) (*models.Service, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var svc models.Service
	filter := bson.M{"id": id}
	if err := repo.coll.FindOne(ctx, filter).Decode(&svc); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, fmt.Errorf("service with id %s not found", id)
		}
		return nil, fmt.Errorf("error fetching service with id %s: %w", id, err)
	}
	return &svc, nil
}

// ListServices returns the full catalog.
func (repo *MongoCatalogRepo) ListServices(ctx context.Context) ([]models.Service, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cursor, err := repo.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("error listing services: %w", err)
	}
	defer cursor.Close(ctx)

	var services []models.Service
	for cursor.Next(ctx) {
		var svc models.Service
		if err := cursor.Decode(&svc); err != nil {
			return nil, fmt.Errorf("error decoding service: %w", err)
		}
		services = append(services, svc)
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("cursor error: %w", err)
	}
	return services, nil
}
