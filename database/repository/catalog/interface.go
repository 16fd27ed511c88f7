// File: database/repository/catalog/interface.go
package catalogRepo

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"

	"salonify/database"
	"salonify/models"
)

// CatalogRepository supplies the reference data the scheduling engine reads:
// services, professionals and clients. Catalog management writes happen in a
// separate admin surface; everything here is read-only for the duration of a
// scheduling operation.
type CatalogRepository interface {
	GetService(ctx context.Context, id string) (*models.Service, error)
	ListServices(ctx context.Context) ([]models.Service, error)
	GetProfessional(ctx context.Context, id string) (*models.Professional, error)
	ListProfessionals(ctx context.Context) ([]models.Professional, error)
	GetClient(ctx context.Context, id string) (*models.Client, error)
}

type mongoCatalogRepo struct {
	services      *mongo.Collection
	professionals *mongo.Collection
	clients       *mongo.Collection
}

// NewMongoCatalogRepo constructs a new MongoDB CatalogRepository.
func NewMongoCatalogRepo() CatalogRepository {
	db := database.DB()
	return &mongoCatalogRepo{
		services:      db.Collection("services"),
		professionals: db.Collection("professionals"),
		clients:       db.Collection("clients"),
	}
}
