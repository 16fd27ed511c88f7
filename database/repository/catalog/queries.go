// File: database/repository/catalog/queries.go
package catalogRepo

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"salonify/models"
)

var (
	ErrServiceNotFound      = errors.New("service not found")
	ErrProfessionalNotFound = errors.New("professional not found")
	ErrClientNotFound       = errors.New("client not found")
)

func (r *mongoCatalogRepo) GetService(ctx context.Context, id string) (*models.Service, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var svc models.Service
	err := r.services.FindOne(ctx, bson.M{"id": id}).Decode(&svc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrServiceNotFound
		}
		return nil, err
	}
	return &svc, nil
}

func (r *mongoCatalogRepo) ListServices(ctx context.Context) ([]models.Service, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cursor, err := r.services.Find(ctx, bson.M{"active": true})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var services []models.Service
	if err := cursor.All(ctx, &services); err != nil {
		return nil, err
	}
	return services, nil
}

func (r *mongoCatalogRepo) GetProfessional(ctx context.Context, id string) (*models.Professional, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var pro models.Professional
	err := r.professionals.FindOne(ctx, bson.M{"id": id}).Decode(&pro)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrProfessionalNotFound
		}
		return nil, err
	}
	return &pro, nil
}

func (r *mongoCatalogRepo) ListProfessionals(ctx context.Context) ([]models.Professional, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cursor, err := r.professionals.Find(ctx, bson.M{"active": true})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var pros []models.Professional
	if err := cursor.All(ctx, &pros); err != nil {
		return nil, err
	}
	return pros, nil
}

func (r *mongoCatalogRepo) GetClient(ctx context.Context, id string) (*models.Client, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var cl models.Client
	err := r.clients.FindOne(ctx, bson.M{"id": id}).Decode(&cl)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrClientNotFound
		}
		return nil, err
	}
	return &cl, nil
}
