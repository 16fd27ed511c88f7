// File: database/repository/promotion/promotion.go
package promotionRepo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"salonify/database"
	"salonify/models"
)

// PromotionRepository supplies the active promotions the pricing engine
// evaluates. Promotions are managed elsewhere; this is a read surface.
type PromotionRepository interface {
	ListActive(ctx context.Context) ([]models.Promotion, error)
}

type mongoPromotionRepo struct {
	coll *mongo.Collection
}

// NewMongoPromotionRepo constructs a new MongoDB PromotionRepository.
func NewMongoPromotionRepo() PromotionRepository {
	return &mongoPromotionRepo{
		coll: database.DB().Collection("promotions"),
	}
}

func (r *mongoPromotionRepo) ListActive(ctx context.Context) ([]models.Promotion, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{"active": true})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var promos []models.Promotion
	if err := cursor.All(ctx, &promos); err != nil {
		return nil, err
	}
	return promos, nil
}
