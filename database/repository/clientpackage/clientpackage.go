// File: database/repository/clientpackage/clientpackage.go
package packageRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"salonify/database"
	"salonify/models"
)

var (
	ErrPackageNotFound = errors.New("client package not found")
	// ErrNoCredit is returned when the package has no remaining credit for
	// the service, has expired, or belongs to a different client.
	ErrNoCredit = errors.New("no redeemable package credit")
)

// PackageRepository manages prepaid service credits.
type PackageRepository interface {
	GetByID(ctx context.Context, id string) (*models.ClientPackage, error)
	// ListRedeemable returns the client's unexpired packages that still hold
	// credit for the given service.
	ListRedeemable(ctx context.Context, clientID, serviceID string, now time.Time) ([]models.ClientPackage, error)
	// ConsumeCredit atomically decrements exactly one credit unit for the
	// service. The guard clauses make over-consumption impossible even under
	// concurrent redeemers.
	ConsumeCredit(ctx context.Context, packageID, clientID, serviceID string, now time.Time) error
}

type mongoPackageRepo struct {
	coll *mongo.Collection
}

// NewMongoPackageRepo constructs a new MongoDB PackageRepository.
func NewMongoPackageRepo() PackageRepository {
	return &mongoPackageRepo{
		coll: database.DB().Collection("client_packages"),
	}
}

func (r *mongoPackageRepo) GetByID(ctx context.Context, id string) (*models.ClientPackage, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var pkg models.ClientPackage
	err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&pkg)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrPackageNotFound
		}
		return nil, err
	}
	return &pkg, nil
}

func (r *mongoPackageRepo) ListRedeemable(ctx context.Context, clientID, serviceID string, now time.Time) ([]models.ClientPackage, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{
		"client_id":                     clientID,
		"expires_at":                    bson.M{"$gte": now},
		"remaining_items." + serviceID: bson.M{"$gt": 0},
	}
	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var pkgs []models.ClientPackage
	if err := cursor.All(ctx, &pkgs); err != nil {
		return nil, err
	}
	return pkgs, nil
}

func (r *mongoPackageRepo) ConsumeCredit(ctx context.Context, packageID, clientID, serviceID string, now time.Time) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{
		"id":                            packageID,
		"client_id":                     clientID,
		"expires_at":                    bson.M{"$gte": now},
		"remaining_items." + serviceID: bson.M{"$gt": 0},
	}
	update := bson.M{"$inc": bson.M{"remaining_items." + serviceID: -1}}

	res, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to consume package credit: %w", err)
	}
	if res.MatchedCount == 0 {
		return ErrNoCredit
	}
	return nil
}
