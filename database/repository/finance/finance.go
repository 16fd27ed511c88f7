// File: database/repository/finance/finance.go
package financeRepo

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"salonify/database"
	"salonify/models"
)

// FinanceRepository persists the bookkeeping records emitted when an
// appointment settles: ledger transactions, professional commissions and
// client loyalty points.
type FinanceRepository interface {
	InsertLedgerEntry(ctx context.Context, entry models.LedgerEntry) error
	InsertCommission(ctx context.Context, rec models.CommissionRecord) error
	AddLoyaltyPoints(ctx context.Context, clientID string, points int) error
}

type mongoFinanceRepo struct {
	ledger      *mongo.Collection
	commissions *mongo.Collection
	clients     *mongo.Collection
}

// NewMongoFinanceRepo constructs a new MongoDB FinanceRepository.
func NewMongoFinanceRepo() FinanceRepository {
	db := database.DB()
	return &mongoFinanceRepo{
		ledger:      db.Collection("ledger"),
		commissions: db.Collection("commissions"),
		clients:     db.Collection("clients"),
	}
}

func (r *mongoFinanceRepo) InsertLedgerEntry(ctx context.Context, entry models.LedgerEntry) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if entry.ID == "" {
		entry.ID = uuid.New().String()
	}
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now()
	}
	if _, err := r.ledger.InsertOne(ctx, entry); err != nil {
		return fmt.Errorf("failed to insert ledger entry: %w", err)
	}
	return nil
}

func (r *mongoFinanceRepo) InsertCommission(ctx context.Context, rec models.CommissionRecord) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if rec.ID == "" {
		rec.ID = uuid.New().String()
	}
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = time.Now()
	}
	if _, err := r.commissions.InsertOne(ctx, rec); err != nil {
		return fmt.Errorf("failed to insert commission record: %w", err)
	}
	return nil
}

func (r *mongoFinanceRepo) AddLoyaltyPoints(ctx context.Context, clientID string, points int) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	update := bson.M{"$inc": bson.M{"loyalty_points": points}}
	if _, err := r.clients.UpdateOne(ctx, bson.M{"id": clientID}, update); err != nil {
		return fmt.Errorf("failed to add loyalty points: %w", err)
	}
	return nil
}
