// File: database/repository/appointment/crud.go
package appointmentRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"salonify/models"
)

// ErrNotFound is returned when no appointment matches the given id.
var ErrNotFound = errors.New("appointment not found")

func (r *mongoAppointmentRepo) GetByID(ctx context.Context, id string) (*models.Appointment, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var ap models.Appointment
	err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&ap)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &ap, nil
}

func (r *mongoAppointmentRepo) CreateMany(ctx context.Context, appts []models.Appointment) ([]string, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	docs := make([]interface{}, len(appts))
	ids := make([]string, len(appts))
	for i, ap := range appts {
		if ap.ID == "" {
			ap.ID = uuid.New().String()
		}
		if ap.CreatedAt.IsZero() {
			ap.CreatedAt = time.Now()
		}
		docs[i] = ap
		ids[i] = ap.ID
	}

	client := r.coll.Database().Client()
	sess, err := client.StartSession()
	if err != nil {
		return nil, fmt.Errorf("could not start mongo session: %w", err)
	}
	defer sess.EndSession(ctx)

	if err := mongo.WithSession(ctx, sess, func(sc mongo.SessionContext) error {
		if err := sc.StartTransaction(); err != nil {
			return err
		}
		if _, err := r.coll.InsertMany(sc, docs, options.InsertMany().SetOrdered(true)); err != nil {
			_ = sc.AbortTransaction(sc)
			return fmt.Errorf("failed to insert appointments: %w", err)
		}
		return sc.CommitTransaction(sc)
	}); err != nil {
		return nil, err
	}
	return ids, nil
}

func (r *mongoAppointmentRepo) Relocate(ctx context.Context, id, newDate, newTime, newProfessionalID string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	update := bson.M{"$set": bson.M{
		"date":            newDate,
		"time":            newTime,
		"professional_id": newProfessionalID,
	}}
	res, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, update)
	if err != nil {
		return fmt.Errorf("failed to relocate appointment: %w", err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *mongoAppointmentRepo) SetDuration(ctx context.Context, id string, minutes int) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	update := bson.M{"$set": bson.M{"custom_duration": minutes}}
	res, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, update)
	if err != nil {
		return fmt.Errorf("failed to set appointment duration: %w", err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *mongoAppointmentRepo) SetStatus(ctx context.Context, id string, status models.AppointmentStatus, at time.Time) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	set := bson.M{"status": status}
	switch status {
	case models.StatusCancelled:
		set["cancelled_at"] = at
	case models.StatusCompleted:
		set["completed_at"] = at
	}
	res, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$set": set})
	if err != nil {
		return fmt.Errorf("failed to set appointment status: %w", err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}
