// File: database/repository/appointment/interface.go
package appointmentRepo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"

	"salonify/database"
	"salonify/models"
)

// AppointmentRepository is the appointment store. Mutations are plain writes;
// the scheduling engine serializes them per professional per day through its
// DayLocker, so every conflict check sees the freshest committed state.
type AppointmentRepository interface {
	GetByID(ctx context.Context, id string) (*models.Appointment, error)
	// ListForDay returns every appointment on date, newest first by start
	// time. An empty professionalID means all professionals. Cancelled
	// appointments are included; callers filter on Occupies().
	ListForDay(ctx context.Context, date, professionalID string) ([]models.Appointment, error)
	// ListOccupiedForDay returns only the appointments that take up calendar
	// space for one professional on one date.
	ListOccupiedForDay(ctx context.Context, date, professionalID string) ([]models.Appointment, error)
	// CreateMany inserts a multi-leg cart inside one transaction. Either all
	// legs insert or none do.
	CreateMany(ctx context.Context, appts []models.Appointment) ([]string, error)
	// Relocate atomically rewrites date, time and professional.
	Relocate(ctx context.Context, id, newDate, newTime, newProfessionalID string) error
	// SetDuration rewrites the custom duration override.
	SetDuration(ctx context.Context, id string, minutes int) error
	// SetStatus transitions the appointment's lifecycle state, stamping the
	// matching timestamp field.
	SetStatus(ctx context.Context, id string, status models.AppointmentStatus, at time.Time) error
}

type mongoAppointmentRepo struct {
	coll *mongo.Collection
}

// NewMongoAppointmentRepo constructs a new MongoDB AppointmentRepository.
func NewMongoAppointmentRepo() AppointmentRepository {
	repo := &mongoAppointmentRepo{
		coll: database.DB().Collection("appointments"),
	}
	if err := repo.EnsureIndexes(); err != nil {
		fmt.Printf("failed to create appointment indexes: %v\n", err)
	}
	return repo
}
