package models

// Service is a bookable catalog entry. Catalog management happens elsewhere;
// during a scheduling operation a Service is read-only.
type Service struct {
	ID          string  `bson:"id" json:"id"`
	Name        string  `bson:"name" json:"name"`
	DurationMin int     `bson:"duration_min" json:"duration_min"` // service-only time in minutes
	BufferMin   int     `bson:"buffer_min" json:"buffer_min"`     // post-service cleanup/prep, 0 if none
	Price       float64 `bson:"price" json:"price"`
	Active      bool    `bson:"active" json:"active"`
}

// OccupiedMinutes returns the calendar time one instance of the service
// actually consumes, buffer included.
func (s Service) OccupiedMinutes() int {
	return s.DurationMin + s.BufferMin
}
