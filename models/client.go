package models

import "time"

// Client is a salon customer. Only the fields the booking engine reads are
// modelled here; profile management lives outside this service.
type Client struct {
	ID            string     `bson:"id" json:"id"`
	Name          string     `bson:"name" json:"name"`
	Phone         string     `bson:"phone,omitempty" json:"phone,omitempty"`
	Email         string     `bson:"email,omitempty" json:"email,omitempty"`
	BirthDate     *time.Time `bson:"birth_date,omitempty" json:"birth_date,omitempty"`
	LoyaltyPoints int        `bson:"loyalty_points" json:"loyalty_points"`
	CreatedAt     time.Time  `bson:"created_at" json:"created_at"`
}

// BornIn reports whether the client's birth month equals month.
func (c Client) BornIn(month time.Month) bool {
	return c.BirthDate != nil && c.BirthDate.Month() == month
}
