package models

import "time"

// ClientPackage is a prepaid bundle of service credits. One credit is
// consumed per appointment that redeems the package; expired packages are
// never offered for redemption.
type ClientPackage struct {
	ID             string         `bson:"id" json:"id"`
	ClientID       string         `bson:"client_id" json:"client_id"`
	Name           string         `bson:"name" json:"name"`
	RemainingItems map[string]int `bson:"remaining_items" json:"remaining_items"` // service id -> redeemable count
	ExpiresAt      time.Time      `bson:"expires_at" json:"expires_at"`
	CreatedAt      time.Time      `bson:"created_at" json:"created_at"`
}

// Expired reports whether the package can no longer be redeemed at now.
func (p ClientPackage) Expired(now time.Time) bool {
	return p.ExpiresAt.Before(now)
}

// CreditsFor returns the remaining redeemable count for a service.
func (p ClientPackage) CreditsFor(serviceID string) int {
	return p.RemainingItems[serviceID]
}
