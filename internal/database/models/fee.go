package models

import "time"

// Fee represents a school fee published by an organization
type Fee struct {
	ID          string    `json:"id" bson:"_id"`
	Title       string    `json:"title" bson:"title"`
	Amount      float64   `json:"amount" bson:"amount"`
	Description string    `json:"description" bson:"description"`
	OrgID       string    `json:"org_id" bson:"org_id"`
	CreatedAt   time.Time `json:"createdAt" bson:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt" bson:"updatedAt"`
}

// CollectionFees is the fees collection name. The original system stored fees
// under "payments"; the name is kept for drop-in data compatibility.
const CollectionFees = "payments"
