package models

import "time"

// SupportComplaint is a complaint submitted through the support form
type SupportComplaint struct {
	ID        string    `json:"id" bson:"_id"`
	Name      string    `json:"name" bson:"name"`
	Email     string    `json:"email" bson:"email"`
	Complaint string    `json:"complaint" bson:"complaint"`
	CreatedAt time.Time `json:"createdAt" bson:"createdAt"`
}

// CollectionSupport is the support collection name
const CollectionSupport = "support"
