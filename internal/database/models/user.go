package models

import "time"

// User represents a registered parent or organization owner. The document id
// in the users collection equals the identity provider uid supplied at
// registration time, so lookups by token subject are direct.
type User struct {
	UID       string    `json:"uid" bson:"_id"`
	Email     string    `json:"email" bson:"email"`
	Surname   string    `json:"surname" bson:"surname"`
	Firstname string    `json:"firstname" bson:"firstname"`
	Phone     string    `json:"phone" bson:"phone"`
	OrgStatus string    `json:"org_status" bson:"org_status"`
	OrgID     string    `json:"org_id,omitempty" bson:"org_id,omitempty"`
	CreatedAt time.Time `json:"createdAt" bson:"createdAt"`
}

// CollectionUsers is the users collection name
const CollectionUsers = "users"
