package models

import "time"

// Organization represents an institute activated by a user. The owner's user
// document carries a back-reference (org_id, org_status) written as a second,
// non-atomic step of the activation flow.
type Organization struct {
	ID            string    `json:"id" bson:"_id"`
	InstituteName string    `json:"instituteName" bson:"instituteName"`
	InstituteType string    `json:"instituteType" bson:"instituteType"`
	OtherType     string    `json:"otherType" bson:"otherType"`
	Email         string    `json:"email" bson:"email"`
	Phone         string    `json:"phone" bson:"phone"`
	Address       string    `json:"address" bson:"address"`
	OwnerID       string    `json:"owner_id" bson:"owner_id"`
	ReviewStatus  string    `json:"review_status" bson:"review_status"`
	CreatedAt     time.Time `json:"createdAt" bson:"createdAt"`
}

// CollectionOrganizations is the organizations collection name
const CollectionOrganizations = "organizations"
