package models

import "time"

// Transaction records a completed payment attempt as reported by the payment
// provider callback. Append-only: transactions are never updated or deleted.
type Transaction struct {
	ID          string    `json:"id" bson:"_id"`
	UserID      string    `json:"user_id" bson:"user_id"`
	Email       string    `json:"email" bson:"email"`
	Amount      float64   `json:"amount" bson:"amount"`
	Name        string    `json:"name" bson:"name"`
	Status      string    `json:"status" bson:"status"`
	Reference   string    `json:"reference" bson:"reference"`
	Description string    `json:"description,omitempty" bson:"description,omitempty"`
	To          string    `json:"to" bson:"to"`
	OrgID       string    `json:"org_id" bson:"org_id"`
	CreatedAt   time.Time `json:"createdAt" bson:"createdAt"`
}

// CollectionTransactions is the transactions collection name
const CollectionTransactions = "transactions"
