package models

import "time"

// Message is a chat message between two users. The id is supplied by the
// client (the chat UI generates it before sending) and becomes the document
// id. Messages are append-only; Unread defaults to true on write.
type Message struct {
	ID         string    `json:"id" bson:"_id"`
	ToUserID   string    `json:"to_user_id" bson:"to_user_id"`
	FromUserID string    `json:"from_user_id" bson:"from_user_id"`
	Text       string    `json:"text" bson:"text"`
	Timestamp  string    `json:"timestamp" bson:"timestamp"`
	Status     string    `json:"status" bson:"status"`
	Unread     bool      `json:"unread" bson:"unread"`
	CreatedAt  time.Time `json:"createdAt" bson:"createdAt"`
}

// CollectionMessages is the messages collection name
const CollectionMessages = "messages"
