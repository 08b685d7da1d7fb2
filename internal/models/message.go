package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Message is a document in the "message" collection. Participant ids are
// stored in string form. is_read is persisted but no endpoint toggles it.
type Message struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	SenderID   string             `bson:"sender_id" json:"sender_id"`
	ReceiverID string             `bson:"receiver_id" json:"receiver_id"`
	PropertyID string             `bson:"property_id,omitempty" json:"property_id,omitempty"`
	Subject    string             `bson:"subject" json:"subject"`
	Body       string             `bson:"body" json:"body"`
	IsRead     bool               `bson:"is_read" json:"is_read"`
	CreatedAt  time.Time          `bson:"created_at" json:"created_at"`
}

// MessageCreateRequest is the message-create payload
type MessageCreateRequest struct {
	SenderID   string `json:"sender_id" binding:"required"`
	ReceiverID string `json:"receiver_id" binding:"required"`
	PropertyID string `json:"property_id"`
	Subject    string `json:"subject" binding:"required"`
	Body       string `json:"body" binding:"required"`
}
