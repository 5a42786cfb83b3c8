package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Message holds the structure for the messages collection in mongo.
// RoomID is the hex id of the chat room as given by the sender.
type Message struct {
	ID          primitive.ObjectID `json:"_id" bson:"_id,omitempty"`
	RoomID      string             `json:"room_id" bson:"room_id"`
	SenderEmail string             `json:"sender_email" bson:"sender_email"`
	Message     string             `json:"message" bson:"message"`
	Timestamp   time.Time          `json:"timestamp" bson:"timestamp"`
}
