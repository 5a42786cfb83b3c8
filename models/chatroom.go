package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ChatRoom holds the structure for the chat rooms collection in mongo
type ChatRoom struct {
	ID           primitive.ObjectID `json:"_id" bson:"_id,omitempty"`
	RoomName     string             `json:"room_name" bson:"room_name"`
	CreatedAt    time.Time          `json:"created_at" bson:"created_at"`
	Participants []string           `json:"participants" bson:"participants"`
}
