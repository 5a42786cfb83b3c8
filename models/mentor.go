package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MentorType is the discriminator stored on every mentor document
const MentorType = "mentor"

// Mentor holds the structure for the mentors collection in mongo
type Mentor struct {
	ID        primitive.ObjectID `json:"_id" bson:"_id,omitempty"`
	Type      string             `json:"type" bson:"type"`
	Name      string             `json:"name" bson:"name"`
	Email     string             `json:"email" bson:"email"`
	Expertise string             `json:"expertise" bson:"expertise"`
	CreatedAt time.Time          `json:"created_at" bson:"created_at"`
}

// MentorUpdate holds the fields replaced by a mentor update
type MentorUpdate struct {
	Name      string `json:"name" bson:"name"`
	Email     string `json:"email" bson:"email"`
	Expertise string `json:"expertise" bson:"expertise"`
}
