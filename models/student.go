package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// StudentType is the discriminator stored on every student document
const StudentType = "student"

// Student holds the structure for the students collection in mongo
type Student struct {
	ID        primitive.ObjectID `json:"_id" bson:"_id,omitempty"`
	Type      string             `json:"type" bson:"type"`
	Name      string             `json:"name" bson:"name"`
	Email     string             `json:"email" bson:"email"`
	CreatedAt time.Time          `json:"created_at" bson:"created_at"`
}

// StudentUpdate holds the fields replaced by a student update
type StudentUpdate struct {
	Name  string `json:"name" bson:"name"`
	Email string `json:"email" bson:"email"`
}
