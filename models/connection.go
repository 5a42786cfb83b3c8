package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Connection links a student to a mentor by email. Neither email is checked
// against the students or mentors collections.
type Connection struct {
	ID           primitive.ObjectID `json:"_id" bson:"_id,omitempty"`
	StudentEmail string             `json:"student_email" bson:"student_email"`
	MentorEmail  string             `json:"mentor_email" bson:"mentor_email"`
	ConnectedAt  time.Time          `json:"connected_at" bson:"connected_at"`
}
