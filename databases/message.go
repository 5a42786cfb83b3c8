package databases

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/linesmerrill/stument-forum-api/models"
)

// PostMessage does not check that the room exists.
func (f *forumDatabase) PostMessage(ctx context.Context, roomID, senderEmail, message string) (primitive.ObjectID, error) {
	msg := models.Message{
		RoomID:      roomID,
		SenderEmail: senderEmail,
		Message:     message,
		Timestamp:   time.Now(),
	}
	res, err := f.db.Collection(f.collections.Messages).InsertOne(ctx, msg)
	if err != nil {
		return primitive.NilObjectID, err
	}
	return insertedID(res)
}

func (f *forumDatabase) GetMessagesByRoom(ctx context.Context, roomID string) ([]models.Message, error) {
	var msgs []models.Message
	if err := findAll(ctx, f.db.Collection(f.collections.Messages), bson.M{"room_id": roomID}, &msgs); err != nil {
		return nil, err
	}
	return msgs, nil
}
