package databases

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/linesmerrill/stument-forum-api/models"
)

// CreateRoom stores participants as given, duplicates included.
func (f *forumDatabase) CreateRoom(ctx context.Context, roomName string, participants []string) (primitive.ObjectID, error) {
	if participants == nil {
		participants = []string{}
	}
	room := models.ChatRoom{
		RoomName:     roomName,
		CreatedAt:    time.Now(),
		Participants: participants,
	}
	res, err := f.db.Collection(f.collections.ChatRooms).InsertOne(ctx, room)
	if err != nil {
		return primitive.NilObjectID, err
	}
	return insertedID(res)
}

func (f *forumDatabase) GetRooms(ctx context.Context) ([]models.ChatRoom, error) {
	var rooms []models.ChatRoom
	if err := findAll(ctx, f.db.Collection(f.collections.ChatRooms), bson.D{}, &rooms); err != nil {
		return nil, err
	}
	return rooms, nil
}

func (f *forumDatabase) GetRoomByID(ctx context.Context, id string) (*models.ChatRoom, error) {
	oid, err := parseID(id)
	if err != nil {
		return nil, err
	}
	room := &models.ChatRoom{}
	found, err := findOne(ctx, f.db.Collection(f.collections.ChatRooms), bson.M{"_id": oid}, room)
	if err != nil || !found {
		return nil, err
	}
	return room, nil
}

// FindRoomByParticipants matches the full participant list, order included.
func (f *forumDatabase) FindRoomByParticipants(ctx context.Context, participants []string) (*models.ChatRoom, error) {
	if participants == nil {
		participants = []string{}
	}
	room := &models.ChatRoom{}
	filter := bson.M{"participants": participants}
	found, err := findOne(ctx, f.db.Collection(f.collections.ChatRooms), filter, room)
	if err != nil || !found {
		return nil, err
	}
	return room, nil
}

func (f *forumDatabase) JoinRoom(ctx context.Context, id, participantEmail string) error {
	oid, err := parseID(id)
	if err != nil {
		return err
	}
	_, err = f.db.Collection(f.collections.ChatRooms).UpdateOne(ctx,
		bson.M{"_id": oid},
		bson.M{"$addToSet": bson.M{"participants": participantEmail}},
	)
	return err
}

func (f *forumDatabase) LeaveRoom(ctx context.Context, id, participantEmail string) error {
	oid, err := parseID(id)
	if err != nil {
		return err
	}
	_, err = f.db.Collection(f.collections.ChatRooms).UpdateOne(ctx,
		bson.M{"_id": oid},
		bson.M{"$pull": bson.M{"participants": participantEmail}},
	)
	return err
}

func (f *forumDatabase) DeleteRoom(ctx context.Context, id string) (int64, error) {
	oid, err := parseID(id)
	if err != nil {
		return 0, err
	}
	res, err := f.db.Collection(f.collections.ChatRooms).DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return 0, err
	}
	return deletedCount(res), nil
}
