package databases_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/linesmerrill/stument-forum-api/databases"
	"github.com/linesmerrill/stument-forum-api/databases/mocks"
	"github.com/linesmerrill/stument-forum-api/models"
)

func TestForumDatabase_CreateRoomKeepsDuplicates(t *testing.T) {
	forumDB, coll := newTestForum(t, testCollections.ChatRooms)
	oid := primitive.NewObjectID()

	coll.On("InsertOne", context.Background(), mock.MatchedBy(func(r models.ChatRoom) bool {
		return r.RoomName == "study" &&
			assert.ObjectsAreEqual([]string{"a@x.com", "a@x.com", "b@x.com"}, r.Participants) &&
			!r.CreatedAt.IsZero()
	})).Return(&mongo.InsertOneResult{InsertedID: oid}, nil)

	id, err := forumDB.CreateRoom(context.Background(), "study", []string{"a@x.com", "a@x.com", "b@x.com"})

	assert.NoError(t, err)
	assert.Equal(t, oid, id)
}

func TestForumDatabase_CreateRoomNilParticipants(t *testing.T) {
	forumDB, coll := newTestForum(t, testCollections.ChatRooms)

	coll.On("InsertOne", context.Background(), mock.MatchedBy(func(r models.ChatRoom) bool {
		return r.Participants != nil && len(r.Participants) == 0
	})).Return(&mongo.InsertOneResult{InsertedID: primitive.NewObjectID()}, nil)

	_, err := forumDB.CreateRoom(context.Background(), "empty", nil)

	assert.NoError(t, err)
}

func TestForumDatabase_GetRooms(t *testing.T) {
	forumDB, coll := newTestForum(t, testCollections.ChatRooms)
	cursor := mocks.NewCursorHelper(t)
	cursor.On("All", context.Background(), mock.Anything).Return(nil).Run(func(args mock.Arguments) {
		arg := args.Get(1).(*[]models.ChatRoom)
		*arg = []models.ChatRoom{{RoomName: "one"}, {RoomName: "two"}}
	})
	cursor.On("Close", context.Background()).Return(nil)
	coll.On("Find", context.Background(), bson.D{}).Return(cursor, nil)

	rooms, err := forumDB.GetRooms(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, []models.ChatRoom{{RoomName: "one"}, {RoomName: "two"}}, rooms)
}

func TestForumDatabase_GetRoomByID(t *testing.T) {
	forumDB, coll := newTestForum(t, testCollections.ChatRooms)
	oid := primitive.NewObjectID()

	srHelper := mocks.NewSingleResultHelper(t)
	srHelper.On("Decode", mock.Anything).Return(nil).Run(func(args mock.Arguments) {
		arg := args.Get(0).(*models.ChatRoom)
		arg.ID = oid
		arg.RoomName = "study"
	})
	coll.On("FindOne", context.Background(), bson.M{"_id": oid}).Return(srHelper)

	room, err := forumDB.GetRoomByID(context.Background(), oid.Hex())

	assert.NoError(t, err)
	assert.Equal(t, &models.ChatRoom{ID: oid, RoomName: "study"}, room)
}

func TestForumDatabase_GetRoomByIDError(t *testing.T) {
	forumDB, coll := newTestForum(t, testCollections.ChatRooms)
	srHelper := mocks.NewSingleResultHelper(t)
	srHelper.On("Decode", mock.Anything).Return(errors.New("mocked-error"))
	coll.On("FindOne", mock.Anything, mock.Anything).Return(srHelper)

	room, err := forumDB.GetRoomByID(context.Background(), primitive.NewObjectID().Hex())

	assert.EqualError(t, err, "mocked-error")
	assert.Nil(t, room)
}

func TestForumDatabase_FindRoomByParticipants(t *testing.T) {
	forumDB, coll := newTestForum(t, testCollections.ChatRooms)
	participants := []string{"a@x.com", "b@x.com"}

	srHelper := mocks.NewSingleResultHelper(t)
	srHelper.On("Decode", mock.Anything).Return(mongo.ErrNoDocuments)
	coll.On("FindOne", context.Background(), bson.M{"participants": participants}).Return(srHelper)

	room, err := forumDB.FindRoomByParticipants(context.Background(), participants)

	assert.NoError(t, err)
	assert.Nil(t, room)
}

func TestForumDatabase_JoinRoom(t *testing.T) {
	forumDB, coll := newTestForum(t, testCollections.ChatRooms)
	oid := primitive.NewObjectID()
	coll.On("UpdateOne", context.Background(),
		bson.M{"_id": oid},
		bson.M{"$addToSet": bson.M{"participants": "c@x.com"}},
	).Return(&mongo.UpdateResult{MatchedCount: 1, ModifiedCount: 1}, nil)

	err := forumDB.JoinRoom(context.Background(), oid.Hex(), "c@x.com")

	assert.NoError(t, err)
}

func TestForumDatabase_JoinRoomMissingRoomIsNoop(t *testing.T) {
	forumDB, coll := newTestForum(t, testCollections.ChatRooms)
	coll.On("UpdateOne", mock.Anything, mock.Anything, mock.Anything).Return(&mongo.UpdateResult{}, nil)

	err := forumDB.JoinRoom(context.Background(), primitive.NewObjectID().Hex(), "c@x.com")

	assert.NoError(t, err)
}

func TestForumDatabase_LeaveRoom(t *testing.T) {
	forumDB, coll := newTestForum(t, testCollections.ChatRooms)
	oid := primitive.NewObjectID()
	coll.On("UpdateOne", context.Background(),
		bson.M{"_id": oid},
		bson.M{"$pull": bson.M{"participants": "c@x.com"}},
	).Return(nil, errors.New("mocked-error"))

	err := forumDB.LeaveRoom(context.Background(), oid.Hex(), "c@x.com")

	assert.EqualError(t, err, "mocked-error")
}

func TestForumDatabase_JoinRoomAlreadyJoined(t *testing.T) {
	forumDB, coll := newTestForum(t, testCollections.ChatRooms)
	oid := primitive.NewObjectID()
	coll.On("UpdateOne", context.Background(),
		bson.M{"_id": oid},
		bson.M{"$addToSet": bson.M{"participants": "a@x.com"}},
	).Return(&mongo.UpdateResult{MatchedCount: 1, ModifiedCount: 0}, nil).Twice()

	assert.NoError(t, forumDB.JoinRoom(context.Background(), oid.Hex(), "a@x.com"))
	assert.NoError(t, forumDB.JoinRoom(context.Background(), oid.Hex(), "a@x.com"))
}

func TestForumDatabase_LeaveRoomNotAParticipant(t *testing.T) {
	forumDB, coll := newTestForum(t, testCollections.ChatRooms)
	oid := primitive.NewObjectID()
	coll.On("UpdateOne", context.Background(),
		bson.M{"_id": oid},
		bson.M{"$pull": bson.M{"participants": "z@x.com"}},
	).Return(&mongo.UpdateResult{MatchedCount: 1, ModifiedCount: 0}, nil)

	err := forumDB.LeaveRoom(context.Background(), oid.Hex(), "z@x.com")

	assert.NoError(t, err)
}

func TestForumDatabase_LeaveRoomInvalidID(t *testing.T) {
	forumDB := newUntouchedForum(t)

	err := forumDB.LeaveRoom(context.Background(), "not-hex", "z@x.com")

	assert.ErrorIs(t, err, databases.ErrInvalidID)
}

func TestForumDatabase_DeleteRoom(t *testing.T) {
	forumDB, coll := newTestForum(t, testCollections.ChatRooms)
	oid := primitive.NewObjectID()
	coll.On("DeleteOne", context.Background(), bson.M{"_id": oid}).Return(&mongo.DeleteResult{DeletedCount: 1}, nil)

	n, err := forumDB.DeleteRoom(context.Background(), oid.Hex())

	assert.NoError(t, err)
	assert.Equal(t, int64(1), n)
}
