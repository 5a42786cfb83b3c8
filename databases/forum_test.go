package databases_test

import (
	"context"
	"errors"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/linesmerrill/stument-forum-api/config"
	"github.com/linesmerrill/stument-forum-api/databases"
	"github.com/linesmerrill/stument-forum-api/databases/mocks"
	"github.com/linesmerrill/stument-forum-api/models"
)

var testCollections = config.Collections{
	Students:    "test_students",
	Mentors:     "test_mentors",
	Connections: "test_connections",
	Messages:    "test_messages",
	ChatRooms:   "test_chat_rooms",
}

// newTestForum returns a forum database whose only collection is the mocked one
func newTestForum(t *testing.T, collection string) (databases.ForumDatabase, *mocks.CollectionHelper) {
	dbHelper := mocks.NewDatabaseHelper(t)
	collectionHelper := mocks.NewCollectionHelper(t)
	dbHelper.On("Collection", collection).Return(collectionHelper)
	return databases.NewForumDatabase(dbHelper, testCollections), collectionHelper
}

// newUntouchedForum returns a forum database that fails the test on any store call
func newUntouchedForum(t *testing.T) databases.ForumDatabase {
	return databases.NewForumDatabase(mocks.NewDatabaseHelper(t), testCollections)
}

func TestNewForumDatabase(t *testing.T) {
	_ = os.Setenv("MONGODB_URI", "mongodb://127.0.0.1:27017")
	_ = os.Setenv("MONGODB_DB_NAME", "test")
	conf := config.New()

	dbClient, err := databases.NewClient(conf)
	assert.NoError(t, err)

	db := databases.NewDatabase(conf, dbClient)

	forumDB := databases.NewForumDatabase(db, conf.Collections)

	assert.NotEmpty(t, forumDB)
}

func TestForumDatabase_CountDocuments(t *testing.T) {
	dbHelper := mocks.NewDatabaseHelper(t)
	counts := map[string]int64{
		testCollections.Students:    3,
		testCollections.Mentors:     2,
		testCollections.Connections: 4,
		testCollections.ChatRooms:   1,
		testCollections.Messages:    9,
	}
	for name, n := range counts {
		coll := mocks.NewCollectionHelper(t)
		coll.On("CountDocuments", context.Background(), bson.D{}).Return(n, nil)
		dbHelper.On("Collection", name).Return(coll)
	}

	forumDB := databases.NewForumDatabase(dbHelper, testCollections)
	stats, err := forumDB.CountDocuments(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, models.ForumStats{Students: 3, Mentors: 2, Connections: 4, ChatRooms: 1, Messages: 9}, stats)
}

func TestForumDatabase_CountDocumentsError(t *testing.T) {
	forumDB, coll := newTestForum(t, testCollections.Students)
	coll.On("CountDocuments", mock.Anything, mock.Anything).Return(int64(0), errors.New("mocked-error"))

	stats, err := forumDB.CountDocuments(context.Background())

	assert.EqualError(t, err, "mocked-error")
	assert.Equal(t, models.ForumStats{}, stats)
}

func TestInvalidIDsNeverReachTheStore(t *testing.T) {
	forumDB := newUntouchedForum(t)
	ctx := context.Background()

	_, err := forumDB.UpdateStudentByID(ctx, "1234", models.StudentUpdate{})
	assert.ErrorIs(t, err, databases.ErrInvalidID)
	_, err = forumDB.UpdateMentorByID(ctx, "nope", models.MentorUpdate{})
	assert.ErrorIs(t, err, databases.ErrInvalidID)
	_, err = forumDB.DeleteStudent(ctx, "")
	assert.ErrorIs(t, err, databases.ErrInvalidID)
	_, err = forumDB.DeleteMentor(ctx, "zzzzzzzzzzzzzzzzzzzzzzzz")
	assert.ErrorIs(t, err, databases.ErrInvalidID)
	_, err = forumDB.FindConnectionByID(ctx, "1234")
	assert.ErrorIs(t, err, databases.ErrInvalidID)
	_, err = forumDB.DeleteConnection(ctx, "1234")
	assert.ErrorIs(t, err, databases.ErrInvalidID)
	_, err = forumDB.GetRoomByID(ctx, "1234")
	assert.ErrorIs(t, err, databases.ErrInvalidID)
	assert.ErrorIs(t, forumDB.JoinRoom(ctx, "1234", "a@x.com"), databases.ErrInvalidID)
	assert.ErrorIs(t, forumDB.LeaveRoom(ctx, "1234", "a@x.com"), databases.ErrInvalidID)
	_, err = forumDB.DeleteRoom(ctx, "1234")
	assert.ErrorIs(t, err, databases.ErrInvalidID)
}

func TestInvalidIDKeepsParseMessage(t *testing.T) {
	forumDB := newUntouchedForum(t)

	_, err := forumDB.DeleteStudent(context.Background(), "1234")

	assert.Contains(t, err.Error(), "the provided hex string is not a valid ObjectID")
	assert.Contains(t, err.Error(), `"1234"`)
}
