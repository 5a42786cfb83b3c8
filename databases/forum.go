package databases

// go generate: mockery --name ForumDatabase

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/linesmerrill/stument-forum-api/config"
	"github.com/linesmerrill/stument-forum-api/models"
)

// ErrInvalidID is returned when an identifier cannot be parsed into an ObjectID
var ErrInvalidID = errors.New("invalid identifier")

// ForumDatabase contains the methods to use with the forum collections. Every
// method issues a single operation against the collection it targets.
type ForumDatabase interface {
	AddStudent(ctx context.Context, name, email string) (primitive.ObjectID, error)
	AddMentor(ctx context.Context, name, email, expertise string) (primitive.ObjectID, error)
	FindStudentByEmail(ctx context.Context, email string) (*models.Student, error)
	FindMentorByEmail(ctx context.Context, email string) (*models.Mentor, error)
	UpdateStudentByID(ctx context.Context, id string, update models.StudentUpdate) (int64, error)
	UpdateMentorByID(ctx context.Context, id string, update models.MentorUpdate) (int64, error)
	DeleteStudent(ctx context.Context, id string) (int64, error)
	DeleteMentor(ctx context.Context, id string) (int64, error)
	SearchMentors(ctx context.Context, expertise string) ([]models.Mentor, error)

	ConnectStudentToMentor(ctx context.Context, studentEmail, mentorEmail string) (primitive.ObjectID, error)
	FindConnectionsByStudentEmail(ctx context.Context, email string) (*ConnectionCursor, error)
	FindConnectionsByMentorEmail(ctx context.Context, email string) (*ConnectionCursor, error)
	FindConnectionByID(ctx context.Context, id string) (*models.Connection, error)
	DeleteConnection(ctx context.Context, id string) (int64, error)

	CreateRoom(ctx context.Context, roomName string, participants []string) (primitive.ObjectID, error)
	GetRooms(ctx context.Context) ([]models.ChatRoom, error)
	GetRoomByID(ctx context.Context, id string) (*models.ChatRoom, error)
	FindRoomByParticipants(ctx context.Context, participants []string) (*models.ChatRoom, error)
	JoinRoom(ctx context.Context, id, participantEmail string) error
	LeaveRoom(ctx context.Context, id, participantEmail string) error
	DeleteRoom(ctx context.Context, id string) (int64, error)

	PostMessage(ctx context.Context, roomID, senderEmail, message string) (primitive.ObjectID, error)
	GetMessagesByRoom(ctx context.Context, roomID string) ([]models.Message, error)

	CountDocuments(ctx context.Context) (models.ForumStats, error)
}

type forumDatabase struct {
	db          DatabaseHelper
	collections config.Collections
}

// NewForumDatabase initializes a new instance of forum database with the provided db
// connection and collection names
func NewForumDatabase(db DatabaseHelper, collections config.Collections) ForumDatabase {
	return &forumDatabase{
		db:          db,
		collections: collections,
	}
}

func parseID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("%w %q: %v", ErrInvalidID, id, err)
	}
	return oid, nil
}

func insertedID(res *mongo.InsertOneResult) (primitive.ObjectID, error) {
	if res == nil {
		return primitive.NilObjectID, errors.New("insert returned no result")
	}
	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, fmt.Errorf("unexpected inserted id type %T", res.InsertedID)
	}
	return oid, nil
}

// findOne decodes a single document into v, reporting false when nothing matched
func findOne(ctx context.Context, coll CollectionHelper, filter interface{}, v interface{}) (bool, error) {
	err := coll.FindOne(ctx, filter).Decode(v)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// findAll drains a cursor into results, which must be a pointer to a slice
func findAll(ctx context.Context, coll CollectionHelper, filter interface{}, results interface{}) error {
	cur, err := coll.Find(ctx, filter)
	if err != nil {
		return err
	}
	defer cur.Close(ctx)
	return cur.All(ctx, results)
}

func modifiedCount(res *mongo.UpdateResult) int64 {
	if res == nil {
		return 0
	}
	return res.ModifiedCount
}

func deletedCount(res *mongo.DeleteResult) int64 {
	if res == nil {
		return 0
	}
	return res.DeletedCount
}
