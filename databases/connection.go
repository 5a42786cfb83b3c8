package databases

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/linesmerrill/stument-forum-api/models"
)

// ConnectionCursor lazily walks the connections matched by a query. Callers
// must Close it once done.
type ConnectionCursor struct {
	cur CursorHelper
}

// NewConnectionCursor wraps a cursor over the connections collection
func NewConnectionCursor(cur CursorHelper) *ConnectionCursor {
	return &ConnectionCursor{cur: cur}
}

// Next advances the cursor, returning false when exhausted or on error
func (c *ConnectionCursor) Next(ctx context.Context) bool {
	return c.cur.Next(ctx)
}

// Connection decodes the document the cursor currently points at
func (c *ConnectionCursor) Connection() (models.Connection, error) {
	var conn models.Connection
	err := c.cur.Decode(&conn)
	return conn, err
}

// Err returns the last error seen by Next
func (c *ConnectionCursor) Err() error {
	return c.cur.Err()
}

// Close releases the underlying cursor
func (c *ConnectionCursor) Close(ctx context.Context) error {
	return c.cur.Close(ctx)
}

func (f *forumDatabase) ConnectStudentToMentor(ctx context.Context, studentEmail, mentorEmail string) (primitive.ObjectID, error) {
	conn := models.Connection{
		StudentEmail: studentEmail,
		MentorEmail:  mentorEmail,
		ConnectedAt:  time.Now(),
	}
	res, err := f.db.Collection(f.collections.Connections).InsertOne(ctx, conn)
	if err != nil {
		return primitive.NilObjectID, err
	}
	return insertedID(res)
}

func (f *forumDatabase) FindConnectionsByStudentEmail(ctx context.Context, email string) (*ConnectionCursor, error) {
	return f.findConnections(ctx, bson.M{"student_email": email})
}

func (f *forumDatabase) FindConnectionsByMentorEmail(ctx context.Context, email string) (*ConnectionCursor, error) {
	return f.findConnections(ctx, bson.M{"mentor_email": email})
}

func (f *forumDatabase) findConnections(ctx context.Context, filter bson.M) (*ConnectionCursor, error) {
	cur, err := f.db.Collection(f.collections.Connections).Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	return NewConnectionCursor(cur), nil
}

func (f *forumDatabase) FindConnectionByID(ctx context.Context, id string) (*models.Connection, error) {
	oid, err := parseID(id)
	if err != nil {
		return nil, err
	}
	conn := &models.Connection{}
	found, err := findOne(ctx, f.db.Collection(f.collections.Connections), bson.M{"_id": oid}, conn)
	if err != nil || !found {
		return nil, err
	}
	return conn, nil
}

func (f *forumDatabase) DeleteConnection(ctx context.Context, id string) (int64, error) {
	oid, err := parseID(id)
	if err != nil {
		return 0, err
	}
	res, err := f.db.Collection(f.collections.Connections).DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return 0, err
	}
	return deletedCount(res), nil
}
