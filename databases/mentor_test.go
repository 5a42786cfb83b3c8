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

	"github.com/linesmerrill/stument-forum-api/databases/mocks"
	"github.com/linesmerrill/stument-forum-api/models"
)

func TestForumDatabase_AddMentor(t *testing.T) {
	forumDB, coll := newTestForum(t, testCollections.Mentors)
	oid := primitive.NewObjectID()

	coll.On("InsertOne", context.Background(), mock.MatchedBy(func(m models.Mentor) bool {
		return m.Type == "mentor" && m.Name == "Linus" && m.Email == "linus@x.com" && m.Expertise == "AI" && !m.CreatedAt.IsZero()
	})).Return(&mongo.InsertOneResult{InsertedID: oid}, nil)

	id, err := forumDB.AddMentor(context.Background(), "Linus", "linus@x.com", "AI")

	assert.NoError(t, err)
	assert.Equal(t, oid, id)
}

func TestForumDatabase_FindMentorByEmail(t *testing.T) {
	forumDB, coll := newTestForum(t, testCollections.Mentors)

	srHelperMissing := mocks.NewSingleResultHelper(t)
	srHelperCorrect := mocks.NewSingleResultHelper(t)
	srHelperMissing.On("Decode", mock.Anything).Return(mongo.ErrNoDocuments)
	srHelperCorrect.On("Decode", mock.Anything).Return(nil).Run(func(args mock.Arguments) {
		arg := args.Get(0).(*models.Mentor)
		arg.Email = "linus@x.com"
		arg.Expertise = "AI"
	})

	coll.On("FindOne", context.Background(), bson.M{"email": "missing@x.com"}).Return(srHelperMissing)
	coll.On("FindOne", context.Background(), bson.M{"email": "linus@x.com"}).Return(srHelperCorrect)

	mentor, err := forumDB.FindMentorByEmail(context.Background(), "missing@x.com")
	assert.NoError(t, err)
	assert.Nil(t, mentor)

	mentor, err = forumDB.FindMentorByEmail(context.Background(), "linus@x.com")
	assert.NoError(t, err)
	assert.Equal(t, &models.Mentor{Email: "linus@x.com", Expertise: "AI"}, mentor)
}

func TestForumDatabase_UpdateMentorByID(t *testing.T) {
	forumDB, coll := newTestForum(t, testCollections.Mentors)
	oid := primitive.NewObjectID()

	coll.On("UpdateOne", context.Background(),
		bson.M{"_id": oid},
		bson.M{"$set": bson.M{"name": "Linus", "email": "linus@x.com", "expertise": "Kernels"}},
	).Return(&mongo.UpdateResult{MatchedCount: 1, ModifiedCount: 1}, nil)

	n, err := forumDB.UpdateMentorByID(context.Background(), oid.Hex(), models.MentorUpdate{
		Name:      "Linus",
		Email:     "linus@x.com",
		Expertise: "Kernels",
	})

	assert.NoError(t, err)
	assert.Equal(t, int64(1), n)
}

func TestForumDatabase_DeleteMentor(t *testing.T) {
	forumDB, coll := newTestForum(t, testCollections.Mentors)
	oid := primitive.NewObjectID()
	coll.On("DeleteOne", context.Background(), bson.M{"_id": oid}).Return(&mongo.DeleteResult{DeletedCount: 0}, nil)

	n, err := forumDB.DeleteMentor(context.Background(), oid.Hex())

	assert.NoError(t, err)
	assert.Zero(t, n)
}

func TestForumDatabase_SearchMentors(t *testing.T) {
	tests := []struct {
		name      string
		expertise string
		filter    bson.M
	}{
		{"all mentors", "", bson.M{"type": "mentor"}},
		{"by expertise", "AI", bson.M{"type": "mentor", "expertise": "AI"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			forumDB, coll := newTestForum(t, testCollections.Mentors)
			cursor := mocks.NewCursorHelper(t)
			cursor.On("All", context.Background(), mock.Anything).Return(nil).Run(func(args mock.Arguments) {
				arg := args.Get(1).(*[]models.Mentor)
				*arg = []models.Mentor{{Name: "Linus", Expertise: "AI", Type: "mentor"}}
			})
			cursor.On("Close", context.Background()).Return(nil)
			coll.On("Find", context.Background(), tt.filter).Return(cursor, nil)

			mentors, err := forumDB.SearchMentors(context.Background(), tt.expertise)

			assert.NoError(t, err)
			assert.Equal(t, []models.Mentor{{Name: "Linus", Expertise: "AI", Type: "mentor"}}, mentors)
		})
	}
}

func TestForumDatabase_SearchMentorsError(t *testing.T) {
	forumDB, coll := newTestForum(t, testCollections.Mentors)
	coll.On("Find", mock.Anything, mock.Anything).Return(nil, errors.New("mocked-error"))

	mentors, err := forumDB.SearchMentors(context.Background(), "AI")

	assert.EqualError(t, err, "mocked-error")
	assert.Nil(t, mentors)
}

func TestForumDatabase_SearchMentorsDecodeError(t *testing.T) {
	forumDB, coll := newTestForum(t, testCollections.Mentors)
	cursor := mocks.NewCursorHelper(t)
	cursor.On("All", mock.Anything, mock.Anything).Return(errors.New("mocked-error"))
	cursor.On("Close", mock.Anything).Return(nil)
	coll.On("Find", mock.Anything, mock.Anything).Return(cursor, nil)

	mentors, err := forumDB.SearchMentors(context.Background(), "")

	assert.EqualError(t, err, "mocked-error")
	assert.Nil(t, mentors)
}
