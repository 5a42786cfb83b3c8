package databases

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/linesmerrill/stument-forum-api/models"
)

func (f *forumDatabase) AddMentor(ctx context.Context, name, email, expertise string) (primitive.ObjectID, error) {
	coll := f.db.Collection(f.collections.Mentors)
	mentor := models.Mentor{
		Type:      models.MentorType,
		Name:      name,
		Email:     email,
		Expertise: expertise,
		CreatedAt: time.Now(),
	}
	res, err := coll.InsertOne(ctx, mentor)
	if err != nil {
		return primitive.NilObjectID, err
	}
	return insertedID(res)
}

func (f *forumDatabase) FindMentorByEmail(ctx context.Context, email string) (*models.Mentor, error) {
	coll := f.db.Collection(f.collections.Mentors)
	mentor := &models.Mentor{}
	found, err := findOne(ctx, coll, bson.M{"email": email}, mentor)
	if err != nil || !found {
		return nil, err
	}
	return mentor, nil
}

func (f *forumDatabase) UpdateMentorByID(ctx context.Context, id string, update models.MentorUpdate) (int64, error) {
	oid, err := parseID(id)
	if err != nil {
		return 0, err
	}
	coll := f.db.Collection(f.collections.Mentors)
	res, err := coll.UpdateOne(ctx,
		bson.M{"_id": oid},
		bson.M{"$set": bson.M{
			"name":      update.Name,
			"email":     update.Email,
			"expertise": update.Expertise,
		}},
	)
	if err != nil {
		return 0, err
	}
	return modifiedCount(res), nil
}

func (f *forumDatabase) DeleteMentor(ctx context.Context, id string) (int64, error) {
	oid, err := parseID(id)
	if err != nil {
		return 0, err
	}
	res, err := f.db.Collection(f.collections.Mentors).DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return 0, err
	}
	return deletedCount(res), nil
}

// SearchMentors returns every mentor, or only those whose expertise matches
// exactly when expertise is non-empty.
func (f *forumDatabase) SearchMentors(ctx context.Context, expertise string) ([]models.Mentor, error) {
	coll := f.db.Collection(f.collections.Mentors)
	filter := bson.M{"type": models.MentorType}
	if expertise != "" {
		filter["expertise"] = expertise
	}
	var mentors []models.Mentor
	if err := findAll(ctx, coll, filter, &mentors); err != nil {
		return nil, err
	}
	return mentors, nil
}
