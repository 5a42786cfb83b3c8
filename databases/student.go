package databases

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/linesmerrill/stument-forum-api/models"
)

func (f *forumDatabase) AddStudent(ctx context.Context, name, email string) (primitive.ObjectID, error) {
	coll := f.db.Collection(f.collections.Students)
	student := models.Student{
		Type:      models.StudentType,
		Name:      name,
		Email:     email,
		CreatedAt: time.Now(),
	}
	res, err := coll.InsertOne(ctx, student)
	if err != nil {
		return primitive.NilObjectID, err
	}
	return insertedID(res)
}

func (f *forumDatabase) FindStudentByEmail(ctx context.Context, email string) (*models.Student, error) {
	coll := f.db.Collection(f.collections.Students)
	student := &models.Student{}
	found, err := findOne(ctx, coll, bson.M{"email": email}, student)
	if err != nil || !found {
		return nil, err
	}
	return student, nil
}

func (f *forumDatabase) UpdateStudentByID(ctx context.Context, id string, update models.StudentUpdate) (int64, error) {
	oid, err := parseID(id)
	if err != nil {
		return 0, err
	}
	coll := f.db.Collection(f.collections.Students)
	res, err := coll.UpdateOne(ctx,
		bson.M{"_id": oid},
		bson.M{"$set": bson.M{"name": update.Name, "email": update.Email}},
	)
	if err != nil {
		return 0, err
	}
	return modifiedCount(res), nil
}

func (f *forumDatabase) DeleteStudent(ctx context.Context, id string) (int64, error) {
	oid, err := parseID(id)
	if err != nil {
		return 0, err
	}
	res, err := f.db.Collection(f.collections.Students).DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return 0, err
	}
	return deletedCount(res), nil
}
