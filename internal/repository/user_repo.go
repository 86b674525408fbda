package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"speechdown-backend/internal/models"
)

var userUpdateFields = []string{"name", "email", "role"}

type UserRepo struct {
	coll *mongo.Collection
}

func NewUserRepo(db *mongo.Database) *UserRepo {
	return &UserRepo{coll: db.Collection("users")}
}

func (r *UserRepo) List(ctx context.Context) ([]models.User, error) {
	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	users := []models.User{}
	if err := cursor.All(ctx, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (r *UserRepo) Create(ctx context.Context, user *models.User) error {
	res, err := r.coll.InsertOne(ctx, user)
	if err != nil {
		return err
	}
	user.ID = res.InsertedID.(primitive.ObjectID)
	return nil
}

func (r *UserRepo) GetByID(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	user := &models.User{}
	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(user)
	if err == mongo.ErrNoDocuments {
		return nil, &NotFoundError{Message: "user not found"}
	}
	if err != nil {
		return nil, err
	}
	return user, nil
}

func (r *UserRepo) Update(ctx context.Context, id primitive.ObjectID, data map[string]interface{}) error {
	if raw, ok := data["role"]; ok {
		role, isString := raw.(string)
		if !isString || !models.ValidRole(role) {
			return &ValidationError{Message: `role must be "parent" or "therapist"`}
		}
	}
	set, err := buildSetDocument(data, userUpdateFields, nil)
	if err != nil {
		return err
	}
	res, err := r.coll.UpdateByID(ctx, id, bson.M{"$set": set})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return &NotFoundError{Message: "user not found"}
	}
	return nil
}

func (r *UserRepo) Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return &NotFoundError{Message: "user not found"}
	}
	return nil
}
