package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"speechdown-backend/internal/models"
)

var (
	childUpdateFields = []string{"name", "age", "diagnosis", "notes", "parent_id", "therapist_id"}
	childRefFields    = map[string]bool{"parent_id": true, "therapist_id": true}
)

type ChildRepo struct {
	coll *mongo.Collection
}

func NewChildRepo(db *mongo.Database) *ChildRepo {
	return &ChildRepo{coll: db.Collection("children")}
}

func (r *ChildRepo) List(ctx context.Context) ([]models.Child, error) {
	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	children := []models.Child{}
	if err := cursor.All(ctx, &children); err != nil {
		return nil, err
	}
	return children, nil
}

func (r *ChildRepo) Create(ctx context.Context, child *models.Child) error {
	res, err := r.coll.InsertOne(ctx, child)
	if err != nil {
		return err
	}
	child.ID = res.InsertedID.(primitive.ObjectID)
	return nil
}

func (r *ChildRepo) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Child, error) {
	child := &models.Child{}
	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(child)
	if err == mongo.ErrNoDocuments {
		return nil, &NotFoundError{Message: "child not found"}
	}
	if err != nil {
		return nil, err
	}
	return child, nil
}

// GetByIDAndTherapist backs the progress-creation association check: it only
// matches when the stored therapist_id equals the supplied one.
func (r *ChildRepo) GetByIDAndTherapist(ctx context.Context, id, therapistID primitive.ObjectID) (*models.Child, error) {
	child := &models.Child{}
	err := r.coll.FindOne(ctx, bson.M{"_id": id, "therapist_id": therapistID}).Decode(child)
	if err == mongo.ErrNoDocuments {
		return nil, &NotFoundError{Message: "child not found"}
	}
	if err != nil {
		return nil, err
	}
	return child, nil
}

func (r *ChildRepo) Update(ctx context.Context, id primitive.ObjectID, data map[string]interface{}) error {
	set, err := buildSetDocument(data, childUpdateFields, childRefFields)
	if err != nil {
		return err
	}
	res, err := r.coll.UpdateByID(ctx, id, bson.M{"$set": set})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return &NotFoundError{Message: "child not found"}
	}
	return nil
}

func (r *ChildRepo) Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return &NotFoundError{Message: "child not found"}
	}
	return nil
}
