package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"speechdown-backend/internal/models"
)

var (
	progressUpdateFields = []string{"child_id", "activity_id", "therapist_id", "score", "notes"}
	progressRefFields    = map[string]bool{"child_id": true, "activity_id": true, "therapist_id": true}
)

type ProgressRepo struct {
	coll *mongo.Collection
}

func NewProgressRepo(db *mongo.Database) *ProgressRepo {
	return &ProgressRepo{coll: db.Collection("progress")}
}

func (r *ProgressRepo) List(ctx context.Context) ([]models.Progress, error) {
	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	items := []models.Progress{}
	if err := cursor.All(ctx, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *ProgressRepo) Create(ctx context.Context, progress *models.Progress) error {
	progress.Date = time.Now().UTC()
	res, err := r.coll.InsertOne(ctx, progress)
	if err != nil {
		return err
	}
	progress.ID = res.InsertedID.(primitive.ObjectID)
	return nil
}

func (r *ProgressRepo) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Progress, error) {
	progress := &models.Progress{}
	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(progress)
	if err == mongo.ErrNoDocuments {
		return nil, &NotFoundError{Message: "progress record not found"}
	}
	if err != nil {
		return nil, err
	}
	return progress, nil
}

func (r *ProgressRepo) Update(ctx context.Context, id primitive.ObjectID, data map[string]interface{}) error {
	set, err := buildSetDocument(data, progressUpdateFields, progressRefFields)
	if err != nil {
		return err
	}
	res, err := r.coll.UpdateByID(ctx, id, bson.M{"$set": set})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return &NotFoundError{Message: "progress record not found"}
	}
	return nil
}

func (r *ProgressRepo) Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return &NotFoundError{Message: "progress record not found"}
	}
	return nil
}
