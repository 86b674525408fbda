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
	activityUpdateFields = []string{"title", "content", "type", "created_by", "is_ai_generated", "prompt"}
	activityRefFields    = map[string]bool{"created_by": true}
)

type ActivityRepo struct {
	coll *mongo.Collection
}

func NewActivityRepo(db *mongo.Database) *ActivityRepo {
	return &ActivityRepo{coll: db.Collection("activities")}
}

func (r *ActivityRepo) List(ctx context.Context) ([]models.Activity, error) {
	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	activities := []models.Activity{}
	if err := cursor.All(ctx, &activities); err != nil {
		return nil, err
	}
	return activities, nil
}

func (r *ActivityRepo) Create(ctx context.Context, activity *models.Activity) error {
	activity.CreatedAt = time.Now().UTC()
	res, err := r.coll.InsertOne(ctx, activity)
	if err != nil {
		return err
	}
	activity.ID = res.InsertedID.(primitive.ObjectID)
	return nil
}

func (r *ActivityRepo) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Activity, error) {
	activity := &models.Activity{}
	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(activity)
	if err == mongo.ErrNoDocuments {
		return nil, &NotFoundError{Message: "activity not found"}
	}
	if err != nil {
		return nil, err
	}
	return activity, nil
}

func (r *ActivityRepo) Update(ctx context.Context, id primitive.ObjectID, data map[string]interface{}) error {
	set, err := buildSetDocument(data, activityUpdateFields, activityRefFields)
	if err != nil {
		return err
	}
	res, err := r.coll.UpdateByID(ctx, id, bson.M{"$set": set})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return &NotFoundError{Message: "activity not found"}
	}
	return nil
}

func (r *ActivityRepo) Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return &NotFoundError{Message: "activity not found"}
	}
	return nil
}

// ActivityProgressRepo writes to the activity_progress collection. The
// collection is write-only from the API's point of view.
type ActivityProgressRepo struct {
	coll *mongo.Collection
}

func NewActivityProgressRepo(db *mongo.Database) *ActivityProgressRepo {
	return &ActivityProgressRepo{coll: db.Collection("activity_progress")}
}

func (r *ActivityProgressRepo) Create(ctx context.Context, progress *models.ActivityProgress) error {
	progress.CreatedAt = time.Now().UTC()
	res, err := r.coll.InsertOne(ctx, progress)
	if err != nil {
		return err
	}
	progress.ID = res.InsertedID.(primitive.ObjectID)
	return nil
}
