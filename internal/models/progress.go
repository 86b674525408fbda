package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Progress struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	ChildID     primitive.ObjectID `bson:"child_id" json:"child_id"`
	ActivityID  primitive.ObjectID `bson:"activity_id" json:"activity_id"`
	TherapistID primitive.ObjectID `bson:"therapist_id" json:"therapist_id"`
	Score       int                `bson:"score" json:"score"`
	Date        time.Time          `bson:"date" json:"date"`
	Notes       string             `bson:"notes" json:"notes"`
}

type CreateProgressRequest struct {
	ChildID     string `json:"child_id"`
	ActivityID  string `json:"activity_id"`
	TherapistID string `json:"therapist_id"`
	Score       int    `json:"score"`
	Notes       string `json:"notes"`
}
