package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Activity struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Title         string             `bson:"title" json:"title"`
	Content       string             `bson:"content" json:"content"`
	Type          string             `bson:"type,omitempty" json:"type,omitempty"`
	CreatedBy     primitive.ObjectID `bson:"created_by" json:"created_by"`
	CreatedAt     time.Time          `bson:"created_at" json:"created_at"`
	IsAIGenerated bool               `bson:"is_ai_generated" json:"is_ai_generated"`
	Prompt        string             `bson:"prompt" json:"prompt"`
}

type CreateActivityRequest struct {
	Title         string `json:"title"`
	Content       string `json:"content"`
	CreatedBy     string `json:"created_by"`
	IsAIGenerated bool   `json:"is_ai_generated"`
	Prompt        string `json:"prompt"`
}

type GenerateReadingRequest struct {
	Age         int    `json:"age"`
	TherapistID string `json:"therapist_id"`
	Length      int    `json:"length"`
	Theme       string `json:"theme"`
}

type GeneratePronunciationRequest struct {
	Age          int    `json:"age"`
	TherapistID  string `json:"therapist_id"`
	SyllableType string `json:"syllable_type"`
	Count        int    `json:"count"`
}

type GenerateComprehensionRequest struct {
	Age           int    `json:"age"`
	TherapistID   string `json:"therapist_id"`
	QuestionCount int    `json:"question_count"`
	Theme         string `json:"theme"`
}

// GenerateActivityRequest is the combined variant: task_type selects the
// template, the remaining fields are the union of the per-variant parameters.
type GenerateActivityRequest struct {
	Age           int    `json:"age"`
	ChildAge      int    `json:"child_age"`
	TherapistID   string `json:"therapist_id"`
	TaskType      string `json:"task_type"`
	Theme         string `json:"theme"`
	SyllableType  string `json:"syllable_type"`
	SentenceCount int    `json:"sentence_count"`
	WordCount     int    `json:"word_count"`
	QuestionCount int    `json:"question_count"`
}

// ActivityProgress is a lightweight activity-scoped note with no link to the
// main progress collection.
type ActivityProgress struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	ActivityID primitive.ObjectID `bson:"activity_id" json:"activity_id"`
	Notes      string             `bson:"notes" json:"notes"`
	Completed  bool               `bson:"completed" json:"completed"`
	CreatedAt  time.Time          `bson:"created_at" json:"created_at"`
}
