package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Child references its owning parent and assigned therapist by ID only;
// neither reference is verified against the users collection at creation.
type Child struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Name        string             `bson:"name" json:"name"`
	Age         int                `bson:"age" json:"age"`
	Diagnosis   string             `bson:"diagnosis" json:"diagnosis"`
	ParentID    primitive.ObjectID `bson:"parent_id" json:"parent_id"`
	TherapistID primitive.ObjectID `bson:"therapist_id" json:"therapist_id"`
	Notes       string             `bson:"notes" json:"notes"`
}

type CreateChildRequest struct {
	Name        string `json:"name"`
	Age         int    `json:"age"`
	Diagnosis   string `json:"diagnosis"`
	ParentID    string `json:"parent_id"`
	TherapistID string `json:"therapist_id"`
	Notes       string `json:"notes"`
}
