package models

import "go.mongodb.org/mongo-driver/bson/primitive"

const (
	RoleParent    = "parent"
	RoleTherapist = "therapist"
)

type User struct {
	ID    primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Name  string             `bson:"name" json:"name"`
	Email string             `bson:"email" json:"email"`
	Role  string             `bson:"role" json:"role"`
}

type CreateUserRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

func ValidRole(role string) bool {
	return role == RoleParent || role == RoleTherapist
}
