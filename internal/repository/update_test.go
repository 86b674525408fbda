package repository

import (
	"testing"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestBuildSetDocument_DropsUnknownKeys(t *testing.T) {
	data := map[string]interface{}{
		"name":    "Ana",
		"email":   "a@x.com",
		"is_admin": true,
		"$where":  "1 == 1",
	}

	set, err := buildSetDocument(data, []string{"name", "email", "role"}, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(set) != 2 {
		t.Errorf("Expected 2 fields in set document, got %d", len(set))
	}
	if _, ok := set["is_admin"]; ok {
		t.Error("Unrecognized key 'is_admin' must not be merged")
	}
	if _, ok := set["$where"]; ok {
		t.Error("Operator-shaped key must not be merged")
	}
}

func TestBuildSetDocument_ConvertsReferences(t *testing.T) {
	ref := primitive.NewObjectID()
	data := map[string]interface{}{"therapist_id": ref.Hex()}

	set, err := buildSetDocument(data, []string{"therapist_id"}, map[string]bool{"therapist_id": true})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, ok := set["therapist_id"].(primitive.ObjectID)
	if !ok {
		t.Fatalf("Expected ObjectID, got %T", set["therapist_id"])
	}
	if got != ref {
		t.Errorf("Expected %s, got %s", ref.Hex(), got.Hex())
	}
}

func TestBuildSetDocument_InvalidReference(t *testing.T) {
	tests := []struct {
		name  string
		value interface{}
	}{
		{"malformed hex", "not-an-id"},
		{"wrong type", 12345},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			data := map[string]interface{}{"parent_id": tc.value}
			_, err := buildSetDocument(data, []string{"parent_id"}, map[string]bool{"parent_id": true})
			if _, ok := err.(*InvalidIDError); !ok {
				t.Errorf("Expected InvalidIDError, got %v", err)
			}
		})
	}
}

func TestBuildSetDocument_EmptyMerge(t *testing.T) {
	data := map[string]interface{}{"unknown": "value"}
	_, err := buildSetDocument(data, []string{"name"}, nil)
	if _, ok := err.(*ValidationError); !ok {
		t.Errorf("Expected ValidationError for empty merge, got %v", err)
	}
}

func TestNormalizeNumber(t *testing.T) {
	if got := normalizeNumber(float64(7)); got != int64(7) {
		t.Errorf("Expected int64(7), got %v (%T)", got, got)
	}
	if got := normalizeNumber(7.5); got != 7.5 {
		t.Errorf("Expected 7.5 unchanged, got %v", got)
	}
	if got := normalizeNumber("seven"); got != "seven" {
		t.Errorf("Expected non-numeric value unchanged, got %v", got)
	}
}
