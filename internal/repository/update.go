package repository

import (
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// buildSetDocument filters a raw update payload down to recognized field names
// and converts reference fields to ObjectIDs before the merge. Unrecognized
// keys are dropped rather than persisted.
func buildSetDocument(data map[string]interface{}, allowed []string, refFields map[string]bool) (bson.M, error) {
	set := bson.M{}
	for _, field := range allowed {
		value, ok := data[field]
		if !ok {
			continue
		}
		if refFields[field] {
			hex, ok := value.(string)
			if !ok {
				return nil, &InvalidIDError{Message: "invalid " + field}
			}
			oid, err := primitive.ObjectIDFromHex(hex)
			if err != nil {
				return nil, &InvalidIDError{Message: "invalid " + field}
			}
			set[field] = oid
			continue
		}
		set[field] = normalizeNumber(value)
	}
	if len(set) == 0 {
		return nil, &ValidationError{Message: "no updatable fields in request"}
	}
	return set, nil
}

// JSON numbers decode as float64; whole values are stored back as integers so
// documents keep the numeric shape they were created with.
func normalizeNumber(v interface{}) interface{} {
	f, ok := v.(float64)
	if !ok {
		return v
	}
	if f == float64(int64(f)) {
		return int64(f)
	}
	return v
}
