package service

import (
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// NotFoundError reports that no document of Resource has the requested ID.
// Its message is what the API sends back verbatim.
type NotFoundError struct {
	Resource string
}

func (e *NotFoundError) Error() string {
	return e.Resource + " not found"
}

// InvalidIDError reports an identifier that is not a 24-character hex ObjectID.
type InvalidIDError struct {
	Value string
}

func (e *InvalidIDError) Error() string {
	return fmt.Sprintf("invalid id %q: must be a 24 character hex string", e.Value)
}

// ParseID converts a path or token identifier into an ObjectID.
func ParseID(hex string) (primitive.ObjectID, error) {
	id, err := primitive.ObjectIDFromHex(hex)
	if err != nil {
		return primitive.NilObjectID, &InvalidIDError{Value: hex}
	}
	return id, nil
}
