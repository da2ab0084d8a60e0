package dbop

import (
	"fmt"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// ParseID converts a path or payload identifier into a document key. Malformed
// input yields KindMalformedID so handlers surface it as a bad request rather
// than an internal error.
func ParseID(hex string) (bson.ObjectID, error) {
	id, err := bson.ObjectIDFromHex(hex)
	if err != nil {
		return bson.NilObjectID, &Error{
			Kind:    KindMalformedID,
			Message: fmt.Sprintf("malformed document id %q", hex),
			cause:   err,
		}
	}
	return id, nil
}
