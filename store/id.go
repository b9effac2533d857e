package store

import (
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// DocumentID is the store-assigned identifier of a document. Internally it is
// a 12-byte ObjectID; externally it only ever appears as the 24-character hex
// string produced by String. Parse and String are the sole crossing points —
// nothing else in the codebase touches the hex form.
type DocumentID struct {
	oid primitive.ObjectID
}

// ParseDocumentID converts the external hex form back into an identifier.
func ParseDocumentID(s string) (DocumentID, error) {
	oid, err := primitive.ObjectIDFromHex(s)
	if err != nil {
		return DocumentID{}, fmt.Errorf("invalid document id %q: %w", s, err)
	}
	return DocumentID{oid: oid}, nil
}

func (id DocumentID) String() string {
	return id.oid.Hex()
}

func (id DocumentID) IsZero() bool {
	return id.oid.IsZero()
}

func (id DocumentID) MarshalJSON() ([]byte, error) {
	return []byte(`"` + id.oid.Hex() + `"`), nil
}
