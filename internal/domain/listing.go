package domain

import (
	"encoding/json"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Listing represents an apartment listing document. Listings are supplied by
// the creator as free-form JSON: only the fields the service itself filters on
// are typed, everything else round-trips untouched through Extra.
type Listing struct {
	ID    primitive.ObjectID     `bson:"_id,omitempty"`
	Title string                 `bson:"title,omitempty"`
	Extra map[string]interface{} `bson:",inline"`
}

// MarshalJSON flattens Extra into the top-level object so clients see the
// same document shape they submitted, plus the generated id.
func (l Listing) MarshalJSON() ([]byte, error) {
	return json.Marshal(flattenDocument(l.ID, map[string]interface{}{
		"title": l.Title,
	}, l.Extra))
}

// UnmarshalJSON accepts an arbitrary JSON object, lifting out the typed
// fields and keeping the rest in Extra.
func (l *Listing) UnmarshalJSON(data []byte) error {
	fields, err := splitDocument(data, &l.ID)
	if err != nil {
		return err
	}
	l.Title = takeString(fields, "title")
	l.Extra = fields
	return nil
}
