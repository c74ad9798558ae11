package domain

import (
	"encoding/json"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Review represents a review document. The service never reads individual
// review fields, so the whole body lives in Extra.
type Review struct {
	ID    primitive.ObjectID     `bson:"_id,omitempty"`
	Extra map[string]interface{} `bson:",inline"`
}

func (r Review) MarshalJSON() ([]byte, error) {
	return json.Marshal(flattenDocument(r.ID, nil, r.Extra))
}

func (r *Review) UnmarshalJSON(data []byte) error {
	fields, err := splitDocument(data, &r.ID)
	if err != nil {
		return err
	}
	r.Extra = fields
	return nil
}
