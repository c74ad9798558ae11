package domain

import (
	"encoding/json"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// StatusApproved is the only status value the service itself writes; every
// other status is whatever the creator submitted.
const StatusApproved = "Approved"

// Booking represents a booking document. Email identifies the owner and
// Status tracks the approval transition; all other fields are creator-supplied
// and pass through untouched.
type Booking struct {
	ID     primitive.ObjectID     `bson:"_id,omitempty"`
	Email  string                 `bson:"email,omitempty"`
	Status string                 `bson:"status,omitempty"`
	Extra  map[string]interface{} `bson:",inline"`
}

func (b Booking) MarshalJSON() ([]byte, error) {
	return json.Marshal(flattenDocument(b.ID, map[string]interface{}{
		"email":  b.Email,
		"status": b.Status,
	}, b.Extra))
}

func (b *Booking) UnmarshalJSON(data []byte) error {
	fields, err := splitDocument(data, &b.ID)
	if err != nil {
		return err
	}
	b.Email = takeString(fields, "email")
	b.Status = takeString(fields, "status")
	b.Extra = fields
	return nil
}
