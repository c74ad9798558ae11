package domain

import (
	"encoding/json"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// RoleAdmin is the only role value the service recognizes. Any other role
// string is stored but grants nothing.
const RoleAdmin = "admin"

// User represents a registered user. Email is the logical identity: POST
// inserts a fresh record, PUT upserts by email so at most one record per
// email ever exists. A generated ObjectID remains the storage-level identity.
type User struct {
	ID    primitive.ObjectID     `bson:"_id,omitempty"`
	Email string                 `bson:"email,omitempty"`
	Role  string                 `bson:"role,omitempty"`
	Extra map[string]interface{} `bson:",inline"`
}

// IsAdmin reports whether the user carries the admin role.
func (u *User) IsAdmin() bool {
	return u != nil && u.Role == RoleAdmin
}

func (u User) MarshalJSON() ([]byte, error) {
	return json.Marshal(flattenDocument(u.ID, map[string]interface{}{
		"email": u.Email,
		"role":  u.Role,
	}, u.Extra))
}

func (u *User) UnmarshalJSON(data []byte) error {
	fields, err := splitDocument(data, &u.ID)
	if err != nil {
		return err
	}
	u.Email = takeString(fields, "email")
	u.Role = takeString(fields, "role")
	u.Extra = fields
	return nil
}
