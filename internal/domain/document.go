// Package domain defines the document types stored by the service.
//
// All four collections hold loosely-typed documents: clients submit arbitrary
// JSON and get it back unchanged apart from the generated id. Each type keeps
// the fields the service reads (title, email, status, role) as struct fields
// and carries everything else in an inline map, so both the BSON and JSON
// representations stay flat.
package domain

import (
	"encoding/json"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// flattenDocument merges the typed fields and the extras back into a single
// flat object for JSON responses. Empty typed string fields are omitted, the
// way omitempty drops them on the BSON side.
func flattenDocument(
	id primitive.ObjectID,
	typed map[string]interface{},
	extra map[string]interface{},
) map[string]interface{} {
	doc := make(map[string]interface{}, len(typed)+len(extra)+1)
	for k, v := range extra {
		doc[k] = v
	}
	for k, v := range typed {
		if s, ok := v.(string); ok && s == "" {
			continue
		}
		doc[k] = v
	}
	if !id.IsZero() {
		doc["_id"] = id
	}
	return doc
}

// takeString removes and returns the value under key when it is a string.
// A non-string value stays in the map so it passes through like any other
// creator-supplied field.
func takeString(fields map[string]interface{}, key string) string {
	s, ok := fields[key].(string)
	if ok {
		delete(fields, key)
	}
	return s
}

// splitDocument parses an arbitrary JSON object and lifts out a hex "_id"
// when one is present. Everything else is returned to the caller, which
// extracts its own typed fields from the map.
func splitDocument(data []byte, id *primitive.ObjectID) (map[string]interface{}, error) {
	var fields map[string]interface{}
	if err := json.Unmarshal(data, &fields); err != nil {
		return nil, err
	}
	if raw, ok := fields["_id"].(string); ok {
		if oid, err := primitive.ObjectIDFromHex(raw); err == nil {
			*id = oid
			delete(fields, "_id")
		}
	}
	return fields, nil
}
