package store

// Result types mirror the shape of the document store's acknowledgements.
// Mutation routes return these verbatim to the client, so the JSON field
// names follow the driver's wire names (insertedId, deletedCount, ...).

// InsertResult reports the outcome of an insert operation.
type InsertResult struct {
	InsertedID interface{} `json:"insertedId"`
}

// UpdateResult reports the outcome of an update or upsert operation.
type UpdateResult struct {
	MatchedCount  int64       `json:"matchedCount"`
	ModifiedCount int64       `json:"modifiedCount"`
	UpsertedID    interface{} `json:"upsertedId,omitempty"`
}

// DeleteResult reports the outcome of a delete operation.
type DeleteResult struct {
	DeletedCount int64 `json:"deletedCount"`
}
