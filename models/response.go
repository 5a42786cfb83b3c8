package models

// CreatedResponse carries the id of a newly inserted document
type CreatedResponse struct {
	ID string `json:"_id"`
}

// ModifiedResponse carries the number of documents an update changed
type ModifiedResponse struct {
	ModifiedCount int64 `json:"modified_count"`
}

// DeletedResponse carries the number of documents a delete removed
type DeletedResponse struct {
	DeletedCount int64 `json:"deleted_count"`
}

// MessageResponse carries a plain status message
type MessageResponse struct {
	Message string `json:"message"`
}
