package models

// ErrorMessageResponse wraps every error written by the api
type ErrorMessageResponse struct {
	Response MessageError
}

// MessageError holds what failed and the underlying error text
type MessageError struct {
	Message string
	Error   string
}
