package model

const (
	ObjectList  = "list"
	ObjectModel = "model"

	// MockModelCreated is the fixed creation time of the mock model
	MockModelCreated int64 = 1234567890
	MockModelOwner         = "mock"
)

// ModelList is the response body of GET /v1/models, shaped like the
// OpenAI list models API.
type ModelList struct {
	Object string            `json:"object"`
	Data   []ModelDescriptor `json:"data"`
}

// ModelDescriptor describes one served model.
type ModelDescriptor struct {
	ID      string `json:"id"`
	Object  string `json:"object"`
	Created int64  `json:"created"`
	OwnedBy string `json:"owned_by"`
}
