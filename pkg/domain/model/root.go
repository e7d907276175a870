package model

// RootMessage is returned by GET /
const RootMessage = "Mock vLLM server running"

// RootInfo is the response body of GET /
type RootInfo struct {
	Message string `json:"message"`
	Pod     string `json:"pod"`
}
