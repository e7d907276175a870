package model

import "github.com/m-mizutani/vllm-mock/pkg/domain/types"

// PodName identifies the replica answering a request
type PodName string

// NewPodName normalizes a raw value taken from the environment. An empty
// value falls back to types.DefaultPodName, never to an empty string.
func NewPodName(raw string) PodName {
	if raw == "" {
		return PodName(types.DefaultPodName)
	}
	return PodName(raw)
}

func (x PodName) String() string {
	return string(x)
}
