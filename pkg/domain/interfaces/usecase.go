package interfaces

import (
	"context"

	"github.com/m-mizutani/vllm-mock/pkg/domain/model"
)

// InferenceUseCase builds the payloads served by the mock inference API
type InferenceUseCase interface {
	// Health reports liveness along with the answering pod and current time
	Health(ctx context.Context) *model.HealthStatus

	// ListModels returns the models advertised by /v1/models
	ListModels(ctx context.Context) *model.ModelList

	// Root returns the banner served at /
	Root(ctx context.Context) *model.RootInfo
}
