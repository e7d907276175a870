package usecase

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/m-mizutani/vllm-mock/pkg/domain/model"
	"github.com/m-mizutani/vllm-mock/pkg/domain/types"
)

// Inference builds the payloads of the mock inference API. Besides values
// resolved at startup it only tracks the last health timestamp, so a single
// instance is shared by all requests.
type Inference struct {
	pod     model.PodName
	modelID string
	now     func() time.Time

	// lastNano is the latest health timestamp handed out, in Unix nanoseconds
	lastNano atomic.Int64
}

// Option is a functional option for Inference
type Option func(*Inference)

// WithModelID overrides the model id advertised by ListModels
func WithModelID(id string) Option {
	return func(x *Inference) {
		if id != "" {
			x.modelID = id
		}
	}
}

// WithClock replaces the clock used for health timestamps
func WithClock(now func() time.Time) Option {
	return func(x *Inference) {
		x.now = now
	}
}

// NewInference creates a new Inference use case answering as pod
func NewInference(pod model.PodName, opts ...Option) *Inference {
	x := &Inference{
		pod:     pod,
		modelID: types.DefaultModelID,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(x)
	}
	return x
}

// Health returns the health status of this pod
func (x *Inference) Health(ctx context.Context) *model.HealthStatus {
	return &model.HealthStatus{
		Status:    "healthy",
		Pod:       x.pod.String(),
		Timestamp: unixSeconds(x.timestamp()),
	}
}

// ListModels returns exactly one model descriptor
func (x *Inference) ListModels(ctx context.Context) *model.ModelList {
	return &model.ModelList{
		Object: model.ObjectList,
		Data: []model.ModelDescriptor{
			{
				ID:      x.modelID,
				Object:  model.ObjectModel,
				Created: model.MockModelCreated,
				OwnedBy: model.MockModelOwner,
			},
		},
	}
}

// Root returns the banner identifying this pod
func (x *Inference) Root(ctx context.Context) *model.RootInfo {
	return &model.RootInfo{
		Message: model.RootMessage,
		Pod:     x.pod.String(),
	}
}

// timestamp reads the clock but never returns a value older than one
// already handed out, so a wall-clock step back repeats the last value.
func (x *Inference) timestamp() int64 {
	now := x.now().UnixNano()
	for {
		last := x.lastNano.Load()
		if now <= last {
			return last
		}
		if x.lastNano.CompareAndSwap(last, now) {
			return now
		}
	}
}

func unixSeconds(nano int64) float64 {
	return float64(nano) / float64(time.Second)
}
