package config

import (
	"github.com/m-mizutani/vllm-mock/pkg/domain/model"
	"github.com/m-mizutani/vllm-mock/pkg/domain/types"
	"github.com/urfave/cli/v3"
)

// Mock holds the identity the mock server reports
type Mock struct {
	PodName string
	ModelID string
}

// Flags returns CLI flags for mock identity configuration
func (c *Mock) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "pod-name",
			Usage:       "Pod name reported by / and /health",
			Value:       types.DefaultPodName,
			Destination: &c.PodName,
			Sources:     cli.EnvVars("POD_NAME"),
		},
		&cli.StringFlag{
			Name:        "model-id",
			Usage:       "Model id advertised by /v1/models",
			Value:       types.DefaultModelID,
			Destination: &c.ModelID,
			Sources:     cli.EnvVars("VLLM_MOCK_MODEL_ID"),
		},
	}
}

// Pod resolves the pod identity. POD_NAME set to an empty string behaves
// like an unset variable.
func (c *Mock) Pod() model.PodName {
	return model.NewPodName(c.PodName)
}

// Model returns the advertised model id, falling back to the default
func (c *Mock) Model() string {
	if c.ModelID == "" {
		return types.DefaultModelID
	}
	return c.ModelID
}
