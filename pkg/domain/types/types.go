package types

// Version is overwritten at build time via -ldflags
var Version = "dev"

const (
	// DefaultPodName is reported when POD_NAME is unset or empty
	DefaultPodName = "unknown"

	// DefaultModelID is the single model advertised by /v1/models
	DefaultModelID = "mock-model"

	// DefaultAddr matches the port vLLM's OpenAI server listens on
	DefaultAddr = "0.0.0.0:8000"
)
