package config

import (
	"github.com/m-mizutani/vllm-mock/pkg/domain/types"
	"github.com/urfave/cli/v3"
)

// Server holds server configuration
type Server struct {
	Addr    string
	Metrics bool
}

// Flags returns CLI flags for server configuration
func (c *Server) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "addr",
			Usage:       "Server address",
			Value:       types.DefaultAddr,
			Destination: &c.Addr,
			Sources:     cli.EnvVars("VLLM_MOCK_ADDR"),
		},
		&cli.BoolFlag{
			Name:        "metrics",
			Usage:       "Serve prometheus metrics at /metrics",
			Value:       true,
			Destination: &c.Metrics,
			Sources:     cli.EnvVars("VLLM_MOCK_METRICS"),
		},
	}
}
