package cli

import (
	"context"
	"log/slog"

	"github.com/m-mizutani/vllm-mock/pkg/cli/config"
	"github.com/m-mizutani/vllm-mock/pkg/domain/types"
	"github.com/urfave/cli/v3"
)

// Run parses args and executes the selected command. Without a
// subcommand the mock server is started.
func Run(ctx context.Context, args []string) error {
	root := newRootCommand()

	if err := root.cmd.Run(ctx, args); err != nil {
		root.logger().Error("vllm-mock failed", slog.Any("error", err))
		return err
	}
	return nil
}

type rootCommand struct {
	cmd        *cli.Command
	loggerCfg  config.Logger
	configured *slog.Logger
}

func newRootCommand() *rootCommand {
	x := &rootCommand{}
	x.cmd = &cli.Command{
		Name:           "vllm-mock",
		Usage:          "Mock vLLM (OpenAI compatible) server for integration tests",
		Version:        types.Version,
		Flags:          x.loggerCfg.Flags(),
		DefaultCommand: "serve",
		Before:         x.setupLogger,
		Commands: []*cli.Command{
			cmdServe(),
		},
	}
	return x
}

// setupLogger installs the configured logger as slog default, which the
// subcommands pick up.
func (x *rootCommand) setupLogger(ctx context.Context, _ *cli.Command) (context.Context, error) {
	logger, err := x.loggerCfg.Configure()
	if err != nil {
		return ctx, err
	}
	x.configured = logger
	slog.SetDefault(logger)
	return ctx, nil
}

// logger falls back to slog default when flags failed before setup
func (x *rootCommand) logger() *slog.Logger {
	if x.configured != nil {
		return x.configured
	}
	return slog.Default()
}
