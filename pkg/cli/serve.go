package cli

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/vllm-mock/pkg/cli/config"
	controller "github.com/m-mizutani/vllm-mock/pkg/controller/http"
	"github.com/m-mizutani/vllm-mock/pkg/infra/metrics"
	"github.com/m-mizutani/vllm-mock/pkg/usecase"
	"github.com/urfave/cli/v3"
)

func cmdServe() *cli.Command {
	var (
		serverCfg config.Server
		mockCfg   config.Mock
	)

	flags := append(serverCfg.Flags(), mockCfg.Flags()...)

	return &cli.Command{
		Name:    "serve",
		Aliases: []string{"s"},
		Usage:   "Start mock vLLM HTTP server",
		Flags:   flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			logger := slog.Default()
			pod := mockCfg.Pod()

			logger.Info("Starting mock vLLM server",
				slog.String("pod", pod.String()),
				slog.String("addr", serverCfg.Addr),
				slog.String("model", mockCfg.Model()),
			)

			inferenceUC := usecase.NewInference(pod, usecase.WithModelID(mockCfg.Model()))

			opts := []controller.Option{
				controller.WithAddr(serverCfg.Addr),
				controller.WithLogger(logger),
			}
			if serverCfg.Metrics {
				opts = append(opts, controller.WithMetrics(metrics.New(mockCfg.Model())))
			}

			server, err := controller.NewServer(ctx, inferenceUC, opts...)
			if err != nil {
				return goerr.Wrap(err, "failed to create HTTP server")
			}

			// Bind before serving so that a busy port fails the command
			listener, err := net.Listen("tcp", serverCfg.Addr)
			if err != nil {
				return goerr.Wrap(err, "failed to listen", goerr.V("addr", serverCfg.Addr))
			}

			errChan := make(chan error, 1)
			go func() {
				logger.Info("HTTP server starting", slog.String("addr", listener.Addr().String()))
				if err := server.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
					errChan <- err
				}
			}()

			// Wait for interrupt signal
			sigChan := make(chan os.Signal, 1)
			signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
			defer signal.Stop(sigChan)

			select {
			case <-ctx.Done():
				logger.Info("Context cancelled, shutting down...")
			case sig := <-sigChan:
				logger.Info("Signal received, shutting down...", slog.Any("signal", sig))
			case err := <-errChan:
				return goerr.Wrap(err, "HTTP server stopped unexpectedly", goerr.V("addr", serverCfg.Addr))
			}

			// Graceful shutdown
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()

			if err := server.Shutdown(shutdownCtx); err != nil {
				return goerr.Wrap(err, "failed to shutdown server gracefully")
			}

			logger.Info("Server shutdown complete")
			return nil
		},
	}
}
