package cli_test

import (
	"context"
	"encoding/json"
	"net"
	"net/http"
	"os"
	"testing"
	"time"

	"github.com/m-mizutani/gt"
	"github.com/m-mizutani/vllm-mock/pkg/cli"
	"github.com/m-mizutani/vllm-mock/pkg/domain/model"
)

// freeAddr returns a loopback address that was free a moment ago
func freeAddr(t *testing.T) string {
	t.Helper()
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	gt.NoError(t, err)
	addr := ln.Addr().String()
	gt.NoError(t, ln.Close())
	return addr
}

// startServer runs the CLI in the background and waits until /health
// answers. The returned func stops the server and returns Run's error.
func startServer(t *testing.T, args []string, addr string) func() error {
	t.Helper()

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- cli.Run(ctx, args)
	}()

	deadline := time.Now().Add(5 * time.Second)
	for {
		resp, err := http.Get("http://" + addr + "/health")
		if err == nil {
			resp.Body.Close()
			if resp.StatusCode == http.StatusOK {
				break
			}
		}

		select {
		case err := <-done:
			cancel()
			t.Fatalf("server exited before becoming ready: %v", err)
		default:
		}
		if time.Now().After(deadline) {
			cancel()
			t.Fatal("server did not become ready")
		}
		time.Sleep(10 * time.Millisecond)
	}

	return func() error {
		cancel()
		select {
		case err := <-done:
			return err
		case <-time.After(5 * time.Second):
			t.Fatal("server did not shut down")
			return nil
		}
	}
}

func getJSON(t *testing.T, url string, v any) {
	t.Helper()
	resp, err := http.Get(url)
	gt.NoError(t, err)
	defer resp.Body.Close()

	gt.Value(t, resp.StatusCode).Equal(http.StatusOK)
	gt.Value(t, resp.Header.Get("Content-Type")).Equal("application/json")
	gt.NoError(t, json.NewDecoder(resp.Body).Decode(v))
}

func TestServe_AddressInUse(t *testing.T) {
	occupied, err := net.Listen("tcp", "127.0.0.1:0")
	gt.NoError(t, err)
	defer occupied.Close()

	err = cli.Run(context.Background(), []string{
		"vllm-mock", "serve",
		"--addr", occupied.Addr().String(),
		"--metrics=false",
	})
	gt.Error(t, err)
	gt.String(t, err.Error()).Contains("failed to listen")
}

func TestServe_InvalidLogLevel(t *testing.T) {
	err := cli.Run(context.Background(), []string{
		"vllm-mock", "--log-level", "verbose", "serve", "--addr", "127.0.0.1:0",
	})
	gt.Error(t, err)
}

func TestServe_PodNameFromEnv(t *testing.T) {
	tests := []struct {
		name    string
		set     bool
		value   string
		wantPod string
	}{
		{name: "POD_NAME set", set: true, value: "pod-a", wantPod: "pod-a"},
		{name: "POD_NAME empty", set: true, value: "", wantPod: "unknown"},
		{name: "POD_NAME unset", set: false, wantPod: "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// t.Setenv restores the original value on cleanup, also after Unsetenv
			t.Setenv("POD_NAME", tt.value)
			if !tt.set {
				gt.NoError(t, os.Unsetenv("POD_NAME"))
			}

			addr := freeAddr(t)
			t.Setenv("VLLM_MOCK_ADDR", addr)

			// no subcommand: serve is the default
			stop := startServer(t, []string{"vllm-mock"}, addr)

			var root model.RootInfo
			getJSON(t, "http://"+addr+"/", &root)
			gt.Value(t, root).Equal(model.RootInfo{
				Message: "Mock vLLM server running",
				Pod:     tt.wantPod,
			})

			var health model.HealthStatus
			getJSON(t, "http://"+addr+"/health", &health)
			gt.Value(t, health.Status).Equal("healthy")
			gt.Value(t, health.Pod).Equal(tt.wantPod)
			gt.Number(t, health.Timestamp).Greater(0)

			gt.NoError(t, stop())
		})
	}
}

func TestServe_PodNameFlagOverridesEnv(t *testing.T) {
	t.Setenv("POD_NAME", "pod-env")
	addr := freeAddr(t)

	stop := startServer(t, []string{
		"vllm-mock", "serve",
		"--addr", addr,
		"--pod-name", "pod-flag",
	}, addr)

	var root model.RootInfo
	getJSON(t, "http://"+addr+"/", &root)
	gt.Value(t, root.Pod).Equal("pod-flag")

	gt.NoError(t, stop())
}

func TestServe_ShutdownOnContextCancel(t *testing.T) {
	addr := freeAddr(t)
	stop := startServer(t, []string{
		"vllm-mock", "serve",
		"--addr", addr,
		"--pod-name", "pod-a",
	}, addr)

	gt.NoError(t, stop())

	_, err := http.Get("http://" + addr + "/health")
	gt.Error(t, err)
}
