package http

import (
	"log/slog"
	"net/http"

	"github.com/m-mizutani/vllm-mock/pkg/domain/interfaces"
)

type inferenceHandler struct {
	uc     interfaces.InferenceUseCase
	logger *slog.Logger
}

// handleHealth handles health check requests
func (h *inferenceHandler) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, h.logger, http.StatusOK, h.uc.Health(r.Context()))
}

// handleListModels serves the OpenAI compatible model list
func (h *inferenceHandler) handleListModels(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, h.logger, http.StatusOK, h.uc.ListModels(r.Context()))
}

func (h *inferenceHandler) handleRoot(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, h.logger, http.StatusOK, h.uc.Root(r.Context()))
}
