package server

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/abhisek/etymquest/internal/llm"
)

// Client-facing error messages.
const (
	msgPromptRequired  = "Prompt is required"
	msgInvalidBody     = "Invalid request body"
	msgGenerateFailed  = "Failed to generate story from API"
	msgInternal        = "Internal Server Error"
	maxRequestBodySize = 64 << 10
)

type errorResponse struct {
	Error string `json:"error"`
}

// generateStory relays a prompt to the configured provider and returns the
// provider's response document unchanged.
func (s *Server) generateStory(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	raw, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxRequestBodySize))
	if err != nil {
		respondError(w, http.StatusBadRequest, msgInvalidBody)
		return
	}
	var doc any
	if err := json.Unmarshal(raw, &doc); err != nil {
		respondError(w, http.StatusBadRequest, msgInvalidBody)
		return
	}
	sch, err := storyRequestValidator()
	if err != nil {
		s.logger.ErrorContext(ctx, "story request schema unavailable", slog.Any("error", err))
		respondError(w, http.StatusInternalServerError, msgInternal)
		return
	}
	if err := sch.Validate(doc); err != nil {
		s.logger.DebugContext(ctx, "rejected story request", slog.Any("error", err))
		respondError(w, http.StatusBadRequest, msgPromptRequired)
		return
	}
	prompt := doc.(map[string]any)["prompt"].(string)

	req := s.llmConfig.Apply(llm.UserPrompt(prompt))
	resp, err := s.provider.Generate(llm.WithPurpose(ctx, llm.PurposeProxy), req)
	var empty *llm.EmptyResponseError
	if errors.As(err, &empty) && len(empty.Raw) > 0 {
		// The upstream answered; the client decides what no candidate means.
		s.writeRaw(w, r, empty.Raw)
		return
	}
	if err != nil {
		status := providerStatus(err)
		s.logger.ErrorContext(ctx, "story generation failed",
			slog.Int("status", status), slog.Any("error", err))
		if status == http.StatusInternalServerError {
			respondError(w, status, msgInternal)
			return
		}
		respondError(w, status, msgGenerateFailed)
		return
	}

	s.writeRaw(w, r, resp.Raw)
}

func (s *Server) writeRaw(w http.ResponseWriter, r *http.Request, raw []byte) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(raw); err != nil {
		s.logger.WarnContext(r.Context(), "writing story response failed", slog.Any("error", err))
	}
}

// providerStatus picks the status reported to the client for a failed
// generation: the upstream status when there was one, 502 when the
// provider could not answer, and 500 for anything else.
func providerStatus(err error) int {
	if code, ok := llm.StatusCode(err); ok {
		return code
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return http.StatusGatewayTimeout
	}
	var unavail *llm.ErrProviderUnavailable
	if errors.As(err, &unavail) || errors.Is(err, llm.ErrEmptyResponse) {
		return http.StatusBadGateway
	}
	return http.StatusInternalServerError
}

func (s *Server) healthz(w http.ResponseWriter, _ *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{
		"status": "ok",
		"model":  s.provider.ModelID(),
	})
}

func respondError(w http.ResponseWriter, status int, msg string) {
	respondJSON(w, status, errorResponse{Error: msg})
}

func respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
