package gateway

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"valet/internal/store"
)

type chatRequest struct {
	Assistant string `json:"assistant"`
	Message   string `json:"message"`
}

type chatResponse struct {
	Assistant string `json:"assistant"`
	Reply     string `json:"reply"`
}

func (s *Server) handleChat(w http.ResponseWriter, r *http.Request) {
	var req chatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, `{"error":"invalid JSON body"}`, http.StatusBadRequest)
		return
	}
	if req.Assistant == "" || req.Message == "" {
		http.Error(w, `{"error":"assistant and message are required"}`, http.StatusBadRequest)
		return
	}

	a, ok := s.assistants[req.Assistant]
	if !ok {
		http.Error(w, `{"error":"unknown assistant"}`, http.StatusNotFound)
		return
	}

	reply := a.Chat(r.Context(), req.Message)

	if s.store != nil {
		if err := s.store.SaveTurn(r.Context(), req.Assistant, req.Message, reply); err != nil {
			slog.Warn("failed to save turn", "assistant", req.Assistant, "error", err)
		}
	}

	writeJSON(w, chatResponse{Assistant: req.Assistant, Reply: reply})
}

func (s *Server) handleTurns(w http.ResponseWriter, r *http.Request) {
	if s.store == nil {
		http.Error(w, `{"error":"transcript store disabled"}`, http.StatusServiceUnavailable)
		return
	}

	name := r.URL.Query().Get("assistant")
	if name == "" {
		http.Error(w, `{"error":"assistant query parameter is required"}`, http.StatusBadRequest)
		return
	}

	limit := 20
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			http.Error(w, `{"error":"invalid limit"}`, http.StatusBadRequest)
			return
		}
		limit = n
	}

	turns, err := s.store.RecentTurns(r.Context(), name, limit)
	if err != nil {
		slog.Error("failed to list turns", "assistant", name, "error", err)
		http.Error(w, `{"error":"internal error"}`, http.StatusInternalServerError)
		return
	}
	if turns == nil {
		turns = []store.Turn{}
	}

	writeJSON(w, turns)
}

func (s *Server) handleHealthz(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
