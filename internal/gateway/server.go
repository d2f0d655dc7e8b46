package gateway

import (
	"context"
	"net/http"
	"time"

	"valet/internal/assistant"
	"valet/internal/store"
)

type Server struct {
	assistants map[string]*assistant.Assistant
	store      *store.Store // nil disables transcripts
	mux        *http.ServeMux
}

func NewServer(transcripts *store.Store, assistants ...*assistant.Assistant) *Server {
	s := &Server{
		assistants: make(map[string]*assistant.Assistant, len(assistants)),
		store:      transcripts,
		mux:        http.NewServeMux(),
	}
	for _, a := range assistants {
		s.assistants[a.Name()] = a
	}
	s.routes()
	return s
}

func (s *Server) routes() {
	s.mux.HandleFunc("POST /v1/chat", s.handleChat)
	s.mux.HandleFunc("GET /v1/turns", s.handleTurns)
	s.mux.HandleFunc("GET /healthz", s.handleHealthz)
}

func (s *Server) Handler() http.Handler { return s.mux }

func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{Addr: addr, Handler: s.mux}

	errCh := make(chan error, 1)
	go func() { errCh <- srv.ListenAndServe() }()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	case err := <-errCh:
		return err
	}
}
