package httpserver

import (
	"encoding/json"
	"log/slog"
	"net/http"

	identityservice "vitrine/contexts/creator-directory/identity-service"
	moderationservice "vitrine/contexts/creator-directory/moderation-service"
	orderingservice "vitrine/contexts/creator-directory/ordering-service"

	httpSwagger "github.com/swaggo/http-swagger"
	_ "vitrine/internal/platform/httpserver/docs"
)

type Server struct {
	mux        *http.ServeMux
	logger     *slog.Logger
	addr       string
	identity   identityservice.Module
	moderation moderationservice.Module
	ordering   orderingservice.Module
}

func New(
	identityModule identityservice.Module,
	moderationModule moderationservice.Module,
	orderingModule orderingservice.Module,
	logger *slog.Logger,
	addr string,
) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	if addr == "" {
		addr = ":8080"
	}

	s := &Server{
		mux:        http.NewServeMux(),
		logger:     logger,
		addr:       addr,
		identity:   identityModule,
		moderation: moderationModule,
		ordering:   orderingModule,
	}
	s.registerRoutes()
	return s
}

func (s *Server) Start() error {
	s.logger.Info("http server starting",
		"event", "http_server_starting",
		"module", "internal/platform/httpserver",
		"layer", "platform",
		"addr", s.addr,
	)
	return http.ListenAndServe(s.addr, s.mux)
}

func (s *Server) Handler() http.Handler {
	return s.mux
}

func (s *Server) registerRoutes() {
	s.mux.Handle("/swagger/", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	s.mux.HandleFunc("POST /api/v1/sessions/resolve", s.handleResolveSubmitter)
	s.mux.HandleFunc("POST /api/v1/sessions/{session_id}/claim", s.handleClaimSession)

	s.mux.HandleFunc("POST /api/v1/directory/creators", s.handleCreateCreatorEntry)
	s.mux.HandleFunc("POST /api/v1/directory/proofs", s.handleCreateProofEntry)
	s.mux.HandleFunc("GET /api/v1/directory/entries", s.handleListEntries)
	s.mux.HandleFunc("GET /api/v1/directory/entries/{entry_id}", s.handleGetEntry)
	s.mux.HandleFunc("PATCH /api/v1/directory/entries/{entry_id}", s.handleUpdateEntry)
	s.mux.HandleFunc("DELETE /api/v1/directory/entries/{entry_id}", s.handleDeleteEntry)
	s.mux.HandleFunc("POST /api/v1/directory/entries/{entry_id}/transition", s.handleTransitionEntry)
	s.mux.HandleFunc("GET /api/v1/directory/entries/{entry_id}/history", s.handleGetEntryHistory)

	s.mux.HandleFunc("GET /api/v1/directory/ranking", s.handleListRanking)
	s.mux.HandleFunc("PUT /api/v1/directory/ranking", s.handleReorderRanking)
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func decodeJSON(r *http.Request, target any) error {
	return json.NewDecoder(r.Body).Decode(target)
}
