package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"contentops/internal/api"
	"contentops/internal/auth"
	"contentops/internal/gworkspace"
	"contentops/internal/logging"
	"contentops/internal/provision"
	"contentops/internal/services"
	"contentops/internal/sse"
	"contentops/internal/workbook"
)

func (s *Server) routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/health", s.handleHealth)
	mux.HandleFunc("GET /api/models", s.authn.Middleware(false, s.writeError, s.handleModels))
	mux.HandleFunc("GET /api/models/{id}/sheet-links", s.authn.Middleware(false, s.writeError, s.handleSheetLinks))
	mux.HandleFunc("GET /api/models/{id}/caption-bank", s.authn.Middleware(true, s.writeError, s.handleCaptionBank))
	return s.withRequestID(mux)
}

// withRequestID tags each request with a correlation id carried into
// provisioning logs.
func (s *Server) withRequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := strings.TrimSpace(r.Header.Get("X-Request-ID"))
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set("X-Request-ID", id)
		next.ServeHTTP(w, r.WithContext(services.WithRequestID(r.Context(), id)))
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if err := s.store.Ping(r.Context()); err != nil {
		s.writeJSON(w, http.StatusServiceUnavailable, api.HealthResponse{Status: "degraded", Database: err.Error()})
		return
	}
	s.writeJSON(w, http.StatusOK, api.HealthResponse{Status: "ok", Database: "ok"})
}

func (s *Server) handleModels(w http.ResponseWriter, r *http.Request) {
	models, err := s.store.ListClientModels(r.Context())
	if err != nil {
		s.writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	s.writeJSON(w, http.StatusOK, api.ClientModelListResponse{Models: api.FromClientModels(models)})
}

func (s *Server) handleSheetLinks(w http.ResponseWriter, r *http.Request) {
	id, ok := s.modelID(w, r)
	if !ok {
		return
	}
	model, err := s.store.GetClientModel(r.Context(), id)
	if err != nil {
		s.writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if model == nil {
		s.writeError(w, http.StatusNotFound, "model not found")
		return
	}
	links, err := s.store.ListSheetLinks(r.Context(), id)
	if err != nil {
		s.writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	s.writeJSON(w, http.StatusOK, api.SheetLinkListResponse{Links: api.FromSheetLinks(links)})
}

func (s *Server) handleCaptionBank(w http.ResponseWriter, r *http.Request) {
	id, ok := s.modelID(w, r)
	if !ok {
		return
	}
	query := r.URL.Query()
	free, err := parseFlag(query.Get("free"))
	if err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid free flag")
		return
	}
	paid, err := parseFlag(query.Get("paid"))
	if err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid paid flag")
		return
	}

	session, _ := auth.SessionFromContext(r.Context())
	workspace, err := s.workspaces(r.Context(), session.GoogleAccessToken)
	if err != nil {
		if errors.Is(err, gworkspace.ErrMissingToken) {
			s.writeError(w, http.StatusUnauthorized, "session has no google access token")
			return
		}
		s.logger.Error("open google workspace failed", logging.Error(err))
		s.writeError(w, http.StatusBadGateway, "google workspace unavailable")
		return
	}

	stream := sse.NewWriter(w)
	started := time.Now()
	_, runErr := s.orchestrator.Run(r.Context(), provision.Request{
		ModelID:   id,
		Selection: workbook.Selection{Free: free, Paid: paid},
		Workspace: workspace,
	}, stream)
	s.logger.Info("caption bank stream closed",
		logging.Int64(logging.FieldModelID, id),
		logging.String("user", session.UserEmail),
		logging.Bool("succeeded", runErr == nil),
		logging.Duration("elapsed", time.Since(started)),
	)
}

func (s *Server) modelID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil || id <= 0 {
		s.writeError(w, http.StatusBadRequest, "invalid model id")
		return 0, false
	}
	return id, true
}

// parseFlag treats an absent flag as false.
func parseFlag(raw string) (bool, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return false, nil
	}
	return strconv.ParseBool(raw)
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		s.logger.Error("failed to encode response", logging.Error(err))
	}
}

func (s *Server) writeError(w http.ResponseWriter, status int, message string) {
	s.writeJSON(w, status, api.ErrorResponse{Error: message})
}
