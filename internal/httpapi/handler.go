// Package httpapi exposes the storefront sessions over HTTP on a
// grpc-gateway ServeMux, next to the gateway's /healthz endpoint.
package httpapi

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/grpc-ecosystem/grpc-gateway/v2/runtime"
	"go.uber.org/zap"
	"google.golang.org/grpc/health/grpc_health_v1"

	"github.com/JeremiasReinoso/MiFelisa/internal/dispatch"
	"github.com/JeremiasReinoso/MiFelisa/internal/session"
	"github.com/JeremiasReinoso/MiFelisa/internal/storehours"
)

// SessionCookie carries the visitor's session ID.
const SessionCookie = "mf_session"

const maxCommandBytes = 64 << 10

// Config wires the HTTP surface.
type Config struct {
	Registry *session.Registry
	Hours    storehours.Window
	// HealthClient, when set, backs GET /healthz.
	HealthClient grpc_health_v1.HealthClient
	Logger       *zap.Logger
	// Now defaults to time.Now.
	Now func() time.Time
}

type handler struct {
	registry *session.Registry
	hours    storehours.Window
	logger   *zap.Logger
	now      func() time.Time
}

// NewMux registers the storefront routes on a gateway ServeMux.
func NewMux(cfg Config) (*runtime.ServeMux, error) {
	if cfg.Registry == nil {
		return nil, errors.New("httpapi: registry is required")
	}
	h := &handler{
		registry: cfg.Registry,
		hours:    cfg.Hours,
		logger:   cfg.Logger,
		now:      cfg.Now,
	}
	if h.logger == nil {
		h.logger = zap.NewNop()
	}
	if h.now == nil {
		h.now = time.Now
	}
	if h.hours == (storehours.Window{}) {
		h.hours = storehours.DefaultWindow
	}

	var opts []runtime.ServeMuxOption
	if cfg.HealthClient != nil {
		opts = append(opts, runtime.WithHealthzEndpoint(cfg.HealthClient))
	}
	mux := runtime.NewServeMux(opts...)

	routes := []struct {
		method, path string
		fn           runtime.HandlerFunc
	}{
		{http.MethodGet, "/api/catalog", h.getCatalog},
		{http.MethodGet, "/api/cart", h.getCart},
		{http.MethodPost, "/api/commands", h.postCommand},
		{http.MethodGet, "/api/status", h.getStatus},
	}
	for _, r := range routes {
		if err := mux.HandlePath(r.method, r.path, r.fn); err != nil {
			return nil, fmt.Errorf("register %s %s: %w", r.method, r.path, err)
		}
	}
	return mux, nil
}

// sessionFor resolves the visitor's session from the cookie and refreshes
// the cookie. IDs the registry does not hold are never adopted: a new
// session is opened under a server-generated ID instead, and stale reports
// that the cookie named a session that no longer exists.
func (h *handler) sessionFor(w http.ResponseWriter, r *http.Request) (ctrl *session.Controller, stale bool) {
	if c, err := r.Cookie(SessionCookie); err == nil {
		if id, err := uuid.Parse(c.Value); err == nil {
			if found, ok := h.registry.Get(id); ok {
				ctrl = found
			} else {
				stale = true
				h.logger.Info("unknown session replaced", zap.String("session", id.String()))
			}
		}
	}
	if ctrl == nil {
		ctrl = h.registry.Open()
	}
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookie,
		Value:    ctrl.ID().String(),
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return ctrl, stale
}

func (h *handler) getCatalog(w http.ResponseWriter, r *http.Request, _ map[string]string) {
	ctrl, _ := h.sessionFor(w, r)
	h.writeJSON(w, http.StatusOK, ctrl.Catalog())
}

func (h *handler) getCart(w http.ResponseWriter, r *http.Request, _ map[string]string) {
	ctrl, _ := h.sessionFor(w, r)
	h.writeJSON(w, http.StatusOK, ctrl.View())
}

func (h *handler) postCommand(w http.ResponseWriter, r *http.Request, _ map[string]string) {
	ctrl, stale := h.sessionFor(w, r)
	if stale {
		// The command was meant for a cart this server no longer holds.
		h.writeError(w, dispatch.NewFailedPrecondition(dispatch.ErrMsgSessionNotFound))
		return
	}

	var cmd session.Command
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxCommandBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&cmd); err != nil {
		h.writeError(w, dispatch.NewInvalidArgumentf("%s: %v", dispatch.ErrMsgMalformedCommand, err))
		return
	}

	view, err := ctrl.Dispatch(cmd)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, view)
}

type statusResponse struct {
	storehours.Status
	Hours string `json:"hours"`
}

func (h *handler) getStatus(w http.ResponseWriter, _ *http.Request, _ map[string]string) {
	h.writeJSON(w, http.StatusOK, statusResponse{
		Status: h.hours.Status(h.now()),
		Hours:  h.hours.String(),
	})
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (h *handler) writeError(w http.ResponseWriter, err error) {
	var cmdErr *dispatch.CommandError
	if !errors.As(err, &cmdErr) {
		h.logger.Error("command failed", zap.Error(err))
		h.writeJSON(w, http.StatusInternalServerError, errorResponse{Code: "INTERNAL", Message: "internal error"})
		return
	}
	status := http.StatusBadRequest
	if cmdErr.Code == dispatch.StatusFailedPrecondition {
		status = http.StatusPreconditionFailed
	}
	h.writeJSON(w, status, errorResponse{Code: cmdErr.Code.String(), Message: cmdErr.Message})
}

func (h *handler) writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		h.logger.Warn("failed to write response", zap.Error(err))
	}
}
