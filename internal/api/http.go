package api

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/yourname/rps-arbiter/internal/store"
	"github.com/yourname/rps-arbiter/internal/ws"
)

type router struct {
	st store.Store
	h  *ws.Hub
}

// NewRouter exposes the read-only ops surface: health, metrics, the latest
// match snapshot, and the spectator websocket.
func NewRouter(st store.Store, h *ws.Hub) http.Handler {
	r := &router{st: st, h: h}

	mux := chi.NewRouter()
	mux.Use(middleware.RequestID, middleware.RealIP, middleware.Logger, middleware.Recoverer)

	mux.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusOK) })
	mux.Handle("/metrics", promhttp.Handler())

	mux.Get("/state", r.handleState)
	mux.Get("/ws", r.handleWS)

	return mux
}

func (r *router) handleState(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(r.st.Latest())
}

func (r *router) handleWS(w http.ResponseWriter, req *http.Request) {
	ws.ServeWS(r.h, w, req)
}
