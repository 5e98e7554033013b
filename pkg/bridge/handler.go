package bridge

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Handler returns the bridge's HTTP surface:
//
//	GET /ws       — WebSocket endpoint serving state frames
//	GET /healthz  — liveness probe
//	GET /metrics  — Prometheus metrics (default registry)
func (b *Bridge) Handler() http.Handler {
	r := chi.NewRouter()
	r.Get("/ws", b.ServeWS)
	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())
	return r
}
