// Package metrics exposes editing activity as prometheus metrics.
package metrics

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

const (
	namespace = "nodegraph"
	subsystem = "editor"

	shutdownTimeout = 5 * time.Second
)

// Recorder counts session actions and tracks graph size. It implements
// editor.Observer.
type Recorder struct {
	actions *prometheus.CounterVec
	nodes   prometheus.Gauge
	edges   prometheus.Gauge
}

// NewRecorder creates the collectors and registers them with reg.
func NewRecorder(reg prometheus.Registerer) (*Recorder, error) {
	r := &Recorder{
		actions: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "actions_total",
				Help:      "Editing actions by action, mode and whether they changed the graph",
			},
			[]string{"action", "mode", "result"},
		),
		nodes: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "nodes",
			Help:      "Live nodes in the graph",
		}),
		edges: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "edges",
			Help:      "Live directed edges in the graph",
		}),
	}

	for _, c := range []prometheus.Collector{r.actions, r.nodes, r.edges} {
		if err := reg.Register(c); err != nil {
			return nil, fmt.Errorf("register metrics: %w", err)
		}
	}
	return r, nil
}

// ObserveAction counts one action. Actions that left the graph untouched
// are counted with result "noop".
func (r *Recorder) ObserveAction(action, mode string, applied bool) {
	result := "applied"
	if !applied {
		result = "noop"
	}
	r.actions.WithLabelValues(action, mode, result).Inc()
}

// ObserveGraph records the current graph size.
func (r *Recorder) ObserveGraph(nodes, edges int) {
	r.nodes.Set(float64(nodes))
	r.edges.Set(float64(edges))
}

// Handler serves the metrics gathered by g.
func Handler(g prometheus.Gatherer) http.Handler {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(g, promhttp.HandlerOpts{}))
	return mux
}

// ListenAndServe serves /metrics on addr until ctx is cancelled.
func ListenAndServe(ctx context.Context, addr string, g prometheus.Gatherer, logger *zap.Logger) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("metrics listen %s: %w", addr, err)
	}
	return serve(ctx, ln, g, logger)
}

func serve(ctx context.Context, ln net.Listener, g prometheus.Gatherer, logger *zap.Logger) error {
	srv := &http.Server{
		Handler:           Handler(g),
		ReadHeaderTimeout: 5 * time.Second,
	}

	done := make(chan struct{})
	go func() {
		defer close(done)
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Warn("metrics shutdown", zap.Error(err))
		}
	}()

	logger.Info("metrics listening", zap.String("addr", ln.Addr().String()))
	err := srv.Serve(ln)
	if errors.Is(err, http.ErrServerClosed) {
		<-done
		return nil
	}
	return err
}
