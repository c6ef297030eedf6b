// Package metrics exposes Prometheus instrumentation for RPCs, cycle
// transitions and change-feed delivery.
package metrics

import (
	"context"
	"errors"
	"net/http"
	"time"

	"connectrpc.com/connect"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/mmynk/tontine/internal/models"
	"github.com/mmynk/tontine/internal/notify"
	"github.com/mmynk/tontine/internal/storage"
)

const namespace = "tontine"

// Metrics holds the collectors registered on its own registry.
type Metrics struct {
	registry *prometheus.Registry

	rpcRequests    *prometheus.CounterVec
	rpcDuration    *prometheus.HistogramVec
	transitions    *prometheus.CounterVec
	droppedChanges *prometheus.CounterVec
	reminders      *prometheus.CounterVec
}

// New creates and registers all collectors, including the Go runtime and
// process collectors.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		rpcRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "rpc_requests_total",
			Help:      "RPCs handled, by procedure and Connect code.",
		}, []string{"procedure", "code"}),
		rpcDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "rpc_duration_seconds",
			Help:      "RPC latency by procedure.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"procedure"}),
		transitions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "cycle_transitions_total",
			Help:      "Committed cycle status transitions.",
		}, []string{"from", "to"}),
		droppedChanges: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "changefeed_dropped_total",
			Help:      "Change hints dropped because a subscriber was not keeping up.",
		}, []string{"table"}),
		reminders: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "reminders_total",
			Help:      "Payment reminders handed to the notifier, by result.",
		}, []string{"result"}),
	}

	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.rpcRequests,
		m.rpcDuration,
		m.transitions,
		m.droppedChanges,
		m.reminders,
	)
	return m
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// Registry returns the underlying registry.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// ObserveTransition counts a committed cycle status change.
func (m *Metrics) ObserveTransition(groupID string, from, to models.CycleStatus) {
	m.transitions.WithLabelValues(string(from), string(to)).Inc()
}

// ObserveDrop counts a change hint that was not delivered.
func (m *Metrics) ObserveDrop(change storage.Change) {
	m.droppedChanges.WithLabelValues(string(change.Table)).Inc()
}

// Notifier wraps n so that every reminder is counted as sent or failed.
func (m *Metrics) Notifier(n notify.Notifier) notify.Notifier {
	return &countingNotifier{next: n, reminders: m.reminders}
}

type countingNotifier struct {
	next      notify.Notifier
	reminders *prometheus.CounterVec
}

func (n *countingNotifier) SendReminders(ctx context.Context, reminders []notify.Reminder) ([]notify.Reminder, error) {
	sent, err := n.next.SendReminders(ctx, reminders)
	n.reminders.WithLabelValues("sent").Add(float64(len(sent)))
	if failed := len(reminders) - len(sent); failed > 0 {
		n.reminders.WithLabelValues("failed").Add(float64(failed))
	}
	return sent, err
}

// Interceptor returns a Connect interceptor recording request counts and
// latency for every unary RPC.
func (m *Metrics) Interceptor() connect.UnaryInterceptorFunc {
	return func(next connect.UnaryFunc) connect.UnaryFunc {
		return func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
			start := time.Now()
			procedure := req.Spec().Procedure

			resp, err := next(ctx, req)

			m.rpcDuration.WithLabelValues(procedure).Observe(time.Since(start).Seconds())
			m.rpcRequests.WithLabelValues(procedure, codeOf(err)).Inc()
			return resp, err
		}
	}
}

func codeOf(err error) string {
	if err == nil {
		return "ok"
	}
	var connectErr *connect.Error
	if errors.As(err, &connectErr) {
		return connectErr.Code().String()
	}
	return connect.CodeUnknown.String()
}
