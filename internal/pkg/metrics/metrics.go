// Package metrics exposes Prometheus collectors for the ECB dispatch layer.
package metrics

import (
	"errors"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "aes_ecb"

// Metrics groups the collectors updated by the ECB service
type Metrics struct {
	BlocksEncrypted *prometheus.CounterVec
	BackendCalls    *prometheus.CounterVec
	BackendFaults   *prometheus.CounterVec
	LiveSchedules   *prometheus.GaugeVec
}

// New creates the collectors and registers them with reg. Collectors already registered with reg
// are reused, so several services may share one registry.
func New(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		BlocksEncrypted: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "blocks_encrypted_total",
			Help:      "Number of 16 byte blocks encrypted.",
		}, []string{"backend", "variant"}),
		BackendCalls: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "backend_calls_total",
			Help:      "Number of calls into the block backend.",
		}, []string{"backend", "strategy"}),
		BackendFaults: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "backend_faults_total",
			Help:      "Number of unrecoverable backend faults.",
		}, []string{"backend"}),
		LiveSchedules: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "live_schedules",
			Help:      "Number of key schedules loaded and not yet released.",
		}, []string{"variant"}),
	}

	var err error
	m.BlocksEncrypted, err = register(reg, m.BlocksEncrypted)
	if err != nil {
		return nil, err
	}
	m.BackendCalls, err = register(reg, m.BackendCalls)
	if err != nil {
		return nil, err
	}
	m.BackendFaults, err = register(reg, m.BackendFaults)
	if err != nil {
		return nil, err
	}
	m.LiveSchedules, err = register(reg, m.LiveSchedules)
	if err != nil {
		return nil, err
	}
	return m, nil
}

func register[C prometheus.Collector](reg prometheus.Registerer, c C) (C, error) {
	if err := reg.Register(c); err != nil {
		var already prometheus.AlreadyRegisteredError
		if errors.As(err, &already) {
			if existing, ok := already.ExistingCollector.(C); ok {
				return existing, nil
			}
		}
		var zero C
		return zero, fmt.Errorf("failed to register metrics collector: %w", err)
	}
	return c, nil
}
