// Package metrics provides the Prometheus collectors exported by the todo service.
package metrics

import "github.com/prometheus/client_golang/prometheus"

// HashBuckets covers credential hashing latencies from 1ms to 2.5s.
var HashBuckets = []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5}

// Outcome labels for AuthRequestsTotal.
const (
	OutcomeAuthenticated = "authenticated"
	OutcomeRejected      = "rejected"
)

var (
	// AuthRequestsTotal counts protected calls by outcome and, for rejections, error kind.
	AuthRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "todo_auth_requests_total",
			Help: "Authentication decisions on protected routes",
		},
		[]string{"outcome", "kind"},
	)

	// TokenVerifyDuration records bearer token verification time in seconds.
	TokenVerifyDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "todo_token_verify_duration_seconds",
			Help:    "Token verification duration",
			Buckets: prometheus.DefBuckets,
		},
	)

	// CredentialHashDuration records hash and verify time in seconds.
	CredentialHashDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "todo_credential_hash_duration_seconds",
			Help:    "Credential hashing duration",
			Buckets: HashBuckets,
		},
		[]string{"operation"},
	)

	// CredentialHashInFlight tracks hash computations currently holding a worker slot.
	CredentialHashInFlight = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "todo_credential_hash_in_flight",
			Help: "Credential hash computations in flight",
		},
	)

	// OwnershipChecksTotal counts ownership checks by result.
	OwnershipChecksTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "todo_ownership_checks_total",
			Help: "Ownership checks",
		},
		[]string{"result"},
	)
)

func init() {
	prometheus.MustRegister(
		AuthRequestsTotal,
		TokenVerifyDuration,
		CredentialHashDuration,
		CredentialHashInFlight,
		OwnershipChecksTotal,
	)
}
