package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetricsRegistered(t *testing.T) {
	AuthRequestsTotal.WithLabelValues(OutcomeAuthenticated, "").Inc()
	TokenVerifyDuration.Observe(0.001)
	CredentialHashDuration.WithLabelValues("hash").Observe(0.05)
	CredentialHashInFlight.Set(0)
	OwnershipChecksTotal.WithLabelValues("owned").Inc()

	families, err := prometheus.DefaultGatherer.Gather()
	require.NoError(t, err)

	expected := map[string]bool{
		"todo_auth_requests_total":              false,
		"todo_token_verify_duration_seconds":    false,
		"todo_credential_hash_duration_seconds": false,
		"todo_credential_hash_in_flight":        false,
		"todo_ownership_checks_total":           false,
	}
	for _, mf := range families {
		if _, ok := expected[mf.GetName()]; ok {
			expected[mf.GetName()] = true
		}
	}

	for name, found := range expected {
		assert.True(t, found, "metric %s not registered", name)
	}
}

func TestAuthRequestsTotal_Labels(t *testing.T) {
	before := testutil.ToFloat64(AuthRequestsTotal.WithLabelValues(OutcomeRejected, "TOKEN_EXPIRED"))
	AuthRequestsTotal.WithLabelValues(OutcomeRejected, "TOKEN_EXPIRED").Inc()

	assert.InDelta(t, before+1, testutil.ToFloat64(AuthRequestsTotal.WithLabelValues(OutcomeRejected, "TOKEN_EXPIRED")), 0.0001)
}
