package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// StepAttemptsTotal tracks the total number of step attempts, including retries.
var StepAttemptsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "deploy_bootstrap_step_attempts_total",
		Help: "Total step attempts, including retries",
	},
	[]string{"app", "step"},
)

// StepFailuresTotal tracks the total number of step failures by outcome.
var StepFailuresTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "deploy_bootstrap_step_failures_total",
		Help: "Total step failures by outcome (tolerated or failed)",
	},
	[]string{"app", "step", "outcome"},
)

// StepDuration tracks step wall-clock duration in seconds, including retries.
var StepDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Name:    "deploy_bootstrap_step_duration_seconds",
		Help:    "Step duration in seconds, including retries",
		Buckets: prometheus.ExponentialBuckets(0.1, 2, 12),
	},
	[]string{"app", "step"},
)

// MigrationRetriesTotal tracks how many times the migration command was retried.
var MigrationRetriesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "deploy_bootstrap_migration_retries_total",
		Help: "Total migration command retries",
	},
	[]string{"app"},
)

// UnappliedMigrations tracks the last observed count of unapplied migrations.
var UnappliedMigrations = promauto.NewGaugeVec(
	prometheus.GaugeOpts{
		Name: "deploy_bootstrap_unapplied_migrations",
		Help: "Last observed count of unapplied migrations",
	},
	[]string{"app"},
)

// SequencesTotal tracks completed bootstrap sequences by result.
var SequencesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "deploy_bootstrap_sequences_total",
		Help: "Total bootstrap sequences by result (ok or aborted)",
	},
	[]string{"app", "result"},
)
