package metrics

// Collector wraps metrics and provides helper methods with a pre-filled
// application label.
type Collector struct {
	app string
}

// NewCollector creates a new Collector for the given application name.
func NewCollector(app string) *Collector {
	return &Collector{app: app}
}

// IncStepAttempt increments the step attempts counter.
func (c *Collector) IncStepAttempt(step string) {
	StepAttemptsTotal.WithLabelValues(c.app, step).Inc()
}

// AddStepAttempts adds a step's attempt count to the attempts counter.
func (c *Collector) AddStepAttempts(step string, count int) {
	StepAttemptsTotal.WithLabelValues(c.app, step).Add(float64(count))
}

// IncStepFailure increments the step failures counter for an outcome.
func (c *Collector) IncStepFailure(step, outcome string) {
	StepFailuresTotal.WithLabelValues(c.app, step, outcome).Inc()
}

// ObserveStepDuration records a step duration observation.
func (c *Collector) ObserveStepDuration(step string, seconds float64) {
	StepDuration.WithLabelValues(c.app, step).Observe(seconds)
}

// IncMigrationRetries increments the migration retries counter.
func (c *Collector) IncMigrationRetries() {
	MigrationRetriesTotal.WithLabelValues(c.app).Inc()
}

// SetUnappliedMigrations sets the unapplied migrations gauge.
func (c *Collector) SetUnappliedMigrations(count int) {
	UnappliedMigrations.WithLabelValues(c.app).Set(float64(count))
}

// IncSequence increments the completed sequences counter for a result.
func (c *Collector) IncSequence(result string) {
	SequencesTotal.WithLabelValues(c.app, result).Inc()
}
