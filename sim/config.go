package sim

import "fmt"

// DefaultPercentiles is the percentile set reported when none is configured.
var DefaultPercentiles = []float64{50, 75, 90, 99}

// Config groups the parameters of a single simulation run. A Config is passed
// into NewSimulator explicitly, never read from ambient state, so runs with
// different configurations can coexist.
type Config struct {
	Workers       int   // number of workers in the pool (must be > 0)
	QueueCapacity int   // max queued tasks; 0 is legal, UnboundedCapacity (-1) disables the limit
	RPMLimits     []int // per-endpoint admission cap per window, index 0 = endpoint 1 (each must be > 0)

	// Percentiles to report; nil or empty selects DefaultPercentiles.
	Percentiles []float64
}

// UniformRPMLimits returns n copies of limit, the documented default of one
// shared cap across all endpoints.
func UniformRPMLimits(n, limit int) []int {
	limits := make([]int, n)
	for i := range limits {
		limits[i] = limit
	}
	return limits
}

// Validate checks the configuration before any event is processed. The engine
// refuses to start a run on a bad configuration rather than produce
// partially-undefined statistics.
func (c *Config) Validate() error {
	if c.Workers <= 0 {
		return fmt.Errorf("workers must be positive, got %d", c.Workers)
	}
	if c.QueueCapacity < 0 && c.QueueCapacity != UnboundedCapacity {
		return fmt.Errorf("queue capacity must be non-negative or unbounded (-1), got %d", c.QueueCapacity)
	}
	if len(c.RPMLimits) == 0 {
		return fmt.Errorf("at least one endpoint is required")
	}
	for i, limit := range c.RPMLimits {
		if limit <= 0 {
			return fmt.Errorf("endpoint %d: rpm limit must be positive, got %d", i+1, limit)
		}
	}
	for _, p := range c.Percentiles {
		if p < 0 || p > 100 {
			return fmt.Errorf("percentile must be between 0 and 100, got %v", p)
		}
	}
	return nil
}

// ReportPercentiles returns the configured percentile set or the default.
func (c *Config) ReportPercentiles() []float64 {
	if len(c.Percentiles) == 0 {
		return DefaultPercentiles
	}
	return c.Percentiles
}
