package sim

import "github.com/sirupsen/logrus"

// RateLimitedClient owns the ordered endpoint fallback chain shared by all
// workers. Every Acquire starts from endpoint index 0: try primary, fall back
// through each alternate in order, fail only when all are saturated. The
// client keeps no cursor between calls, so identical endpoint states always
// select the lowest-indexed available endpoint.
type RateLimitedClient struct {
	endpoints []*Endpoint
}

// NewRateLimitedClient builds a client with one endpoint per entry of
// rpmLimits. Endpoint IDs are assigned 1..N in fallback priority order.
func NewRateLimitedClient(rpmLimits []int) *RateLimitedClient {
	endpoints := make([]*Endpoint, 0, len(rpmLimits))
	for i, limit := range rpmLimits {
		endpoints = append(endpoints, NewEndpoint(i+1, limit))
	}
	return &RateLimitedClient{endpoints: endpoints}
}

// Acquire finds the first endpoint with remaining capacity at tick now.
// Returns the granting endpoint's ID, or ok=false when every endpoint denied.
func (c *RateLimitedClient) Acquire(now int64) (endpointID int, ok bool) {
	for _, e := range c.endpoints {
		if e.TryAdmit(now) {
			logrus.Debugf("[tick %07d] endpoint %d granted", now, e.ID())
			return e.ID(), true
		}
		logrus.Debugf("[tick %07d] endpoint %d rate limited, trying next", now, e.ID())
	}
	logrus.Debugf("[tick %07d] all %d endpoints exhausted", now, len(c.endpoints))
	return 0, false
}

// NumEndpoints returns the length of the fallback chain.
func (c *RateLimitedClient) NumEndpoints() int {
	return len(c.endpoints)
}
