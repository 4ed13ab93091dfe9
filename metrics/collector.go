// Package metrics exports ctxlog destination events as Prometheus counters.
package metrics

import (
	"github.com/cockroachdb/errors"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/trickstertwo/ctxlog"
)

const namespace = "ctxlog"

// Collector is a ctxlog.Observer counting destination events.
type Collector struct {
	registry prometheus.Registerer
	gatherer prometheus.Gatherer

	resolved prometheus.Counter
	created  prometheus.Counter
	opened   prometheus.Counter
	closed   prometheus.Counter
	failures prometheus.Counter
}

// NewCollector registers the ctxlog counters on reg. A nil reg gets a
// private registry, available through Registry and Gatherer.
func NewCollector(reg prometheus.Registerer) (*Collector, error) {
	if reg == nil {
		reg = prometheus.NewRegistry()
	}
	gatherer, _ := reg.(prometheus.Gatherer)
	c := &Collector{
		registry: reg,
		gatherer: gatherer,
		resolved: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "destinations_resolved_total",
			Help:      "Log destinations resolved.",
		}),
		created: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "directories_created_total",
			Help:      "Log directories created because they were missing.",
		}),
		opened: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "sinks_opened_total",
			Help:      "File sinks opened.",
		}),
		closed: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "sinks_closed_total",
			Help:      "File sinks closed after a destination change or shutdown.",
		}),
		failures: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "failures_total",
			Help:      "Failed resolutions, directory creations and sink operations.",
		}),
	}
	for _, m := range []prometheus.Collector{c.resolved, c.created, c.opened, c.closed, c.failures} {
		if err := reg.Register(m); err != nil {
			return nil, errors.Wrap(err, "metrics: register ctxlog counter")
		}
	}
	return c, nil
}

// Registry returns the registerer the counters live in.
func (c *Collector) Registry() prometheus.Registerer { return c.registry }

// Gatherer returns the registry as a Gatherer for serving or scraping, nil
// when the registerer passed to NewCollector cannot gather.
func (c *Collector) Gatherer() prometheus.Gatherer { return c.gatherer }

// OnEvent implements ctxlog.Observer.
func (c *Collector) OnEvent(e ctxlog.Event) {
	switch e.Kind {
	case ctxlog.EventResolved:
		c.resolved.Inc()
	case ctxlog.EventDirectoryCreated:
		c.created.Inc()
	case ctxlog.EventSinkOpened:
		c.opened.Inc()
	case ctxlog.EventSinkClosed:
		c.closed.Inc()
	case ctxlog.EventFailed:
		c.failures.Inc()
	}
}

var _ ctxlog.Observer = (*Collector)(nil)
