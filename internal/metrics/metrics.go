// Package metrics exposes solver statistics and solve outcomes to
// Prometheus.
package metrics

import (
	"sort"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/vhavlena/cadical-go/cadical"
)

const namespace = "cadical"

// Collector is a prometheus.Collector over snapshots of solver statistics.
// Snapshots are pushed with Update rather than pulled at scrape time,
// because a Solver must not be queried while another goroutine is solving
// on it.
type Collector struct {
	mu    sync.Mutex
	stats map[string]cadical.Stats

	vars        *prometheus.Desc
	active      *prometheus.Desc
	redundant   *prometheus.Desc
	irredundant *prometheus.Desc

	solves   *prometheus.CounterVec
	duration prometheus.Histogram
}

var _ prometheus.Collector = (*Collector)(nil)

// New returns a Collector whose metrics all carry the label run=run.
func New(run string) *Collector {
	labels := prometheus.Labels{"run": run}
	desc := func(name, help string) *prometheus.Desc {
		return prometheus.NewDesc(prometheus.BuildFQName(namespace, "", name), help, []string{"solver"}, labels)
	}
	return &Collector{
		stats:       make(map[string]cadical.Stats),
		vars:        desc("variables", "Maximum variable index in use."),
		active:      desc("active_variables", "Variables neither fixed nor eliminated."),
		redundant:   desc("redundant_clauses", "Learned clauses currently kept."),
		irredundant: desc("irredundant_clauses", "Original clauses currently kept."),
		solves: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace:   namespace,
			Name:        "solves_total",
			Help:        "Completed solve calls by result.",
			ConstLabels: labels,
		}, []string{"status"}),
		duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace:   namespace,
			Name:        "solve_duration_seconds",
			Help:        "Wall clock time of solve calls.",
			ConstLabels: labels,
			Buckets:     prometheus.ExponentialBuckets(0.001, 4, 10),
		}),
	}
}

// Update records the latest statistics of the solver named solver.
func (c *Collector) Update(solver string, st cadical.Stats) {
	c.mu.Lock()
	c.stats[solver] = st
	c.mu.Unlock()
}

// Forget drops the statistics of solver, e.g. once it was closed.
func (c *Collector) Forget(solver string) {
	c.mu.Lock()
	delete(c.stats, solver)
	c.mu.Unlock()
}

// Observe counts one finished solve call.
func (c *Collector) Observe(status cadical.Status, elapsed time.Duration) {
	c.solves.WithLabelValues(status.String()).Inc()
	c.duration.Observe(elapsed.Seconds())
}

func (c *Collector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.vars
	ch <- c.active
	ch <- c.redundant
	ch <- c.irredundant
	c.solves.Describe(ch)
	c.duration.Describe(ch)
}

func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	c.mu.Lock()
	names := make([]string, 0, len(c.stats))
	for name := range c.stats {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		st := c.stats[name]
		ch <- prometheus.MustNewConstMetric(c.vars, prometheus.GaugeValue, float64(st.Vars), name)
		ch <- prometheus.MustNewConstMetric(c.active, prometheus.GaugeValue, float64(st.Active), name)
		ch <- prometheus.MustNewConstMetric(c.redundant, prometheus.GaugeValue, float64(st.Redundant), name)
		ch <- prometheus.MustNewConstMetric(c.irredundant, prometheus.GaugeValue, float64(st.Irredundant), name)
	}
	c.mu.Unlock()
	c.solves.Collect(ch)
	c.duration.Collect(ch)
}
