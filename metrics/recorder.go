package metrics

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/katalvlaran/lvsearch/search"
)

// Outcome label values.
const (
	OutcomeFound     = "found"
	OutcomeExhausted = "exhausted"
	OutcomeError     = "error"
)

// Recorder holds the collectors shared by every Observer it hands out.
type Recorder struct {
	pushes   *prometheus.CounterVec
	expanded *prometheus.CounterVec
	stale    *prometheus.CounterVec
	searches *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

// NewRecorder creates the collectors and registers them on reg.
func NewRecorder(reg prometheus.Registerer) (*Recorder, error) {
	r := &Recorder{
		pushes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "lvsearch_frontier_pushes_total",
			Help: "Total number of entries pushed onto a search frontier.",
		}, []string{"algorithm"}),
		expanded: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "lvsearch_nodes_expanded_total",
			Help: "Total number of nodes closed and expanded.",
		}, []string{"algorithm"}),
		stale: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "lvsearch_stale_pops_total",
			Help: "Total number of superseded frontier entries discarded on pop.",
		}, []string{"algorithm"}),
		searches: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "lvsearch_searches_total",
			Help: "Total number of completed searches by outcome.",
		}, []string{"algorithm", "outcome"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "lvsearch_search_duration_seconds",
			Help:    "Wall time of a search from first step to terminal state.",
			Buckets: prometheus.ExponentialBuckets(1e-5, 4, 10),
		}, []string{"algorithm"}),
	}
	for _, c := range []prometheus.Collector{r.pushes, r.expanded, r.stale, r.searches, r.duration} {
		if err := reg.Register(c); err != nil {
			return nil, fmt.Errorf("metrics: register: %w", err)
		}
	}
	return r, nil
}

// Observer returns a search.Observer that records under the given algorithm
// label. Observers are cheap and safe to use from concurrent searches.
func (r *Recorder) Observer(algorithm string) search.Observer {
	return &observer{
		r:         r,
		algorithm: algorithm,
		pushes:    r.pushes.WithLabelValues(algorithm),
		expanded:  r.expanded.WithLabelValues(algorithm),
		stale:     r.stale.WithLabelValues(algorithm),
		duration:  r.duration.WithLabelValues(algorithm),
	}
}

type observer struct {
	r         *Recorder
	algorithm string
	pushes    prometheus.Counter
	expanded  prometheus.Counter
	stale     prometheus.Counter
	duration  prometheus.Observer
}

func (o *observer) OnPush()   { o.pushes.Inc() }
func (o *observer) OnExpand() { o.expanded.Inc() }
func (o *observer) OnStale()  { o.stale.Inc() }

func (o *observer) OnFinish(state search.State, _ search.Stats, elapsed time.Duration, err error) {
	o.duration.Observe(elapsed.Seconds())
	o.r.searches.WithLabelValues(o.algorithm, outcome(state, err)).Inc()
}

func outcome(state search.State, err error) string {
	switch {
	case err != nil:
		return OutcomeError
	case state == search.StateFound:
		return OutcomeFound
	default:
		return OutcomeExhausted
	}
}
