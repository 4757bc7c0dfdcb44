// Package metrics exports search engine counters to Prometheus.
//
// A Recorder owns one set of collectors registered on a caller-supplied
// prometheus.Registerer. Recorder.Observer returns a search.Observer bound to
// one algorithm label; pass it to the engine with search.WithObserver.
//
// Metrics:
//
//	lvsearch_frontier_pushes_total{algorithm}
//	lvsearch_nodes_expanded_total{algorithm}
//	lvsearch_stale_pops_total{algorithm}
//	lvsearch_searches_total{algorithm,outcome}      outcome: found|exhausted|error
//	lvsearch_search_duration_seconds{algorithm}
package metrics
