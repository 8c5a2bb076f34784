// Package metrics records run counters for make-blank-docs.
//
// Components receive a Recorder through dependency injection and default to
// NoopRecorder, so nothing needs a nil check:
//
//	gen := generator.New(generator.Options{Recorder: metrics.NoopRecorder{}})
//
// A run is a short-lived batch job, so PrometheusRecorder does not serve HTTP.
// Instead the registry is written once at the end of the run in the text
// exposition format (node_exporter textfile collector):
//
//	rec := metrics.NewPrometheusRecorder(nil)
//	defer rec.WriteTextfile("/var/lib/node_exporter/blankdocs.prom")
package metrics
