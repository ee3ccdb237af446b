// Package metrics defines the events emitted by the comparison harness and
// the recorder interfaces sinks implement. Concrete sinks for Prometheus and
// InfluxDB live in infra/metrics and can be combined with a multi-sink.
package metrics
