// Package metrics counts the work done by lensing operators with Prometheus
// collectors registered on a caller-supplied registry.
//
// A nil *Recorder is valid and records nothing, so operators can carry one
// unconditionally.
package metrics
