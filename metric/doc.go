// Package metric provides Prometheus instrumentation for the literal
// canonicalizer service: record throughput, validation failures by
// datatype, canonicalization counts and processing latency, on a dedicated
// registry that also carries the Go runtime collectors.
package metric
