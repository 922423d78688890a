// FILE: lixenwraith/colog/async/doc.go
// Package async implements colog's asynchronous logging backend: a
// bounded lock-free multi-producer/multi-consumer ring queue (Queue) feeding
// a single background worker (Backend) that batches, formats, and writes
// records to one or more sinks, with explicit lifecycle, flush, and drain
// semantics.
//
// This package is deliberately independent of the root colog package's
// Record/Formatter/Sink types — it defines its own minimal Record,
// Formatter, and Sink shapes (mirroring original_source/src/colog/record.h,
// formatter.h, and sink.h) so it can be vendored or reused without pulling
// in colog's configuration, registry, or compat surface. The root package
// adapts its own types onto these at the submission boundary.
package async
