// FILE: lixenwraith/colog/doc.go
// Package colog is a structured logging library built around a named,
// leveled Logger backed by pluggable Formatters and Sinks, with an
// optional asynchronous backend (see the async subpackage) for
// high-throughput producers that cannot afford to block or allocate on
// the calling goroutine's hot path.
//
// A Logger is synchronous by default: every call formats and writes on
// the caller's own goroutine. Calling Logger.EnableAsync redirects the
// write path through an async.Backend, trading per-call latency and
// ordering-across-loggers guarantees for a bounded, lock-free queue and a
// dedicated worker that batches formatting and sink writes off the
// caller entirely.
package colog
