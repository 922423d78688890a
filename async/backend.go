// FILE: lixenwraith/colog/async/backend.go
package async

import (
	"fmt"
	"runtime"
	"sync"
	"sync/atomic"
	"time"
)

// Backend is the asynchronous logging core: a single background worker
// draining a lock-free Queue of Items, batching their formatting and sink
// writes off the caller's goroutine, with explicit start/stop, flush, and
// drain-wait semantics — ported from
// original_source/src/colog/async/async_backend.h/.cpp.
//
// A Backend is reusable: Stop followed by Start begins a fresh run with a
// fresh queue. The zero value is a valid, not-yet-started Backend.
type Backend struct {
	config Config

	running       atomic.Bool
	stopRequested atomic.Bool

	mu   sync.Mutex
	cond *sync.Cond

	flushRequested      atomic.Bool
	processedGeneration atomic.Uint64

	queue *Queue[Item]
	done  chan struct{}
}

// NewBackend constructs a not-yet-started Backend.
func NewBackend() *Backend {
	b := &Backend{}
	b.cond = sync.NewCond(&b.mu)
	return b
}

// IsRunning reports whether the worker goroutine is active.
func (b *Backend) IsRunning() bool { return b.running.Load() }

// Start launches the worker goroutine with the given configuration.
// Calling Start while already running is a no-op, matching the original's
// compare-and-swap guard against double-start.
func (b *Backend) Start(config Config) {
	if !b.running.CompareAndSwap(false, true) {
		return
	}

	if b.cond == nil {
		b.cond = sync.NewCond(&b.mu)
	}

	b.config = config.normalize()
	b.stopRequested.Store(false)
	b.flushRequested.Store(false)
	b.processedGeneration.Store(0)
	b.queue = NewQueue[Item](b.config.QueueSize)
	b.done = make(chan struct{})

	go b.workerLoop()
}

// Stop signals the worker to finish and waits up to timeout for it to
// exit, draining any items still queued before returning. A zero or
// negative timeout waits forever.
func (b *Backend) Stop(timeout time.Duration) {
	if !b.running.Load() {
		return
	}

	b.stopRequested.Store(true)
	b.mu.Lock()
	b.cond.Broadcast()
	b.mu.Unlock()

	if timeout <= 0 {
		<-b.done
		return
	}

	select {
	case <-b.done:
	case <-time.After(timeout):
		// The worker missed its deadline; it keeps running to completion
		// on its own goroutine and will close b.done eventually, but the
		// caller gets control back now rather than hanging indefinitely.
	}
}

// Submit enqueues item for background processing. If the backend isn't
// running, Submit returns false immediately. Otherwise behavior depends on
// Config.DiscardOnFull: true drops the item and returns false when the
// queue is full; false retries with a cooperative yield until there is
// room or a stop is requested.
func (b *Backend) Submit(item Item) bool {
	if !b.running.Load() || b.queue == nil {
		return false
	}

	if b.config.DiscardOnFull {
		return b.queue.TryPush(item)
	}

	for !b.queue.TryPush(item) {
		if b.stopRequested.Load() {
			return false
		}
		runtime.Gosched()
	}
	return true
}

// Flush requests that the worker process pending items immediately rather
// than waiting out the remainder of its idle interval.
func (b *Backend) Flush() {
	if !b.running.Load() {
		return
	}
	b.flushRequested.Store(true)
	b.mu.Lock()
	b.cond.Signal()
	b.mu.Unlock()
}

// WaitForDrain blocks until every item queued at the time of the call has
// been processed, or timeout elapses. It returns true if the drain
// completed in time. A Backend that isn't running is considered already
// drained.
//
// Completion is observed as the worker finishing one more non-empty batch
// after the call. If the worker has already processed everything and no
// further item arrives, no such batch follows: WaitForDrain then returns
// false once timeout elapses, or blocks indefinitely for a zero or
// negative timeout.
func (b *Backend) WaitForDrain(timeout time.Duration) bool {
	if !b.running.Load() {
		return true
	}

	target := b.processedGeneration.Load() + 1
	b.Flush()

	deadline := time.Now().Add(timeout)
	for b.processedGeneration.Load() < target {
		if timeout > 0 && time.Now().After(deadline) {
			return false
		}
		time.Sleep(time.Millisecond)
	}
	return true
}

// QueueSize returns an advisory count of items currently queued.
func (b *Backend) QueueSize() int {
	if b.queue == nil {
		return 0
	}
	return b.queue.SizeApprox()
}

func (b *Backend) workerLoop() {
	for !b.stopRequested.Load() {
		processed := b.processBatch()
		if processed > 0 {
			b.processedGeneration.Add(1)
			continue
		}

		b.mu.Lock()
		if !b.stopRequested.Load() && !b.flushRequested.Load() && b.queue.Empty() {
			b.waitTimeout(b.config.FlushInterval)
		}
		b.flushRequested.Store(false)
		b.mu.Unlock()
	}

	b.drainQueue()
	b.running.Store(false)
	close(b.done)
}

// waitTimeout blocks on b.cond for at most d, or until Broadcast/Signal
// wakes it. b.mu must be held by the caller, matching sync.Cond.Wait's
// contract; the timer goroutine re-acquires mu to deliver the wakeup so it
// composes with an explicit Signal/Broadcast race-free.
func (b *Backend) waitTimeout(d time.Duration) {
	timer := time.AfterFunc(d, func() {
		b.mu.Lock()
		b.cond.Broadcast()
		b.mu.Unlock()
	})
	defer timer.Stop()
	b.cond.Wait()
}

func (b *Backend) processBatch() int {
	count := 0
	touched := make(map[Sink]struct{})

	for count < b.config.BatchSize {
		item, ok := b.queue.TryPop()
		if !ok {
			break
		}

		text, ok := b.safeFormat(item.Formatter, item.Record)
		if ok {
			for _, s := range item.Sinks {
				if !b.safeWrite(s, text) {
					continue
				}
				if !b.safeMarkTouched(touched, s) {
					// s's dynamic type isn't comparable and can't be used
					// as a map key; flush it directly instead of deferring
					// to the dedup pass below.
					b.safeFlush(s)
				}
			}
		}
		count++
	}

	for s := range touched {
		b.safeFlush(s)
	}

	return count
}

func (b *Backend) drainQueue() {
	for {
		item, ok := b.queue.TryPop()
		if !ok {
			return
		}

		text, ok := b.safeFormat(item.Formatter, item.Record)
		if !ok {
			continue
		}
		for _, s := range item.Sinks {
			if !b.safeWrite(s, text) {
				continue
			}
			b.safeFlush(s)
		}
	}
}

// safeFormat calls formatter.Format under recover, isolating the worker
// from a panicking user-supplied Formatter — Format's return type carries
// no error channel, so a panic is its only possible failure mode. ok is
// false if the call panicked, in which case text is unusable.
func (b *Backend) safeFormat(formatter Formatter, record Record) (text string, ok bool) {
	ok = true
	defer func() {
		if r := recover(); r != nil {
			b.reportError(fmt.Errorf("formatter panic: %v", r))
			ok = false
		}
	}()
	text = formatter.Format(record)
	return text, ok
}

// safeWrite calls sink.Write under recover, isolating the worker from a
// panicking or error-returning user-supplied Sink.
func (b *Backend) safeWrite(sink Sink, text string) (ok bool) {
	defer func() {
		if r := recover(); r != nil {
			b.reportError(fmt.Errorf("sink write panic: %v", r))
			ok = false
		}
	}()
	if err := sink.Write(text); err != nil {
		b.reportError(err)
		return false
	}
	return true
}

// safeFlush calls sink.Flush under recover, for the same reason as
// safeWrite.
func (b *Backend) safeFlush(sink Sink) {
	defer func() {
		if r := recover(); r != nil {
			b.reportError(fmt.Errorf("sink flush panic: %v", r))
		}
	}()
	if err := sink.Flush(); err != nil {
		b.reportError(err)
	}
}

// safeMarkTouched records s in touched, guarding against the panic a
// non-comparable dynamic Sink type would otherwise raise when used as a
// map key. Returns false if s could not be recorded.
func (b *Backend) safeMarkTouched(touched map[Sink]struct{}, s Sink) (ok bool) {
	ok = true
	defer func() {
		if r := recover(); r != nil {
			ok = false
		}
	}()
	touched[s] = struct{}{}
	return ok
}

func (b *Backend) reportError(err error) {
	if b.config.OnError != nil {
		b.config.OnError(err)
	}
}
