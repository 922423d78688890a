// FILE: lixenwraith/colog/async/queue.go
package async

import "sync/atomic"

// cacheLinePad is sized to isolate a hot atomic counter onto its own cache
// line, the way the original's kCacheLineSize / alignas(kCacheLineSize)
// does and codewanderer42820's ring_56byte.go mirrors with raw byte arrays.
const cacheLinePad = 64 - 8

// slot is a single ring-buffer cell: one item plus a sequence number whose
// value, relative to the producer/consumer position that last touched it,
// says whether the slot is writable, readable, or belongs to the other
// side: writable when sequence == enqueue position (then set to pos+1),
// readable when sequence == dequeue position + 1 (then set to
// pos+capacity). See TryPush and TryPop.
type slot[T any] struct {
	sequence atomic.Uint64
	data     T
}

// Queue is a fixed-capacity, lock-free multi-producer/multi-consumer ring
// buffer of T, ported from Dmitry Vyukov's bounded MPMC queue design —
// the same algorithm as original_source/src/colog/async/lock_free_queue.h,
// which this package's Backend drives directly.
//
// TryPush and TryPop are both non-blocking: they return an ok=false
// outcome (full / empty) instead of waiting, and never take a lock. FIFO
// order holds per successful (push, pop) pair witnessing the same slot;
// there is no global linearisation across slots, but every item
// successfully pushed is eventually poppable by any consumer observing
// acquire loads on its slot's sequence number.
type Queue[T any] struct {
	capacity uint64
	mask     uint64
	buf      []slot[T]

	_          [cacheLinePad]byte
	enqueuePos atomic.Uint64
	_          [cacheLinePad]byte
	dequeuePos atomic.Uint64
	_          [cacheLinePad]byte
}

// NewQueue constructs a Queue with capacity rounded up to the next power
// of two (a requested capacity of 0 becomes 1).
func NewQueue[T any](capacity int) *Queue[T] {
	cap64 := nextPowerOfTwo(uint64(capacity))
	q := &Queue[T]{
		capacity: cap64,
		mask:     cap64 - 1,
		buf:      make([]slot[T], cap64),
	}
	for i := range q.buf {
		q.buf[i].sequence.Store(uint64(i))
	}
	return q
}

// nextPowerOfTwo rounds n up to the next power of two, treating 0 as 1.
func nextPowerOfTwo(n uint64) uint64 {
	if n == 0 {
		return 1
	}
	n--
	n |= n >> 1
	n |= n >> 2
	n |= n >> 4
	n |= n >> 8
	n |= n >> 16
	n |= n >> 32
	return n + 1
}

// Capacity returns the queue's slot count (always a power of two).
func (q *Queue[T]) Capacity() int { return int(q.capacity) }

// TryPush attempts to enqueue item, returning false immediately if the
// queue is full rather than waiting.
func (q *Queue[T]) TryPush(item T) bool {
	pos := q.enqueuePos.Load()

	for {
		s := &q.buf[pos&q.mask]
		seq := s.sequence.Load()
		diff := int64(seq) - int64(pos)

		switch {
		case diff == 0:
			if q.enqueuePos.CompareAndSwap(pos, pos+1) {
				s.data = item
				s.sequence.Store(pos + 1)
				return true
			}
			// Lost the race for this position; CompareAndSwap left pos
			// untouched on failure, so reload before retrying.
			pos = q.enqueuePos.Load()
		case diff < 0:
			return false // full
		default:
			pos = q.enqueuePos.Load() // another producer got here first
		}
	}
}

// TryPop attempts to dequeue an item, returning ok=false immediately if
// the queue is empty rather than waiting.
func (q *Queue[T]) TryPop() (item T, ok bool) {
	pos := q.dequeuePos.Load()

	for {
		s := &q.buf[pos&q.mask]
		seq := s.sequence.Load()
		diff := int64(seq) - int64(pos+1)

		switch {
		case diff == 0:
			if q.dequeuePos.CompareAndSwap(pos, pos+1) {
				item = s.data
				var zero T
				s.data = zero // release the reference before publishing the slot as free
				s.sequence.Store(pos + q.capacity)
				return item, true
			}
			pos = q.dequeuePos.Load()
		case diff < 0:
			return item, false // empty
		default:
			pos = q.dequeuePos.Load() // another consumer got here first
		}
	}
}

// Empty reports whether the queue currently holds no items. Advisory only
// under concurrency: a racing producer or consumer can invalidate the
// answer before the caller acts on it.
func (q *Queue[T]) Empty() bool {
	return q.enqueuePos.Load() == q.dequeuePos.Load()
}

// SizeApprox returns an advisory count of items currently in the queue.
func (q *Queue[T]) SizeApprox() int {
	enq := q.enqueuePos.Load()
	deq := q.dequeuePos.Load()
	return int(enq - deq)
}
