package engine

import (
	"container/heap"
	"time"
)

// Callback priorities. Lower runs first when two callbacks share an instant.
const (
	priorityCountdown = iota
	priorityPhase
)

type scheduled struct {
	at       time.Time
	priority int
	seq      uint64
	gen      uint64
	fn       func(at time.Time)
}

type timerQueue []*scheduled

func (q timerQueue) Len() int { return len(q) }

func (q timerQueue) Less(i, j int) bool {
	if !q[i].at.Equal(q[j].at) {
		return q[i].at.Before(q[j].at)
	}
	if q[i].priority != q[j].priority {
		return q[i].priority < q[j].priority
	}
	return q[i].seq < q[j].seq
}

func (q timerQueue) Swap(i, j int) { q[i], q[j] = q[j], q[i] }

func (q *timerQueue) Push(x any) { *q = append(*q, x.(*scheduled)) }

func (q *timerQueue) Pop() any {
	old := *q
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*q = old[:n-1]
	return item
}

// Scheduler is a virtual-time callback queue. Nothing fires on its own:
// RunDue executes whatever is due at the time it is given.
//
// Every callback is stamped with the generation current when it was
// scheduled. Cancel bumps the generation, so a callback from an earlier
// generation is dropped even if it is already in flight.
type Scheduler struct {
	queue timerQueue
	gen   uint64
	seq   uint64
}

// Schedule queues fn to run at the given instant. fn receives its scheduled
// time, not the time RunDue was called with.
func (s *Scheduler) Schedule(at time.Time, priority int, fn func(at time.Time)) {
	s.seq++
	heap.Push(&s.queue, &scheduled{at: at, priority: priority, seq: s.seq, gen: s.gen, fn: fn})
}

// Cancel invalidates every queued callback.
func (s *Scheduler) Cancel() {
	s.gen++
	s.queue = nil
}

// RunDue fires callbacks due at or before now in time order, including ones
// scheduled by callbacks during the run. It returns how many fired.
func (s *Scheduler) RunDue(now time.Time) int {
	fired := 0
	for len(s.queue) > 0 && !s.queue[0].at.After(now) {
		next := heap.Pop(&s.queue).(*scheduled)
		if next.gen != s.gen {
			continue
		}
		next.fn(next.at)
		fired++
	}
	return fired
}

// Pending counts callbacks of the current generation still queued.
func (s *Scheduler) Pending() int {
	n := 0
	for _, item := range s.queue {
		if item.gen == s.gen {
			n++
		}
	}
	return n
}

// next reports when the earliest live callback is due.
func (s *Scheduler) next() (time.Time, bool) {
	var best *scheduled
	for _, item := range s.queue {
		if item.gen != s.gen {
			continue
		}
		if best == nil || item.at.Before(best.at) {
			best = item
		}
	}
	if best == nil {
		return time.Time{}, false
	}
	return best.at, true
}

func (s *Scheduler) generation() uint64 { return s.gen }
