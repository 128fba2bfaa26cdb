// Package schedule is a tick-polled task queue. Times are seconds on the
// game's monotonic clock.
package schedule

import "container/heap"

type Action func(now float64)

type task struct {
	fireAt float64
	seq    uint64
	action Action
}

type taskHeap []task

func (h taskHeap) Len() int { return len(h) }
func (h taskHeap) Less(i, j int) bool {
	if h[i].fireAt != h[j].fireAt {
		return h[i].fireAt < h[j].fireAt
	}
	return h[i].seq < h[j].seq
}
func (h taskHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }
func (h *taskHeap) Push(x any)   { *h = append(*h, x.(task)) }
func (h *taskHeap) Pop() any {
	old := *h
	n := len(old)
	t := old[n-1]
	old[n-1] = task{}
	*h = old[:n-1]
	return t
}

// Scheduler is not safe for concurrent use; it lives on the update goroutine.
type Scheduler struct {
	tasks taskHeap
	seq   uint64
}

func New() *Scheduler {
	return &Scheduler{}
}

// At queues action to run on the first Poll with now >= t.
func (s *Scheduler) At(t float64, action Action) {
	if action == nil {
		return
	}
	s.seq++
	heap.Push(&s.tasks, task{fireAt: t, seq: s.seq, action: action})
}

func (s *Scheduler) After(now, delay float64, action Action) {
	if delay < 0 {
		delay = 0
	}
	s.At(now+delay, action)
}

// Poll runs every due task in (fireAt, insertion) order and returns how many
// ran. Tasks queued by an action that are already due run in the same call.
func (s *Scheduler) Poll(now float64) int {
	ran := 0
	for len(s.tasks) > 0 && s.tasks[0].fireAt <= now {
		t := heap.Pop(&s.tasks).(task)
		t.action(now)
		ran++
	}
	return ran
}

func (s *Scheduler) Len() int { return len(s.tasks) }

// Next reports the earliest pending fire time.
func (s *Scheduler) Next() (float64, bool) {
	if len(s.tasks) == 0 {
		return 0, false
	}
	return s.tasks[0].fireAt, true
}
