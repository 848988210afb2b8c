// sim/simulator.go
package sim

import (
	"container/heap"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
)

// ErrInvalidDelay is returned by Schedule when asked to suspend a process
// for a negative duration. Correct process logic never does this, so callers
// treat it as fatal.
var ErrInvalidDelay = errors.New("scheduling delay must be non-negative")

// wakeUp is a pending resumption: resume target at simulated time due.
// seq preserves scheduling order so simultaneous wake-ups resume FIFO.
type wakeUp struct {
	due    float64
	seq    uint64
	target Process
}

// wakeUpQueue implements heap.Interface and orders wake-ups by due time,
// breaking ties by scheduling sequence.
// See canonical Golang example here: https://pkg.go.dev/container/heap#example-package-IntHeap
type wakeUpQueue []*wakeUp

func (q wakeUpQueue) Len() int { return len(q) }
func (q wakeUpQueue) Less(i, j int) bool {
	if q[i].due != q[j].due {
		return q[i].due < q[j].due
	}
	return q[i].seq < q[j].seq
}
func (q wakeUpQueue) Swap(i, j int) { q[i], q[j] = q[j], q[i] }

func (q *wakeUpQueue) Push(x any) {
	*q = append(*q, x.(*wakeUp))
}

func (q *wakeUpQueue) Pop() any {
	old := *q
	n := len(old)
	item := old[n-1]
	*q = old[0 : n-1]
	return item
}

// Simulator is the core object that holds simulation time and the pending
// wake-up queue, and drives the cooperative event loop. Exactly one logical
// process executes at a time; suspension points are the only yield
// boundaries, so shared state needs no locking.
type Simulator struct {
	Clock float64
	queue wakeUpQueue
	seq   uint64
}

// NewSimulator creates a simulator with its clock at zero and no pending
// wake-ups.
func NewSimulator() *Simulator {
	return &Simulator{
		queue: make(wakeUpQueue, 0),
	}
}

// Schedule requests that p be resumed once, delay time units from now.
// Wake-ups requested with equal due times resume in the order they were
// scheduled.
func (sim *Simulator) Schedule(delay float64, p Process) error {
	if delay < 0 {
		return fmt.Errorf("%w: got %v", ErrInvalidDelay, delay)
	}
	w := &wakeUp{due: sim.Clock + delay, seq: sim.seq, target: p}
	sim.seq++
	heap.Push(&sim.queue, w)
	return nil
}

// Pending reports the number of wake-ups not yet delivered.
func (sim *Simulator) Pending() int {
	return len(sim.queue)
}

// Run advances the clock and resumes suspended processes in due-time order
// until the earliest pending wake-up falls past the until bound, or no
// wake-ups remain. Resumed processes may schedule further wake-ups, which
// are considered within the same call. The clock never moves backward.
func (sim *Simulator) Run(until float64) {
	for len(sim.queue) > 0 {
		if sim.queue[0].due > until {
			break
		}
		next := heap.Pop(&sim.queue).(*wakeUp)
		// advance the clock
		sim.Clock = next.due
		logrus.Debugf("[t %10.4f] resuming %T", sim.Clock, next.target)
		// resume the suspended process
		next.target.Resume(sim)
	}
	logrus.Debugf("[t %10.4f] run loop drained (bound %v)", sim.Clock, until)
}
