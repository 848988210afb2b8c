package sim

import "github.com/sirupsen/logrus"

// Process is a unit of suspendable logic. A process suspends by asking the
// simulator to wake it after a delay, and is resumed exactly once per such
// request, in due-time order. Repeating processes (demand generation,
// inventory review) perform one cycle per resumption and reschedule
// themselves; one-shot processes (an order delivery) resume a single time
// and finish. There is no cancellation: a process stops for good once the
// run loop stops resuming it.
type Process interface {
	Resume(sim *Simulator)
}

// mustSchedule suspends p for delay time units. A rejected delay is a
// programming error in process logic, never recoverable.
func mustSchedule(sim *Simulator, delay float64, p Process) {
	if err := sim.Schedule(delay, p); err != nil {
		logrus.Fatalf("scheduling %T: %v", p, err)
	}
}
