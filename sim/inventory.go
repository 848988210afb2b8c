package sim

import "github.com/sirupsen/logrus"

// OrderState tracks the replenishment-order lifecycle. At most one order is
// outstanding at a time: a reorder request arriving while the state is
// OrderPlaced is dropped.
type OrderState int

const (
	// OrderIdle means no order is in flight.
	OrderIdle OrderState = iota
	// OrderPlaced means an order has been placed and its delivery is pending.
	OrderPlaced
)

func (s OrderState) String() string {
	switch s {
	case OrderIdle:
		return "idle"
	case OrderPlaced:
		return "placed"
	default:
		return "unknown"
	}
}

// Inventory owns the stock level of the single product and the accumulators
// used for cost accounting. The level is a signed quantity: a negative level
// is the number of backordered units, a valid state rather than an error.
//
// AreaHolding and AreaShortage are the definite integrals of max(level,0)
// and max(-level,0) over elapsed simulated time, under the rule that the
// level is piecewise-constant between mutations. Accrue must therefore run
// before every level change, and once more at the end of a run to close the
// final segment.
type Inventory struct {
	Level        int
	AreaHolding  float64
	AreaShortage float64
	OrderingCost float64

	setupCost       float64 // K, incurred once per order placed
	incrementalCost float64 // i, incurred per unit ordered

	lastEventTime float64
	orderState    OrderState
}

// NewInventory creates an inventory holding initialLevel units at time zero,
// with no order in flight and zeroed accumulators.
func NewInventory(initialLevel int, setupCost, incrementalCost float64) *Inventory {
	return &Inventory{
		Level:           initialLevel,
		setupCost:       setupCost,
		incrementalCost: incrementalCost,
		orderState:      OrderIdle,
	}
}

// Accrue rolls the holding/shortage integrals forward to time at, weighting
// the elapsed interval with the level that held since the last event. A
// level of exactly zero contributes to neither integral. Calling Accrue
// twice at the same time is harmless: the second elapsed interval is zero.
func (inv *Inventory) Accrue(at float64) {
	elapsed := at - inv.lastEventTime
	if inv.Level < 0 {
		inv.AreaShortage += float64(-inv.Level) * elapsed
	} else if inv.Level > 0 {
		inv.AreaHolding += float64(inv.Level) * elapsed
	}
	inv.lastEventTime = at
}

// Get takes qty units from inventory at time now. The level may go
// negative; the deficit is a backorder, not an error.
func (inv *Inventory) Get(qty int, now float64) {
	inv.Accrue(now)
	inv.Level -= qty
	logrus.Debugf("[t %10.4f] demand of %d, level now %d", now, qty, inv.Level)
}

// Put adds qty units to inventory at time now.
func (inv *Inventory) Put(qty int, now float64) {
	inv.Accrue(now)
	inv.Level += qty
	logrus.Debugf("[t %10.4f] received %d, level now %d", now, qty, inv.Level)
}

// OrderInFlight reports whether an order has been placed but not yet
// delivered.
func (inv *Inventory) OrderInFlight() bool {
	return inv.orderState == OrderPlaced
}

// BeginReorder places an order bringing the level up to targetLevel. The
// order size is fixed against the level observed now; the ordering cost
// K + i*size is incurred immediately, at placement. Delivery happens after
// a lead time drawn from sampleLeadTime, at which point the units are put
// into inventory. A call while an order is already in flight is a silent
// no-op, so at most one order is ever outstanding.
func (inv *Inventory) BeginReorder(targetLevel int, sim *Simulator, sampleLeadTime func() float64) {
	if inv.orderState != OrderIdle {
		logrus.Debugf("[t %10.4f] reorder skipped, order already in flight", sim.Clock)
		return
	}
	inv.orderState = OrderPlaced
	size := targetLevel - inv.Level
	inv.OrderingCost += inv.setupCost + inv.incrementalCost*float64(size)
	lag := sampleLeadTime()
	logrus.Infof("[t %10.4f] order placed for %d units, lead time %.4f", sim.Clock, size, lag)
	mustSchedule(sim, lag, &delivery{inv: inv, size: size})
}

// delivery is the one-shot process completing an outstanding order: it
// sleeps for the lead time, then puts the ordered units into inventory and
// returns the order lifecycle to idle.
type delivery struct {
	inv  *Inventory
	size int
}

func (d *delivery) Resume(sim *Simulator) {
	d.inv.Put(d.size, sim.Clock)
	d.inv.orderState = OrderIdle
}
