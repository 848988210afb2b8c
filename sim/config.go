package sim

import (
	"errors"
	"fmt"
)

// ErrInvalidPolicy rejects an (s,S) policy whose reorder point does not lie
// below its target level, before any simulation run begins.
var ErrInvalidPolicy = errors.New("reorder point must be below target level")

// Policy is an (s,S) inventory policy: reorder when the level falls below
// the reorder point s, ordering up to the target level S. Immutable once
// constructed; one Policy configures one simulation run.
type Policy struct {
	ReorderPoint int // s
	TargetLevel  int // S
}

// NewPolicy validates and constructs an (s,S) policy.
func NewPolicy(s, S int) (Policy, error) {
	if s >= S {
		return Policy{}, fmt.Errorf("%w: got (s=%d, S=%d)", ErrInvalidPolicy, s, S)
	}
	return Policy{ReorderPoint: s, TargetLevel: S}, nil
}

func (p Policy) String() string {
	return fmt.Sprintf("(%3d,%3d)", p.ReorderPoint, p.TargetLevel)
}

// Parameters is the immutable configuration bundle for simulation runs:
// the demand model, the delivery lag model, the cost coefficients, and the
// horizon. Built once, read-only thereafter.
type Parameters struct {
	// InitialInventoryLevel is the stock level each run starts from.
	InitialInventoryLevel int
	// DemandSizeCDF holds cumulative probabilities for demand sizes 1..N,
	// nondecreasing and ending at 1.
	DemandSizeCDF []float64
	// MeanInterdemandTime is the mean of the exponential gap between
	// successive demands.
	MeanInterdemandTime float64
	// DeliveryLagMin and DeliveryLagMax bound the uniform delivery lag.
	DeliveryLagMin float64
	DeliveryLagMax float64
	// ReviewPeriod is the fixed interval between inventory reviews.
	ReviewPeriod float64
	// Horizon is the simulated duration after which a run terminates.
	Horizon float64

	SetupCost       float64 // K, per order placed
	IncrementalCost float64 // i, per unit ordered
	HoldingCost     float64 // h, per unit held per time unit
	ShortageCost    float64 // pi, per unit backordered per time unit
}

// Validate checks the distribution and horizon parameters. Malformed
// distributions are configuration errors surfaced here, before the first
// sample is drawn.
func (p *Parameters) Validate() error {
	if len(p.DemandSizeCDF) == 0 {
		return errors.New("demand size distribution is empty")
	}
	prev := 0.0
	for i, c := range p.DemandSizeCDF {
		if c < prev {
			return fmt.Errorf("demand size distribution decreases at index %d (%v < %v)", i, c, prev)
		}
		prev = c
	}
	if prev != 1.0 {
		return fmt.Errorf("demand size distribution must end at 1, got %v", prev)
	}
	if p.MeanInterdemandTime <= 0 {
		return fmt.Errorf("mean interdemand time must be positive, got %v", p.MeanInterdemandTime)
	}
	if p.DeliveryLagMin < 0 || p.DeliveryLagMax < p.DeliveryLagMin {
		return fmt.Errorf("delivery lag range [%v, %v] is not a valid non-negative interval",
			p.DeliveryLagMin, p.DeliveryLagMax)
	}
	if p.ReviewPeriod <= 0 {
		return fmt.Errorf("review period must be positive, got %v", p.ReviewPeriod)
	}
	if p.Horizon <= 0 {
		return fmt.Errorf("horizon must be positive, got %v", p.Horizon)
	}
	return nil
}
