package sim

// ReviewProcess inspects the stock level once per review period and places a
// reorder when the level has fallen below the policy's reorder point. The
// order size is evaluated against the level observed exactly at the review
// instant. Reviews are scheduled relative to the previous one (fixed
// interval), not against absolute tick times.
type ReviewProcess struct {
	inv    *Inventory
	rng    RandomSource
	params *Parameters
	policy Policy
}

// NewReviewProcess creates the periodic review process for one run.
func NewReviewProcess(inv *Inventory, rng RandomSource, params *Parameters, policy Policy) *ReviewProcess {
	return &ReviewProcess{inv: inv, rng: rng, params: params, policy: policy}
}

// Start suspends until the first review.
func (p *ReviewProcess) Start(sim *Simulator) {
	mustSchedule(sim, p.params.ReviewPeriod, p)
}

// Resume performs one review, then suspends until the next.
func (p *ReviewProcess) Resume(sim *Simulator) {
	if p.inv.Level < p.policy.ReorderPoint {
		p.inv.BeginReorder(p.policy.TargetLevel, sim, p.sampleLag)
	}
	p.Start(sim)
}

// sampleLag draws a delivery lead time from the configured uniform range.
func (p *ReviewProcess) sampleLag() float64 {
	return p.rng.SampleUniform(p.params.DeliveryLagMin, p.params.DeliveryLagMax)
}
