package sim

// DemandProcess generates customer demand. Each cycle draws the demand size
// and the inter-demand gap together, up front, then suspends for the gap and
// applies the demand on resumption. Drawing both variates before suspending
// fixes the stream consumption order, which keeps runs reproducible for a
// given seed.
type DemandProcess struct {
	inv    *Inventory
	rng    RandomSource
	params *Parameters

	// size drawn at the start of the in-flight cycle, applied on resume
	pending int
}

// NewDemandProcess creates the demand process for one run.
func NewDemandProcess(inv *Inventory, rng RandomSource, params *Parameters) *DemandProcess {
	return &DemandProcess{inv: inv, rng: rng, params: params}
}

// Start draws the first demand and suspends until it arrives.
func (p *DemandProcess) Start(sim *Simulator) {
	p.pending = p.sampleSize()
	gap := p.rng.SampleExponential(p.params.MeanInterdemandTime)
	mustSchedule(sim, gap, p)
}

// Resume applies the demand drawn in the previous cycle, then begins the
// next one. The process repeats until the run loop stops resuming it.
func (p *DemandProcess) Resume(sim *Simulator) {
	p.inv.Get(p.pending, sim.Clock)
	p.Start(sim)
}

// sampleSize draws a demand size from the categorical distribution over
// sizes 1..N given by the configured cumulative breakpoints.
func (p *DemandProcess) sampleSize() int {
	sizes := make([]int, len(p.params.DemandSizeCDF))
	for i := range sizes {
		sizes[i] = i + 1
	}
	return p.rng.SampleCategorical(sizes, p.params.DemandSizeCDF)
}
