package sim

import "github.com/sirupsen/logrus"

// RunPolicy executes one complete simulation of params under policy and
// returns the run's cost report. Each run gets a fresh simulator and
// inventory; only the variate stream carries over between runs, so
// successive policies are evaluated against a continuing draw sequence.
func RunPolicy(params *Parameters, policy Policy, rng RandomSource) CostReport {
	sim := NewSimulator()
	inv := NewInventory(params.InitialInventoryLevel, params.SetupCost, params.IncrementalCost)

	NewDemandProcess(inv, rng, params).Start(sim)
	NewReviewProcess(inv, rng, params, policy).Start(sim)

	sim.Run(params.Horizon)
	// close out the exposure of the final segment up to the horizon
	inv.Accrue(params.Horizon)

	logrus.Infof("policy %s done: level=%d ordering=%.2f holding-area=%.2f shortage-area=%.2f",
		policy, inv.Level, inv.OrderingCost, inv.AreaHolding, inv.AreaShortage)

	return NewCostReport(policy, inv, params)
}
