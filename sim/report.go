// Translates the accumulators of a finished run into per-policy average
// costs for final reporting.

package sim

import "fmt"

// reportRowFormat lays out the policy column and the four cost columns.
const reportRowFormat = "%10s%25s%25s%25s%25s\n"

// CostReport holds the average costs of one policy over one run's horizon.
// It is a pure read of the run's accumulators; nothing here feeds back into
// the simulation.
type CostReport struct {
	Policy          Policy
	AvgOrderingCost float64
	AvgHoldingCost  float64
	AvgShortageCost float64
}

// NewCostReport derives average costs from a finished run's inventory
// accumulators and the run parameters.
func NewCostReport(policy Policy, inv *Inventory, params *Parameters) CostReport {
	horizon := params.Horizon
	return CostReport{
		Policy:          policy,
		AvgOrderingCost: inv.OrderingCost / horizon,
		AvgHoldingCost:  inv.AreaHolding * params.HoldingCost / horizon,
		AvgShortageCost: inv.AreaShortage * params.ShortageCost / horizon,
	}
}

// AvgTotalCost is the sum of the three average cost components.
func (r CostReport) AvgTotalCost() float64 {
	return r.AvgOrderingCost + r.AvgHoldingCost + r.AvgShortageCost
}

// PrintHeader writes the report's column headers.
func PrintHeader() {
	fmt.Printf(reportRowFormat,
		"Policy",
		"Average total cost",
		"Average ordering cost",
		"Average holding cost",
		"Average shortage cost")
}

// Print writes one report row for this policy.
func (r CostReport) Print() {
	fmt.Printf(reportRowFormat,
		r.Policy.String(),
		fmt.Sprintf("%.2f", r.AvgTotalCost()),
		fmt.Sprintf("%.2f", r.AvgOrderingCost),
		fmt.Sprintf("%.2f", r.AvgHoldingCost),
		fmt.Sprintf("%.2f", r.AvgShortageCost))
}
