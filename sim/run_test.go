package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// scriptedSource replays fixed variate sequences, repeating the last entry
// of a sequence once it is exhausted. Lag draws are strict: drawing more
// delivery lags than scripted is a test failure.
type scriptedSource struct {
	t     *testing.T
	sizes []int
	gaps  []float64
	lags  []float64

	sizeIdx, gapIdx, lagIdx int
}

func (s *scriptedSource) SampleCategorical(outcomes []int, cumulative []float64) int {
	v := s.sizes[min(s.sizeIdx, len(s.sizes)-1)]
	s.sizeIdx++
	return v
}

func (s *scriptedSource) SampleExponential(mean float64) float64 {
	v := s.gaps[min(s.gapIdx, len(s.gaps)-1)]
	s.gapIdx++
	return v
}

func (s *scriptedSource) SampleUniform(low, high float64) float64 {
	if s.lagIdx >= len(s.lags) {
		s.t.Fatalf("unexpected delivery lag draw %d (only %d scripted)", s.lagIdx+1, len(s.lags))
	}
	v := s.lags[s.lagIdx]
	s.lagIdx++
	return v
}

func lawKeltonParams() *Parameters {
	return &Parameters{
		InitialInventoryLevel: 60,
		DemandSizeCDF:         []float64{0.167, 0.500, 0.833, 1.000},
		MeanInterdemandTime:   0.10,
		DeliveryLagMin:        0.50,
		DeliveryLagMax:        1.00,
		ReviewPeriod:          1,
		Horizon:               120,
		SetupCost:             32.0,
		IncrementalCost:       3.0,
		HoldingCost:           1.0,
		ShortageCost:          5.0,
	}
}

func TestRunPolicy_NoDemandEver_HoldsInitialLevelAcrossHorizon(t *testing.T) {
	// GIVEN a demand gap past the horizon, so no demand ever lands
	params := lawKeltonParams()
	require.NoError(t, params.Validate())
	policy, err := NewPolicy(20, 40)
	require.NoError(t, err)
	src := &scriptedSource{t: t, sizes: []int{1}, gaps: []float64{params.Horizon + 1}}

	// WHEN the run completes
	report := RunPolicy(params, policy, src)

	// THEN the initial level was held for the whole horizon, with no
	// shortage and no order ever placed
	assert.InDelta(t, 60*120.0, report.AvgHoldingCost*params.Horizon, 1e-9)
	assert.Zero(t, report.AvgShortageCost)
	assert.Zero(t, report.AvgOrderingCost)
}

func TestRunPolicy_SingleDemandTriggersOneReorder(t *testing.T) {
	// GIVEN one demand of 50 at t=10.5 against (s=20, S=60), a delivery lag
	// of 1.5, and a horizon of 15
	params := lawKeltonParams()
	params.Horizon = 15
	policy, err := NewPolicy(20, 60)
	require.NoError(t, err)
	src := &scriptedSource{
		t:     t,
		sizes: []int{50},
		gaps:  []float64{10.5, 1000},
		lags:  []float64{1.5},
	}

	sim := NewSimulator()
	inv := NewInventory(params.InitialInventoryLevel, params.SetupCost, params.IncrementalCost)
	NewDemandProcess(inv, src, params).Start(sim)
	NewReviewProcess(inv, src, params, policy).Start(sim)

	// WHEN the run completes
	sim.Run(params.Horizon)
	inv.Accrue(params.Horizon)

	// THEN the review at t=11 saw level 10 < 20 and placed exactly one
	// order of 60-10=50, costing K + i*50 at placement
	assert.InDelta(t, 32+3*50.0, inv.OrderingCost, 1e-9)
	assert.Equal(t, 1, src.lagIdx, "exactly one delivery lag drawn")

	// AND the delivery at t=12.5 restored the level to the target
	assert.Equal(t, 60, inv.Level)
	assert.False(t, inv.OrderInFlight())

	// AND the holding area tracks the piecewise-constant level path:
	// 60 over [0,10.5], 10 over [10.5,12.5], 60 over [12.5,15]
	assert.InDelta(t, 60*10.5+10*2.0+60*2.5, inv.AreaHolding, 1e-9)
	assert.Zero(t, inv.AreaShortage)
}

func TestRunPolicy_ReviewsWhileOrderInFlightPlaceNoSecondOrder(t *testing.T) {
	// GIVEN a demand big enough to stay below s across several reviews and
	// a long delivery lag spanning them
	params := lawKeltonParams()
	params.Horizon = 10
	policy, err := NewPolicy(20, 60)
	require.NoError(t, err)
	src := &scriptedSource{
		t:     t,
		sizes: []int{55},
		gaps:  []float64{0.5, 1000},
		lags:  []float64{4.25},
	}

	// WHEN reviews at t=1..5 all see level 5 < 20
	report := RunPolicy(params, policy, src)

	// THEN only the first placed an order; the rest hit the in-flight gate
	assert.InDelta(t, (32+3*55.0)/params.Horizon, report.AvgOrderingCost, 1e-9)
	assert.Equal(t, 1, src.lagIdx, "exactly one delivery lag drawn")
}

func TestRunPolicy_FreshStateFreshStream_IsDeterministic(t *testing.T) {
	// GIVEN two identical sweeps over two policies from the same seed
	run := func() []CostReport {
		params := lawKeltonParams()
		stream := NewVariateStream(1234)
		var reports []CostReport
		for _, pair := range [][2]int{{20, 40}, {40, 100}} {
			policy, err := NewPolicy(pair[0], pair[1])
			require.NoError(t, err)
			reports = append(reports, RunPolicy(params, policy, stream))
		}
		return reports
	}

	// THEN both sweeps report identical costs for every policy
	assert.Equal(t, run(), run())
}

func TestRunPolicy_BackordersAccrueShortage(t *testing.T) {
	// GIVEN a demand of 80 against an initial level of 60 at t=2, with the
	// reorder point low enough that no order is ever placed
	params := lawKeltonParams()
	params.InitialInventoryLevel = 60
	params.Horizon = 5
	policy, err := NewPolicy(-100, -50)
	require.NoError(t, err)
	src := &scriptedSource{t: t, sizes: []int{80}, gaps: []float64{2, 1000}}

	report := RunPolicy(params, policy, src)

	// THEN the level sat at -20 over [2,5]: shortage area 60, holding 120
	assert.InDelta(t, 60*2.0*params.HoldingCost/params.Horizon, report.AvgHoldingCost, 1e-9)
	assert.InDelta(t, 20*3.0*params.ShortageCost/params.Horizon, report.AvgShortageCost, 1e-9)
	assert.Zero(t, report.AvgOrderingCost)
}
