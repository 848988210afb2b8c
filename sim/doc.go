// Package sim provides the discrete-event simulation engine for evaluating
// (s,S) inventory policies.
//
// # Reading Guide
//
// Start with these three files to understand the simulation kernel:
//   - simulator.go: the clock, the pending wake-up queue, and the run loop
//   - process.go: the suspendable Process abstraction the loop resumes
//   - inventory.go: the shared inventory state and its cost integrals
//
// # Architecture
//
// The engine is a single-threaded cooperative scheduler. Two repeating
// processes drive each run: DemandProcess (demand.go) draws demand sizes and
// exponential inter-demand gaps, and ReviewProcess (review.go) compares the
// level against the policy's reorder point once per review period. They
// interact only through the shared Inventory; replenishment is a one-shot
// delivery process spawned by BeginReorder. Wake-ups at the same instant
// resume in scheduling order, so a run is fully determined by its parameters
// and the variate stream.
//
// Variates come from the RandomSource capability (rng.go); the default
// VariateStream implementation feeds gonum distributions from one seeded PCG
// stream. Cost accounting reads time-weighted level integrals maintained by
// Inventory.Accrue, turned into per-policy averages by CostReport
// (report.go). RunPolicy (run.go) wires one run together.
package sim
