// Package scheduler allocates daily work units among competing projects
// over a weekly planning horizon. Two strategies are provided: "paced"
// interleaves projects at a rate that exhausts each budget by its
// deadline, and "frontload" concentrates each budget into a contiguous
// run ordered by priority and deadline. Weekends never receive work.
// Every run is deterministic for identical inputs.
package scheduler
