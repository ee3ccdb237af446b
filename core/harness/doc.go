// Package harness runs randomized trials that compare a reference solver
// against a candidate solver.
//
// Each trial draws an instance, solves it with both solvers on independent
// copies and checks that the results agree. Agreement is reported with the
// timing of both solvers; the first disagreement is reported with the full
// instance and stops the run, since it falsifies the candidate.
package harness
