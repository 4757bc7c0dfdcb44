// Package hillclimb maximizes a one-dimensional objective by greedy local
// search.
//
// Each iteration evaluates the two neighbors x+step and x−step and moves to
// the better one if it strictly improves on the current value. Ties between
// the neighbors favor x+step. The climb stops when neither neighbor
// improves (Converged) or after MaxIterations moves.
//
// The result is a local maximum at step-size resolution; nothing guarantees
// a global one. Minimize f by climbing −f.
package hillclimb
