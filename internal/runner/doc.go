// Package runner executes registered day solutions and collects results.
//
// Days are independent (no inter-day dependencies), so the execution
// model is a flat set of units with a small validated state machine per
// day: PENDING -> RUNNING -> {COMPLETED, FAILED}. Serial and bounded
// parallel modes produce identical result listings: results are always
// rendered in ascending day order, never completion order.
package runner
