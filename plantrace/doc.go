// Package plantrace provides lightweight run telemetry for a single
// planner+follower invocation: a run identifier, a child structured logger
// tagged with that identifier, and a summary of what happened.
//
// This is basic run observability, not a profiling or benchmarking harness;
// it is carried as an ambient concern regardless of any non-goal excluding
// the latter.
package plantrace
