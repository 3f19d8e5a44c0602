// Package insights derives completion streaks, recent completion counts and
// mood trend series from a snapshot of daily journal records.
//
// Every function is pure: callers pass the records and the reference date,
// nothing is read from storage or the wall clock, and nothing is mutated.
// Records whose entry date does not parse are skipped rather than failing
// the whole computation.
package insights
