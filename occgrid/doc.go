// Package occgrid defines a read-only, rectangular occupancy grid: a
// W x H map from integer cell to free/blocked. Out-of-bounds cells are
// always treated as blocked, so bounds queries are total functions — no
// package in this module ever needs to branch on an out-of-bounds error
// for a grid lookup.
//
// Two Grid implementations are provided: Dense, a plain [][]bool backing
// store, and Packed, a one-uint64-per-column bitset trading a row-count cap
// for O(1) column-word blocked checks. Both satisfy the same Grid
// interface, so callers (losight, thetastar) never need to know which one
// they were handed.
package occgrid
