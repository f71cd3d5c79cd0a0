// Package losight implements the line-of-sight oracle Theta* relies on:
// two cells are in line of sight iff the straight segment between them,
// rasterized by package raster's supercover rule, crosses only free,
// in-bounds cells. The oracle is symmetric and reflexive, an invariant
// package thetastar depends on when shortcutting through a node's parent.
package losight
