// Package raster rasterizes a straight line between two integer cells into
// the ordered list of every cell the line passes through, including
// corner-touch cells a plain Bresenham walk would skip. This "supercover"
// property is what makes the line-of-sight oracle in package losight sound
// on a blocked-cell grid: no diagonal move is allowed to slip between two
// blocked corner cells.
//
// Complexity: O(max(|dx|, |dy|)) time and cells emitted.
package raster
