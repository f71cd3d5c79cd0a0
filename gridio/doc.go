// Package gridio loads occgrid.Grid values from CSV, the "grid source"
// collaborator the core planner packages never depend on directly.
//
// Two formats are supported: a dense form (one CSV row per grid row, each
// cell a 0/1 value packed into a single quoted column) and a packed form
// mirroring occgrid.Packed's bit-per-row column encoding.
package gridio
