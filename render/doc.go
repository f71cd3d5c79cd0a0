// Package render defines Sink, the terminal-rendering collaborator: core
// planning and following packages never depend on a display technology,
// only cmd/quailviz implements Sink against tcell.
package render
