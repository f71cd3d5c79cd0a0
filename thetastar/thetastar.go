package thetastar

import (
	"container/heap"
	"math"

	"github.com/theta-robotics/quailpath/geom"
	"github.com/theta-robotics/quailpath/losight"
	"github.com/theta-robotics/quailpath/occgrid"
)

var eightOffsets = [8][2]int{
	{-1, -1}, {0, -1}, {1, -1},
	{-1, 0} /*       */, {1, 0},
	{-1, 1}, {0, 1}, {1, 1},
}

var manhattanOffsets = [4][2]int{
	{0, -1}, {-1, 0}, {1, 0}, {0, 1},
}

// Search runs Theta* from start to goal over g, returning the any-angle
// polyline of cells from start to goal inclusive. If the goal is
// unreachable, it returns (nil, false, nil) — "no path" is not an error.
// Invalid arguments (a blocked endpoint without WithForceFreeEndpoints) are
// surfaced as an error.
func Search(g occgrid.Grid, start, goal geom.Cell, opts ...Option) ([]geom.Cell, bool, error) {
	cfg := defaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	grid := g
	if cfg.ForceFreeEndpoints {
		grid = forceFree{Grid: g, a: start, b: goal}
	} else if grid.Blocked(start.X, start.Y) || grid.Blocked(goal.X, goal.Y) {
		return nil, false, ErrBlockedEndpoint
	}

	s := newSearcher(grid, goal, cfg)
	return s.run(start, goal)
}

type searcher struct {
	grid    occgrid.Grid
	goal    geom.Cell
	cfg     Options
	nodes   map[geom.Cell]*searchNode
	open    openHeap
	nextSeq int
}

func newSearcher(grid occgrid.Grid, goal geom.Cell, cfg Options) *searcher {
	return &searcher{
		grid:  grid,
		goal:  goal,
		cfg:   cfg,
		nodes: make(map[geom.Cell]*searchNode),
	}
}

// nodeFor returns the existing searchNode for c, creating it in the
// UNVISITED state (g = +Inf, h computed once) if this is its first mention.
func (s *searcher) nodeFor(c geom.Cell) *searchNode {
	if n, ok := s.nodes[c]; ok {
		return n
	}
	n := &searchNode{
		cell: c,
		g:    math.Inf(1),
		h:    c.ToPoint().Distance(s.goal.ToPoint()),
	}
	s.nodes[c] = n
	return n
}

func (s *searcher) push(n *searchNode) {
	entry := &heapEntry{
		node: n,
		g:    n.g,
		f:    n.g + s.cfg.HeuristicWeight*n.h,
		seq:  s.nextSeq,
	}
	s.nextSeq++
	heap.Push(&s.open, entry)
}

func (s *searcher) run(start, goal geom.Cell) ([]geom.Cell, bool, error) {
	startNode := s.nodeFor(start)
	startNode.g = 0
	startNode.parent = startNode
	s.push(startNode)

	for s.open.Len() > 0 {
		entry := heap.Pop(&s.open).(*heapEntry)
		if entry.stale() {
			continue
		}
		current := entry.node

		if current.cell == goal {
			return reconstruct(current), true, nil
		}
		current.closed = true

		for _, neighbor := range s.neighbors(current) {
			if neighbor.closed {
				continue
			}
			s.updateVertex(current, neighbor)
		}
	}

	return nil, false, nil
}

// neighbors returns the searchNodes for every in-bounds, free neighbor of n
// under the configured connectivity, optionally extended with jump-point
// targets.
func (s *searcher) neighbors(n *searchNode) []*searchNode {
	var offsets [][2]int
	if s.cfg.Neighbors == Manhattan {
		offsets = manhattanOffsets[:]
	} else {
		offsets = eightOffsets[:]
	}

	result := make([]*searchNode, 0, len(offsets))
	for _, off := range offsets {
		c := geom.Cell{X: n.cell.X + off[0], Y: n.cell.Y + off[1]}
		if !s.grid.InBounds(c.X, c.Y) || s.grid.Blocked(c.X, c.Y) {
			continue
		}
		result = append(result, s.nodeFor(c))

		if s.cfg.JumpAcceleration {
			jc := Jump(s.grid, c, off[0], off[1])
			if jc != c {
				result = append(result, s.nodeFor(jc))
			}
		}
	}

	return result
}

// updateVertex implements Theta*'s vertex relaxation: prefer a direct
// line-of-sight shortcut from the expanding node's parent, falling back to
// an ordinary grid edge from the expanding node itself.
func (s *searcher) updateVertex(current, neighbor *searchNode) {
	if losight.Visible(s.grid, current.parent.cell, neighbor.cell) {
		candidate := current.parent.g + current.parent.cell.ToPoint().Distance(neighbor.cell.ToPoint())
		if candidate < neighbor.g {
			neighbor.parent = current.parent
			neighbor.g = candidate
			s.push(neighbor)
		}
		return
	}

	if losight.Visible(s.grid, current.cell, neighbor.cell) {
		candidate := current.g + current.cell.ToPoint().Distance(neighbor.cell.ToPoint())
		if candidate < neighbor.g {
			neighbor.parent = current
			neighbor.g = candidate
			s.push(neighbor)
		}
	}
}

// reconstruct walks parent pointers from goal until the self-parented start
// sentinel, then reverses the walk into a start->goal polyline.
func reconstruct(goalNode *searchNode) []geom.Cell {
	var path []geom.Cell
	for current := goalNode; ; current = current.parent {
		path = append(path, current.cell)
		if current.isStart() {
			break
		}
	}

	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}

// forceFree wraps a Grid so that the two named cells always report free,
// regardless of the underlying grid's occupancy.
type forceFree struct {
	occgrid.Grid
	a, b geom.Cell
}

func (f forceFree) Blocked(x, y int) bool {
	c := geom.Cell{X: x, Y: y}
	if c == f.a || c == f.b {
		return false
	}
	return f.Grid.Blocked(x, y)
}
