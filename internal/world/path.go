package world

import (
	"github.com/zyedidia/generic/heap"
	"github.com/zyedidia/generic/mapset"
)

// neighborOffsets is the fixed neighbor visiting order. Flood fill
// results are in insertion order, so this order is observable.
var neighborOffsets = [8]Pos{
	{1, 0}, {1, 1}, {0, 1},
	{-1, 1}, {-1, 0}, {-1, -1},
	{0, -1}, {1, -1},
}

// CostFn scores a search node for AstarPath. It receives the search
// start (not the goal) alongside the node, so callers can price cells by
// how far the actor has come as well as by where the cell is.
type CostFn func(start, pos Pos, m *Map) int

// ReachableNeighbors returns the up-to-8 cells reachable from pos by a
// single unobstructed step.
func (m *Map) ReachableNeighbors(pos Pos) []Pos {
	result := make([]Pos, 0, 8)
	for _, delta := range neighborOffsets {
		if m.BlockedAlong(pos, delta.X, delta.Y) == nil {
			result = append(result, pos.Add(delta))
		}
	}
	return result
}

// searchNeighbors is the edge oracle shared by AstarPath and FloodFill:
// reachable neighbors, pruned to nothing once a node strays more than
// maxDist from the search start. A negative maxDist means unbounded.
func (m *Map) searchNeighbors(start, pos Pos, maxDist int) []Pos {
	if maxDist >= 0 && Distance(start, pos) > maxDist {
		return nil
	}
	return m.ReachableNeighbors(pos)
}

type searchNode struct {
	pos   Pos
	score int
}

// AstarPath returns a shortest path from start to end over the movement
// blocking graph, including both endpoints, with uniform step cost 1.
// The heuristic is the rasterized-line distance to end unless costFn is
// supplied. Nodes farther than maxDist from start are pruned; pass a
// negative maxDist for an unbounded search. An unreachable end yields an
// empty path, never an error.
func (m *Map) AstarPath(start, end Pos, maxDist int, costFn CostFn) []Pos {
	heuristic := func(pos Pos) int {
		if costFn != nil {
			return costFn(start, pos, m)
		}
		return Distance(pos, end)
	}

	open := heap.New(func(a, b searchNode) bool {
		return a.score < b.score
	})
	closed := mapset.New[Pos]()
	gScore := map[Pos]int{start: 0}
	cameFrom := make(map[Pos]Pos)

	open.Push(searchNode{pos: start, score: heuristic(start)})

	for open.Size() > 0 {
		node, _ := open.Pop()
		if node.pos == end {
			return reconstructPath(cameFrom, start, end)
		}
		if closed.Has(node.pos) {
			continue
		}
		closed.Put(node.pos)

		for _, next := range m.searchNeighbors(start, node.pos, maxDist) {
			tentative := gScore[node.pos] + 1
			if g, ok := gScore[next]; !ok || tentative < g {
				gScore[next] = tentative
				cameFrom[next] = node.pos
				open.Push(searchNode{pos: next, score: tentative + heuristic(next)})
			}
		}
	}

	return nil
}

func reconstructPath(cameFrom map[Pos]Pos, start, end Pos) []Pos {
	path := []Pos{end}
	for pos := end; pos != start; {
		pos = cameFrom[pos]
		path = append(path, pos)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}

// FloodFill expands frontier by frontier from start through the movement
// blocking graph for up to radius hops (graph hops, not straight-line
// distance). The result contains each reached cell exactly once, start
// first, in insertion order.
func (m *Map) FloodFill(start Pos, radius int) []Pos {
	flood := []Pos{start}
	seen := mapset.New[Pos]()
	seen.Put(start)

	current := []Pos{start}
	for hop := 0; hop < radius; hop++ {
		last := current
		current = nil
		for _, pos := range last {
			for _, next := range m.searchNeighbors(start, pos, radius) {
				if !seen.Has(next) {
					seen.Put(next)
					current = append(current, next)
					flood = append(flood, next)
				}
			}
		}
	}

	return flood
}
