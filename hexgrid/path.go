// Package hexgrid: shortest-path search over the induced adjacency graph.
//
// Obstacles carry no flag here: a blocked cell is simply absent from the
// grid, so both searches honor holes and irregular borders for free.
package hexgrid

import (
	"container/heap"
	"fmt"

	"github.com/katalvlaran/hexlath/hexcoord"
)

// queueItem pairs a coordinate with its BFS parent.
type queueItem struct {
	coord  hexcoord.Cube
	parent hexcoord.Cube
	isRoot bool
}

// bfsWalker encapsulates mutable breadth-first search state.
type bfsWalker[T any] struct {
	grid    *Grid[T]
	queue   []queueItem
	visited map[hexcoord.Cube]bool
	prev    map[hexcoord.Cube]hexcoord.Cube
}

// Path returns a shortest route from a to b over the grid's adjacency
// edges, endpoints included, using breadth-first search on the unweighted
// graph. Neighbor expansion follows the canonical NE-first clockwise order,
// so ties always resolve the same way.
//
// Returns ErrCoordNotFound when either endpoint is absent from the grid and
// ErrNoPath when the endpoints lie in different connected components.
// Path(a, a) yields the zero-length path [a].
// Complexity: O(V+E) time, O(V) memory.
func (g *Grid[T]) Path(a, b hexcoord.Cube) ([]hexcoord.Cube, error) {
	if !g.Contains(a) {
		return nil, fmt.Errorf("%w: %v", ErrCoordNotFound, a)
	}
	if !g.Contains(b) {
		return nil, fmt.Errorf("%w: %v", ErrCoordNotFound, b)
	}
	if a == b {
		return []hexcoord.Cube{a}, nil
	}

	w := &bfsWalker[T]{
		grid:    g,
		queue:   make([]queueItem, 0, g.Len()),
		visited: make(map[hexcoord.Cube]bool, g.Len()),
		prev:    make(map[hexcoord.Cube]hexcoord.Cube, g.Len()),
	}
	w.enqueue(queueItem{coord: a, isRoot: true})

	for len(w.queue) > 0 {
		item := w.dequeue()
		if item.coord == b {
			return w.reconstruct(a, b), nil
		}
		w.enqueueNeighbors(item)
	}

	return nil, fmt.Errorf("%w: %v → %v", ErrNoPath, a, b)
}

// enqueue marks the coordinate visited, records its parent link, and
// appends it to the queue.
func (w *bfsWalker[T]) enqueue(item queueItem) {
	w.visited[item.coord] = true
	if !item.isRoot {
		w.prev[item.coord] = item.parent
	}
	w.queue = append(w.queue, item)
}

// dequeue pops the front of the queue.
func (w *bfsWalker[T]) dequeue() queueItem {
	item := w.queue[0]
	w.queue = w.queue[1:]

	return item
}

// enqueueNeighbors expands the frontier with every unseen present neighbor.
func (w *bfsWalker[T]) enqueueNeighbors(item queueItem) {
	for _, nb := range w.grid.Neighbors(item.coord) {
		if w.visited[nb] {
			continue
		}
		w.enqueue(queueItem{coord: nb, parent: item.coord})
	}
}

// reconstruct walks the parent links back from b to a and reverses.
func (w *bfsWalker[T]) reconstruct(a, b hexcoord.Cube) []hexcoord.Cube {
	path := []hexcoord.Cube{b}
	for cur := b; cur != a; {
		cur = w.prev[cur]
		path = append(path, cur)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}

// costItem is a priority-queue entry for weighted search.
type costItem struct {
	coord hexcoord.Cube
	dist  int64
}

// costPQ is a min-heap of costItem by accumulated distance, using the lazy
// decrease-key strategy: duplicates are pushed and stale entries skipped.
type costPQ []costItem

func (p costPQ) Len() int            { return len(p) }
func (p costPQ) Less(i, j int) bool  { return p[i].dist < p[j].dist }
func (p costPQ) Swap(i, j int)       { p[i], p[j] = p[j], p[i] }
func (p *costPQ) Push(x interface{}) { *p = append(*p, x.(costItem)) }
func (p *costPQ) Pop() interface{} {
	old := *p
	n := len(old)
	item := old[n-1]
	*p = old[:n-1]

	return item
}

// PathWithCost returns a minimum-cost route from a to b, where cost reports
// the non-negative price of stepping into each cell (the start cell is
// free). The second result is the total cost of the returned route.
//
// The search is Dijkstra over the adjacency graph with a lazy-decrease-key
// min-heap. A negative value from cost fails fast with ErrNegativeCost —
// negative costs would silently break the shortest-path guarantee.
// Returns ErrCoordNotFound and ErrNoPath as Path does.
// Complexity: O((V+E) log V) time, O(V+E) memory.
func (g *Grid[T]) PathWithCost(a, b hexcoord.Cube, cost CostFunc[T]) ([]hexcoord.Cube, int64, error) {
	if !g.Contains(a) {
		return nil, 0, fmt.Errorf("%w: %v", ErrCoordNotFound, a)
	}
	if !g.Contains(b) {
		return nil, 0, fmt.Errorf("%w: %v", ErrCoordNotFound, b)
	}
	if a == b {
		return []hexcoord.Cube{a}, 0, nil
	}

	dist := make(map[hexcoord.Cube]int64, g.Len())
	prev := make(map[hexcoord.Cube]hexcoord.Cube, g.Len())
	done := make(map[hexcoord.Cube]bool, g.Len())

	pq := make(costPQ, 0, g.Len())
	heap.Init(&pq)
	heap.Push(&pq, costItem{coord: a, dist: 0})
	dist[a] = 0

	for pq.Len() > 0 {
		item := heap.Pop(&pq).(costItem)
		if done[item.coord] {
			continue // stale duplicate from lazy decrease-key
		}
		done[item.coord] = true
		if item.coord == b {
			break
		}

		for _, nb := range g.Neighbors(item.coord) {
			if done[nb] {
				continue
			}
			payload, _ := g.Get(nb)
			step := cost(nb, payload)
			if step < 0 {
				return nil, 0, fmt.Errorf("%w: %d at %v", ErrNegativeCost, step, nb)
			}
			next := item.dist + step
			if best, seen := dist[nb]; !seen || next < best {
				dist[nb] = next
				prev[nb] = item.coord
				heap.Push(&pq, costItem{coord: nb, dist: next})
			}
		}
	}

	if !done[b] {
		return nil, 0, fmt.Errorf("%w: %v → %v", ErrNoPath, a, b)
	}

	path := []hexcoord.Cube{b}
	for cur := b; cur != a; {
		cur = prev[cur]
		path = append(path, cur)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, dist[b], nil
}
