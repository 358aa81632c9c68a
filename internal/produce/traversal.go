package produce

import (
	"fmt"

	"github.com/san-kum/algoviz/internal/frame"
)

type BFS struct{}

func NewBFS() *BFS { return &BFS{} }

func (b *BFS) Name() string   { return "bfs" }
func (b *BFS) Family() Family { return FamilyGraph }

func (b *BFS) Produce(in Input, ann Annotations) frame.Sequence {
	adj := cloneGraph(in.Graph)
	r := newRecorder(b.Name(), ann)

	visited := frame.NewIndexSet()
	discovered := frame.NewIndexSet(in.Start)
	queue := []int{in.Start}
	order := make([]int, 0, len(adj))

	r.emit("init", frame.Frame{
		Kind:        frame.KindGraph,
		Description: fmt.Sprintf("start traversal at vertex %d", in.Start),
		Adjacency:   adj,
		Visited:     visited,
		Frontier:    queue,
		Current:     frame.None,
		VisitOrder:  order,
	})

	for len(queue) > 0 {
		v := queue[0]
		queue = queue[1:]
		visited[v] = true
		order = append(order, v)

		r.emit("visit", frame.Frame{
			Kind:        frame.KindGraph,
			Description: fmt.Sprintf("visiting vertex %d", v),
			Adjacency:   adj,
			Visited:     visited,
			Frontier:    queue,
			Current:     v,
			VisitOrder:  order,
		})

		for _, w := range adj[v] {
			if discovered.Has(w) {
				continue
			}
			discovered[w] = true
			queue = append(queue, w)
			r.emit("enqueue", frame.Frame{
				Kind:        frame.KindGraph,
				Description: fmt.Sprintf("discovered vertex %d, enqueued", w),
				Adjacency:   adj,
				Visited:     visited,
				Frontier:    queue,
				Current:     v,
				VisitOrder:  order,
			})
		}
	}

	r.emit("done", frame.Frame{
		Kind:        frame.KindGraph,
		Description: fmt.Sprintf("traversal complete, visit order %v", order),
		Adjacency:   adj,
		Visited:     visited,
		Frontier:    nil,
		Current:     frame.None,
		VisitOrder:  order,
	})

	return r.sequence()
}

// DFS visits neighbors recursively in listed order. The frame accumulator
// and the visit bookkeeping travel through the recursion explicitly.
type DFS struct{}

func NewDFS() *DFS { return &DFS{} }

func (d *DFS) Name() string   { return "dfs" }
func (d *DFS) Family() Family { return FamilyGraph }

type dfsWalk struct {
	adj     [][]int
	visited frame.IndexSet
	stack   []int
	order   []int
}

func (d *DFS) Produce(in Input, ann Annotations) frame.Sequence {
	r := newRecorder(d.Name(), ann)
	w := &dfsWalk{
		adj:     cloneGraph(in.Graph),
		visited: frame.NewIndexSet(),
		order:   make([]int, 0, len(in.Graph)),
	}

	r.emit("init", frame.Frame{
		Kind:        frame.KindGraph,
		Description: fmt.Sprintf("start traversal at vertex %d", in.Start),
		Adjacency:   w.adj,
		Visited:     w.visited,
		Frontier:    nil,
		Current:     frame.None,
		VisitOrder:  w.order,
	})

	d.visit(r, w, in.Start)

	r.emit("done", frame.Frame{
		Kind:        frame.KindGraph,
		Description: fmt.Sprintf("traversal complete, visit order %v", w.order),
		Adjacency:   w.adj,
		Visited:     w.visited,
		Frontier:    nil,
		Current:     frame.None,
		VisitOrder:  w.order,
	})

	return r.sequence()
}

func (d *DFS) visit(r *recorder, w *dfsWalk, v int) {
	w.visited[v] = true
	w.order = append(w.order, v)
	w.stack = append(w.stack, v)

	r.emit("visit", frame.Frame{
		Kind:        frame.KindGraph,
		Description: fmt.Sprintf("visiting vertex %d", v),
		Adjacency:   w.adj,
		Visited:     w.visited,
		Frontier:    w.stack,
		Current:     v,
		VisitOrder:  w.order,
	})

	for _, next := range w.adj[v] {
		if !w.visited.Has(next) {
			d.visit(r, w, next)
		}
	}

	w.stack = w.stack[:len(w.stack)-1]
}

func cloneGraph(adj [][]int) [][]int {
	c := make([][]int, len(adj))
	for i, row := range adj {
		c[i] = append([]int(nil), row...)
	}
	return c
}
