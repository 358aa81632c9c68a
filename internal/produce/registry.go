package produce

import (
	"fmt"
	"sort"
)

// Registry maps algorithm ids to producer constructors, mirroring how
// models are looked up by name elsewhere in the CLI.
type Registry struct {
	producers map[string]func() Producer
}

func NewRegistry() *Registry {
	r := &Registry{producers: make(map[string]func() Producer)}

	r.producers["bubble_sort"] = func() Producer { return NewBubbleSort() }
	r.producers["selection_sort"] = func() Producer { return NewSelectionSort() }
	r.producers["insertion_sort"] = func() Producer { return NewInsertionSort() }
	r.producers["merge_sort"] = func() Producer { return NewMergeSort() }
	r.producers["quick_sort"] = func() Producer { return NewQuickSort() }
	r.producers["linear_search"] = func() Producer { return NewLinearSearch() }
	r.producers["binary_search"] = func() Producer { return NewBinarySearch() }
	r.producers["bfs"] = func() Producer { return NewBFS() }
	r.producers["dfs"] = func() Producer { return NewDFS() }
	r.producers["unknown"] = func() Producer { return NewUnknown() }

	return r
}

func (r *Registry) Get(name string) (Producer, error) {
	fn, ok := r.producers[name]
	if !ok {
		return nil, fmt.Errorf("unknown algorithm: %s", name)
	}
	return fn(), nil
}

// List returns registered ids in stable order, the fallback producer last.
func (r *Registry) List() []string {
	names := make([]string, 0, len(r.producers))
	for name := range r.producers {
		if name == "unknown" {
			continue
		}
		names = append(names, name)
	}
	sort.Strings(names)
	return append(names, "unknown")
}
