package classify

import (
	"reflect"
	"strings"
	"testing"
)

const bubbleSource = `
function bubbleSort(arr) {
  for (let i = 0; i < arr.length - 1; i++) {
    for (let j = 0; j < arr.length - i - 1; j++) {
      if (arr[j] > arr[j + 1]) {
        [arr[j], arr[j + 1]] = [arr[j + 1], arr[j]];
      }
    }
  }
  return arr;
}
let numbers = [64, 34, 25, 12, 22, 11, 90];
`

const binarySource = `
function binarySearch(arr, target) {
  let low = 0, high = arr.length - 1;
  while (low <= high) {
    const mid = Math.floor((low + high) / 2);
    if (arr[mid] === target) return mid;
    if (arr[mid] < target) low = mid + 1; else high = mid - 1;
  }
  return -1;
}
const sorted = [11, 12, 22, 25, 34, 64, 90];
const target = 22;
`

func TestClassifyAlgorithms(t *testing.T) {
	tests := []struct {
		name   string
		source string
		want   string
	}{
		{"bubble by name", bubbleSource, "bubble_sort"},
		{"binary by name", binarySource, "binary_search"},
		{"selection", "def selection_sort(a): pass", "selection_sort"},
		{"insertion", "void insertionSort(int a[])", "insertion_sort"},
		{"merge", "func mergeSort(a []int)", "merge_sort"},
		{"quick by pivot", "function qs(a) { const pivot = a[a.length-1]; }", "quick_sort"},
		{"bfs", "def breadth_first(g, s): queue = [s]; visited = set()", "bfs"},
		{"dfs", "void dfs(int v)", "dfs"},
		{"adjacent swap fallback", "function f(a){for(;;){for(;;){if(a[j]>a[j+1]) swap(a,j,j+1)}}}", "bubble_sort"},
		{"nothing", "int add(int a, int b) { return a + b; }", "unknown"},
		{"empty", "", "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Classify(tt.source)
			if got.Algorithm != tt.want {
				t.Errorf("algorithm = %s, want %s", got.Algorithm, tt.want)
			}
		})
	}
}

func TestClassifyExtractsData(t *testing.T) {
	res := Classify(bubbleSource)
	if !reflect.DeepEqual(res.Values, []int{64, 34, 25, 12, 22, 11, 90}) {
		t.Errorf("values = %v", res.Values)
	}

	res = Classify(binarySource)
	if !res.HasTarget || res.Target != 22 {
		t.Errorf("target = %d (has %v), want 22", res.Target, res.HasTarget)
	}
	if !reflect.DeepEqual(res.Values, []int{11, 12, 22, 25, 34, 64, 90}) {
		t.Errorf("values = %v", res.Values)
	}

	res = Classify("plain text with no literals, for real")
	if res.Values != nil {
		t.Errorf("expected no values, got %v", res.Values)
	}
}

func TestClassifyExtractsGraph(t *testing.T) {
	source := `
def bfs(graph, start=0):
    visited, queue = set(), [start]

adjacency = [[1, 2], [0, 3, 4], [0, 5], [1], [1, 5], [2, 4]]
`
	res := Classify(source)
	if res.Algorithm != "bfs" {
		t.Fatalf("algorithm = %s", res.Algorithm)
	}
	want := [][]int{{1, 2}, {0, 3, 4}, {0, 5}, {1}, {1, 5}, {2, 4}}
	if !reflect.DeepEqual(res.Graph, want) {
		t.Errorf("graph = %v, want %v", res.Graph, want)
	}
	if !res.HasStart || res.Start != 0 {
		t.Errorf("start = %d (has %v), want 0", res.Start, res.HasStart)
	}
}

func TestComplexityEstimate(t *testing.T) {
	tests := []struct {
		source string
		want   string
	}{
		{"x = 1", "O(1)"},
		{"for i in range(n): pass", "O(n)"},
		{bubbleSource, "O(n²)"},
		{"for a {} for b {} for c {} for d {}", "O(n³)"},
		{binarySource, "O(log n)"},
	}
	for _, tt := range tests {
		if got := Classify(tt.source).Complexity; got != tt.want {
			t.Errorf("complexity(%.20q) = %s, want %s", tt.source, got, tt.want)
		}
	}
}

func TestStructuralWarnings(t *testing.T) {
	res := Classify("function broken(a { if (a > 0 { return; }")
	joined := strings.Join(res.Warnings, "; ")
	if !strings.Contains(joined, "braces") {
		t.Errorf("expected brace warning, got %v", res.Warnings)
	}
	if !strings.Contains(joined, "parentheses") {
		t.Errorf("expected parenthesis warning, got %v", res.Warnings)
	}

	res = Classify("just a comment line")
	found := false
	for _, w := range res.Warnings {
		if strings.Contains(w, "function") {
			found = true
		}
	}
	if !found {
		t.Errorf("expected missing-function warning, got %v", res.Warnings)
	}

	res = Classify(bubbleSource)
	if len(res.Warnings) != 0 {
		t.Errorf("well-formed source produced warnings: %v", res.Warnings)
	}
}
