// Package classify guesses which algorithm a source snippet implements.
//
// Everything here is a textual heuristic: ordered first-match patterns over
// raw source, not parsing or analysis. Results are hints for picking a
// producer and preset input; they carry no correctness guarantee and the
// animation never depends on them being right.
package classify

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Result is the best-effort reading of a snippet. Values, Graph, and Target
// are only set when a literal initializer was spotted; Complexity is an
// estimate from loop counting, nothing more.
type Result struct {
	Algorithm  string
	Values     []int
	Target     int
	HasTarget  bool
	Graph      [][]int
	Start      int
	HasStart   bool
	Complexity string
	Warnings   []string
}

type rule struct {
	algorithm string
	pattern   *regexp.Regexp
}

// Ordered; the first matching rule wins. Specific names come before
// structural giveaways so "bubbleSort" beats its own adjacent-swap loop.
var rules = []rule{
	{"bubble_sort", regexp.MustCompile(`(?i)bubble`)},
	{"selection_sort", regexp.MustCompile(`(?i)selection`)},
	{"insertion_sort", regexp.MustCompile(`(?i)insertion`)},
	{"merge_sort", regexp.MustCompile(`(?i)merge\s*_?sort|mergesort|\bmerge\s*\(`)},
	{"quick_sort", regexp.MustCompile(`(?i)quick|partition|pivot`)},
	{"binary_search", regexp.MustCompile(`(?i)binary\s*_?search|binarysearch|\bmid\b.*\blow\b|\blow\b.*\bhigh\b`)},
	{"linear_search", regexp.MustCompile(`(?i)linear\s*_?search|linearsearch|sequential\s*search`)},
	{"bfs", regexp.MustCompile(`(?i)\bbfs\b|breadth[\s_-]*first|\bqueue\b.*\bvisited\b|\bvisited\b.*\bqueue\b`)},
	{"dfs", regexp.MustCompile(`(?i)\bdfs\b|depth[\s_-]*first|\bstack\b.*\bvisited\b|recurs\w*.*\bvisit`)},
	// structural fallbacks
	{"bubble_sort", regexp.MustCompile(`\[\s*j\s*\]\s*>\s*\w+\s*\[\s*j\s*\+\s*1\s*\]`)},
	{"linear_search", regexp.MustCompile(`(?i)\bsearch\b|\bfind\b|==\s*target`)},
}

var (
	listPattern   = regexp.MustCompile(`[\[{]\s*(-?\d+(?:\s*,\s*-?\d+)+)\s*[\]}]`)
	rowPattern    = regexp.MustCompile(`[\[{]([\d\s,-]*?)[\]}]`)
	targetPattern = regexp.MustCompile(`(?i)target\s*(?::?=|:)\s*(-?\d+)`)
	startPattern  = regexp.MustCompile(`(?i)start\s*(?::?=|:)\s*(\d+)`)
	loopPattern   = regexp.MustCompile(`(?i)\bfor\b|\bwhile\b|\bforeach\b|\brepeat\b`)
	logPattern    = regexp.MustCompile(`(?i)binary|logarithm|log\s*\(?\s*n|mid\s*=|middle`)
	funcPattern   = regexp.MustCompile(`(?i)\bfunc\b|\bfunction\b|\bdef\b|\bvoid\b|\bint\s+\w+\s*\(|=>`)
)

// Classify reads a snippet and returns its best guess. It never fails:
// unmatched source yields the "unknown" algorithm, malformed structure only
// yields warnings.
func Classify(source string) Result {
	res := Result{Algorithm: "unknown", Start: 0}

	for _, r := range rules {
		if r.pattern.MatchString(source) {
			res.Algorithm = r.algorithm
			break
		}
	}

	if isGraphAlgorithm(res.Algorithm) {
		res.Graph = extractGraph(source)
	} else {
		res.Values = extractValues(source)
	}

	if m := targetPattern.FindStringSubmatch(source); m != nil {
		if v, err := strconv.Atoi(m[1]); err == nil {
			res.Target = v
			res.HasTarget = true
		}
	}
	if m := startPattern.FindStringSubmatch(source); m != nil {
		if v, err := strconv.Atoi(m[1]); err == nil {
			res.Start = v
			res.HasStart = true
		}
	}

	res.Complexity = estimateComplexity(source)
	res.Warnings = structuralWarnings(source)

	return res
}

func isGraphAlgorithm(name string) bool {
	return name == "bfs" || name == "dfs"
}

// extractValues finds the first literal list of two or more integers.
func extractValues(source string) []int {
	m := listPattern.FindStringSubmatch(source)
	if m == nil {
		return nil
	}
	return parseInts(m[1])
}

// extractGraph reads consecutive bracketed number rows inside the first
// nested-list literal as an adjacency list.
func extractGraph(source string) [][]int {
	open := strings.Index(source, "[[")
	if open < 0 {
		open = strings.Index(source, "{{")
	}
	if open < 0 {
		return nil
	}

	depth := 0
	end := len(source)
	for i := open; i < len(source); i++ {
		switch source[i] {
		case '[', '{':
			depth++
		case ']', '}':
			depth--
			if depth == 0 {
				end = i + 1
				i = len(source)
			}
		}
	}

	var graph [][]int
	for _, m := range rowPattern.FindAllStringSubmatch(source[open+1:end-1], -1) {
		graph = append(graph, parseInts(m[1]))
	}
	return graph
}

func parseInts(list string) []int {
	parts := strings.Split(list, ",")
	values := make([]int, 0, len(parts))
	for _, p := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			continue
		}
		values = append(values, v)
	}
	if len(values) == 0 {
		return nil
	}
	return values
}

// estimateComplexity counts loop-opening tokens. It is a syntactic guess
// and callers must present it as approximate.
func estimateComplexity(source string) string {
	if logPattern.MatchString(source) {
		return "O(log n)"
	}
	switch n := len(loopPattern.FindAllString(source, -1)); {
	case n == 0:
		return "O(1)"
	case n == 1:
		return "O(n)"
	case n == 2:
		return "O(n²)"
	default:
		return "O(n³)"
	}
}

func structuralWarnings(source string) []string {
	var warnings []string

	if d := strings.Count(source, "{") - strings.Count(source, "}"); d != 0 {
		warnings = append(warnings, fmt.Sprintf("unbalanced braces (%+d)", d))
	}
	if d := strings.Count(source, "(") - strings.Count(source, ")"); d != 0 {
		warnings = append(warnings, fmt.Sprintf("unbalanced parentheses (%+d)", d))
	}
	if strings.TrimSpace(source) != "" && !funcPattern.MatchString(source) {
		warnings = append(warnings, "no function definition found")
	}
	return warnings
}
