package config

var Presets = map[string]map[string]*Config{
	"bubble_sort": {
		"tiny": {
			Algorithm: "bubble_sort", Speed: 1.0,
			Input: InputSpec{Values: []int{3, 1, 2}},
		},
		"classic": {
			Algorithm: "bubble_sort", Speed: 2.0,
			Input: InputSpec{Values: []int{64, 34, 25, 12, 22, 11, 90}},
		},
		"reversed": {
			Algorithm: "bubble_sort", Speed: 4.0,
			Input: InputSpec{Values: []int{9, 8, 7, 6, 5, 4, 3, 2, 1}},
		},
	},
	"selection_sort": {
		"classic": {
			Algorithm: "selection_sort", Speed: 2.0,
			Input: InputSpec{Values: []int{64, 25, 12, 22, 11}},
		},
	},
	"insertion_sort": {
		"classic": {
			Algorithm: "insertion_sort", Speed: 2.0,
			Input: InputSpec{Values: []int{12, 11, 13, 5, 6}},
		},
		"nearly_sorted": {
			Algorithm: "insertion_sort", Speed: 4.0,
			Input: InputSpec{Values: []int{1, 2, 4, 3, 5, 6, 8, 7}},
		},
	},
	"merge_sort": {
		"classic": {
			Algorithm: "merge_sort", Speed: 2.0,
			Input: InputSpec{Values: []int{38, 27, 43, 3, 9, 82, 10}},
		},
	},
	"quick_sort": {
		"classic": {
			Algorithm: "quick_sort", Speed: 2.0,
			Input: InputSpec{Values: []int{10, 80, 30, 90, 40, 50, 70}},
		},
		"duplicates": {
			Algorithm: "quick_sort", Speed: 2.0,
			Input: InputSpec{Values: []int{5, 3, 5, 1, 5, 2}},
		},
	},
	"linear_search": {
		"classic": {
			Algorithm: "linear_search", Speed: 2.0,
			Input: InputSpec{Values: []int{10, 50, 30, 70, 80, 60}, Target: 70},
		},
	},
	"binary_search": {
		"classic": {
			Algorithm: "binary_search", Speed: 1.0,
			Input: InputSpec{Values: []int{11, 12, 22, 25, 34, 64, 90}, Target: 22},
		},
		"missing": {
			Algorithm: "binary_search", Speed: 1.0,
			Input: InputSpec{Values: []int{2, 4, 8, 16, 32, 64}, Target: 10},
		},
	},
	"bfs": {
		"classic": {
			Algorithm: "bfs", Speed: 1.0,
			Input: InputSpec{Graph: [][]int{{1, 2}, {0, 3, 4}, {0, 5}, {1}, {1, 5}, {2, 4}}, Start: 0},
		},
	},
	"dfs": {
		"classic": {
			Algorithm: "dfs", Speed: 1.0,
			Input: InputSpec{Graph: [][]int{{1, 2}, {0, 3, 4}, {0, 5}, {1}, {1, 5}, {2, 4}}, Start: 0},
		},
	},
}

func GetPreset(algorithm, name string) *Config {
	group, ok := Presets[algorithm]
	if !ok {
		return nil
	}
	return group[name]
}

func ListPresets(algorithm string) []string {
	group, ok := Presets[algorithm]
	if !ok {
		return nil
	}
	names := make([]string, 0, len(group))
	for name := range group {
		names = append(names, name)
	}
	return names
}
