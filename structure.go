package jsoncmp

import "sort"

// LevelCount records how many nodes a document holds at one depth level.
// The document root is level 1.
type LevelCount struct {
	Level int `json:"level"`
	Count int `json:"count"`
}

// LevelCounts is an ascending-by-level sequence of per-depth node counts.
// Levels with no nodes have no entry.
type LevelCounts []LevelCount

// Total sums node counts across all levels
func (lc LevelCounts) Total() (n int) {
	for _, l := range lc {
		n += l.Count
	}
	return n
}

// MaxLevel returns the deepest level present, 0 for an empty sequence
func (lc LevelCounts) MaxLevel() int {
	if len(lc) == 0 {
		return 0
	}
	return lc[len(lc)-1].Level
}

// At returns the count at the given level, 0 when the level has no entry
func (lc LevelCounts) At(level int) int {
	i := sort.Search(len(lc), func(i int) bool { return lc[i].Level >= level })
	if i < len(lc) && lc[i].Level == level {
		return lc[i].Count
	}
	return 0
}

// depthNode pairs a document value with its depth for worklist traversal
type depthNode struct {
	v     interface{}
	level int
}

// CountLevels walks a document depth-first & counts the nodes present at each
// level. Every value counts one at its own level: objects & arrays contribute
// their children to the next level down, scalars contribute nothing further.
// Any valid document yields at least one level (the root), so the result is
// never empty.
//
// Traversal uses an explicit worklist rather than recursion, so pathologically
// nested input can't exhaust the goroutine stack.
func CountLevels(doc interface{}) LevelCounts {
	counts := map[int]int{}

	stack := []depthNode{{v: doc, level: 1}}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		counts[n.level]++
		switch x := n.v.(type) {
		case map[string]interface{}:
			for _, v := range x {
				stack = append(stack, depthNode{v: v, level: n.level + 1})
			}
		case []interface{}:
			for _, v := range x {
				stack = append(stack, depthNode{v: v, level: n.level + 1})
			}
		}
	}

	levels := make(LevelCounts, 0, len(counts))
	for level, count := range counts {
		levels = append(levels, LevelCount{Level: level, Count: count})
	}
	sort.Slice(levels, func(i, j int) bool { return levels[i].Level < levels[j].Level })
	return levels
}
