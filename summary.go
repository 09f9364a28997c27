package jsoncmp

import "errors"

// ErrEmptyStructure is returned by Summarize when a level sequence is empty.
// CountLevels yields at least one level for any valid document, so an empty
// sequence means an earlier stage was skipped or fed a partial result; the
// summarizer refuses to guess rather than emit a degenerate summary.
var ErrEmptyStructure = errors.New("empty level structure")

// LevelDelta is one row of the level-by-level comparison table
type LevelDelta struct {
	Level int `json:"level"`
	Left  int `json:"left"`
	Right int `json:"right"`
	// Left - Right, negative when the right document is larger at this level
	Diff int `json:"difference"`
}

// Summary aggregates the results of a full comparison run
type Summary struct {
	LeftNodes  int `json:"leftNodes"`  // total node count of the left tree
	RightNodes int `json:"rightNodes"` // total node count of the right tree

	// one row per level from 1 to the deepest level in either document,
	// levels absent from a document fill as 0
	Levels []LevelDelta `json:"detailedComparison"`

	// the full path-keyed diff, empty when the documents are equal
	Diffs DiffMap `json:"differences,omitempty"`
}

// NodeChange returns the total node count shift between the two trees
func (s *Summary) NodeChange() int {
	return s.RightNodes - s.LeftNodes
}

// Equal reports whether the two documents had no divergences
func (s *Summary) Equal() bool {
	return len(s.Diffs) == 0
}

// Summarize folds two level-count sequences & a diff map into a Summary.
// The diff map passes through untouched. Either sequence being empty is a
// precondition violation, reported as ErrEmptyStructure.
func Summarize(left, right LevelCounts, diffs DiffMap) (*Summary, error) {
	if len(left) == 0 || len(right) == 0 {
		return nil, ErrEmptyStructure
	}

	maxLevel := left.MaxLevel()
	if r := right.MaxLevel(); r > maxLevel {
		maxLevel = r
	}

	s := &Summary{
		LeftNodes:  left.Total(),
		RightNodes: right.Total(),
		Levels:     make([]LevelDelta, 0, maxLevel),
		Diffs:      diffs,
	}
	for level := 1; level <= maxLevel; level++ {
		l, r := left.At(level), right.At(level)
		s.Levels = append(s.Levels, LevelDelta{Level: level, Left: l, Right: r, Diff: l - r})
	}
	return s, nil
}
