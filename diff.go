package jsoncmp

import (
	"errors"
	"fmt"
	"reflect"
	"sort"
	"strconv"
)

// Entry holds the two divergent sides recorded at one structural path
type Entry struct {
	Left  Value `json:"left"`
	Right Value `json:"right"`
}

// DiffMap maps structural paths to the pair of values that diverge there.
// Equal subtrees never appear: an empty map means the documents are equal.
type DiffMap map[string]Entry

// Paths returns every recorded path in ascending order. Rendering should
// always iterate Paths rather than ranging the map so that repeated runs on
// the same inputs produce byte-identical reports.
func (dm DiffMap) Paths() []string {
	paths := make([]string, 0, len(dm))
	for p := range dm {
		paths = append(paths, p)
	}
	sort.Strings(paths)
	return paths
}

// ErrMaxDepth is returned (wrapped) when diffing recurses past the
// configured depth limit
var ErrMaxDepth = errors.New("max recursion depth exceeded")

// Diff walks left & right in lockstep and collects a path-keyed map of their
// divergences. The joint shape of the two values at a path decides how to
// proceed:
//
//   - object vs object: recurse per key over the union of both key sets,
//     recording keys present on one side only against MissingKey
//   - array vs array: recurse per index up to the longer length, recording
//     out-of-range indexes on the shorter side against MissingElement
//   - anything else (scalars, or mismatched shapes like object vs array):
//     one flat entry holding both raw values when they're not deeply equal.
//     Mismatched compound subtrees are deliberately recorded whole rather
//     than expanded.
//
// Diffing a document against itself returns an empty map. Object key
// iteration order never changes which entries are produced.
func Diff(left, right interface{}, opts ...Option) (DiffMap, error) {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	d := &differ{maxDepth: cfg.MaxDepth, found: DiffMap{}}
	if err := d.compare(left, right, "", 1); err != nil {
		return nil, err
	}
	return d.found, nil
}

// differ accumulates diff entries during a single Diff call
type differ struct {
	maxDepth int
	found    DiffMap
}

func (d *differ) compare(left, right interface{}, path string, depth int) error {
	if depth > d.maxDepth {
		return fmt.Errorf("%w at %q (limit %d)", ErrMaxDepth, path, d.maxDepth)
	}

	if lo, ok := left.(map[string]interface{}); ok {
		if ro, ok := right.(map[string]interface{}); ok {
			return d.compareObjects(lo, ro, path, depth)
		}
	}
	if la, ok := left.([]interface{}); ok {
		if ra, ok := right.([]interface{}); ok {
			return d.compareArrays(la, ra, path, depth)
		}
	}

	if !reflect.DeepEqual(left, right) {
		d.found[path] = Entry{Left: Found(left), Right: Found(right)}
	}
	return nil
}

func (d *differ) compareObjects(left, right map[string]interface{}, path string, depth int) error {
	for key, lv := range left {
		p := joinKey(path, key)
		rv, ok := right[key]
		if !ok {
			d.found[p] = Entry{Left: Found(lv), Right: MissingKey}
			continue
		}
		if err := d.compare(lv, rv, p, depth+1); err != nil {
			return err
		}
	}
	for key, rv := range right {
		if _, ok := left[key]; ok {
			continue
		}
		d.found[joinKey(path, key)] = Entry{Left: MissingKey, Right: Found(rv)}
	}
	return nil
}

func (d *differ) compareArrays(left, right []interface{}, path string, depth int) error {
	max := len(left)
	if len(right) > max {
		max = len(right)
	}
	for i := 0; i < max; i++ {
		p := joinIndex(path, i)
		switch {
		case i >= len(right):
			d.found[p] = Entry{Left: Found(left[i]), Right: MissingElement}
		case i >= len(left):
			d.found[p] = Entry{Left: MissingElement, Right: Found(right[i])}
		default:
			if err := d.compare(left[i], right[i], p, depth+1); err != nil {
				return err
			}
		}
	}
	return nil
}

// joinKey extends a path with an object key: "a" -> "a/b", "" -> "b"
func joinKey(path, key string) string {
	if path == "" {
		return key
	}
	return path + "/" + key
}

// joinIndex extends a path with an array position: "a" -> "a[2]"
func joinIndex(path string, i int) string {
	return path + "[" + strconv.Itoa(i) + "]"
}
