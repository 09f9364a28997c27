package jsoncmp

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func mustParse(t *testing.T, data string) interface{} {
	t.Helper()
	var doc interface{}
	if err := json.Unmarshal([]byte(data), &doc); err != nil {
		t.Fatal(err)
	}
	return doc
}

func TestCountLevels(t *testing.T) {
	cases := []struct {
		description string
		doc         string // express documents as json strings
		expect      LevelCounts
	}{
		{"null scalar", `null`, LevelCounts{{1, 1}}},
		{"number scalar", `42`, LevelCounts{{1, 1}}},
		{"empty object", `{}`, LevelCounts{{1, 1}}},
		{"empty array", `[]`, LevelCounts{{1, 1}}},
		{"flat object", `{"a": 1, "b": 2, "c": 3}`, LevelCounts{{1, 1}, {2, 3}}},
		{"flat array", `[1, 2, 3]`, LevelCounts{{1, 1}, {2, 3}}},
		{"nested object", `{"x": {"y": 1}}`, LevelCounts{{1, 1}, {2, 1}, {3, 1}}},
		{"empty containers still count one node",
			`{"a": {}, "b": []}`,
			LevelCounts{{1, 1}, {2, 2}}},
		{"mixed nesting",
			`{"a": 100, "foo": [1, 2, 3], "bar": false, "baz": {"e": null}}`,
			LevelCounts{{1, 1}, {2, 4}, {3, 4}}},
	}

	for _, c := range cases {
		got := CountLevels(mustParse(t, c.doc))
		if diff := cmp.Diff(c.expect, got); diff != "" {
			t.Errorf("'%s' result mismatch (-want +got):\n%s", c.description, diff)
		}
	}
}

// every document has exactly one root node & no level with a zero count
func TestCountLevelsInvariants(t *testing.T) {
	docs := []string{
		`null`, `""`, `{}`, `[[], [], {}]`,
		`{"a": {"b": {"c": [1, 2, {"d": null}]}}}`,
	}
	for _, data := range docs {
		levels := CountLevels(mustParse(t, data))
		if len(levels) == 0 {
			t.Fatalf("%s: no levels returned", data)
		}
		if levels[0].Level != 1 || levels[0].Count != 1 {
			t.Errorf("%s: root level = %v, want (1, 1)", data, levels[0])
		}
		for i, l := range levels {
			if l.Count <= 0 {
				t.Errorf("%s: level %d has non-positive count %d", data, l.Level, l.Count)
			}
			if i > 0 && levels[i-1].Level >= l.Level {
				t.Errorf("%s: levels not strictly ascending at %d", data, i)
			}
		}
	}
}

// pathological nesting must not exhaust the stack
func TestCountLevelsDeepNesting(t *testing.T) {
	depth := 100000
	var doc interface{} = 1.0
	for i := 0; i < depth; i++ {
		doc = []interface{}{doc}
	}

	levels := CountLevels(doc)
	if got := len(levels); got != depth+1 {
		t.Fatalf("level count mismatch. want: %d. got: %d", depth+1, got)
	}
	if total := levels.Total(); total != depth+1 {
		t.Errorf("total mismatch. want: %d. got: %d", depth+1, total)
	}
}

func TestLevelCountsAccessors(t *testing.T) {
	levels := LevelCounts{{1, 1}, {2, 4}, {4, 2}}

	if got := levels.Total(); got != 7 {
		t.Errorf("Total: want 7, got %d", got)
	}
	if got := levels.MaxLevel(); got != 4 {
		t.Errorf("MaxLevel: want 4, got %d", got)
	}
	for level, want := range map[int]int{1: 1, 2: 4, 3: 0, 4: 2, 5: 0} {
		if got := levels.At(level); got != want {
			t.Errorf("At(%d): want %d, got %d", level, want, got)
		}
	}

	var empty LevelCounts
	if got := empty.MaxLevel(); got != 0 {
		t.Errorf("empty MaxLevel: want 0, got %d", got)
	}
	if got := empty.Total(); got != 0 {
		t.Errorf("empty Total: want 0, got %d", got)
	}
}
