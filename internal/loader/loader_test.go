package loader

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func writeFile(t *testing.T, name, data string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad(t *testing.T) {
	path := writeFile(t, "doc.json", `{"a": [1, 2], "b": null}`)

	doc, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	expect := map[string]interface{}{
		"a": []interface{}{1.0, 2.0},
		"b": nil,
	}
	if !reflect.DeepEqual(expect, doc) {
		t.Errorf("document mismatch\nwant: %v\ngot: %v", expect, doc)
	}
}

func TestLoadErrorTaxonomy(t *testing.T) {
	cases := []struct {
		description string
		path        string
		kind        error
	}{
		{"missing file", filepath.Join(t.TempDir(), "nope.json"), ErrUnreadable},
		{"invalid json", writeFile(t, "bad.json", `{"a": `), ErrMalformed},
		{"trailing data", writeFile(t, "trailing.json", `{} {}`), ErrMalformed},
	}

	for _, c := range cases {
		_, err := Load(c.path)
		if !errors.Is(err, c.kind) {
			t.Errorf("'%s': want %v, got %v", c.description, c.kind, err)
		}
		// the two kinds must never overlap
		other := ErrMalformed
		if c.kind == ErrMalformed {
			other = ErrUnreadable
		}
		if errors.Is(err, other) {
			t.Errorf("'%s': error matches both kinds", c.description)
		}
	}
}

func TestLoadPair(t *testing.T) {
	left := writeFile(t, "left.json", `[1, 2, 3]`)
	right := writeFile(t, "right.json", `[4]`)

	l, r, err := LoadPair(context.Background(), left, right)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual([]interface{}{1.0, 2.0, 3.0}, l) {
		t.Errorf("left mismatch: %v", l)
	}
	if !reflect.DeepEqual([]interface{}{4.0}, r) {
		t.Errorf("right mismatch: %v", r)
	}
}

// one bad document fails the whole pair, no partial results
func TestLoadPairFailure(t *testing.T) {
	good := writeFile(t, "good.json", `{}`)
	bad := writeFile(t, "bad.json", `{`)

	l, r, err := LoadPair(context.Background(), good, bad)
	if !errors.Is(err, ErrMalformed) {
		t.Fatalf("want ErrMalformed, got %v", err)
	}
	if l != nil || r != nil {
		t.Errorf("partial results returned: %v, %v", l, r)
	}
}
