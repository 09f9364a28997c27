package jsoncmp

import (
	"encoding/json"
	"testing"
)

func TestValueMarshalJSON(t *testing.T) {
	cases := []struct {
		description string
		value       Value
		expect      string
	}{
		{"present scalar", Found(1.0), `1`},
		{"present string", Found("key not found"), `"key not found"`},
		{"present null", Found(nil), `null`},
		{"missing key", MissingKey, `"key not found"`},
		{"missing element", MissingElement, `"element not found"`},
	}

	for _, c := range cases {
		data, err := json.Marshal(c.value)
		if err != nil {
			t.Fatalf("'%s': %s", c.description, err)
		}
		if string(data) != c.expect {
			t.Errorf("'%s': want %s, got %s", c.description, c.expect, data)
		}
	}
}

func TestValueMissing(t *testing.T) {
	if Found("key not found").Missing() {
		t.Error("a real string must not read as missing")
	}
	if Found(nil).Missing() {
		t.Error("JSON null is a present value")
	}
	if !MissingKey.Missing() || !MissingElement.Missing() {
		t.Error("sentinels must read as missing")
	}
	if MissingKey == MissingElement {
		t.Error("key & element sentinels must stay distinct")
	}
}
