// Package jsoncmp compares two JSON documents and reports their structural
// differences. It doesn't produce a machine-applicable patch; the output is a
// human-readable summary of how the two documents' shapes and values diverge.
//
// A comparison has three pure stages that compose in sequence:
//
//	CountLevels - walk one document, counting nodes present at each depth
//	Diff        - walk both documents in lockstep, collecting a path-keyed
//	              map of divergent value pairs
//	Summarize   - fold two level counts & a diff map into a single Summary
//
// Compare runs all three. Instead of operating on JSON text directly, jsoncmp
// operates on document trees consisting of the go types created by
// unmarshaling from JSON, which are two compound types:
//
//	map[string]interface{}
//	[]interface{}
//
// and the scalar types string, float64, bool, nil. Inputs are never mutated,
// every stage is deterministic, and nothing is shared between invocations, so
// concurrent comparisons need no coordination.
//
// Paths in a diff join object keys with "/" and append "[i]" for array
// positions, eg: "a/b[2]/c". A key or index present on only one side is
// recorded against a missing-value sentinel rather than being recursed into.
package jsoncmp
