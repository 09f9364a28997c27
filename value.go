package jsoncmp

import "encoding/json"

// Absence tags why one side of a diff entry has no value. The zero value
// means the side is present. Using a tag instead of a magic string keeps a
// document that legitimately contains the string "key not found" from ever
// colliding with the sentinel in comparison logic.
type Absence uint8

const (
	// AbsenceNone marks a side that holds real document data
	AbsenceNone Absence = iota
	// AbsenceKey marks an object key present on only the other side
	AbsenceKey
	// AbsenceElement marks an array index past the end of this side
	AbsenceElement
)

func (a Absence) String() string {
	switch a {
	case AbsenceKey:
		return "key not found"
	case AbsenceElement:
		return "element not found"
	}
	return ""
}

// Value is one side of a diff entry: either a value taken from a document, or
// a marker that the path doesn't exist on that side.
type Value struct {
	// the raw document value, nil when Absence is set (note nil is also a
	// legitimate JSON null, so check Absence, not Data)
	Data interface{}
	// why the side is missing, AbsenceNone for present values
	Absence Absence
}

// Found wraps document data in a present Value
func Found(data interface{}) Value {
	return Value{Data: data}
}

// sentinel sides recorded when a path exists on only one document
var (
	MissingKey     = Value{Absence: AbsenceKey}
	MissingElement = Value{Absence: AbsenceElement}
)

// Missing reports whether this side has no value at the entry's path
func (v Value) Missing() bool { return v.Absence != AbsenceNone }

// MarshalJSON renders present values as their document data and missing
// values as their sentinel description, matching the textual report format
func (v Value) MarshalJSON() ([]byte, error) {
	if v.Missing() {
		return json.Marshal(v.Absence.String())
	}
	return json.Marshal(v.Data)
}
