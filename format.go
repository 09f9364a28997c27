package jsoncmp

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"github.com/fatih/color"
)

// FormatPrettyString is a convenience wrapper that outputs to a string
// instead of an io.Writer
func FormatPrettyString(sum *Summary, colorTTY bool) (string, error) {
	buf := &bytes.Buffer{}
	if err := FormatPretty(buf, sum, colorTTY); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// FormatPretty writes a text report of a comparison to w: total node counts,
// the level-by-level table, then each diverging path with both sides rendered
// as JSON. Paths are emitted in sorted order so output for the same inputs is
// byte-identical across runs. If colorTTY is true paths render blue, left
// values red & right values green.
func FormatPretty(w io.Writer, sum *Summary, colorTTY bool) error {
	p := newPalette(colorTTY)

	fmt.Fprintf(w, "%s left = %d, right = %d\n\n", p.header.Sprint("Total nodes:"), sum.LeftNodes, sum.RightNodes)

	fmt.Fprintln(w, p.header.Sprint("Detailed comparison:"))
	for _, ld := range sum.Levels {
		diff := fmt.Sprintf("%d", ld.Diff)
		if ld.Diff > 0 {
			diff = p.left.Sprintf("+%d", ld.Diff)
		} else if ld.Diff < 0 {
			diff = p.right.Sprint(ld.Diff)
		}
		fmt.Fprintf(w, "Level %d: left = %d, right = %d, difference = %s\n", ld.Level, ld.Left, ld.Right, diff)
	}

	if sum.Equal() {
		return nil
	}
	fmt.Fprintf(w, "\n%s\n", p.header.Sprint("Differences:"))
	return FormatDiffs(w, sum.Diffs, colorTTY)
}

// FormatDiffs writes only the path-keyed differences, in sorted path order
func FormatDiffs(w io.Writer, diffs DiffMap, colorTTY bool) error {
	p := newPalette(colorTTY)

	for _, path := range diffs.Paths() {
		entry := diffs[path]
		left, err := renderValue(entry.Left)
		if err != nil {
			return err
		}
		right, err := renderValue(entry.Right)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "Path: %s\n", p.path.Sprint(path))
		fmt.Fprintf(w, "  left: %s\n", p.left.Sprint(left))
		fmt.Fprintf(w, "  right: %s\n", p.right.Sprint(right))
	}
	return nil
}

// renderValue stringifies one side of an entry. Missing sides render as their
// sentinel description without quotes to keep them visually distinct from a
// string value.
func renderValue(v Value) (string, error) {
	if v.Missing() {
		return v.Absence.String(), nil
	}
	data, err := json.Marshal(v.Data)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

type palette struct {
	header, path, left, right *color.Color
}

// newPalette builds the report colors, forcing them on or off regardless of
// the package-global TTY detection so output stays caller-controlled
func newPalette(enabled bool) palette {
	p := palette{
		header: color.New(color.Bold),
		path:   color.New(color.FgBlue),
		left:   color.New(color.FgRed),
		right:  color.New(color.FgGreen),
	}
	for _, c := range []*color.Color{p.header, p.path, p.left, p.right} {
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return p
}
