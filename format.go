package eea

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"
)

// Columns names the trace table columns, in the order returned by Step.Row.
var Columns = [7]string{"Q", "A", "B", "R", "T1", "T2", "T"}

// Row returns the fields of s in column order: Q, A, B, R, T1, T2, T.
func (s Step) Row() [7]int64 {
	return [7]int64{s.Q, s.A, s.B, s.R, s.T1, s.T2, s.T}
}

// String returns the row of s as space-separated integers.
func (s Step) String() string {
	row := s.Row()
	parts := make([]string, len(row))
	for i, v := range row {
		parts[i] = strconv.FormatInt(v, 10)
	}
	return strings.Join(parts, " ")
}

// WriteTable writes the step trace of x to w as an aligned table with a
// header line. If format is nil, values are written in plain base 10.
func (x Result) WriteTable(w io.Writer, format func(int64) string) error {
	if format == nil {
		format = func(v int64) string { return strconv.FormatInt(v, 10) }
	}
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', tabwriter.AlignRight)
	if _, err := io.WriteString(tw, strings.Join(Columns[:], "\t")+"\t\n"); err != nil {
		return err
	}
	for _, s := range x.Steps {
		var line strings.Builder
		for _, v := range s.Row() {
			line.WriteString(format(v))
			line.WriteByte('\t')
		}
		line.WriteByte('\n')
		if _, err := io.WriteString(tw, line.String()); err != nil {
			return err
		}
	}
	return tw.Flush()
}

// Summary returns the human-readable result lines: the GCD followed by
// either the modular inverse or a note that it does not exist.
func (x Result) Summary() []string {
	lines := []string{fmt.Sprintf("GCD: %d", x.GCD)}
	if x.HasInverse {
		lines = append(lines, fmt.Sprintf("Modular inverse of %d mod %d: %d", x.A, x.B, x.Inverse))
	} else {
		lines = append(lines, "Modular inverse: does not exist (GCD != 1)")
	}
	return lines
}
