// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode"

	"github.com/katalvlaran/lvmat/matrix"
)

const rowSeparator = ";"

var errEmptyLiteral = errors.New("empty literal")

// splitElements splits on commas and any whitespace.
func splitElements(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool { return r == ',' || unicode.IsSpace(r) })
}

// parseVector reads "1,2,3" (or "1 2 3").
func parseVector(s string) ([]float64, error) {
	fields := splitElements(s)
	if len(fields) == 0 {
		return nil, fmt.Errorf("vector %q: %w", s, errEmptyLiteral)
	}
	out := make([]float64, len(fields))
	for i, f := range fields {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return nil, fmt.Errorf("vector %q element %d: %w", s, i, err)
		}
		out[i] = v
	}

	return out, nil
}

// parseMatrix reads "1,2;3,4". Rows must have equal width.
func parseMatrix(s string) (*matrix.Dense, error) {
	parts := strings.Split(strings.TrimSpace(s), rowSeparator)
	rows := make([][]float64, 0, len(parts))
	for i, p := range parts {
		if strings.TrimSpace(p) == "" {
			// tolerate a trailing ';'
			if i == len(parts)-1 && i > 0 {
				continue
			}
			return nil, fmt.Errorf("matrix %q row %d: %w", s, i, errEmptyLiteral)
		}
		row, err := parseVector(p)
		if err != nil {
			return nil, fmt.Errorf("matrix %q row %d: %w", s, i, err)
		}
		rows = append(rows, row)
	}
	m, err := matrix.NewFromRows(rows)
	if err != nil {
		return nil, fmt.Errorf("matrix %q: %w", s, err)
	}

	return m, nil
}

// formatFloat renders v with the requested significant digits.
func formatFloat(v float64, precision int) string {
	return strconv.FormatFloat(v, 'g', precision, 64)
}

// renderMatrix writes m as rows of space-separated values, or aligned
// columns when pretty is set.
func renderMatrix(w io.Writer, m *matrix.Dense, o *globalOptions) error {
	if o.pretty {
		var err error
		if o.precision >= 0 {
			_, err = fmt.Fprintf(w, "%.*g\n", o.precision, matrix.Formatted(m, ""))
		} else {
			_, err = fmt.Fprintf(w, "%v\n", matrix.Formatted(m, ""))
		}

		return err
	}
	if o.precision < 0 {
		_, err := io.WriteString(w, m.String())

		return err
	}
	var b strings.Builder
	m.Do(func(_, j int, v float64) bool {
		if j > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(formatFloat(v, o.precision))
		if j == m.Cols()-1 {
			b.WriteByte('\n')
		}

		return true
	})
	_, err := io.WriteString(w, b.String())

	return err
}

// renderScalar writes a single value on its own line.
func renderScalar(w io.Writer, v float64, o *globalOptions) error {
	_, err := fmt.Fprintln(w, formatFloat(v, o.precision))

	return err
}
