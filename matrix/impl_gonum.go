// SPDX-License-Identifier: MIT
// Package matrix - interoperability with gonum.org/v1/gonum/mat.
//
// *Dense and *mat.Dense share the same row-major layout; the bridge copies
// in both directions so neither side can alias the other's buffer.

package matrix

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

const (
	opToGonum   = "ToGonum"
	opFromGonum = "FromGonum"
)

// ToGonum copies m into a new *mat.Dense.
// Errors: ErrNilMatrix; ErrInvalidDimensions for an empty matrix (gonum
// forbids zero-sized dense matrices).
func (m *Dense) ToGonum() (*mat.Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opToGonum, err)
	}
	if m.r == 0 || m.c == 0 {
		return nil, matrixErrorf(opToGonum, ErrInvalidDimensions)
	}
	buf := make([]float64, len(m.data))
	copy(buf, m.data)

	return mat.NewDense(m.r, m.c, buf), nil
}

// FromGonum copies any gonum matrix into a new *Dense.
// Errors: ErrNilMatrix; ErrNaNInf when the source holds a non-finite value
// and the resolved policy rejects it.
func FromGonum(g mat.Matrix, opts ...Option) (*Dense, error) {
	if g == nil {
		return nil, matrixErrorf(opFromGonum, ErrNilMatrix)
	}
	r, c := g.Dims()
	d, err := NewDense(r, c, opts...)
	if err != nil {
		return nil, matrixErrorf(opFromGonum, err)
	}
	if gd, ok := g.(*mat.Dense); ok {
		for i := 0; i < r; i++ {
			mat.Row(d.rowView(i), i, gd)
		}
	} else {
		for i := 0; i < r; i++ {
			for j := 0; j < c; j++ {
				d.data[i*c+j] = g.At(i, j)
			}
		}
	}
	if err = d.checkFinite(opFromGonum); err != nil {
		return nil, err
	}

	return d, nil
}

// Formatted returns a fmt.Formatter that pretty-prints m with aligned
// columns (gonum's mat.Formatted). prefix is written before every line
// after the first. Falls back to String for empty matrices.
func Formatted(m *Dense, prefix string) fmt.Formatter {
	g, err := m.ToGonum()
	if err != nil {
		return plainFormatter{m: m}
	}

	return mat.Formatted(g, mat.Prefix(prefix), mat.Squeeze())
}

// plainFormatter adapts Dense.String to fmt.Formatter.
type plainFormatter struct{ m *Dense }

func (p plainFormatter) Format(f fmt.State, _ rune) {
	_, _ = fmt.Fprint(f, p.m.String())
}
