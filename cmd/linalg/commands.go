// SPDX-License-Identifier: MIT

package main

import (
	"math"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvmat/matrix"
)

func invertCmd(o *globalOptions) *cobra.Command {
	var pivoting bool
	var tol float64
	cmd := &cobra.Command{
		Use:   "invert MATRIX",
		Short: "Invert a square matrix (Gauss-Jordan)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := parseMatrix(args[0])
			if err != nil {
				return err
			}
			if tol < 0 || math.IsNaN(tol) || math.IsInf(tol, 0) {
				return &matrix.ArgumentError{Op: "invert", Name: "tol", Value: tol}
			}
			opts := []matrix.Option{matrix.WithPivotTolerance(tol)}
			if pivoting {
				opts = append(opts, matrix.WithPartialPivoting())
			}
			log.Debug().Int("n", m.Rows()).Bool("pivoting", pivoting).Float64("tol", tol).Msg("invert")
			inv, err := matrix.Inverse(m, opts...)
			if err != nil {
				return err
			}

			return renderMatrix(cmd.OutOrStdout(), inv, o)
		},
	}
	cmd.Flags().BoolVar(&pivoting, "pivot", false, "use partial pivoting")
	cmd.Flags().Float64Var(&tol, "tol", matrix.DefaultPivotTolerance, "treat |pivot| <= tol as zero")

	return cmd
}

// binaryMatrixCmd wires a two-operand matrix kernel.
func binaryMatrixCmd(o *globalOptions, use, short string, op func(a, b matrix.Matrix) (*matrix.Dense, error)) *cobra.Command {
	return &cobra.Command{
		Use:   use + " A B",
		Short: short,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := parseMatrix(args[0])
			if err != nil {
				return err
			}
			b, err := parseMatrix(args[1])
			if err != nil {
				return err
			}
			log.Debug().Str("op", use).Stringer("a", shape(a)).Stringer("b", shape(b)).Msg("binary op")
			res, err := op(a, b)
			if err != nil {
				return err
			}

			return renderMatrix(cmd.OutOrStdout(), res, o)
		},
	}
}

func mulCmd(o *globalOptions) *cobra.Command {
	return binaryMatrixCmd(o, "mul", "Matrix product A·B", matrix.Mul)
}

func mulTransposedCmd(o *globalOptions) *cobra.Command {
	return binaryMatrixCmd(o, "mul-transposed", "Product with transposed right operand A·Bᵀ", matrix.MulTransposed)
}

func xtxCmd(o *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "xtx MATRIX",
		Short: "Compute Xᵀ·X",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := parseMatrix(args[0])
			if err != nil {
				return err
			}
			res, err := matrix.XTX(m)
			if err != nil {
				return err
			}

			return renderMatrix(cmd.OutOrStdout(), res, o)
		},
	}
}

func outerCmd(o *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "outer V1 V2",
		Short: "Outer product of two vectors",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			v1, err := parseVector(args[0])
			if err != nil {
				return err
			}
			v2, err := parseVector(args[1])
			if err != nil {
				return err
			}
			res, err := matrix.OuterProduct(v1, v2)
			if err != nil {
				return err
			}

			return renderMatrix(cmd.OutOrStdout(), res, o)
		},
	}
}

func scaleCmd(o *globalOptions) *cobra.Command {
	var lower, upper float64
	cmd := &cobra.Command{
		Use:   "scale MATRIX",
		Short: "Min-max scale every column into [lower, upper]",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := parseMatrix(args[0])
			if err != nil {
				return err
			}
			if err = m.ScaleRange(lower, upper); err != nil {
				return err
			}

			return renderMatrix(cmd.OutOrStdout(), m, o)
		},
	}
	cmd.Flags().Float64Var(&lower, "lower", 0, "lower bound")
	cmd.Flags().Float64Var(&upper, "upper", 1, "upper bound")

	return cmd
}

func normCmd(o *globalOptions) *cobra.Command {
	var p float64
	var inf bool
	cmd := &cobra.Command{
		Use:   "norm VECTOR",
		Short: "p-norm of a vector",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := parseVector(args[0])
			if err != nil {
				return err
			}
			if inf {
				p = math.Inf(1)
			}
			n, err := matrix.Norm(v, p)
			if err != nil {
				return err
			}

			return renderScalar(cmd.OutOrStdout(), n, o)
		},
	}
	cmd.Flags().Float64Var(&p, "p", 2, "norm order (>= 1)")
	cmd.Flags().BoolVar(&inf, "inf", false, "max-norm (overrides --p)")

	return cmd
}

func distCmd(o *globalOptions) *cobra.Command {
	var squared bool
	cmd := &cobra.Command{
		Use:   "dist V1 V2",
		Short: "Euclidean distance between two vectors",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			v1, err := parseVector(args[0])
			if err != nil {
				return err
			}
			v2, err := parseVector(args[1])
			if err != nil {
				return err
			}
			dist := matrix.EuclideanDist
			if squared {
				dist = matrix.SquareDist
			}
			d, err := dist(v1, v2)
			if err != nil {
				return err
			}

			return renderScalar(cmd.OutOrStdout(), d, o)
		},
	}
	cmd.Flags().BoolVar(&squared, "squared", false, "report the squared distance")

	return cmd
}

// shape adapts a matrix to fmt.Stringer for log fields.
func shape(m *matrix.Dense) matrix.Shape {
	r, c := m.Shape()

	return matrix.Shape{Rows: r, Cols: c}
}
