// Package lvmat is a small, dependency-light toolkit for dense linear
// algebra over float64: vectors, row-major matrices and the operations
// classic machine-learning code is built from.
//
// What is inside:
//
//	matrix/        - Vector operations, the Dense matrix, elementwise and
//	                 multiplication kernels, column composition, min-max
//	                 scaling, row transforms, Gauss-Jordan inversion and a
//	                 gonum bridge
//	matrix/rowgen/ - seeded RowGenerator implementations (uniform and
//	                 zero-biased) for RandomInit
//	cmd/linalg/    - a command-line calculator over the matrix package
//
// Every operation validates its operands and returns an error matching a
// matrix sentinel (errors.Is) instead of panicking or truncating.
//
// Quick example:
//
//	a, _ := matrix.NewFromRows([][]float64{{4, 7}, {2, 6}})
//	inv, _ := a.Invert()
//	fmt.Print(inv) // 0.6 -0.7
//	               // -0.2 0.4
//
//	go get github.com/katalvlaran/lvmat
package lvmat
