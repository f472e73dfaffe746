// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a cache-friendly row-major buffer with the explicit index formula i*cols + j.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Keep algorithmic determinism (fixed loop orders, no map iteration).
//   - Host the in-place orthogonal update kernels (RotateColumns, ReflectRows)
//     that the QR eigensolver applies thousands of times per decomposition.
//
// Complexity quicksheet:
//   - NewDense: O(r*c) zero-init; At/Set: O(1); Clone: O(r*c);
//     RotateColumns: O(r); ReflectRows: O(r*len(w)).

package matrix

import (
	"fmt"
	"math"
	"strings"
)

// DefaultValidateNaNInf toggles strict finite-value validation in Set.
const DefaultValidateNaNInf = true

// ---------- error context tags ----------

const (
	ctxAt      = "At"            // method tag used in error wrappers
	ctxSet     = "Set"           // method tag used in error wrappers
	ctxColumn  = "Column"        // method tag used in error wrappers
	ctxRotate  = "RotateColumns" // method tag used in error wrappers
	ctxReflect = "ReflectRows"   // method tag used in error wrappers
)

// ---------- Formatting literals  ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
//
// Implementation:
//   - Stage 1: format "Dense.<method>(row,col): %w".
//
// Behavior highlights:
//   - Stable, human-friendly messages; preserves sentinel via %w.
//
// Complexity:
//   - Time O(1), Space O(1).
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a concrete row-major matrix.
//   - r,c hold dimensions (rows, cols).
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j).
//   - validateNaNInf enables NaN/Inf rejection in Set.
type Dense struct {
	r, c           int       // row and column counts (>0)
	data           []float64 // contiguous row-major storage (len == r*c)
	validateNaNInf bool      // numeric guard: reject NaN/Inf in Set when true
}

// Compile-time assertions for interface & fmt.Stringer conformance.
var (
	_ Matrix       = (*Dense)(nil)
	_ fmt.Stringer = (*Dense)(nil)
)

// NewDense creates an r×c zero matrix using row-major storage.
//
// Implementation:
//   - Stage 1: validate rows>0 && cols>0; else ErrInvalidDimensions.
//   - Stage 2: allocate zero-filled buffer and initialize policy.
//
// Behavior highlights:
//   - No panics on user errors; returns sentinel errors.
//   - Forbids empty dimensions to avoid accidental 0×0 matrices.
//
// Errors:
//   - ErrInvalidDimensions (shape contract violation).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewDense(rows, cols int) (*Dense, error) {
	// Validate shape.
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}
	// make() zero-fills deterministically.
	buf := make([]float64, rows*cols)

	return &Dense{
		r:              rows,
		c:              cols,
		data:           buf,
		validateNaNInf: DefaultValidateNaNInf,
	}, nil
}

// NewIdentity returns the n×n identity matrix.
// Errors: ErrInvalidDimensions when n <= 0.
// Complexity: O(n²).
func NewIdentity(n int) (*Dense, error) {
	m, err := NewDense(n, n)
	if err != nil {
		return nil, err
	}
	var i int
	for i = 0; i < n; i++ {
		m.data[i*n+i] = 1.0 // unit diagonal
	}

	return m, nil
}

// NewFromRows copies a row-major [][]float64 into a fresh Dense.
//
// Implementation:
//   - Stage 1: reject empty input (ErrInvalidDimensions).
//   - Stage 2: reject ragged rows (ErrDimensionMismatch) and non-finite values (ErrNaNInf).
//   - Stage 3: copy row by row.
//
// Notes:
//   - The input slices are never retained; later edits by the caller do not
//     leak into the returned matrix.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewFromRows(rows [][]float64) (*Dense, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrInvalidDimensions
	}
	r, c := len(rows), len(rows[0])
	m, err := NewDense(r, c)
	if err != nil {
		return nil, err
	}
	var i, j int
	for i = 0; i < r; i++ {
		if len(rows[i]) != c {
			return nil, denseErrorf("NewFromRows", i, len(rows[i]), ErrDimensionMismatch)
		}
		for j = 0; j < c; j++ {
			if isNonFinite(rows[i][j]) {
				return nil, denseErrorf("NewFromRows", i, j, ErrNaNInf)
			}
		}
		copy(m.data[i*c:(i+1)*c], rows[i]) // contiguous row copy
	}

	return m, nil
}

// Rows returns the row count. No side effects.
// Complexity: O(1).
func (m *Dense) Rows() int { return m.r }

// Cols returns the column count. No side effects.
// Complexity: O(1).
func (m *Dense) Cols() int { return m.c }

// Shape packs Rows() and Cols() into a single call for convenience.
// Complexity: O(1).
func (m *Dense) Shape() (rows, cols int) { return m.r, m.c }

// indexOf computes the row-major offset or returns ErrOutOfRange.
// Public methods (At/Set) wrap the sentinel with coordinates and method name.
func (m *Dense) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.r {
		return 0, ErrOutOfRange
	}
	if col < 0 || col >= m.c {
		return 0, ErrOutOfRange
	}

	// Row-major offset: i*c + j.
	return row*m.c + col, nil
}

// At returns the value at (row, col) or ErrOutOfRange.
//
// Behavior highlights:
//   - Never panics on out-of-range; returns sentinel error.
//
// Complexity:
//   - Time O(1), Space O(1).
func (m *Dense) At(row, col int) (float64, error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		return 0, denseErrorf(ctxAt, row, col, err) // wrap with context
	}

	return m.data[off], nil
}

// Set stores v at (row, col) or returns an error (bounds or numeric policy).
//
// Implementation:
//   - Stage 1: compute offset via indexOf (bounds check).
//   - Stage 2: enforce numeric policy (reject NaN/±Inf when enabled).
//   - Stage 3: write into flat buffer.
//
// Errors:
//   - ErrOutOfRange, ErrNaNInf.
//
// Complexity:
//   - Time O(1), Space O(1).
func (m *Dense) Set(row, col int, v float64) error {
	off, err := m.indexOf(row, col)
	if err != nil {
		return denseErrorf(ctxSet, row, col, err)
	}
	if m.validateNaNInf && isNonFinite(v) {
		return denseErrorf(ctxSet, row, col, ErrNaNInf)
	}
	m.data[off] = v

	return nil
}

// Clone returns a deep copy of the Dense matrix, preserving the numeric policy.
// Complexity: O(r*c) time and memory.
func (m *Dense) Clone() Matrix {
	cp := make([]float64, len(m.data))
	copy(cp, m.data)

	return &Dense{r: m.r, c: m.c, data: cp, validateNaNInf: m.validateNaNInf}
}

// String implements fmt.Stringer for easy debugging.
// Complexity: O(r*c).
func (m *Dense) String() string {
	var (
		sb   strings.Builder
		i, j int
	)
	for i = 0; i < m.r; i++ {
		sb.WriteString(_fmtRowOpen)
		for j = 0; j < m.c; j++ {
			sb.WriteString(fmt.Sprintf("%g", m.data[i*m.c+j]))
			if j < m.c-1 {
				sb.WriteString(_fmtSep)
			}
		}
		sb.WriteString(_fmtRowClose)
	}

	return sb.String()
}

// Column returns a copy of column j.
// Errors: ErrOutOfRange when j is outside [0, Cols()).
// Complexity: O(r).
func (m *Dense) Column(j int) ([]float64, error) {
	if j < 0 || j >= m.c {
		return nil, denseErrorf(ctxColumn, 0, j, ErrOutOfRange)
	}
	out := make([]float64, m.r)
	var i int
	for i = 0; i < m.r; i++ {
		out[i] = m.data[i*m.c+j]
	}

	return out, nil
}

// RotateColumns applies a plane rotation to columns i and j in place:
//
//	col_i, col_j = c·col_i − s·col_j, s·col_i + c·col_j
//
// This is right-multiplication by the transpose of the Givens rotation
// G(i,j,c,s) whose (i,i),(i,j),(j,i),(j,j) block is [[c,−s],[s,c]].
//
// Implementation:
//   - Stage 1: bounds-check both column indices.
//   - Stage 2: walk rows once, updating the two entries per row.
//
// Behavior highlights:
//   - Rows are independent; the update preserves column orthonormality up to
//     rounding when c²+s² = 1.
//
// Errors:
//   - ErrOutOfRange for invalid column indices.
//
// Complexity:
//   - Time O(r), Space O(1).
func (m *Dense) RotateColumns(i, j int, c, s float64) error {
	if i < 0 || i >= m.c {
		return denseErrorf(ctxRotate, i, j, ErrOutOfRange)
	}
	if j < 0 || j >= m.c {
		return denseErrorf(ctxRotate, i, j, ErrOutOfRange)
	}
	var (
		row, base int
		vi, vj    float64
	)
	for row = 0; row < m.r; row++ {
		base = row * m.c
		vi, vj = m.data[base+i], m.data[base+j]
		m.data[base+i] = c*vi - s*vj
		m.data[base+j] = s*vi + c*vj
	}

	return nil
}

// ReflectRows right-multiplies the column block [col0, col0+len(w)) by the
// Householder reflector P = I − 2·w·wᵗ/(wᵗw). Each row x of the block is
// replaced by x − 2·(w·x)/(wᵗw)·w.
//
// Implementation:
//   - Stage 1: bounds-check the block.
//   - Stage 2: compute wᵗw once; return early when it is zero (identity reflector).
//   - Stage 3: update every row with one dot product and one axpy.
//
// Errors:
//   - ErrOutOfRange when the block does not fit inside the matrix.
//
// Complexity:
//   - Time O(r*len(w)), Space O(1).
func (m *Dense) ReflectRows(col0 int, w []float64) error {
	if col0 < 0 || col0+len(w) > m.c {
		return denseErrorf(ctxReflect, 0, col0, ErrOutOfRange)
	}
	var (
		row, k, base int
		wtw, dot     float64
		factor       float64
	)
	for k = range w {
		wtw += w[k] * w[k]
	}
	if wtw == 0 {
		return nil // zero reflector is the identity
	}
	for row = 0; row < m.r; row++ {
		base = row*m.c + col0
		dot = 0
		for k = range w {
			dot += w[k] * m.data[base+k]
		}
		factor = 2 * dot / wtw
		for k = range w {
			m.data[base+k] -= factor * w[k]
		}
	}

	return nil
}

// isNonFinite reports NaN or ±Inf.
func isNonFinite(x float64) bool { return math.IsNaN(x) || math.IsInf(x, 0) }
