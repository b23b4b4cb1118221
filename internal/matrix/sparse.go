package matrix

import "fmt"

// Sparse is a compressed sparse row (CSR) matrix. Only explicit entries are
// stored; every other element is an implicit zero.
type Sparse struct {
	rows, cols int
	values     []float64
	colIndex   []int
	rowPtr     []int // len rows+1; entries of row i live in [rowPtr[i], rowPtr[i+1])
}

// NewSparse creates an empty sparse matrix with the given dimensions.
func NewSparse(rows, cols int) (*Sparse, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("NewSparse(%d, %d): %w", rows, cols, ErrInvalidShape)
	}
	return &Sparse{
		rows:   rows,
		cols:   cols,
		rowPtr: make([]int, rows+1),
	}, nil
}

// SparseFromRows builds a sparse matrix from a raw nested slice,
// storing only the nonzero elements.
func SparseFromRows(rows [][]float64) (*Sparse, error) {
	d, err := FromRows(rows)
	if err != nil {
		return nil, fmt.Errorf("SparseFromRows: %w", err)
	}
	return FromDense(d), nil
}

// FromDense converts a dense matrix to sparse form, dropping zeros.
func FromDense(d *Dense) *Sparse {
	b := NewSparseBuilder(d.rows, d.cols)
	for i := 0; i < d.rows; i++ {
		for j := 0; j < d.cols; j++ {
			if v := d.data[i*d.cols+j]; v != 0 {
				b.Append(i, j, v)
			}
		}
	}
	return b.Build()
}

// Rows returns the number of rows.
func (s *Sparse) Rows() int { return s.rows }

// Cols returns the number of columns.
func (s *Sparse) Cols() int { return s.cols }

// NNZ returns the number of explicitly stored entries.
func (s *Sparse) NNZ() int { return len(s.values) }

// At returns the logical element at (i, j), zero when no entry is stored.
// Panics on out-of-range indices.
func (s *Sparse) At(i, j int) float64 {
	if i < 0 || i >= s.rows || j < 0 || j >= s.cols {
		panic(fmt.Sprintf("matrix: index (%d, %d) out of range for %dx%d matrix",
			i, j, s.rows, s.cols))
	}
	for k := s.rowPtr[i]; k < s.rowPtr[i+1]; k++ {
		if s.colIndex[k] == j {
			return s.values[k]
		}
	}
	return 0
}

// Row returns the stored entries of row i as parallel column-index and
// value slices, in ascending column order. The slices alias internal
// storage and must not be modified.
func (s *Sparse) Row(i int) (cols []int, values []float64) {
	lo, hi := s.rowPtr[i], s.rowPtr[i+1]
	return s.colIndex[lo:hi], s.values[lo:hi]
}

// ToDense expands the matrix to dense form.
func (s *Sparse) ToDense() *Dense {
	d := &Dense{
		rows: s.rows,
		cols: s.cols,
		data: make([]float64, s.rows*s.cols),
	}
	for i := 0; i < s.rows; i++ {
		for k := s.rowPtr[i]; k < s.rowPtr[i+1]; k++ {
			d.data[i*s.cols+s.colIndex[k]] = s.values[k]
		}
	}
	return d
}

// ToRows expands the matrix to a raw nested slice.
func (s *Sparse) ToRows() [][]float64 {
	return s.ToDense().ToRows()
}

// String renders the matrix for debugging output.
func (s *Sparse) String() string {
	return fmt.Sprintf("Sparse(%dx%d, nnz=%d)", s.rows, s.cols, s.NNZ())
}

// SparseBuilder assembles a CSR matrix from entries appended in row-major
// order. The combination algorithms produce results row by row, which makes
// ordered appending the natural construction path.
type SparseBuilder struct {
	s       *Sparse
	lastRow int
	lastCol int
}

// NewSparseBuilder creates a builder for a rows x cols sparse matrix.
// Panics on non-positive dimensions; builders are only created from shapes
// of already validated operands.
func NewSparseBuilder(rows, cols int) *SparseBuilder {
	s, err := NewSparse(rows, cols)
	if err != nil {
		panic(err)
	}
	return &SparseBuilder{s: s, lastRow: -1, lastCol: -1}
}

// Append adds an explicit entry at (i, j). Entries must arrive in strictly
// increasing row-major order; zero values are dropped.
func (b *SparseBuilder) Append(i, j int, v float64) {
	if i < b.lastRow || (i == b.lastRow && j <= b.lastCol) {
		panic(fmt.Sprintf("matrix: sparse entry (%d, %d) appended out of order after (%d, %d)",
			i, j, b.lastRow, b.lastCol))
	}
	b.lastRow, b.lastCol = i, j
	if v == 0 {
		return
	}
	b.s.values = append(b.s.values, v)
	b.s.colIndex = append(b.s.colIndex, j)
	b.s.rowPtr[i+1]++
}

// Build finalizes and returns the sparse matrix. The builder must not be
// used afterwards.
func (b *SparseBuilder) Build() *Sparse {
	for i := 1; i < len(b.s.rowPtr); i++ {
		b.s.rowPtr[i] += b.s.rowPtr[i-1]
	}
	s := b.s
	b.s = nil
	return s
}
