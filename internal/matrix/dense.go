package matrix

import "fmt"

// Dense is a row-major dense matrix backed by a single flat buffer.
type Dense struct {
	rows, cols int
	data       []float64
}

// NewDense creates a zero-filled dense matrix with the given dimensions.
func NewDense(rows, cols int) (*Dense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("NewDense(%d, %d): %w", rows, cols, ErrInvalidShape)
	}
	return &Dense{
		rows: rows,
		cols: cols,
		data: make([]float64, rows*cols),
	}, nil
}

// FromRows wraps a raw nested slice into a dense matrix.
// The input must be rectangular and non-empty.
//
// This is the construction path used to route Array-typed dispatch
// arguments through the matrix engines.
func FromRows(rows [][]float64) (*Dense, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, fmt.Errorf("FromRows: empty input: %w", ErrInvalidShape)
	}
	cols := len(rows[0])
	d := &Dense{
		rows: len(rows),
		cols: cols,
		data: make([]float64, len(rows)*cols),
	}
	for i, row := range rows {
		if len(row) != cols {
			return nil, fmt.Errorf("FromRows: row %d has %d columns, want %d: %w",
				i, len(row), cols, ErrRagged)
		}
		copy(d.data[i*cols:], row)
	}
	return d, nil
}

// Rows returns the number of rows.
func (d *Dense) Rows() int { return d.rows }

// Cols returns the number of columns.
func (d *Dense) Cols() int { return d.cols }

// At returns the element at (i, j). Panics on out-of-range indices.
func (d *Dense) At(i, j int) float64 {
	d.check(i, j)
	return d.data[i*d.cols+j]
}

// Set stores v at (i, j). Panics on out-of-range indices.
func (d *Dense) Set(i, j int, v float64) {
	d.check(i, j)
	d.data[i*d.cols+j] = v
}

func (d *Dense) check(i, j int) {
	if i < 0 || i >= d.rows || j < 0 || j >= d.cols {
		panic(fmt.Sprintf("matrix: index (%d, %d) out of range for %dx%d matrix",
			i, j, d.rows, d.cols))
	}
}

// Data returns the underlying row-major buffer.
// WARNING: direct access to backing memory; mutations are visible to the
// matrix. Engines use this for flat elementwise loops.
func (d *Dense) Data() []float64 { return d.data }

// ToRows unwraps the matrix back into a raw nested slice.
// Used for Array-to-Array dispatch signatures whose result must be a raw
// sequence rather than a matrix value.
func (d *Dense) ToRows() [][]float64 {
	out := make([][]float64, d.rows)
	for i := 0; i < d.rows; i++ {
		row := make([]float64, d.cols)
		copy(row, d.data[i*d.cols:(i+1)*d.cols])
		out[i] = row
	}
	return out
}

// Clone returns a deep copy of the matrix.
func (d *Dense) Clone() *Dense {
	data := make([]float64, len(d.data))
	copy(data, d.data)
	return &Dense{rows: d.rows, cols: d.cols, data: data}
}

// Equal reports whether two dense matrices have identical shape and elements.
func (d *Dense) Equal(other *Dense) bool {
	if d.rows != other.rows || d.cols != other.cols {
		return false
	}
	for i, v := range d.data {
		if v != other.data[i] {
			return false
		}
	}
	return true
}

// String renders the matrix for debugging output.
func (d *Dense) String() string {
	return fmt.Sprintf("Dense(%dx%d)%v", d.rows, d.cols, d.ToRows())
}
