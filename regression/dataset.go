// File: dataset.go
// Role: Reference OLS over named columns of a gonum matrix.
// Concurrency:
//   - A Dataset is immutable after construction; Regress may be called concurrently.

package regression

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

// conditionLimit bounds the condition number of R accepted from the QR
// factorization before the design is treated as singular.
const conditionLimit = 1e12

// Option configures a Dataset.
type Option func(*Dataset)

// WithZeroIntercept fits models through the origin.
func WithZeroIntercept() Option {
	return func(d *Dataset) { d.zeroIntercept = true }
}

// Dataset is a samples×variables matrix with named columns.
type Dataset struct {
	names         []string
	index         map[string]int
	data          *mat.Dense
	zeroIntercept bool
}

var _ RowRegressor = (*Dataset)(nil)

// NewDataset wraps data, whose columns are named by names in order.
// Returns ErrShape if the counts differ or a name repeats.
func NewDataset(names []string, data *mat.Dense, opts ...Option) (*Dataset, error) {
	_, c := data.Dims()
	if len(names) != c {
		return nil, fmt.Errorf("%w: %d names for %d columns", ErrShape, len(names), c)
	}
	d := &Dataset{
		names: append([]string(nil), names...),
		index: make(map[string]int, c),
		data:  data,
	}
	for i, n := range names {
		if _, dup := d.index[n]; dup {
			return nil, fmt.Errorf("%w: duplicate column %q", ErrShape, n)
		}
		d.index[n] = i
	}
	for _, opt := range opts {
		opt(d)
	}

	return d, nil
}

// NewDatasetFromRows copies rows (each of len(names)) into a new matrix.
func NewDatasetFromRows(names []string, rows [][]float64, opts ...Option) (*Dataset, error) {
	flat := make([]float64, 0, len(rows)*len(names))
	for i, row := range rows {
		if len(row) != len(names) {
			return nil, fmt.Errorf("%w: row %d has %d values, want %d", ErrShape, i, len(row), len(names))
		}
		flat = append(flat, row...)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: no rows", ErrShape)
	}

	return NewDataset(names, mat.NewDense(len(rows), len(names), flat), opts...)
}

// Names returns the column names in order.
func (d *Dataset) Names() []string { return append([]string(nil), d.names...) }

// Rows returns the number of samples.
func (d *Dataset) Rows() int {
	r, _ := d.data.Dims()
	return r
}

// Regress fits target on regressors over every row.
func (d *Dataset) Regress(target string, regressors []string) (*Result, error) {
	return d.RegressRows(target, regressors, nil)
}

// RegressRows fits target on regressors over the given rows; nil means all.
//
// Implementation:
//   - Stage 1: Resolve columns and rows.
//   - Stage 2: Build the design X (leading ones column unless zero-intercept) and y.
//   - Stage 3: QR-factorize X; reject ill-conditioned R as ErrSingular.
//   - Stage 4: Solve the least-squares system, then residuals and R².
func (d *Dataset) RegressRows(target string, regressors []string, rows []int) (*Result, error) {
	ty, ok := d.index[target]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownVariable, target)
	}
	cols := make([]int, len(regressors))
	for k, name := range regressors {
		if cols[k], ok = d.index[name]; !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownVariable, name)
		}
	}
	if rows == nil {
		rows = make([]int, d.Rows())
		for i := range rows {
			rows[i] = i
		}
	}
	for _, r := range rows {
		if r < 0 || r >= d.Rows() {
			return nil, fmt.Errorf("%w: %d", ErrBadRows, r)
		}
	}

	offset := 1
	if d.zeroIntercept {
		offset = 0
	}
	n, p := len(rows), len(cols)+offset
	if p == 0 {
		return nil, fmt.Errorf("%w: no coefficients to fit", ErrSingular)
	}
	if n < p {
		return nil, fmt.Errorf("%w: %d rows for %d coefficients", ErrSingular, n, p)
	}

	x := mat.NewDense(n, p, nil)
	y := mat.NewVecDense(n, nil)
	for i, r := range rows {
		if offset == 1 {
			x.Set(i, 0, 1)
		}
		for k, c := range cols {
			x.Set(i, k+offset, d.data.At(r, c))
		}
		y.SetVec(i, d.data.At(r, ty))
	}

	var qr mat.QR
	qr.Factorize(x)
	if cond := qr.Cond(); math.IsInf(cond, 0) || math.IsNaN(cond) || cond > conditionLimit {
		return nil, fmt.Errorf("%w: condition number %g", ErrSingular, cond)
	}
	var beta mat.VecDense
	if err := qr.SolveVecTo(&beta, false, y); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSingular, err)
	}

	var fitted mat.VecDense
	fitted.MulVec(x, &beta)
	res := &Result{
		Coefficients:  make([]float64, p),
		Residuals:     make([]float64, n),
		ZeroIntercept: d.zeroIntercept,
	}
	estimates := make([]float64, n)
	values := make([]float64, n)
	for i := 0; i < n; i++ {
		estimates[i] = fitted.AtVec(i)
		values[i] = y.AtVec(i)
		res.Residuals[i] = values[i] - estimates[i]
	}
	for k := 0; k < p; k++ {
		res.Coefficients[k] = beta.AtVec(k)
	}
	res.RSquared = stat.RSquaredFrom(estimates, values, nil)

	return res, nil
}
