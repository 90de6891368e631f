// SPDX-License-Identifier: MIT
//
// Package regression defines the linear-regression capability consumed by
// the effect estimator, plus a reference ordinary-least-squares
// implementation over a gonum matrix.
//
// Coefficient layout: with an intercept, Coefficients[0] is the intercept
// and Coefficients[1+k] belongs to regressors[k]; with ZeroIntercept the
// intercept is omitted and Coefficients[k] belongs to regressors[k].
package regression

import "errors"

var (
	// ErrSingular indicates a rank-deficient design: collinear regressors,
	// a constant column, or fewer rows than coefficients.
	ErrSingular = errors.New("regression: singular design matrix")

	// ErrUnknownVariable indicates a target or regressor name not in the dataset.
	ErrUnknownVariable = errors.New("regression: unknown variable")

	// ErrShape indicates column names that do not match the data.
	ErrShape = errors.New("regression: names do not match data shape")

	// ErrBadRows indicates a row subset with an out-of-range index.
	ErrBadRows = errors.New("regression: row index out of range")
)

// Result is one fitted linear model.
type Result struct {
	Coefficients  []float64
	Residuals     []float64
	ZeroIntercept bool
	RSquared      float64
}

// Coefficient returns the coefficient of the k-th regressor, skipping the
// intercept when there is one.
func (r *Result) Coefficient(k int) float64 {
	if r.ZeroIntercept {
		return r.Coefficients[k]
	}

	return r.Coefficients[k+1]
}

// Regressor fits target on regressors. Implementations used by the effect
// estimator with parallelism > 1 must be safe for concurrent calls.
type Regressor interface {
	Regress(target string, regressors []string) (*Result, error)
}

// RowRegressor can also fit on a subset of rows.
type RowRegressor interface {
	Regressor
	RegressRows(target string, regressors []string, rows []int) (*Result, error)
}
