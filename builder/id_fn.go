// SPDX-License-Identifier: MIT
// Package: causal/builder
//
// id_fn.go - node naming schemes.
//
// IDFn maps a zero-based index to a node name. Schemes panic on indices
// they cannot represent; constructors only pass indices in [0, n).

package builder

import (
	"fmt"
	"strconv"
)

// IDFn maps an index to a node name.
type IDFn func(idx int) string

// DefaultIDFn renders idx in base 10 ("0","1",…).
func DefaultIDFn(idx int) string {
	return strconv.Itoa(idx)
}

// SymbolIDFn maps 0..25 to "A".."Z". Panics outside that range.
func SymbolIDFn(idx int) string {
	if idx < 0 || idx > 25 {
		panic(fmt.Sprintf("SymbolIDFn: idx must be in [0,25], got %d", idx))
	}
	return string('A' + rune(idx))
}

// ExcelColumnIDFn maps idx to spreadsheet column names ("A",…,"Z","AA",…).
// Panics on negative idx.
func ExcelColumnIDFn(idx int) string {
	if idx < 0 {
		panic(fmt.Sprintf("ExcelColumnIDFn: idx must be ≥ 0, got %d", idx))
	}
	var runes []rune
	for i := idx; i >= 0; i = i/26 - 1 {
		runes = append(runes, 'A'+rune(i%26))
	}
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}

	return string(runes)
}

// VariableIDFn names nodes prefix1, prefix2, … (one-based, as in "X1", "X2").
func VariableIDFn(prefix string) IDFn {
	return func(idx int) string {
		if idx < 0 {
			panic(fmt.Sprintf("VariableIDFn: idx must be ≥ 0, got %d", idx))
		}
		return prefix + strconv.Itoa(idx+1)
	}
}

// WithVariableIDs names nodes prefix1, prefix2, ….
func WithVariableIDs(prefix string) BuilderOption {
	return WithIDScheme(VariableIDFn(prefix))
}

// WithSymbolIDs names nodes "A".."Z".
func WithSymbolIDs() BuilderOption {
	return WithIDScheme(SymbolIDFn)
}

// WithExcelColumnIDs names nodes "A",…,"Z","AA",….
func WithExcelColumnIDs() BuilderOption {
	return WithIDScheme(ExcelColumnIDFn)
}
