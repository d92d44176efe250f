// Package transform implements the dataset exercises as pure functions.
//
// Every function reads its input without mutating it and returns freshly built
// slices, records or maps. Field access failures are reported as
// *domain.MissingFieldError carrying the index of the offending record.
package transform
