// Package query provides support for the app layer to return result sets.
package query

import "encoding/json"

// Result is the data model used when returning a query result set.
type Result[T any] struct {
	Items []T `json:"items"`
	Total int `json:"total"`
}

// NewResult constructs a result value to return query results.
func NewResult[T any](items []T) Result[T] {
	return Result[T]{
		Items: items,
		Total: len(items),
	}
}

// Encode implements the web.Encoder interface.
func (r Result[T]) Encode() ([]byte, string, error) {
	data, err := json.Marshal(r)
	return data, "application/json", err
}
