// Package api holds the JSON envelope shared by the HTTP handlers and the
// REST client.
package api

import "encoding/json"

type Response[T any] struct {
	Status  bool   `json:"status"`
	Message string `json:"message"`
	Body    T      `json:"body,omitempty"`
}

type ListBody[T any] struct {
	List  []T    `json:"list"`
	Total uint64 `json:"total"`
}

// NewListBody never returns a nil list so that clients always see [].
func NewListBody[T any](list []T) ListBody[T] {
	if list == nil {
		list = make([]T, 0)
	}
	return ListBody[T]{List: list, Total: uint64(len(list))}
}

// RawResponse is used when the body shape depends on the outcome
// (for example validation details on failure).
type RawResponse = Response[json.RawMessage]
