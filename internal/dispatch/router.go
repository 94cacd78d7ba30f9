// Package dispatch routes typed storefront commands to their handlers.
//
// Router replaces a manual switch over command kinds. Handlers are
// registered with .On() and looked up by the kind reported for each
// command, so the set of supported kinds is derived from the registrations.
package dispatch

import (
	"fmt"
	"strings"
)

// Handler applies one command to the state it is dispatched against.
type Handler[S any, C any] func(state *S, cmd C) error

type entry[K comparable, S any, C any] struct {
	kind    K
	handler Handler[S, C]
}

// Router dispatches commands to handlers by kind.
//
// Example:
//
//	router := dispatch.NewRouter[Kind, Controller, Command](Command.KindOf).
//	    On(KindAdd, handleAdd).
//	    On(KindClear, handleClear)
//
//	err := router.Dispatch(controller, cmd)
type Router[K comparable, S any, C any] struct {
	kindOf  func(C) K
	entries []entry[K, S, C]
}

// NewRouter creates a router. kindOf extracts the routing kind from a
// command.
func NewRouter[K comparable, S any, C any](kindOf func(C) K) *Router[K, S, C] {
	return &Router[K, S, C]{kindOf: kindOf}
}

// On registers a handler for a command kind. Later registrations for the
// same kind are never reached.
func (r *Router[K, S, C]) On(kind K, handler Handler[S, C]) *Router[K, S, C] {
	r.entries = append(r.entries, entry[K, S, C]{kind, handler})
	return r
}

// Dispatch calls the handler registered for the command's kind.
func (r *Router[K, S, C]) Dispatch(state *S, cmd C) error {
	kind := r.kindOf(cmd)
	for _, e := range r.entries {
		if e.kind == kind {
			return e.handler(state, cmd)
		}
	}
	return NewInvalidArgumentf("%s: %v (supported: %s)", ErrMsgUnknownCommand, kind, r.kindList())
}

// Kinds returns registered command kinds in registration order.
func (r *Router[K, S, C]) Kinds() []K {
	result := make([]K, len(r.entries))
	for i, e := range r.entries {
		result[i] = e.kind
	}
	return result
}

func (r *Router[K, S, C]) kindList() string {
	names := make([]string, 0, len(r.entries))
	for _, k := range r.Kinds() {
		names = append(names, fmt.Sprint(k))
	}
	return strings.Join(names, ", ")
}
