// Package resolver turns free-form furniture labels into canonical catalog
// keys.
package resolver

import (
	"strings"

	"roomstudio/pkg/logger"
)

// Observer is told about labels that matched no key.
type Observer interface {
	Unresolved(raw, normalized string)
}

// ObserverFunc adapts a function to Observer.
type ObserverFunc func(raw, normalized string)

func (f ObserverFunc) Unresolved(raw, normalized string) { f(raw, normalized) }

// LogObserver reports misses through the process logger.
var LogObserver Observer = ObserverFunc(func(raw, normalized string) {
	logger.Warn("No catalog match for label, generic model will be used", "label", raw, "normalized", normalized)
})

// Option configures a TypeResolver.
type Option func(*TypeResolver)

// WithObserver replaces the default LogObserver. A nil observer silences
// diagnostics.
func WithObserver(o Observer) Option {
	return func(r *TypeResolver) { r.observer = o }
}

// TypeResolver maps labels to keys using exact, alias, singular and per-word
// matching, in that order. It holds no mutable state and is safe for
// concurrent use.
type TypeResolver struct {
	keys     KeySet
	aliases  *AliasTable
	observer Observer
}

// New builds a resolver over keys and aliases.
func New(keys KeySet, aliases *AliasTable, opts ...Option) *TypeResolver {
	r := &TypeResolver{keys: keys, aliases: aliases, observer: LogObserver}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Resolve returns the key raw resolves to. Unmatched labels come back
// normalized; empty input comes back unchanged.
func (r *TypeResolver) Resolve(raw string) string {
	key, _ := r.Lookup(raw)
	return key
}

// Lookup is Resolve that also reports whether the result is a catalog key.
func (r *TypeResolver) Lookup(raw string) (string, bool) {
	key, ok := r.match(raw)
	if !ok && raw != "" {
		r.notify(raw, key)
	}
	return key, ok
}

// match runs the matching chain without emitting diagnostics.
func (r *TypeResolver) match(raw string) (string, bool) {
	if raw == "" {
		return raw, false
	}
	t := Normalize(raw)
	if k, ok := r.lookupOne(t); ok {
		return k, true
	}
	if s := singular(t); s != t {
		if k, ok := r.lookupOne(s); ok {
			return k, true
		}
	}
	// Earliest word wins, even if a later word is an exact key.
	for _, w := range strings.Split(t, "_") {
		if w == "" {
			continue
		}
		if k, ok := r.lookupOne(w); ok {
			return k, true
		}
	}
	return t, false
}

// lookupOne checks the key set and then the alias table.
func (r *TypeResolver) lookupOne(t string) (string, bool) {
	if r.keys.Has(t) {
		return t, true
	}
	return r.aliases.Lookup(t)
}

func (r *TypeResolver) notify(raw, normalized string) {
	if r.observer != nil {
		r.observer.Unresolved(raw, normalized)
	}
}
