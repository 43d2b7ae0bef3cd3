package resolver

import (
	"errors"
	"fmt"
	"sort"
)

// ErrInvalidAlias is wrapped by every alias table validation failure.
var ErrInvalidAlias = errors.New("invalid alias")

// KeySet reports membership in the closed set of canonical keys.
type KeySet interface {
	Has(key string) bool
}

// AliasTable maps normalized surface forms to canonical keys. A table is
// immutable once built and safe for concurrent reads.
type AliasTable struct {
	m map[string]string
}

// NewAliasTable validates entries against keys and builds a table. Every
// alias must already be normalized, must not itself be a key, and must point
// at a key.
func NewAliasTable(keys KeySet, entries map[string]string) (*AliasTable, error) {
	m := make(map[string]string, len(entries))
	// Sorted so the first reported error is stable.
	names := make([]string, 0, len(entries))
	for a := range entries {
		names = append(names, a)
	}
	sort.Strings(names)

	for _, alias := range names {
		target := entries[alias]
		switch {
		case alias == "":
			return nil, fmt.Errorf("%w: empty alias for %q", ErrInvalidAlias, target)
		case Normalize(alias) != alias:
			return nil, fmt.Errorf("%w: %q is not normalized (want %q)", ErrInvalidAlias, alias, Normalize(alias))
		case keys.Has(alias):
			return nil, fmt.Errorf("%w: %q is a canonical key", ErrInvalidAlias, alias)
		case !keys.Has(target):
			return nil, fmt.Errorf("%w: %q maps to unknown key %q", ErrInvalidAlias, alias, target)
		}
		m[alias] = target
	}
	return &AliasTable{m: m}, nil
}

// Extend returns a new table holding t's aliases plus extra. Entries in extra
// replace existing aliases of the same name. t is left untouched.
func (t *AliasTable) Extend(keys KeySet, extra map[string]string) (*AliasTable, error) {
	merged := make(map[string]string, len(t.m)+len(extra))
	for a, k := range t.m {
		merged[a] = k
	}
	for a, k := range extra {
		merged[a] = k
	}
	return NewAliasTable(keys, merged)
}

// Lookup returns the key alias maps to.
func (t *AliasTable) Lookup(alias string) (string, bool) {
	if t == nil {
		return "", false
	}
	k, ok := t.m[alias]
	return k, ok
}

// Len returns the number of aliases.
func (t *AliasTable) Len() int {
	if t == nil {
		return 0
	}
	return len(t.m)
}
