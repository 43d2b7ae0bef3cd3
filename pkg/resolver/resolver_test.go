package resolver

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"roomstudio/pkg/catalog"
)

type miss struct{ raw, normalized string }

type recorder struct {
	mu     sync.Mutex
	misses []miss
}

func (r *recorder) Unresolved(raw, normalized string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.misses = append(r.misses, miss{raw, normalized})
}

func newCatalogResolver(t *testing.T, opts ...Option) *TypeResolver {
	t.Helper()
	cat := catalog.Default()
	aliases, err := NewAliasTable(cat, catalog.BuiltinAliases())
	require.NoError(t, err)
	return New(cat, aliases, opts...)
}

func TestResolve_IdentityOnKeys(t *testing.T) {
	r := newCatalogResolver(t, WithObserver(nil))
	for _, k := range catalog.Default().KeyStrings() {
		assert.Equal(t, k, r.Resolve(k))
	}
}

func TestResolve_Aliases(t *testing.T) {
	r := newCatalogResolver(t, WithObserver(nil))
	for alias, key := range catalog.BuiltinAliases() {
		assert.Equalf(t, key, r.Resolve(alias), "alias %q", alias)
	}
}

func TestResolve_Plurals(t *testing.T) {
	r := newCatalogResolver(t, WithObserver(nil))
	for _, k := range catalog.Default().KeyStrings() {
		assert.Equal(t, k, r.Resolve(k+"s"))
		assert.Equal(t, k, r.Resolve(k+"_s"))
	}
}

func TestResolve_CaseAndSeparatorInsensitive(t *testing.T) {
	r := newCatalogResolver(t, WithObserver(nil))
	want := r.Resolve("coffee_table")
	assert.Equal(t, "table", want)
	for _, in := range []string{"Coffee-Table", "coffee table", "COFFEE_TABLE", "  coffee -- table!"} {
		assert.Equalf(t, want, r.Resolve(in), "input %q", in)
	}
}

func TestResolve_Scenarios(t *testing.T) {
	r := newCatalogResolver(t, WithObserver(nil))
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"alias after normalization", "Nightstand", "side_table"},
		{"hyphenated alias", "floor-lamp", "lamp"},
		{"plural alias", "Accent Chairs", "chair"},
		{"word scan hits key", "Queen Bed Frame", "bed"},
		{"word scan hits alias", "modern_leather_armchair", "chair"},
		{"underscore plural", "tv_stand_s", "tv_stand"},
		{"earliest word wins over later key", "rustic_couch_table", "sofa"},
		{"exact beats word scan", "side_table", "side_table"},
		{"alias beats singular", "shelves", "bookshelf"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, r.Resolve(tt.in))
		})
	}
}

func TestResolve_UnresolvedReturnsNormalizedToken(t *testing.T) {
	rec := &recorder{}
	r := newCatalogResolver(t, WithObserver(rec))

	got := r.Resolve("Xyzzy Unknown-Item")
	assert.Equal(t, "xyzzy_unknown_item", got)
	assert.False(t, catalog.Default().Has(got))
	assert.Equal(t, "xyzzy_unknown_item", r.Resolve("xyzzy_unknown_item"))

	require.Len(t, rec.misses, 2)
	assert.Equal(t, miss{"Xyzzy Unknown-Item", "xyzzy_unknown_item"}, rec.misses[0])
}

func TestResolve_Empty(t *testing.T) {
	rec := &recorder{}
	r := newCatalogResolver(t, WithObserver(rec))
	assert.Equal(t, "", r.Resolve(""))
	assert.Empty(t, rec.misses, "empty input is not a miss")
}

func TestResolve_OnlyPunctuation(t *testing.T) {
	rec := &recorder{}
	r := newCatalogResolver(t, WithObserver(rec))
	assert.Equal(t, "", r.Resolve("!!!"))
	assert.Len(t, rec.misses, 1)
}

func TestResolve_Idempotent(t *testing.T) {
	r := newCatalogResolver(t, WithObserver(nil))
	for _, in := range append(catalog.Default().KeyStrings(), "Queen Bed Frame", "Accent Chairs", "hammock thing") {
		once := r.Resolve(in)
		assert.Equal(t, once, r.Resolve(once))
	}
}

func TestLookup_ReportsKnown(t *testing.T) {
	r := newCatalogResolver(t, WithObserver(nil))
	k, ok := r.Lookup("Sofas")
	assert.True(t, ok)
	assert.Equal(t, "sofa", k)

	k, ok = r.Lookup("Couch")
	assert.True(t, ok)
	assert.Equal(t, "sofa", k)

	// Only one plural suffix is stripped: "couches" -> "couche", which is
	// neither a key nor an alias.
	k, ok = r.Lookup("Couches")
	assert.False(t, ok)
	assert.Equal(t, "couches", k)

	k, ok = r.Lookup("hammock")
	assert.False(t, ok)
	assert.Equal(t, "hammock", k)
}

func TestResolve_IsolatedKeySet(t *testing.T) {
	keys := stubKeys{"widget": true}
	aliases, err := NewAliasTable(keys, map[string]string{"gizmo": "widget"})
	require.NoError(t, err)
	r := New(keys, aliases, WithObserver(nil))
	assert.Equal(t, "widget", r.Resolve("Gizmos"))
	assert.Equal(t, "widget", r.Resolve("blue gizmo"))
	assert.Equal(t, "sofa", r.Resolve("Sofa"), "sofa is unknown here so stays normalized")
}

func TestResolve_NilAliasTable(t *testing.T) {
	r := New(stubKeys{"widget": true}, nil, WithObserver(nil))
	assert.Equal(t, "widget", r.Resolve("Widgets"))
}

func TestResolve_Concurrent(t *testing.T) {
	r := newCatalogResolver(t, WithObserver(&recorder{}))
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.Equal(t, "side_table", r.Resolve("Nightstand"))
			assert.Equal(t, "mystery", r.Resolve("Mystery"))
		}()
	}
	wg.Wait()
}

type stubKeys map[string]bool

func (s stubKeys) Has(k string) bool { return s[k] }
