package studio

import (
	"fmt"

	"roomstudio/internal/config"
	"roomstudio/pkg/catalog"
	"roomstudio/pkg/resolver"
)

// BuildResolver assembles the process resolver: built-in aliases extended
// with the configured ones, wrapped in an LRU cache. Misses are logged.
func BuildResolver(cat *catalog.Catalog, cfg config.CatalogConfig) (*resolver.Cached, error) {
	aliases, err := resolver.NewAliasTable(cat, catalog.BuiltinAliases())
	if err != nil {
		return nil, fmt.Errorf("builtin aliases: %w", err)
	}
	if len(cfg.Aliases) > 0 {
		aliases, err = aliases.Extend(cat, cfg.Aliases)
		if err != nil {
			return nil, fmt.Errorf("configured aliases: %w", err)
		}
	}
	size := cfg.CacheSize
	if size <= 0 {
		size = resolver.DefaultCacheSize
	}
	return resolver.NewCached(resolver.New(cat, aliases), size)
}
