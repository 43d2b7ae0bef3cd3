package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sort"
	"syscall"

	"roomstudio/internal/config"
	"roomstudio/internal/providers/google"
	"roomstudio/internal/providers/openai"
	"roomstudio/internal/server"
	"roomstudio/internal/studio"
	"roomstudio/pkg/catalog"
	"roomstudio/pkg/logger"
	"roomstudio/pkg/recommend"
	"roomstudio/pkg/strategy"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.LoadLocalConfig()
	if err != nil {
		logger.Fatalf("Fatal parsing config: %v", err)
	}

	cat := catalog.Default()
	res, err := studio.BuildResolver(cat, cfg.Catalog)
	if err != nil {
		logger.Fatalf("Invalid catalog configuration: %v", err)
	}

	sources, modelSetters := buildSources(ctx, cfg, cat.KeyStrings())

	rm := config.NewRemoteManager(cfg.RemoteMetadata.URL, cfg.RemoteMetadata.PollInterval, modelSetters)
	rm.Start(ctx)

	suggester := strategy.NewSuggester(cfg.Suggestions)
	logger.Info("Suggestion strategy selected", "strategy", suggester.Name(), "sources", len(sources))

	svc := studio.New(cat, res,
		studio.WithOverrides(rm),
		studio.WithSuggester(suggester),
		studio.WithSources(cfg.Recommendation.TimeoutMs, sources...),
	)

	srv := server.NewServer(cat, res, svc)
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	if err := srv.Start(ctx, addr); err != nil {
		logger.Fatalf("Server stopped: %v", err)
	}
	logger.Info("Server stopped")
}

// buildSources creates a recommendation source per configured provider.
// "google" uses Gemini; every other entry is treated as an OpenAI-compatible
// endpoint (openai, deepseek, local_vllm, ...).
func buildSources(ctx context.Context, cfg *config.Config, keys []string) ([]recommend.Source, map[string]config.ModelSetter) {
	names := make([]string, 0, len(cfg.Providers))
	for name := range cfg.Providers {
		names = append(names, name)
	}
	sort.Strings(names)

	var sources []recommend.Source
	setters := make(map[string]config.ModelSetter)
	for _, name := range names {
		pCfg := cfg.Providers[name]
		switch name {
		case "google":
			if pCfg.APIKey == "" {
				logger.Warn("Skipping google provider, no api key configured")
				continue
			}
			p, err := google.NewProvider(ctx, pCfg.APIKey, pCfg.BaseURL, pCfg.DefaultModel, keys)
			if err != nil {
				logger.Error("Failed to init google provider", "error", err)
				continue
			}
			sources = append(sources, p)
			setters[name] = p
		default:
			p := openai.NewProvider(name, pCfg.APIKey, pCfg.BaseURL, pCfg.DefaultModel, keys)
			sources = append(sources, p)
			setters[name] = p
		}
	}
	return sources, setters
}
