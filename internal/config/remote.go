package config

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sync/atomic"
	"time"

	"roomstudio/pkg/logger"
)

// ModelSetter is implemented by any recommendation source that supports runtime model name updates.
// RemoteManager uses this interface to push per-provider model overrides after each
// successful metadata fetch, keeping provider packages decoupled from this package.
type ModelSetter interface {
	SetDefaultModel(model string)
}

// ModelOverride replaces parts of a catalog entry's display record. Empty
// fields keep the catalog default.
type ModelOverride struct {
	Name        string `json:"name"`
	Color       string `json:"color"`
	Description string `json:"description"`
}

// RemoteMetadata represents the data structure returned by the remote origin.
type RemoteMetadata struct {
	Models         map[string]ModelOverride `json:"models"`          // keyed by catalog key; unknown keys add display-only models
	ProviderModels map[string]string        `json:"provider_models"` // per-provider model overrides; empty values are ignored
	UpdatedAt      string                   `json:"updated_at"`
}

// RemoteManager handles fetching and providing thread-safe access to the remote metadata.
type RemoteManager struct {
	metadata  atomic.Value // underlying type is *RemoteMetadata
	url       string
	interval  time.Duration
	client    *http.Client
	providers map[string]ModelSetter // keyed by provider name, e.g. "google", "local_vllm"
}

// NewRemoteManager initialises a new RemoteManager.
// providers is an optional map of ModelSetter implementations; pass nil if not needed.
func NewRemoteManager(url string, interval time.Duration, providers map[string]ModelSetter) *RemoteManager {
	if interval <= 0 {
		interval = defaultPollInterval
	}
	rm := &RemoteManager{
		url:       url,
		interval:  interval,
		providers: providers,
		client: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
	// Initialise with empty metadata to avoid nil dereferences before the first fetch.
	rm.metadata.Store(&RemoteMetadata{})
	return rm
}

// Start performs an initial fetch and then polls until ctx is done. With no
// URL configured it returns immediately and the catalog defaults apply.
func (rm *RemoteManager) Start(ctx context.Context) {
	if rm.url == "" {
		logger.Info("RemoteMetadata disabled, no url configured")
		return
	}
	if err := rm.fetch(ctx); err != nil {
		logger.Error("RemoteMetadata initial fetch failed", "error", err)
	}

	go func() {
		ticker := time.NewTicker(rm.interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if err := rm.fetch(ctx); err != nil {
					logger.Error("RemoteMetadata fetch error", "error", err)
				}
			}
		}
	}()
}

func (rm *RemoteManager) fetch(ctx context.Context) error {
	if rm.url == "" {
		return fmt.Errorf("remote metadata URL is empty")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rm.url, nil)
	if err != nil {
		return err
	}

	resp, err := rm.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	var md RemoteMetadata
	if err := json.Unmarshal(body, &md); err != nil {
		return fmt.Errorf("decode remote metadata: %w", err)
	}

	rm.metadata.Store(&md)
	logger.Info("RemoteMetadata updated",
		"models_count", len(md.Models),
		"provider_models_count", len(md.ProviderModels),
		"updated_at", md.UpdatedAt,
	)

	// Push per-provider model overrides; skip empty values to preserve provider defaults.
	rm.applyProviderModels(md.ProviderModels)

	return nil
}

// applyProviderModels propagates non-empty model names from the remote metadata to the
// registered ModelSetter implementations.
func (rm *RemoteManager) applyProviderModels(models map[string]string) {
	if len(models) == 0 || len(rm.providers) == 0 {
		return
	}
	for name, model := range models {
		if model == "" {
			continue
		}
		if setter, ok := rm.providers[name]; ok {
			setter.SetDefaultModel(model)
			logger.Info("RemoteMetadata updated provider default model", "provider", name, "model", model)
		}
	}
}

// GetMetadata returns the latest remote metadata atomically.
func (rm *RemoteManager) GetMetadata() *RemoteMetadata {
	val := rm.metadata.Load()
	if val == nil {
		return &RemoteMetadata{}
	}
	return val.(*RemoteMetadata)
}

// ModelOverrides returns the current per-key display overrides.
func (rm *RemoteManager) ModelOverrides() map[string]ModelOverride {
	return rm.GetMetadata().Models
}
