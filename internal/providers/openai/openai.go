package openai

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"

	"roomstudio/pkg/logger"
	"roomstudio/pkg/recommend"
)

// DefaultModel is the compile-time default model name used when neither the
// config nor remote metadata specifies one.
const DefaultModel = "gpt-5"

// ErrEmptyReply is returned when the completion carries no message content.
var ErrEmptyReply = errors.New("completion returned no choices")

// Provider asks any OpenAI-compatible chat completions endpoint (OpenAI,
// vLLM, Ollama) for a room analysis.
type Provider struct {
	name         string
	apiKey       string
	baseURL      string
	keys         []string
	client       *http.Client
	mu           sync.RWMutex
	defaultModel string // runtime-configurable; falls back to DefaultModel const
}

// NewProvider creates a new OpenAI-compatible recommendation source.
// defaultModel is the initial runtime default; pass an empty string to use the
// compile-time DefaultModel constant.
func NewProvider(name, apiKey, baseURL, defaultModel string, keys []string) *Provider {
	if baseURL == "" {
		baseURL = "https://api.openai.com/v1"
	}
	return &Provider{
		name:         name,
		apiKey:       apiKey,
		baseURL:      strings.TrimRight(baseURL, "/"),
		keys:         append([]string(nil), keys...),
		defaultModel: defaultModel,
		client:       &http.Client{},
	}
}

// Name returns the provider identifier.
func (p *Provider) Name() string { return p.name }

// SetDefaultModel updates the runtime default model name in a thread-safe manner.
// It implements config.ModelSetter so RemoteManager can push live overrides.
func (p *Provider) SetDefaultModel(model string) {
	p.mu.Lock()
	p.defaultModel = model
	p.mu.Unlock()
}

func (p *Provider) resolveModel() string {
	p.mu.RLock()
	m := p.defaultModel
	p.mu.RUnlock()
	if m != "" {
		return m
	}
	return DefaultModel
}

// Recommend implements recommend.Source. On HTTP 404 the call is retried once
// with the compile-time DefaultModel.
func (p *Provider) Recommend(ctx context.Context, room recommend.RoomContext) (*recommend.Analysis, error) {
	prompt, err := recommend.BuildPrompt(room, p.keys)
	if err != nil {
		return nil, err
	}
	req := &chatRequest{
		Model:          p.resolveModel(),
		Messages:       []message{{Role: "user", Content: prompt}},
		ResponseFormat: &responseFormat{Type: "json_object"},
	}

	completion, status, err := p.complete(ctx, req)
	if err != nil && status == http.StatusNotFound && req.Model != DefaultModel {
		logger.Warn("OpenAI API 404: model not found, falling back to default",
			"provider", p.name, "attempted_model", req.Model, "fallback_model", DefaultModel)
		req.Model = DefaultModel
		completion, _, err = p.complete(ctx, req)
	}
	if err != nil {
		return nil, err
	}
	if len(completion.Choices) == 0 || completion.Choices[0].Message.Content == "" {
		return nil, ErrEmptyReply
	}

	a, err := recommend.ParseReply(completion.Choices[0].Message.Content, room)
	if err != nil {
		return nil, fmt.Errorf("parse %s reply: %w", p.name, err)
	}
	a.Source = p.name
	return a, nil
}

// complete posts one chat completion request and reports the HTTP status so
// callers can decide on a retry.
func (p *Provider) complete(ctx context.Context, req *chatRequest) (*chatResponse, int, error) {
	data, err := json.Marshal(req)
	if err != nil {
		return nil, 0, err
	}

	hreq, err := http.NewRequestWithContext(ctx, http.MethodPost, p.baseURL+"/chat/completions", bytes.NewReader(data))
	if err != nil {
		return nil, 0, err
	}
	hreq.Header.Set("Content-Type", "application/json")
	if p.apiKey != "" {
		hreq.Header.Set("Authorization", "Bearer "+p.apiKey)
	}

	resp, err := p.client.Do(hreq)
	if err != nil {
		logger.Error("OpenAI API network request failed", "error", err, "provider", p.name)
		return nil, 0, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		err := fmt.Errorf("provider %s returned status %d: %s", p.name, resp.StatusCode, strings.TrimSpace(string(body)))
		if resp.StatusCode != http.StatusNotFound {
			logger.Error("OpenAI API request failed with status", "error", err, "provider", p.name)
		}
		return nil, resp.StatusCode, err
	}

	var completion chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&completion); err != nil {
		return nil, resp.StatusCode, fmt.Errorf("decode completion: %w", err)
	}
	return &completion, resp.StatusCode, nil
}
