package google

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"sync"

	genai "google.golang.org/genai"

	"roomstudio/pkg/logger"
	"roomstudio/pkg/recommend"
)

// DefaultModel is used when neither the config nor remote metadata names one.
const DefaultModel = "gemini-2.5-flash"

// ErrEmptyReply is returned when Gemini answers without any candidate text.
var ErrEmptyReply = errors.New("gemini returned no candidates")

// Provider asks Gemini for a room analysis constrained to the catalog keys.
type Provider struct {
	cli          *genai.Client
	keys         []string
	mu           sync.RWMutex
	defaultModel string
}

// NewProvider builds a Gemini-backed recommendation source. baseURL is only
// set in tests; empty means the public endpoint.
func NewProvider(ctx context.Context, apiKey, baseURL, defaultModel string, keys []string) (*Provider, error) {
	cc := &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	}
	if baseURL != "" {
		cc.HTTPOptions = genai.HTTPOptions{BaseURL: baseURL}
	}
	cli, err := genai.NewClient(ctx, cc)
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}
	return &Provider{
		cli:          cli,
		keys:         append([]string(nil), keys...),
		defaultModel: defaultModel,
	}, nil
}

func (p *Provider) Name() string {
	return "google"
}

// SetDefaultModel implements config.ModelSetter.
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

// Recommend implements recommend.Source. A 404 for a remotely configured
// model is retried once with DefaultModel.
func (p *Provider) Recommend(ctx context.Context, room recommend.RoomContext) (*recommend.Analysis, error) {
	prompt, err := recommend.BuildPrompt(room, p.keys)
	if err != nil {
		return nil, err
	}

	model := p.resolveModel()
	text, err := p.generate(ctx, model, prompt)
	if err != nil && isNotFound(err) && model != DefaultModel {
		logger.Warn("Gemini 404: model not found, falling back to default",
			"attempted_model", model, "fallback_model", DefaultModel)
		text, err = p.generate(ctx, DefaultModel, prompt)
	}
	if err != nil {
		return nil, err
	}

	a, err := recommend.ParseReply(text, room)
	if err != nil {
		return nil, fmt.Errorf("parse gemini reply: %w", err)
	}
	a.Source = p.Name()
	return a, nil
}

func (p *Provider) generate(ctx context.Context, model, prompt string) (string, error) {
	resp, err := p.cli.Models.GenerateContent(ctx, model,
		[]*genai.Content{{Parts: []*genai.Part{{Text: prompt}}}},
		&genai.GenerateContentConfig{ResponseMIMEType: "application/json"},
	)
	if err != nil {
		return "", err
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", ErrEmptyReply
	}
	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if part != nil {
			sb.WriteString(part.Text)
		}
	}
	if sb.Len() == 0 {
		return "", ErrEmptyReply
	}
	return sb.String(), nil
}

func isNotFound(err error) bool {
	var apiErr genai.APIError
	if errors.As(err, &apiErr) {
		return apiErr.Code == http.StatusNotFound
	}
	var apiErrPtr *genai.APIError
	if errors.As(err, &apiErrPtr) {
		return apiErrPtr.Code == http.StatusNotFound
	}
	return false
}
