package google

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"sync/atomic"
	"testing"

	"roomstudio/pkg/recommend"
)

const analysisReply = `{"room_type":"office","recommended_furniture":["desk","chair"],"summary":"Focused."}`

func geminiBody(text string) map[string]any {
	return map[string]any{
		"candidates": []any{
			map[string]any{
				"content": map[string]any{
					"role":  "model",
					"parts": []any{map[string]any{"text": text}},
				},
				"finishReason": "STOP",
			},
		},
	}
}

// newGeminiServer answers generateContent calls, returning 404 for any model
// listed in missing.
func newGeminiServer(t *testing.T, calls *int32, missing ...string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(calls, 1)
		w.Header().Set("Content-Type", "application/json")
		for _, m := range missing {
			if strings.Contains(r.URL.Path, m) {
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(map[string]any{
					"error": map[string]any{"code": 404, "message": "model not found", "status": "NOT_FOUND"},
				})
				return
			}
		}
		json.NewEncoder(w).Encode(geminiBody(analysisReply))
	}))
}

func recommendRoom() recommend.RoomContext {
	return recommend.RoomContext{RoomType: "office", Style: "minimal"}
}

func newTestProvider(t *testing.T, baseURL, model string) *Provider {
	t.Helper()
	p, err := NewProvider(context.Background(), "test-key", baseURL, model, []string{"desk", "chair"})
	if err != nil {
		t.Fatalf("NewProvider failed: %v", err)
	}
	return p
}

// --- resolveModel ---

func TestResolveModel_UsesRuntimeDefault(t *testing.T) {
	p := newTestProvider(t, "", "my-runtime-model")
	if got := p.resolveModel(); got != "my-runtime-model" {
		t.Errorf("expected my-runtime-model, got %q", got)
	}
}

func TestResolveModel_FallsBackToConst(t *testing.T) {
	p := newTestProvider(t, "", "")
	if got := p.resolveModel(); got != DefaultModel {
		t.Errorf("expected %q, got %q", DefaultModel, got)
	}
}

// --- SetDefaultModel thread safety ---

func TestSetDefaultModel_Race(t *testing.T) {
	p := newTestProvider(t, "", "init")
	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(2)
		go func() { defer wg.Done(); p.SetDefaultModel("updated") }()
		go func() { defer wg.Done(); _ = p.resolveModel() }()
	}
	wg.Wait()
	if got := p.resolveModel(); got != "updated" {
		t.Errorf("expected updated, got %q", got)
	}
}

func TestName(t *testing.T) {
	p := newTestProvider(t, "", "")
	if p.Name() != "google" {
		t.Errorf("expected google, got %q", p.Name())
	}
}

// --- Recommend with mock HTTP server ---

func TestRecommend_ParsesReply(t *testing.T) {
	var calls int32
	srv := newGeminiServer(t, &calls)
	defer srv.Close()

	p := newTestProvider(t, srv.URL, "")
	a, err := p.Recommend(context.Background(), recommendRoom())
	if err != nil {
		t.Fatalf("Recommend failed: %v", err)
	}
	if a.Source != "google" || a.RoomType != "office" || a.Summary != "Focused." {
		t.Errorf("unexpected analysis: %+v", a)
	}
	if len(a.RecommendedFurniture) != 2 {
		t.Errorf("unexpected furniture: %v", a.RecommendedFurniture)
	}
	if calls != 1 {
		t.Errorf("expected 1 call, got %d", calls)
	}
}

func TestRecommend_404FallsBackToDefault(t *testing.T) {
	var calls int32
	srv := newGeminiServer(t, &calls, "gemini-retired")
	defer srv.Close()

	p := newTestProvider(t, srv.URL, "gemini-retired")
	a, err := p.Recommend(context.Background(), recommendRoom())
	if err != nil {
		t.Fatalf("expected fallback to succeed, got %v", err)
	}
	if a.Summary != "Focused." {
		t.Errorf("unexpected analysis: %+v", a)
	}
	if calls != 2 {
		t.Errorf("expected 2 calls (original + fallback), got %d", calls)
	}
}

func TestRecommend_404OnDefaultIsError(t *testing.T) {
	var calls int32
	srv := newGeminiServer(t, &calls, DefaultModel)
	defer srv.Close()

	p := newTestProvider(t, srv.URL, "")
	if _, err := p.Recommend(context.Background(), recommendRoom()); err == nil {
		t.Fatal("expected error when the default model is missing")
	}
	if calls != 1 {
		t.Errorf("expected no retry for the default model, got %d calls", calls)
	}
}

func TestRecommend_UnparseableReply(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(geminiBody("I cannot help with that."))
	}))
	defer srv.Close()

	p := newTestProvider(t, srv.URL, "")
	if _, err := p.Recommend(context.Background(), recommendRoom()); err == nil {
		t.Fatal("expected parse error for non-JSON reply")
	}
}
