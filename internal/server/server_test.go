package server

import (
	"bytes"
	"context"
	"encoding/json"
	"net"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"roomstudio/internal/studio"
	"roomstudio/pkg/catalog"
	"roomstudio/pkg/resolver"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	cat := catalog.Default()
	aliases, err := resolver.NewAliasTable(cat, catalog.BuiltinAliases())
	if err != nil {
		t.Fatalf("NewAliasTable failed: %v", err)
	}
	res := resolver.New(cat, aliases, resolver.WithObserver(nil))
	return NewServer(cat, res, studio.New(cat, res))
}

func do(t *testing.T, h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, bytes.NewBufferString(body))
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestHealth(t *testing.T) {
	rec := do(t, newTestServer(t).Handler(), http.MethodGet, "/health", "")
	if rec.Code != http.StatusOK || rec.Body.String() != "OK" {
		t.Errorf("unexpected health reply: %d %q", rec.Code, rec.Body.String())
	}
}

func TestRequestID(t *testing.T) {
	h := newTestServer(t).Handler()

	rec := do(t, h, http.MethodGet, "/health", "")
	if rec.Header().Get(RequestIDHeader) == "" {
		t.Error("expected a generated request ID")
	}

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set(RequestIDHeader, "abc-123")
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	if got := rec.Header().Get(RequestIDHeader); got != "abc-123" {
		t.Errorf("expected echoed request ID, got %q", got)
	}
}

func TestResolve(t *testing.T) {
	rec := do(t, newTestServer(t).Handler(), http.MethodPost, "/v1/resolve",
		`{"labels":["Floor Lamp","couches","Grand Piano",""]}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	var resp resolveResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	want := []resolveResult{
		{Label: "Floor Lamp", Key: "lamp", Known: true},
		{Label: "couches", Key: "couches", Known: false},
		{Label: "Grand Piano", Key: "grand_piano", Known: false},
		{Label: "", Key: "", Known: false},
	}
	if len(resp.Results) != len(want) {
		t.Fatalf("expected %d results, got %d", len(want), len(resp.Results))
	}
	for i, w := range want {
		if resp.Results[i] != w {
			t.Errorf("result %d = %+v, want %+v", i, resp.Results[i], w)
		}
	}
}

func TestResolve_BadRequests(t *testing.T) {
	h := newTestServer(t).Handler()
	tests := []struct {
		name string
		body string
	}{
		{"invalid json", `{"labels":`},
		{"empty body", ""},
		{"no labels", `{"labels":[]}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(t, h, http.MethodPost, "/v1/resolve", tt.body)
			if rec.Code != http.StatusBadRequest {
				t.Errorf("expected 400, got %d", rec.Code)
			}
			var body map[string]string
			json.NewDecoder(rec.Body).Decode(&body)
			if body["error"] == "" {
				t.Errorf("expected JSON error body, got %q", rec.Body.String())
			}
		})
	}
}

func TestModels(t *testing.T) {
	rec := do(t, newTestServer(t).Handler(), http.MethodGet, "/v1/models", "")
	var resp struct {
		Models []studio.Model `json:"models"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if len(resp.Models) != 14 {
		t.Errorf("expected 14 models, got %d", len(resp.Models))
	}
}

func TestGeometry(t *testing.T) {
	h := newTestServer(t).Handler()

	rec := do(t, h, http.MethodGet, "/v1/models/lamp/geometry?color=ff0000", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	var resp struct {
		Key   string        `json:"key"`
		Color string        `json:"color"`
		Node  *catalog.Node `json:"node"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if resp.Key != "lamp" || resp.Color != "#ff0000" || resp.Node == nil || len(resp.Node.Children) == 0 {
		t.Errorf("unexpected geometry reply: %+v", resp)
	}

	if rec := do(t, h, http.MethodGet, "/v1/models/piano/geometry", ""); rec.Code != http.StatusNotFound {
		t.Errorf("expected 404 for unknown key, got %d", rec.Code)
	}
	if rec := do(t, h, http.MethodGet, "/v1/models/lamp/geometry?color=zzz", ""); rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for bad color, got %d", rec.Code)
	}
}

func TestFurnitureList(t *testing.T) {
	body := `{"room":{"room_type":"bedroom"},"analysis":{"detailed_placements":[{"item":"Nightstand","where":"Left of bed"}],"recommended_furniture":["bed"]}}`
	rec := do(t, newTestServer(t).Handler(), http.MethodPost, "/v1/studio/furniture-list", body)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	var list studio.FurnitureList
	if err := json.NewDecoder(rec.Body).Decode(&list); err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if len(list.Recommended) != 1 || list.Recommended[0].Key != "side_table" || list.Recommended[0].Where != "Left of bed" {
		t.Errorf("unexpected recommended group: %+v", list.Recommended)
	}
	if len(list.Suggested) != 1 || list.Suggested[0].Key != "bed" {
		t.Errorf("unexpected suggested group: %+v", list.Suggested)
	}
	if len(list.All) != 12 {
		t.Errorf("expected 12 remaining models, got %d", len(list.All))
	}
}

func TestProductQueries(t *testing.T) {
	body := `{"room":{"room_type":"office","style":"industrial"},"analysis":{"recommended_furniture":["desk","office_chair"]}}`
	rec := do(t, newTestServer(t).Handler(), http.MethodPost, "/v1/studio/product-queries", body)
	var pq studio.ProductQueries
	if err := json.NewDecoder(rec.Body).Decode(&pq); err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if pq.Style != "industrial" || len(pq.Queries) != 2 || pq.Queries[1] != "office chair" {
		t.Errorf("unexpected queries: %+v", pq)
	}
}

func TestScene(t *testing.T) {
	body := `{"placements":[{"model_name":"Couch","position_x":1.5,"rotation":1.57}]}`
	rec := do(t, newTestServer(t).Handler(), http.MethodPost, "/v1/studio/scene", body)
	var resp struct {
		Objects []struct {
			Key   string        `json:"key"`
			Known bool          `json:"known"`
			Color string        `json:"color"`
			Node  *catalog.Node `json:"node"`
		} `json:"objects"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if len(resp.Objects) != 1 {
		t.Fatalf("expected 1 object, got %d", len(resp.Objects))
	}
	o := resp.Objects[0]
	if o.Key != "sofa" || !o.Known || o.Color != catalog.DefaultAccent || o.Node.Position.X != 1.5 || o.Node.Scale != 1 {
		t.Errorf("unexpected scene object: %+v", o)
	}
}

func TestStart_ShutsDownOnCancel(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen failed: %v", err)
	}
	addr := ln.Addr().String()
	ln.Close()

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- newTestServer(t).Start(ctx, addr) }()

	var resp *http.Response
	for i := 0; i < 50; i++ {
		resp, err = http.Get("http://" + addr + "/health")
		if err == nil {
			break
		}
		time.Sleep(20 * time.Millisecond)
	}
	if err != nil {
		t.Fatalf("server did not come up: %v", err)
	}
	resp.Body.Close()

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Errorf("expected clean shutdown, got %v", err)
		}
	case <-time.After(3 * time.Second):
		t.Fatal("server did not shut down")
	}
}
