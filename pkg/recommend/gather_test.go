package recommend

import (
	"context"
	"errors"
	"testing"
	"time"
)

// --- stubSource is a minimal in-process source for GatherAll tests ---

type stubSource struct {
	name      string
	items     []string
	sleepMs   int
	returnErr bool
}

func (s *stubSource) Name() string { return s.name }
func (s *stubSource) Recommend(ctx context.Context, room RoomContext) (*Analysis, error) {
	if s.sleepMs > 0 {
		select {
		case <-time.After(time.Duration(s.sleepMs) * time.Millisecond):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	if s.returnErr {
		return nil, errors.New("upstream unavailable")
	}
	return &Analysis{RoomType: room.RoomType, RecommendedFurniture: s.items}, nil
}

func TestGatherAll_KeepsSourceOrder(t *testing.T) {
	srcs := []Source{
		&stubSource{name: "slow", items: []string{"sofa"}, sleepMs: 30},
		&stubSource{name: "fast", items: []string{"lamp"}},
	}
	got := GatherAll(context.Background(), RoomContext{RoomType: "bedroom"}, 1000, srcs)
	if len(got) != 2 {
		t.Fatalf("expected 2 analyses, got %d", len(got))
	}
	if got[0].Source != "slow" || got[1].Source != "fast" {
		t.Errorf("expected source order slow, fast; got %s, %s", got[0].Source, got[1].Source)
	}
	if got[0].RoomType != "bedroom" {
		t.Errorf("room context not passed through: %+v", got[0])
	}
}

func TestGatherAll_FailingSourceIsTolerated(t *testing.T) {
	srcs := []Source{
		&stubSource{name: "good", items: []string{"bed"}},
		&stubSource{name: "bad", returnErr: true},
	}
	got := GatherAll(context.Background(), RoomContext{}, 1000, srcs)
	if len(got) != 1 || got[0].Source != "good" {
		t.Errorf("expected only the good source, got %+v", got)
	}
}

func TestGatherAll_Timeout(t *testing.T) {
	srcs := []Source{&stubSource{name: "slow", sleepMs: 500}}
	start := time.Now()
	got := GatherAll(context.Background(), RoomContext{}, 50, srcs)
	if len(got) != 0 {
		t.Errorf("expected no analyses after timeout, got %d", len(got))
	}
	if time.Since(start) > 400*time.Millisecond {
		t.Error("GatherAll did not honour its timeout")
	}
}

func TestGatherAll_Empty(t *testing.T) {
	if got := GatherAll(context.Background(), RoomContext{}, 0, nil); len(got) != 0 {
		t.Errorf("expected empty result, got %v", got)
	}
}

func TestMerge(t *testing.T) {
	merged := Merge([]*Analysis{
		nil,
		{Source: "a", RoomType: "office", RecommendedFurniture: []string{"desk"}},
		{Source: "b", RoomType: "bedroom", Summary: "cosy", RecommendedFurniture: []string{"lamp"},
			DetailedPlacements: []Placement{{Item: "Floor Lamp"}}},
	})
	if merged.Source != "a" || merged.RoomType != "office" || merged.Summary != "cosy" {
		t.Errorf("unexpected scalar merge: %+v", merged)
	}
	if len(merged.RecommendedFurniture) != 2 || merged.RecommendedFurniture[1] != "lamp" {
		t.Errorf("unexpected furniture: %v", merged.RecommendedFurniture)
	}
	if len(merged.DetailedPlacements) != 1 {
		t.Errorf("unexpected placements: %v", merged.DetailedPlacements)
	}
}

func TestAnalysis_Empty(t *testing.T) {
	var a *Analysis
	if !a.Empty() {
		t.Error("nil analysis should be empty")
	}
	if (&Analysis{}).Empty() != true {
		t.Error("zero analysis should be empty")
	}
	if (&Analysis{DetailedPlacements: []Placement{{Item: "rug"}}}).Empty() {
		t.Error("analysis with placements is not empty")
	}
}
