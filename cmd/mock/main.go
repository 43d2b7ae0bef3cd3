package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"roomstudio/internal/config"
	"roomstudio/internal/server"
	"roomstudio/internal/studio"
	"roomstudio/pkg/catalog"
	"roomstudio/pkg/logger"
	"roomstudio/pkg/recommend"
)

// MockSource returns canned analyses so the studio front end can be
// developed without model credentials.
type MockSource struct {
	Latency time.Duration
}

func (p *MockSource) Name() string {
	return "mock"
}

func (p *MockSource) Recommend(ctx context.Context, room recommend.RoomContext) (*recommend.Analysis, error) {
	select {
	case <-time.After(p.Latency): // Simulate network latency
	case <-ctx.Done():
		return nil, ctx.Err()
	}

	a := &recommend.Analysis{
		RoomType:    room.RoomType,
		Style:       room.Style,
		ColorScheme: []string{"#f5f0e8", "#6b705c", "#a5a58d", "#cb997e", "#3f4238"},
		Summary:     "A mock layout for front-end development. Colors follow a warm neutral palette.",
	}
	switch room.RoomType {
	case "bedroom":
		a.RecommendedFurniture = []string{"bed", "wardrobe", "nightstand", "Reading Lamp"}
		a.DetailedPlacements = []recommend.Placement{
			{Item: "Queen Bed", Where: "Centered on the back wall", Color: "#cb997e", ColorLogic: "warms the neutral walls", Why: "Anchors the room"},
			{Item: "Nightstand", Where: "Left of the bed", Color: "#6b705c"},
		}
	case "office":
		a.RecommendedFurniture = []string{"desk", "office chair", "bookcase", "plant"}
		a.DetailedPlacements = []recommend.Placement{
			{Item: "Writing Desk", Where: "Facing the window", Color: "#a5a58d", Why: "Natural light for work"},
		}
	default:
		a.RecommendedFurniture = []string{"couch", "coffee table", "floor lamp", "area rug"}
		a.DetailedPlacements = []recommend.Placement{
			{Item: "Sectional Sofa", Where: "Against the longest wall", Color: "#6b705c", ColorLogic: "grounds the palette", Why: "Seats the most people"},
			{Item: "Floor Lamp", Where: "Beside the sofa", Color: "#cb997e"},
		}
	}
	return a, nil
}

func main() {
	addr := flag.String("addr", ":8081", "Listen address")
	latency := flag.Duration("latency", 500*time.Millisecond, "Simulated source latency")
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cat := catalog.Default()
	res, err := studio.BuildResolver(cat, config.CatalogConfig{})
	if err != nil {
		logger.Fatalf("Mock resolver init failed: %v", err)
	}
	svc := studio.New(cat, res, studio.WithSources(int((5 * time.Second).Milliseconds()), &MockSource{Latency: *latency}))

	srv := server.NewServer(cat, res, svc)
	fmt.Printf("[Mock] Starting mock room studio on %s\n", *addr)
	if err := srv.Start(ctx, *addr); err != nil {
		logger.Fatalf("Mock Server stopped: %v", err)
	}
}
