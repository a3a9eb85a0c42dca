package main

import (
	"context"
	"log"

	"shelf-assist-be/internal/bootstrap"
	"shelf-assist-be/internal/config"
	"shelf-assist-be/internal/server"
	"shelf-assist-be/internal/tracer"
)

func main() {
	// 0. Initialize Tracer (no-op unless OTEL_ENABLED=true)
	shutdownTracer := tracer.InitTracer()
	defer shutdownTracer(context.Background())

	// 1. Load Configuration
	cfg := config.Load()

	// 2. Bootstrap Dependencies (Container)
	container := bootstrap.NewContainer(cfg)

	// 3. Start Background Services
	// One consumer drains the announcement queue so playback never blocks
	// a request handler.
	go func() {
		log.Println("Background: Starting Feedback Consumer...")
		if err := container.FeedbackService.Consume(context.Background()); err != nil {
			log.Printf("Background Feedback Consumer Error: %v", err)
		}
	}()

	// 4. Initialize Server
	srv := server.New(cfg, container)

	// 5. Run Server
	log.Fatal(srv.Run())
}
