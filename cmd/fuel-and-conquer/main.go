package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/VinceRamirez1998/fuel-and-conquer/internal/auth"
	"github.com/VinceRamirez1998/fuel-and-conquer/internal/config"
	"github.com/VinceRamirez1998/fuel-and-conquer/internal/llm"
	"github.com/VinceRamirez1998/fuel-and-conquer/internal/metrics"
	"github.com/VinceRamirez1998/fuel-and-conquer/internal/planner"
	"github.com/VinceRamirez1998/fuel-and-conquer/internal/server"
)

func main() {
	ctx := context.Background()

	cfg, err := config.NewFromEnv()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	textGen, closer, err := llm.NewGeminiClient(ctx, cfg, planner.GenerationOptions())
	if err != nil {
		log.Fatalf("Failed to initialize Gemini client: %v", err)
	}
	defer closer.Close()

	recorder := metrics.NewRecorder()
	mealPlanner := planner.NewPlanner(textGen, recorder)

	identity := auth.NewClient(cfg)
	users := auth.NewUserStore(cfg)
	sessions := auth.NewSessions(cfg)

	srv := server.New(cfg, mealPlanner, identity, users, sessions, recorder)

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if err != nil {
			log.Fatalf("Server failed: %v", err)
		}
	case sig := <-stop:
		log.Printf("Received %s, shutting down", sig)
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Fatalf("Shutdown failed: %v", err)
		}
	}
}
