// Package main implements the entry point for the Nihongo API server, a
// backend for a Japanese-learning application: vocabulary and culture
// catalogs, per-word review progress, quizzes, games, achievements, and an
// AI tutor chat.
package main

import (
	"context"
	"log"
)

func main() {
	ctx := context.Background()

	app, err := newApplication(ctx)
	if err != nil {
		log.Fatalf("failed to initialize application: %v", err)
	}

	router := app.setupRouter()
	if err := app.startHTTPServer(ctx, router); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
