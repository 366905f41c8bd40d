package main

import (
	"log"

	"github.com/switchboard-io/switchboard/internal/app"
)

func main() {
	if err := app.New().Run(); err != nil {
		log.Fatalf("❌ switchboard failed to start: %v", err)
	}
}
