package main

import (
	"log"
	"os"

	"github.com/mx-watch/notifier-alerts/cmd/notifier-alerts/app"
)

func main() {
	err := app.Execute()
	if err != nil {
		log.Fatalf("failed to run notifier-alerts: %v", err)
	}

	os.Exit(0)
}
