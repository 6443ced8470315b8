package main

import (
	"log/slog"
	"os"

	"instafood/cmd"

	"github.com/labstack/gommon/log"
	"go.temporal.io/sdk/worker"
)

func main() {
	configs := cmd.LoadConfig()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	root := cmd.NewCompositionRoot(configs, logger)

	temporalClient, err := root.CreateTemporalClient()
	if err != nil {
		log.Fatalf("Unable to connect to Temporal: %v", err)
	}
	defer temporalClient.Close()

	w := root.CreateWorker(temporalClient)
	if err := w.Run(worker.InterruptCh()); err != nil {
		log.Fatalf("Worker stopped: %v", err)
	}
}
