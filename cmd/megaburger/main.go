package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"instafood/cmd"

	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
)

func main() {
	configs := cmd.LoadConfig()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	root := cmd.NewCompositionRoot(configs, logger)

	store, err := root.CreateOrderStore()
	if err != nil {
		log.Fatalf("Unable to create order store: %v", err)
	}

	if configs.SimulateKitchen() {
		simulator := root.CreateKitchenSimulator(store)
		if err := simulator.Start(); err != nil {
			log.Fatalf("Unable to start kitchen simulator: %v", err)
		}
		defer simulator.Stop()
	}

	e := echo.New()
	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})
	root.CreateOrdersAPI(store).Register(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", configs.HTTPPort)))
}
