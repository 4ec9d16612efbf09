package main

import (
	"fmt"
	"log"

	"github.com/gofiber/fiber/v2"

	"procsim/api"
	"procsim/config"
)

func main() {
	cfg := config.GetSimulatorConfig()
	handler := api.NewSchedulerHandlerImpl(cfg)

	app := fiber.New()
	apiGroup := app.Group("/api")

	v1 := apiGroup.Group("/v1")
	{
		v1.Post("/simulate", handler.Simulate)
		v1.Post("/simulate/text", handler.SimulateText)
		v1.Post("/fcfs", handler.FirstComeFirstServe)
		v1.Post("/sjf", handler.ShortestJobFirst)
		v1.Post("/rr", handler.RoundRobin)
		v1.Post("/all", handler.AllAlgorithms)
	}

	log.Fatalln(app.Listen(fmt.Sprintf(":%d", cfg.Port)))
}
