package main

import (
	"context"
	"flag"
	"log"
	"os/signal"
	"syscall"

	"github.com/GaryWal/gamingplatformfresh/app"
)

func main() {
	configPath := flag.String("config", "", "path to the config file")
	flag.Parse()
	config := app.DefaultConfig()
	if *configPath != "" {
		loadedConfig, err := app.LoadConfigFromFile(*configPath)
		if err != nil {
			log.Fatalf("load config: %v", err)
		}
		config = loadedConfig
	}
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	hub := app.NewApp(config)
	if err := hub.Boot(ctx); err != nil {
		log.Fatalf("boot: %v", err)
	}
}
