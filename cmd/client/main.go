package main

import (
	"context"
	"log"

	"github.com/dmitrijs2005/firstweek/internal/client/cli"
	"github.com/dmitrijs2005/firstweek/internal/client/config"
)

func main() {

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}

	app, err := cli.NewApp(cfg)
	if err != nil {
		log.Fatalf("%v", err)
	}

	if err := app.Run(context.Background()); err != nil {
		log.Fatalf("%v", err)
	}
}
