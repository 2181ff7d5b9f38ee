package main

import (
	"context"
	"fmt"
	"os"

	"github.com/dmitrijs2005/kudos/internal/moderate"
	"github.com/dmitrijs2005/kudos/internal/moderate/config"
)

func main() {
	ctx := context.Background()
	cfg := config.LoadConfig()
	app := moderate.NewApp(cfg)

	if err := app.Run(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
