package main

import (
	"context"
	"fmt"
	"os"

	"github.com/amirasaad/bankaccount/infra/initializer"
	"github.com/amirasaad/bankaccount/pkg/app"
	"github.com/amirasaad/bankaccount/pkg/config"
)

const usage = `Usage: cli <type> <account_number> <client_number> <balance> [date] [deposit|withdraw <amount>]...
Types: chequing, savings, investment
Date format: YYYY-MM-DD (defaults to today)`

func main() {
	if len(os.Args) < 5 {
		fmt.Println(usage)
		return
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load configuration:", err)
		os.Exit(1)
	}
	deps, err := initializer.InitializeDependencies(cfg)
	if err != nil {
		fmt.Println("Failed to initialize dependencies:", err)
		os.Exit(1)
	}

	if err := run(context.Background(), app.New(deps, cfg), os.Args[1:], os.Stdout); err != nil {
		fmt.Println("Error:", err)
		os.Exit(1)
	}
}
