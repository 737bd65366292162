package main

import (
	"context"
	"os"

	"github.com/RodrigoRozasV/contentful-products-api/internal/cli"
	"github.com/RodrigoRozasV/contentful-products-api/internal/platform/config"
	"github.com/RodrigoRozasV/contentful-products-api/internal/platform/logger"
)

func main() {
	l := logger.Get()
	rt := cli.NewEnvRuntime(config.New(), *l)
	os.Exit(cli.Run(context.Background(), rt, os.Args[1:], os.Stdout, os.Stderr))
}
