package main

import (
	"context"
	"flag"
	"os"

	entrypoint "github.com/louisbranch/occulta/internal/platform/cmd"
	"github.com/louisbranch/occulta/internal/platform/config"
	gamedataimporter "github.com/louisbranch/occulta/internal/tools/importer/gamedata"
)

func main() {
	env, err := config.Load()
	if err != nil {
		config.Exitf("Error: %v", err)
	}
	cfg, err := gamedataimporter.ParseConfig(flag.CommandLine, os.Args[1:], env.GamedataDB)
	if err != nil {
		config.Exitf("Error: %v", err)
	}

	config.ExitOnError(entrypoint.RunWithTelemetry(context.Background(), entrypoint.ServiceCatalogImporter, func(ctx context.Context) error {
		return gamedataimporter.Run(ctx, cfg, os.Stdout)
	}))
}
