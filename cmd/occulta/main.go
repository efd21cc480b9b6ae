package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	occultacmd "github.com/louisbranch/occulta/internal/cmd/occulta"
)

func main() {
	cfg, err := occultacmd.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		log.Fatalf("parse flags: %v", err)
	}
	log.SetPrefix("[OCCULTA] ")
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := occultacmd.Run(ctx, cfg, os.Stdout); err != nil {
		log.Fatalf("occulta: %v", err)
	}
}
