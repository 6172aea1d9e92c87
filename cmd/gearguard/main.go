package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"gearguard/pkg/config"
	"gearguard/pkg/logger"
)

func main() {
	cfg := config.NewClient()
	log := logger.NewCLILogger(cfg.Log.Level)
	defer log.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	root := newRootCmd(newApp(cfg, log, os.Stdin, os.Stdout))
	root.SetContext(ctx)
	if err := run(root, os.Args[1:]); err != nil {
		os.Exit(1)
	}
}
