package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"gearguard/pkg/config"
	"gearguard/pkg/database/postgresql"
	applogger "gearguard/pkg/logger"
	"gearguard/seeders"

	"go.uber.org/zap"
)

func main() {
	runUsers := flag.Bool("users", false, "seed demo users")
	runTeams := flag.Bool("teams", false, "seed teams and memberships")
	runEquipment := flag.Bool("equipment", false, "seed equipment")
	runAll := flag.Bool("all", false, "run every seeder (users, teams, equipment)")
	flag.Parse()

	if !*runUsers && !*runTeams && !*runEquipment && !*runAll {
		fmt.Fprintln(os.Stderr, "no seeder selected")
		flag.PrintDefaults()
		os.Exit(2)
	}

	cfg := config.New()
	logger := applogger.NewLogger(cfg.Log.Level, "")
	defer logger.Sync()

	ctx := context.Background()
	if err := postgresql.Migrate(ctx, cfg.Postgres.DSN, logger); err != nil {
		logger.Fatal("migration failed", zap.Error(err))
	}
	db, err := postgresql.ConnectDB(ctx, cfg.Postgres.DSN, logger)
	if err != nil {
		logger.Fatal("could not connect to PostgreSQL", zap.Error(err))
	}
	defer db.Close()

	s := seeders.New(db, logger.Named("seed"))

	var steps []func(context.Context) error
	switch {
	case *runAll:
		steps = append(steps, s.All)
	default:
		if *runUsers {
			steps = append(steps, s.SeedUsers)
		}
		if *runTeams {
			steps = append(steps, s.SeedTeams)
		}
		if *runEquipment {
			steps = append(steps, s.SeedEquipment)
		}
	}

	for _, step := range steps {
		if err := step(ctx); err != nil {
			logger.Fatal("seeding failed", zap.Error(err))
		}
	}
	logger.Info("seeding finished", zap.String("password", seeders.DemoPassword))
}
