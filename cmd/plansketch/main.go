// Command plansketch is the interactive floor-plan editor.
package main

import (
	"context"
	"log"
	"os"
	"time"

	"gioui.org/app"
	"gioui.org/unit"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/barnwright/plansketch/internal/config"
	"github.com/barnwright/plansketch/internal/core"
	"github.com/barnwright/plansketch/internal/store"
	"github.com/barnwright/plansketch/internal/vis"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("no .env file, using environment")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger, err := initLogger(cfg.LogLevel)
	if err != nil {
		log.Fatalf("init logger: %v", err)
	}

	var st store.Store
	if cfg.DBPath != "" {
		db, err := store.OpenSQLite(cfg.DBPath)
		if err != nil {
			logger.Fatal("open store", zap.Error(err))
		}
		st = db
	} else {
		st = store.NewMemory()
	}

	fp := core.Footprint{Width: cfg.Width, Length: cfg.Length}
	plan := core.NewPlan(fp, cfg.Session)

	if cfg.Session != "" {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		data, err := st.LoadPlan(ctx, cfg.Session)
		cancel()
		if err != nil {
			logger.Fatal("load plan", zap.String("session", cfg.Session), zap.Error(err))
		}
		plan.Walls = data.Walls
		plan.Openings = data.Openings
		plan.Drains = data.Drains
		plan.Cupolas = data.Cupolas
		logger.Info("plan loaded",
			zap.String("session", cfg.Session),
			zap.Int("walls", len(data.Walls)),
			zap.Int("openings", len(data.Openings)))
	}

	go func() {
		window := new(app.Window)
		window.Option(
			app.Title("plansketch"),
			app.Size(unit.Dp(1280), unit.Dp(860)),
		)

		application := vis.NewApp(plan, st, logger)
		if err := application.Run(window); err != nil {
			logger.Fatal("window loop", zap.Error(err))
		}
		// app.Main never returns, so flush here before exiting.
		logger.Sync()
		os.Exit(0)
	}()
	app.Main()
}

func initLogger(level string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, err
	}
	cfg := zap.NewDevelopmentConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	return cfg.Build()
}
