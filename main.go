package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/gin-gonic/gin"

	"sharedbid/internal/accounts"
	ledger "sharedbid/internal/auctionLedger"
	"sharedbid/internal/auth"
	"sharedbid/internal/config"
	"sharedbid/internal/database"
	"sharedbid/internal/repository"
	"sharedbid/internal/seed"
	"sharedbid/internal/server"
	"sharedbid/utils"
)

func main() {
	configPath := flag.String("config", os.Getenv("SHAREDBID_CONFIG"), "path to YAML config file")
	envFile := flag.String("env-file", ".env", "path to .env file")
	flag.Parse()

	if err := config.LoadEnvFile(*envFile); err != nil {
		utils.Fatal("failed to load env file", map[string]any{"path": *envFile, "error": err.Error()})
	}

	cfg, err := config.LoadAndValidate(*configPath)
	if err != nil {
		utils.Fatal("failed to load config", map[string]any{"path": *configPath, "error": err.Error()})
	}
	if err := utils.SetLevel(cfg.Log.Level); err != nil {
		utils.Fatal("invalid log level", map[string]any{"level": cfg.Log.Level, "error": err.Error()})
	}
	gin.SetMode(cfg.Server.GinMode)

	ctx := context.Background()
	repo, closeRepo, err := openRepository(ctx, cfg)
	if err != nil {
		utils.Fatal("failed to open storage", map[string]any{"driver": cfg.Storage.Driver, "error": err.Error()})
	}
	defer closeRepo()

	tokens := auth.NewTokenIssuer(cfg.Auth.TokenSecret, cfg.Auth.TokenTTL, cfg.Auth.Issuer)
	auctionLedger := ledger.NewAuctionLedger(repo)
	accountSvc := accounts.NewAccountService(repo, tokens, cfg.Auth.BcryptCost)

	if cfg.Seed.Enabled {
		if err := seed.Load(ctx, auctionLedger, accountSvc, cfg.Seed.Password); err != nil {
			utils.Fatal("failed to seed demo data", map[string]any{"error": err.Error()})
		}
	}

	router := server.SetupRouter(auctionLedger, accountSvc, tokens)

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	utils.Info("starting auction server", map[string]any{
		"addr":    addr,
		"storage": cfg.Storage.Driver,
		"seeded":  cfg.Seed.Enabled,
	})
	if err := router.Run(addr); err != nil {
		utils.Fatal("failed to start server", map[string]any{"error": err.Error()})
	}
}

// openRepository returns the configured store and a function that releases it
func openRepository(ctx context.Context, cfg *config.Config) (repository.AuctionDB, func(), error) {
	switch cfg.Storage.Driver {
	case config.DriverPostgres:
		pool, err := database.Connect(ctx, cfg.Database)
		if err != nil {
			return nil, nil, err
		}
		repo := repository.NewPostgresRepo(pool)
		if err := repo.Migrate(ctx); err != nil {
			pool.Close()
			return nil, nil, fmt.Errorf("migrate: %w", err)
		}
		return repo, pool.Close, nil
	default:
		return repository.NewMemoryRepo(), func() {}, nil
	}
}
