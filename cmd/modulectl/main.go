// modulectl administers the module catalog and entitlements from the command line.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/dangerclosesec/modgate/internal/auth"
	"github.com/dangerclosesec/modgate/internal/config"
	"github.com/dangerclosesec/modgate/internal/database"
	"github.com/dangerclosesec/modgate/internal/logging"
	"github.com/dangerclosesec/modgate/internal/repository"
	"github.com/dangerclosesec/modgate/internal/service"
	"github.com/spf13/cobra"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var (
	verbose bool

	catalogFile string

	actingUser string
	scopeFlag  string
	orgFlag    string
)

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")

	seedCmd.Flags().StringVarP(&catalogFile, "file", "f", "", "JSON catalog file (defaults to the built-in catalog)")

	for _, c := range []*cobra.Command{activateCmd, deactivateCmd} {
		c.Flags().StringVar(&actingUser, "as", "", "Acting user email or id")
		c.Flags().StringVarP(&scopeFlag, "scope", "s", "personal", "Entitlement scope: personal or organization")
		c.Flags().StringVarP(&orgFlag, "org", "o", "", "Target organization id")
		c.MarkFlagRequired("as")
	}

	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(seedCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(activateCmd)
	rootCmd.AddCommand(deactivateCmd)
	rootCmd.AddCommand(tokenCmd)
}

var rootCmd = &cobra.Command{
	Use:           "modulectl",
	Short:         "modulectl manages module catalogs and entitlements",
	SilenceUsage:  true,
	SilenceErrors: true,
}

// app holds the wired services for one command invocation
type app struct {
	cfg        *config.Config
	db         *gorm.DB
	log        *slog.Logger
	cache      *service.CacheService
	users      *repository.UserRepository
	catalog    *service.CatalogService
	actors     *service.ActorService
	activation *service.ActivationService
	queries    *service.QueryService
}

func newApp() (*app, error) {
	cfg := config.Load()

	level := cfg.Log.Level
	gormLevel := logger.Silent
	if verbose {
		level = slog.LevelDebug
		gormLevel = logger.Info
	}
	log := logging.New(os.Stderr, level, "text")
	slog.SetDefault(log)

	db, err := database.Open(cfg, gormLevel)
	if err != nil {
		return nil, err
	}

	moduleRepo := repository.NewModuleRepository(db)
	orgRepo := repository.NewOrganizationRepository(db)
	userRepo := repository.NewUserRepository(db)
	attempts := service.NewAttemptLogService(repository.NewActivationAttemptRepository(db))

	// Seeding must invalidate the Redis catalog the API processes read from.
	var catalogCache *service.CacheService
	if cfg.Redis.Addr != "" {
		catalogCache, err = service.NewCacheServiceFromConfig(context.Background(), cfg, log)
		if err != nil {
			return nil, err
		}
	}
	catalog := service.NewCatalogService(moduleRepo, catalogCache, log)

	return &app{
		cfg:        cfg,
		db:         db,
		log:        log,
		cache:      catalogCache,
		users:      userRepo,
		catalog:    catalog,
		actors:     service.NewActorService(userRepo),
		activation: service.NewActivationService(catalog, orgRepo, userRepo, attempts, log),
		queries:    service.NewQueryService(catalog, orgRepo, userRepo, log),
	}, nil
}

func (a *app) close() {
	if a.cache != nil {
		a.cache.Close()
	}
}

func (a *app) tokens() *auth.TokenManager {
	return auth.NewTokenManager(a.cfg.JWT.Secret, a.cfg.JWT.ExpiryPeriod)
}

func main() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
