package main

import (
	"context"
	"flag"
	"fmt"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"go.opentelemetry.io/contrib/instrumentation/github.com/labstack/echo/otelecho"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"

	"github.com/grezzle/goblin-closet/internal/config"
	"github.com/grezzle/goblin-closet/internal/infra/database"
	"github.com/grezzle/goblin-closet/internal/infra/gateway"
	"github.com/grezzle/goblin-closet/internal/infra/repository"
	"github.com/grezzle/goblin-closet/internal/infra/storage"
	"github.com/grezzle/goblin-closet/internal/present/rest"
	"github.com/grezzle/goblin-closet/internal/present/rest/middleware"
	"github.com/grezzle/goblin-closet/internal/service"
	"github.com/grezzle/goblin-closet/internal/usecase"
)

func main() {
	configPath := flag.String("c", "config.yaml", "path to config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		panic(fmt.Sprintf("failed to load config: %v", err))
	}

	db, err := database.NewPostgres(cfg.Server.PostgresDsn)
	if err != nil {
		panic("failed to connect database")
	}
	if err := database.MigratePostgres(db); err != nil {
		panic("failed to migrate database")
	}

	rdb := database.NewRedis(cfg.Server.RedisAddr, "", cfg.Server.RedisDB)

	var cache *repository.QueryCache
	if cfg.Server.MemcachedAddr != "" {
		cache = repository.NewQueryCache(database.NewMemcached(cfg.Server.MemcachedAddr))
	}

	images, err := newImageStore(cfg.Storage, cfg.Server.PublicURL)
	if err != nil {
		panic(fmt.Sprintf("failed to init image storage: %v", err))
	}

	github := gateway.NewGithubGateway(
		cfg.GitHub.ClientID,
		cfg.GitHub.ClientSecret,
		cfg.GitHub.CallbackURL,
	)
	auth := service.NewAuthService(repository.NewSessionStore(rdb), github, cfg.GitHub.AdminID)

	posts := usecase.NewPostUsecase(repository.NewPostRepository(db, cache))
	lore := usecase.NewLoreUsecase(repository.NewLoreRepository(db, cache))
	inventory := usecase.NewInventoryUsecase(repository.NewInventoryRepository(db, cache))

	e := echo.New()
	e.Use(echomw.Logger())
	e.Use(echomw.Recover())
	e.Use(echomw.CORS())

	if cfg.Server.EnableTrace {
		if err := setupTracer(cfg.Server.TraceEndpoint); err != nil {
			panic(fmt.Sprintf("failed to init tracer: %v", err))
		}
		e.Use(otelecho.Middleware("goblin-closet"))
	}

	authmw := middleware.NewAuthMiddleware(auth)
	e.Use(authmw.IdentifyIdentity)

	if cfg.Storage.Backend == "local" {
		e.Static("/uploads", cfg.Storage.LocalPath)
	}

	handler := rest.NewHandler(posts, lore, inventory, auth, images, cfg.Server.PublicURL)
	handler.RegisterRoutes(e, authmw)

	e.Logger.Fatal(e.Start(cfg.Server.ListenAddr))
}

func newImageStore(cfg config.Storage, publicURL string) (usecase.ImageStore, error) {
	if cfg.Backend == "cloudinary" {
		return storage.NewCloudinaryStore(cfg.CloudName, cfg.APIKey, cfg.APISecret, cfg.Folder)
	}
	return storage.NewLocalStore(cfg.LocalPath, publicURL)
}

func setupTracer(endpoint string) error {
	exporter, err := otlptracehttp.New(
		context.Background(),
		otlptracehttp.WithEndpoint(endpoint),
		otlptracehttp.WithInsecure(),
	)
	if err != nil {
		return err
	}

	provider := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
	)
	otel.SetTracerProvider(provider)
	return nil
}
