package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ptc-travel/backoffice/internal/application/auth"
	"github.com/ptc-travel/backoffice/internal/application/ports"
	"github.com/ptc-travel/backoffice/internal/application/query"
	"github.com/ptc-travel/backoffice/internal/application/usecase"
	"github.com/ptc-travel/backoffice/internal/infrastructure/backend"
	"github.com/ptc-travel/backoffice/internal/infrastructure/cache"
	"github.com/ptc-travel/backoffice/internal/infrastructure/metrics"
	infrapdf "github.com/ptc-travel/backoffice/internal/infrastructure/pdf"
	"github.com/ptc-travel/backoffice/internal/infrastructure/postgres"
	"github.com/ptc-travel/backoffice/internal/infrastructure/storage"
	httpRouter "github.com/ptc-travel/backoffice/internal/interfaces/http"
	"github.com/ptc-travel/backoffice/pkg/config"
	"github.com/ptc-travel/backoffice/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("backend", cfg.Backend.BaseURL()).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()
	if err := postgres.NewMigrator(pool, log).Run(ctx); err != nil {
		log.Fatal().Err(err).Msg("migraciones")
	}

	// Redis compartido entre instancias; sin REDIS_URL el estado queda en memoria del proceso
	var store ports.KVStore = cache.NewMemoryStore()
	if cfg.Redis.URL != "" {
		rs, err := cache.NewRedisStore(ctx, cfg.Redis.URL)
		if err != nil {
			log.Fatal().Err(err).Msg("conexión a Redis")
		}
		defer rs.Close()
		store = rs
	} else {
		log.Warn().Msg("REDIS_URL vacío: sesiones y cache en memoria")
	}

	prom := metrics.New("ptc_backoffice")
	client := backend.NewClient(cfg.Backend.BaseURL(),
		backend.WithTimeout(cfg.Backend.Timeout),
		backend.WithMetrics(prom),
		backend.WithLogger(log),
	)
	queries := query.NewClient(store,
		query.WithTTL(cfg.Cache.TTL),
		query.WithMetrics(prom),
		query.WithLogger(log),
	)

	operatorRepo := postgres.NewOperatorRepository(pool)
	transitionRepo := postgres.NewTransitionRepository(pool)

	authUC := auth.NewAuthUseCase(operatorRepo, store, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	}, log)
	userUC := usecase.NewUserUseCase(backend.NewUserGateway(client), queries)
	staffUC := usecase.NewStaffUseCase(backend.NewStaffGateway(client), queries)
	customerUC := usecase.NewCustomerUseCase(backend.NewCustomerGateway(client), queries)
	liquidationUC := usecase.NewLiquidationUseCase(backend.NewLiquidationGateway(client), transitionRepo, queries, log)

	// PDF: estado de cuenta; copia opcional en S3
	var archive ports.DocumentArchive
	if cfg.S3.Enabled() {
		s3Archive, err := storage.NewS3Archive(ctx, cfg.S3)
		if err != nil {
			log.Fatal().Err(err).Msg("cliente S3")
		}
		archive = s3Archive
	}
	pdfUC := usecase.NewLiquidationPDFUseCase(liquidationUC, infrapdf.NewStatementGenerator(cfg.App.Name), archive, log)

	app := httpRouter.NewApp(httpRouter.AppConfig{
		Name:        cfg.App.Name,
		CORSOrigins: cfg.HTTP.CORSOrigins,
		SwaggerPath: cfg.HTTP.SwaggerPath,
	}, httpRouter.RouterDeps{
		AuthUC:         authUC,
		UserUC:         userUC,
		StaffUC:        staffUC,
		CustomerUC:     customerUC,
		LiquidationUC:  liquidationUC,
		LiquidationPDF: pdfUC,
		Metrics:        prom,
		Log:            log,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
