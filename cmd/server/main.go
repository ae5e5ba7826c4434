package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/joho/godotenv"
	redislib "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	mongolib "go.mongodb.org/mongo-driver/mongo"

	"github.com/tigrisline/tracking-gateway/internal/api"
	"github.com/tigrisline/tracking-gateway/internal/core/domain"
	"github.com/tigrisline/tracking-gateway/internal/core/ports"
	"github.com/tigrisline/tracking-gateway/internal/core/service"
	"github.com/tigrisline/tracking-gateway/internal/infrastructure/config"
	"github.com/tigrisline/tracking-gateway/internal/infrastructure/db/mongo"
	"github.com/tigrisline/tracking-gateway/internal/infrastructure/db/redis"
	"github.com/tigrisline/tracking-gateway/internal/infrastructure/mail"
	"github.com/tigrisline/tracking-gateway/internal/infrastructure/queue"
	"github.com/tigrisline/tracking-gateway/internal/position"
	"github.com/tigrisline/tracking-gateway/internal/provider"
	"github.com/tigrisline/tracking-gateway/pkg/logger"
)

func main() {
	_ = godotenv.Load()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx)
	if err != nil {
		panic("load configuration: " + err.Error())
	}

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	// Mongo and Redis are optional: the resolver works without cache, and the
	// contact form works without archive. Each connect gets two extra attempts
	// before the service degrades with a warning.
	var (
		mongoClient *mongolib.Client
		mongoDB     *mongolib.Database
		redisClient *redislib.Client
	)
	err = backoff.Retry(func() error {
		mongoClient, mongoDB, err = mongo.Connect(ctx, mongo.Config{
			URI:      cfg.Mongo.URI,
			Database: cfg.Mongo.Database,
		})
		return err
	}, connectPolicy(ctx))
	if err != nil {
		log.Warn().Err(err).Msg("mongo unavailable, contact archive disabled")
		mongoClient, mongoDB = nil, nil
	}
	err = backoff.Retry(func() error {
		redisClient, err = redis.Connect(ctx, redis.Config{
			Addr: cfg.Redis.Addr,
			DB:   cfg.Redis.DB,
		})
		return err
	}, connectPolicy(ctx))
	if err != nil {
		log.Warn().Err(err).Msg("redis unavailable, result cache disabled")
		redisClient = nil
	}

	var cache service.ResultCache
	if redisClient != nil {
		cache = redis.NewResultCache(redisClient, cfg.CacheTTL)
	}

	tracking := service.NewTrackingService(
		buildProviders(cfg, log),
		buildPositions(cfg),
		cache,
		service.Options{
			DeferFallback:      cfg.FallbackMode == "defer",
			RegisterRetryDelay: cfg.RegisterRetryDelay,
		},
		log,
	)

	var contactRepo ports.ContactRepository
	if mongoDB != nil {
		contactRepo = mongo.NewContactRepository(mongoDB)
	}
	relay := mail.NewWeb3Forms(cfg.Contact.Web3FormsURL, cfg.Contact.Web3FormsKey, 10*time.Second)
	contact := service.NewContactService(contactRepo, relay, log)

	dispatcher := queue.NewDispatcher(cfg.Contact.Workers, cfg.Contact.QueueSize, contact, log)
	dispatcher.Start(ctx)

	e := api.NewRouter(api.Deps{
		Tracking:     tracking,
		ContactQueue: dispatcher,
		Mongo:        mongoClient,
		Redis:        redisClient,
		Log:          log,
	})

	go func() {
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error().Err(err).Msg("server stopped")
			stop()
		}
	}()
	log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("tracking gateway started")

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
	if mongoClient != nil {
		_ = mongoClient.Disconnect(shutdownCtx)
	}
	if redisClient != nil {
		_ = redisClient.Close()
	}
}

func connectPolicy(ctx context.Context) backoff.BackOff {
	return backoff.WithContext(
		backoff.WithMaxRetries(backoff.NewConstantBackOff(time.Second), 2),
		ctx,
	)
}

// buildProviders assembles the ordered tracking cascades. Order matters: the
// primary registrar first, then the free-tier fallbacks.
func buildProviders(cfg *config.Config, log zerolog.Logger) map[domain.ShipmentKind][]ports.TrackingProvider {
	p := cfg.Providers
	return map[domain.ShipmentKind][]ports.TrackingProvider{
		domain.KindContainer: {
			provider.NewShipResolve(p.ShipResolveURL, p.ShipResolveKey, domain.KindContainer, p.PrimaryTimeout, log),
			provider.NewTerminal49(p.Terminal49URL, p.FreeTimeout),
			provider.NewFindTEU(p.FindTeuURL, p.FreeTimeout),
			provider.NewShipsgo(p.ShipsGoURL, p.FreeTimeout),
		},
		domain.KindAirCargo: {
			provider.NewShipResolve(p.ShipResolveURL, p.ShipResolveKey, domain.KindAirCargo, p.PrimaryTimeout, log),
			provider.NewAviationStack(p.AviationStackURL, p.AviationStackKey, p.FreeTimeout),
			provider.NewFlightLabs(p.FlightLabsURL, p.FlightLabsKey, p.FreeTimeout),
			provider.NewOpenSky(p.OpenSkyURL, p.FreeTimeout),
		},
	}
}

// buildPositions assembles the position-enrichment cascades.
func buildPositions(cfg *config.Config) map[domain.ShipmentKind][]ports.PositionProvider {
	p := cfg.Providers
	return map[domain.ShipmentKind][]ports.PositionProvider{
		domain.KindContainer: {
			position.NewMyShipTracking(p.MyShipTrackingURL, p.PositionTimeout),
			position.NewAISHub(p.AISHubURL, p.AISHubUser, p.PositionTimeout),
			position.NewAISStream(p.VesselFinderURL, p.AISStreamURL, p.AISStreamKey, p.AISStreamWait),
		},
		domain.KindAirCargo: {
			position.NewOpenSky(p.OpenSkyURL, p.PositionTimeout),
			position.NewAviationStack(p.AviationStackURL, p.AviationStackKey, p.PositionTimeout),
		},
	}
}
