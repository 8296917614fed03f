package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/KirkDiggler/rpg-toolkit/dice"
	"github.com/spf13/cobra"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	grpc_logging "github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/logging"
	grpc_recovery "github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/recovery"

	"github.com/KirkDiggler/creature-api/internal/clients/pokeapi"
	engine "github.com/KirkDiggler/creature-api/internal/engine/battle"
	"github.com/KirkDiggler/creature-api/internal/handlers/battle/v1alpha1"
	"github.com/KirkDiggler/creature-api/internal/orchestrators/battle"
	"github.com/KirkDiggler/creature-api/internal/orchestrators/catalog"
	"github.com/KirkDiggler/creature-api/internal/pkg/clock"
	"github.com/KirkDiggler/creature-api/internal/pkg/idgen"
	"github.com/KirkDiggler/creature-api/internal/redis"
	creaturecache "github.com/KirkDiggler/creature-api/internal/repositories/creature_cache"
)

var (
	grpcPort    int
	pokeapiURL  string
	httpTimeout time.Duration
	redisAddr   string
	cacheTTL    time.Duration
	debug       bool
)

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Start the gRPC server",
	Long:  `Start the creature battle gRPC server.`,
	RunE:  runServer,
}

func init() {
	serverCmd.Flags().IntVar(&grpcPort, "port", 50051, "gRPC server port")
	serverCmd.Flags().StringVar(&pokeapiURL, "pokeapi-url", pokeapi.DefaultBaseURL, "Base URL of the creature data provider")
	serverCmd.Flags().DurationVar(&httpTimeout, "http-timeout", pokeapi.DefaultHTTPTimeout, "Timeout for provider requests")
	serverCmd.Flags().StringVar(&redisAddr, "redis-addr", "", "Redis address for the creature cache (empty disables caching)")
	serverCmd.Flags().DurationVar(&cacheTTL, "cache-ttl", creaturecache.DefaultTTL, "How long fetched creatures stay cached")
	serverCmd.Flags().BoolVar(&debug, "debug", false, "Enable debug logging")
}

func runServer(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if debug {
		slog.SetLogLoggerLevel(slog.LevelDebug)
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sigChan
		log.Println("Received shutdown signal, gracefully stopping...")
		cancel()
	}()

	handler, cleanup, err := buildHandler()
	if err != nil {
		return err
	}
	defer cleanup()

	lis, err := net.Listen("tcp", fmt.Sprintf(":%d", grpcPort))
	if err != nil {
		return fmt.Errorf("failed to listen: %w", err)
	}

	srv := grpc.NewServer(
		grpc.ChainUnaryInterceptor(
			grpc_logging.UnaryServerInterceptor(grpc_logging.LoggerFunc(logFunc)),
			grpc_recovery.UnaryServerInterceptor(),
		),
		grpc.ChainStreamInterceptor(
			grpc_logging.StreamServerInterceptor(grpc_logging.LoggerFunc(logFunc)),
			grpc_recovery.StreamServerInterceptor(),
		),
	)

	v1alpha1.RegisterBattleServiceServer(srv, handler)

	healthServer := health.NewServer()
	grpc_health_v1.RegisterHealthServer(srv, healthServer)

	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)
	healthServer.SetServingStatus(v1alpha1.ServiceName, grpc_health_v1.HealthCheckResponse_SERVING)

	reflection.Register(srv)

	errChan := make(chan error, 1)
	go func() {
		log.Printf("gRPC server starting on port %d...", grpcPort)
		if err := srv.Serve(lis); err != nil {
			errChan <- fmt.Errorf("failed to serve: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		log.Println("Shutting down gRPC server...")
		healthServer.Shutdown()

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()

		stopped := make(chan struct{})
		go func() {
			srv.GracefulStop()
			close(stopped)
		}()

		select {
		case <-shutdownCtx.Done():
			log.Println("Graceful shutdown timeout exceeded, forcing stop")
			srv.Stop()
		case <-stopped:
			log.Println("Server stopped gracefully")
		}

		return nil
	case err := <-errChan:
		return err
	}
}

// buildHandler wires provider, cache, engine and orchestrators
func buildHandler() (*v1alpha1.Handler, func(), error) {
	cleanup := func() {}

	creatureClient, err := pokeapi.New(&pokeapi.Config{
		BaseURL:     pokeapiURL,
		HTTPTimeout: httpTimeout,
	})
	if err != nil {
		return nil, cleanup, fmt.Errorf("failed to create pokeapi client: %w", err)
	}

	if redisAddr != "" {
		redisClient, err := redis.NewClient(redisAddr, &redis.Options{DialTimeout: 5 * time.Second})
		if err != nil {
			return nil, cleanup, fmt.Errorf("failed to create redis client: %w", err)
		}
		cleanup = func() { _ = redisClient.Close() }

		cache, err := creaturecache.NewRedisRepository(&creaturecache.Config{
			Client: redisClient,
			Clock:  clock.New(),
			TTL:    cacheTTL,
		})
		if err != nil {
			return nil, cleanup, fmt.Errorf("failed to create creature cache: %w", err)
		}

		creatureClient, err = pokeapi.NewCachedClient(&pokeapi.CachedConfig{
			Client: creatureClient,
			Cache:  cache,
			TTL:    cacheTTL,
		})
		if err != nil {
			return nil, cleanup, fmt.Errorf("failed to create cached pokeapi client: %w", err)
		}
		log.Printf("Caching creatures in redis at %s (ttl %s)", redisAddr, cacheTTL)
	}

	battleEngine, err := engine.New(&engine.Config{Roller: dice.DefaultRoller})
	if err != nil {
		return nil, cleanup, fmt.Errorf("failed to create battle engine: %w", err)
	}

	battleService, err := battle.NewOrchestrator(&battle.Config{
		CreatureClient: creatureClient,
		Engine:         battleEngine,
		IDGenerator:    idgen.NewUUID("battle"),
	})
	if err != nil {
		return nil, cleanup, fmt.Errorf("failed to create battle orchestrator: %w", err)
	}

	catalogService, err := catalog.NewOrchestrator(&catalog.Config{CreatureClient: creatureClient})
	if err != nil {
		return nil, cleanup, fmt.Errorf("failed to create catalog orchestrator: %w", err)
	}

	handler, err := v1alpha1.NewHandler(&v1alpha1.HandlerConfig{
		BattleService:  battleService,
		CatalogService: catalogService,
	})
	if err != nil {
		return nil, cleanup, fmt.Errorf("failed to create battle handler: %w", err)
	}

	return handler, cleanup, nil
}

func logFunc(ctx context.Context, level grpc_logging.Level, msg string, fields ...any) {
	slog.Log(ctx, slog.Level(level), msg, fields...)
}
