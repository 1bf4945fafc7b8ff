package app

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	emailadapter "github.com/Abdurahmanit/GroupProject/storefront-service/internal/adapter/email"
	"github.com/Abdurahmanit/GroupProject/storefront-service/internal/adapter/kv"
	natsadapter "github.com/Abdurahmanit/GroupProject/storefront-service/internal/adapter/nats"
	s3adapter "github.com/Abdurahmanit/GroupProject/storefront-service/internal/adapter/storage/s3"
	"github.com/Abdurahmanit/GroupProject/storefront-service/internal/adapter/supabase"
	"github.com/Abdurahmanit/GroupProject/storefront-service/internal/app/config"
	"github.com/Abdurahmanit/GroupProject/storefront-service/internal/platform/logger"
	"github.com/Abdurahmanit/GroupProject/storefront-service/internal/platform/metrics"
	"github.com/Abdurahmanit/GroupProject/storefront-service/internal/platform/tracer"
	grpcserver "github.com/Abdurahmanit/GroupProject/storefront-service/internal/port/grpc"
	httpserver "github.com/Abdurahmanit/GroupProject/storefront-service/internal/port/http"
	"github.com/Abdurahmanit/GroupProject/storefront-service/internal/repository"
	"github.com/Abdurahmanit/GroupProject/storefront-service/internal/service"
	"github.com/nats-io/nats.go"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

const healthProbeInterval = 30 * time.Second

type App struct {
	cfg        *config.Config
	log        logger.Logger
	httpServer *httpserver.Server
	grpcServer *grpcserver.Server
	visitors   *service.VisitorRegistry
	state      *stateBackend
	supabase   *supabase.Client
	natsConn   *nats.Conn
	tracer     *sdktrace.TracerProvider
}

func New(cfg *config.Config) (*App, error) {
	ctx := context.Background()

	logCfg := logger.ZapLoggerConfig{
		Level:      cfg.Logger.Level,
		Encoding:   cfg.Logger.Encoding,
		TimeFormat: cfg.Logger.TimeFormat,
		Service:    cfg.Tracing.ServiceName,
	}
	appLogger, err := logger.NewZapLogger(logCfg)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	appLogger.Info("Logger initialized")
	appLogger.Infof("Configuration loaded: Env=%s, HTTP Port: %s, gRPC Port: %s, Store: %s",
		cfg.Env, cfg.HTTPServer.Port, cfg.GRPCServer.Port, cfg.Store.Driver)

	tp := tracer.InitTracer(cfg.Tracing.ServiceName, cfg.Tracing.OTLPEndpoint, appLogger)
	metricsManager := metrics.NewMetricsManager(cfg.Metrics.Namespace)

	pricing, err := service.NewPricing(cfg.Pricing.FreeShippingThreshold, cfg.Pricing.FlatShippingCost, cfg.Pricing.CurrencySymbol)
	if err != nil {
		return nil, fmt.Errorf("failed to configure pricing: %w", err)
	}

	state, err := newStateBackend(ctx, cfg.Store, appLogger)
	if err != nil {
		appLogger.Errorf("Failed to initialize state store: %v", err)
		return nil, fmt.Errorf("failed to initialize state store: %w", err)
	}
	appLogger.Info("State store initialized successfully")
	shared := kv.NewJSONState(state.store, appLogger)

	visitors := service.NewVisitorRegistry(service.VisitorRegistryConfig{
		Scope: func(visitorID string) repository.StateStore {
			return kv.Scope(shared, visitorID)
		},
		Pricing:     pricing,
		IdleTimeout: cfg.Visitors.IdleTimeout,
		SessionOptions: []service.SessionOption{
			service.WithSessionMaxAge(cfg.Session.MaxAge),
			service.WithSessionObservers(sessionMetricsObserver(metricsManager)),
		},
		CartObservers: []service.CartObserver{cartMetricsObserver(metricsManager)},
	}, appLogger)
	metricsManager.RegisterVisitorGauge(cfg.Metrics.Namespace, func() float64 {
		return float64(visitors.Len())
	})

	appLogger.Info("Initializing Supabase client...")
	sb, err := supabase.New(cfg.Supabase)
	if err != nil {
		state.Close(ctx)
		appLogger.Errorf("Failed to initialize Supabase client: %v", err)
		return nil, fmt.Errorf("failed to initialize Supabase client: %w", err)
	}
	productRepo := supabase.NewProductRepository(sb)
	categoryRepo := supabase.NewCategoryRepository(sb)
	orderRepo := supabase.NewOrderRepository(sb)
	userRepo := supabase.NewUserRepository(sb)
	appLogger.Info("Supabase repositories initialized")

	var (
		natsConn  *nats.Conn
		publisher service.EventPublisher
	)
	if cfg.NATS.URL != "" {
		natsConn, err = natsadapter.NewConnection(cfg.NATS, appLogger)
		if err != nil {
			appLogger.Warnf("NATS unavailable, order events will not be published: %v", err)
		} else {
			pub, err := natsadapter.NewPublisher(natsConn)
			if err != nil {
				appLogger.Warnf("Failed to create NATS publisher: %v", err)
			} else {
				publisher = pub
				appLogger.Infof("Publishing order events to NATS at %s", cfg.NATS.URL)
			}
		}
	}

	var mailer service.EmailSender
	if cfg.SMTP.Enabled() {
		sender, err := emailadapter.NewSMTPSender(cfg.SMTP, appLogger)
		if err != nil {
			appLogger.Warnf("SMTP disabled, order confirmations will not be mailed: %v", err)
		} else {
			mailer = sender
		}
	}

	var images service.ImageUploader
	if cfg.S3.Enabled() {
		storage, err := s3adapter.NewS3Storage(ctx, cfg.S3, appLogger)
		if err != nil {
			appLogger.Warnf("Image storage disabled: %v", err)
		} else {
			images = storage
		}
	}

	catalogService := service.NewCatalogService(productRepo, categoryRepo, appLogger)
	checkoutService := service.NewCheckoutService(productRepo, orderRepo, publisher, mailer, appLogger, service.CheckoutServiceConfig{
		LookupConcurrency: cfg.Checkout.LookupConcurrency,
		OrderSubject:      cfg.Checkout.OrderSubject,
		Pricing:           pricing,
	})
	authService := service.NewAuthService(userRepo, appLogger, service.AuthServiceConfig{BcryptCost: cfg.Auth.BcryptCost})
	adminService := service.NewAdminService(productRepo, orderRepo, images, appLogger)
	appLogger.Info("Services initialized")

	router := httpserver.NewRouter(httpserver.RouterDeps{
		Catalog:  catalogService,
		Checkout: timedCheckout{inner: checkoutService, timeout: cfg.Checkout.Timeout},
		Auth:     authService,
		Admin:    adminService,
		Visitors: visitors,
		Tokens:   httpserver.NewVisitorTokens(cfg.Auth.JWTSecret, cfg.Auth.CookieMaxAge),
		Cookie: httpserver.CookieConfig{
			Name:   cfg.Auth.CookieName,
			MaxAge: cfg.Auth.CookieMaxAge,
			Secure: cfg.Auth.CookieSecure,
		},
		Metrics:        metricsManager,
		Health:         sb.Ping,
		RequestTimeout: cfg.HTTPServer.RequestTimeout,
		MaxUploadBytes: cfg.HTTPServer.MaxUploadBytes,
		Log:            appLogger,
	})

	application := &App{
		cfg:        cfg,
		log:        appLogger,
		httpServer: httpserver.NewServer(cfg.HTTPServer, router, appLogger),
		grpcServer: grpcserver.NewServer(
			appLogger,
			cfg.GRPCServer.Port,
			cfg.GRPCServer.TimeoutGraceful,
			cfg.GRPCServer.MaxConnectionIdle,
		),
		visitors: visitors,
		state:    state,
		supabase: sb,
		natsConn: natsConn,
		tracer:   tp,
	}
	appLogger.Info("HTTP and gRPC server instances created")

	return application, nil
}

func (a *App) Run() error {
	a.log.Info("Starting application components...")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	httpErrs, err := a.httpServer.Start()
	if err != nil {
		a.shutdown()
		return err
	}

	grpcErrs := make(chan error, 1)
	go func() {
		grpcErrs <- a.grpcServer.Start()
	}()
	a.log.Info("gRPC server started in a goroutine")

	go a.visitors.RunSweeper(ctx, a.cfg.Visitors.SweepInterval)
	go a.grpcServer.WatchHealth(ctx, healthProbeInterval, a.supabase.Ping)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	var runErr error
	select {
	case receivedSignal := <-quit:
		a.log.Infof("Received shutdown signal: %v. Shutting down application...", receivedSignal)
	case err := <-httpErrs:
		runErr = err
		a.log.Errorf("HTTP server stopped unexpectedly: %v", err)
	case err := <-grpcErrs:
		runErr = err
		a.log.Errorf("gRPC server stopped unexpectedly: %v", err)
	}

	cancel()
	a.shutdown()
	return runErr
}

func (a *App) shutdown() {
	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.cfg.GRPCServer.TimeoutGraceful+5*time.Second)
	defer cancel()

	if err := a.httpServer.Stop(shutdownCtx); err != nil {
		a.log.Errorf("Error during HTTP server shutdown: %v", err)
	}
	if err := a.grpcServer.Stop(shutdownCtx); err != nil {
		a.log.Errorf("Error during gRPC server graceful shutdown: %v", err)
	} else {
		a.log.Info("gRPC server stopped successfully")
	}

	if a.natsConn != nil {
		if err := a.natsConn.Drain(); err != nil {
			a.log.Errorf("Error draining NATS connection: %v", err)
		}
	}

	a.log.Info("Closing state store...")
	if err := a.state.Close(shutdownCtx); err != nil {
		a.log.Errorf("Error closing state store: %v", err)
	} else {
		a.log.Info("State store closed successfully")
	}

	if err := a.tracer.Shutdown(shutdownCtx); err != nil && !errors.Is(err, context.Canceled) {
		a.log.Errorf("Error shutting down tracer provider: %v", err)
	}

	a.log.Info("Application shut down successfully")
	_ = logger.Sync(a.log)
}
