package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"doctorsportal/config"
	"doctorsportal/cron"
	"doctorsportal/database"
	bookingRepo "doctorsportal/database/repository/booking"
	catalogRepo "doctorsportal/database/repository/catalog"
	doctorRepo "doctorsportal/database/repository/doctor"
	paymentRepo "doctorsportal/database/repository/payment"
	reviewRepo "doctorsportal/database/repository/review"
	userRepoPkg "doctorsportal/database/repository/user"
	"doctorsportal/handlers"
	"doctorsportal/middleware"
	"doctorsportal/routes"
	"doctorsportal/services/auth"
	"doctorsportal/services/booking"
	"doctorsportal/services/clinic"
	"doctorsportal/services/payment"
	"doctorsportal/services/tasks"
	"doctorsportal/services/user"
	"doctorsportal/utils"

	"github.com/gin-gonic/gin"
	"github.com/hibiken/asynq"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func main() {
	rootCmd := &cobra.Command{
		Use:          "doctors-portal",
		Short:        "Doctors portal API server",
		SilenceUsage: true,
		RunE:         func(cmd *cobra.Command, args []string) error { return runServe() },
	}
	rootCmd.AddCommand(serveCmd(), workerCmd(), indexesCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe()
		},
	}
}

func workerCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "worker",
		Short: "Run the payment settlement worker",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWorker()
		},
	}
}

func indexesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "indexes",
		Short: "Create the MongoDB indexes and exit",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runIndexes()
		},
	}
}

// repositories holds every store the commands share.
type repositories struct {
	users    *userRepoPkg.MongoUserRepo
	services *catalogRepo.MongoServiceRepo
	bookings *bookingRepo.MongoBookingRepo
	payments *paymentRepo.MongoPaymentRepo
	doctors  *doctorRepo.MongoDoctorRepo
	reviews  *reviewRepo.MongoReviewRepo
}

func newRepositories(store *database.Store, timeout time.Duration) *repositories {
	return &repositories{
		users:    userRepoPkg.NewMongoUserRepo(store.DB, timeout),
		services: catalogRepo.NewMongoServiceRepo(store.DB, timeout),
		bookings: bookingRepo.NewMongoBookingRepo(store.DB, timeout),
		payments: paymentRepo.NewMongoPaymentRepo(store.DB, timeout),
		doctors:  doctorRepo.NewMongoDoctorRepo(store.DB, timeout),
		reviews:  reviewRepo.NewMongoReviewRepo(store.DB, timeout),
	}
}

func (r *repositories) indexers() []database.Indexer {
	return []database.Indexer{r.users, r.services, r.bookings, r.payments, r.doctors}
}

// bootstrap loads configuration, installs the logger and opens the store.
func bootstrap(ctx context.Context) (*config.Config, *zap.Logger, *database.Store, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	logger := utils.InitializeLogger(cfg.IsProduction(), cfg.LogLevel)

	store, err := database.Connect(ctx, cfg)
	if err != nil {
		return nil, nil, nil, err
	}
	logger.Info("Connected to MongoDB", zap.String("database", cfg.DatabaseName))
	return cfg, logger, store, nil
}

func runIndexes() error {
	ctx := context.Background()
	cfg, logger, store, err := bootstrap(ctx)
	if err != nil {
		return err
	}
	defer store.Close(context.Background())

	if err := database.EnsureIndexes(ctx, newRepositories(store, cfg.StoreTimeout).indexers()...); err != nil {
		return err
	}
	logger.Info("Indexes created")
	return nil
}

func runWorker() error {
	ctx := context.Background()
	cfg, logger, store, err := bootstrap(ctx)
	if err != nil {
		return err
	}
	defer store.Close(context.Background())
	if !cfg.RedisEnabled() {
		return errors.New("REDIS_ADDR must be set to run the settlement worker")
	}

	repos := newRepositories(store, cfg.StoreTimeout)
	recorder := payment.NewRecorder(repos.bookings, repos.payments, nil, logger)
	srv := cron.NewSettlementServer(cfg, logger)

	logger.Info("Settlement worker running")
	return srv.Run(cron.NewSettlementMux(recorder, logger))
}

func runServe() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, logger, store, err := bootstrap(ctx)
	if err != nil {
		return err
	}
	defer func() {
		if err := store.Close(context.Background()); err != nil {
			logger.Warn("Failed to close MongoDB client", zap.Error(err))
		}
	}()

	repos := newRepositories(store, cfg.StoreTimeout)
	if err := database.EnsureIndexes(ctx, repos.indexers()...); err != nil {
		return err
	}

	cacheClient, err := utils.NewCacheClient(ctx, cfg)
	if err != nil {
		return err
	}
	roleCache := auth.RoleCache(auth.NoopRoleCache{})
	var redisPinger utils.Pinger
	if cacheClient != nil {
		defer cacheClient.Close()
		roleCache = auth.NewRedisRoleCache(cacheClient, cfg.RoleCacheTTL)
		redisPinger = utils.PingFunc(func(ctx context.Context) error { return cacheClient.Ping(ctx).Err() })
	}

	var queue payment.SettlementQueue
	var worker *asynq.Server
	if cfg.RedisEnabled() {
		queueClient := asynq.NewClient(tasks.RedisOpt(cfg))
		defer queueClient.Close()
		queue = payment.NewAsynqSettlementQueue(queueClient)
	} else {
		logger.Warn("REDIS_ADDR not set: role cache and settlement retries disabled")
	}

	tokens := utils.NewTokenManager(cfg.AccessTokenSecret, cfg.TokenTTL)
	roles := auth.NewRoleAuthorizer(repos.users, roleCache, logger)
	bookingService := booking.NewBookingService(repos.bookings, repos.services, logger)
	recorder := payment.NewRecorder(repos.bookings, repos.payments, queue, logger)
	gateway := payment.NewStripeGateway(cfg.StripeSecretKey, cfg.PaymentCurrency, cfg.PaymentAmountScale)
	userService := user.NewUserService(repos.users, tokens, roles, logger)
	clinicService := clinic.NewService(repos.services, repos.doctors, repos.reviews, logger)

	if queue != nil && cfg.SettlementWorkerInline {
		worker = cron.NewSettlementServer(cfg, logger)
		if err := cron.StartSettlementWorker(worker, cron.NewSettlementMux(recorder, logger), logger); err != nil {
			return err
		}
		defer worker.Shutdown()
	}

	monitor := utils.NewHealthMonitor(store, redisPinger, 30*time.Second)
	monitor.Start(ctx)

	hb := handlers.NewHandlerBundle(tokens, roles,
		handlers.NewClinicHandler(clinicService),
		handlers.NewBookingHandler(bookingService),
		handlers.NewPaymentHandler(recorder, gateway),
		handlers.NewUserHandler(userService),
		&handlers.HealthHandler{Monitor: monitor},
	)

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(utils.ErrorHandler())
	router.Use(middleware.RequestLogger(logger))
	router.Use(middleware.NewRateLimiter(cfg.MaxRequestsPerMin).Middleware())
	routes.RegisterRoutes(router, hb)

	srv := &http.Server{
		Addr:              "0.0.0.0:" + cfg.AppPort,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.Info("Starting server", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	select {
	case err := <-serverErr:
		return fmt.Errorf("server failed: %w", err)
	case <-ctx.Done():
	}
	logger.Info("Server is shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}
	logger.Info("Server stopped gracefully")
	return nil
}
