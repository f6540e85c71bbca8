package app

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"github.com/Go4ItSports/go4it/config"
	"github.com/Go4ItSports/go4it/internal/database"
	"github.com/Go4ItSports/go4it/internal/domain"
	httpHandler "github.com/Go4ItSports/go4it/internal/http"
	"github.com/Go4ItSports/go4it/internal/http/middleware"
	"github.com/Go4ItSports/go4it/internal/migrations"
	"github.com/Go4ItSports/go4it/internal/repository"
	"github.com/Go4ItSports/go4it/internal/service"
	"github.com/Go4ItSports/go4it/pkg/cache"
	"github.com/Go4ItSports/go4it/pkg/logger"
	"github.com/Go4ItSports/go4it/pkg/mailer"
	"github.com/Go4ItSports/go4it/pkg/ratelimiter"
	"github.com/Go4ItSports/go4it/pkg/scraper"
	"github.com/Go4ItSports/go4it/pkg/smsgateway"
	"github.com/Go4ItSports/go4it/pkg/tracing"

	"contrib.go.opencensus.io/integrations/ocsql"
)

const (
	signInAttempts     = 5
	signInWindow       = 5 * time.Minute
	dashboardCacheTick = time.Minute
	socialBatchSize    = 25
)

// AppInterface defines the interface for the App
type AppInterface interface {
	Initialize() error
	Start() error
	Shutdown(ctx context.Context) error

	// Getters for app components accessed in tests
	GetConfig() *config.Config
	GetLogger() logger.Logger
	GetMux() *http.ServeMux
	GetDB() *sql.DB
	GetMailer() mailer.Mailer
	GetEventBus() domain.EventBus

	// Repository getters for testing
	GetUserRepository() domain.UserRepository
	GetOrganizationRepository() domain.OrganizationRepository
	GetAthleteRepository() domain.AthleteRepository
	GetPaymentRepository() domain.PaymentRepository
	GetSettingRepository() domain.SettingRepository

	// Server status methods
	IsServerCreated() bool
	WaitForServerStart(ctx context.Context) bool

	// Methods for initialization steps
	InitDB() error
	InitMailer() error
	InitTracing() error
	InitRepositories() error
	InitServices() error
	InitHandlers() error

	// Graceful shutdown methods
	SetShutdownTimeout(timeout time.Duration)
	GetActiveRequestCount() int64
	GetShutdownContext() context.Context
}

// App encapsulates the application dependencies and configuration
type App struct {
	config   *config.Config
	logger   logger.Logger
	db       *sql.DB
	mailer   mailer.Mailer
	eventBus domain.EventBus
	limiter  *ratelimiter.RateLimiter
	cache    *cache.InMemoryCache

	stopDBStats func()

	// Repositories
	userRepo          domain.UserRepository
	authRepo          domain.AuthRepository
	settingRepo       domain.SettingRepository
	organizationRepo  domain.OrganizationRepository
	athleteRepo       domain.AthleteRepository
	videoAnalysisRepo domain.VideoAnalysisRepository
	starPathRepo      domain.StarPathRepository
	academyRepo       domain.AcademyRepository
	teamRepo          domain.TeamRepository
	couponRepo        domain.CouponRepository
	campRepo          domain.CampRepository
	paymentRepo       domain.PaymentRepository
	prospectRepo      domain.ProspectRepository
	campaignRepo      domain.CampaignRepository
	leadRepo          domain.LeadRepository
	eventRepo         domain.EventRepository
	combineRepo       domain.CombineRepository
	projectTaskRepo   domain.ProjectTaskRepository
	notificationRepo  domain.NotificationRepository
	socialRepo        domain.SocialRepository

	// Services
	authService          *service.AuthService
	userService          *service.UserService
	organizationService  *service.OrganizationService
	athleteService       *service.AthleteService
	videoAnalysisService *service.VideoAnalysisService
	starPathService      *service.StarPathService
	academyService       *service.AcademyService
	teamService          *service.TeamService
	couponService        *service.CouponService
	campService          *service.CampService
	paymentService       *service.PaymentService
	recruitingService    *service.RecruitingService
	leadService          *service.LeadService
	eventService         *service.EventService
	combineService       *service.CombineService
	projectTaskService   *service.ProjectTaskService
	notificationService  *service.NotificationService
	dashboardService     *service.DashboardService
	socialService        *service.SocialService
	socialScheduler      *service.SocialScheduler

	// HTTP handlers
	mux    *http.ServeMux
	server *http.Server

	// Server synchronization
	serverMu      sync.RWMutex
	serverStarted chan struct{}

	// Graceful shutdown management
	shutdownCtx     context.Context
	shutdownCancel  context.CancelFunc
	activeRequests  int64          // atomic counter for active HTTP requests
	requestWg       sync.WaitGroup // wait group for active requests
	shutdownTimeout time.Duration
}

// AppOption defines a functional option for configuring the App
type AppOption func(*App)

// WithMockDB configures the app to use a mock database
func WithMockDB(db *sql.DB) AppOption {
	return func(a *App) {
		a.db = db
	}
}

// WithMockMailer configures the app to use a mock mailer
func WithMockMailer(m mailer.Mailer) AppOption {
	return func(a *App) {
		a.mailer = m
	}
}

// WithLogger sets a custom logger
func WithLogger(logger logger.Logger) AppOption {
	return func(a *App) {
		a.logger = logger
	}
}

// NewApp creates a new application instance
func NewApp(cfg *config.Config, opts ...AppOption) AppInterface {
	shutdownCtx, shutdownCancel := context.WithCancel(context.Background())

	app := &App{
		config:          cfg,
		logger:          logger.NewLoggerWithLevel(cfg.LogLevel),
		mux:             http.NewServeMux(),
		serverStarted:   make(chan struct{}),
		shutdownCtx:     shutdownCtx,
		shutdownCancel:  shutdownCancel,
		shutdownTimeout: 30 * time.Second,
	}

	for _, opt := range opts {
		opt(app)
	}

	return app
}

// InitTracing initializes OpenCensus tracing
func (a *App) InitTracing() error {
	tracingConfig := &a.config.Tracing

	if err := tracing.InitTracing(tracingConfig, a.logger); err != nil {
		return fmt.Errorf("failed to initialize tracing: %w", err)
	}

	if tracingConfig.Enabled {
		a.logger.WithField("trace_exporter", tracingConfig.TraceExporter).
			WithField("metrics_exporter", tracingConfig.MetricsExporter).
			WithField("sampling_rate", tracingConfig.SamplingProbability).
			Info("Tracing initialized successfully")
	}

	return nil
}

// InitDB connects to Postgres, creates the schema and applies migrations
func (a *App) InitDB() error {
	password := a.config.Database.Password
	maskedPassword := ""
	if len(password) > 0 {
		maskedPassword = fmt.Sprintf("%c...%c", password[0], password[len(password)-1])
	}
	a.logger.Info(fmt.Sprintf("Connecting to database %s:%d, user %s, sslmode %s, password: %s, dbname: %s", a.config.Database.Host, a.config.Database.Port, a.config.Database.User, a.config.Database.SSLMode, maskedPassword, a.config.Database.DBName))

	if err := database.EnsureSystemDatabaseExists(database.GetPostgresDSN(&a.config.Database), a.config.Database.DBName); err != nil {
		a.logger.Error(err.Error())
		return fmt.Errorf("failed to ensure system database exists: %w", err)
	}

	driverName := "postgres"
	if a.config.Tracing.Enabled {
		var err error
		driverName, err = ocsql.Register(driverName, ocsql.WithAllTraceOptions())
		if err != nil {
			return fmt.Errorf("failed to register opencensus sql driver: %w", err)
		}
		a.logger.Info("Database driver wrapped with OpenCensus tracing")
	}

	db, err := sql.Open(driverName, database.GetSystemDSN(&a.config.Database))
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return fmt.Errorf("failed to ping database: %w", err)
	}

	if err := database.InitializeDatabase(db, a.config.RootEmail); err != nil {
		db.Close()
		return fmt.Errorf("failed to initialize database schema: %w", err)
	}

	migrationManager := migrations.NewManager(a.logger)
	if err := migrationManager.RunMigrations(context.Background(), a.config, db); err != nil {
		if errors.Is(err, migrations.ErrRestartRequired) {
			a.logger.Warn("Migrations require a restart, continuing with the current process")
		} else {
			db.Close()
			return fmt.Errorf("failed to run migrations: %w", err)
		}
	}

	maxOpen, maxIdle, maxLifetime := database.GetConnectionPoolSettings()
	db.SetMaxOpenConns(maxOpen)
	db.SetMaxIdleConns(maxIdle)
	db.SetConnMaxLifetime(maxLifetime)

	if a.config.Tracing.Enabled {
		a.stopDBStats = ocsql.RecordStats(db, 5*time.Second)
	}

	a.db = db
	return nil
}

// InitMailer initializes the mailer
func (a *App) InitMailer() error {
	if a.mailer != nil {
		return nil
	}

	if a.config.IsDevelopment() || a.config.SMTP.Host == "" {
		a.mailer = mailer.NewConsoleMailer(a.logger)
		a.logger.Info("Using console mailer")
		return nil
	}

	a.mailer = mailer.NewSMTPMailer(&mailer.Config{
		SMTPHost:     a.config.SMTP.Host,
		SMTPPort:     a.config.SMTP.Port,
		SMTPUsername: a.config.SMTP.Username,
		SMTPPassword: a.config.SMTP.Password,
		FromEmail:    a.config.SMTP.FromEmail,
		FromName:     a.config.SMTP.FromName,
	})
	a.logger.WithField("smtp_host", a.config.SMTP.Host).Info("Using SMTP mailer")
	return nil
}

// InitRepositories initializes all repositories
func (a *App) InitRepositories() error {
	if a.db == nil {
		return fmt.Errorf("database must be initialized before repositories")
	}

	a.userRepo = repository.NewUserRepository(a.db)
	a.authRepo = repository.NewSQLAuthRepository(a.db, a.logger)
	a.settingRepo = repository.NewSQLSettingRepository(a.db)
	a.organizationRepo = repository.NewOrganizationRepository(a.db)
	a.athleteRepo = repository.NewAthleteRepository(a.db)
	a.videoAnalysisRepo = repository.NewVideoAnalysisRepository(a.db)
	a.starPathRepo = repository.NewStarPathRepository(a.db)
	a.academyRepo = repository.NewAcademyRepository(a.db)
	a.teamRepo = repository.NewTeamRepository(a.db)
	a.couponRepo = repository.NewCouponRepository(a.db)
	a.campRepo = repository.NewCampRepository(a.db)
	a.paymentRepo = repository.NewPaymentRepository(a.db)
	a.prospectRepo = repository.NewProspectRepository(a.db)
	a.campaignRepo = repository.NewCampaignRepository(a.db)
	a.leadRepo = repository.NewLeadRepository(a.db)
	a.eventRepo = repository.NewEventRepository(a.db)
	a.combineRepo = repository.NewCombineRepository(a.db)
	a.projectTaskRepo = repository.NewProjectTaskRepository(a.db)
	a.notificationRepo = repository.NewNotificationRepository(a.db)
	a.socialRepo = repository.NewSocialRepository(a.db)

	return nil
}

// InitServices initializes all application services
func (a *App) InitServices() error {
	a.eventBus = domain.NewInMemoryEventBus()

	a.limiter = ratelimiter.NewRateLimiter()
	a.limiter.SetPolicy(service.SignInNamespace, signInAttempts, signInWindow)
	a.limiter.SetPolicy(service.VerifyCodeNamespace, signInAttempts, signInWindow)
	if a.config.RateLimit.Enabled {
		a.limiter.SetPolicy(middleware.GlobalNamespace, a.config.RateLimit.MaxRequests, a.config.RateLimit.Window)
	}

	a.cache = cache.NewInMemoryCache(dashboardCacheTick)

	var err error
	a.authService, err = service.NewAuthService(service.AuthServiceConfig{
		Repository: a.authRepo,
		JWTSecret:  a.config.Security.JWTSecret,
		Logger:     a.logger,
	})
	if err != nil {
		return fmt.Errorf("failed to create auth service: %w", err)
	}

	a.userService, err = service.NewUserService(service.UserServiceConfig{
		Repository:             a.userRepo,
		OrganizationRepository: a.organizationRepo,
		AuthService:            a.authService,
		Mailer:                 a.mailer,
		RateLimiter:            a.limiter,
		SecretKey:              a.config.Security.SecretKey,
		SessionExpiry:          a.config.Security.SessionTTL,
		IsProduction:           a.config.IsProduction(),
		Logger:                 a.logger,
	})
	if err != nil {
		return fmt.Errorf("failed to create user service: %w", err)
	}

	a.organizationService = service.NewOrganizationService(a.organizationRepo, a.userRepo, a.authService, a.logger)
	a.athleteService = service.NewAthleteService(a.athleteRepo, a.organizationRepo, a.authService, a.logger)
	a.starPathService = service.NewStarPathService(a.starPathRepo, a.athleteRepo, a.authService, a.eventBus, a.logger)
	a.teamService = service.NewTeamService(a.teamRepo, a.athleteRepo, a.authService, a.logger)
	a.couponService = service.NewCouponService(a.couponRepo, a.authService, a.logger)
	a.leadService = service.NewLeadService(a.leadRepo, a.prospectRepo, a.authService, a.logger)
	a.projectTaskService = service.NewProjectTaskService(a.projectTaskRepo, a.authService, a.logger)

	var storage domain.VideoStorage
	if a.config.Storage.Bucket != "" {
		s3Storage, err := service.NewS3VideoStorage(a.config.Storage)
		if err != nil {
			return fmt.Errorf("failed to create video storage: %w", err)
		}
		storage = s3Storage
	} else {
		a.logger.Warn("STORAGE_BUCKET not set, video uploads are disabled")
	}

	a.videoAnalysisService = service.NewVideoAnalysisService(service.VideoAnalysisServiceConfig{
		Repository:        a.videoAnalysisRepo,
		AthleteRepository: a.athleteRepo,
		StarPathService:   a.starPathService,
		Storage:           storage,
		AuthService:       a.authService,
		EventBus:          a.eventBus,
		Logger:            a.logger,
	})

	a.paymentService = service.NewPaymentService(service.PaymentServiceConfig{
		Repository:  a.paymentRepo,
		Provider:    service.NewStripeProvider(a.config.Stripe),
		AuthService: a.authService,
		EventBus:    a.eventBus,
		Currency:    a.config.Stripe.Currency,
		Logger:      a.logger,
	})

	a.academyService = service.NewAcademyService(service.AcademyServiceConfig{
		Repository:        a.academyRepo,
		AthleteRepository: a.athleteRepo,
		PaymentService:    a.paymentService,
		StarPathService:   a.starPathService,
		AuthService:       a.authService,
		EventBus:          a.eventBus,
		Logger:            a.logger,
	})

	a.campService = service.NewCampService(service.CampServiceConfig{
		Repository:     a.campRepo,
		CouponService:  a.couponService,
		PaymentService: a.paymentService,
		Mailer:         a.mailer,
		AuthService:    a.authService,
		EventBus:       a.eventBus,
		Logger:         a.logger,
	})

	a.combineService = service.NewCombineService(service.CombineServiceConfig{
		Repository:        a.combineRepo,
		AthleteRepository: a.athleteRepo,
		PaymentService:    a.paymentService,
		StarPathService:   a.starPathService,
		AuthService:       a.authService,
		Logger:            a.logger,
	})

	a.paymentService.RegisterConfirmer(domain.PurposeCourse, a.academyService.ActivatePaidEnrollment)
	a.paymentService.RegisterConfirmer(domain.PurposeCamp, a.campService.ConfirmPaidRegistration)
	a.paymentService.RegisterConfirmer(domain.PurposeCombine, a.combineService.ConfirmPaidRegistration)

	sms := smsgateway.NewGateway(a.mailer)

	a.recruitingService = service.NewRecruitingService(service.RecruitingServiceConfig{
		ProspectRepository:     a.prospectRepo,
		CampaignRepository:     a.campaignRepo,
		OrganizationRepository: a.organizationRepo,
		Mailer:                 a.mailer,
		SMSSender:              sms,
		Scraper:                scraper.New(tracing.WrapHTTPClient(&http.Client{Timeout: 20 * time.Second, Transport: scraper.PublicTransport()})),
		AuthService:            a.authService,
		EventBus:               a.eventBus,
		Logger:                 a.logger,
	})

	a.eventService = service.NewEventService(service.EventServiceConfig{
		Repository:     a.eventRepo,
		LeadRepository: a.leadRepo,
		AuthService:    a.authService,
		WebhookSecret:  a.config.Booking.WebhookSecret,
		Logger:         a.logger,
	})

	a.notificationService = service.NewNotificationService(service.NotificationServiceConfig{
		Repository:             a.notificationRepo,
		UserRepository:         a.userRepo,
		OrganizationRepository: a.organizationRepo,
		AthleteRepository:      a.athleteRepo,
		Mailer:                 a.mailer,
		SMSSender:              sms,
		AuthService:            a.authService,
		Logger:                 a.logger,
	})
	a.notificationService.RegisterWithEventBus(a.eventBus)

	a.dashboardService = service.NewDashboardService(service.DashboardServiceConfig{
		AthleteRepository:       a.athleteRepo,
		VideoAnalysisRepository: a.videoAnalysisRepo,
		AcademyRepository:       a.academyRepo,
		CampRepository:          a.campRepo,
		PaymentRepository:       a.paymentRepo,
		LeadRepository:          a.leadRepo,
		ProspectRepository:      a.prospectRepo,
		EventRepository:         a.eventRepo,
		Cache:                   a.cache,
		AuthService:             a.authService,
		Logger:                  a.logger,
	})
	a.dashboardService.RegisterWithEventBus(a.eventBus)

	a.socialService = service.NewSocialService(service.SocialServiceConfig{
		Repository:  a.socialRepo,
		Poster:      service.NewHTTPSocialPoster(a.config.Social, nil, a.logger),
		AuthService: a.authService,
		SecretKey:   a.config.Security.SecretKey,
		Logger:      a.logger,
	})
	a.socialScheduler = service.NewSocialScheduler(a.socialService, a.settingRepo, a.logger, a.config.Scheduler.SocialTickInterval, socialBatchSize)

	return nil
}

// InitHandlers registers every HTTP route on a fresh mux
func (a *App) InitHandlers() error {
	a.mux = http.NewServeMux()

	requireAuth := middleware.NewAuthMiddleware(a.authService).RequireAuth

	httpHandler.NewRootHandler(a.db, a.config.APIEndpoint, a.config.Version, a.logger).RegisterRoutes(a.mux)

	httpHandler.NewUserHandler(a.userService, a.logger).RegisterRoutes(a.mux, requireAuth)
	httpHandler.NewOrganizationHandler(a.organizationService, a.logger).RegisterRoutes(a.mux, requireAuth)
	httpHandler.NewAthleteHandler(a.athleteService, a.logger).RegisterRoutes(a.mux, requireAuth)
	httpHandler.NewVideoAnalysisHandler(a.videoAnalysisService, a.logger).RegisterRoutes(a.mux, requireAuth)
	httpHandler.NewStarPathHandler(a.starPathService, a.logger).RegisterRoutes(a.mux, requireAuth)
	httpHandler.NewAcademyHandler(a.academyService, a.logger).RegisterRoutes(a.mux, requireAuth)
	httpHandler.NewTeamHandler(a.teamService, a.logger).RegisterRoutes(a.mux, requireAuth)
	httpHandler.NewCouponHandler(a.couponService, a.logger).RegisterRoutes(a.mux, requireAuth)
	httpHandler.NewCampHandler(a.campService, a.logger).RegisterRoutes(a.mux, requireAuth)
	httpHandler.NewPaymentHandler(a.paymentService, a.logger).RegisterRoutes(a.mux, requireAuth)
	httpHandler.NewRecruitingHandler(a.recruitingService, a.logger).RegisterRoutes(a.mux, requireAuth)
	httpHandler.NewLeadHandler(a.leadService, a.eventService, a.logger).RegisterRoutes(a.mux, requireAuth)
	httpHandler.NewCombineHandler(a.combineService, a.logger).RegisterRoutes(a.mux, requireAuth)
	httpHandler.NewTaskHandler(a.projectTaskService, a.logger).RegisterRoutes(a.mux, requireAuth)
	httpHandler.NewNotificationHandler(a.notificationService, a.logger).RegisterRoutes(a.mux, requireAuth)
	httpHandler.NewSocialHandler(a.socialService, a.logger).RegisterRoutes(a.mux, requireAuth)
	httpHandler.NewDashboardHandler(a.dashboardService, a.logger).RegisterRoutes(a.mux, requireAuth)

	return nil
}

// Handler returns the mux wrapped in the middleware chain used by Start
func (a *App) Handler() http.Handler {
	var handler http.Handler = a.mux

	handler = a.gracefulShutdownMiddleware(handler)

	if a.config.RateLimit.Enabled && a.limiter != nil {
		handler = middleware.RateLimit(a.limiter, middleware.GlobalNamespace)(handler)
	}

	if a.config.Tracing.Enabled {
		handler = middleware.Tracing(handler)
	}

	return middleware.CORS(a.config.Server.CORSOrigins)(handler)
}

// Start starts the background scheduler and the HTTP server
func (a *App) Start() error {
	handler := a.Handler()

	addr := fmt.Sprintf("%s:%d", a.config.Server.Host, a.config.Server.Port)
	a.logger.WithField("address", addr).
		WithField("api_endpoint", a.config.APIEndpoint).
		Info(fmt.Sprintf("Server starting on %s", addr))

	a.serverMu.Lock()
	if a.serverStarted != nil {
		close(a.serverStarted)
	}
	a.serverStarted = make(chan struct{})
	a.server = &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}
	serverStarted := a.serverStarted
	a.serverMu.Unlock()

	close(serverStarted)

	if a.socialScheduler != nil {
		a.socialScheduler.Start(a.shutdownCtx)
	}

	if a.config.Server.SSL.Enabled {
		a.logger.WithField("cert_file", a.config.Server.SSL.CertFile).Info("SSL enabled")
		return a.server.ListenAndServeTLS(a.config.Server.SSL.CertFile, a.config.Server.SSL.KeyFile)
	}

	return a.server.ListenAndServe()
}

// Shutdown gracefully shuts down the server
func (a *App) Shutdown(ctx context.Context) error {
	a.logger.Info("Starting graceful shutdown...")

	a.shutdownCancel()

	a.serverMu.RLock()
	server := a.server
	a.serverMu.RUnlock()

	if server == nil {
		a.logger.Info("No server to shutdown")
		return a.cleanupResources(ctx)
	}

	a.logger.WithField("active_requests", a.getActiveRequestCount()).Info("Active requests at shutdown start")

	shutdownTimeout := a.shutdownTimeout
	if deadline, ok := ctx.Deadline(); ok {
		if remaining := time.Until(deadline); remaining < shutdownTimeout {
			shutdownTimeout = remaining - time.Second
			if shutdownTimeout < 0 {
				shutdownTimeout = 0
			}
		}
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer shutdownCancel()

	serverShutdownDone := make(chan error, 1)
	go func() {
		a.logger.WithField("timeout", shutdownTimeout).Info("Starting HTTP server shutdown")
		serverShutdownDone <- server.Shutdown(shutdownCtx)
	}()

	requestsDone := make(chan struct{})
	go func() {
		defer close(requestsDone)

		done := make(chan struct{})
		go func() {
			a.requestWg.Wait()
			close(done)
		}()

		ticker := time.NewTicker(5 * time.Second)
		defer ticker.Stop()

		for {
			select {
			case <-done:
				a.logger.Info("All requests completed")
				return
			case <-ticker.C:
				a.logger.WithField("active_requests", a.getActiveRequestCount()).Info("Still waiting for requests to complete...")
			case <-shutdownCtx.Done():
				a.logger.WithField("active_requests", a.getActiveRequestCount()).Warn("Shutdown timeout reached, forcing shutdown")
				return
			}
		}
	}()

	var shutdownErr error
	select {
	case err := <-serverShutdownDone:
		shutdownErr = err
		a.logger.Info("HTTP server shutdown completed")
	case <-shutdownCtx.Done():
		a.logger.Warn("Shutdown timeout reached")
		shutdownErr = fmt.Errorf("shutdown timeout exceeded")
	}

	if shutdownErr == nil {
		select {
		case <-requestsDone:
		case <-time.After(2 * time.Second):
			if activeCount := a.getActiveRequestCount(); activeCount > 0 {
				a.logger.WithField("active_requests", activeCount).Warn("Some requests still active, proceeding with shutdown")
			}
		}
	}

	if cleanupErr := a.cleanupResources(ctx); cleanupErr != nil {
		a.logger.WithField("error", cleanupErr).Error("Error during resource cleanup")
		if shutdownErr == nil {
			shutdownErr = cleanupErr
		}
	}

	if shutdownErr != nil {
		a.logger.WithField("error", shutdownErr).Error("Graceful shutdown completed with errors")
	} else {
		a.logger.Info("Graceful shutdown completed successfully")
	}

	return shutdownErr
}

// cleanupResources stops background workers and closes the database
func (a *App) cleanupResources(ctx context.Context) error {
	a.logger.Info("Cleaning up resources...")

	if a.socialScheduler != nil {
		a.socialScheduler.Stop()
	}
	if a.limiter != nil {
		a.limiter.Stop()
	}
	if a.cache != nil {
		a.cache.Stop()
	}

	if a.stopDBStats != nil {
		a.stopDBStats()
	}

	if a.db != nil {
		a.logger.Info("Closing database connection")
		if err := a.db.Close(); err != nil {
			a.logger.WithField("error", err).Error("Error closing database connection")
			return err
		}
	}

	a.logger.Info("Resource cleanup completed")
	return nil
}

// IsServerCreated safely checks if the server has been created
func (a *App) IsServerCreated() bool {
	a.serverMu.RLock()
	defer a.serverMu.RUnlock()
	return a.server != nil
}

// WaitForServerStart waits for the server to be created.
// Returns false if ctx expires first.
func (a *App) WaitForServerStart(ctx context.Context) bool {
	a.serverMu.RLock()
	started := a.serverStarted
	a.serverMu.RUnlock()

	if started == nil {
		a.logger.Error("serverStarted channel is nil - server initialization error")
		<-ctx.Done()
		return false
	}

	select {
	case <-started:
		return a.IsServerCreated()
	case <-ctx.Done():
		return false
	}
}

// Initialize sets up all components of the application
func (a *App) Initialize() error {
	a.logger.WithField("version", a.config.Version).Info("Starting Go4It application")

	if err := a.InitTracing(); err != nil {
		return err
	}

	if a.db == nil {
		if err := a.InitDB(); err != nil {
			return err
		}
	}

	if err := a.InitMailer(); err != nil {
		return err
	}

	if err := a.InitRepositories(); err != nil {
		return err
	}

	if err := a.InitServices(); err != nil {
		return err
	}

	if err := a.InitHandlers(); err != nil {
		return err
	}

	a.logger.Info("Application successfully initialized")
	return nil
}

// GetConfig returns the app's configuration
func (a *App) GetConfig() *config.Config {
	return a.config
}

// GetLogger returns the app's logger
func (a *App) GetLogger() logger.Logger {
	return a.logger
}

// GetMux returns the app's HTTP multiplexer
func (a *App) GetMux() *http.ServeMux {
	return a.mux
}

// GetDB returns the app's database connection
func (a *App) GetDB() *sql.DB {
	return a.db
}

// GetMailer returns the app's mailer
func (a *App) GetMailer() mailer.Mailer {
	return a.mailer
}

func (a *App) GetEventBus() domain.EventBus {
	return a.eventBus
}

func (a *App) GetUserRepository() domain.UserRepository {
	return a.userRepo
}

func (a *App) GetOrganizationRepository() domain.OrganizationRepository {
	return a.organizationRepo
}

func (a *App) GetAthleteRepository() domain.AthleteRepository {
	return a.athleteRepo
}

func (a *App) GetPaymentRepository() domain.PaymentRepository {
	return a.paymentRepo
}

func (a *App) GetSettingRepository() domain.SettingRepository {
	return a.settingRepo
}

func (a *App) incrementActiveRequests() {
	atomic.AddInt64(&a.activeRequests, 1)
	a.requestWg.Add(1)
}

func (a *App) decrementActiveRequests() {
	atomic.AddInt64(&a.activeRequests, -1)
	a.requestWg.Done()
}

func (a *App) getActiveRequestCount() int64 {
	return atomic.LoadInt64(&a.activeRequests)
}

// GetActiveRequestCount returns the current number of active requests
func (a *App) GetActiveRequestCount() int64 {
	return a.getActiveRequestCount()
}

// SetShutdownTimeout sets the timeout for graceful shutdown
func (a *App) SetShutdownTimeout(timeout time.Duration) {
	a.shutdownTimeout = timeout
	a.logger.WithField("shutdown_timeout", timeout).Info("Shutdown timeout configured")
}

// GetShutdownContext is cancelled when Shutdown starts
func (a *App) GetShutdownContext() context.Context {
	return a.shutdownCtx
}

func (a *App) isShuttingDown() bool {
	select {
	case <-a.shutdownCtx.Done():
		return true
	default:
		return false
	}
}

// gracefulShutdownMiddleware tracks in-flight requests and refuses new ones once shutdown starts
func (a *App) gracefulShutdownMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if a.isShuttingDown() {
			httpHandler.WriteJSONError(w, "Server is shutting down", http.StatusServiceUnavailable)
			return
		}

		a.incrementActiveRequests()
		defer a.decrementActiveRequests()

		next.ServeHTTP(w, r)
	})
}

var _ AppInterface = (*App)(nil)
