package app

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/google/uuid"
	"github.com/luksdev/travels-corp/internal/auth"
	"github.com/luksdev/travels-corp/internal/config"
	"github.com/luksdev/travels-corp/internal/domain"
	"github.com/luksdev/travels-corp/internal/handler"
	"github.com/luksdev/travels-corp/internal/middleware"
	"github.com/luksdev/travels-corp/internal/notification"
	"github.com/luksdev/travels-corp/internal/repository"
	"github.com/luksdev/travels-corp/internal/router"
	"github.com/luksdev/travels-corp/internal/scheduler"
	"github.com/luksdev/travels-corp/internal/service"
	"github.com/pressly/goose/v3"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/logger"
	"golang.org/x/crypto/bcrypt"
)

const migrationsDir = "migrations"

type App struct {
	cfg        *config.Config
	log        logger.Logger
	db         *dbpg.DB
	httpServer *http.Server
	dispatcher *notification.Dispatcher
	scheduler  *scheduler.Scheduler
	users      *repository.UserRepository
}

func New(cfg *config.Config) (*App, error) {
	app := &App{cfg: cfg}

	log, err := logger.InitLogger(
		cfg.Logger.LogEngine(),
		"TravelsCorp",
		cfg.Gin.Mode,
		logger.WithLevel(cfg.Logger.LogLevel()),
	)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}
	app.log = log

	if err = app.runMigrations(); err != nil {
		return nil, fmt.Errorf("migrations: %w", err)
	}

	if err = app.initDB(); err != nil {
		return nil, fmt.Errorf("init db: %w", err)
	}

	if err = app.initServices(); err != nil {
		return nil, fmt.Errorf("init services: %w", err)
	}

	return app, nil
}

func (a *App) initDB() error {
	db, err := dbpg.New(
		a.cfg.Postgres.DSN(),
		nil,
		&dbpg.Options{
			MaxOpenConns: a.cfg.Postgres.MaxOpenConns,
			MaxIdleConns: a.cfg.Postgres.MaxIdleConns,
		},
	)
	if err != nil {
		return fmt.Errorf("connecting to database: %w", err)
	}

	if err := db.Master.PingContext(context.Background()); err != nil {
		return fmt.Errorf("pinging database: %w", err)
	}

	a.db = db
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "database connected",
		logger.String("host", a.cfg.Postgres.Host),
		logger.Int("port", a.cfg.Postgres.Port),
		logger.String("database", a.cfg.Postgres.Database),
	)

	return nil
}

func (a *App) initServices() error {
	travelRequestRepo := repository.NewTravelRequestRepo(a.db)
	userRepo := repository.NewUserRepo(a.db)
	notificationRepo := repository.NewNotificationRepo(a.db)
	tokenRepo := repository.NewTokenRepo(a.db)
	a.users = userRepo

	manager, err := auth.NewManager(a.cfg.JWT.Secret, a.cfg.JWT.Issuer, a.cfg.JWT.TTL)
	if err != nil {
		return fmt.Errorf("init token manager: %w", err)
	}

	mailer := notification.NewSMTPMailer(
		a.cfg.SMTP.Host,
		a.cfg.SMTP.Port,
		a.cfg.SMTP.Username,
		a.cfg.SMTP.Password,
		a.cfg.SMTP.From,
		a.log,
	)
	telegram, err := notification.NewTelegramNotifier(a.cfg.Telegram.BotToken, a.log)
	if err != nil {
		return fmt.Errorf("init telegram notifier: %w", err)
	}
	a.dispatcher = notification.NewDispatcher(
		notificationRepo,
		mailer,
		telegram,
		a.log,
		a.cfg.Notifications.Buffer,
	)

	travelRequestService := service.NewTravelRequestService(travelRequestRepo, a.dispatcher, a.log)
	authService := service.NewAuthService(userRepo, tokenRepo, manager, a.log)
	notificationService := service.NewNotificationService(notificationRepo)

	a.scheduler = scheduler.New(
		tokenRepo,
		a.cfg.Scheduler.Interval,
		a.log,
	)

	h := handler.NewHandler(travelRequestService, authService, notificationService)
	r := router.InitRouter(
		a.cfg.Gin.Mode,
		h,
		middleware.Auth(manager, tokenRepo, userRepo, a.log),
		middleware.RequestID(),
		middleware.RequestLogger(a.log),
		middleware.Recovery(a.log),
	)

	a.httpServer = &http.Server{
		Addr:         a.cfg.Server.Addr,
		Handler:      r,
		ReadTimeout:  a.cfg.Server.ReadTimeout,
		WriteTimeout: a.cfg.Server.WriteTimeout,
		IdleTimeout:  a.cfg.Server.IdleTimeout,
	}

	return nil
}

func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := a.ensureAdmin(ctx); err != nil {
		return fmt.Errorf("ensure admin: %w", err)
	}

	go a.dispatcher.Run(ctx)
	go a.scheduler.Start(ctx)

	errCh := make(chan error, 1)
	go func() {
		a.log.LogAttrs(ctx, logger.InfoLevel, "HTTP server starting",
			logger.String("addr", a.httpServer.Addr),
		)
		if err := a.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- fmt.Errorf("http server: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		a.log.LogAttrs(context.Background(), logger.InfoLevel, "shutdown signal received")
	case err := <-errCh:
		return err
	}

	return a.shutdown()
}

// ensureAdmin creates the bootstrap admin account if configured and absent.
// Status changes are admin-only, so a fresh deployment needs at least one.
func (a *App) ensureAdmin(ctx context.Context) error {
	if a.cfg.Admin.Email == "" {
		return nil
	}
	if a.cfg.Admin.Password == "" {
		return fmt.Errorf("admin email set but password empty")
	}

	_, err := a.users.GetByEmail(ctx, a.cfg.Admin.Email)
	if err == nil {
		return nil
	}
	if !errors.Is(err, domain.ErrUserNotFound) {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(a.cfg.Admin.Password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash admin password: %w", err)
	}

	admin := &domain.User{
		ID:           uuid.New().String(),
		Name:         a.cfg.Admin.Name,
		Email:        a.cfg.Admin.Email,
		PasswordHash: string(hash),
		Role:         domain.RoleAdmin,
	}
	if err := a.users.Create(ctx, admin); err != nil {
		return fmt.Errorf("create admin user: %w", err)
	}

	a.log.Info("admin account created",
		logger.String("email", admin.Email),
	)
	return nil
}

func (a *App) shutdown() error {
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "shutting down...")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		a.cfg.Server.WriteTimeout,
	)
	defer cancel()

	if err := a.httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http server shutdown: %w", err)
	}
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "HTTP server stopped")

	if err := a.db.Master.Close(); err != nil {
		return fmt.Errorf("close db: %w", err)
	}
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "database connection closed")

	a.log.LogAttrs(context.Background(), logger.InfoLevel, "app stopped")

	return nil
}

func (a *App) runMigrations() error {
	db, err := sql.Open("postgres", a.cfg.Postgres.DSN())
	if err != nil {
		return fmt.Errorf("open db for migrations: %w", err)
	}
	defer db.Close()

	if err := goose.Up(db, migrationsDir); err != nil {
		return fmt.Errorf("goose up: %w", err)
	}

	a.log.Info("migrations applied successfully")
	return nil
}
